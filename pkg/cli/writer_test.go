package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/dictionary"
)

func sampleEntries() []*dictionary.Entry {
	car := dictionary.NewEntry("car")
	car.Attributes["definition"] = "a vehicle"
	cart := dictionary.NewEntry("cart")
	cart.Attributes["definition"] = "a wheeled basket"
	cart.Attributes["origin"] = "norse"
	return []*dictionary.Entry{car, cart}
}

func TestTextWriter(t *testing.T) {
	var out strings.Builder
	err := TextWriter{}.Write(&out, "word", sampleEntries())

	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2, "One line per entry")
	assert.Equal(t, "car  definition=a vehicle", lines[0])
	assert.Equal(t, "cart  definition=a wheeled basket  origin=norse", lines[1])
}

func TestJsonWriter(t *testing.T) {
	var out strings.Builder
	err := JsonWriter{}.Write(&out, "word", sampleEntries())
	assert.NoError(t, err)

	var records []map[string]string
	assert.NoError(t, json.Unmarshal([]byte(out.String()), &records), "Output should be a valid JSON array")
	assert.Len(t, records, 2)
	assert.Equal(t, "car", records[0]["word"], "The word should be stored under the word key")
	assert.Equal(t, "a wheeled basket", records[1]["definition"])
}

func TestCsvWriter(t *testing.T) {
	var out strings.Builder
	err := CsvWriter{Comma: ','}.Write(&out, "word", sampleEntries())
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "word,definition,origin", lines[0], "Header should be the word key plus sorted attribute keys")
	assert.Equal(t, "car,a vehicle,", lines[1], "Missing attributes should stay empty")
	assert.Equal(t, "cart,a wheeled basket,norse", lines[2])
}
