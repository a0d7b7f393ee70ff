package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCSV(t *testing.T) {
	data := "word,definition\napple,a fruit\nbanana,a yellow fruit\n"
	dict := New()

	loaded, err := dict.LoadCSV(strings.NewReader(data), ',', "word")
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, "a fruit", dict.Lookup("apple").Attributes["definition"])
	assert.Equal(t, []string{"apple", "banana"}, dict.Words(""))
}

func TestLoadCSVMissingWordKey(t *testing.T) {
	data := "term,definition\napple,a fruit\n"
	dict := New()

	_, err := dict.LoadCSV(strings.NewReader(data), ',', "word")
	assert.Error(t, err, "Records without the word key should fail loading")
}

func TestLoadJSON(t *testing.T) {
	data := `[
		{"word": "car", "definition": "a vehicle"},
		{"word": "cart", "definition": "a wheeled basket"}
	]`
	dict := New()

	loaded, err := dict.LoadJSON(strings.NewReader(data), "word")
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, "a vehicle", dict.Lookup("car").Attributes["definition"])
}

func TestLoadYAML(t *testing.T) {
	data := "- word: dog\n  definition: a pet\n- word: dove\n  definition: a bird\n"
	dict := New()

	loaded, err := dict.LoadYAML(strings.NewReader(data), "word")
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, []string{"dog", "dove"}, dict.Words("do"))
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.csv")
	assert.NoError(t, os.WriteFile(path, []byte("word\napple\n"), 0o644))

	dict := New()
	loaded, err := dict.LoadFile(path, "word")
	assert.NoError(t, err)
	assert.Equal(t, 1, loaded)

	_, err = dict.LoadFile(filepath.Join(dir, "words.csv"), "word")
	assert.NoError(t, err)

	unknown := filepath.Join(dir, "words.txt")
	assert.NoError(t, os.WriteFile(unknown, []byte("apple\n"), 0o644))
	_, err = dict.LoadFile(unknown, "word")
	assert.Error(t, err, "Unknown extensions should be rejected")
}
