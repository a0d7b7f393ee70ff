package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/dictionary"
)

// Writer renders matched entries to an output stream.
type Writer interface {
	Write(out io.Writer, wordKey string, entries []*dictionary.Entry) error
}

// TextWriter prints one entry per line, word first, attributes after.
type TextWriter struct{}

func (TextWriter) Write(out io.Writer, _ string, entries []*dictionary.Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprint(out, entry.Word); err != nil {
			return err
		}
		for _, key := range sortedAttributeKeys(entry) {
			if _, err := fmt.Fprintf(out, "  %s=%s", key, entry.Attributes[key]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

// JsonWriter writes the entries as a JSON array of flat objects, one
// object per entry with the word stored under wordKey.
type JsonWriter struct{}

func (JsonWriter) Write(out io.Writer, wordKey string, entries []*dictionary.Entry) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	for i, entry := range entries {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}
		record := make(map[string]string, len(entry.Attributes)+1)
		for key, value := range entry.Attributes {
			record[key] = value
		}
		record[wordKey] = entry.Word
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	if _, err := out.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}

// CsvWriter writes the entries as CSV with a header row. The header
// is the word key followed by the sorted union of attribute keys, so
// entries with differing attributes still line up.
type CsvWriter struct {
	Comma rune
}

func (w CsvWriter) Write(out io.Writer, wordKey string, entries []*dictionary.Entry) error {
	writer := csv.NewWriter(out)
	if w.Comma != 0 {
		writer.Comma = w.Comma
	}
	defer writer.Flush()

	seen := map[string]bool{}
	attributeKeys := []string{}
	for _, entry := range entries {
		for key := range entry.Attributes {
			if !seen[key] {
				seen[key] = true
				attributeKeys = append(attributeKeys, key)
			}
		}
	}
	sort.Strings(attributeKeys)

	if err := writer.Write(append([]string{wordKey}, attributeKeys...)); err != nil {
		return err
	}

	for _, entry := range entries {
		record := make([]string, 0, len(attributeKeys)+1)
		record = append(record, entry.Word)
		for _, key := range attributeKeys {
			record = append(record, entry.Attributes[key])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func sortedAttributeKeys(entry *dictionary.Entry) []string {
	keys := make([]string, 0, len(entry.Attributes))
	for key := range entry.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
