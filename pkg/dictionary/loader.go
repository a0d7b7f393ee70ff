package dictionary

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one raw row of a word list file. The wordKey column holds
// the word itself, every other column becomes an entry attribute.
type Record map[string]string

// LoadFile loads a word list file into the dictionary, picking the
// format from the file extension (.csv, .tsv, .json, .yaml, .yml).
// It returns the number of loaded records.
func (d *Dictionary) LoadFile(path string, wordKey string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return d.LoadCSV(file, ',', wordKey)
	case ".tsv":
		return d.LoadCSV(file, '\t', wordKey)
	case ".json":
		return d.LoadJSON(file, wordKey)
	case ".yaml", ".yml":
		return d.LoadYAML(file, wordKey)
	default:
		return 0, fmt.Errorf("unsupported word list format %q", ext)
	}
}

// LoadCSV reads records with a header row, one word per record.
func (d *Dictionary) LoadCSV(r io.Reader, comma rune, wordKey string) (int, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma

	headers, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	loaded := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, err
		}

		record := make(Record, len(headers))
		for i, value := range row {
			record[headers[i]] = value
		}
		if err := d.addRecord(record, wordKey); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// LoadJSON reads a JSON array of flat string objects, decoding one
// element at a time so large files are not held in memory.
func (d *Dictionary) LoadJSON(r io.Reader, wordKey string) (int, error) {
	decoder := json.NewDecoder(r)

	// opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return 0, err
	}

	loaded := 0
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return loaded, err
		}
		if err := d.addRecord(record, wordKey); err != nil {
			return loaded, err
		}
		loaded++
	}

	// closing bracket of the array
	if _, err := decoder.Token(); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// LoadYAML reads a YAML sequence of flat string mappings.
func (d *Dictionary) LoadYAML(r io.Reader, wordKey string) (int, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	var records []Record
	if err := yaml.Unmarshal(buf, &records); err != nil {
		return 0, err
	}

	for i, record := range records {
		if err := d.addRecord(record, wordKey); err != nil {
			return i, err
		}
	}
	return len(records), nil
}

func (d *Dictionary) addRecord(record Record, wordKey string) error {
	word, found := record[wordKey]
	if !found || word == "" {
		return fmt.Errorf("record has no %q key: %v", wordKey, record)
	}

	entry := NewEntry(word)
	for key, value := range record {
		if key != wordKey {
			entry.Attributes[key] = value
		}
	}
	d.Add(entry)
	return nil
}
