// Package dictionary builds a word dictionary on top of the trie. It
// owns the entries it stores and exposes exact lookup, prefix checks,
// autocompletion and removal; the trie below only ever holds
// non-owning pointers to the entries.
package dictionary

import (
	"fmt"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/trie"
)

// Entry holds one dictionary word together with generic key value
// attributes carrying any additional information about it.
type Entry struct {
	Word       string
	Attributes map[string]string
}

// NewEntry constructs an entry for a word with empty attributes.
func NewEntry(word string) *Entry {
	return &Entry{
		Word:       word,
		Attributes: map[string]string{},
	}
}

// Normalizer maps a word to its canonical form before it is stored or
// looked up, for example lowercasing.
type Normalizer func(word string) string

// Dictionary associates words with entries through a trie.
type Dictionary struct {
	words     *trie.Trie[Entry]
	count     int
	normalize Normalizer
}

type Option func(*Dictionary) *Dictionary

// DefaultOptions returns a dictionary that stores words exactly as
// given.
func DefaultOptions() *Dictionary {
	return &Dictionary{
		words:     trie.New[Entry](),
		normalize: func(word string) string { return word },
	}
}

// WithNormalizer applies n to every word on insert and on every query.
func WithNormalizer(n Normalizer) Option {
	return func(d *Dictionary) *Dictionary {
		d.normalize = n
		return d
	}
}

// New creates an empty dictionary.
func New(opts ...Option) *Dictionary {
	d := DefaultOptions()
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// AddResult records the outcome of adding an entry for reporting.
type AddResult struct {
	Word     string
	Replaced *Entry // the previous entry when the word was already present
}

func (r *AddResult) String() string {
	if r.Replaced != nil {
		return fmt.Sprintf("Replaced existing entry for %q", r.Word)
	}
	return fmt.Sprintf("Added new entry for %q", r.Word)
}

// Add stores the entry under its word, replacing any previous entry
// for the same word. The normalized word is written back to the entry
// so lookups and listings agree on the spelling.
func (d *Dictionary) Add(e *Entry) *AddResult {
	e.Word = d.normalize(e.Word)
	replaced := d.words.WordExists(e.Word)

	d.words.Insert(e, e.Word)
	if replaced == nil {
		d.count++
	}
	return &AddResult{Word: e.Word, Replaced: replaced}
}

// Lookup returns the entry stored for the exact word, or nil.
func (d *Dictionary) Lookup(word string) *Entry {
	return d.words.WordExists(d.normalize(word))
}

// HasPrefix reports whether any stored word starts with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.words.PrefixExists(d.normalize(prefix))
}

// Complete returns the entries of all words starting with prefix,
// sorted lexicographically by word.
func (d *Dictionary) Complete(prefix string) []*Entry {
	return d.words.AutoComplete(d.normalize(prefix))
}

// Words returns the stored words starting with prefix, sorted
// lexicographically.
func (d *Dictionary) Words(prefix string) []string {
	return d.words.Words(d.normalize(prefix))
}

// Each applies fn to every entry in lexicographic word order.
func (d *Dictionary) Each(fn func(e *Entry)) {
	d.words.Traverse(fn)
}

// Remove deletes the entry for word and reports whether it existed.
func (d *Dictionary) Remove(word string) bool {
	if !d.words.Erase(d.normalize(word)) {
		return false
	}
	d.count--
	return true
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	return d.count
}

// Clear removes every entry.
func (d *Dictionary) Clear() {
	d.words.Clear()
	d.count = 0
}
