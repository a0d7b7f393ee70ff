package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndLookup(t *testing.T) {
	dict := New()

	result := dict.Add(NewEntry("apple"))
	assert.Nil(t, result.Replaced, "Adding a new word should not replace anything")
	assert.Equal(t, 1, dict.Len())

	entry := dict.Lookup("apple")
	assert.NotNil(t, entry)
	assert.Equal(t, "apple", entry.Word)
	assert.Nil(t, dict.Lookup("app"), "A prefix of a stored word is not a word")
}

func TestAddReplacesExistingWord(t *testing.T) {
	dict := New()

	first := NewEntry("apple")
	first.Attributes["definition"] = "a fruit"
	dict.Add(first)

	second := NewEntry("apple")
	second.Attributes["definition"] = "a company"
	result := dict.Add(second)

	assert.Equal(t, first, result.Replaced, "The previous entry should be reported")
	assert.Equal(t, 1, dict.Len(), "Replacing should not grow the dictionary")
	assert.Equal(t, "a company", dict.Lookup("apple").Attributes["definition"])
	assert.Contains(t, result.String(), "Replaced")
}

func TestNormalizer(t *testing.T) {
	dict := New(WithNormalizer(strings.ToLower))

	dict.Add(NewEntry("Apple"))

	assert.NotNil(t, dict.Lookup("APPLE"), "Lookups should be normalized the same way as inserts")
	assert.Equal(t, "apple", dict.Lookup("apple").Word, "The stored word should be the normalized form")
	assert.True(t, dict.HasPrefix("APP"))
	assert.Equal(t, []string{"apple"}, dict.Words(""))
}

func TestComplete(t *testing.T) {
	dict := New()
	for _, word := range []string{"car", "cat", "cart", "dog"} {
		dict.Add(NewEntry(word))
	}

	var words []string
	for _, entry := range dict.Complete("ca") {
		words = append(words, entry.Word)
	}
	assert.Equal(t, []string{"car", "cart", "cat"}, words, "Completions should be sorted by word")
	assert.Empty(t, dict.Complete("xy"))
}

func TestRemove(t *testing.T) {
	dict := New()
	dict.Add(NewEntry("apple"))
	dict.Add(NewEntry("app"))

	assert.True(t, dict.Remove("apple"))
	assert.Equal(t, 1, dict.Len())
	assert.False(t, dict.HasPrefix("appl"), "The dead branch should be pruned")
	assert.NotNil(t, dict.Lookup("app"), "Other words must survive removal")

	assert.False(t, dict.Remove("apple"), "Removing twice should report false")
	assert.Equal(t, 1, dict.Len(), "A failed removal should not change the count")
}

func TestEach(t *testing.T) {
	dict := New()
	for _, word := range []string{"b", "a", "ab"} {
		dict.Add(NewEntry(word))
	}

	var words []string
	dict.Each(func(e *Entry) {
		words = append(words, e.Word)
	})
	assert.Equal(t, []string{"a", "ab", "b"}, words, "Each should visit entries in word order")
}

func TestClear(t *testing.T) {
	dict := New()
	dict.Add(NewEntry("word"))

	dict.Clear()
	assert.Equal(t, 0, dict.Len())
	assert.Nil(t, dict.Lookup("word"))
	assert.True(t, dict.HasPrefix(""), "The empty prefix always exists")
}
