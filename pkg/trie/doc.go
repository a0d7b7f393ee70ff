// ## Overview
// Package trie implements a generic trie (prefix tree) that associates
// caller-owned values with words. Words sharing a prefix share their
// ancestor nodes, which makes exact lookups and prefix queries O(m) in
// the word length and keeps enumeration results lexicographically
// sorted. The trie holds non-owning pointers only: it never allocates
// or frees the associated values.
//
// ## Example usage:
//
//	dict := trie.New[string]()
//
//	hello := "a greeting"
//	help := "assistance"
//
//	dict.Insert(&hello, "hello")
//	dict.Insert(&help, "help")
//
//	// Exact lookup
//	if v := dict.WordExists("hello"); v != nil {
//	    fmt.Println("Found:", *v) // Output: Found: a greeting
//	}
//
//	// Prefix check
//	fmt.Println(dict.PrefixExists("hel")) // Output: true
//
//	// Autocomplete, sorted lexicographically
//	for _, v := range dict.AutoComplete("hel") {
//	    fmt.Println(*v)
//	}
//
//	// Remove a word, empty branches are pruned automatically
//	dict.Erase("hello")
//
// This package uses generics so any value type can be associated with
// a word; the trie performs no operation on the value beyond storing
// and returning a pointer to it.
package trie
