package trie

import "sort"

// Trie is a generic prefix tree node keyed by single bytes.
// The zero value is an empty tree, and every node is itself a Trie:
// the root represents the empty word, and each child is owned
// exclusively by its parent through the children map.
//
// The tree stores non-owning pointers to caller values. It never
// allocates, copies or frees the pointed-to values; the caller must
// keep a value alive for as long as a lookup may return it.
type Trie[T any] struct {
	value    *T                // set iff this node terminates an inserted word
	children map[byte]*Trie[T] // lazily allocated
}

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert associates value with word, creating a node for every
// character of the path that is not present yet. Inserting a word
// that already exists overwrites the previous value (last write
// wins). The empty word is stored on the root itself.
func (t *Trie[T]) Insert(value *T, word string) {
	current := t
	for i := 0; i < len(word); i++ {
		ch := word[i]
		child := current.children[ch]
		if child == nil {
			child = &Trie[T]{}
			if current.children == nil {
				current.children = make(map[byte]*Trie[T])
			}
			current.children[ch] = child
		}
		current = child
	}
	current.value = value
}

// WordExists returns the value stored for the exact word, or nil if
// the word was never inserted. A word that only exists as a prefix of
// other words is not found.
func (t *Trie[T]) WordExists(word string) *T {
	node := t.find(word)
	if node == nil {
		return nil
	}
	return node.value
}

// PrefixExists reports whether any inserted word starts with prefix.
// The empty prefix is always true, the root always exists.
func (t *Trie[T]) PrefixExists(prefix string) bool {
	return t.find(prefix) != nil
}

// AutoComplete returns the values of all words starting with prefix,
// sorted lexicographically by the full word. A word sorts before any
// longer word it is a prefix of, since a node's own value is visited
// before its children. Returns nil if no word matches.
func (t *Trie[T]) AutoComplete(prefix string) []*T {
	node := t.find(prefix)
	if node == nil {
		return nil
	}
	var results []*T
	node.each(func(value *T) {
		results = append(results, value)
	})
	return results
}

// Traverse applies fn to every stored value, in the same
// lexicographic word order as AutoComplete.
func (t *Trie[T]) Traverse(fn func(value *T)) {
	t.each(fn)
}

// Walk calls fn with each matching word and its value, in
// lexicographic word order, starting at prefix. Traversal stops early
// when fn returns false.
func (t *Trie[T]) Walk(prefix string, fn func(word string, value *T) bool) {
	node := t.find(prefix)
	if node == nil {
		return
	}
	node.walk([]byte(prefix), fn)
}

// Words returns all inserted words starting with prefix, sorted
// lexicographically.
func (t *Trie[T]) Words(prefix string) []string {
	var words []string
	t.Walk(prefix, func(word string, _ *T) bool {
		words = append(words, word)
		return true
	})
	return words
}

// Erase removes word from the trie and reports whether it was
// present. Nodes left with no value and no children are pruned,
// cascading from the terminal node up to the first ancestor that is
// still in use. The caller's value is never touched.
func (t *Trie[T]) Erase(word string) bool {
	if t.WordExists(word) == nil {
		return false
	}
	t.removeRecursive(word, 0)
	return true
}

// Clear detaches all children and drops the root value, leaving the
// tree empty. Clear on an already empty tree is a no-op.
func (t *Trie[T]) Clear() {
	t.value = nil
	t.children = nil
}

// IsEmpty reports whether the tree holds no words at all.
func (t *Trie[T]) IsEmpty() bool {
	return t.value == nil && len(t.children) == 0
}

// find walks the full character path of prefix and returns the node
// it ends on, or nil if the path does not exist.
func (t *Trie[T]) find(prefix string) *Trie[T] {
	current := t
	for i := 0; i < len(prefix); i++ {
		child := current.children[prefix[i]]
		if child == nil {
			return nil
		}
		current = child
	}
	return current
}

// sortedKeys returns the child keys in ascending order. Go maps have
// no iteration order, so enumeration sorts at every node to keep
// results lexicographic.
func (t *Trie[T]) sortedKeys() []byte {
	keys := make([]byte, 0, len(t.children))
	for ch := range t.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// each visits the node's own value first, then descends into the
// children in ascending key order.
func (t *Trie[T]) each(fn func(value *T)) {
	if t.value != nil {
		fn(t.value)
	}
	for _, ch := range t.sortedKeys() {
		t.children[ch].each(fn)
	}
}

// walk is the word-carrying variant of each. It returns false once fn
// asked to stop.
func (t *Trie[T]) walk(word []byte, fn func(word string, value *T) bool) bool {
	if t.value != nil && !fn(string(word), t.value) {
		return false
	}
	for _, ch := range t.sortedKeys() {
		if !t.children[ch].walk(append(word, ch), fn) {
			return false
		}
	}
	return true
}

// removeRecursive clears the terminal value of word below this node
// and reports whether the node became a dead end, no value and no
// children, so the parent can unlink it. Each level makes the same
// call for its own child on the way back up, which prunes the branch
// until an ancestor with remaining content is reached.
func (t *Trie[T]) removeRecursive(word string, index int) bool {
	if index == len(word) {
		if t.value == nil {
			return false
		}
		t.value = nil
		return len(t.children) == 0
	}

	ch := word[index]
	child := t.children[ch]
	if child == nil {
		return false
	}

	if child.removeRecursive(word, index+1) {
		delete(t.children, ch)
		return t.value == nil && len(t.children) == 0
	}
	return false
}
