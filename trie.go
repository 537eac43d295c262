package trie

import "strings"

// Trie is a prefix tree of words. Words sharing a prefix share the nodes for it.
//
// A Trie is not safe for concurrent use. Callers sharing one between goroutines
// must guard every call, including reads of returned nodes, with a single lock.
type Trie struct {
	root                      *Node
	size                      int
	normalised, caseSensitive bool
}

// New creates a new empty trie. By default keys are stored as given: case sensitive
// and without normalisation.
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.WithoutNormalisation()
	t.CaseSensitive()
	return t
}

// Insert adds word to the Trie. It returns true if word was not already stored,
// and false for a duplicate, which leaves the Trie unchanged.
// The empty string is a valid word and marks the root.
// Keys are split into runes, so each invalid UTF-8 byte is stored as U+FFFD and
// comes back as U+FFFD from Words.
func (t *Trie) Insert(word string) bool {
	current := t.root
	for _, character := range t.fold(word) {
		current = current.child(character)
	}
	if current.word {
		return false
	}
	current.word = true
	t.size++
	return true
}

// Find walks path from the root and returns the node it ends at, or nil if some
// rune of path is missing. The result is non-nil exactly when path is a prefix of
// a stored word; use IsWord on it to test membership.
// The empty path always returns the root.
func (t *Trie) Find(path string) *Node {
	current := t.root
	for _, character := range t.fold(path) {
		current = current.children[character]
		if current == nil {
			return nil
		}
	}
	return current
}

// Root returns the node for the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Words returns all stored words.
func (t *Trie) Words() []string {
	return t.root.Words()
}

// Complete returns the stored words starting with prefix, each including prefix.
func (t *Trie) Complete(prefix string) []string {
	prefix = t.fold(prefix)
	suffixes := t.Find(prefix).Words()
	for i, suffix := range suffixes {
		suffixes[i] = prefix + suffix
	}
	return suffixes
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

// String returns the stored words separated by spaces.
func (t *Trie) String() string {
	return strings.Join(t.Words(), " ")
}
