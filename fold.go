package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// WithNormalisation sets the Trie to strip diacritics from keys.
// For example, Jürgen is stored and found as Jurgen.
// Set options before the first Insert; stored keys are not rewritten.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to keep keys as given.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// CaseSensitive sets the Trie to keep the case of keys.
func (t *Trie) CaseSensitive() *Trie {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the Trie to lower-case keys.
func (t *Trie) CaseInsensitive() *Trie {
	t.caseSensitive = false
	return t
}

// fold maps a key to the form stored in the Trie.
func (t *Trie) fold(key string) string {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, key); err == nil {
			key = normal
		}
	}
	if !t.caseSensitive {
		key = strings.ToLower(key)
	}
	return key
}
