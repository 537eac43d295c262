package trie

import "sort"

// Node is a node in a Trie. It maps runes to child nodes, and is marked as a word
// if the path from the root to it spells an inserted word.
// A nil *Node stands for a path that is not in the Trie; every method accepts it.
type Node struct {
	children map[rune]*Node
	word     bool
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// IsWord reports whether n is present and ends an inserted word.
func (n *Node) IsWord() bool {
	return n != nil && n.word
}

// Child returns the child reached by r, or nil.
func (n *Node) Child(r rune) *Node {
	if n == nil {
		return nil
	}
	return n.children[r]
}

// Runes returns the runes of n's children in ascending order.
func (n *Node) Runes() []rune {
	if n == nil {
		return []rune{}
	}
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Words returns every word reachable from n, spelled relative to n: the runes
// leading from the root to n are not part of the results. Children are visited
// in rune order, so a word always comes before its extensions.
func (n *Node) Words() []string {
	words := []string{}
	if n == nil {
		return words
	}
	n.collectWords(make([]rune, 0, 16), &words)
	return words
}

// collectWords walks the subtree depth first, reusing branch as the path buffer.
func (n *Node) collectWords(branch []rune, words *[]string) {
	if n.word {
		*words = append(*words, string(branch))
	}
	for _, r := range n.Runes() {
		n.children[r].collectWords(append(branch, r), words)
	}
}

// child returns the child reached by r, creating it if needed.
func (n *Node) child(r rune) *Node {
	next, ok := n.children[r]
	if !ok {
		next = newNode()
		n.children[r] = next
	}
	return next
}
