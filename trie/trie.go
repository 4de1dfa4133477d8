// Package trie provides a rune-keyed prefix tree of strings.
package trie

import "unicode/utf8"

// Trie is a node of a prefix tree. The zero value is not usable; use New.
type Trie struct {
	children map[rune]*Trie
	leaf     bool
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{children: make(map[rune]*Trie)}
}

// Append stores s and reports whether it was not stored before.
func (t *Trie) Append(s string) bool {
	node := t
	for _, c := range s {
		child, ok := node.children[c]
		if !ok {
			child = New()
			node.children[c] = child
		}
		node = child
	}
	isNew := !node.leaf
	node.leaf = true
	return isNew
}

// Size returns the number of nodes, including the root.
func (t *Trie) Size() int {
	size := 1
	for _, child := range t.children {
		size += child.Size()
	}
	return size
}

// Contains reports whether s was stored.
func (t *Trie) Contains(s string) bool {
	node := t
	for _, c := range s {
		child, ok := node.children[c]
		if !ok {
			return false
		}
		node = child
	}
	return node.leaf
}

// Prefix returns the longest stored string that is a prefix of s.
// It returns "" if there is none.
func (t *Trie) Prefix(s string) string {
	end := 0
	node := t
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		child, ok := node.children[c]
		if !ok {
			break
		}
		node = child
		i += size
		if node.leaf {
			end = i
		}
	}
	return s[:end]
}
