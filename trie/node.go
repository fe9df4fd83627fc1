package trie

import "unicode/utf8"

type node[V any] struct {
	children map[rune]*node[V] // nil until the first child is added
	val      V
	terminal bool
}

// child returns the node under the edge r (if any).
func (n *node[V]) child(r rune) *node[V] {
	return n.children[r]
}

// addChild returns the node under the edge r creating it if necessary.
// The second result reports whether the node was created.
func (n *node[V]) addChild(r rune) (*node[V], bool) {
	if next, ok := n.children[r]; ok {
		return next, false
	}

	if n.children == nil {
		n.children = make(map[rune]*node[V], 1)
	}

	next := &node[V]{}
	n.children[r] = next

	return next, true
}

// nextRune decodes the rune at key[off:]. It returns size 0 when the input
// is exhausted or does not hold a valid UTF-8 sequence at off.
func nextRune(key string, off int) (rune, int) {
	if off >= len(key) {
		return 0, 0
	}

	r, size := utf8.DecodeRuneInString(key[off:])
	if r == utf8.RuneError && size <= 1 {
		return r, 0 // invalid encoding
	}

	return r, size
}
