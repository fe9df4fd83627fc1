package trie

import (
	"fmt"
	"unicode/utf8"
)

// KV is a key-value pair used to seed a Trie.
type KV[V any] struct {
	Key string
	Val V
}

// Trie is a prefix tree keyed by runes. The zero value is an empty trie.
type Trie[V any] struct {
	root  node[V]
	size  int // number of stored keys
	nodes int // number of nodes below the root
}

// New returns a Trie holding the given items. Later items overwrite earlier
// ones having the same key.
func New[V any](items ...KV[V]) (*Trie[V], error) {
	t := &Trie[V]{}

	for _, item := range items {
		if err := t.Insert(item.Key, item.Val); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.size
}

func (t *Trie[V]) Empty() bool {
	return t.size == 0
}

// Nodes returns the number of nodes in the trie, the root included.
func (t *Trie[V]) Nodes() int {
	return t.nodes + 1
}

// Insert associates val with key overwriting a previous value.
// The empty key is stored at the root.
func (t *Trie[V]) Insert(key string, val V) error {
	_, _, err := t.Set(key, val)
	return err
}

// Set associates val with key and returns the previous value (if any).
func (t *Trie[V]) Set(key string, val V) (old V, replaced bool, err error) {
	if !utf8.ValidString(key) {
		return old, false, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidKey, key)
	}

	cur := &t.root

	for _, r := range key {
		var created bool

		if cur, created = cur.addChild(r); created {
			t.nodes++
		}
	}

	if cur.terminal {
		old, replaced = cur.val, true
	} else {
		cur.terminal = true
		t.size++
	}

	cur.val = val

	return old, replaced, nil
}

// Contains reports whether key was inserted.
func (t *Trie[V]) Contains(key string) bool {
	n, end := t.descend(key)

	return end == len(key) && n.terminal
}

// ContainsPrefix reports whether some inserted key starts with prefix.
// The empty prefix is never contained.
func (t *Trie[V]) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}

	_, end := t.descend(prefix)

	return end == len(prefix)
}

// Get returns the value associated with key.
func (t *Trie[V]) Get(key string) (val V, ok bool) {
	n, end := t.descend(key)

	if end != len(key) || !n.terminal {
		return val, false
	}

	return n.val, true
}

// LongestPrefix returns the longest head of key having a path in the trie,
// regardless of whether the path ends at a stored key.
func (t *Trie[V]) LongestPrefix(key string) string {
	_, end := t.descend(key)

	return key[:end]
}

// LongestKey returns the longest stored key that is a prefix of key.
// It returns "" when there is no such key.
func (t *Trie[V]) LongestKey(key string) string {
	prefix, _, _ := t.Match(key)

	return prefix
}

// Match looks for the longest stored key that is a prefix of key and
// returns it along with its value.
func (t *Trie[V]) Match(key string) (prefix string, val V, ok bool) {
	var (
		cur  = &t.root
		last = -1 // end of the last terminal node seen
		off  int
	)

	if cur.terminal {
		last, val = 0, cur.val
	}

	for {
		r, size := nextRune(key, off)
		if size == 0 {
			break
		}

		if cur = cur.child(r); cur == nil {
			break
		}

		off += size

		if cur.terminal {
			last, val = off, cur.val
		}
	}

	if last < 0 {
		return "", val, false
	}

	return key[:last], val, true
}

// descend walks from the root along key while the edges exist. It returns
// the last node reached and the byte offset of the first rune not consumed.
func (t *Trie[V]) descend(key string) (*node[V], int) {
	var (
		cur = &t.root
		off int
	)

	for {
		r, size := nextRune(key, off)
		if size == 0 {
			return cur, off
		}

		next := cur.child(r)
		if next == nil {
			return cur, off
		}

		cur, off = next, off+size
	}
}
