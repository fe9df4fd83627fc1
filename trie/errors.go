package trie

import "errors"

// ErrInvalidKey is returned when a key is not a valid UTF-8 string.
var ErrInvalidKey = errors.New("trie: invalid key")
