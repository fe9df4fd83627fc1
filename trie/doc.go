// Package trie defines a prefix tree mapping UTF-8 string keys to values of
// an arbitrary type.
//
// A Trie consists of connected nodes. Every edge is labeled with a single
// rune and every path from the root spells a prefix of the stored keys.
// A node is terminal when some inserted key ends exactly at it; only
// terminal nodes carry a value.
//
// Example trie:
// ------------
//
//	[root] -- [c] -- [a] -- [r*:1] --+-- [t*:2]
//	                                 |
//	                                 `-- [p] -- [e] -- [t*:3]
//
// The trie above contains the following keys:
//
//   - "car"    -> 1
//   - "cart"   -> 2
//   - "carpet" -> 3
//
// Queries:
// -------
//
//   - Contains / Get         - exact key lookups;
//   - ContainsPrefix         - a path exists, terminal or not;
//   - LongestPrefix          - the longest head of a key having a path;
//   - LongestKey / Match     - the longest stored key that is a head of a key.
//
// Nodes are never removed. A Trie is not safe for concurrent use; guard it
// with a sync.RWMutex when it is shared between goroutines.
package trie
