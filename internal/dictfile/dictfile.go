// Package dictfile loads trie dictionaries from TOML files.
package dictfile

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aglyzov/go-trie/internal/cmdlogger"
	"github.com/aglyzov/go-trie/trie"
)

var ErrUnknownKeys = errors.New("unknown keys in dictionary file")

// File is the on-disk dictionary:
//
//	Words = ["apple", "apricot"]
//
//	[Keys]
//	car = "1"
//	cart = "2"
//
// Words are stored with an empty value, Keys override Words.
type File struct {
	Words []string          `toml:"Words"`
	Keys  map[string]string `toml:"Keys"`
	// The path the file was loaded from, set by Load
	LoadPath string `toml:"-"`
}

// Load parses the dictionary at path.
func Load(path string) (File, error) {
	var file File

	m, err := toml.DecodeFile(path, &file)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if unknownKeys := m.Undecoded(); len(unknownKeys) > 0 {
		keys := make([]string, 0, len(unknownKeys))

		for _, key := range unknownKeys {
			keys = append(keys, key.String())
		}

		return File{}, fmt.Errorf("%w %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}

	file.LoadPath = path
	file.warnAboutDuplicates()

	return file, nil
}

// Len returns the number of entries in the file, duplicates included.
func (f File) Len() int {
	return len(f.Words) + len(f.Keys)
}

// Build inserts every entry into a new trie.
func (f File) Build() (*trie.Trie[string], error) {
	var tr trie.Trie[string]

	for _, word := range f.Words {
		if err := tr.Insert(word, ""); err != nil {
			return nil, fmt.Errorf("%s: %w", f.LoadPath, err)
		}
	}

	// sorted for a stable error report
	keys := make([]string, 0, len(f.Keys))
	for key := range f.Keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := tr.Insert(key, f.Keys[key]); err != nil {
			return nil, fmt.Errorf("%s: %w", f.LoadPath, err)
		}
	}

	cmdlogger.Debugf("Built a trie of %d keys and %d nodes from %s", tr.Len(), tr.Nodes(), f.LoadPath)

	return &tr, nil
}

func (f File) warnAboutDuplicates() {
	seen := make(map[string]struct{}, len(f.Words))

	for _, word := range f.Words {
		if _, ok := seen[word]; ok {
			cmdlogger.Warnf("%s has a duplicate word %q", f.LoadPath, word)
			continue
		}
		seen[word] = struct{}{}

		if _, ok := f.Keys[word]; ok {
			cmdlogger.Warnf("%s: Keys entry %q overrides the word", f.LoadPath, word)
		}
	}
}
