// Command triedict answers prefix queries against a TOML dictionary.
//
// Usage:
//
//	triedict --dict words.toml query cartoon carpool
//	triedict --dict words.toml check
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
