package trie_test

import (
	"fmt"

	"github.com/aglyzov/go-trie/trie"
)

func Example() {
	tr, err := trie.New(
		trie.KV[int]{Key: "car", Val: 1},
		trie.KV[int]{Key: "cart", Val: 2},
		trie.KV[int]{Key: "carpet", Val: 3},
	)
	if err != nil {
		panic(err)
	}

	val, ok := tr.Get("cart")
	fmt.Println(val, ok)
	fmt.Println(tr.Contains("ca"), tr.ContainsPrefix("ca"))
	fmt.Println(tr.LongestPrefix("carpool"))
	fmt.Println(tr.LongestKey("cartoon"))

	// Output:
	// 2 true
	// false true
	// carp
	// cart
}

func ExampleTrie_Match() {
	var routes trie.Trie[string]

	_ = routes.Insert("/api/", "api")
	_ = routes.Insert("/api/v2/", "api-v2")
	_ = routes.Insert("/", "static")

	for _, path := range []string{"/api/v2/users", "/api/v1/users", "/index.html"} {
		prefix, handler, _ := routes.Match(path)
		fmt.Printf("%s -> %s (%s)\n", path, handler, prefix)
	}

	// Output:
	// /api/v2/users -> api-v2 (/api/v2/)
	// /api/v1/users -> api (/api/)
	// /index.html -> static (/)
}

func ExampleTrie_Set() {
	var tr trie.Trie[int]

	_, replaced, _ := tr.Set("a", 10)
	fmt.Println(replaced)

	old, replaced, _ := tr.Set("a", 20)
	val, _ := tr.Get("a")
	fmt.Println(old, replaced, val)

	// Output:
	// false
	// 10 true 20
}
