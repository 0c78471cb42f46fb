// Package match ships ready-made predicates for filter sources. Callers
// can always supply their own; these cover the common cases of
// case-insensitive substring matching and trie-backed prefix matching.
package match

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Substring builds a predicate matching items whose key contains the query,
// case-insensitively.
func Substring[T any](key func(T) string) func([]T, string) []T {
	return func(items []T, query string) []T {
		q := strings.ToLower(query)
		var out []T
		for _, it := range items {
			if strings.Contains(strings.ToLower(key(it)), q) {
				out = append(out, it)
			}
		}
		return out
	}
}

// Prefix builds a predicate matching items whose key starts with the query,
// case-insensitively. The patricia trie is built once over the first
// collection seen and reused for every keystroke, so the per-query cost is
// a subtree walk rather than a scan. Suitable for the fixed collections a
// filter source is constructed with.
func Prefix[T any](key func(T) string) func([]T, string) []T {
	var (
		trie  *patricia.Trie
		built []T
	)

	build := func(items []T) {
		trie = patricia.NewTrie()
		built = items
		for i, it := range items {
			k := patricia.Prefix(strings.ToLower(key(it)))
			if v, ok := trie.Get(k).([]int); ok {
				trie.Set(k, append(v, i))
			} else {
				trie.Set(k, []int{i})
			}
		}
	}

	return func(items []T, query string) []T {
		if trie == nil || !sameSlice(built, items) {
			build(items)
		}

		var out []T
		_ = trie.VisitSubtree(patricia.Prefix(strings.ToLower(query)), func(p patricia.Prefix, item patricia.Item) error {
			for _, i := range item.([]int) {
				out = append(out, items[i])
			}
			return nil
		})
		return out
	}
}

// sameSlice reports whether two slices share the same backing array and
// length, which is how a rebuilt collection is detected.
func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
