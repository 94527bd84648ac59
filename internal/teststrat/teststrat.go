// Package teststrat holds small, test-only helpers for generating and
// checking property-test fixtures: large sets of unique, sorted random
// keys, and "did the index preserve the input key set" assertions.
package teststrat

import (
	"math/rand"
	"sort"

	set3 "github.com/TomTonic/Set3"
)

// UniqueSortedInt32s draws random int32s from [lo, hi) using r until it
// has accumulated n distinct values, then returns them sorted ascending.
func UniqueSortedInt32s(r *rand.Rand, n int, lo, hi int64) []int32 {
	seen := make(map[int32]bool, n)
	out := make([]int32, 0, n)
	for len(out) < n {
		v := int32(lo + r.Int63n(hi-lo))
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SameKeySet reports whether a and b contain exactly the same keys,
// ignoring order and duplicate counts. It is a thin wrapper over Set3's
// own Equals/From, used here to verify that an Index (read back via
// KeyAt) preserves the exact key set it was built from.
func SameKeySet(a, b []int32) bool {
	return set3.From(a...).Equals(set3.From(b...))
}
