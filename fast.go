// Package fast is an in-memory, immutable, ordered-key search index
// implementing the FAST (Fast Architecture-Sensitive Tree) design from the
// SIGMOD 2010 paper of the same name. An Index is built once from a sorted
// []int32 and thereafter answers predecessor and lower-bound point
// queries by walking a hierarchically blocked (SIMD/cache-line/page)
// permutation of the input, rather than binary-searching it directly.
//
// Once New returns, an Index is fully immutable: any number of goroutines
// may call its query methods concurrently without synchronization. There
// is no insert, delete, update, or resize path.
package fast

import (
	"errors"

	"github.com/TomTonic/fast/internal/geometry"
	"github.com/TomTonic/fast/internal/layout"
	"github.com/TomTonic/fast/internal/search"
)

// ErrEmptyInput is returned by New when given a zero-length key array.
var ErrEmptyInput = errors.New("fast: sorted must contain at least one key")

// ErrNotSorted is returned by New when sorted is not in non-decreasing
// order.
var ErrNotSorted = errors.New("fast: sorted must be non-decreasing")

// ErrSentinelKey is returned by New when sorted contains math.MaxInt32,
// the value reserved to pad incomplete subtrees internally.
var ErrSentinelKey = errors.New("fast: sorted must not contain math.MaxInt32, which is reserved as the internal sentinel")

// Index is the immutable handle bundling a sorted key copy, its blocked
// layout, the rank map resolving a layout position back to a sorted
// index, and the geometry the layout was built with.
type Index struct {
	sorted []int32
	tree   []int32
	rank   []int32
	geom   geometry.Geometry
}

// New builds an Index from sorted, a non-decreasing array of n >= 1
// 32-bit signed keys. sorted must not contain math.MaxInt32 (reserved as
// the sentinel that pads incomplete subtrees). New copies sorted; the
// returned Index does not alias the caller's slice.
//
// New is the only operation that can fail: once it returns a non-nil
// Index, every query method is total and cannot itself error.
func New(sorted []int32) (*Index, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptyInput
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] < sorted[i-1] {
			return nil, ErrNotSorted
		}
	}
	for _, k := range sorted {
		if k == geometry.Sentinel {
			return nil, ErrSentinelKey
		}
	}

	n := len(sorted)
	geom := geometry.Compute(n, geometry.DefaultPageSizeSource.PageSize())
	bfsKeys, bfsRanks := layout.Materialize(sorted, geom.TreeNodes)
	lay := layout.Build(bfsKeys, bfsRanks, geom.TreeNodes, geom.DN, geom.DP, n)

	sortedCopy := make([]int32, n)
	copy(sortedCopy, sorted)

	return &Index{
		sorted: sortedCopy,
		tree:   lay.Tree,
		rank:   lay.Rank,
		geom:   geom,
	}, nil
}

// Search returns the largest index i with Key(i) <= q, the predecessor of
// q, or -1 if q is smaller than every key in the index.
func (idx *Index) Search(q int32) int {
	return search.Predecessor(q, idx.sorted, idx.tree, idx.rank, idx.geom.DN)
}

// LowerBound returns the smallest index i with Key(i) >= q, or Size() if q
// is larger than every key in the index.
func (idx *Index) LowerBound(q int32) int {
	return search.LowerBound(q, idx.sorted)
}

// Size returns the number of keys the index was built from.
func (idx *Index) Size() int {
	return len(idx.sorted)
}

// KeyAt returns the key at position i in the original sorted order. It
// returns 0 for an out-of-range index rather than panicking, for parity
// with a bounds-checked lookup miss on a read-only accessor.
func (idx *Index) KeyAt(i int) int32 {
	if i < 0 || i >= len(idx.sorted) {
		return 0
	}
	return idx.sorted[i]
}
