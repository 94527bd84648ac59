// Package search implements the FAST tree's two query operations:
// Predecessor, which walks the blocked layout with fixed-arithmetic child
// offsets and a SIMD-style or scalar 3-key block compare, and LowerBound,
// a plain binary search over the sorted key array — the blocked layout
// buys nothing for a lower-bound scan, so LowerBound doesn't touch it.
package search

import "github.com/TomTonic/fast/internal/geometry"

// Predecessor returns the index into sorted of the largest key <= q, or -1
// if q is smaller than every key. tree and rank are the blocked layout and
// rank map produced by internal/layout.Build; dN is the tree's depth.
func Predecessor(q int32, sorted, tree, rank []int32, dN int) int {
	n := len(sorted)
	if q < sorted[0] {
		return -1
	}
	if q >= sorted[n-1] {
		return n - 1
	}

	offset := 0
	remaining := dN
	childIndex := 0
	simdLeaf := true

	for remaining > 0 {
		if remaining >= geometry.DK {
			childIndex = compareBlock(tree[offset], tree[offset+1], tree[offset+2], q)
			remaining -= geometry.DK
			simdLeaf = true

			if remaining == 0 {
				break
			}
			childSubtreeSize := (1 << uint(remaining)) - 1
			offset = offset + geometry.NK + childIndex*childSubtreeSize
		} else {
			if q > tree[offset] {
				childIndex = 1
			} else {
				childIndex = 0
			}
			remaining = 0
			simdLeaf = false
		}
	}

	if simdLeaf {
		return resolveSIMDLeaf(sorted, rank, offset, childIndex, q)
	}
	return resolveSingleLeaf(sorted, rank, offset, childIndex, q)
}

// resolveSIMDLeaf resolves the predecessor from a 3-key SIMD leaf block:
// child index 0..3 picks a starting rank-map entry, then a bounded
// forward scan absorbs any off-by-one introduced by sentinel padding or
// equal keys.
func resolveSIMDLeaf(sorted, rank []int32, offset, childIndex int, q int32) int {
	var lo int64
	switch childIndex {
	case 0:
		lo = int64(rank[offset+1]) - 1
	case 1:
		lo = int64(rank[offset+1])
	case 2:
		lo = int64(rank[offset])
	default:
		lo = int64(rank[offset+2])
	}
	return scanForward(sorted, lo, 3, q)
}

// resolveSingleLeaf resolves the predecessor from a single-key leaf node.
func resolveSingleLeaf(sorted, rank []int32, offset, childIndex int, q int32) int {
	var lo int64
	if childIndex == 0 {
		lo = int64(rank[offset]) - 1
	} else {
		lo = int64(rank[offset])
	}
	return scanForward(sorted, lo, 2, q)
}

// scanForward clamps lo to [-1, n-1] then advances it while the next
// sorted key is still <= q, for at most maxSteps positions.
func scanForward(sorted []int32, lo int64, maxSteps int, q int32) int {
	n := int64(len(sorted))
	if lo < -1 {
		lo = -1
	}
	if lo >= n {
		lo = n - 1
	}
	for i := 0; i < maxSteps && lo+1 < n; i++ {
		if sorted[lo+1] <= q {
			lo++
		} else {
			break
		}
	}
	return int(lo)
}
