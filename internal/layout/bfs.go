// Package layout builds the hierarchically blocked permutation of a
// sorted key array: the BFS materialization of the implicit complete
// binary tree, then the recursive SIMD/cache-line/page decomposition that
// nests cache-line blocks inside page blocks and SIMD blocks inside
// cache-line blocks, plus the rank map that ties a layout position back
// to its index in the original sorted array.
package layout

import "github.com/TomTonic/fast/internal/geometry"

// Materialize builds the BFS-ordered complete binary tree for sorted: for
// each BFS index i in [0, treeNodes), keys[i] holds the key at its
// in-order rank (ranks[i]) if that rank is < len(sorted), or the sentinel
// otherwise. ranks[i] is always the in-order rank, even past len(sorted) —
// callers needing the "out of range" marker compare it against n
// themselves (see Build, which does exactly that when filling the rank
// map).
func Materialize(sorted []int32, treeNodes int) (keys []int32, ranks []int) {
	ranks = inorderRanks(treeNodes)
	keys = make([]int32, treeNodes)
	n := len(sorted)
	for i, r := range ranks {
		if r < n {
			keys[i] = sorted[r]
		} else {
			keys[i] = geometry.Sentinel
		}
	}
	return keys, ranks
}

// inorderRanks returns, for each BFS index i of a complete binary tree of
// treeNodes nodes (children of i at 2i+1, 2i+2), the position that an
// in-order traversal would assign it. An iterative, explicit-stack
// traversal is used so the recursion depth stays bounded (d_N, not
// treeNodes) for very large trees.
func inorderRanks(treeNodes int) []int {
	ranks := make([]int, treeNodes)
	stack := make([]int, 0, 64)
	cur := 0
	sortedIdx := 0
	for cur < treeNodes || len(stack) > 0 {
		for cur < treeNodes {
			stack = append(stack, cur)
			cur = 2*cur + 1
		}
		if len(stack) > 0 {
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ranks[cur] = sortedIdx
			sortedIdx++
			cur = 2*cur + 2
		}
	}
	return ranks
}
