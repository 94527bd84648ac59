// Package geometry computes the layout dimensions of a FAST tree: the
// depth of the padded complete binary tree, and the three fixed blocking
// granularities (SIMD, cache-line, page) that the hierarchical permutation
// and the search traversal both depend on.
package geometry

import (
	"math"
	"math/bits"
)

// Blocking depths and block sizes fixed by the architecture, not by any
// particular input. d_K/N_K size a SIMD block (3 keys, one 128-bit load);
// d_L/N_L size a cache-line block (15 keys, 60 of 64 bytes).
const (
	DK = 2
	NK = 3

	DL = 4
	NL = 15

	// DP4K/NP4K and DP2M/NP2M are the page-blocking depth for a 4 KiB page
	// and a 2 MiB huge page respectively; Compute picks between them (or
	// derives an in-between depth for other page sizes) from PageSize.
	DP4K = 10
	NP4K = 1023

	DP2M = 19
	NP2M = 524287

	hugePageThreshold = 2 << 20 // 2 MiB

	// Sentinel pads incomplete subtrees; it must compare strictly greater
	// than any admissible query or key, which the construction layer
	// enforces by rejecting it as an input key.
	Sentinel int32 = math.MaxInt32
)

// Geometry bundles the dimensions derived from an input size and a host
// page size. All fields are immutable once computed.
type Geometry struct {
	DN        int // depth of the padded complete binary tree
	TreeNodes int // 2^DN - 1
	DP        int // page-blocking depth
	NP        int // 2^DP - 1
	PageSize  int // page size the DP/NP pair was derived from
}

// Compute derives the geometry for n keys given the detected page size.
// Page sizes at or above 2 MiB select the huge-page constants (DP2M/NP2M);
// otherwise DP is the largest d with (2^d-1)*4 <= pageSize, matching the
// byte budget of one memory page of 32-bit keys.
func Compute(n, pageSize int) Geometry {
	dn := depthFor(n)
	treeNodes := (1 << uint(dn)) - 1

	dp := DP2M
	if pageSize < hugePageThreshold {
		dp = pageDepth(pageSize)
	}
	np := (1 << uint(dp)) - 1

	return Geometry{
		DN:        dn,
		TreeNodes: treeNodes,
		DP:        dp,
		NP:        np,
		PageSize:  pageSize,
	}
}

// depthFor returns d_N = ceil(log2(n+1)), the depth of the smallest
// complete binary tree with at least n nodes. For n >= 1 this equals
// bits.Len(n): bits.Len(n) is the smallest d with 2^d > n, i.e. 2^d >= n+1.
func depthFor(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}

// pageDepth returns the largest d with (2^d-1)*4 <= pageSize, i.e. the
// deepest complete binary tree of 32-bit keys that still fits in one page.
func pageDepth(pageSize int) int {
	maxKeys := pageSize / 4
	d := 1
	for (1<<uint(d+1))-1 <= maxKeys {
		d++
	}
	return d
}
