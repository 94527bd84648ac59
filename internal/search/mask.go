package search

import "golang.org/x/sys/cpu"

// maskToChild maps a 3-bit sign-mask pattern to the outgoing child index
// of a 3-key SIMD block laid out in BFS order [root, left, right] with
// left < root < right. Bit 0 is (q > root), bit 1 is (q > left), bit 2 is
// (q > right) — the same bit assignment _mm_movemask_ps would produce from
// a _mm_cmpgt_epi32 of [root, left, right, sentinel] against a broadcast
// query, reinterpreted as floats. Only 0b000, 0b010, 0b011 and 0b111 are
// reachable for a well-formed block (left < root < right rules the rest
// out); the remaining entries are populated with -1 to keep the lookup
// branch-free.
var maskToChild = [8]int{
	0b000: 0,
	0b001: -1,
	0b010: 1,
	0b011: 2,
	0b100: -1,
	0b101: -1,
	0b110: -1,
	0b111: 3,
}

// useVectorCompare selects the mask-table block compare on hosts whose CPU
// reports the vector-compare capability the original SSE2 code relies on,
// and the scalar fallback otherwise. Both paths must agree bit-for-bit;
// search_test.go exercises both directly rather than relying on whichever
// the host happens to pick.
var useVectorCompare = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

// compareBlock returns the child index (0..3) that a query q selects out
// of the 3-key block [root, left, right] (left < root < right), dispatched
// to the vector-style mask lookup or the scalar comparison chain depending
// on the host's detected CPU features.
func compareBlock(root, left, right, q int32) int {
	if useVectorCompare {
		return childIndexVector(root, left, right, q)
	}
	return childIndexScalar(root, left, right, q)
}

// childIndexVector emulates the SSE compare-then-movemask sequence in
// portable Go arithmetic: three sign comparisons collapsed into a 3-bit
// pattern, then a single table lookup, even though no single vector
// instruction performs the comparison in a pure-Go build.
func childIndexVector(root, left, right, q int32) int {
	var mask int
	if q > root {
		mask |= 1
	}
	if q > left {
		mask |= 2
	}
	if q > right {
		mask |= 4
	}
	return maskToChild[mask]
}

// childIndexScalar is the scalar fallback: three ordinary comparisons,
// matching fast_search_scalar's branch structure directly rather than
// reusing the mask table.
func childIndexScalar(root, left, right, q int32) int {
	if q <= root {
		if q <= left {
			return 0
		}
		return 1
	}
	if q <= right {
		return 2
	}
	return 3
}
