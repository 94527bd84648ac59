package geometry

import "testing"

func TestComputeDepthAndTreeNodes(t *testing.T) {
	cases := []struct {
		n         int
		wantDN    int
		wantNodes int
	}{
		{1, 1, 1},
		{2, 2, 3},
		{3, 2, 3},
		{4, 3, 7},
		{7, 3, 7},
		{8, 4, 15},
		{15, 4, 15},
		{16, 5, 31},
		{1023, 10, 1023},
		{1024, 11, 2047},
	}
	for _, c := range cases {
		g := Compute(c.n, 4096)
		if g.DN != c.wantDN {
			t.Errorf("n=%d: DN = %d, want %d", c.n, g.DN, c.wantDN)
		}
		if g.TreeNodes != c.wantNodes {
			t.Errorf("n=%d: TreeNodes = %d, want %d", c.n, g.TreeNodes, c.wantNodes)
		}
		if g.TreeNodes < c.n {
			t.Errorf("n=%d: TreeNodes %d must be >= n", c.n, g.TreeNodes)
		}
	}
}

func TestCompute4KiBPageDepth(t *testing.T) {
	g := Compute(100, 4096)
	if g.DP != DP4K {
		t.Errorf("DP = %d, want %d for a 4 KiB page", g.DP, DP4K)
	}
	if g.NP != NP4K {
		t.Errorf("NP = %d, want %d for a 4 KiB page", g.NP, NP4K)
	}
}

func TestComputeHugePageDepth(t *testing.T) {
	g := Compute(100, 2<<20)
	if g.DP != DP2M {
		t.Errorf("DP = %d, want %d for a 2 MiB huge page", g.DP, DP2M)
	}
	if g.NP != NP2M {
		t.Errorf("NP = %d, want %d for a 2 MiB huge page", g.NP, NP2M)
	}
}

func TestComputeHugePageThresholdIsInclusive(t *testing.T) {
	// Just under 2 MiB the computed depth is also 19: (2^19-1)*4 = 2097148
	// bytes still fit in a 2097151-byte page.
	below := Compute(100, 2<<20-1)
	if below.DP != 19 {
		t.Errorf("page size just under 2 MiB: DP = %d, want the computed depth 19", below.DP)
	}
	at := Compute(100, 2<<20)
	if at.DP != DP2M {
		t.Errorf("page size of exactly 2 MiB must select huge-page geometry")
	}
}

func TestPageDepthMonotonicInPageSize(t *testing.T) {
	prev := pageDepth(256)
	for _, ps := range []int{512, 1024, 4096, 16384, 65536} {
		d := pageDepth(ps)
		if d < prev {
			t.Errorf("pageDepth(%d) = %d, decreased from previous %d", ps, d, prev)
		}
		if budget := ((1 << uint(d)) - 1) * 4; budget > ps {
			t.Errorf("pageDepth(%d) = %d implies a block of %d bytes, exceeds page", ps, d, budget)
		}
		prev = d
	}
}

func TestDefaultPageSizeSourcePositive(t *testing.T) {
	if ps := DefaultPageSizeSource.PageSize(); ps <= 0 {
		t.Fatalf("DefaultPageSizeSource.PageSize() = %d, want > 0", ps)
	}
}

func TestFixedPageSize(t *testing.T) {
	var src PageSizeSource = FixedPageSize(2 << 20)
	if got := src.PageSize(); got != 2<<20 {
		t.Fatalf("FixedPageSize.PageSize() = %d, want %d", got, 2<<20)
	}
}
