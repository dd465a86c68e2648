// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "testing"

func TestNumLevels(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		n, want int
	}{
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
		{5, 2},
		{32, 2},
		{33, 4},
		{232, 4},
		{233, 5},
		{295, 5},
		{296, 7},
		{1946, 7},
		{1947, 8},
		{100000, 8},
	} {
		if got := numLevels(test.n); got != test.want {
			t.Errorf("unexpected level count for n=%d: got %d, want %d", test.n, got, test.want)
		}
	}
}

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	// An exactly zero off-diagonal always splits.
	d := []float64{1, 2, 3, 4}
	e := []float64{1, 0, 1}
	splits := make([]int, len(d)+2)
	nb := splitBlocks(len(d), d, e, splits)
	if nb != 2 {
		t.Fatalf("unexpected block count: got %d, want 2", nb)
	}
	if splits[0] != 0 || splits[1] != 2 || splits[2] != 4 {
		t.Errorf("unexpected boundaries: got %v, want [0 2 4]", splits[:nb+1])
	}
	if splits[len(d)+1] != nb {
		t.Errorf("stored block count mismatch: got %d, want %d", splits[len(d)+1], nb)
	}

	// A tiny but non-negligible off-diagonal does not split.
	d = []float64{1, 2, 3, 4}
	e = []float64{1, 1e-10, 1}
	nb = splitBlocks(len(d), d, e, splits)
	if nb != 1 {
		t.Errorf("unexpected split at non-negligible entry: got %d blocks", nb)
	}

	// An off-diagonal below the relative threshold splits.
	e = []float64{1, 1e-17, 1}
	nb = splitBlocks(len(d), d, e, splits)
	if nb != 2 {
		t.Errorf("missing split at negligible entry: got %d blocks", nb)
	}
}

func TestDivideBlock(t *testing.T) {
	t.Parallel()

	const bs = 7
	d := make([]float64, bs)
	e := make([]float64, bs-1)
	for i := range d {
		d[i] = 10 + float64(i)
	}
	for i := range e {
		e[i] = 1
	}
	ns := make([]int, bs)
	ps := make([]int, bs)
	blks := divideBlock(0, bs, d, e, ns, ps)
	if blks != 4 {
		t.Fatalf("unexpected leaf count: got %d, want 4", blks)
	}
	wantNs := []int{1, 2, 2, 2}
	wantPs := []int{0, 1, 3, 5}
	for i := 0; i < blks; i++ {
		if ns[i] != wantNs[i] || ps[i] != wantPs[i] {
			t.Fatalf("unexpected leaf layout: got ns=%v ps=%v, want ns=%v ps=%v",
				ns[:blks], ps[:blks], wantNs, wantPs)
		}
	}
	// The diagonal on both sides of each boundary is reduced by the
	// connecting off-diagonal.
	for i := 1; i < blks; i++ {
		cut := ps[i]
		if d[cut] != 10+float64(cut)-e[cut-1] || d[cut-1] != 10+float64(cut-1)-e[cut-1] {
			t.Errorf("tear not applied at boundary %d: d=%v", cut, d)
		}
	}
}
