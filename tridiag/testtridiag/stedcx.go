// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testtridiag

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack"

	"github.com/jzuniga-amd/stedc/tridiag"
)

// Stedcxer wraps the Stedcx method.
type Stedcxer interface {
	Stedcx(rng tridiag.ERange, vl, vu float64, il, iu int, n int, d, e, w, z []float64, ldz int, work []float64, lwork int, iwork []int, liwork int) (nev, info int)
}

// StedcxTest tests a range-restricted Stedcx implementation against a
// full Stedc reference decomposition.
func StedcxTest(t *testing.T, impl Stedcxer, ref Stedcer) {
	rnd := rand.New(rand.NewPCG(2, 2))

	for _, n := range []int{1, 4, 12, 33, 50} {
		d, e := RandomTridiagonal(rnd, n)
		d0 := append([]float64(nil), d...)
		e0 := append([]float64(nil), e...)

		// Full reference spectrum.
		full := append([]float64(nil), d...)
		ef := append([]float64(nil), e...)
		zf := make([]float64, n*n)
		if info := solveStedc(ref, lapack.EVTridiag, n, full, ef, zf, n); info != 0 {
			t.Fatalf("n=%v: reference solve failed: info=%d", n, info)
		}

		testStedcxAll(t, impl, n, d0, e0, full)
		testStedcxIndex(t, impl, n, d0, e0, full)
		if n > 1 {
			testStedcxValue(t, impl, n, d0, e0, full)
		}
	}
}

// solveStedcx queries the workspace sizes, allocates and calls Stedcx.
func solveStedcx(impl Stedcxer, rng tridiag.ERange, vl, vu float64, il, iu, n int, d, e, w, z []float64, ldz int) (nev, info int) {
	var wq [1]float64
	var iwq [1]int
	impl.Stedcx(rng, vl, vu, il, iu, n, nil, nil, nil, nil, max(1, n), wq[:], -1, iwq[:], -1)
	lwork := int(wq[0])
	liwork := iwq[0]
	work := make([]float64, lwork)
	iwork := make([]int, liwork)
	return impl.Stedcx(rng, vl, vu, il, iu, n, d, e, w, z, ldz, work, lwork, iwork, liwork)
}

func checkSelected(t *testing.T, tag string, n, nev int, d0, e0, w, z []float64, want []float64) {
	t.Helper()
	if nev != len(want) {
		t.Errorf("%s: unexpected nev: got %d, want %d", tag, nev, len(want))
		return
	}
	if nev == 0 {
		return
	}
	if !floats.EqualApprox(w[:nev], want, 1e-11) {
		t.Errorf("%s: selected eigenvalues do not match the full spectrum", tag)
	}
	// Residual of the selected columns against the full matrix.
	var resid float64
	for j := 0; j < nev; j++ {
		for i := 0; i < n; i++ {
			r := (d0[i] - w[j]) * z[i*n+j]
			if i > 0 {
				r += e0[i-1] * z[(i-1)*n+j]
			}
			if i < n-1 {
				r += e0[i] * z[(i+1)*n+j]
			}
			if r < 0 {
				r = -r
			}
			if r > resid {
				resid = r
			}
		}
	}
	if resid > 1e-12*float64(n) {
		t.Errorf("%s: selected eigenvector residual too large: got %v", tag, resid)
	}
	if orth := OrthogonalityError(n, nev, z, n); orth > 1e-12 {
		t.Errorf("%s: selected eigenvectors not orthonormal: got %v", tag, orth)
	}
}

func testStedcxAll(t *testing.T, impl Stedcxer, n int, d0, e0, full []float64) {
	t.Helper()
	d := append([]float64(nil), d0...)
	e := append([]float64(nil), e0...)
	w := make([]float64, n)
	z := make([]float64, n*n)
	nev, info := solveStedcx(impl, tridiag.RangeAll, 0, 0, 0, 0, n, d, e, w, z, n)
	if info != 0 {
		t.Errorf("all,n=%v: unexpected info: got %d", n, info)
		return
	}
	checkSelected(t, "all", n, nev, d0, e0, w, z, full)
}

func testStedcxIndex(t *testing.T, impl Stedcxer, n int, d0, e0, full []float64) {
	t.Helper()
	il := 1
	iu := min(5, n)
	d := append([]float64(nil), d0...)
	e := append([]float64(nil), e0...)
	w := make([]float64, n)
	z := make([]float64, n*n)
	nev, info := solveStedcx(impl, tridiag.RangeIndex, 0, 0, il, iu, n, d, e, w, z, n)
	if info != 0 {
		t.Errorf("index,n=%v: unexpected info: got %d", n, info)
		return
	}
	checkSelected(t, "index", n, nev, d0, e0, w, z, full[il-1:iu])
}

func testStedcxValue(t *testing.T, impl Stedcxer, n int, d0, e0, full []float64) {
	t.Helper()
	// An interval containing an interior run of the spectrum, with
	// endpoints strictly between eigenvalues.
	lo := n / 4
	hi := 3 * n / 4
	vl := (full[lo-1] + full[lo]) / 2
	vu := (full[hi-1] + full[hi]) / 2
	d := append([]float64(nil), d0...)
	e := append([]float64(nil), e0...)
	w := make([]float64, n)
	z := make([]float64, n*n)
	nev, info := solveStedcx(impl, tridiag.RangeValue, vl, vu, 0, 0, n, d, e, w, z, n)
	if info != 0 {
		t.Errorf("value,n=%v: unexpected info: got %d", n, info)
		return
	}
	checkSelected(t, "value", n, nev, d0, e0, w, z, full[lo:hi])
}
