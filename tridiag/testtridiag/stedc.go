// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testtridiag

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack"
)

// Stedcer wraps the Stedc method.
type Stedcer interface {
	Stedc(compz lapack.EVComp, n int, d, e, z []float64, ldz int, work []float64, lwork int, iwork []int, liwork int) int
}

// StedcTest tests a Stedc implementation on random, split and
// clustered matrices across the QR iteration and divide and conquer
// size regimes.
func StedcTest(t *testing.T, impl Stedcer) {
	rnd := rand.New(rand.NewPCG(1, 1))

	testStedcQuick(t, impl)
	for _, n := range []int{2, 3, 4, 5, 8, 12, 16, 25, 31, 32, 33, 40, 50, 64, 100} {
		for _, extra := range []int{0, 3} {
			testStedcRandom(t, impl, rnd, n, n+extra)
		}
	}
	testStedcSplit(t, impl, rnd)
	testStedcClustered(t, impl)
	testStedcOriginal(t, impl, rnd)
	testStedcValuesOnly(t, impl, rnd)
}

// solveStedc queries the workspace sizes, allocates and calls Stedc.
func solveStedc(impl Stedcer, compz lapack.EVComp, n int, d, e, z []float64, ldz int) int {
	var wq [1]float64
	var iwq [1]int
	impl.Stedc(compz, n, nil, nil, nil, max(1, n), wq[:], -1, iwq[:], -1)
	lwork := int(wq[0])
	liwork := iwq[0]
	work := make([]float64, lwork)
	iwork := make([]int, liwork)
	return impl.Stedc(compz, n, d, e, z, ldz, work, lwork, iwork, liwork)
}

func testStedcQuick(t *testing.T, impl Stedcer) {
	t.Helper()

	// n == 0 must not touch any slice.
	work := make([]float64, 1)
	iwork := make([]int, 1)
	info := impl.Stedc(lapack.EVTridiag, 0, nil, nil, nil, 1, work, 1, iwork, 1)
	if info != 0 {
		t.Errorf("unexpected info for n=0: got %d", info)
	}

	// n == 1 returns the diagonal unchanged and the unit eigenvector.
	d := []float64{3}
	z := []float64{0}
	info = impl.Stedc(lapack.EVTridiag, 1, d, nil, z, 1, work, 1, iwork, 1)
	if info != 0 {
		t.Errorf("unexpected info for n=1: got %d", info)
	}
	if d[0] != 3 {
		t.Errorf("unexpected eigenvalue for n=1: got %v, want 3", d[0])
	}
	if z[0] != 1 {
		t.Errorf("unexpected eigenvector for n=1: got %v, want 1", z[0])
	}
}

func testStedcRandom(t *testing.T, impl Stedcer, rnd *rand.Rand, n, ldz int) {
	t.Helper()

	d, e := RandomTridiagonal(rnd, n)
	d0 := append([]float64(nil), d...)
	e0 := append([]float64(nil), e...)
	z := make([]float64, n*ldz)

	info := solveStedc(impl, lapack.EVTridiag, n, d, e, z, ldz)
	if info != 0 {
		t.Errorf("n=%v,ldz=%v: unexpected info: got %d", n, ldz, info)
		return
	}
	if !Sorted(d) {
		t.Errorf("n=%v,ldz=%v: eigenvalues not sorted", n, ldz)
	}
	if res := DecompositionResidual(n, d0, e0, d, z, ldz); res > 1e-12 {
		t.Errorf("n=%v,ldz=%v: residual too large: got %v", n, ldz, res)
	}
	if orth := OrthogonalityError(n, n, z, ldz); orth > 1e-12 {
		t.Errorf("n=%v,ldz=%v: eigenvectors not orthonormal: got %v", n, ldz, orth)
	}
}

// testStedcSplit checks that a matrix with an exactly zero off-diagonal
// is solved as two independent blocks: its spectrum must match the
// union of the spectra of the halves.
func testStedcSplit(t *testing.T, impl Stedcer, rnd *rand.Rand) {
	t.Helper()

	const n, half = 40, 20
	d, e := RandomTridiagonal(rnd, n)
	e[half-1] = 0
	d0 := append([]float64(nil), d...)
	e0 := append([]float64(nil), e...)
	z := make([]float64, n*n)

	info := solveStedc(impl, lapack.EVTridiag, n, d, e, z, n)
	if info != 0 {
		t.Errorf("split: unexpected info: got %d", info)
		return
	}
	if res := DecompositionResidual(n, d0, e0, d, z, n); res > 1e-12 {
		t.Errorf("split: residual too large: got %v", res)
	}

	// Solve the halves independently.
	want := make([]float64, 0, n)
	for _, r := range [][2]int{{0, half}, {half, n}} {
		dh := append([]float64(nil), d0[r[0]:r[1]]...)
		eh := append([]float64(nil), e0[r[0]:r[1]-1]...)
		zh := make([]float64, half*half)
		if info := solveStedc(impl, lapack.EVTridiag, half, dh, eh, zh, half); info != 0 {
			t.Fatalf("split: half solve failed: info=%d", info)
		}
		want = append(want, dh...)
	}
	sort.Float64s(want)
	if !floats.EqualApprox(d, want, 1e-11) {
		t.Errorf("split: spectrum does not match the independent halves")
	}
}

// testStedcClustered exercises heavy deflation: many repeated diagonal
// entries coupled by small off-diagonals produce clustered eigenvalues
// that must deflate without losing orthogonality.
func testStedcClustered(t *testing.T, impl Stedcer) {
	t.Helper()

	const n = 40
	d := make([]float64, n)
	e := make([]float64, n-1)
	for i := range d {
		d[i] = float64(1 + i%2)
	}
	for i := range e {
		e[i] = 1e-3
	}
	d0 := append([]float64(nil), d...)
	e0 := append([]float64(nil), e...)
	z := make([]float64, n*n)

	info := solveStedc(impl, lapack.EVTridiag, n, d, e, z, n)
	if info != 0 {
		t.Errorf("clustered: unexpected info: got %d", info)
		return
	}
	if !Sorted(d) {
		t.Errorf("clustered: eigenvalues not sorted")
	}
	if res := DecompositionResidual(n, d0, e0, d, z, n); res > 1e-12 {
		t.Errorf("clustered: residual too large: got %v", res)
	}
	if orth := OrthogonalityError(n, n, z, n); orth > 1e-12 {
		t.Errorf("clustered: eigenvectors not orthonormal: got %v", orth)
	}
}

// testStedcOriginal checks that the back-transforming job applied to
// the identity agrees with the tridiagonal job.
func testStedcOriginal(t *testing.T, impl Stedcer, rnd *rand.Rand) {
	t.Helper()

	for _, n := range []int{5, 50} {
		d, e := RandomTridiagonal(rnd, n)
		dv := append([]float64(nil), d...)
		ev := append([]float64(nil), e...)

		zt := make([]float64, n*n)
		if info := solveStedc(impl, lapack.EVTridiag, n, d, e, zt, n); info != 0 {
			t.Fatalf("n=%v: tridiagonal job failed: info=%d", n, info)
		}

		zo := make([]float64, n*n)
		for i := 0; i < n; i++ {
			zo[i*n+i] = 1
		}
		if info := solveStedc(impl, lapack.EVOrig, n, dv, ev, zo, n); info != 0 {
			t.Fatalf("n=%v: original job failed: info=%d", n, info)
		}

		if !floats.EqualApprox(d, dv, 1e-14) {
			t.Errorf("n=%v: eigenvalues differ between jobs", n)
		}
		if !floats.EqualApprox(zt, zo, 1e-13) {
			t.Errorf("n=%v: eigenvectors differ between jobs", n)
		}
	}
}

// testStedcValuesOnly checks that the eigenvalue-only job agrees with
// the full decomposition.
func testStedcValuesOnly(t *testing.T, impl Stedcer, rnd *rand.Rand) {
	t.Helper()

	for _, n := range []int{7, 50} {
		d, e := RandomTridiagonal(rnd, n)
		dv := append([]float64(nil), d...)
		ev := append([]float64(nil), e...)

		z := make([]float64, n*n)
		if info := solveStedc(impl, lapack.EVTridiag, n, d, e, z, n); info != 0 {
			t.Fatalf("n=%v: vector job failed: info=%d", n, info)
		}
		if info := solveStedc(impl, lapack.EVCompNone, n, dv, ev, nil, 1); info != 0 {
			t.Fatalf("n=%v: values-only job failed: info=%d", n, info)
		}

		scale := math.Max(math.Abs(d[0]), math.Abs(d[n-1]))
		for i := range d {
			if math.Abs(d[i]-dv[i]) > 1e-11*math.Max(scale, 1) {
				t.Errorf("n=%v: eigenvalue %d differs between jobs: %v vs %v", n, i, d[i], dv[i])
				break
			}
		}
	}
}
