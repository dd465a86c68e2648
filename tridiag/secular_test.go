// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import (
	"math"
	"testing"
)

// The rank-one update diag(0,1) + p·z·zᵀ with p = 1 and
// z = (1/√2, 1/√2) is the matrix [[0.5,0.5],[0.5,1.5]], whose
// eigenvalues (2±√2)/2 are the roots of the secular equation.
func TestSecularSolveTwoPoles(t *testing.T) {
	t.Parallel()

	z := []float64{math.Sqrt(0.5), math.Sqrt(0.5)}

	d := []float64{0, 1}
	x, ok := secularSolve(2, d, z, 1, 0)
	if !ok {
		t.Fatal("interior root did not converge")
	}
	want := (2 - math.Sqrt2) / 2
	if math.Abs(x-want) > 1e-14 {
		t.Errorf("unexpected interior root: got %v, want %v", x, want)
	}
	// The pole copy must hold the translated distances d_i - x.
	if math.Abs(d[0]-(0-x)) > 1e-14 || math.Abs(d[1]-(1-x)) > 1e-14 {
		t.Errorf("pole copy not translated to the root: got %v", d)
	}

	d = []float64{0, 1}
	x, ok = secularSolveLast(2, d, z, 1)
	if !ok {
		t.Fatal("last root did not converge")
	}
	want = (2 + math.Sqrt2) / 2
	if math.Abs(x-want) > 1e-14 {
		t.Errorf("unexpected last root: got %v, want %v", x, want)
	}
}

func TestSecularEvalSplit(t *testing.T) {
	t.Parallel()

	d := []float64{-1, 0, 2, 5}
	z := []float64{0.5, 0.25, 0.25, 0.5}
	const pinv, x = 2.0, 1.0

	fx, fdx, _, _, _, _, _ := secularEval(0, 1, len(d), d, z, pinv, x, false)

	var want, wantd float64
	for i := range d {
		want += z[i] * z[i] / (d[i] - x)
		wantd += z[i] * z[i] / ((d[i] - x) * (d[i] - x))
	}
	want += pinv
	if math.Abs(fx-want) > 1e-14 {
		t.Errorf("unexpected f: got %v, want %v", fx, want)
	}
	if math.Abs(fdx-wantd) > 1e-14 {
		t.Errorf("unexpected f': got %v, want %v", fdx, wantd)
	}
	// modif == false must leave the poles untouched.
	if d[0] != -1 || d[3] != 5 {
		t.Errorf("poles modified: got %v", d)
	}
}
