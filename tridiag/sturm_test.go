// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "testing"

func TestSturmCount(t *testing.T) {
	t.Parallel()

	// [[0, 1], [1, 0]] has eigenvalues -1 and 1.
	d := []float64{0, 0}
	e := []float64{1}
	for _, test := range []struct {
		x    float64
		want int
	}{
		{-2, 0},
		{-1.5, 0},
		{0, 1},
		{0.5, 1},
		{1.5, 2},
	} {
		if got := sturmCount(2, d, e, test.x); got != test.want {
			t.Errorf("unexpected count below %v: got %d, want %d", test.x, got, test.want)
		}
	}

	// Diagonal matrix: counts are exact ranks.
	d = []float64{1, 2, 3}
	e = []float64{0, 0}
	for _, test := range []struct {
		x    float64
		want int
	}{
		{0.5, 0},
		{1.5, 1},
		{2.5, 2},
		{3.5, 3},
	} {
		if got := sturmCount(3, d, e, test.x); got != test.want {
			t.Errorf("unexpected count below %v: got %d, want %d", test.x, got, test.want)
		}
	}
}
