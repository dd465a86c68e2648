// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "math"

// sturmCount returns the number of eigenvalues of the symmetric
// tridiagonal matrix (d, e) that are strictly less than x. It evaluates
// the Sturm sequence through the LDLᵀ recurrence and counts negative
// pivots, clamping near-zero pivots to -pivmin so the recurrence cannot
// divide by zero.
func sturmCount(n int, d, e []float64, x float64) int {
	pivmin := safmin
	for i := 0; i < n-1; i++ {
		if p := e[i] * e[i] * safmin; p > pivmin {
			pivmin = p
		}
	}
	count := 0
	q := d[0] - x
	if math.Abs(q) <= pivmin {
		q = -pivmin
	}
	if q < 0 {
		count++
	}
	for i := 1; i < n; i++ {
		q = d[i] - x - e[i-1]*e[i-1]/q
		if math.Abs(q) <= pivmin {
			q = -pivmin
		}
		if q < 0 {
			count++
		}
	}
	return count
}
