// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "gonum.org/v1/gonum/blas/blas64"

// sortEigen sorts the eigenvalues in d into ascending order by
// selection sort, swapping the corresponding columns of z to match.
// z may be nil when no eigenvectors are carried.
func sortEigen(n int, d, z []float64, ldz int) {
	bi := blas64.Implementation()
	for i := 1; i < n; i++ {
		l := i - 1
		m := l
		p := d[l]
		for j := i; j < n; j++ {
			if d[j] < p {
				m = j
				p = d[j]
			}
		}
		if m == l {
			continue
		}
		d[m] = d[l]
		d[l] = p
		if z != nil {
			bi.Dswap(n, z[l:], ldz, z[m:], ldz)
		}
	}
}
