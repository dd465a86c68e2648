// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "gonum.org/v1/gonum/lapack"

// Workspace layout of the divide and conquer path. The float64
// workspace of Stedc carves into
//
//	q     n×n  eigenvector accumulator
//	vtmp  n×n  staging area for merged eigenvectors
//	poles n×n  per-column pole copies for the secular solvers
//	z     n    rank-one update vector
//	roots n    computed secular roots
//	leaf  2n   QR iteration scratch, sliced disjointly per leaf
//
// and the integer workspace into
//
//	splits n+2  split block boundaries and count
//	ns     n    leaf sizes, indexed from each block start
//	ps     n    leaf start positions, indexed likewise
//	mask   n    per-column deflation flags
//	perm   n    compaction permutation
//
// Stedcx appends one more n×n region for its internal eigenvector
// matrix.

// stedcWork returns the minimum lengths of work and iwork for Stedc.
func stedcWork(compz lapack.EVComp, n int) (lwork, liwork int) {
	switch {
	case n <= 1 || compz == lapack.EVCompNone:
		return 1, 1
	case n < minDCSize:
		return max(1, 2*n-2), 1
	default:
		return 3*n*n + 4*n, 5*n + 2
	}
}

// stedcxWork returns the minimum lengths of work and iwork for Stedcx.
func stedcxWork(n int) (lwork, liwork int) {
	if n <= 1 {
		return 1, 1
	}
	lw, li := stedcWork(lapack.EVTridiag, n)
	return lw + n*n, li
}
