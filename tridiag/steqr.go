// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "gonum.org/v1/gonum/lapack"

// solveLeaf computes the eigen-decomposition of one leaf sub-block of
// size sbs in place by QR iteration. d and e hold the leaf tridiagonal,
// z is the leaf's diagonal sub-block of the eigenvector accumulator,
// identity on entry, and work must have length at least
// max(1, 2*sbs-2). It reports whether the iteration converged.
func solveLeaf(sbs int, d, e, z []float64, ldz int, work []float64) bool {
	return lapackImpl.Dsteqr(lapack.EVOrig, sbs, d, e, z, ldz, work)
}

// eigenvaluesOnly computes all eigenvalues of the tridiagonal matrix by
// the Pal-Walker-Kahan variant of QL/QR iteration, in ascending order.
// d and e are overwritten. It reports whether the iteration converged.
func eigenvaluesOnly(n int, d, e []float64) bool {
	return lapackImpl.Dsterf(n, d, e)
}
