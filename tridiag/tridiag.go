// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import lapackgonum "gonum.org/v1/gonum/lapack/gonum"

// Implementation is the portable Go implementation of the divide and
// conquer tridiagonal eigensolvers. Its zero value is ready to use.
type Implementation struct{}

// ERange specifies the subset of eigenvalues computed by Stedcx.
type ERange byte

const (
	// RangeAll computes all eigenvalues.
	RangeAll ERange = 'A'
	// RangeValue computes the eigenvalues in the half-open interval
	// [vl, vu).
	RangeValue ERange = 'V'
	// RangeIndex computes the il-th through iu-th smallest eigenvalues,
	// counting from 1.
	RangeIndex ERange = 'I'
)

const (
	// maxIters is the iteration cap of the secular equation solvers.
	maxIters = 50

	// minDCSize is the matrix size below which divide and conquer is
	// not worthwhile and QR iteration is used directly.
	minDCSize = 32

	// maxLevels caps the depth of the merge tree of a split block, so a
	// block is bisected into at most 256 leaves.
	maxLevels = 8

	// eps is the distance from 1 to the next larger float64.
	eps = 0x1p-52

	// safmin is the smallest normal positive float64.
	safmin = 0x1p-1022
)

// lapackImpl provides the QR iteration leaf solvers and the Givens
// rotation generator.
var lapackImpl = lapackgonum.Implementation{}
