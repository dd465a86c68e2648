// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tridiag implements eigensolvers for symmetric tridiagonal
// matrices based on the divide and conquer algorithm.
//
// The matrix is first partitioned at negligible off-diagonal entries
// into independent split blocks. Each split block is recursively
// bisected into a balanced binary tree of small sub-blocks, the
// sub-blocks are solved directly by QR iteration, and sibling
// sub-blocks are then merged bottom-up: each merge is a rank-one
// modification of a diagonal matrix whose eigenvalues are the roots of
// a secular equation, located by a safeguarded rational interpolation
// with careful deflation of negligible and repeated eigenvalues.
//
// Routines follow the conventions of the gonum lapack packages:
// matrices are stored in row-major order with an explicit leading
// dimension, invalid arguments cause a panic, and workspace sizes may
// be queried by calling with lwork == -1 or liwork == -1.
package tridiag // import "github.com/jzuniga-amd/stedc/tridiag"
