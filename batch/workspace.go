// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"gonum.org/v1/gonum/lapack"

	"github.com/jzuniga-amd/stedc/tridiag"
)

// WorkspaceSizes holds the scratch lengths required by a batched solve,
// summed over the whole batch.
type WorkspaceSizes struct {
	Float64s int
	Ints     int
}

// Workspace is reusable scratch memory for batched solves. A Workspace
// must not be shared between concurrent calls.
type Workspace struct {
	work  []float64
	iwork []int
}

// NewWorkspace allocates a workspace of the given sizes.
func NewWorkspace(s WorkspaceSizes) *Workspace {
	return &Workspace{
		work:  make([]float64, s.Float64s),
		iwork: make([]int, s.Ints),
	}
}

func (ws *Workspace) fits(s WorkspaceSizes) bool {
	return ws != nil && len(ws.work) >= s.Float64s && len(ws.iwork) >= s.Ints
}

// compzFor maps a Mode onto the eigenvector job of the tridiagonal
// solver.
func compzFor(mode Mode) lapack.EVComp {
	switch mode {
	case EigenpairsTridiagonal:
		return lapack.EVTridiag
	case EigenpairsOriginal:
		return lapack.EVOrig
	default:
		return lapack.EVCompNone
	}
}

// solveSizes returns the per-element scratch lengths of Solve.
func solveSizes(mode Mode, n int) (lwork, liwork int) {
	var impl tridiag.Implementation
	var w [1]float64
	var iw [1]int
	impl.Stedc(compzFor(mode), n, nil, nil, nil, max(1, n), w[:], -1, iw[:], -1)
	return int(w[0]), iw[0]
}

// rangeSizes returns the per-element scratch lengths of SolveRange.
func rangeSizes(n int) (lwork, liwork int) {
	var impl tridiag.Implementation
	var w [1]float64
	var iw [1]int
	impl.Stedcx(tridiag.RangeAll, 0, 0, 0, 0, n, nil, nil, nil, nil, max(1, n), w[:], -1, iw[:], -1)
	return int(w[0]), iw[0]
}

// Sizes returns the workspace sizes required by Solve for a batch of
// batchCount matrices of order n.
func Sizes(mode Mode, n, batchCount int) WorkspaceSizes {
	lw, li := solveSizes(mode, n)
	return WorkspaceSizes{Float64s: lw * batchCount, Ints: li * batchCount}
}

// RangeSizes returns the workspace sizes required by SolveRange.
func RangeSizes(n, batchCount int) WorkspaceSizes {
	lw, li := rangeSizes(n)
	return WorkspaceSizes{Float64s: lw * batchCount, Ints: li * batchCount}
}

// HermitianSizes returns the workspace sizes required by
// SolveHermitian. On top of the tridiagonal solve each element carries
// an n×n real eigenvector matrix and two n×n staging areas for the
// complex back-transformation.
func HermitianSizes(mode Mode, n, batchCount int) WorkspaceSizes {
	lw, li := solveSizes(EigenpairsTridiagonal, n)
	return WorkspaceSizes{Float64s: (lw + 3*n*n) * batchCount, Ints: li * batchCount}
}
