// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"errors"
	"runtime"

	"go.uber.org/zap"
)

// Mode selects what a batched solve computes.
type Mode int

const (
	// EigenvaluesOnly computes eigenvalues and leaves c untouched.
	EigenvaluesOnly Mode = iota
	// EigenpairsTridiagonal computes eigenvalues and overwrites c with
	// the eigenvectors of the tridiagonal matrices.
	EigenpairsTridiagonal
	// EigenpairsOriginal computes eigenvalues and multiplies the
	// matrices held in c, typically the orthogonal reductions of dense
	// originals, by the tridiagonal eigenvectors.
	EigenpairsOriginal
)

// Range selects the eigenvalue subset of a SolveRange call.
type Range int

const (
	// RangeAll selects all eigenvalues.
	RangeAll Range = iota
	// RangeValue selects the eigenvalues in [vl, vu).
	RangeValue
	// RangeIndex selects the il-th through iu-th smallest eigenvalues,
	// counting from 1.
	RangeIndex
)

// Options configures a batched solve. A nil *Options uses defaults.
type Options struct {
	// Parallelism bounds the number of batch elements solved
	// concurrently. Nonpositive means GOMAXPROCS.
	Parallelism int

	// Logger receives per-element completion and non-convergence
	// events. Nil disables logging.
	Logger *zap.Logger
}

func (o *Options) parallelism() int {
	if o != nil && o.Parallelism > 0 {
		return o.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

var (
	// ErrInvalidMode is returned for an unknown Mode, or a Mode a call
	// does not support.
	ErrInvalidMode = errors.New("batch: invalid solve mode")
	// ErrInvalidRange is returned for an unknown Range or an empty or
	// out-of-bounds selection.
	ErrInvalidRange = errors.New("batch: invalid selection range")
	// ErrInvalidSize is returned for negative sizes or a leading
	// dimension smaller than the matrix order.
	ErrInvalidSize = errors.New("batch: invalid matrix size")
	// ErrShortData is returned when a data slice cannot hold the whole
	// batch.
	ErrShortData = errors.New("batch: insufficient data length")
	// ErrWorkspace is returned when the workspace does not match the
	// sizes query of the call.
	ErrWorkspace = errors.New("batch: workspace too small")
)

func validMode(mode Mode) bool {
	return mode == EigenvaluesOnly || mode == EigenpairsTridiagonal || mode == EigenpairsOriginal
}
