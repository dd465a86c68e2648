// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jzuniga-amd/stedc/tridiag"
)

// Solve computes the eigen-decompositions of a batch of batchCount
// symmetric tridiagonal matrices of order n. Element b occupies
// d[b*n:(b+1)*n] and e[b*(n-1):(b+1)*(n-1)], and, when eigenvectors are
// requested, the n×n row-major block of c starting at row b*n with
// leading dimension ldc. On return the diagonals hold the eigenvalues
// in ascending order, with eigenvector columns in matching order, and
// info[b] holds the tridiag.Implementation.Stedc status of element b.
//
// ws must satisfy Sizes(mode, n, batchCount).
func Solve(mode Mode, n int, d, e, c []float64, ldc int, info []int, batchCount int, ws *Workspace, opts *Options) error {
	if !validMode(mode) {
		return ErrInvalidMode
	}
	vectors := mode != EigenvaluesOnly
	switch {
	case n < 0 || batchCount < 0:
		return ErrInvalidSize
	case vectors && ldc < max(1, n):
		return ErrInvalidSize
	}
	if batchCount == 0 {
		return nil
	}
	switch {
	case len(info) < batchCount:
		return ErrShortData
	case len(d) < batchCount*n:
		return ErrShortData
	case n > 1 && len(e) < batchCount*(n-1):
		return ErrShortData
	case vectors && n > 0 && len(c) < (batchCount-1)*n*ldc+(n-1)*ldc+n:
		return ErrShortData
	}
	if !ws.fits(Sizes(mode, n, batchCount)) {
		return ErrWorkspace
	}
	if n == 0 {
		for b := range info[:batchCount] {
			info[b] = 0
		}
		return nil
	}

	logger := opts.logger()
	lw, li := solveSizes(mode, n)
	compz := compzFor(mode)

	var impl tridiag.Implementation
	g := new(errgroup.Group)
	g.SetLimit(opts.parallelism())
	for b := 0; b < batchCount; b++ {
		b := b
		g.Go(func() error {
			db := d[b*n : (b+1)*n]
			var eb []float64
			if n > 1 {
				eb = e[b*(n-1) : (b+1)*(n-1)]
			}
			var cb []float64
			if vectors {
				cb = c[b*n*ldc : b*n*ldc+(n-1)*ldc+n]
			}
			wb := ws.work[b*lw : (b+1)*lw]
			ib := ws.iwork[b*li : (b+1)*li]
			info[b] = impl.Stedc(compz, n, db, eb, cb, ldc, wb, lw, ib, li)
			if info[b] != 0 {
				logger.Warn("eigensolve did not converge",
					zap.Int("batchIndex", b), zap.Int("info", info[b]))
			} else {
				logger.Debug("batch element solved", zap.Int("batchIndex", b))
			}
			return nil
		})
	}
	return g.Wait()
}

// SolveRange computes a subset of the eigen-decompositions of a batch
// of symmetric tridiagonal matrices, stored as in Solve. The subset is
// selected by rng together with [vl, vu) or the 1-based index interval
// [il, iu], identically for every element. The selected eigenvalues of
// element b are stored in ascending order in w[b*n:b*n+nev[b]] and the
// matching eigenvectors in the first nev[b] columns of its block of c.
//
// ws must satisfy RangeSizes(n, batchCount).
func SolveRange(rng Range, vl, vu float64, il, iu int, n int, d, e, w, c []float64, ldc int, nev, info []int, batchCount int, ws *Workspace, opts *Options) error {
	var trng tridiag.ERange
	switch rng {
	case RangeAll:
		trng = tridiag.RangeAll
	case RangeValue:
		trng = tridiag.RangeValue
		if vl >= vu {
			return ErrInvalidRange
		}
	case RangeIndex:
		trng = tridiag.RangeIndex
		if n > 0 && (il < 1 || iu < il || n < iu) {
			return ErrInvalidRange
		}
	default:
		return ErrInvalidRange
	}
	switch {
	case n < 0 || batchCount < 0:
		return ErrInvalidSize
	case ldc < max(1, n):
		return ErrInvalidSize
	}
	if batchCount == 0 {
		return nil
	}
	switch {
	case len(info) < batchCount || len(nev) < batchCount:
		return ErrShortData
	case len(d) < batchCount*n || len(w) < batchCount*n:
		return ErrShortData
	case n > 1 && len(e) < batchCount*(n-1):
		return ErrShortData
	case n > 0 && len(c) < (batchCount-1)*n*ldc+(n-1)*ldc+n:
		return ErrShortData
	}
	if !ws.fits(RangeSizes(n, batchCount)) {
		return ErrWorkspace
	}
	if n == 0 {
		for b := 0; b < batchCount; b++ {
			nev[b] = 0
			info[b] = 0
		}
		return nil
	}

	logger := opts.logger()
	lw, li := rangeSizes(n)

	var impl tridiag.Implementation
	g := new(errgroup.Group)
	g.SetLimit(opts.parallelism())
	for b := 0; b < batchCount; b++ {
		b := b
		g.Go(func() error {
			db := d[b*n : (b+1)*n]
			var eb []float64
			if n > 1 {
				eb = e[b*(n-1) : (b+1)*(n-1)]
			}
			wv := w[b*n : (b+1)*n]
			cb := c[b*n*ldc : b*n*ldc+(n-1)*ldc+n]
			wb := ws.work[b*lw : (b+1)*lw]
			ib := ws.iwork[b*li : (b+1)*li]
			nev[b], info[b] = impl.Stedcx(trng, vl, vu, il, iu, n, db, eb, wv, cb, ldc, wb, lw, ib, li)
			if info[b] != 0 {
				logger.Warn("eigensolve did not converge",
					zap.Int("batchIndex", b), zap.Int("info", info[b]))
			} else {
				logger.Debug("batch element solved",
					zap.Int("batchIndex", b), zap.Int("nev", nev[b]))
			}
			return nil
		})
	}
	return g.Wait()
}
