// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jzuniga-amd/stedc/tridiag"
)

// Scalar is the element type of an eigenvector matrix.
type Scalar interface {
	float64 | complex128
}

// SolveHermitian computes the eigen-decompositions of a batch of real
// symmetric tridiagonal matrices on behalf of complex Hermitian
// callers. d and e are stored as in Solve, and c holds complex n×n
// row-major blocks with leading dimension ldc. The eigenvalues are
// real and returned in d; the tridiagonal eigenvectors are real and
// are multiplied into the complex matrices in c.
//
// mode must be EigenpairsTridiagonal, which overwrites each block of c
// with the tridiagonal eigenvectors, or EigenpairsOriginal, which
// multiplies the unitary reduction matrices held in c by them.
//
// ws must satisfy HermitianSizes(mode, n, batchCount).
func SolveHermitian(mode Mode, n int, d, e []float64, c []complex128, ldc int, info []int, batchCount int, ws *Workspace, opts *Options) error {
	if mode != EigenpairsTridiagonal && mode != EigenpairsOriginal {
		return ErrInvalidMode
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
	case len(info) < batchCount:
		return ErrShortData
	case len(d) < batchCount*n:
		return ErrShortData
	case n > 1 && len(e) < batchCount*(n-1):
		return ErrShortData
	case n > 0 && len(c) < (batchCount-1)*n*ldc+(n-1)*ldc+n:
		return ErrShortData
	}
	if !ws.fits(HermitianSizes(mode, n, batchCount)) {
		return ErrWorkspace
	}
	if n == 0 {
		for b := range info[:batchCount] {
			info[b] = 0
		}
		return nil
	}

	logger := opts.logger()
	lw, li := solveSizes(EigenpairsTridiagonal, n)
	stride := lw + 3*n*n

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
			cb := c[b*n*ldc : b*n*ldc+(n-1)*ldc+n]
			wb := ws.work[b*stride : (b+1)*stride]
			ib := ws.iwork[b*li : (b+1)*li]
			q := wb[lw : lw+n*n]
			part := wb[lw+n*n : lw+2*n*n]
			tmp := wb[lw+2*n*n : lw+3*n*n]

			info[b] = impl.Stedc(lapack.EVTridiag, n, db, eb, q, n, wb[:lw], lw, ib, li)
			switch mode {
			case EigenpairsTridiagonal:
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						cb[i*ldc+j] = complex(q[i*n+j], 0)
					}
				}
			case EigenpairsOriginal:
				backtransform(n, cb, ldc, q, n, part, tmp)
			}
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

// backtransform overwrites the n×n matrix c with c·q, where q is real.
// Complex matrices are handled as two real multiplications, one per
// component, so the same real kernel serves both element types. part
// and tmp are n×n real staging areas.
func backtransform[T Scalar](n int, c []T, ldc int, q []float64, ldq int, part, tmp []float64) {
	bi := blas64.Implementation()
	switch cc := any(c).(type) {
	case []float64:
		for i := 0; i < n; i++ {
			copy(part[i*n:i*n+n], cc[i*ldc:i*ldc+n])
		}
		bi.Dgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, part, n, q, ldq, 0, tmp, n)
		for i := 0; i < n; i++ {
			copy(cc[i*ldc:i*ldc+n], tmp[i*n:i*n+n])
		}
	case []complex128:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				part[i*n+j] = real(cc[i*ldc+j])
			}
		}
		bi.Dgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, part, n, q, ldq, 0, tmp, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				part[i*n+j] = imag(cc[i*ldc+j])
				cc[i*ldc+j] = complex(tmp[i*n+j], 0)
			}
		}
		bi.Dgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, part, n, q, ldq, 0, tmp, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				cc[i*ldc+j] = complex(real(cc[i*ldc+j]), tmp[i*n+j])
			}
		}
	}
}
