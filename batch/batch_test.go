// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jzuniga-amd/stedc/batch"
	"github.com/jzuniga-amd/stedc/tridiag/testtridiag"
)

// makeBatch fills strided diagonals for batchCount random matrices and
// returns them along with pristine copies.
func makeBatch(rnd *rand.Rand, n, batchCount int) (d, e, d0, e0 []float64) {
	d = make([]float64, batchCount*n)
	for i := range d {
		d[i] = rnd.NormFloat64()
	}
	if n > 1 {
		e = make([]float64, batchCount*(n-1))
		for i := range e {
			e[i] = rnd.NormFloat64()
		}
	}
	d0 = append([]float64(nil), d...)
	e0 = append([]float64(nil), e...)
	return d, e, d0, e0
}

func TestSolve(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewPCG(3, 3))

	for _, test := range []struct {
		n, batchCount int
	}{
		{1, 3},
		{8, 4},
		{50, 1},
		{50, 32},
	} {
		n, bc := test.n, test.batchCount
		d, e, d0, e0 := makeBatch(rnd, n, bc)
		c := make([]float64, bc*n*n)
		info := make([]int, bc)
		ws := batch.NewWorkspace(batch.Sizes(batch.EigenpairsTridiagonal, n, bc))

		err := batch.Solve(batch.EigenpairsTridiagonal, n, d, e, c, n, info, bc, ws, nil)
		require.NoError(t, err, "n=%d,batchCount=%d", n, bc)

		for b := 0; b < bc; b++ {
			assert.Equal(t, 0, info[b], "element %d did not converge", b)
			db := d[b*n : (b+1)*n]
			assert.True(t, testtridiag.Sorted(db), "element %d eigenvalues not sorted", b)
			var e0b []float64
			if n > 1 {
				e0b = e0[b*(n-1) : (b+1)*(n-1)]
			}
			cb := c[b*n*n:]
			res := testtridiag.DecompositionResidual(n, d0[b*n:(b+1)*n], e0b, db, cb, n)
			assert.Less(t, res, 1e-12, "element %d residual too large", b)
			orth := testtridiag.OrthogonalityError(n, n, cb, n)
			assert.Less(t, orth, 1e-12, "element %d eigenvectors not orthonormal", b)
		}
	}
}

func TestSolveEigenvaluesOnly(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewPCG(4, 4))

	const n, bc = 40, 6
	d, e, _, _ := makeBatch(rnd, n, bc)
	dv := append([]float64(nil), d...)
	ev := append([]float64(nil), e...)

	info := make([]int, bc)
	ws := batch.NewWorkspace(batch.Sizes(batch.EigenvaluesOnly, n, bc))
	err := batch.Solve(batch.EigenvaluesOnly, n, d, e, nil, 1, info, bc, ws, &batch.Options{Parallelism: 2, Logger: zap.NewNop()})
	require.NoError(t, err)

	c := make([]float64, bc*n*n)
	infoV := make([]int, bc)
	wsV := batch.NewWorkspace(batch.Sizes(batch.EigenpairsTridiagonal, n, bc))
	err = batch.Solve(batch.EigenpairsTridiagonal, n, dv, ev, c, n, infoV, bc, wsV, nil)
	require.NoError(t, err)

	for b := 0; b < bc; b++ {
		require.Equal(t, 0, info[b])
		for i := 0; i < n; i++ {
			assert.InDelta(t, dv[b*n+i], d[b*n+i], 1e-10, "element %d eigenvalue %d", b, i)
		}
	}
}

func TestSolveArgumentErrors(t *testing.T) {
	t.Parallel()

	const n, bc = 4, 2
	d := make([]float64, bc*n)
	e := make([]float64, bc*(n-1))
	c := make([]float64, bc*n*n)
	info := make([]int, bc)
	ws := batch.NewWorkspace(batch.Sizes(batch.EigenpairsTridiagonal, n, bc))

	assert.ErrorIs(t, batch.Solve(batch.Mode(42), n, d, e, c, n, info, bc, ws, nil), batch.ErrInvalidMode)
	assert.ErrorIs(t, batch.Solve(batch.EigenpairsTridiagonal, -1, d, e, c, n, info, bc, ws, nil), batch.ErrInvalidSize)
	assert.ErrorIs(t, batch.Solve(batch.EigenpairsTridiagonal, n, d, e, c, n-1, info, bc, ws, nil), batch.ErrInvalidSize)
	assert.ErrorIs(t, batch.Solve(batch.EigenpairsTridiagonal, n, d[:n], e, c, n, info, bc, ws, nil), batch.ErrShortData)
	assert.ErrorIs(t, batch.Solve(batch.EigenpairsTridiagonal, n, d, e, c, n, info[:1], bc, ws, nil), batch.ErrShortData)
	assert.ErrorIs(t, batch.Solve(batch.EigenpairsTridiagonal, n, d, e, c, n, info, bc, nil, nil), batch.ErrWorkspace)

	small := batch.NewWorkspace(batch.Sizes(batch.EigenpairsTridiagonal, n, bc-1))
	assert.ErrorIs(t, batch.Solve(batch.EigenpairsTridiagonal, n, d, e, c, n, info, bc, small, nil), batch.ErrWorkspace)
}

func TestSolveRange(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewPCG(5, 5))

	const n, bc = 50, 4
	const il, iu = 1, 5
	d, e, d0, e0 := makeBatch(rnd, n, bc)

	// Full reference solve.
	df := append([]float64(nil), d...)
	ef := append([]float64(nil), e...)
	cf := make([]float64, bc*n*n)
	infoF := make([]int, bc)
	wsF := batch.NewWorkspace(batch.Sizes(batch.EigenpairsTridiagonal, n, bc))
	require.NoError(t, batch.Solve(batch.EigenpairsTridiagonal, n, df, ef, cf, n, infoF, bc, wsF, nil))

	w := make([]float64, bc*n)
	c := make([]float64, bc*n*n)
	nev := make([]int, bc)
	info := make([]int, bc)
	ws := batch.NewWorkspace(batch.RangeSizes(n, bc))
	err := batch.SolveRange(batch.RangeIndex, 0, 0, il, iu, n, d, e, w, c, n, nev, info, bc, ws, nil)
	require.NoError(t, err)

	for b := 0; b < bc; b++ {
		require.Equal(t, 0, info[b], "element %d", b)
		require.Equal(t, iu-il+1, nev[b], "element %d", b)
		for j := 0; j < nev[b]; j++ {
			assert.InDelta(t, df[b*n+il-1+j], w[b*n+j], 1e-11, "element %d eigenvalue %d", b, j)
		}
		orth := testtridiag.OrthogonalityError(n, nev[b], c[b*n*n:], n)
		assert.Less(t, orth, 1e-12, "element %d", b)
		// Selected columns satisfy the eigen-equation of the original
		// matrix.
		for j := 0; j < nev[b]; j++ {
			for i := 0; i < n; i++ {
				r := (d0[b*n+i] - w[b*n+j]) * c[b*n*n+i*n+j]
				if i > 0 {
					r += e0[b*(n-1)+i-1] * c[b*n*n+(i-1)*n+j]
				}
				if i < n-1 {
					r += e0[b*(n-1)+i] * c[b*n*n+(i+1)*n+j]
				}
				assert.Less(t, math.Abs(r), 1e-11, "element %d residual at (%d,%d)", b, i, j)
			}
		}
	}

	assert.ErrorIs(t,
		batch.SolveRange(batch.RangeValue, 2, 1, 0, 0, n, d, e, w, c, n, nev, info, bc, ws, nil),
		batch.ErrInvalidRange)
	assert.ErrorIs(t,
		batch.SolveRange(batch.RangeIndex, 0, 0, 0, 5, n, d, e, w, c, n, nev, info, bc, ws, nil),
		batch.ErrInvalidRange)
}

func TestSolveHermitian(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewPCG(6, 6))

	const n, bc = 20, 3
	d, e, _, _ := makeBatch(rnd, n, bc)

	// Real reference.
	dr := append([]float64(nil), d...)
	er := append([]float64(nil), e...)
	cr := make([]float64, bc*n*n)
	infoR := make([]int, bc)
	wsR := batch.NewWorkspace(batch.Sizes(batch.EigenpairsTridiagonal, n, bc))
	require.NoError(t, batch.Solve(batch.EigenpairsTridiagonal, n, dr, er, cr, n, infoR, bc, wsR, nil))

	for _, mode := range []batch.Mode{batch.EigenpairsTridiagonal, batch.EigenpairsOriginal} {
		dh := append([]float64(nil), d...)
		eh := append([]float64(nil), e...)
		ch := make([]complex128, bc*n*n)
		if mode == batch.EigenpairsOriginal {
			// Seed with the identity so both modes must agree with the
			// real reference.
			for b := 0; b < bc; b++ {
				for i := 0; i < n; i++ {
					ch[b*n*n+i*n+i] = 1
				}
			}
		}
		info := make([]int, bc)
		ws := batch.NewWorkspace(batch.HermitianSizes(mode, n, bc))
		err := batch.SolveHermitian(mode, n, dh, eh, ch, n, info, bc, ws, nil)
		require.NoError(t, err)

		for b := 0; b < bc; b++ {
			require.Equal(t, 0, info[b], "element %d", b)
			for i := 0; i < n; i++ {
				assert.InDelta(t, dr[b*n+i], dh[b*n+i], 1e-12, "element %d eigenvalue %d", b, i)
			}
			for i := 0; i < n*n; i++ {
				assert.InDelta(t, cr[b*n*n+i], real(ch[b*n*n+i]), 1e-12, "element %d vector entry %d", b, i)
				assert.InDelta(t, 0, imag(ch[b*n*n+i]), 1e-12, "element %d imaginary part %d", b, i)
			}
		}
	}

	assert.ErrorIs(t,
		batch.SolveHermitian(batch.EigenvaluesOnly, n, d, e, make([]complex128, bc*n*n), n, make([]int, bc), bc, batch.NewWorkspace(batch.HermitianSizes(batch.EigenpairsTridiagonal, n, bc)), nil),
		batch.ErrInvalidMode)
}
