// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "gonum.org/v1/gonum/lapack"

// Stedcx computes a subset of the eigenvalues and eigenvectors of the
// n×n symmetric tridiagonal matrix with diagonal d and off-diagonal e.
// The subset is selected by rng:
//
//	RangeAll    all eigenvalues
//	RangeValue  the eigenvalues in the half-open interval [vl, vu)
//	RangeIndex  the il-th through iu-th smallest eigenvalues, counting
//	            from 1
//
// vl and vu are not referenced unless rng is RangeValue, and il and iu
// are not referenced unless rng is RangeIndex, in which case
// 1 <= il <= iu <= n is required when n > 0.
//
// The full spectrum is computed by divide and conquer; the selection is
// resolved against the ascending order, for RangeValue by Sturm
// sequence bisection counts taken before the matrix is overwritten. The
// selected eigenvalues are stored in ascending order in w[:nev] and the
// matching eigenvectors in the first nev columns of z. d and e are
// overwritten.
//
// work must have length at least lwork and iwork at least liwork, where
// the minimums are those of Stedc with eigenvectors plus n*n extra
// float64s for the internal eigenvector matrix. If lwork or liwork is
// -1, the minimum lengths are stored into work[0] and iwork[0] and no
// computation is performed.
//
// Stedcx returns the number of selected eigenvalues and an info value
// with the same meaning as in Stedc.
func (impl Implementation) Stedcx(rng ERange, vl, vu float64, il, iu int, n int, d, e, w, z []float64, ldz int, work []float64, lwork int, iwork []int, liwork int) (nev, info int) {
	switch {
	case rng != RangeAll && rng != RangeValue && rng != RangeIndex:
		panic(badERange)
	case n < 0:
		panic(nLT0)
	case ldz < max(1, n):
		panic(badLdZ)
	case rng == RangeValue && vl >= vu:
		panic(badVlVu)
	case rng == RangeIndex && n > 0 && (il < 1 || iu < il || n < iu):
		panic(badIlIu)
	}

	lwmin, liwmin := stedcxWork(n)
	if lwork == -1 || liwork == -1 {
		if lwork == -1 {
			work[0] = float64(lwmin)
		}
		if liwork == -1 {
			iwork[0] = liwmin
		}
		return 0, 0
	}

	switch {
	case lwork < lwmin:
		panic(badLWork)
	case liwork < liwmin:
		panic(badLIWork)
	case len(work) < lwork:
		panic(shortWork)
	case len(iwork) < liwork:
		panic(shortIWork)
	}
	if n > 0 {
		switch {
		case len(d) < n:
			panic(shortD)
		case len(e) < n-1:
			panic(shortE)
		case len(w) < n:
			panic(shortW)
		case len(z) < (n-1)*ldz+n:
			panic(shortZ)
		}
	}

	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		if rng == RangeValue && !(vl <= d[0] && d[0] < vu) {
			return 0, 0
		}
		w[0] = d[0]
		z[0] = 1
		return 1, 0
	}

	// Resolve the selection before the pipeline overwrites d and e.
	var ilo, iup int
	switch rng {
	case RangeAll:
		ilo, iup = 0, n
	case RangeIndex:
		ilo, iup = il-1, iu
	case RangeValue:
		ilo = sturmCount(n, d, e, vl)
		iup = sturmCount(n, d, e, vu)
	}

	lwq, _ := stedcWork(lapack.EVTridiag, n)
	q := work[lwq : lwq+n*n]

	if n < minDCSize {
		for i := range q {
			q[i] = 0
		}
		for i := 0; i < n; i++ {
			q[i*n+i] = 1
		}
		if !lapackImpl.Dsteqr(lapack.EVOrig, n, d, e, q, n, work[:lwq]) {
			info = 1
		}
	} else {
		zv := work[3*n*n : 3*n*n+n]
		roots := work[3*n*n+n : 3*n*n+2*n]
		leaf := work[3*n*n+2*n : 3*n*n+4*n]
		info = impl.dcSolve(n, d, e, q, n,
			zv, roots, work[2*n*n:3*n*n], work[n*n:2*n*n], leaf,
			iwork[:n+2], iwork[n+2:2*n+2], iwork[2*n+2:3*n+2], iwork[3*n+2:4*n+2], iwork[4*n+2:5*n+2])
		sortEigen(n, d, q, n)
	}

	nev = iup - ilo
	copy(w[:nev], d[ilo:iup])
	for r := 0; r < n; r++ {
		for j := 0; j < nev; j++ {
			z[r*ldz+j] = q[r*n+ilo+j]
		}
	}
	return nev, info
}
