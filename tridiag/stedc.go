// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import (
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

// Stedc computes all eigenvalues and, optionally, eigenvectors of the
// n×n symmetric tridiagonal matrix with diagonal d and off-diagonal e,
// using the divide and conquer algorithm.
//
// The behavior depends on compz:
//
//	lapack.EVCompNone  only the eigenvalues are computed and z is not
//	                   referenced
//	lapack.EVTridiag   the eigenvectors of the tridiagonal matrix are
//	                   computed and stored in z
//	lapack.EVOrig      z contains on entry the orthogonal matrix used to
//	                   reduce the original matrix to tridiagonal form,
//	                   and on return the eigenvectors of that original
//	                   matrix
//
// On return d holds the eigenvalues in ascending order and e is
// overwritten. The columns of z hold the eigenvectors in the matching
// order.
//
// work must have length at least lwork and iwork at least liwork. If
// compz is lapack.EVCompNone or n is at most 1, lwork and liwork must
// be at least 1. Otherwise, if n is smaller than the divide and conquer
// cutoff, lwork must be at least max(1, 2*n-2) and liwork at least 1,
// and for larger n lwork must be at least 3*n*n+4*n and liwork at least
// 5*n+2. If lwork is -1, the minimum length of work is stored into
// work[0] and no computation is performed; liwork == -1 does likewise
// for iwork[0].
//
// Stedc returns 0 on success. A positive return value is the 1-based
// index of an eigenvalue whose secular iteration failed to converge, or
// 1 if the underlying QR iteration failed.
func (impl Implementation) Stedc(compz lapack.EVComp, n int, d, e, z []float64, ldz int, work []float64, lwork int, iwork []int, liwork int) (info int) {
	switch {
	case compz != lapack.EVCompNone && compz != lapack.EVTridiag && compz != lapack.EVOrig:
		panic(badEVComp)
	case n < 0:
		panic(nLT0)
	case ldz < 1, compz != lapack.EVCompNone && ldz < max(1, n):
		panic(badLdZ)
	}

	lwmin, liwmin := stedcWork(compz, n)
	if lwork == -1 || liwork == -1 {
		if lwork == -1 {
			work[0] = float64(lwmin)
		}
		if liwork == -1 {
			iwork[0] = liwmin
		}
		return 0
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
		case compz != lapack.EVCompNone && len(z) < (n-1)*ldz+n:
			panic(shortZ)
		}
	}

	if n == 0 {
		return 0
	}
	if n == 1 {
		if compz == lapack.EVTridiag {
			z[0] = 1
		}
		return 0
	}

	if compz == lapack.EVCompNone {
		if !eigenvaluesOnly(n, d, e) {
			return 1
		}
		return 0
	}

	// Small matrices are solved directly by QR iteration, which also
	// sorts its output.
	if n < minDCSize {
		if !lapackImpl.Dsteqr(compz, n, d, e, z, ldz, work) {
			return 1
		}
		return 0
	}

	q := work[:n*n]
	vtmp := work[n*n : 2*n*n]
	poles := work[2*n*n : 3*n*n]
	zv := work[3*n*n : 3*n*n+n]
	roots := work[3*n*n+n : 3*n*n+2*n]
	leaf := work[3*n*n+2*n : 3*n*n+4*n]
	splits := iwork[:n+2]
	ns := iwork[n+2 : 2*n+2]
	ps := iwork[2*n+2 : 3*n+2]
	mask := iwork[3*n+2 : 4*n+2]
	perm := iwork[4*n+2 : 5*n+2]

	info = impl.dcSolve(n, d, e, q, n, zv, roots, poles, vtmp, leaf, splits, ns, ps, mask, perm)

	if compz == lapack.EVOrig {
		// Back-transform: the eigenvectors of the original matrix are
		// the product of the reduction matrix in z and the accumulated
		// tridiagonal eigenvectors.
		bi := blas64.Implementation()
		bi.Dgemm(blas.NoTrans, blas.NoTrans, n, n, n, 1, z, ldz, q, n, 0, vtmp, n)
		for i := 0; i < n; i++ {
			copy(z[i*ldz:i*ldz+n], vtmp[i*n:i*n+n])
		}
	} else {
		for i := 0; i < n; i++ {
			copy(z[i*ldz:i*ldz+n], q[i*n:i*n+n])
		}
	}

	sortEigen(n, d, z, ldz)
	return info
}

// dcSolve runs the divide and conquer pipeline on the tridiagonal
// matrix (d, e), accumulating the tridiagonal eigenvectors into the
// n×n matrix q. On return d holds the eigenvalues, unsorted, and q the
// matching eigenvector columns.
func (impl Implementation) dcSolve(n int, d, e, q []float64, ldq int, zv, roots, poles, vtmp, leaf []float64, splits, ns, ps, mask, perm []int) (info int) {
	for i := range q[:n*n] {
		q[i] = 0
	}
	for i := 0; i < n; i++ {
		q[i*ldq+i] = 1
	}

	nb := splitBlocks(n, d, e, splits)

	// Divide phase. The tears applied here are undone by the merge
	// phase in reverse order.
	maxLevs := 0
	for kb := 0; kb < nb; kb++ {
		p1 := splits[kb]
		bs := splits[kb+1] - p1
		divideBlock(p1, bs, d, e, ns[p1:], ps[p1:])
		if l := numLevels(bs); l > maxLevs {
			maxLevs = l
		}
	}

	// Leaf phase: all leaves across all split blocks are independent,
	// so they are solved concurrently. Failures are parked in mask,
	// which the merge phase does not need until after the fold below.
	var wg sync.WaitGroup
	nl := 0
	for kb := 0; kb < nb; kb++ {
		p1 := splits[kb]
		bs := splits[kb+1] - p1
		blks := 1 << uint(numLevels(bs))
		for t := 0; t < blks; t++ {
			sbs := ns[p1+t]
			p2 := ps[p1+t]
			slot := nl
			nl++
			wg.Add(1)
			go func() {
				defer wg.Done()
				mask[slot] = 0
				if !solveLeaf(sbs, d[p2:p2+sbs], e[p2:], q[p2*ldq+p2:], ldq, leaf[2*p2:2*p2+2*sbs]) {
					mask[slot] = p2 + 1
				}
			}()
		}
	}
	wg.Wait()
	for i := 0; i < nl; i++ {
		if mask[i] != 0 && (info == 0 || mask[i] < info) {
			info = mask[i]
		}
	}
	if info != 0 {
		return info
	}

	// Merge phase: one wave per level. The groups of a wave cover
	// disjoint column ranges and run concurrently; the Wait is the
	// barrier before the next level reads the updated eigenvectors.
	var mu sync.Mutex
	for k := 0; k < maxLevs; k++ {
		for kb := 0; kb < nb; kb++ {
			p1 := splits[kb]
			bs := splits[kb+1] - p1
			levs := numLevels(bs)
			if k >= levs {
				continue
			}
			width := 1 << uint(k+1)
			for g := 0; g < 1<<uint(levs-1-k); g++ {
				base := g * width
				in := ps[p1+base]
				sz := 0
				for t := 0; t < width; t++ {
					sz += ns[p1+base+t]
				}
				bnd := ps[p1+base+width/2]
				wg.Add(1)
				go func() {
					defer wg.Done()
					linfo := mergePair(n, in, sz, bnd, d, e, q, ldq, zv, roots, poles, vtmp, mask, perm)
					if linfo == 0 {
						return
					}
					mu.Lock()
					if info == 0 || linfo < info {
						info = linfo
					}
					mu.Unlock()
				}()
			}
		}
		wg.Wait()
	}
	return info
}
