// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

// mergePair combines the eigen-decompositions of the two solved
// sub-trees spanning [in, bnd) and [bnd, in+sz) into the decomposition
// of their union. The tear applied during the divide phase makes the
// union a rank-one modification of the block-diagonal problem, with
// modification weight p = 2·e[bnd-1] and update vector z taken from the
// eigenvector rows adjacent to the boundary.
//
// q is the n×n eigenvector accumulator, z, roots and vtmp are length-n
// and n×n scratch, poles is the n×n pole copy region, and mask and perm
// are length-n integer scratch. All scratch is indexed by global column
// so concurrent merges of disjoint ranges do not interfere.
//
// It returns 0 on success, or the 1-based global index of the first
// eigenvalue whose secular iteration failed to converge.
func mergePair(n, in, sz, bnd int, d, e []float64, q []float64, ldq int, z, roots, poles, vtmp []float64, mask, perm []int) int {
	bi := blas64.Implementation()

	p := 2 * e[bnd-1]
	for i := in; i < bnd; i++ {
		z[i] = q[(bnd-1)*ldq+i] / math.Sqrt2
	}
	for i := bnd; i < in+sz; i++ {
		z[i] = q[bnd*ldq+i] / math.Sqrt2
	}

	// Deflation tolerance, relative to the largest eigenvalue or update
	// component in the merge range.
	var maxd, maxz float64
	for i := in; i < in+sz; i++ {
		maxd = math.Max(maxd, math.Abs(d[i]))
		maxz = math.Max(maxz, math.Abs(z[i]))
	}
	tol := 8 * eps * math.Max(maxd, maxz)

	// Deflate eigenvalues with a negligible update component, and fold
	// repeated eigenvalues together with a Givens rotation that zeroes
	// the later component. The earlier index survives, so mask is 1
	// exactly for the columns that enter the secular equation.
	for i := in; i < in+sz; i++ {
		g := z[i]
		if math.Abs(p*g) <= tol {
			mask[i] = 0
			continue
		}
		mask[i] = 1
		for j := in; j < i; j++ {
			if mask[j] != 1 || math.Abs(d[j]-d[i]) > tol {
				continue
			}
			mask[i] = 0
			c, s, r := lapackImpl.Dlartg(z[j], g)
			z[j] = r
			z[i] = 0
			bi.Drot(n, q[j:], ldq, q[i:], ldq, c, s)
			break
		}
	}

	// Compact the surviving poles and weights. The poles are negated
	// when p < 0 so the secular solvers always see a positive
	// modification weight; perm records the merge-local column of each
	// compacted entry.
	dd := 0
	for i := 0; i < sz; i++ {
		if mask[in+i] != 1 {
			continue
		}
		perm[in+dd] = i
		v := d[in+i]
		if p < 0 {
			v = -v
		}
		poles[in*n+dd] = v
		z[in+dd] = z[in+i]
		dd++
	}

	// Sort the compacted triples by pole value. Insertion sort keeps
	// the sort stable and dd is small after deflation.
	master := poles[in*n : in*n+dd]
	zz := z[in : in+dd]
	per := perm[in : in+dd]
	for i := 1; i < dd; i++ {
		pv, zv, pe := master[i], zz[i], per[i]
		j := i - 1
		for j >= 0 && master[j] > pv {
			master[j+1] = master[j]
			zz[j+1] = zz[j]
			per[j+1] = per[j]
			j--
		}
		master[j+1] = pv
		zz[j+1] = zv
		per[j+1] = pe
	}

	// Every non-deflated column gets a private copy of the sorted
	// poles; its secular solver translates the copy in place.
	for j := 1; j < sz; j++ {
		copy(poles[(in+j)*n:(in+j)*n+dd], master)
	}

	for i := in; i < in+sz; i++ {
		roots[i] = d[i]
	}

	// Solve the secular equation once per surviving column.
	pa := math.Abs(p)
	info := 0
	for j := 0; j < sz; j++ {
		if mask[in+j] != 1 {
			continue
		}
		col := poles[(in+j)*n : (in+j)*n+dd]
		target := d[in+j]
		if p < 0 {
			target = -target
		}
		cc := 0
		for cc < dd-1 && col[cc] != target {
			cc++
		}
		var x float64
		ok := true
		switch {
		case dd == 1:
			// One surviving pole; the root is explicit.
			x = col[0] + pa*zz[0]*zz[0]
			col[0] -= x
		case cc == dd-1:
			x, ok = secularSolveLast(dd, col, zz, pa)
		default:
			x, ok = secularSolve(dd, col, zz, pa, cc)
		}
		if !ok && (info == 0 || in+j+1 < info) {
			info = in + j + 1
		}
		if p < 0 {
			x = -x
		}
		roots[in+j] = x
	}

	// Rescale the update weights so that the computed roots are the
	// exact eigenvalues of a nearby rank-one problem. The products use
	// the translated pole distances, so each factor is accurate even
	// for roots nearly equal to a pole.
	for i := 0; i < dd; i++ {
		valf := 1.0
		for j := 0; j < sz; j++ {
			if mask[in+j] != 1 {
				continue
			}
			valg := poles[(in+j)*n+i]
			switch {
			case per[i] == j:
				valf *= valg
			case p > 0:
				valf *= valg / (d[in+per[i]] - d[in+j])
			default:
				valf *= -valg / (d[in+per[i]] - d[in+j])
			}
		}
		valf = math.Sqrt(-valf)
		if zz[i] < 0 {
			zz[i] = -valf
		} else {
			zz[i] = valf
		}
	}

	// Form the updated eigenvectors: the rank-one eigenvector in pole
	// coordinates, normalized, back-transformed by the permuted current
	// columns, and staged in vtmp until every column of the group is
	// done.
	for j := 0; j < sz; j++ {
		if mask[in+j] != 1 {
			continue
		}
		col := poles[(in+j)*n : (in+j)*n+dd]
		var nrm float64
		for i := 0; i < dd; i++ {
			v := zz[i] / col[i]
			nrm += v * v
			col[i] = v
		}
		nrm = math.Sqrt(nrm)
		for r := in; r < in+sz; r++ {
			var t float64
			for k := 0; k < dd; k++ {
				t += q[r*ldq+in+per[k]] * col[k]
			}
			vtmp[r*n+in+j] = t / nrm
		}
	}

	// Write back the merged eigenvalues and eigenvectors. Deflated
	// columns keep their current values and vectors.
	for j := 0; j < sz; j++ {
		if mask[in+j] != 1 {
			continue
		}
		d[in+j] = roots[in+j]
		for r := in; r < in+sz; r++ {
			q[r*ldq+in+j] = vtmp[r*n+in+j]
		}
	}
	return info
}
