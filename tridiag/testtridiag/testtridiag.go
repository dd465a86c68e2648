// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testtridiag implements a set of testing routines for the
// tridiag eigensolvers.
package testtridiag // import "github.com/jzuniga-amd/stedc/tridiag/testtridiag"

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas/blas64"
)

// RandomTridiagonal returns the diagonal and off-diagonal of a random
// symmetric tridiagonal matrix of order n with entries drawn from the
// standard normal distribution.
func RandomTridiagonal(rnd *rand.Rand, n int) (d, e []float64) {
	d = make([]float64, n)
	for i := range d {
		d[i] = rnd.NormFloat64()
	}
	if n > 1 {
		e = make([]float64, n-1)
		for i := range e {
			e[i] = rnd.NormFloat64()
		}
	}
	return d, e
}

// DecompositionResidual returns ‖T·Z - Z·Λ‖_F / ‖T‖_F for the
// tridiagonal matrix T given by d0, e0, the eigenvalues lambda and the
// eigenvector columns of the row-major matrix Z.
func DecompositionResidual(n int, d0, e0, lambda, z []float64, ldz int) float64 {
	var tnorm float64
	for i := 0; i < n; i++ {
		tnorm += d0[i] * d0[i]
	}
	for i := 0; i < n-1; i++ {
		tnorm += 2 * e0[i] * e0[i]
	}
	tnorm = math.Max(math.Sqrt(tnorm), 1)

	var rnorm float64
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			r := (d0[i] - lambda[j]) * z[i*ldz+j]
			if i > 0 {
				r += e0[i-1] * z[(i-1)*ldz+j]
			}
			if i < n-1 {
				r += e0[i] * z[(i+1)*ldz+j]
			}
			rnorm += r * r
		}
	}
	return math.Sqrt(rnorm) / tnorm
}

// OrthogonalityError returns the largest absolute entry of Zᵀ·Z - I
// over the first k columns of the row-major matrix Z.
func OrthogonalityError(n, k int, z []float64, ldz int) float64 {
	bi := blas64.Implementation()
	var max float64
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			dot := bi.Ddot(n, z[i:], ldz, z[j:], ldz)
			if i == j {
				dot -= 1
			}
			if math.Abs(dot) > max {
				max = math.Abs(dot)
			}
		}
	}
	return max
}

// Sorted reports whether s is in ascending order.
func Sorted(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
