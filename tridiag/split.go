// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import "math"

// numLevels returns how many times a split block of size n is halved
// during the divide phase. The thresholds balance the cost of the leaf
// QR solves against the cost of the merge tree, and never exceed
// maxLevels.
func numLevels(n int) int {
	switch {
	case n <= 2:
		return 0
	case n <= 4:
		return 1
	case n <= 32:
		return 2
	case n <= 232:
		return 4
	case n <= 295:
		return 5
	case n <= 1946:
		return 7
	default:
		return maxLevels
	}
}

// splitBlocks partitions the matrix at negligible off-diagonal entries.
// An off-diagonal e[j] is negligible when it is small relative to the
// geometric mean of its neighboring diagonal entries. On return
// splits[0:nb+1] holds the block boundaries, so block i spans
// [splits[i], splits[i+1]), and splits[n+1] holds the block count nb.
// splits must have length at least n+2.
func splitBlocks(n int, d, e []float64, splits []int) int {
	nb := 1
	splits[0] = 0
	k := 0
	for k < n {
		bs := 1
		for j := k; j < n-1; j++ {
			tol := eps * math.Sqrt(math.Abs(d[j])) * math.Sqrt(math.Abs(d[j+1]))
			if math.Abs(e[j]) < tol {
				splits[nb] = j + 1
				nb++
				break
			}
			bs++
		}
		k += bs
	}
	splits[nb] = n
	splits[n+1] = nb
	return nb
}

// divideBlock computes the balanced bisection tree of the split block
// [p1, p1+bs) and applies the rank-one tear at each internal boundary.
// On return ns[0:blks] holds the leaf sizes, ps[0:blks] the leaf start
// positions, and the diagonal entries on either side of every boundary
// have been reduced by the connecting off-diagonal so that each leaf is
// an independent tridiagonal problem. It returns the number of leaves.
//
// At every level a node of size t is halved into children of sizes
// t/2 and t-t/2, so sibling leaf sizes differ by at most one.
func divideBlock(p1, bs int, d, e []float64, ns, ps []int) int {
	levs := numLevels(bs)
	blks := 1 << uint(levs)
	ns[0] = bs
	for i := 0; i < levs; i++ {
		for j := 1 << uint(i); j > 0; j-- {
			t := ns[j-1]
			t2 := t / 2
			ns[2*j-1] = t - t2
			ns[2*j-2] = t2
		}
	}
	p2 := p1
	ps[0] = p2
	for i := 1; i < blks; i++ {
		p2 += ns[i-1]
		ps[i] = p2
		p := e[p2-1]
		d[p2] -= p
		d[p2-1] -= p
	}
	return blks
}
