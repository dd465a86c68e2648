// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

import (
	"testing"

	"gonum.org/v1/gonum/lapack"
)

func TestWorkspaceQuery(t *testing.T) {
	t.Parallel()
	var impl Implementation
	for _, n := range []int{0, 1, 2, 31, 32, 100} {
		for _, compz := range []lapack.EVComp{lapack.EVCompNone, lapack.EVTridiag, lapack.EVOrig} {
			wantLw, wantLiw := stedcWork(compz, n)
			var work [1]float64
			var iwork [1]int
			impl.Stedc(compz, n, nil, nil, nil, max(1, n), work[:], -1, iwork[:], -1)
			if int(work[0]) != wantLw {
				t.Errorf("compz=%c,n=%v: unexpected lwork: got %d, want %d", compz, n, int(work[0]), wantLw)
			}
			if iwork[0] != wantLiw {
				t.Errorf("compz=%c,n=%v: unexpected liwork: got %d, want %d", compz, n, iwork[0], wantLiw)
			}
		}

		wantLw, wantLiw := stedcxWork(n)
		var work [1]float64
		var iwork [1]int
		impl.Stedcx(RangeAll, 0, 0, 0, 0, n, nil, nil, nil, nil, max(1, n), work[:], -1, iwork[:], -1)
		if int(work[0]) != wantLw {
			t.Errorf("stedcx,n=%v: unexpected lwork: got %d, want %d", n, int(work[0]), wantLw)
		}
		if iwork[0] != wantLiw {
			t.Errorf("stedcx,n=%v: unexpected liwork: got %d, want %d", n, iwork[0], wantLiw)
		}
	}
}
