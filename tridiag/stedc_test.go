// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag_test

import (
	"testing"

	"github.com/jzuniga-amd/stedc/tridiag"
	"github.com/jzuniga-amd/stedc/tridiag/testtridiag"
)

var impl = tridiag.Implementation{}

func TestStedc(t *testing.T) {
	t.Parallel()
	testtridiag.StedcTest(t, impl)
}

func TestStedcx(t *testing.T) {
	t.Parallel()
	testtridiag.StedcxTest(t, impl, impl)
}
