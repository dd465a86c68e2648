// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tridiag

const (
	nLT0      = "tridiag: n < 0"
	badEVComp = "tridiag: bad EVComp"
	badERange = "tridiag: bad ERange"
	badLdZ    = "tridiag: bad leading dimension of Z"
	badVlVu   = "tridiag: invalid value range"
	badIlIu   = "tridiag: invalid index range"

	badLWork  = "tridiag: insufficient working memory"
	badLIWork = "tridiag: insufficient integer working memory"

	shortWork  = "tridiag: insufficient length of work"
	shortIWork = "tridiag: insufficient length of iwork"
	shortD     = "tridiag: insufficient length of d"
	shortE     = "tridiag: insufficient length of e"
	shortZ     = "tridiag: insufficient length of z"
	shortW     = "tridiag: insufficient length of w"
)
