// Copyright ©2026 The Stedc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch solves many independent symmetric tridiagonal
// eigenproblems of the same size.
//
// The matrices are stored contiguously: element b of a batch of
// n×n problems occupies d[b*n:(b+1)*n], e[b*(n-1):(b+1)*(n-1)] and the
// row-major block c[b*n*ldc:] of the eigenvector storage. Elements are
// solved in bounded parallel waves and report their status through a
// per-element info slice, so one failing matrix does not disturb the
// others.
//
// All scratch memory comes from a Workspace sized by the matching
// sizes query, so a caller can allocate once and reuse the workspace
// across repeated solves.
package batch // import "github.com/jzuniga-amd/stedc/batch"
