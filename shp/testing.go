// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ their own node and to
// 0.0 @ all other nodes (Kronecker delta property)
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all nodes
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute functions @ natural coordinate of node n
		shape.Func(shape.NatCoords[n], false)

		// check
		if verbose {
			io.Pf("S @ node %d = %v\n", n, shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("lin order %d failed with err = %g\n", shape.Order, errS)
		return
	}
}

// CheckPartitionOfUnity checks that the shape functions sum to 1.0 @ sampled points
// covering the natural domain
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, ξvals []float64, tol float64, verbose bool) {
	for _, ξ := range ξvals {
		sum := 0.0
		for n := 0; n < shape.Nverts; n++ {
			sum += shape.F(n, ξ)
		}
		if verbose {
			io.Pf("Σ S @ ξ=%+.3f = %.17f\n", ξ, sum)
		}
		chk.Float64(tst, io.Sf("Σ S @ ξ=%+.3f", ξ), tol, sum, 1.0)
	}
}

// CheckDSdR compares the analytical derivatives G against numerical differentiation
// of F @ sampled natural coordinates
func CheckDSdR(tst *testing.T, shape *Shape, ξvals []float64, tol float64, verbose bool) {
	for n := 0; n < shape.Nverts; n++ {
		for _, ξ := range ξvals {
			node := n // capture for the closure below
			gAna := shape.G(n, ξ)
			chk.DerivScaSca(tst, io.Sf("dS%d/dξ @ ξ=%+.3f", n, ξ), tol, gAna, ξ, 1e-3, verbose, func(x float64) float64 {
				return shape.F(node, x)
			})
		}
	}
}
