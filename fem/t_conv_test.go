// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"

	"github.com/alimongairo/axifem/inp"
)

func Test_conv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv01. mesh refinement, both ends held, order 1")

	// L2 error must decrease monotonically towards zero under refinement
	nelemsValues := []int{2, 4, 8, 16}
	errors := make([]float64, len(nelemsValues))
	for i, nelems := range nelemsValues {
		dom := NewDomain(inp.NewSimulation(1, 1, nelems), chk.Verbose)
		errors[i] = dom.Run()
		io.Pf("nelems=%2d  error=%23.15e\n", nelems, errors[i])
	}
	for i := 1; i < len(errors); i++ {
		if errors[i] <= 0 || errors[i] >= errors[i-1] {
			tst.Errorf("L2 error must decrease monotonically: %v\n", errors)
			return
		}
	}

	// second order convergence: 8x elements reduce the error by about 64x
	chk.Float64(tst, "coarsest error is the largest", 1e-17, floats.Max(errors), errors[0])
	if errors[3] > errors[0]/10.0 {
		tst.Errorf("refinement did not reduce the error enough: %v\n", errors)
		return
	}
}

func Test_conv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conv02. order refinement, both ends held")

	// the exact solution is cubic: order 3 captures it to machine precision while
	// lower orders leave a measurable error
	errorsByOrder := make([]float64, 3)
	for order := 1; order <= 3; order++ {
		dom := NewDomain(inp.NewSimulation(order, 1, 2), chk.Verbose)
		errorsByOrder[order-1] = dom.Run()
		io.Pf("order=%d  error=%23.15e\n", order, errorsByOrder[order-1])
	}
	if !(errorsByOrder[1] < errorsByOrder[0]) {
		tst.Errorf("raising the order must reduce the error: %v\n", errorsByOrder)
		return
	}
	if errorsByOrder[2] > 1e-12 {
		tst.Errorf("cubic basis must reproduce the cubic solution: error=%g\n", errorsByOrder[2])
		return
	}
}
