// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Axifem solves the 1D axial bar elasticity problem with the finite element method
// using Lagrange basis functions of order 1, 2 or 3, and reports the L2 norm of the
// error against the analytical solution.
package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/alimongairo/axifem/fem"
	"github.com/alimongairo/axifem/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	order := io.ArgToInt(0, 1)
	problem := io.ArgToInt(1, 1)
	nelems := io.ArgToInt(2, 2)
	dirout := io.ArgToString(3, "/tmp/axifem")
	sweep := io.ArgToBool(4, false)
	verbose := io.ArgToBool(5, true)

	// message
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"basis function order", "order", order,
			"problem variant: 1=both ends held 2=end flux", "problem", problem,
			"number of elements", "nelems", nelems,
			"output directory", "dirout", dirout,
			"run convergence sweep", "sweep", sweep,
			"show messages", "verbose", verbose,
		))
	}

	// convergence sweep
	if sweep {
		io.Pf("%8s%8s%8s%25s\n", "order", "problem", "nelems", "L2 error")
		for _, n := range []int{2, 4, 8, 16} {
			dom := fem.NewDomain(inp.NewSimulation(order, problem, n), false)
			io.Pf("%8d%8d%8d%25.15e\n", order, problem, n, dom.Run())
		}
		return
	}

	// solve
	dom := fem.NewDomain(inp.NewSimulation(order, problem, nelems), verbose)
	dom.Assemble()
	dom.Solve()

	// results
	l2norm := dom.ErrorL2()
	if verbose {
		io.Pf("   L2 norm of error:             %23.15e\n", l2norm)
	}
	fname := dom.WriteVtk(dirout)
	if verbose {
		io.PfGreen("   Results written to %s/%s\n", dirout, fname)
	}
}
