// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/alimongairo/axifem/ana"
	"github.com/alimongairo/axifem/inp"
)

// AnaSolution returns the analytical solution matching the simulation's variant
func AnaSolution(sim *inp.Simulation) func(x float64) float64 {
	switch sim.Right.Kind {
	case inp.RightDirichlet:
		sol := ana.AxialBarEnds{L: sim.L, E: sim.E, Fcoef: sim.Fcoef, G1: sim.G1, G2: sim.G2}
		return sol.U
	case inp.RightFlux:
		sol := ana.AxialBarFlux{L: sim.L, E: sim.E, G1: sim.G1, Hbar: sim.Hbar}
		return sol.U
	}
	chk.Panic("there is no analytical solution for right end kind %d", sim.Right.Kind)
	return nil
}

// ErrorL2 computes the L2 norm of the difference between the finite element solution
// and the analytical one, using the same shape functions and integration rule as the
// assembly. The result is finite and non-negative, and decreases with mesh or order
// refinement; it is the primary convergence diagnostic of this solver.
func (o *Domain) ErrorL2() (l2norm float64) {

	// analytical solution
	if !o.solved {
		chk.Panic("there is no solution to compare against; call Solve before ErrorL2")
	}
	uexact := AnaSolution(o.Sim)

	// loop over elements and integration points
	for _, e := range o.Elems {
		he := e.He()
		for _, ip := range o.Ips {

			// interpolate x and u_h @ integration point through the shape functions
			x, uh := 0.0, 0.0
			for B := 0; B < o.Shp.Nverts; B++ {
				s := o.Shp.F(B, ip[0])
				x += e.X[B] * s
				uh += o.D[e.Umap[B]] * s
			}

			// accumulate squared difference with the Jacobian of the transform
			diff := uh - uexact(x)
			l2norm += diff * diff * he / 2.0 * ip[1]
		}
	}
	return math.Sqrt(l2norm)
}
