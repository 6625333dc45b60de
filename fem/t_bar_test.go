// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/alimongairo/axifem/inp"
	"github.com/alimongairo/axifem/shp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_bar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar01. linear element stiffness matrix")

	// one linear element over [0,0.05]
	sim := inp.NewSimulation(1, 1, 2)
	msh := inp.GenLinMesh(sim.Nelems, sim.Order, 0, sim.L)
	e := NewElemBar(msh, msh.Cells[0], shp.NewShape(sim.Order), shp.IpsLin3)
	e.CalcKandF(sim.Source, sim.Right)

	// K = (1/he)·[[1,-1],[-1,1]]
	he := e.He()
	chk.Float64(tst, "he", 1e-15, he, 0.05)
	chk.Deep2(tst, "K", 1e-12, e.K, [][]float64{
		{+1.0 / he, -1.0 / he},
		{-1.0 / he, +1.0 / he},
	})
}

func Test_bar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar02. load vector versus Gauss-Legendre reference")

	// elements of every order over an off-origin cell, with the interpolated source
	for order := 1; order <= 3; order++ {
		sim := inp.NewSimulation(order, 1, 2)
		msh := inp.GenLinMesh(sim.Nelems, sim.Order, 0, sim.L)
		sh := shp.NewShape(order)
		e := NewElemBar(msh, msh.Cells[1], sh, shp.IpsLin3)
		e.CalcKandF(sim.Source, sim.Right)

		// reference: ∫ N_A(x)·s(x) dx over the element, in physical coordinates
		x0, x1 := e.X[0], e.X[1]
		he := x1 - x0
		for A := 0; A < sh.Nverts; A++ {
			node := A
			correct := quad.Fixed(func(x float64) float64 {
				ξ := 2.0*(x-x0)/he - 1.0
				return sh.F(node, ξ) * sim.Source(x)
			}, x0, x1, 5, quad.Legendre{}, 0)
			io.Pforan("order %d: F[%d] = %23.15e (%23.15e)\n", order, A, e.F[A], correct)
			chk.AnaNum(tst, io.Sf("order %d: F[%d]", order, A), 1e-14, e.F[A], correct, chk.Verbose)
		}
	}
}

func Test_bar03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar03. flux contribution on the far-boundary element")

	// flux variant: only the element tagged at the far boundary carries hbar
	sim := inp.NewSimulation(1, 2, 2)
	msh := inp.GenLinMesh(sim.Nelems, sim.Order, 0, sim.L)
	sh := shp.NewShape(sim.Order)

	inner := NewElemBar(msh, msh.Cells[0], sh, shp.IpsLin3)
	outer := NewElemBar(msh, msh.Cells[1], sh, shp.IpsLin3)
	inner.CalcKandF(sim.Source, sim.Right)
	outer.CalcKandF(sim.Source, sim.Right)

	// strip the body force part to isolate the flux term
	simNoFlux := inp.NewSimulation(1, 1, 2)
	ref := NewElemBar(msh, msh.Cells[1], sh, shp.IpsLin3)
	ref.CalcKandF(simNoFlux.Source, simNoFlux.Right)

	chk.Float64(tst, "outer F[1] - body force part", 1e-5, outer.F[1]-ref.F[1], sim.Hbar)
	if inner.F[1] > 1.0 {
		tst.Errorf("inner element must not carry the flux: F[1]=%g\n", inner.F[1])
		return
	}
}

func Test_bar04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar04. element computation is deterministic and repeatable")

	sim := inp.NewSimulation(2, 1, 2)
	msh := inp.GenLinMesh(sim.Nelems, sim.Order, 0, sim.L)
	e := NewElemBar(msh, msh.Cells[0], shp.NewShape(sim.Order), shp.IpsLin3)

	e.CalcKandF(sim.Source, sim.Right)
	K1 := [][]float64{}
	for _, row := range e.K {
		K1 = append(K1, append([]float64{}, row...))
	}
	F1 := append([]float64{}, e.F...)

	e.CalcKandF(sim.Source, sim.Right)
	chk.Deep2(tst, "K repeat", 1e-17, e.K, K1)
	chk.Array(tst, "F repeat", 1e-17, e.F, F1)
}
