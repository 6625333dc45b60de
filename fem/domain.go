// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element solver for the 1D axial bar problem
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/alimongairo/axifem/inp"
	"github.com/alimongairo/axifem/shp"
)

// Domain holds the mesh, the elements and the global system for one run. The input
// data is fixed at construction; Kb and Fb are rebuilt from zero on every call to
// Assemble so re-assembly is idempotent; D is written once by Solve and read-only
// afterwards.
type Domain struct {

	// init: input data and collaborators
	Sim *inp.Simulation // input data
	Msh *inp.Mesh       // structured mesh
	Shp *shp.Shape      // shape functions for the order in Sim
	Ips []shp.Ipoint    // integration points

	// init: elements and essential boundary conditions
	Elems    []*ElemBar // all elements
	EssenBcs *EssenBcs  // prescribed displacements

	// dimensions
	Ny    int // total number of degrees of freedom
	NnzKb int // upper bound of non-zeros in Kb

	// global system
	Kb *la.Triplet // global stiffness matrix
	Fb la.Vector   // global load vector
	D  la.Vector   // solution vector

	solved bool // Solve has succeeded
}

// NewDomain builds the domain for a simulation: mesh, shape functions, integration
// rule, elements and boundary conditions
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain) {

	// basic data
	o = new(Domain)
	o.Sim = sim
	o.Msh = inp.GenLinMesh(sim.Nelems, sim.Order, 0, sim.L)
	o.Shp = shp.NewShape(sim.Order)
	o.Ips = shp.IpsLin3

	// elements
	o.Elems = make([]*ElemBar, len(o.Msh.Cells))
	for i, cell := range o.Msh.Cells {
		o.Elems[i] = NewElemBar(o.Msh, cell, o.Shp, o.Ips)
	}

	// essential boundary conditions
	o.EssenBcs = NewEssenBcs(o.Msh, sim)

	// global system
	o.Ny = o.Msh.Ndof()
	nn := o.Shp.Nverts
	o.NnzKb = len(o.Elems)*nn*nn + len(o.EssenBcs.Vals)
	o.Kb = la.NewTriplet(o.Ny, o.Ny, o.NnzKb)
	o.Fb = la.NewVector(o.Ny)
	o.D = la.NewVector(o.Ny)

	// notes
	if verbose {
		io.Pf("   Number of active elems:       %d\n", len(o.Elems))
		io.Pf("   Number of degrees of freedom: %d\n", o.Ny)
	}
	return
}

// Assemble computes all element matrices and scatters them into the global system.
// The system is zeroed first, so calling Assemble repeatedly produces identical
// Kb and Fb. Prescribed equations are eliminated symmetrically while scattering:
// their rows are skipped, their columns weigh on the right-hand side, and the pass
// is closed with a unit diagonal and the prescribed value on Fb.
func (o *Domain) Assemble() {

	// zero global system
	o.Kb.Start()
	o.Fb.Fill(0)

	// loop over elements
	for _, e := range o.Elems {

		// element matrices
		e.CalcKandF(o.Sim.Source, o.Sim.Right)

		// scatter, with symmetric elimination of prescribed equations
		for A, I := range e.Umap {
			if _, pres := o.EssenBcs.Prescribed(I); pres {
				continue
			}
			o.Fb[I] += e.F[A]
			for B, J := range e.Umap {
				if g, pres := o.EssenBcs.Prescribed(J); pres {
					o.Fb[I] -= e.K[A][B] * g
					continue
				}
				o.Kb.Put(I, J, e.K[A][B])
			}
		}
	}

	// close prescribed equations
	for _, eq := range o.EssenBcs.Eqs() {
		o.Kb.Put(eq, eq, 1)
		o.Fb[eq] = o.EssenBcs.Vals[eq]
	}
}

// Solve solves the global system Kb·D = Fb with a direct sparse solver
func (o *Domain) Solve() {
	if o.Kb.Len() == 0 {
		chk.Panic("global system is empty; call Assemble before Solve")
	}
	o.D = la.SpSolve(o.Kb, o.Fb)
	o.solved = true
}

// Run assembles and solves, and returns the L2 norm of the error against the
// analytical solution
func (o *Domain) Run() (l2norm float64) {
	o.Assemble()
	o.Solve()
	return o.ErrorL2()
}
