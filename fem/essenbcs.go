// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/alimongairo/axifem/inp"
)

// EssenBcs holds the essential (Dirichlet) boundary conditions: prescribed
// displacement values keyed by global equation number. Boundary nodes are found by
// the tags attached to the mesh at generation time; coordinates are never compared
// against the domain extremes here.
//
// Enforcement is by symmetric elimination during the scatter of element matrices
// (see Domain.Assemble): rows of prescribed equations are dropped, columns move
// K·g to the right-hand side, and the diagonal is closed with K[p][p]=1, F[p]=g.
// The global dimensions do not change and the solution carries the prescribed
// values exactly.
type EssenBcs struct {
	Vals map[int]float64 // eq => prescribed value
}

// NewEssenBcs derives the essential boundary conditions from mesh tags:
// the left end is held at g1 for both variants; the right end is held at g2 only
// when the variant prescribes a displacement there (the flux variant loads the far
// end during assembly instead)
func NewEssenBcs(msh *inp.Mesh, sim *inp.Simulation) (o *EssenBcs) {
	o = new(EssenBcs)
	o.Vals = make(map[int]float64)
	for _, v := range msh.Verts {
		switch v.Tag {
		case inp.TagLeftEnd:
			o.Vals[v.Id] = sim.G1
		case inp.TagRightEnd:
			if sim.Right.Kind == inp.RightDirichlet {
				o.Vals[v.Id] = sim.Right.Value
			}
		}
	}
	return
}

// Prescribed returns the prescribed value of an equation, if any
func (o *EssenBcs) Prescribed(eq int) (val float64, ok bool) {
	val, ok = o.Vals[eq]
	return
}

// Eqs returns the sorted list of prescribed equations
func (o *EssenBcs) Eqs() (eqs []int) {
	for eq := range o.Vals {
		eqs = append(eqs, eq)
	}
	sort.Ints(eqs)
	return
}

// List returns a simple list logging the prescribed values
func (o *EssenBcs) List() (l string) {
	l = io.Sf("%8s%25s\n", "eq", "value")
	for _, eq := range o.Eqs() {
		l += io.Sf("%8d%25.13f\n", eq, o.Vals[eq])
	}
	return
}
