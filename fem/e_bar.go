// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/utl"

	"github.com/alimongairo/axifem/inp"
	"github.com/alimongairo/axifem/shp"
)

// ElemBar implements the axial bar element for the 1D elasticity problem
//
//   d²u
//   ─── + s(x) = 0      over each element in the natural domain ξ ∈ [-1,+1]
//   dx²
//
// The computation of K and F is a deterministic function of the element data, the
// shape functions and the integration rule; nothing outside the scratchpad of this
// structure is written to.
type ElemBar struct {

	// basic data
	Cell *inp.Cell // the cell structure
	X    []float64 // [nverts] nodal coordinates by local slot
	Umap []int     // assembly map: local slot => global equation number

	// collaborators
	Shp *shp.Shape   // shape functions
	Ips []shp.Ipoint // integration points

	// scratchpad. computed @ each assembly pass
	K [][]float64 // [nverts][nverts] element stiffness matrix
	F []float64   // [nverts] element load vector
}

// NewElemBar returns a new bar element for the given cell
func NewElemBar(msh *inp.Mesh, cell *inp.Cell, sh *shp.Shape, ips []shp.Ipoint) (o *ElemBar) {
	o = new(ElemBar)
	o.Cell = cell
	o.X = msh.CellCoords(cell)
	o.Umap = make([]int, len(cell.Verts))
	copy(o.Umap, cell.Verts)
	o.Shp = sh
	o.Ips = ips
	o.K = utl.Alloc(sh.Nverts, sh.Nverts)
	o.F = make([]float64, sh.Nverts)
	return
}

// He returns the element length, always computed from the two end slots; interior
// nodes never enter the Jacobian
func (o *ElemBar) He() float64 { return o.X[1] - o.X[0] }

// Xip interpolates the physical coordinate @ the natural coordinate ξ through the
// shape functions (isoparametric map)
func (o *ElemBar) Xip(ξ float64) (x float64) {
	for m := 0; m < o.Shp.Nverts; m++ {
		x += o.X[m] * o.Shp.F(m, ξ)
	}
	return
}

// CalcKandF computes the element stiffness matrix and load vector into the
// scratchpad K and F. The (he/2) factor in F is the Jacobian of the integral
// transform and the (2/he) factor in K comes from the chain rule d/dx = (2/he)·d/dξ;
// their relative scaling must not change.
//  Input:
//   src   -- source (body force) term of the weak form
//   right -- descriptor of the condition @ x=L, for the flux contribution
func (o *ElemBar) CalcKandF(src func(x float64) float64, right inp.RightEnd) {

	// element length and number of nodes
	he := o.He()
	nverts := o.Shp.Nverts

	// load vector
	for A := 0; A < nverts; A++ {
		o.F[A] = 0
		for _, ip := range o.Ips {
			x := o.Xip(ip[0])
			o.F[A] += he / 2.0 * o.Shp.F(A, ip[0]) * ip[1] * src(x)
		}
	}

	// nonzero flux condition: applied here during assembly, on the load entry of the
	// end slot of the far-boundary element; prescribed displacements are applied
	// afterwards by EssenBcs
	if right.Kind == inp.RightFlux && o.Cell.Tag == inp.TagRightEnd {
		o.F[1] += right.Value
	}

	// stiffness matrix
	for A := 0; A < nverts; A++ {
		for B := 0; B < nverts; B++ {
			o.K[A][B] = 0
			for _, ip := range o.Ips {
				o.K[A][B] += 2.0 / he * o.Shp.G(A, ip[0]) * o.Shp.G(B, ip[0]) * ip[1]
			}
		}
	}
}
