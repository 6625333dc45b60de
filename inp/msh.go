// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// tags of boundary vertices, set at mesh generation; downstream code classifies
// boundary nodes by tag, never by comparing floating point coordinates
const (
	TagLeftEnd  = -1 // vertex @ x=xmin
	TagRightEnd = -2 // vertex @ x=xmax
)

// Vert holds one vertex (== one node/degree of freedom in this 1D context)
type Vert struct {
	Id  int     // global identifier
	Tag int     // tag; negative on boundaries
	X   float64 // coordinate
}

// Cell holds one element of the mesh. Verts maps local node slots to global vertex
// ids with the local numbering of shp: slot 0 = left end, slot 1 = right end,
// slots ≥ 2 = interior nodes from left to right.
type Cell struct {
	Id    int   // element identifier
	Tag   int   // tag; TagRightEnd when the cell touches the far boundary
	Verts []int // [order+1] local slot => global vertex id
}

// Mesh holds a structured 1D mesh. Vertex coordinates are non-decreasing with the
// global id, so vertex ids double as global equation numbers.
type Mesh struct {
	Order int     // polynomial order of cells
	Verts []*Vert // all vertices
	Cells []*Cell // all cells
}

// GenLinMesh generates a uniform mesh with nelems cells of the given order over
// [xmin,xmax], including the interior nodes required by the order
func GenLinMesh(nelems, order int, xmin, xmax float64) (o *Mesh) {

	// check
	if nelems < 1 {
		chk.Panic("cannot generate mesh with nelems=%d", nelems)
	}
	if order < 1 {
		chk.Panic("cannot generate mesh with order=%d", order)
	}
	if xmax <= xmin {
		chk.Panic("cannot generate mesh with xmin=%g and xmax=%g", xmin, xmax)
	}

	// vertices, left to right
	o = new(Mesh)
	o.Order = order
	nverts := nelems*order + 1
	coords := utl.LinSpace(xmin, xmax, nverts)
	o.Verts = make([]*Vert, nverts)
	for i, x := range coords {
		tag := 0
		switch i {
		case 0:
			tag = TagLeftEnd
		case nverts - 1:
			tag = TagRightEnd
		}
		o.Verts[i] = &Vert{Id: i, Tag: tag, X: x}
	}

	// cells; ends first in the connectivity, interior nodes after
	o.Cells = make([]*Cell, nelems)
	for e := 0; e < nelems; e++ {
		verts := make([]int, order+1)
		verts[0] = e * order
		verts[1] = (e + 1) * order
		for k := 2; k <= order; k++ {
			verts[k] = e*order + k - 1
		}
		tag := 0
		if e == nelems-1 {
			tag = TagRightEnd
		}
		o.Cells[e] = &Cell{Id: e, Tag: tag, Verts: verts}
	}
	return
}

// Ndof returns the total number of degrees of freedom
func (o *Mesh) Ndof() int { return len(o.Verts) }

// CellCoords returns the coordinates of the nodes of a cell, by local slot
func (o *Mesh) CellCoords(cell *Cell) (x []float64) {
	x = make([]float64, len(cell.Verts))
	for m, id := range cell.Verts {
		x[m] = o.Verts[id].X
	}
	return
}
