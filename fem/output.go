// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// VtkBuffer writes the mesh and the nodal solution in legacy VTK format. Each
// segment between neighbouring nodes becomes one VTK line cell, so interior nodes
// of higher order elements show up in the visualisation as well.
func (o *Domain) VtkBuffer() (buf *bytes.Buffer) {

	// check
	if !o.solved {
		chk.Panic("there is no solution to write; call Solve first")
	}

	// header
	buf = new(bytes.Buffer)
	io.Ff(buf, "# vtk DataFile Version 3.0\n")
	io.Ff(buf, "%s\n", o.Sim.Desc)
	io.Ff(buf, "ASCII\n")
	io.Ff(buf, "DATASET UNSTRUCTURED_GRID\n")

	// points
	nv := o.Msh.Ndof()
	io.Ff(buf, "POINTS %d double\n", nv)
	for _, v := range o.Msh.Verts {
		io.Ff(buf, "%23.15e 0 0\n", v.X)
	}

	// line cells between neighbouring nodes
	nc := nv - 1
	io.Ff(buf, "CELLS %d %d\n", nc, 3*nc)
	for i := 0; i < nc; i++ {
		io.Ff(buf, "2 %d %d\n", i, i+1)
	}
	io.Ff(buf, "CELL_TYPES %d\n", nc)
	for i := 0; i < nc; i++ {
		io.Ff(buf, "3\n")
	}

	// nodal solution
	io.Ff(buf, "POINT_DATA %d\n", nv)
	io.Ff(buf, "SCALARS u double 1\n")
	io.Ff(buf, "LOOKUP_TABLE default\n")
	for _, v := range o.Msh.Verts {
		io.Ff(buf, "%23.15e\n", o.D[v.Id])
	}
	return
}

// WriteVtk writes the VTK file named after the order and variant of the simulation,
// e.g. bar_o1_p1.vtk, into dirout. Returns the file name.
func (o *Domain) WriteVtk(dirout string) (fname string) {
	fname = io.Sf("bar_o%d_p%d.vtk", o.Sim.Order, o.Sim.Problem)
	io.WriteFileVD(dirout, fname, o.VtkBuffer())
	return
}
