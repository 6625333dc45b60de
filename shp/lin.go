// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements Lagrange shape functions and Gauss quadrature rules for
// 1D line elements defined in the bi-unit (natural) domain ξ ∈ [-1,+1]
package shp

import (
	"github.com/cpmech/gosl/chk"
)

// Shape holds the Lagrange shape functions of a line element with nodes equally
// spaced in the natural domain. The local node numbering is:
//
//   node 0           node 1            e.g. order 3:
//     o---------------o                  0 o---o---o---o 1
//    ξ=-1            ξ=+1                     2   3
//
// i.e. nodes 0 and 1 always sit at the element ends and nodes ≥ 2 are interior,
// with natural coordinate ξ = -1 + 2(n-1)/order for node n ≥ 2.
type Shape struct {

	// constants
	Order     int       // polynomial order
	Nverts    int       // number of nodes == Order + 1
	NatCoords []float64 // [nverts] natural coordinates of nodes

	// scratchpad
	S    []float64 // [nverts] shape function values @ last evaluation
	DSdR []float64 // [nverts] dS/dξ values @ last evaluation
}

// NewShape returns a new line shape structure for the given polynomial order
func NewShape(order int) (o *Shape) {
	if order < 1 {
		chk.Panic("cannot create shape functions with order=%d; order must be 1 or greater", order)
	}
	o = new(Shape)
	o.Order = order
	o.Nverts = order + 1
	o.NatCoords = make([]float64, o.Nverts)
	for n := 0; n < o.Nverts; n++ {
		o.NatCoords[n] = XiAtNode(order, n)
	}
	o.S = make([]float64, o.Nverts)
	o.DSdR = make([]float64, o.Nverts)
	return
}

// XiAtNode returns the natural coordinate of a local node. Nodes 0 and 1 map to the
// element ends ξ=-1 and ξ=+1; nodes ≥ 2 are equally spaced in between.
func XiAtNode(order, node int) float64 {
	switch {
	case node == 0:
		return -1.0
	case node == 1:
		return +1.0
	case node >= 2 && node <= order:
		return -1.0 + 2.0*float64(node-1)/float64(order)
	}
	chk.Panic("node=%d is invalid; a line element of order %d has only %d nodes", node, order, order+1)
	return 0
}

// F computes the shape function of a local node @ ξ using the Lagrange product
// formula; thus the Kronecker delta property and the partition of unity hold by
// construction, for any order
func (o *Shape) F(node int, ξ float64) (value float64) {
	o.checkNode(node)
	value = 1.0
	for i := 0; i < o.Nverts; i++ {
		if i != node {
			value *= (ξ - o.NatCoords[i]) / (o.NatCoords[node] - o.NatCoords[i])
		}
	}
	return
}

// G computes the derivative dS/dξ of the shape function of a local node @ ξ.
// The derivative follows from the product rule applied to the Lagrange formula:
//
//   G(n,ξ) = Σ_{j≠n} 1/(ξn-ξj) Π_{i≠n,i≠j} (ξ-ξi)/(ξn-ξi)
//
// valid for any order; no per-order expressions are required
func (o *Shape) G(node int, ξ float64) (value float64) {
	o.checkNode(node)
	for j := 0; j < o.Nverts; j++ {
		if j == node {
			continue
		}
		term := 1.0 / (o.NatCoords[node] - o.NatCoords[j])
		for i := 0; i < o.Nverts; i++ {
			if i != node && i != j {
				term *= (ξ - o.NatCoords[i]) / (o.NatCoords[node] - o.NatCoords[i])
			}
		}
		value += term
	}
	return
}

// Func computes all shape functions, and derivatives if derivs==true, @ ξ into the
// scratchpad vectors S and DSdR
func (o *Shape) Func(ξ float64, derivs bool) {
	for n := 0; n < o.Nverts; n++ {
		o.S[n] = o.F(n, ξ)
		if derivs {
			o.DSdR[n] = o.G(n, ξ)
		}
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// checkNode panics if a local node index is outside [0,order]. This indicates a defect
// in the caller, not recoverable input; hence no error is returned.
func (o *Shape) checkNode(node int) {
	if node < 0 || node > o.Order {
		chk.Panic("node=%d is invalid; a line element of order %d has only %d nodes", node, o.Order, o.Nverts)
	}
}
