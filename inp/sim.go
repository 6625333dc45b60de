// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of a simulation, read from a (.sim) JSON
// file or constructed programmatically, and the structured 1D mesh
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RightEndKind defines what is prescribed at the far (x=L) end of the bar
type RightEndKind int

const (
	RightDirichlet RightEndKind = iota + 1 // displacement prescribed @ x=L
	RightFlux                              // traction (flux) prescribed @ x=L
)

// RightEnd describes the condition at the far end of the bar. Together with the
// source function it replaces the raw problem-variant integer everywhere past input
// handling: the assembler and the boundary condition applier consume this descriptor
// and never branch on the variant number again.
type RightEnd struct {
	Kind  RightEndKind // dirichlet or flux
	Value float64      // prescribed displacement (dirichlet) or flux magnitude (flux)
}

// Data holds the problem data as read from the (.sim) file
type Data struct {

	// global information
	Desc string `json:"desc"` // description of simulation

	// discretisation
	Order  int `json:"order"`  // polynomial order of basis functions: 1, 2 or 3
	Nelems int `json:"nelems"` // number of elements along the bar

	// problem definition
	Problem int     `json:"problem"` // problem variant: 1=both ends held, 2=end flux
	L       float64 `json:"L"`       // bar length
	E       float64 `json:"E"`       // Young's modulus
	Fcoef   float64 `json:"fcoef"`   // body force coefficient: fb(x) = fcoef·x
	G1      float64 `json:"g1"`      // prescribed displacement @ x=0
	G2      float64 `json:"g2"`      // prescribed displacement @ x=L (variant 1 only)
	Hbar    float64 `json:"hbar"`    // prescribed flux @ x=L (variant 2 only)
}

// Simulation holds the checked input data plus the derived variant descriptor
type Simulation struct {
	Data
	Right  RightEnd                // descriptor of the condition @ x=L
	Source func(x float64) float64 // body force term of the weak form
}

// SetDefault sets the reference problem constants
func (o *Data) SetDefault() {
	o.L = 0.1
	o.E = 1e11
	o.Fcoef = 1e11
	o.G1 = 0
	o.G2 = 0.001
	o.Hbar = 1e10
}

// NewSimulation returns a simulation of the reference problem for the given
// polynomial order, problem variant and number of elements.
//  Note: an order outside {1,2,3} or a variant outside {1,2} is a configuration
//  defect and terminates the run immediately.
func NewSimulation(order, problem, nelems int) (o *Simulation) {
	o = new(Simulation)
	o.SetDefault()
	o.Desc = io.Sf("axial bar: order %d, problem %d, %d elements", order, problem, nelems)
	o.Order = order
	o.Problem = problem
	o.Nelems = nelems
	o.SetDerived()
	return
}

// ReadSim reads a simulation from a (.sim) JSON file
func ReadSim(simfilepath string) (o *Simulation) {

	// read file
	b := io.ReadFile(simfilepath)

	// decode
	o = new(Simulation)
	o.SetDefault()
	err := json.Unmarshal(b, &o.Data)
	if err != nil {
		chk.Panic("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	o.SetDerived()
	return
}

// SetDerived checks the input data and derives the variant descriptor and source
// function. Fails for any variant other than 1 or 2, before any computation starts.
func (o *Simulation) SetDerived() {

	// check
	if o.Order < 1 || o.Order > 3 {
		chk.Panic("basis function order must be 1, 2 or 3. order=%d is invalid", o.Order)
	}
	if o.Nelems < 1 {
		chk.Panic("at least one element is required. nelems=%d is invalid", o.Nelems)
	}
	if o.L <= 0 {
		chk.Panic("bar length must be positive. L=%g is invalid", o.L)
	}

	// variant descriptor
	switch o.Problem {
	case 1:
		o.Right = RightEnd{Kind: RightDirichlet, Value: o.G2}
	case 2:
		o.Right = RightEnd{Kind: RightFlux, Value: o.Hbar}
	default:
		chk.Panic("problem number must be 1 or 2. problem=%d is invalid", o.Problem)
	}

	// source term of the weak form; the stiffness integrand carries no E factor, so
	// the modulus divides the body force here instead
	fcoef, modulus := o.Fcoef, o.E
	o.Source = func(x float64) float64 { return fcoef * x / modulus }
}
