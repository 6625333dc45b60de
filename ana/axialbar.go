// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// AxialBarEnds computes the displacement of a 1D elastic bar with both ends held
// at prescribed values and a body force growing linearly with x
//
//   |→ fb(x) = fcoef·x
//   ▷o===================o◁      u(0) = g1    u(L) = g2
//   x=0                 x=L
//
// The closed-form solution is the cubic
//
//   u(x) = -fcoef·x³/(6E) + (g2 - g1 + fcoef·L³/(6E))·x/L + g1
type AxialBarEnds struct {
	L     float64 // bar length
	E     float64 // Young's modulus
	Fcoef float64 // body force coefficient
	G1    float64 // prescribed displacement @ x=0
	G2    float64 // prescribed displacement @ x=L
}

// U computes the displacement @ x
func (o AxialBarEnds) U(x float64) float64 {
	return -o.Fcoef*x*x*x/(6.0*o.E) + (o.G2-o.G1+o.Fcoef*o.L*o.L*o.L/(6.0*o.E))*x/o.L + o.G1
}

// CheckU checks a computed displacement against the analytical value
func (o AxialBarEnds) CheckU(tst *testing.T, tol, x, u float64) {
	chk.Float64(tst, "u", tol, u, o.U(x))
}

// AxialBarFlux computes the displacement of a 1D elastic bar with the left end held
// and a traction (flux) applied at the right end, under the same linear body force
//
//   |→ fb(x) = fcoef·x
//   ▷o===================o →  hbar     u(0) = g1    flux @ x=L
//   x=0                 x=L
//
// The expression below reproduces the reference solution of this problem verbatim:
// its cubic term divides by E although the assembled source term does not, so the
// discrete solution does not converge to it exactly
type AxialBarFlux struct {
	L    float64 // bar length
	E    float64 // Young's modulus
	G1   float64 // prescribed displacement @ x=0
	Hbar float64 // prescribed flux @ x=L
}

// U computes the displacement @ x
func (o AxialBarFlux) U(x float64) float64 {
	return -x*x*x/(6.0*o.E) + (o.Hbar+0.5*o.L*o.L)*x + o.G1
}

// CheckU checks a computed displacement against the analytical value
func (o AxialBarFlux) CheckU(tst *testing.T, tol, x, u float64) {
	chk.Float64(tst, "u", tol, u, o.U(x))
}
