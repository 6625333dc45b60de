// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds the natural coordinate and weight of one integration point:
//   ip[0] -- ξ coordinate in [-1,+1]
//   ip[1] -- weight
type Ipoint []float64

// IpsLin3 holds the default 3-point Gauss-Legendre rule. The weights sum to 2 (the
// length of the natural domain) and the rule integrates polynomials up to degree 5
// exactly; enough for the stiffness and load integrands of elements up to order 3.
var IpsLin3 = []Ipoint{
	{-0.7745966692414834, 0.5555555555555556},
	{0.0, 0.8888888888888888},
	{0.7745966692414834, 0.5555555555555556},
}

// IpsGauss generates the n-point Gauss-Legendre rule on [-1,+1] with the standard
// Legendre recurrence and Newton iteration on the roots. Use this to replace the
// default rule when elements of higher order demand more accuracy.
func IpsGauss(n int) (ips []Ipoint) {
	if n < 1 {
		chk.Panic("cannot generate Gauss-Legendre rule with n=%d points", n)
	}
	ips = make([]Ipoint, n)
	for i := 0; i < n; i++ {
		// initial guess: Chebyshev-like estimate of the i-th root
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var pp float64
		for it := 0; it < 100; it++ {
			p0, p1 := 1.0, x
			for k := 2; k <= n; k++ {
				p0, p1 = p1, ((2.0*float64(k)-1.0)*x*p1-(float64(k)-1.0)*p0)/float64(k)
			}
			// derivative of the Legendre polynomial of degree n
			pp = float64(n) * (x*p1 - p0) / (x*x - 1.0)
			dx := p1 / pp
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		ips[n-1-i] = Ipoint{x, 2.0 / ((1.0 - x*x) * pp * pp)}
	}
	return
}
