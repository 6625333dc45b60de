// Copyright 2026 The Axifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_ips01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips01. default 3-point rule. weights sum to 2")

	sum := 0.0
	for _, ip := range IpsLin3 {
		sum += ip[1]
	}
	chk.Float64(tst, "Σ w", 1e-15, sum, 2.0)
}

func Test_ips02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips02. default 3-point rule. exactness up to degree 5")

	// ∫ ξ^k dξ over [-1,+1] = 2/(k+1) for even k; 0 for odd k
	for k := 0; k <= 5; k++ {
		res := 0.0
		for _, ip := range IpsLin3 {
			res += math.Pow(ip[0], float64(k)) * ip[1]
		}
		correct := 0.0
		if k%2 == 0 {
			correct = 2.0 / float64(k+1)
		}
		if chk.Verbose {
			io.Pf("∫ ξ^%d dξ = %23.15e (%23.15e)\n", k, res, correct)
		}
		chk.AnaNum(tst, io.Sf("∫ ξ^%d dξ", k), 1e-15, res, correct, chk.Verbose)
	}
}

func Test_ips03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips03. generated rules versus reference values")

	// n=3 must reproduce the default literals
	ips := IpsGauss(3)
	for i, ip := range ips {
		chk.Float64(tst, io.Sf("ξ%d", i), 1e-14, ip[0], IpsLin3[i][0])
		chk.Float64(tst, io.Sf("w%d", i), 1e-14, ip[1], IpsLin3[i][1])
	}

	// n=2 reference values
	ips = IpsGauss(2)
	chk.Float64(tst, "n=2 ξ0", 1e-14, ips[0][0], -1.0/math.Sqrt(3.0))
	chk.Float64(tst, "n=2 ξ1", 1e-14, ips[1][0], +1.0/math.Sqrt(3.0))
	chk.Float64(tst, "n=2 w0", 1e-14, ips[0][1], 1.0)
	chk.Float64(tst, "n=2 w1", 1e-14, ips[1][1], 1.0)
}

func Test_ips04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips04. generated rules. weight sums and symmetry")

	for n := 1; n <= 6; n++ {
		ips := IpsGauss(n)
		chk.IntAssert(len(ips), n)
		sum := 0.0
		for _, ip := range ips {
			sum += ip[1]
		}
		chk.Float64(tst, io.Sf("n=%d Σ w", n), 1e-14, sum, 2.0)
		for i := 0; i < n/2; i++ {
			chk.Float64(tst, io.Sf("n=%d symmetry ξ", n), 1e-14, ips[i][0], -ips[n-1-i][0])
			chk.Float64(tst, io.Sf("n=%d symmetry w", n), 1e-14, ips[i][1], ips[n-1-i][1])
		}
	}
}
