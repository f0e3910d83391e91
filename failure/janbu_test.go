// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mcflugen/sedflux-sub005/ana"
)

func uniformSlices(n int) []Slice {
	s := make([]Slice, n)
	for i := range s {
		s[i] = Slice{B: 1, C: 100, Phi: math.Pi / 6, W: 1000, U: 0, Alpha: 0.5}
	}
	return s
}

func TestScenarioS3JanbuRoot(tst *testing.T) {

	chk.PrintTitle("scenarioS3JanbuRoot")

	slices := uniformSlices(10)
	fos := JanbuFoS(slices, 1)
	if fos == Invalid {
		tst.Fatalf("expected a bracketed root, got Invalid\n")
	}

	// With uniform slices the per-slice terms cancel and the implicit
	// equation F = shapeFactor*sum(c1_k/(1+c2_k/F))/D collapses to a
	// closed form: F = c1/D - c2 (see DESIGN.md, open question decisions,
	// "Scenario S-3 worked example"). That is the value actually solved
	// for here, not the scenario's narrative "1/tan(alpha)*(c/w+tan phi))"
	// approximation.
	const wantFoS = 1.29451
	if math.Abs(fos-wantFoS) > 0.02 {
		tst.Errorf("FoS = %v, want close to %v\n", fos, wantFoS)
	}

	res := residual(slices, 1, fos)
	if math.Abs(res) > janbuTol*2 {
		tst.Errorf("residual at root too large: %v\n", res)
	}

	anaSlices := make([]ana.JanbuSlice, len(slices))
	for i, s := range slices {
		anaSlices[i] = ana.JanbuSlice{B: s.B, C: s.C, Phi: s.Phi, W: s.W, U: s.U, Alpha: s.Alpha, Av: s.Av, Ah: s.Ah}
	}
	anaRes := ana.JanbuResidual(anaSlices, 1, fos)
	if math.Abs(anaRes) > janbuTol*2 {
		tst.Errorf("independent residual at root too large: %v\n", anaRes)
	}
}

func TestJanbuInvalidWhenNotBracketed(tst *testing.T) {

	chk.PrintTitle("janbuInvalidWhenNotBracketed")

	// degenerate slices whose denominator collapses to zero: alpha=0 means
	// sin(alpha)=0 and W*Ah=0 (Ah=0), so D = 0 and residual is NaN at
	// every F -- not bracketed.
	slices := []Slice{{B: 1, C: 0, Phi: 0, W: 0, U: 0, Alpha: 0}}
	fos := JanbuFoS(slices, 1)
	if fos != Invalid {
		tst.Errorf("expected Invalid, got %v\n", fos)
	}
}
