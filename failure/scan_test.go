// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mcflugen/sedflux-sub005/sedclass"
	"github.com/mcflugen/sedflux-sub005/strata"
)

// buildStrataColumns instantiates real strata.Column objects spanning the
// arc, each with a single cell whose grain fractions give the requested
// clay fraction (class 0 is "clay").
func buildStrataColumns(p Profile, start, length int, clayFraction float64) []*strata.Column {
	reg, err := sedclass.NewRegistryFromPrms([]dbf.Params{
		{&fun.P{N: "bulk density", V: 1600}, &fun.P{N: "grain density", V: 2650}, &fun.P{N: "grain diameter", V: 0.00001}},
		{&fun.P{N: "bulk density", V: 1800}, &fun.P{N: "grain density", V: 2650}, &fun.P{N: "grain diameter", V: 0.0005}},
	})
	if err != nil {
		panic(err)
	}
	seaLevel := 0.0
	cols := make([]*strata.Column, length)
	for k := 0; k < length; k++ {
		c := p.Cols[start+k]
		col := strata.NewColumn(float64(k), 0, c.Base, 1, &seaLevel, reg)
		col.AddCell(&strata.Cell{
			Thickness: c.Top - c.Base,
			Fractions: []float64{clayFraction, 1 - clayFraction},
		})
		cols[k] = col
	}
	return cols
}

// reliefProfile builds a flat profile with a localised steep scarp in the
// middle, steep enough that gravity overwhelms cohesion on a short arc.
func reliefProfile(n int) Profile {
	cols := make([]Column, n)
	top := 200.0
	for i := 0; i < n; i++ {
		if i >= 8 && i <= 14 {
			top -= 3.0
		}
		cols[i] = Column{
			Top: top, Base: top - 50,
			Cohesion: 1000, Phi: math.Pi / 6,
			SubmergedWeight: 1.0e5, Width: 1,
			ConsolidCoef: 1e-6, DeltaTdep: 1,
		}
	}
	return Profile{Cols: cols, Dy: 1}
}

func TestScenarioS6FailureTrigger(tst *testing.T) {

	chk.PrintTitle("scenarioS6FailureTrigger")

	p := reliefProfile(30)
	pp, err := New("local")
	if err != nil {
		tst.Fatalf("New(local) failed: %v\n", err)
	}

	best, err := Scan(p, pp, 0, 2, 2)
	if err != nil {
		tst.Fatalf("Scan failed: %v\n", err)
	}
	if !best.Valid || best.FoS >= minFactorOfSafety {
		tst.Fatalf("expected a valid arc with FoS<1, got %+v\n", best)
	}

	end := best.Start + best.Length - 1
	rise := p.Cols[best.Start].Top - p.Cols[end].Top
	run := float64(best.Length-1) * p.Dy
	radius := (rise*rise + run*run) / (2 * rise)
	arcElevations := make([]float64, best.Length)
	for k := 0; k < best.Length; k++ {
		x := float64(k) * p.Dy
		arcElevations[k] = p.Cols[best.Start].Top - (radius - math.Sqrt(math.Max(0, radius*radius-x*x)))
	}

	clayThreshold := 0.4
	cols := buildStrataColumns(p, best.Start, best.Length, 0.5)
	res, err := RemoveAndClassify(cols, best, arcElevations, clayThreshold, 0)
	if err != nil {
		tst.Fatalf("RemoveAndClassify failed: %v\n", err)
	}

	if res.MassRemoved <= 0 {
		tst.Errorf("expected positive removed mass, got %v\n", res.MassRemoved)
	}
	if math.Abs(res.ClayFraction-0.5) > 1e-9 {
		tst.Errorf("clay fraction mismatch: got %v, want 0.5\n", res.ClayFraction)
	}
	if res.ClayFraction >= clayThreshold && !res.IsDebrisFlow {
		tst.Errorf("clay fraction %v >= threshold %v should classify as debris flow\n", res.ClayFraction, clayThreshold)
	}
}
