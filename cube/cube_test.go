// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mcflugen/sedflux-sub005/sedclass"
	"github.com/mcflugen/sedflux-sub005/strata"
)

func newTestCube() *Cube {
	reg := sedclass.NewRegistry([]sedclass.Class{
		{Name: "sand", GrainDensity: 2650, BulkDensity: 1900},
	})
	return New(5, 5, 10, 10, 0.1, -5, 0, reg)
}

func TestGridOrigin(tst *testing.T) {

	chk.PrintTitle("gridOrigin")

	c := newTestCube()
	for j := 0; j < c.Ny; j++ {
		for i := 0; i < c.Nx; i++ {
			col := c.Column(i, j)
			if col.X != float64(i)*c.Dx || col.Y != float64(j)*c.Dy {
				tst.Errorf("column (%d,%d) position mismatch: (%v,%v)\n", i, j, col.X, col.Y)
			}
		}
	}
}

func TestSlopeOnRamp(tst *testing.T) {

	chk.PrintTitle("slopeOnRamp")

	c := newTestCube()
	// build a uniform ramp: top height increases by 1m per column in x
	for j := 0; j < c.Ny; j++ {
		for i := 0; i < c.Nx; i++ {
			col := c.Column(i, j)
			col.AddCell(&strata.Cell{Thickness: 5 + float64(i), Fractions: []float64{1}})
		}
	}
	s := c.Slope(1, 1)
	chk.Float64(tst, "slope", 1e-9, s, 1.0/c.Dx)
}

func TestWaterDepth(tst *testing.T) {

	chk.PrintTitle("waterDepth")

	c := newTestCube()
	c.SeaLevel = 2
	col := c.Column(0, 0)
	col.AddCell(&strata.Cell{Thickness: 3, Fractions: []float64{1}})
	wd := c.WaterDepth(0, 0)
	chk.Float64(tst, "water depth", 1e-12, wd, 2-(-5+3))
}

func TestSuspensionGridResetAndReindex(tst *testing.T) {

	chk.PrintTitle("suspensionGridReindex")

	c := newTestCube()
	c.AddSuspension(0, -2, -2, 5.0)
	c.AddSuspension(0, 2, 2, 3.0)
	if math.Abs(c.SuspensionAt(0, -2, -2)-5.0) > 1e-12 {
		tst.Errorf("suspension read-back failed at negative index\n")
	}
	c.ResetSuspension()
	if c.SuspensionAt(0, -2, -2) != 0 {
		tst.Errorf("reset did not zero suspension grid\n")
	}
}
