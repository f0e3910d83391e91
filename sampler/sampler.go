// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sampler exports derived scalar fields from the cube and its
// columns to external consumers, either as single named probes or as
// full-grid sweeps.
package sampler

import (
	"math"

	"github.com/mcflugen/sedflux-sub005/cube"
	"github.com/mcflugen/sedflux-sub005/strata"
)

// Kind is a measurement drawn from the closed set of supported probes.
type Kind int

const (
	Slope Kind = iota
	Depth
	Elevation
	Thickness
	GrainSize
	Age
	SandFraction
	SiltFraction
	ClayFraction
	MudFraction
	Facies
	Density
	Porosity
	Permeability
	Basement
	RiverMouth
	XSlope
	YSlope
)

const sandMin = 62.5e-6
const siltMin = 3.9e-6

// Measure evaluates kind at cube column (i,j), returning NaN when the
// indices are out of domain or the column has no cells (for measurements
// that require one).
func Measure(cu *cube.Cube, kind Kind, i, j int) float64 {
	if !cu.InBounds(i, j) {
		return math.NaN()
	}
	col := cu.Column(i, j)

	switch kind {
	case Slope:
		return cu.Slope(i, j)
	case XSlope:
		dhdx, _ := gradient(cu, i, j)
		return dhdx
	case YSlope:
		_, dhdy := gradient(cu, i, j)
		return dhdy
	case Depth:
		return cu.WaterDepth(i, j)
	case Elevation:
		return cu.TopHeight(i, j)
	case Basement:
		return col.BaseElevation
	case Thickness:
		return col.Thickness()
	}

	if len(col.Cells) == 0 {
		return math.NaN()
	}
	top := col.Cells[len(col.Cells)-1]

	switch kind {
	case Age:
		return top.Age
	case Facies:
		return float64(top.Facies)
	case Density:
		return strata.BulkDensity(top, col.Reg)
	case Porosity:
		return porosity(top, col.Reg)
	case Permeability:
		return permeability(top, col.Reg)
	case SandFraction, SiltFraction, ClayFraction, MudFraction:
		return grainClassFraction(top, col.Reg, kind)
	case GrainSize:
		return phi(meanGrainDiam(top, col.Reg))
	case RiverMouth:
		if cu.WaterDepth(i, j) > 0 {
			return 1
		}
		return 0
	}
	return math.NaN()
}

// Sweep evaluates kind at every column of the cube, returning a [Ny][Nx] grid.
func Sweep(cu *cube.Cube, kind Kind) [][]float64 {
	out := make([][]float64, cu.Ny)
	for j := range out {
		out[j] = make([]float64, cu.Nx)
		for i := range out[j] {
			out[j][i] = Measure(cu, kind, i, j)
		}
	}
	return out
}

func gradient(cu *cube.Cube, i, j int) (dhdx, dhdy float64) {
	h := cu.TopHeight(i, j)
	if i+1 < cu.Nx {
		dhdx = (cu.TopHeight(i+1, j) - h) / cu.Dx
	} else if i-1 >= 0 {
		dhdx = (h - cu.TopHeight(i-1, j)) / cu.Dx
	}
	if j+1 < cu.Ny {
		dhdy = (cu.TopHeight(i, j+1) - h) / cu.Dy
	} else if j-1 >= 0 {
		dhdy = (h - cu.TopHeight(i, j-1)) / cu.Dy
	}
	return
}

// phi converts a grain diameter [m] to the phi scale: phi = -log2(d/1mm).
func phi(d float64) float64 {
	if d <= 0 {
		return math.NaN()
	}
	return -math.Log2(d / 1e-3)
}
