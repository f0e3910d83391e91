// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package strata implements the sediment substrate: columns of
// stratigraphic cells, with mass-conserving add, remove, mix, split and
// rebin primitives.
package strata

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mcflugen/sedflux-sub005/sedclass"
)

// Facies is a bitmask tag describing how a cell was deposited.
type Facies uint16

const (
	BEDLOAD Facies = 1 << iota
	PLUME
	DEBRIS_FLOW
	TURBIDITE
	DIFFUSED
	RIVER
	WAVE
	ALONG_SHORE
)

// thicknessEps is the minimum thickness treated as non-zero (< 1 micron is dropped).
const thicknessEps = 1e-6

// fracTol is the L1 tolerance for matching grain-fraction vectors when
// deciding whether two cells should merge.
const fracTol = 1e-9

// ageTol is the age-matching tolerance (years) for merging cells.
const ageTol = 1.0

// Cell is a layer of deposited sediment occupying part of one column.
type Cell struct {
	Thickness   float64   // [m] at the column's current vertical resolution
	Fractions   []float64 // per-grain mass-fraction vector, sums to 1
	Age         float64   // [years]
	Facies      Facies    // bitmask tag
	Pressure    float64   // pressure / pore-pressure scalar
	IsDeposited bool      // deposition flag
}

// NewCell allocates a cell with G grain classes, all mass in class 0.
func NewCell(g int) *Cell {
	f := make([]float64, g)
	if g > 0 {
		f[0] = 1
	}
	return &Cell{Fractions: f}
}

// clone returns a deep copy.
func (c *Cell) clone() *Cell {
	cp := *c
	cp.Fractions = append([]float64(nil), c.Fractions...)
	return &cp
}

// Normalize clamps fractions to [0,1] and renormalizes them to sum to 1.
// If the sum is zero (division by zero), the cell is reported as dead via
// the returned bool (false means the cell should be dropped silently).
func (c *Cell) Normalize() (alive bool) {
	sum := 0.0
	for i, f := range c.Fractions {
		if f < 0 {
			c.Fractions[i] = 0
			f = 0
		}
		if f > 1 {
			c.Fractions[i] = 1
			f = 1
		}
		sum += f
	}
	if sum <= 0 {
		return false
	}
	for i := range c.Fractions {
		c.Fractions[i] /= sum
	}
	return true
}

// BulkDensity computes the mass-weighted bulk density of a cell from its
// grain fractions and the class registry.
func BulkDensity(c *Cell, reg *sedclass.Registry) float64 {
	rho := 0.0
	for n, f := range c.Fractions {
		rho += f * reg.At(n).BulkDensity
	}
	return rho
}

// mergeable reports whether two cells can be merged: matching facies, age
// within ageTol, and grain-fraction vectors within fracTol in L1 norm.
func mergeable(a, b *Cell) bool {
	if a.Facies != b.Facies {
		return false
	}
	if math.Abs(a.Age-b.Age) > ageTol {
		return false
	}
	if len(a.Fractions) != len(b.Fractions) {
		return false
	}
	l1 := 0.0
	for i := range a.Fractions {
		l1 += math.Abs(a.Fractions[i] - b.Fractions[i])
	}
	return l1 <= fracTol
}

// mergeInto folds b (with thickness tb) on top of a (with thickness ta),
// producing the mass-weighted mean fraction vector in a, and returns the
// combined thickness. a and b must have equal-length fraction vectors.
func mergeInto(a *Cell, ta float64, b *Cell, tb float64) float64 {
	total := ta + tb
	if total <= 0 {
		chk.Panic("strata: mergeInto called with non-positive total thickness")
	}
	for i := range a.Fractions {
		a.Fractions[i] = (a.Fractions[i]*ta + b.Fractions[i]*tb) / total
	}
	a.Age = (a.Age*ta + b.Age*tb) / total
	a.Pressure = (a.Pressure*ta + b.Pressure*tb) / total
	return total
}
