// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strata

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mcflugen/sedflux-sub005/sedclass"
)

// ErrInsufficientSediment is returned by RemoveTop/ExtractTop when the
// requested depth exceeds the column's current thickness.
var ErrInsufficientSediment = chk.Err("strata: insufficient sediment to remove requested depth")

// Gravity is the gravitational acceleration used by load-bearing queries.
const Gravity = 9.81

// SeawaterDensity is used by LoadAtDepth's buoyant-density correction,
// which it applies whether or not the column is below sea level;
// consumers that need the precise water column load use cube.Cube.Load
// instead.
const SeawaterDensity = 1028.0

// Column is an ordered stack of cells at a fixed (x,y) position.
//
// Invariants: Cells are listed bottom to top; Cells[len-1].Age is
// monotonically non-decreasing over the run; TopHeight() equals
// BaseElevation + sum of cell thicknesses.
type Column struct {
	X, Y          float64 // fixed position
	BaseElevation float64 // top of basement rock
	DeltaZ        float64 // cell thickness resolution [m]
	SeaLevel      *float64 // shared sea-level reference
	Cells         []*Cell
	Reg           *sedclass.Registry
}

// NewColumn allocates an empty column referencing a shared sea-level value.
func NewColumn(x, y, base, dz float64, seaLevel *float64, reg *sedclass.Registry) *Column {
	return &Column{X: x, Y: y, BaseElevation: base, DeltaZ: dz, SeaLevel: seaLevel, Reg: reg}
}

// Thickness returns the total sediment thickness (sum of cell thicknesses).
func (col *Column) Thickness() float64 {
	t := 0.0
	for _, c := range col.Cells {
		t += c.Thickness
	}
	return t
}

// TopHeight returns base elevation plus total sediment thickness.
func (col *Column) TopHeight() float64 {
	return col.BaseElevation + col.Thickness()
}

// AddCell appends a cell at the top of the column. If the new thickness is
// below the no-op threshold it is dropped. Otherwise it is merged with the
// current top cell when facies/age/fractions match within tolerance, else
// pushed as a new layer.
func (col *Column) AddCell(c *Cell) {
	if c.Thickness < thicknessEps {
		return
	}
	cc := c.clone()
	if !cc.Normalize() {
		return // renormalization would divide by zero: drop silently
	}
	if n := len(col.Cells); n > 0 {
		top := col.Cells[n-1]
		if mergeable(top, cc) {
			top.Thickness = mergeInto(top, top.Thickness, cc, cc.Thickness)
			return
		}
	}
	col.Cells = append(col.Cells, cc)
}

// RemoveTop removes exactly depth metres from the top of the column,
// splitting the top cell if necessary, and returns the removed material as
// a single cell whose fractions are the mass-weighted mean over the slice.
func (col *Column) RemoveTop(depth float64) (*Cell, error) {
	out := NewCell(len(col.Reg.All()))
	if err := col.ExtractTop(depth, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractTop behaves like RemoveTop but writes the removed bundle into the
// caller-owned cell `out` instead of allocating a new one.
func (col *Column) ExtractTop(depth float64, out *Cell) error {
	if depth > col.Thickness()+1e-12 {
		return ErrInsufficientSediment
	}
	if depth <= 0 {
		g := 0
		if col.Reg != nil {
			g = col.Reg.N()
		}
		*out = Cell{Fractions: make([]float64, g)}
		return nil
	}

	g := len(col.Reg.All())
	acc := &Cell{Fractions: make([]float64, g)}
	removed := 0.0
	remaining := depth

	for remaining > 1e-15 && len(col.Cells) > 0 {
		top := col.Cells[len(col.Cells)-1]
		if top.Thickness <= remaining+1e-15 {
			// consume the whole top cell
			removed = mergeInto(acc, removed, top, top.Thickness)
			remaining -= top.Thickness
			col.Cells = col.Cells[:len(col.Cells)-1]
		} else {
			// split the top cell
			slice := top.clone()
			slice.Thickness = remaining
			removed = mergeInto(acc, removed, slice, remaining)
			top.Thickness -= remaining
			remaining = 0
		}
	}
	acc.Thickness = removed
	acc.Normalize()
	*out = *acc
	return nil
}

// CopyAbove produces a new column containing every cell whose bottom lies
// at or above elevation, splitting the straddling cell if necessary. Used
// by the failure engine to extract the mass above a candidate arc.
func (col *Column) CopyAbove(elevation float64) *Column {
	out := NewColumn(col.X, col.Y, elevation, col.DeltaZ, col.SeaLevel, col.Reg)
	bottom := col.BaseElevation
	for _, c := range col.Cells {
		top := bottom + c.Thickness
		switch {
		case top <= elevation+1e-15:
			// entirely below: skip
		case bottom >= elevation-1e-15:
			// entirely above: keep whole
			out.Cells = append(out.Cells, c.clone())
		default:
			// straddles: keep only the portion above elevation
			frac := c.clone()
			frac.Thickness = top - elevation
			out.Cells = append(out.Cells, frac)
		}
		bottom = top
	}
	return out
}

// Rebin normalizes layer thicknesses to integer multiples of DeltaZ by
// bottom-up accumulation; each output cell is the mass-weighted average of
// the inputs that fill it. Idempotent: Rebin(Rebin(c)) == Rebin(c) exactly.
func (col *Column) Rebin() {
	if col.DeltaZ <= 0 || len(col.Cells) == 0 {
		return
	}
	g := len(col.Reg.All())
	var out []*Cell
	acc := &Cell{Fractions: make([]float64, g)}
	accT := 0.0
	for _, c := range col.Cells {
		remaining := c.Thickness
		src := c
		for remaining > 1e-15 {
			need := col.DeltaZ - accT
			take := remaining
			if take > need {
				take = need
			}
			slice := src.clone()
			slice.Thickness = take
			accT = mergeInto(acc, accT, slice, take)
			remaining -= take
			if accT >= col.DeltaZ-1e-15 {
				acc.Thickness = accT
				acc.Normalize()
				out = append(out, acc)
				acc = &Cell{Fractions: make([]float64, g)}
				accT = 0
			}
		}
	}
	if accT > thicknessEps {
		acc.Thickness = accT
		acc.Normalize()
		out = append(out, acc)
	}
	col.Cells = out
}

// LoadAtDepth returns rho' * g * d, where rho' is the column-mean buoyant
// density over the top d metres of sediment. O(k) in the number of cells
// until the requested depth is covered.
func (col *Column) LoadAtDepth(d float64) float64 {
	if d <= 0 {
		return 0
	}
	massPerArea := 0.0
	remaining := d
	for i := len(col.Cells) - 1; i >= 0 && remaining > 1e-15; i-- {
		c := col.Cells[i]
		t := math.Min(c.Thickness, remaining)
		massPerArea += t * (BulkDensity(c, col.Reg) - SeawaterDensity)
		remaining -= t
	}
	covered := d - remaining
	if covered <= 0 {
		return 0
	}
	rhoPrime := massPerArea / covered
	return rhoPrime * Gravity * covered
}

// Mass returns the areal mass of the column: sum(thickness * bulk_density).
func (col *Column) Mass() float64 {
	m := 0.0
	for _, c := range col.Cells {
		m += c.Thickness * BulkDensity(c, col.Reg)
	}
	return m
}

// WaterDepth returns SeaLevel - TopHeight.
func (col *Column) WaterDepth() float64 {
	if col.SeaLevel == nil {
		return -col.TopHeight()
	}
	return *col.SeaLevel - col.TopHeight()
}
