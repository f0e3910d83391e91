// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strata

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mcflugen/sedflux-sub005/sedclass"
)

func newTestColumn() *Column {
	sea := 0.0
	reg := sedclass.NewRegistry([]sedclass.Class{
		{Name: "sand", GrainDensity: 2650, BulkDensity: 1900},
		{Name: "mud", GrainDensity: 2650, BulkDensity: 1400},
	})
	return NewColumn(0, 0, -10, 0.1, &sea, reg)
}

func TestAddCellMergeAndDrop(tst *testing.T) {

	chk.PrintTitle("addCellMergeAndDrop")

	col := newTestColumn()
	col.AddCell(&Cell{Thickness: 0.5, Fractions: []float64{1, 0}, Age: 100, Facies: TURBIDITE})
	if len(col.Cells) != 1 {
		tst.Errorf("expected 1 cell, got %d\n", len(col.Cells))
	}

	// mergeable cell: same facies/age/fractions -> merges
	col.AddCell(&Cell{Thickness: 0.3, Fractions: []float64{1, 0}, Age: 100, Facies: TURBIDITE})
	if len(col.Cells) != 1 {
		tst.Errorf("expected merge into 1 cell, got %d\n", len(col.Cells))
	}
	chk.Float64(tst, "merged thickness", 1e-12, col.Cells[0].Thickness, 0.8)

	// distinct facies: pushes new cell
	col.AddCell(&Cell{Thickness: 0.4, Fractions: []float64{0, 1}, Age: 100, Facies: PLUME})
	if len(col.Cells) != 2 {
		tst.Errorf("expected 2 cells, got %d\n", len(col.Cells))
	}

	// sub-epsilon thickness: no-op
	col.AddCell(&Cell{Thickness: 1e-9, Fractions: []float64{1, 0}, Age: 100, Facies: TURBIDITE})
	if len(col.Cells) != 2 {
		tst.Errorf("expected no-op on tiny cell, got %d cells\n", len(col.Cells))
	}
}

func TestRemoveExtractRoundTrip(tst *testing.T) {

	chk.PrintTitle("removeExtractRoundTrip")

	col := newTestColumn()
	col.AddCell(&Cell{Thickness: 1.0, Fractions: []float64{0.7, 0.3}, Age: 10, Facies: RIVER})
	col.AddCell(&Cell{Thickness: 0.5, Fractions: []float64{0.2, 0.8}, Age: 20, Facies: TURBIDITE})

	thickBefore := col.Thickness()
	removed, err := col.RemoveTop(0.5)
	if err != nil {
		tst.Errorf("RemoveTop failed: %v\n", err)
		return
	}
	col.AddCell(removed)
	if math.Abs(col.Thickness()-thickBefore) > 1e-9 {
		tst.Errorf("round trip thickness mismatch: %v vs %v\n", col.Thickness(), thickBefore)
	}
}

func TestRemoveInsufficientSediment(tst *testing.T) {

	chk.PrintTitle("removeInsufficientSediment")

	col := newTestColumn()
	col.AddCell(&Cell{Thickness: 0.2, Fractions: []float64{1, 0}, Age: 1})
	_, err := col.RemoveTop(1.0)
	if err != ErrInsufficientSediment {
		tst.Errorf("expected ErrInsufficientSediment, got %v\n", err)
	}
}

func TestRebinIdempotent(tst *testing.T) {

	chk.PrintTitle("rebinIdempotent")

	col := newTestColumn()
	col.AddCell(&Cell{Thickness: 0.37, Fractions: []float64{0.6, 0.4}, Age: 5})
	col.AddCell(&Cell{Thickness: 0.21, Fractions: []float64{0.1, 0.9}, Age: 6, Facies: WAVE})
	col.AddCell(&Cell{Thickness: 0.08, Fractions: []float64{0.9, 0.1}, Age: 7, Facies: RIVER})

	massBefore := col.Mass()
	col.Rebin()
	massAfterOnce := col.Mass()
	if math.Abs(massAfterOnce-massBefore)/massBefore > 1e-12 {
		tst.Errorf("mass not conserved by rebin: %v vs %v\n", massAfterOnce, massBefore)
	}

	// snapshot the rebinned state
	type snap struct {
		t float64
		f []float64
	}
	var first []snap
	for _, c := range col.Cells {
		first = append(first, snap{c.Thickness, append([]float64(nil), c.Fractions...)})
	}

	col.Rebin()
	if len(col.Cells) != len(first) {
		tst.Errorf("rebin not idempotent in cell count: %d vs %d\n", len(col.Cells), len(first))
		return
	}
	for i, c := range col.Cells {
		if c.Thickness != first[i].t {
			tst.Errorf("rebin not exactly idempotent at cell %d thickness: %v vs %v\n", i, c.Thickness, first[i].t)
		}
	}
}

func TestCopyAboveSplits(tst *testing.T) {

	chk.PrintTitle("copyAboveSplits")

	col := newTestColumn()
	col.AddCell(&Cell{Thickness: 1.0, Fractions: []float64{1, 0}, Age: 1})
	col.AddCell(&Cell{Thickness: 1.0, Fractions: []float64{0, 1}, Age: 2})

	above := col.CopyAbove(col.BaseElevation + 1.5)
	chk.Float64(tst, "above thickness", 1e-12, above.Thickness(), 0.5)
}

func TestColumnInvariants(tst *testing.T) {

	chk.PrintTitle("columnInvariants")

	col := newTestColumn()
	col.AddCell(&Cell{Thickness: 0.6, Fractions: []float64{0.3, 0.7}, Age: 1})

	// invariant 1: thickness == top - base
	if math.Abs(col.Thickness()-(col.TopHeight()-col.BaseElevation)) > 1e-12 {
		tst.Errorf("thickness invariant violated\n")
	}
	// invariant 2: fractions sum to 1
	sum := 0.0
	for _, f := range col.Cells[0].Fractions {
		sum += f
	}
	chk.Float64(tst, "fraction sum", 1e-9, sum, 1.0)
}
