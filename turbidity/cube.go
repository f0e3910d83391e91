// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turbidity

import (
	"math"

	"github.com/mcflugen/sedflux-sub005/cube"
	"github.com/mcflugen/sedflux-sub005/strata"
)

// Branch is an ordered sequence of cube column indices (i,j) describing the
// 1-D line the turbidity current is traced along, river mouth first.
type Branch []struct{ I, J int }

// RunOnCube marches the flood packet pk down branch for duration seconds,
// re-extracting the bathymetry every 1-day substep, and deposits the
// resulting sediment into the underlying cube columns.
//
// k is the number of solver nodes per cube cell along the branch
// (Δx = cube.Dy/k); age is stamped on every deposited cell.
func RunOnCube(cu *cube.Cube, branch Branch, k int, pk Packet, cc ClassConstants, konst Constants, duration, age float64) (*Result, error) {
	if k < 1 {
		k = 1
	}
	daySecs := konst.DaySecs
	if daySecs == 0 {
		daySecs = 86400
	}
	nSub := int(math.Ceil(duration / daySecs))
	if nSub < 1 {
		nSub = 1
	}
	subDuration := duration / float64(nSub)

	var last *Result
	var err error
	for s := 0; s < nSub; s++ {
		profile := extractLine(cu, branch, k)
		query := phequery(cu, branch, k)

		last, err = Solve(profile, pk, cc, query, konst, subDuration)
		if err != nil {
			return last, err
		}

		depositToCube(cu, branch, k, last, subDuration, age)

		pk.Velocity0 = last.Velocity[len(last.Velocity)-1]
		pk.Depth0 = last.Depth[len(last.Depth)-1]
		pk.Q0 = last.Discharge[len(last.Discharge)-1]
		pk.FlowDensity = last.Density[len(last.Density)-1]
		pk.Fractions = last.Fractions[len(last.Fractions)-1]
	}
	return last, nil
}

// extractLine samples an equispaced 1-D profile along branch at k nodes per
// cube cell. Each node between two successive branch columns takes the
// TopHeight gradient of that segment as its slope, except node 0, whose
// slope is 0; the closing node repeats the last slope.
func extractLine(cu *cube.Cube, branch Branch, k int) []Node {
	if len(branch) < 2 {
		return nil
	}
	dx := cu.Dy / float64(k)
	var prof []Node
	x := 0.0
	for seg := 0; seg < len(branch)-1; seg++ {
		a, b := branch[seg], branch[seg+1]
		ha := cu.TopHeight(a.I, a.J)
		hb := cu.TopHeight(b.I, b.J)
		for step := 0; step < k; step++ {
			var slope float64
			if seg > 0 || step > 0 {
				slope = (hb - ha) / (float64(k) * dx)
			}
			prof = append(prof, Node{X: x, Slope: slope, Width: cu.Dx})
			x += dx
		}
	}
	prof = append(prof, Node{X: x, Slope: prof[len(prof)-1].Slope, Width: cu.Dx})
	return prof
}

// phequery builds the PheQuery callback that asks the cube's underlying
// columns for the grain-size distribution of their uppermost erode_depth.
func phequery(cu *cube.Cube, branch Branch, k int) PheQuery {
	return func(x, dx, erodeDepth float64) (float64, []float64) {
		idx := int(x / (cu.Dy / float64(k)))
		seg := idx / k
		if seg >= len(branch) {
			seg = len(branch) - 1
		}
		col := cu.Column(branch[seg].I, branch[seg].J)
		out := strata.NewCell(col.Reg.N())
		if err := col.ExtractTop(erodeDepth, out); err != nil {
			erodeDepth = col.Thickness()
			col.ExtractTop(erodeDepth, out)
		}
		col.AddCell(out)
		return erodeDepth, out.Fractions
	}
}

// depositToCube rebins the per-node deposit/erosion arrays back onto cube
// columns by simple integer bin averaging, then removes the eroded
// thickness and adds the deposited thickness as TURBIDITE cells.
func depositToCube(cu *cube.Cube, branch Branch, k int, res *Result, duration, age float64) {
	if len(branch) < 2 {
		return
	}
	g := 0
	if len(res.Deposit) > 0 {
		g = len(res.Deposit[0])
	}
	nCols := len(branch)
	depPerCol := make([][]float64, nCols)
	eroPerCol := make([][]float64, nCols)
	counts := make([]int, nCols)
	for i := range depPerCol {
		depPerCol[i] = make([]float64, g)
		eroPerCol[i] = make([]float64, g)
	}
	for node := range res.Deposit {
		col := node / k
		if col >= nCols {
			col = nCols - 1
		}
		counts[col]++
		for n := 0; n < g; n++ {
			depPerCol[col][n] += res.Deposit[node][n]
			eroPerCol[col][n] += res.Erosion[node][n]
		}
	}
	for ci, b := range branch {
		if counts[ci] == 0 {
			continue
		}
		col := cu.Column(b.I, b.J)
		totalErosion := 0.0
		totalDeposit := 0.0
		frac := make([]float64, g)
		for n := 0; n < g; n++ {
			depPerCol[ci][n] /= float64(counts[ci])
			eroPerCol[ci][n] /= float64(counts[ci])
			totalDeposit += depPerCol[ci][n]
			totalErosion += eroPerCol[ci][n]
		}
		// Erosion values are stored as negative thickness changes.
		if eroded := -totalErosion; eroded > 0 && eroded <= col.Thickness() {
			col.RemoveTop(eroded)
		}
		if totalDeposit > 0 {
			for n := 0; n < g; n++ {
				frac[n] = depPerCol[ci][n] / totalDeposit
			}
			cell := &strata.Cell{Thickness: totalDeposit, Fractions: frac, Age: age, Facies: strata.TURBIDITE}
			col.AddCell(cell)
		}
	}
}
