// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avulsion

import "math"

// CubeQuery is the subset of cube.Cube the tracer needs, kept as an
// interface so the algorithm can be exercised without a full cube.
type CubeQuery interface {
	InBounds(i, j int) bool
	WaterDepth(i, j int) float64
}

const maxTraceSteps = 100000

// TraceToMouth walks from (hingeI, hingeJ) along direction theta, one cube
// cell at a time, starting at the cell centre, until it either reaches a
// cell below sea level (the mouth) or leaves the domain. It returns the
// mouth cell, the visited path (hinge first), and the channel length (the
// Euclidean distance actually walked).
func TraceToMouth(cq CubeQuery, hingeI, hingeJ int, theta, dx, dy float64) (mouthI, mouthJ int, path []CellIdx, length float64, ok bool) {
	i, j := hingeI, hingeJ
	x, y := 0.5*dx, 0.5*dy // sub-cell position within the current cell
	dirX, dirY := math.Cos(theta), math.Sin(theta)
	path = append(path, CellIdx{i, j})

	if !cq.InBounds(i, j) {
		return i, j, path, 0, false
	}
	if cq.WaterDepth(i, j) > 0 {
		return i, j, path, 0, true
	}

	for step := 0; step < maxTraceSteps; step++ {
		const inf = math.MaxFloat64
		tRight, tLeft, tTop, tBottom := inf, inf, inf, inf
		if dirX > 0 {
			tRight = (dx - x) / dirX
		} else if dirX < 0 {
			tLeft = -x / dirX
		}
		if dirY > 0 {
			tTop = (dy - y) / dirY
		} else if dirY < 0 {
			tBottom = -y / dirY
		}

		t := math.Min(math.Min(tRight, tLeft), math.Min(tTop, tBottom))
		if math.IsInf(t, 1) {
			return i, j, path, length, false
		}

		nx, ny := x+dirX*t, y+dirY*t
		length += math.Hypot(nx-x, ny-y)

		switch t {
		case tRight:
			i++
			x, y = 0, clamp(ny, 0, dy)
		case tLeft:
			i--
			x, y = dx, clamp(ny, 0, dy)
		case tTop:
			j++
			x, y = clamp(nx, 0, dx), 0
		default:
			j--
			x, y = clamp(nx, 0, dx), dy
		}

		if !cq.InBounds(i, j) {
			return i, j, path, length, false
		}
		path = append(path, CellIdx{i, j})
		if cq.WaterDepth(i, j) > 0 {
			return i, j, path, length, true
		}
	}
	return i, j, path, length, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
