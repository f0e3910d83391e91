// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avulsion

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Model owns the river-mouth tree and the configuration driving its
// per-step evolution.
type Model struct {
	Tree            *Tree
	NMouths         int
	QTotal, QbTotal float64
	WaterExponent   float64 // n
	BedLoadExponent float64 // m
	Dx, Dy          float64
}

// NewModel seeds a single-leaf tree at hinge with the given angle bounds.
func NewModel(hingeI, hingeJ int, theta, thetaMin, thetaMax, sigma, width float64) *Model {
	root := &LeafState{
		ID:     uuid.New(),
		HingeI: hingeI, HingeJ: hingeJ,
		Theta: NormalizeAngle(theta), ThetaMin: NormalizeAngle(thetaMin), ThetaMax: NormalizeAngle(thetaMax),
		Sigma: sigma, Width: width,
	}
	return &Model{Tree: NewTree(root), NMouths: 1, WaterExponent: 1, BedLoadExponent: 1}
}

// StepResult is one substep's painted bed-load output.
type StepResult struct {
	Leaves      []*LeafState
	BedLoadFlux map[CellIdx]float64 // surface_bed_load_sediment__mass_flow_rate, accumulated over hinge-to-mouth traces
}

// Step runs `len` substeps of dt_frac = 1/len each: avulse every leaf,
// retrace to its mouth, split the weakest leaf if below NMouths, then
// partition discharge and paint the bed-load grid.
func Step(m *Model, cq CubeQuery, rng *rand.Rand, nSubsteps int) StepResult {
	if nSubsteps < 1 {
		nSubsteps = 1
	}
	dtFrac := 1.0 / float64(nSubsteps)
	flux := make(map[CellIdx]float64)

	var leaves []*LeafState
	for sub := 0; sub < nSubsteps; sub++ {
		leaves = m.Tree.Leaves()
		for _, l := range leaves {
			l.Avulse(rng)
			mi, mj, path, length, _ := TraceToMouth(cq, l.HingeI, l.HingeJ, l.Theta, m.Dx, m.Dy)
			l.MouthI, l.MouthJ = mi, mj
			l.Path = path
			l.Length = length
		}

		if len(leaves) < m.NMouths {
			m.Tree.Split()
			leaves = m.Tree.Leaves()
		}

		Partition(leaves, m.QTotal, m.QbTotal, m.WaterExponent, m.BedLoadExponent)

		for _, l := range leaves {
			for _, c := range l.Path {
				flux[c] += l.Qb * dtFrac
			}
		}
	}
	return StepResult{Leaves: leaves, BedLoadFlux: flux}
}

// ChannelLength is exposed for tests and callers that want to recompute
// Euclidean hinge-to-mouth length without a full retrace.
func ChannelLength(hingeI, hingeJ, mouthI, mouthJ int, dx, dy float64) float64 {
	return math.Hypot(float64(mouthI-hingeI)*dx, float64(mouthJ-hingeJ)*dy)
}
