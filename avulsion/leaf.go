// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package avulsion implements the river-mouth tree: per-leaf angle
// random-walk avulsion, cube-tracing to a mouth, weakest-leaf splitting,
// and discharge/bed-load partitioning among the current leaves.
package avulsion

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// LeafState is the mutable state owned by one river mouth. ID stays the
// same from step to step for as long as the leaf exists, so external
// consumers such as tripods or BMI vector outputs can tell leaves apart
// even as the tree's shape changes; a Split gives both children fresh IDs.
type LeafState struct {
	ID             uuid.UUID
	HingeI, HingeJ int
	MouthI, MouthJ int
	Theta          float64 // current angle [rad], in (-pi, pi]
	ThetaMin       float64
	ThetaMax       float64
	Sigma          float64 // avulsion standard deviation [rad]
	Width          float64
	Q              float64 // water discharge, set by Partition
	Qb             float64 // bed-load flux, set by Partition
	Length         float64 // hinge-to-mouth Euclidean distance, set by Trace
	Path           []CellIdx
}

// CellIdx addresses one cube cell visited by a river trace.
type CellIdx struct{ I, J int }

// NormalizeAngle reduces theta to (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// Avulse draws theta' = theta + sigma*N(0,1) and mirror-reflects it back
// into [thetaMin, thetaMax] until it lands in range.
func (l *LeafState) Avulse(rng *rand.Rand) {
	theta := l.Theta + l.Sigma*rng.NormFloat64()
	for i := 0; i < 1000; i++ {
		switch {
		case theta < l.ThetaMin:
			theta = 2*l.ThetaMin - theta
		case theta > l.ThetaMax:
			theta = 2*l.ThetaMax - theta
		default:
			l.Theta = theta
			return
		}
	}
	// pathological sigma/range combination: clamp rather than loop forever
	if theta < l.ThetaMin {
		theta = l.ThetaMin
	}
	if theta > l.ThetaMax {
		theta = l.ThetaMax
	}
	l.Theta = theta
}
