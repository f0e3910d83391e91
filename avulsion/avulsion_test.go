// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avulsion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestScenarioS4AngleStatistics(tst *testing.T) {

	chk.PrintTitle("scenarioS4AngleStatistics")

	leaf := &LeafState{ThetaMin: -math.Pi / 3, ThetaMax: math.Pi / 3, Sigma: 0.1}
	rng := rand.New(rand.NewSource(42))

	sum := 0.0
	const n = 10000
	for i := 0; i < n; i++ {
		leaf.Avulse(rng)
		if leaf.Theta < leaf.ThetaMin || leaf.Theta > leaf.ThetaMax {
			tst.Fatalf("step %d: theta %v outside [%v,%v]\n", i, leaf.Theta, leaf.ThetaMin, leaf.ThetaMax)
		}
		sum += leaf.Theta
	}
	mean := sum / n
	if math.Abs(mean) > 0.02 {
		tst.Errorf("mean(theta) = %v, want within 0.02 of the symmetric stationary mean 0\n", mean)
	}
}

func TestScenarioS5SplitMassConservation(tst *testing.T) {

	chk.PrintTitle("scenarioS5SplitMassConservation")

	root := &LeafState{ThetaMin: -1, ThetaMax: 1, Sigma: 0.05, Q: 1000, Qb: 10, Width: 200}
	tree := NewTree(root)
	tree.Split()

	leaves := tree.Leaves()
	if len(leaves) != 2 {
		tst.Fatalf("expected 2 leaves after split, got %d\n", len(leaves))
	}

	qSum := leaves[0].Q + leaves[1].Q
	qbSum := leaves[0].Qb + leaves[1].Qb
	if math.Abs(qSum-1000) > 1e-9 {
		tst.Errorf("q sum after split = %v, want 1000\n", qSum)
	}
	if math.Abs(qbSum-10) > 1e-9 {
		tst.Errorf("qb sum after split = %v, want 10\n", qbSum)
	}
}

type gridStub struct {
	nx, ny int
	sea    float64
	top    map[CellIdx]float64
}

func (g gridStub) InBounds(i, j int) bool { return i >= 0 && i < g.nx && j >= 0 && j < g.ny }
func (g gridStub) WaterDepth(i, j int) float64 {
	return g.sea - g.top[CellIdx{i, j}]
}

func TestTraceToMouthReachesWater(tst *testing.T) {

	chk.PrintTitle("traceToMouthReachesWater")

	top := make(map[CellIdx]float64)
	for i := 0; i < 20; i++ {
		for j := 0; j < 5; j++ {
			top[CellIdx{i, j}] = 10
		}
	}
	for i := 10; i < 20; i++ {
		for j := 0; j < 5; j++ {
			top[CellIdx{i, j}] = -10 // below sea level past i=10
		}
	}
	cq := gridStub{nx: 20, ny: 5, sea: 0, top: top}

	mi, _, path, length, ok := TraceToMouth(cq, 0, 2, 0, 100, 100)
	if !ok {
		tst.Fatalf("expected to reach a mouth\n")
	}
	if mi < 10 {
		tst.Errorf("mouth at i=%d should be at or past the shoreline i=10\n", mi)
	}
	if length <= 0 {
		tst.Errorf("expected positive channel length, got %v\n", length)
	}
	if len(path) < 2 {
		tst.Errorf("expected a multi-cell path, got %d cells\n", len(path))
	}
}
