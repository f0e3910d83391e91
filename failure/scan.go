// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"context"
	"math"

	"github.com/mcflugen/sedflux-sub005/cube"
	"github.com/mcflugen/sedflux-sub005/strata"
	"golang.org/x/sync/errgroup"
)

const minFailureLength = 5
const maxFailureLength = 100
const minRise = 1e-3
const minFactorOfSafety = 1.0
const dirtyTopChange = 0.1
const maxTriggerIterations = 100

// Arc is a candidate circular-arc failure spanning columns [Start,
// Start+Length).
type Arc struct {
	Start, Length int
	FoS           float64
	Valid         bool
	Ignore        bool
}

// Column is the per-column geometric and material state the scan needs,
// independent of the strata.Column representation so tests can drive the
// scanner without a full cube.
type Column struct {
	Top, Base       float64
	Cohesion, Phi   float64
	SubmergedWeight float64
	Width           float64
	LocalExcessU    float64
	DepositionRate  float64
	ConsolidCoef    float64
	DeltaTdep       float64
	ClayFraction    float64
}

// Profile is a 1-D sequence of failure-candidate columns plus the
// earthquake-acceleration scalar queried from the cube.
type Profile struct {
	Cols  []Column
	Dy    float64
	Quake float64 // Q: earthquake acceleration scalar (fraction of g)
}

// ColIdx addresses a cube column by grid coordinates.
type ColIdx struct{ I, J int }

// ProfileFromCube builds a scan Profile from a sequence of cube columns,
// taking submerged weight from each column's whole mass (less buoyancy
// when the column is under water), reading local excess pore pressure off
// its top cell, and applying uniform cohesion/friction/consolidation
// parameters (the column material itself does not carry those fields).
func ProfileFromCube(cu *cube.Cube, line []ColIdx, cohesion, phi, consolidCoef, deltaTdep float64) Profile {
	cols := make([]Column, len(line))
	for k, idx := range line {
		col := cu.Column(idx.I, idx.J)
		wd := cu.WaterDepth(idx.I, idx.J)
		submerged := col.Mass() * strata.Gravity
		if wd > 0 {
			submerged -= strata.SeawaterDensity * strata.Gravity * col.Thickness()
		}
		var localU, depRate float64
		if n := len(col.Cells); n > 0 {
			localU = col.Cells[n-1].Pressure
		}
		cols[k] = Column{
			Top: col.TopHeight(), Base: col.BaseElevation,
			Cohesion: cohesion, Phi: phi,
			SubmergedWeight: submerged, Width: cu.Dx,
			LocalExcessU: localU, DepositionRate: depRate,
			ConsolidCoef: consolidCoef, DeltaTdep: deltaTdep,
		}
	}
	return Profile{Cols: cols, Dy: cu.Dy, Quake: cu.Quake}
}

// slicesForArc builds the Janbu Slice inputs for the arc (start, length)
// using the given pore-pressure model.
func slicesForArc(p Profile, start, length int, pp PorePressure) ([]Slice, bool) {
	end := start + length - 1
	rise := p.Cols[start].Top - p.Cols[end].Top
	if rise < minRise {
		return nil, false
	}
	run := float64(length-1) * p.Dy
	radius := (rise*rise + run*run) / (2 * rise)

	av := p.Quake * math.Cos(math.Pi/8)
	ah := p.Quake * math.Sin(math.Pi/8)

	elev := make([]float64, length)
	for k := 0; k < length; k++ {
		x := float64(k) * p.Dy
		elev[k] = p.Cols[start].Top - (radius - math.Sqrt(math.Max(0, radius*radius-x*x)))
		col := p.Cols[start+k]
		if elev[k] < col.Base-1e-9 || elev[k] > col.Top+1e-9 {
			return nil, false
		}
	}

	slices := make([]Slice, length)
	for k := 0; k < length; k++ {
		col := p.Cols[start+k]
		var alpha float64
		switch {
		case k < length-1:
			alpha = math.Atan2(elev[k]-elev[k+1], p.Dy)
		default:
			alpha = math.Atan2(elev[k-1]-elev[k], p.Dy)
		}
		u := pp.Excess(Slab{
			SubmergedWeight: col.SubmergedWeight,
			Width:           col.Width,
			DepositionRate:  col.DepositionRate,
			ConsolidCoef:    col.ConsolidCoef,
			DeltaTdep:       col.DeltaTdep,
			LocalExcess:     col.LocalExcessU,
		})
		slices[k] = Slice{
			B: col.Width, C: col.Cohesion, Phi: col.Phi,
			W: col.SubmergedWeight, U: u, Alpha: alpha,
			Av: av, Ah: ah,
		}
	}
	return slices, true
}

// Scan evaluates every legal arc (start, length) on the profile using up to
// nWorkers goroutines over N_BLOCKS contiguous column blocks, and returns
// the arc with the lowest Janbu FoS. riverMouthOffset columns at the start
// of the profile (minus 3, per spec) are excluded from scan start
// positions.
func Scan(p Profile, pp PorePressure, riverMouthOffset, nBlocks, nWorkers int) (best Arc, err error) {
	n := len(p.Cols)
	first := riverMouthOffset - 3
	if first < 0 {
		first = 0
	}
	if nBlocks < 1 {
		nBlocks = 1
	}
	if nWorkers < 1 {
		nWorkers = 1
	}

	blockSize := (n - first + nBlocks - 1) / nBlocks
	if blockSize < 1 {
		blockSize = 1
	}

	results := make([]Arc, nBlocks)
	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, nWorkers)
	for b := 0; b < nBlocks; b++ {
		b := b
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			lo := first + b*blockSize
			hi := lo + blockSize
			if hi > n {
				hi = n
			}
			local := Arc{FoS: math.Inf(1)}
			for s := lo; s < hi; s++ {
				for L := minFailureLength; L <= maxFailureLength; L++ {
					if s+L > n {
						break
					}
					slices, ok := slicesForArc(p, s, L, pp)
					if !ok {
						continue
					}
					fos := JanbuFoS(slices, 1)
					if fos == Invalid {
						continue
					}
					if fos < local.FoS {
						local = Arc{Start: s, Length: L, FoS: fos, Valid: true}
					}
				}
			}
			results[b] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Arc{}, err
	}

	best = Arc{FoS: math.Inf(1)}
	for _, r := range results {
		if r.Valid && r.FoS < best.FoS {
			best = r
		}
	}
	return best, nil
}

// TsunamiParams are Murty's formula outputs for a triggered mass failure.
type TsunamiParams struct {
	Amplitude, Wavelength, Slope, Relief, MaxThickness float64
	CharacteristicLength, CharacteristicTime           float64
}

// Murty computes tsunami parameters from the geometry of a triggered
// failure: width w, water depth d, maximum failed thickness T, relief R,
// slope angle theta (radians), and wavelength lambda.
func Murty(w, d, T, R, theta, lambda, b float64) TsunamiParams {
	sinT := math.Sin(theta)
	A := 0.224 * T * (w / (w + lambda)) * math.Pow(sinT, 1.29) *
		(1 - 0.746*sinT + 0.170*sinT*sinT) * math.Pow(b/d, 1.25)
	s0 := 4.48 * b
	t0 := 3.87 * math.Sqrt(b/(gravityG*sinT))
	return TsunamiParams{
		Amplitude: A, Wavelength: lambda, Slope: theta, Relief: R, MaxThickness: T,
		CharacteristicLength: s0, CharacteristicTime: t0,
	}
}

const gravityG = 9.81

// TriggerResult describes one triggered failure.
type TriggerResult struct {
	Arc          Arc
	MassRemoved  float64
	ClayFraction float64
	IsDebrisFlow bool
	Tsunami      TsunamiParams
}

// RemoveAndClassify removes the sediment above the arc from a set of
// underlying strata columns, classifies the failure by clay fraction
// against clayThreshold, and returns the removed mass. cols and
// arcElevations are both arc-local: entry k describes profile column
// arc.Start+k. Column.CopyAbove must have already been called by the
// caller to snapshot the failure cube.
func RemoveAndClassify(cols []*strata.Column, arc Arc, arcElevations []float64, clayThreshold float64, clayClassIndex int) (TriggerResult, error) {
	massRemoved := 0.0
	clayMass := 0.0
	for k := 0; k < arc.Length; k++ {
		col := cols[k]
		depth := col.TopHeight() - arcElevations[k]
		if depth <= 0 {
			continue
		}
		removed, err := col.RemoveTop(depth)
		if err != nil {
			return TriggerResult{}, err
		}
		cellMass := removed.Thickness * strata.BulkDensity(removed, col.Reg)
		massRemoved += cellMass
		if clayClassIndex >= 0 && clayClassIndex < len(removed.Fractions) {
			clayMass += cellMass * removed.Fractions[clayClassIndex]
		}
	}
	clayFrac := 0.0
	if massRemoved > 0 {
		clayFrac = clayMass / massRemoved
	}
	return TriggerResult{
		Arc: arc, MassRemoved: massRemoved, ClayFraction: clayFrac,
		IsDebrisFlow: clayFrac >= clayThreshold,
	}, nil
}

// RunTriggerLoop rescans p up to maxTriggerIterations times, recording the
// lowest-FoS arc of each scan while that FoS is below minFactorOfSafety.
// It does not modify p or remove any sediment, and Scan does not exclude
// arcs already recorded, so the loop stops as soon as a scan returns an
// arc it has already recorded.
func RunTriggerLoop(p Profile, pp PorePressure, riverMouthOffset, nBlocks, nWorkers int) ([]Arc, error) {
	var triggered []Arc
	ignored := make(map[[2]int]bool)
	for iter := 0; iter < maxTriggerIterations; iter++ {
		best, err := Scan(p, pp, riverMouthOffset, nBlocks, nWorkers)
		if err != nil {
			return triggered, err
		}
		if !best.Valid || best.FoS >= minFactorOfSafety {
			break
		}
		key := [2]int{best.Start, best.Length}
		if ignored[key] {
			break
		}
		ignored[key] = true
		triggered = append(triggered, best)
	}
	return triggered, nil
}

// Dirty reports whether a fail-column needs its cached arcs invalidated:
// its top elevation changed by more than dirtyTopChange since the last
// scan.
func Dirty(lastTop, currentTop float64) bool {
	return math.Abs(currentTop-lastTop) > dirtyTopChange
}
