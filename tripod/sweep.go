// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tripod

import (
	"github.com/mcflugen/sedflux-sub005/cube"
	"github.com/mcflugen/sedflux-sub005/sampler"
)

// Probe is a single tripod measurement site, given in grid-cell indices.
type Probe struct {
	I, J int
	X, Y float64
}

// Recorder produces Records by sampling a cube at a fixed set of probes.
type Recorder struct {
	Kind   sampler.Kind
	Probes []Probe
}

// NewRecorder builds a Recorder and the Points list for a File's preamble.
func NewRecorder(kind sampler.Kind, probes []Probe) (*Recorder, []Point) {
	pts := make([]Point, len(probes))
	for i, p := range probes {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return &Recorder{Kind: kind, Probes: probes}, pts
}

// Sample takes one Record at timeYears by calling sampler.Measure at every probe.
func (r *Recorder) Sample(cu *cube.Cube, timeYears float64) Record {
	vals := make([]float64, len(r.Probes))
	for i, p := range r.Probes {
		vals[i] = sampler.Measure(cu, r.Kind, p.I, p.J)
	}
	return Record{TimeYears: timeYears, Values: vals}
}
