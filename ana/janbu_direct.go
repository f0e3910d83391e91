// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// JanbuSlice is one slice's worth of inputs to the Janbu implicit
// factor-of-safety equation, independently named from the production
// failure.Slice type so tests exercise the formula, not a shared struct.
type JanbuSlice struct {
	B       float64 // slice width
	C       float64 // cohesion
	Phi     float64 // friction angle [rad]
	W       float64 // submerged weight per metre width
	U       float64 // excess pore pressure
	Alpha   float64 // basal slope [rad]
	Av, Ah  float64 // vertical/horizontal seismic coefficients (fractions of g)
}

// JanbuResidual evaluates f(F) = F - shapeFactor*sum(c1_k/(1+c2_k/F))/D,
// the residual whose root is the Janbu factor of safety (spec.md 4.5).
// Direct, unoptimised evaluation used to cross-check the production
// root-finder in tests (S-3, and invariant 6).
func JanbuResidual(slices []JanbuSlice, shapeFactor, F float64) float64 {
	num := 0.0
	den := 0.0
	for _, s := range slices {
		wp := s.W * (1 - s.Av)
		h := s.W * s.Ah
		c1 := s.B * (s.C + (wp/s.B-s.U-h*math.Sin(s.Alpha))*math.Tan(s.Phi)) / math.Cos(s.Alpha)
		c2 := math.Tan(s.Alpha) * math.Tan(s.Phi)
		num += c1 / (1 + c2/F)
		den += wp*math.Sin(s.Alpha) + h*math.Cos(s.Alpha)
	}
	if den == 0 {
		return math.NaN()
	}
	return F - shapeFactor*num/den
}
