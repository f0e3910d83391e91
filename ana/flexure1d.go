// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical reference solutions used to verify the
// production numerical engines (flexure, failure) in tests, in the same
// spirit as the teacher's own closed-form benchmark solutions.
package ana

import "math"

// PointLoad1D is the direct, independently-written closed-form evaluation
// of the 1-D point-load flexure response, kept separate from
// flexure.Params.PointLoadDeflection so tests can cross-check the
// production (possibly worker-pool-parallelised) implementation against a
// plain, serial, un-optimised reference.
type PointLoad1D struct {
	ElasticThickness float64
	YoungsModulus    float64
	MantleDensity    float64
	Gravity          float64
}

// d returns the flexural rigidity D = E h^3 / (12 * 0.9375) -- 0.9375 is
// 1-nu^2 for nu=0.25, spelled out per spec.md S-2 instead of recomputed.
func (o PointLoad1D) d() float64 {
	h := o.ElasticThickness
	return o.YoungsModulus * h * h * h / (12 * 0.9375)
}

// Alpha returns alpha = (4D/(rho_m g))^(1/4), the 1-D flexure parameter.
func (o PointLoad1D) Alpha() float64 {
	return math.Pow(4*o.d()/(o.MantleDensity*o.Gravity), 0.25)
}

// PeakDeflection returns the closed-form deflection at the load itself:
// w(0) = q*alpha / (2*rho_m*g).
func (o PointLoad1D) PeakDeflection(q float64) float64 {
	return q * o.Alpha() / (2 * o.MantleDensity * o.Gravity)
}

// Deflection evaluates w(r) = w(0) * e^(-r/alpha) * (cos(r/alpha)+sin(r/alpha)).
func (o PointLoad1D) Deflection(q, r float64) float64 {
	a := o.Alpha()
	r = math.Abs(r)
	return o.PeakDeflection(q) * math.Exp(-r/a) * (math.Cos(r/a) + math.Sin(r/a))
}
