// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package failure implements the circular-arc slope-stability engine: the
// Janbu factor-of-safety root finder, pore-pressure models, and the
// block-parallel scan that locates and triggers failures on a profile.
package failure

import "math"

// Invalid is returned by JanbuFoS when the root is not bracketed in
// [janbuLo, janbuHi].
const Invalid = -1.0

const janbuLo = 0.005
const janbuHi = 200.0
const janbuTol = 0.01
const janbuMaxIter = 1000
const janbuDeriv = 1e-4

// Slice is one column's contribution to the Janbu implicit equation.
type Slice struct {
	B      float64 // slice width
	C      float64 // cohesion
	Phi    float64 // friction angle [rad]
	W      float64 // submerged weight per metre width
	U      float64 // excess pore pressure
	Alpha  float64 // basal slope of the arc at this slice [rad]
	Av, Ah float64 // vertical/horizontal seismic coefficients (fractions of g)
}

// residual evaluates f(F) = F - shapeFactor*sum(c1_k/(1+c2_k/F))/D.
func residual(slices []Slice, shapeFactor, F float64) float64 {
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

// JanbuFoS solves the Janbu implicit factor-of-safety equation for slices
// via a safeguarded Newton-bisection root finder on [janbuLo, janbuHi].
// Returns Invalid if the root is not bracketed.
func JanbuFoS(slices []Slice, shapeFactor float64) float64 {
	lo, hi := janbuLo, janbuHi
	flo := residual(slices, shapeFactor, lo)
	fhi := residual(slices, shapeFactor, hi)
	if math.IsNaN(flo) || math.IsNaN(fhi) || flo*fhi > 0 {
		return Invalid
	}

	x := 0.5 * (lo + hi)
	fx := residual(slices, shapeFactor, x)

	for i := 0; i < janbuMaxIter; i++ {
		if math.Abs(fx) < janbuTol {
			return x
		}

		// narrow the bracket
		if fx*flo < 0 {
			hi, fhi = x, fx
		} else {
			lo, flo = x, fx
		}

		// attempt a Newton step using a central-difference derivative
		h := janbuDeriv * math.Max(1, math.Abs(x))
		fPlus := residual(slices, shapeFactor, x+h)
		fMinus := residual(slices, shapeFactor, x-h)
		deriv := (fPlus - fMinus) / (2 * h)

		var next float64
		if deriv != 0 {
			next = x - fx/deriv
		}
		if deriv == 0 || next <= lo || next >= hi || math.IsNaN(next) {
			next = 0.5 * (lo + hi)
		}

		x = next
		fx = residual(slices, shapeFactor, x)
	}
	if math.Abs(fx) < janbuTol {
		return x
	}
	return Invalid
}
