// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flexure

import "math"

// Kei0 evaluates the real Kelvin function of the second kind, order zero,
// kei_0(x), x >= 0. This is the 2-D plate-bending point-load Green's
// function's shape factor.
//
// No library in the retrieved pack (gosl, gonum, or otherwise) exposes
// Kelvin functions; this is a direct implementation of the classical
// series (Abramowitz & Stegun 9.9) for small/moderate argument and the
// asymptotic expansion (A&S 9.10) for large argument, switching where the
// series' factorial-squared denominators would otherwise lose precision
// against the true, exponentially decaying value.
func Kei0(x float64) float64 {
	if x <= 0 {
		return -math.Pi / 4 // kei_0(0) = -pi/4
	}
	if x < kelvinSeriesCutoff {
		return kei0Series(x)
	}
	return kei0Asymptotic(x)
}

// Ker0 evaluates the real Kelvin function of the first kind, order zero,
// ker_0(x), x >= 0. Provided alongside Kei0 as its companion function;
// none of the deflection routines in this package call it.
func Ker0(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}
	if x < kelvinSeriesCutoff {
		return ker0Series(x)
	}
	return ker0Asymptotic(x)
}

const kelvinSeriesCutoff = 6.0
const eulerGamma = 0.5772156649015329
const kelvinTerms = 30

// harmonic returns H(n) = sum_{m=1}^n 1/m, H(0) = 0.
func harmonic(n int) float64 {
	h := 0.0
	for m := 1; m <= n; m++ {
		h += 1.0 / float64(m)
	}
	return h
}

func ker0Series(x float64) float64 {
	b0 := berSeries(x)
	i0 := beiSeries(x)
	lg := math.Log(x/2) + eulerGamma
	sum := 0.0
	halfX2 := (x / 2) * (x / 2)
	term := 1.0 // (x/2)^(4k) / ((2k)!)^2, starting at k=1 handled in loop
	fact2k := 1.0
	for k := 1; k < kelvinTerms; k++ {
		fact2k = factorial(2 * k)
		term = math.Pow(halfX2, 2*float64(k)) / (fact2k * fact2k)
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		sum += sign * term * harmonic(2*k)
	}
	return -lg*b0 + math.Pi/4*i0 + sum
}

func kei0Series(x float64) float64 {
	b0 := berSeries(x)
	i0 := beiSeries(x)
	lg := math.Log(x/2) + eulerGamma
	sum := 0.0
	halfX2 := (x / 2) * (x / 2)
	for k := 0; k < kelvinTerms; k++ {
		fact := factorial(2*k + 1)
		term := math.Pow(halfX2, 2*float64(k)+1) / (fact * fact)
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		sum += sign * term * harmonic(2*k+1)
	}
	return -lg*i0 - math.Pi/4*b0 + sum
}

// berSeries and beiSeries are direct, unoptimised evaluations of ber_0 and
// bei_0 via their defining series (A&S 9.9.1/9.9.2), used both as the
// public building blocks and inside ker0Series/kei0Series.
func berSeries(x float64) float64 {
	halfX2 := (x / 2) * (x / 2)
	sum := 0.0
	for k := 0; k < kelvinTerms; k++ {
		fact := factorial(2 * k)
		term := math.Pow(halfX2, 2*float64(k)) / (fact * fact)
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		sum += sign * term
	}
	return sum
}

func beiSeries(x float64) float64 {
	halfX2 := (x / 2) * (x / 2)
	sum := 0.0
	for k := 0; k < kelvinTerms; k++ {
		fact := factorial(2*k + 1)
		term := math.Pow(halfX2, 2*float64(k)+1) / (fact * fact)
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		sum += sign * term
	}
	return sum
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func ker0Asymptotic(x float64) float64 {
	amp := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x/math.Sqrt2)
	return amp * math.Cos(x/math.Sqrt2+math.Pi/8)
}

func kei0Asymptotic(x float64) float64 {
	amp := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x/math.Sqrt2)
	return -amp * math.Sin(x/math.Sqrt2+math.Pi/8)
}
