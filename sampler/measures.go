// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampler

import (
	"github.com/mcflugen/sedflux-sub005/sedclass"
	"github.com/mcflugen/sedflux-sub005/strata"
)

// porosity returns the mass-weighted average porosity n = e/(1+e) over the
// cell's grain classes, using each class's minimum void ratio.
func porosity(c *strata.Cell, reg *sedclass.Registry) float64 {
	n := 0.0
	for i, f := range c.Fractions {
		e := reg.At(i).MinVoidRatio
		n += f * e / (1 + e)
	}
	return n
}

// permeability estimates hydraulic conductivity via the Kozeny-Carman
// relation k = d^2 e^3 / (180 (1+e)^2), with d and e the mass-weighted
// mean grain diameter and void ratio.
func permeability(c *strata.Cell, reg *sedclass.Registry) float64 {
	d := meanGrainDiam(c, reg)
	e := 0.0
	for i, f := range c.Fractions {
		e += f * reg.At(i).MinVoidRatio
	}
	return d * d * e * e * e / (180 * (1 + e) * (1 + e))
}

func meanGrainDiam(c *strata.Cell, reg *sedclass.Registry) float64 {
	d := 0.0
	for i, f := range c.Fractions {
		d += f * reg.At(i).GrainDiam
	}
	return d
}

// grainClassFraction sums the mass fraction of classes whose grain
// diameter falls in the requested texture's range.
func grainClassFraction(c *strata.Cell, reg *sedclass.Registry, kind Kind) float64 {
	sum := 0.0
	for i, f := range c.Fractions {
		d := reg.At(i).GrainDiam
		switch kind {
		case SandFraction:
			if d >= sandMin {
				sum += f
			}
		case SiltFraction:
			if d >= siltMin && d < sandMin {
				sum += f
			}
		case ClayFraction:
			if d < siltMin {
				sum += f
			}
		case MudFraction:
			if d < sandMin {
				sum += f
			}
		}
	}
	return sum
}
