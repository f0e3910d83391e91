// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// Slab carries the per-slice inputs a pore-pressure model needs beyond what
// it stores itself: the submerged weight per unit width, the slice width,
// the deposition rate and the local consolidation coefficient.
type Slab struct {
	SubmergedWeight float64 // W'
	Width           float64 // b
	DepositionRate  float64 // x-dot [m/s]
	ConsolidCoef    float64 // c_v
	DeltaTdep       float64 // deposition timestep [s]
	LocalExcess     float64 // per-cell excess pore pressure read from the column
}

// PorePressure computes the excess pore pressure u used by the Janbu slice
// equation. Two implementations are registered: "local" (default) and
// "global" (Sangrey's polynomial).
type PorePressure interface {
	Init(prms dbf.Params) error
	GetPrms(example bool) dbf.Params
	Excess(s Slab) float64
}

// New allocates a pore-pressure model by name.
func New(name string) (PorePressure, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("failure: pore-pressure model %q is not available", name)
	}
	return allocator(), nil
}

var allocators = map[string]func() PorePressure{
	"local":  func() PorePressure { return new(LocalModel) },
	"global": func() PorePressure { return new(GlobalModel) },
}

// LocalModel reads per-cell excess pore pressure directly off the column,
// ignoring consolidation history.
type LocalModel struct {
	Cap float64 // fraction of W/b above which u is capped; 0 disables the cap
}

func (o *LocalModel) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "cap":
			o.Cap = p.V
		}
	}
	return nil
}

func (o *LocalModel) GetPrms(example bool) dbf.Params {
	return dbf.Params{&fun.P{N: "cap", V: 0.9}}
}

func (o *LocalModel) Excess(s Slab) float64 {
	u := s.LocalExcess
	if o.Cap > 0 {
		max := o.Cap * s.SubmergedWeight / s.Width
		if u > max {
			u = max
		}
	}
	return u
}

// GlobalModel implements Sangrey's polynomial excess pore-pressure model:
// u = W'/m(t), m(t) = 6.4(1 - t/16)^17 + 1 for t <= 16, else 1,
// t = xdot^2 * deltaTdep / cv. Enforces u <= 0.9*W/b.
type GlobalModel struct{}

func (o *GlobalModel) Init(prms dbf.Params) error { return nil }

func (o *GlobalModel) GetPrms(example bool) dbf.Params { return dbf.Params{} }

func (o *GlobalModel) Excess(s Slab) float64 {
	if s.ConsolidCoef <= 0 {
		return 0
	}
	t := s.DepositionRate * s.DepositionRate * s.DeltaTdep / s.ConsolidCoef
	m := 1.0
	if t <= 16 {
		m = 6.4*math.Pow(1-t/16, 17) + 1
	}
	u := s.SubmergedWeight / m
	cap := 0.9 * s.SubmergedWeight / s.Width
	if u > cap {
		u = cap
	}
	return u
}
