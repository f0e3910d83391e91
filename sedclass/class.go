// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sedclass implements the process-wide grain-size class registry
package sedclass

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// Class holds the physical constants of one grain-size class.
//
// Class 0 is conventionally bed-load; classes >= 1 are suspended load.
type Class struct {
	Name            string  // e.g. "sand", "silt", "clay"
	GrainDiam       float64 // grain diameter [m]
	GrainDensity    float64 // grain density [kg/m3], typically ~2650
	BulkDensity     float64 // saturated bulk density [kg/m3]
	MinVoidRatio    float64 // minimum void ratio
	PlasticIndex    float64 // plastic index
	Diffusion       float64 // diffusion coefficient
	RemovalRate     float64 // lambda_n: suspended-removal-rate constant [1/day]
	Consolidation   float64 // consolidation coefficient
	CompactionCoeff float64 // compaction coefficient
}

// IsBedload reports whether this class is the bed-load class (index 0).
func (c Class) IsBedload(index int) bool { return index == 0 }

// Registry is the ordered, immutable-after-construction set of grain classes for one run.
type Registry struct {
	classes []Class
}

// NewRegistry builds a registry from the ordered class list. G = len(classes).
func NewRegistry(classes []Class) *Registry {
	r := &Registry{classes: append([]Class(nil), classes...)}
	return r
}

// NewRegistryFromPrms builds a registry from parallel per-grain parameter
// vectors, the shape produced by a KEY : VALUE config reader (see config
// package): one dbf.Params per class, keyed the way inp.ReadMat keys a
// single material's parameters.
func NewRegistryFromPrms(perClass []dbf.Params) (*Registry, error) {
	classes := make([]Class, len(perClass))
	for i, prms := range perClass {
		c := Class{GrainDensity: 2650, MinVoidRatio: 0}
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "name":
				// parameters carry numeric V only; names come from config labels
			case "grain diameter", "d":
				c.GrainDiam = p.V
			case "grain density", "rho_gr":
				c.GrainDensity = p.V
			case "bulk density", "rho_sed":
				c.BulkDensity = p.V
			case "min void ratio":
				c.MinVoidRatio = p.V
			case "plastic index":
				c.PlasticIndex = p.V
			case "diffusion coefficient":
				c.Diffusion = p.V
			case "removal rate constant", "lambda":
				c.RemovalRate = p.V
			case "consolidation coefficient":
				c.Consolidation = p.V
			case "compaction coefficient":
				c.CompactionCoeff = p.V
			default:
				return nil, chk.Err("sedclass: parameter named %q is incorrect\n", p.N)
			}
		}
		classes[i] = c
	}
	return NewRegistry(classes), nil
}

// N returns the number of registered grain classes (G).
func (r *Registry) N() int { return len(r.classes) }

// At returns the n-th class. Panics if n is out of [0,G) -- a registry
// lookup with a bad index is a programming error, not a runtime one.
func (r *Registry) At(n int) Class {
	if n < 0 || n >= len(r.classes) {
		chk.Panic("sedclass: class index %d out of range [0,%d)", n, len(r.classes))
	}
	return r.classes[n]
}

// All returns the full ordered class slice (read-only by convention).
func (r *Registry) All() []Class { return r.classes }

// GetPrms returns an example parameter vector for one class, matching the
// GetPrms(example bool) idiom every mdl/* model in the teacher exposes.
func (c Class) GetPrms(example bool) dbf.Params {
	return []*fun.P{
		{N: "grain diameter", V: c.GrainDiam},
		{N: "grain density", V: c.GrainDensity},
		{N: "bulk density", V: c.BulkDensity},
		{N: "min void ratio", V: c.MinVoidRatio},
		{N: "plastic index", V: c.PlasticIndex},
		{N: "diffusion coefficient", V: c.Diffusion},
		{N: "removal rate constant", V: c.RemovalRate},
		{N: "consolidation coefficient", V: c.Consolidation},
		{N: "compaction coefficient", V: c.CompactionCoeff},
	}
}
