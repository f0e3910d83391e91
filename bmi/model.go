// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmi

import (
	"math/rand"
	"os"

	"github.com/mcflugen/sedflux-sub005/avulsion"
	"github.com/mcflugen/sedflux-sub005/config"
	"github.com/mcflugen/sedflux-sub005/cube"
	"github.com/mcflugen/sedflux-sub005/flexure"
	"github.com/mcflugen/sedflux-sub005/sedclass"
)

const daysPerYear = 365.25

// Model is the BMI handle: one struct per run, owning the cube, the
// river-mouth tree (nil when no avulsion section is configured), and the
// flexural-isostasy parameters used to derive the lithosphere-increment
// output variable.
type Model struct {
	Cube *cube.Cube
	Reg  *sedclass.Registry

	Avulsion    *avulsion.Model
	rng         *rand.Rand
	bedLoadFlux map[avulsion.CellIdx]float64 // surface_bed_load_sediment__mass_flow_rate, from the last Update

	Flex       flexure.Params
	flexGrid   flexure.Grid
	increment  [][]float64 // last-computed lithosphere__increment_of_elevation

	TimeDays     float64
	TimeStepDays float64

	inflowDischarge float64 // channel_inflow_end_water__discharge
	inflowBedLoad   float64 // channel_inflow_end_bed_load_sediment__mass_flow_rate

	finalized bool
}

// Initialize reads configPath (a KEY : VALUE file, see package config) and
// builds a Model. BadArgument or UnableToOpen may be returned, wrapped as
// *Error so the caller can recover the BMI return code.
func Initialize(configPath string) (*Model, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, errf(UnableToOpen, "cannot open config %q: %v", configPath, err)
	}
	kv, err := config.ReadKV(configPath)
	if err != nil {
		return nil, errf(BadArgument, "%v", err)
	}
	cubeCfg, err := config.ReadCubeConfig(kv)
	if err != nil {
		return nil, errf(BadArgument, "%v", err)
	}
	subsideCfg, err := config.ReadSubsideConfig(kv)
	if err != nil {
		return nil, errf(BadArgument, "%v", err)
	}

	nx := int(kv.FloatOr("nx", 10))
	ny := int(kv.FloatOr("ny", 10))
	if nx <= 0 || ny <= 0 {
		return nil, errf(BadArgument, "nx,ny must be positive, got (%d,%d)", nx, ny)
	}
	baseElevation := kv.FloatOr("base elevation", -50)
	seaLevel := kv.FloatOr("sea level", 0)

	reg := sedclass.NewRegistry([]sedclass.Class{
		{Name: "sand", GrainDiam: 200e-6, GrainDensity: 2650, BulkDensity: 1900, MinVoidRatio: 0.5},
		{Name: "mud", GrainDiam: 10e-6, GrainDensity: 2650, BulkDensity: 1300, MinVoidRatio: 1.0},
	})

	cu := cube.New(nx, ny, cubeCfg.XResolution, cubeCfg.YResolution, cubeCfg.VerticalResolution, baseElevation, seaLevel, reg)

	m := &Model{
		Cube: cu,
		Reg:  reg,
		rng:  rand.New(rand.NewSource(1)),
		Flex: flexure.Params{
			ElasticThickness: subsideCfg.ElasticThickness,
			YoungsModulus:    subsideCfg.YoungsModulus,
			MantleDensity:    3300,
			Gravity:          9.81,
			Mode:             flexure.Mode2D,
		},
		flexGrid: flexure.Grid{
			Nx: nx, Ny: ny,
			Dx: cubeCfg.XResolution, Dy: cubeCfg.YResolution,
		},
		TimeStepDays: kv.FloatOr("time step", daysPerYear),
	}

	if kv.Has("hinge i") {
		hi := int(kv.FloatOr("hinge i", 0))
		hj := int(kv.FloatOr("hinge j", 0))
		theta := kv.FloatOr("river mouth angle", 0)
		thetaMin := kv.FloatOr("minimum river angle", theta-1)
		thetaMax := kv.FloatOr("maximum river angle", theta+1)
		sigma := kv.FloatOr("standard deviation of angle", 0.1)
		width := kv.FloatOr("channel width", 100)
		m.Avulsion = avulsion.NewModel(hi, hj, theta, thetaMin, thetaMax, sigma, width)
		m.Avulsion.WaterExponent = kv.FloatOr("avulsion_model__water_discharge_exponent", 1)
		m.Avulsion.BedLoadExponent = kv.FloatOr("avulsion_model__sediment_bed_load_exponent", 1)
		m.Avulsion.Dx, m.Avulsion.Dy = cubeCfg.XResolution, cubeCfg.YResolution
	}

	m.inflowDischarge = kv.FloatOr("channel_inflow_end_water__discharge", 0)
	m.inflowBedLoad = kv.FloatOr("channel_inflow_end_bed_load_sediment__mass_flow_rate", 0)

	return m, nil
}

// Update advances the model by one internal time step.
func (m *Model) Update() error {
	if m.finalized {
		return errf(BadArgument, "update called after finalize")
	}
	if m.Avulsion != nil {
		cq := (*cubeQueryAdapter)(m)
		res := avulsion.Step(m.Avulsion, cq, m.rng, 1)
		if m.Avulsion.QTotal == 0 {
			m.Avulsion.QTotal = m.inflowDischarge
		}
		if m.Avulsion.QbTotal == 0 {
			m.Avulsion.QbTotal = m.inflowBedLoad
		}
		avulsion.Partition(m.Avulsion.Tree.Leaves(), m.Avulsion.QTotal, m.Avulsion.QbTotal, m.Avulsion.WaterExponent, m.Avulsion.BedLoadExponent)
		m.bedLoadFlux = res.BedLoadFlux
	}

	loads := make([]flexure.GriddedLoad, 0, m.Cube.Nx*m.Cube.Ny)
	for j := 0; j < m.Cube.Ny; j++ {
		for i := 0; i < m.Cube.Nx; i++ {
			loads = append(loads, flexure.GriddedLoad{I: i, J: j, Load: m.Cube.Load(i, j)})
		}
	}
	inc, err := flexure.DeflectGriddedLoad2D(m.Flex, loads, m.flexGrid, 4)
	if err != nil {
		return errf(Unknown, "flexure solve failed: %v", err)
	}
	m.increment = inc

	m.TimeDays += m.TimeStepDays
	return nil
}

// UpdateUntil calls Update repeatedly until TimeDays >= tDays.
func (m *Model) UpdateUntil(tDays float64) error {
	if tDays < m.TimeDays {
		return errf(BadArgument, "update_until(%v) is before current time %v", tDays, m.TimeDays)
	}
	for m.TimeDays < tDays {
		if err := m.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Finalize releases nothing (the Cube/Avulsion state is plain Go memory)
// but marks the handle as no longer updatable.
func (m *Model) Finalize() error {
	m.finalized = true
	return nil
}

// cubeQueryAdapter implements avulsion.CubeQuery over *Model's cube.
type cubeQueryAdapter Model

func (a *cubeQueryAdapter) InBounds(i, j int) bool    { return a.Cube.InBounds(i, j) }
func (a *cubeQueryAdapter) WaterDepth(i, j int) float64 { return a.Cube.WaterDepth(i, j) }
