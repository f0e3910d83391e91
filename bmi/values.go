// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmi

import "github.com/mcflugen/sedflux-sub005/avulsion"

// GetValue copies name's current value into a freshly allocated slice,
// shaped per GridShape(VarGrid(name)).
func (m *Model) GetValue(name string) ([]float64, error) {
	if _, ok := varRegistry[name]; !ok {
		return nil, errf(BadName, "unrecognised variable %q", name)
	}
	switch name {
	case "avulsion_model__random_walk_variance_constant":
		return []float64{m.avulsionSigma()}, nil
	case "avulsion_model__sediment_bed_load_exponent":
		return []float64{m.avulsionField(func(a *avulsion.Model) float64 { return a.BedLoadExponent })}, nil
	case "avulsion_model__water_discharge_exponent":
		return []float64{m.avulsionField(func(a *avulsion.Model) float64 { return a.WaterExponent })}, nil
	case "channel_inflow_end_water__discharge":
		return []float64{m.inflowDischarge}, nil
	case "channel_inflow_end_bed_load_sediment__mass_flow_rate":
		return []float64{m.inflowBedLoad}, nil
	case "channel_outflow_end_bed_load_sediment__mass_flow_rate":
		return m.leafValues(func(l *avulsion.LeafState) float64 { return l.Qb }), nil
	case "channel_outflow_end_water__discharge":
		return m.leafValues(func(l *avulsion.LeafState) float64 { return l.Q }), nil
	case "channel_outflow_end__location_model_x_component":
		return m.leafValues(func(l *avulsion.LeafState) float64 { return float64(l.MouthI) * m.Cube.Dx }), nil
	case "channel_outflow_end__location_model_y_component":
		return m.leafValues(func(l *avulsion.LeafState) float64 { return float64(l.MouthJ) * m.Cube.Dy }), nil
	case "channel_inflow_end_to_channel_outflow_end__angle":
		return m.leafValues(func(l *avulsion.LeafState) float64 { return l.Theta }), nil
	case "surface__elevation":
		return m.grid2D(func(i, j int) float64 { return m.Cube.TopHeight(i, j) }), nil
	case "surface_bed_load_sediment__mass_flow_rate":
		return m.grid2D(func(i, j int) float64 {
			return m.bedLoadFlux[avulsion.CellIdx{I: i, J: j}]
		}), nil
	case "earth_material_load__pressure":
		return m.grid2D(func(i, j int) float64 { return m.Cube.Load(i, j) }), nil
	case "lithosphere__increment_of_elevation":
		return m.grid2D(func(i, j int) float64 {
			if m.increment == nil {
				return 0
			}
			return m.increment[j][i]
		}), nil
	}
	return nil, errf(Unknown, "variable %q recognised but not wired", name)
}

// GetValuePtr returns the same data as GetValue. Go has no C-style aliased
// pointer semantics, so this is GetValue under a second name, matching
// the read side of the BMI contract; callers that need to mutate model
// state use SetValue instead.
func (m *Model) GetValuePtr(name string) ([]float64, error) {
	return m.GetValue(name)
}

// SetValue overwrites name's current value from buf, which must match
// GridSize(VarGrid(name)).
func (m *Model) SetValue(name string, buf []float64) error {
	spec, ok := varRegistry[name]
	if !ok {
		return errf(BadName, "unrecognised variable %q", name)
	}
	size, err := m.GridSize(spec.GridID)
	if err != nil {
		return err
	}
	if len(buf) != size {
		return errf(BadArgument, "set_value(%q): got %d values, want %d", name, len(buf), size)
	}
	switch name {
	case "avulsion_model__random_walk_variance_constant":
		m.setAvulsionSigma(buf[0])
	case "avulsion_model__sediment_bed_load_exponent":
		if m.Avulsion != nil {
			m.Avulsion.BedLoadExponent = buf[0]
		}
	case "avulsion_model__water_discharge_exponent":
		if m.Avulsion != nil {
			m.Avulsion.WaterExponent = buf[0]
		}
	case "channel_inflow_end_water__discharge":
		m.inflowDischarge = buf[0]
	case "channel_inflow_end_bed_load_sediment__mass_flow_rate":
		m.inflowBedLoad = buf[0]
	default:
		return errf(BadArgument, "variable %q is read-only", name)
	}
	return nil
}

func (m *Model) avulsionSigma() float64 {
	if m.Avulsion == nil || len(m.Avulsion.Tree.Leaves()) == 0 {
		return 0
	}
	return m.Avulsion.Tree.Leaves()[0].Sigma
}

func (m *Model) setAvulsionSigma(v float64) {
	if m.Avulsion == nil {
		return
	}
	for _, l := range m.Avulsion.Tree.Leaves() {
		l.Sigma = v
	}
}

func (m *Model) avulsionField(f func(*avulsion.Model) float64) float64 {
	if m.Avulsion == nil {
		return 0
	}
	return f(m.Avulsion)
}

func (m *Model) leafValues(f func(*avulsion.LeafState) float64) []float64 {
	n := m.nMouths()
	out := make([]float64, n)
	if m.Avulsion == nil {
		return out
	}
	for i, l := range m.Avulsion.Tree.Leaves() {
		out[i] = f(l)
	}
	return out
}

func (m *Model) grid2D(f func(i, j int) float64) []float64 {
	out := make([]float64, m.Cube.Nx*m.Cube.Ny)
	for j := 0; j < m.Cube.Ny; j++ {
		for i := 0; i < m.Cube.Nx; i++ {
			out[j*m.Cube.Nx+i] = f(i, j)
		}
	}
	return out
}
