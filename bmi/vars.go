// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmi

// GridKind distinguishes the three shapes a recognised variable can take.
type GridKind int

const (
	GridScalar GridKind = iota // a single double
	GridVector                 // one double per river mouth
	Grid2D                     // one double per cube column
)

// Recognised grid ids. Variables sharing a GridKind share a grid id, since
// get_grid_shape/size/spacing/origin only depend on the grid, not the name.
const (
	gridIDScalar = 0
	gridIDVector = 1
	gridID2D     = 2
)

// varSpec describes one recognised BMI variable.
type varSpec struct {
	Units  string
	Kind   GridKind
	GridID int
}

// varRegistry is the fixed, closed set of recognised variable names.
var varRegistry = map[string]varSpec{
	"avulsion_model__random_walk_variance_constant":              {"rad", GridScalar, gridIDScalar},
	"avulsion_model__sediment_bed_load_exponent":                 {"-", GridScalar, gridIDScalar},
	"avulsion_model__water_discharge_exponent":                   {"-", GridScalar, gridIDScalar},
	"channel_inflow_end_water__discharge":                        {"m3 s-1", GridScalar, gridIDScalar},
	"channel_inflow_end_bed_load_sediment__mass_flow_rate":        {"kg s-1", GridScalar, gridIDScalar},
	"channel_outflow_end_bed_load_sediment__mass_flow_rate":       {"kg s-1", GridVector, gridIDVector},
	"channel_outflow_end_water__discharge":                       {"m3 s-1", GridVector, gridIDVector},
	"channel_outflow_end__location_model_x_component":             {"m", GridVector, gridIDVector},
	"channel_outflow_end__location_model_y_component":             {"m", GridVector, gridIDVector},
	"channel_inflow_end_to_channel_outflow_end__angle":            {"rad", GridVector, gridIDVector},
	"surface__elevation":                                         {"m", Grid2D, gridID2D},
	"surface_bed_load_sediment__mass_flow_rate":                  {"kg s-1", Grid2D, gridID2D},
	"earth_material_load__pressure":                              {"Pa", Grid2D, gridID2D},
	"lithosphere__increment_of_elevation":                        {"m", Grid2D, gridID2D},
}

// VarType is "double" for every recognised variable.
func VarType(name string) (string, error) {
	if _, ok := varRegistry[name]; !ok {
		return "", errf(BadName, "unrecognised variable %q", name)
	}
	return "double", nil
}

// VarUnits returns the recognised unit string for name.
func VarUnits(name string) (string, error) {
	v, ok := varRegistry[name]
	if !ok {
		return "", errf(BadName, "unrecognised variable %q", name)
	}
	return v.Units, nil
}

// VarGrid returns the grid id backing name.
func VarGrid(name string) (int, error) {
	v, ok := varRegistry[name]
	if !ok {
		return 0, errf(BadName, "unrecognised variable %q", name)
	}
	return v.GridID, nil
}
