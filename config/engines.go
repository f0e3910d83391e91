// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// CubeConfig is the Cube-init section of a KEY : VALUE file.
type CubeConfig struct {
	MarginName         string
	VerticalResolution float64
	XResolution        float64
	YResolution        float64
	BathymetryFile     string
	SedimentFile       string
}

// ReadCubeConfig reads the cube-init keys.
func ReadCubeConfig(kv *KV) (CubeConfig, error) {
	var c CubeConfig
	var err error
	if c.MarginName, err = kv.String("margin name"); err != nil {
		return c, err
	}
	if c.VerticalResolution, err = kv.Float("vertical resolution"); err != nil {
		return c, err
	}
	if c.XResolution, err = kv.Float("x resolution"); err != nil {
		return c, err
	}
	if c.YResolution, err = kv.Float("y resolution"); err != nil {
		return c, err
	}
	c.BathymetryFile, _ = kv.String("bathymetry file")
	c.SedimentFile, _ = kv.String("sediment file")
	return c, nil
}

// TurbidityConfig is the turbidity-current section.
type TurbidityConfig struct {
	Sua, Sub                   float64
	Ea, Eb                     float64
	DragCoefficient            float64
	InternalFrictionAngleDeg   float64
	LengthOfBasinKm            float64
	BinSpacing                 float64
	RemovalRateConstant        []float64
	EquivalentGrainDiameterUm  []float64
	ComponentGrainDiameterUm   []float64
	BulkDensity                []float64
	GrainDensity               []float64
	FractionInRiver            []float64
	FractionInFlow             []float64
}

// ReadTurbidityConfig reads the turbidity-current keys.
func ReadTurbidityConfig(kv *KV) (TurbidityConfig, error) {
	var c TurbidityConfig
	var err error
	if c.Sua, err = kv.Float("sua"); err != nil {
		return c, err
	}
	if c.Sub, err = kv.Float("sub"); err != nil {
		return c, err
	}
	if c.Ea, err = kv.Float("entrainment constant, ea"); err != nil {
		return c, err
	}
	if c.Eb, err = kv.Float("entrainment constant, eb"); err != nil {
		return c, err
	}
	c.DragCoefficient = kv.FloatOr("drag coefficient", 0.004)
	c.InternalFrictionAngleDeg = kv.FloatOr("internal friction angle", 30)
	c.LengthOfBasinKm = kv.FloatOr("length of basin", 0)
	c.BinSpacing = kv.FloatOr("bin spacing", 100)
	c.RemovalRateConstant, _ = kv.FloatArray("removal rate constant")
	c.EquivalentGrainDiameterUm, _ = kv.FloatArray("equivalent grain diameter")
	c.ComponentGrainDiameterUm, _ = kv.FloatArray("component grain diameter")
	c.BulkDensity, _ = kv.FloatArray("bulk density")
	c.GrainDensity, _ = kv.FloatArray("grain density")
	c.FractionInRiver, _ = kv.FloatArray("fraction of each grain in river")
	c.FractionInFlow, _ = kv.FloatArray("fraction of flow occupied by each grain")
	return c, nil
}

// FailureConfig is the failure-engine section.
type FailureConfig struct {
	ConsolidationCoef          float64
	CohesionPa                 float64
	FrictionAngleDeg           float64
	ClayFractionForDebrisFlow  float64 // percent
}

// ReadFailureConfig reads the failure keys.
func ReadFailureConfig(kv *KV) (FailureConfig, error) {
	var c FailureConfig
	var err error
	if c.ConsolidationCoef, err = kv.Float("coefficient of consolidation"); err != nil {
		return c, err
	}
	if c.CohesionPa, err = kv.Float("cohesion of sediments"); err != nil {
		return c, err
	}
	if c.FrictionAngleDeg, err = kv.Float("apparent coulomb friction angle"); err != nil {
		return c, err
	}
	c.ClayFractionForDebrisFlow = kv.FloatOr("fraction of clay for debris flow", 40)
	return c, nil
}

// SubsideConfig is the flexural-isostasy section.
type SubsideConfig struct {
	ElasticThickness float64
	YoungsModulus    float64
	RelaxationTimeYr float64
}

// ReadSubsideConfig reads the subside keys.
func ReadSubsideConfig(kv *KV) (SubsideConfig, error) {
	var c SubsideConfig
	var err error
	if c.ElasticThickness, err = kv.Float("effective elastic thickness"); err != nil {
		return c, err
	}
	if c.YoungsModulus, err = kv.Float("youngs modulus"); err != nil {
		return c, err
	}
	c.RelaxationTimeYr = kv.FloatOr("relaxation time", 0)
	return c, nil
}
