// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sedclass

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

func TestRegistry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01")

	reg := NewRegistry([]Class{
		{Name: "bedload", GrainDiam: 500e-6, GrainDensity: 2650, BulkDensity: 1600, RemovalRate: 0},
		{Name: "silt", GrainDiam: 20e-6, GrainDensity: 2650, BulkDensity: 1400, RemovalRate: 1.0},
	})

	if reg.N() != 2 {
		tst.Errorf("N failed: got %d\n", reg.N())
		return
	}
	chk.Float64(tst, "class[0].GrainDensity", 1e-15, reg.At(0).GrainDensity, 2650)
	if !reg.At(0).IsBedload(0) {
		tst.Errorf("class 0 should be bedload\n")
	}
	if reg.At(1).IsBedload(1) {
		tst.Errorf("class 1 should not be bedload\n")
	}
}

func TestRegistryFromPrms01(tst *testing.T) {

	chk.PrintTitle("registryFromPrms01")

	perClass := []dbf.Params{
		{
			&fun.P{N: "grain diameter", V: 500e-6},
			&fun.P{N: "grain density", V: 2650},
			&fun.P{N: "bulk density", V: 1600},
			&fun.P{N: "removal rate constant", V: 0},
		},
	}
	reg, err := NewRegistryFromPrms(perClass)
	if err != nil {
		tst.Errorf("NewRegistryFromPrms failed: %v\n", err)
		return
	}
	chk.Float64(tst, "diam", 1e-15, reg.At(0).GrainDiam, 500e-6)

	_, err = NewRegistryFromPrms([]dbf.Params{{&fun.P{N: "bogus", V: 1}}})
	if err == nil {
		tst.Errorf("expected error for bogus parameter name\n")
	}
}
