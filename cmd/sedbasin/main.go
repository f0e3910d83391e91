// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sedbasin drives a basin-simulation run to a requested end time,
// printing a brief summary of the resulting surface, through the same
// BMI-like operations an external orchestrator would call.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mcflugen/sedflux-sub005/bmi"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nsedbasin -- coupled sedimentary-basin simulation\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please provide a config file. Ex.: sedbasin run.cfg")
	}
	configPath := flag.Arg(0)

	endDays := 3650.0
	if len(flag.Args()) > 1 {
		endDays = io.Atof(flag.Arg(1))
	}

	m, err := bmi.Initialize(configPath)
	if err != nil {
		chk.Panic("initialize failed: %v", err)
	}

	if err := m.UpdateUntil(endDays); err != nil {
		chk.Panic("update_until failed: %v", err)
	}

	elev, err := m.GetValue("surface__elevation")
	if err != nil {
		chk.Panic("get_value failed: %v", err)
	}

	io.Pf("ran to t = %v days over a %dx%d grid\n", m.TimeDays, m.Cube.Nx, m.Cube.Ny)
	minE, maxE := elev[0], elev[0]
	for _, v := range elev {
		if v < minE {
			minE = v
		}
		if v > maxE {
			maxE = v
		}
	}
	io.Pf("surface elevation range: [%v, %v]\n", minE, maxE)

	if err := m.Finalize(); err != nil {
		chk.Panic("finalize failed: %v", err)
	}
}
