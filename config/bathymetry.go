// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// BathymetryPoint is one (position, depth) sample.
type BathymetryPoint struct {
	Position float64 // cross-shore position [m]
	Depth    float64 // [m], positive below sea level per the source convention
}

// ReadBathymetry parses a 2-column delimited file (';' or ',') of
// (position, depth) pairs. Positions must be strictly increasing and at
// least one must be <= 0.
func ReadBathymetry(path string) ([]BathymetryPoint, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pts []BathymetryPoint
	hasNonPositive := false
	for lineNo, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ';' || r == ',' })
		if len(fields) != 2 {
			return nil, chk.Err("config: bathymetry line %d has %d fields, want 2: %q", lineNo+1, len(fields), line)
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, chk.Err("config: bathymetry line %d: bad position %q", lineNo+1, fields[0])
		}
		depth, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, chk.Err("config: bathymetry line %d: bad depth %q", lineNo+1, fields[1])
		}
		if len(pts) > 0 && pos <= pts[len(pts)-1].Position {
			return nil, chk.Err("config: bathymetry positions must be strictly increasing at line %d", lineNo+1)
		}
		if pos <= 0 {
			hasNonPositive = true
		}
		pts = append(pts, BathymetryPoint{Position: pos, Depth: depth})
	}
	if !hasNonPositive {
		return nil, chk.Err("config: bathymetry must include at least one position <= 0")
	}
	return pts, nil
}
