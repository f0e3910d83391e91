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

// FloodRecord is one hydrograph record of the flood boundary condition.
type FloodRecord struct {
	DurationDays    float64
	ChannelWidth    float64
	ChannelDepth    float64
	Velocity        float64
	BedLoadFlux     float64 // kg/s
	SuspendedConc   []float64 // kg/m3 per grain class, in registry order
}

// ReadFlood parses a sequence of hydrograph records, one per line:
// duration, width, depth, velocity, bedload, conc_1, conc_2, ...
func ReadFlood(path string) ([]FloodRecord, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []FloodRecord
	for lineNo, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' || r == ' ' || r == '\t' })
		if len(fields) < 6 {
			return nil, chk.Err("config: flood record %d has %d fields, want at least 6", lineNo+1, len(fields))
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, chk.Err("config: flood record %d: bad numeric field %q", lineNo+1, f)
			}
			vals[i] = v
		}
		recs = append(recs, FloodRecord{
			DurationDays: vals[0], ChannelWidth: vals[1], ChannelDepth: vals[2],
			Velocity: vals[3], BedLoadFlux: vals[4], SuspendedConc: vals[5:],
		})
	}
	return recs, nil
}
