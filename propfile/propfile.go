// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package propfile reads and writes the binary property-file format: an
// ASCII key:value preamble terminated by "--- data ---", followed by raw
// doubles in little-endian byte order.
package propfile

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const dataMarker = "--- data ---"

// RockValue marks a sub-basement cell; WaterValue marks an out-of-sediment
// (water) cell, per spec.md's +-FLT_MAX convention.
const RockValue = math.MaxFloat32
const WaterValue = -math.MaxFloat32

// File is a decoded property file.
type File struct {
	Dx, Dy, Dz          float64
	NumRows             int
	NumXColumns         int
	NumYColumns         int
	RockValue           float64
	WaterValue          float64
	Data                []float64 // row-major, len == NumRows*NumXColumns*NumYColumns in the general case
}

// Write serialises f to path: the preamble lines, "--- data ---", then the
// raw doubles.
func Write(path string, f File) error {
	var buf bytes.Buffer
	io.Ff(&buf, "dx: %v\n", f.Dx)
	io.Ff(&buf, "dy: %v\n", f.Dy)
	io.Ff(&buf, "dz: %v\n", f.Dz)
	io.Ff(&buf, "Number of rows: %d\n", f.NumRows)
	io.Ff(&buf, "Number of x-columns: %d\n", f.NumXColumns)
	io.Ff(&buf, "Number of y-columns: %d\n", f.NumYColumns)
	io.Ff(&buf, "Rock value: %v\n", f.RockValue)
	io.Ff(&buf, "Water value: %v\n", f.WaterValue)
	io.Ff(&buf, "Byte order: little\n")
	io.Ff(&buf, "%s\n", dataMarker)
	for _, v := range f.Data {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return chk.Err("propfile: failed writing data: %v", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Read parses a property file written by Write.
func Read(path string) (File, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	idx := bytes.Index(b, []byte(dataMarker))
	if idx < 0 {
		return File{}, chk.Err("propfile: missing %q marker", dataMarker)
	}
	preamble := string(b[:idx])
	body := b[idx+len(dataMarker):]
	body = bytes.TrimLeft(body, "\r\n")

	f := File{}
	for _, line := range strings.Split(preamble, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		i := strings.Index(line, ":")
		if i < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:i]))
		val := strings.TrimSpace(line[i+1:])
		switch key {
		case "dx":
			f.Dx, _ = strconv.ParseFloat(val, 64)
		case "dy":
			f.Dy, _ = strconv.ParseFloat(val, 64)
		case "dz":
			f.Dz, _ = strconv.ParseFloat(val, 64)
		case "number of rows":
			f.NumRows, _ = strconv.Atoi(val)
		case "number of x-columns":
			f.NumXColumns, _ = strconv.Atoi(val)
		case "number of y-columns":
			f.NumYColumns, _ = strconv.Atoi(val)
		case "rock value":
			f.RockValue, _ = strconv.ParseFloat(val, 64)
		case "water value":
			f.WaterValue, _ = strconv.ParseFloat(val, 64)
		}
	}

	n := len(body) / 8
	f.Data = make([]float64, n)
	r := bytes.NewReader(body)
	if err := binary.Read(r, binary.LittleEndian, &f.Data); err != nil {
		return File{}, chk.Err("propfile: failed reading data: %v", err)
	}
	return f, nil
}
