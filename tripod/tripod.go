// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tripod reads and writes the binary tripod-file format: an ASCII
// key:value preamble, then a sequence of records, each one time (years)
// followed by n (x,y) coordinate pairs followed by n measured values.
package tripod

import (
	"bytes"
	"encoding/binary"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const dataMarker = "--- data ---"

// Point is one probe location.
type Point struct{ X, Y float64 }

// Record is one time-sample of every probe's measurement.
type Record struct {
	TimeYears float64
	Values    []float64 // parallel to the File's Points
}

// File is a decoded tripod file.
type File struct {
	Label   string
	Points  []Point
	Records []Record
}

// Write serialises f to path.
func Write(path string, f File) error {
	var buf bytes.Buffer
	io.Ff(&buf, "label: %s\n", f.Label)
	io.Ff(&buf, "n_measurements: %d\n", len(f.Points))
	io.Ff(&buf, "%s\n", dataMarker)
	for _, rec := range f.Records {
		if len(rec.Values) != len(f.Points) {
			return chk.Err("tripod: record has %d values, want %d (one per point)", len(rec.Values), len(f.Points))
		}
		if err := binary.Write(&buf, binary.LittleEndian, rec.TimeYears); err != nil {
			return chk.Err("tripod: failed writing time: %v", err)
		}
		for _, p := range f.Points {
			if err := binary.Write(&buf, binary.LittleEndian, p.X); err != nil {
				return err
			}
			if err := binary.Write(&buf, binary.LittleEndian, p.Y); err != nil {
				return err
			}
		}
		for _, v := range rec.Values {
			if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
				return err
			}
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Read parses a tripod file written by Write.
func Read(path string) (File, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	idx := bytes.Index(b, []byte(dataMarker))
	if idx < 0 {
		return File{}, chk.Err("tripod: missing %q marker", dataMarker)
	}
	preamble := string(b[:idx])
	body := b[idx+len(dataMarker):]
	body = bytes.TrimLeft(body, "\r\n")

	f := File{}
	n := 0
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
		case "label":
			f.Label = val
		case "n_measurements":
			n, _ = strconv.Atoi(val)
		}
	}

	recBytes := 8 + n*8*2 + n*8
	if recBytes == 0 {
		return f, nil
	}
	r := bytes.NewReader(body)
	for r.Len() >= recBytes {
		var rec Record
		if err := binary.Read(r, binary.LittleEndian, &rec.TimeYears); err != nil {
			return File{}, chk.Err("tripod: failed reading time: %v", err)
		}
		f.Points = make([]Point, n)
		for i := 0; i < n; i++ {
			if err := binary.Read(r, binary.LittleEndian, &f.Points[i].X); err != nil {
				return File{}, err
			}
			if err := binary.Read(r, binary.LittleEndian, &f.Points[i].Y); err != nil {
				return File{}, err
			}
		}
		rec.Values = make([]float64, n)
		if err := binary.Read(r, binary.LittleEndian, &rec.Values); err != nil {
			return File{}, chk.Err("tripod: failed reading values: %v", err)
		}
		f.Records = append(f.Records, rec)
	}
	return f, nil
}
