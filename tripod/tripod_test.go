// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tripod

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mcflugen/sedflux-sub005/cube"
	"github.com/mcflugen/sedflux-sub005/sampler"
	"github.com/mcflugen/sedflux-sub005/sedclass"
)

func TestWriteReadRoundTrip(tst *testing.T) {

	chk.PrintTitle("writeReadRoundTrip")

	path := filepath.Join(tst.TempDir(), "test.tripod")
	want := File{
		Label:  "test-probes",
		Points: []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 200, Y: 50}},
		Records: []Record{
			{TimeYears: 0, Values: []float64{1, 2, 3}},
			{TimeYears: 10, Values: []float64{1.5, 2.5, 3.5}},
		},
	}
	if err := Write(path, want); err != nil {
		tst.Fatalf("Write failed: %v\n", err)
	}
	got, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v\n", err)
	}
	if got.Label != want.Label {
		tst.Errorf("label = %q, want %q\n", got.Label, want.Label)
	}
	if len(got.Points) != len(want.Points) {
		tst.Fatalf("n points = %d, want %d\n", len(got.Points), len(want.Points))
	}
	if len(got.Records) != len(want.Records) {
		tst.Fatalf("n records = %d, want %d\n", len(got.Records), len(want.Records))
	}
	for r := range want.Records {
		if math.Abs(got.Records[r].TimeYears-want.Records[r].TimeYears) > 1e-9 {
			tst.Errorf("record %d time = %v, want %v\n", r, got.Records[r].TimeYears, want.Records[r].TimeYears)
		}
		for v := range want.Records[r].Values {
			if math.Abs(got.Records[r].Values[v]-want.Records[r].Values[v]) > 1e-9 {
				tst.Errorf("record %d value %d = %v, want %v\n", r, v, got.Records[r].Values[v], want.Records[r].Values[v])
			}
		}
	}
}

func TestRecorderSamplesFromCube(tst *testing.T) {

	chk.PrintTitle("recorderSamplesFromCube")

	reg := sedclass.NewRegistry([]sedclass.Class{
		{Name: "sand", GrainDiam: 200e-6, GrainDensity: 2650, BulkDensity: 1900, MinVoidRatio: 0.5},
	})
	cu := cube.New(4, 3, 100, 100, 0.1, -10, 0, reg)

	probes := []Probe{{I: 0, J: 0, X: 0, Y: 0}, {I: 3, J: 2, X: 300, Y: 200}}
	rec, pts := NewRecorder(sampler.Depth, probes)
	if len(pts) != 2 {
		tst.Fatalf("expected 2 points, got %d\n", len(pts))
	}

	r := rec.Sample(cu, 0)
	if len(r.Values) != 2 {
		tst.Fatalf("expected 2 values, got %d\n", len(r.Values))
	}
	for i, v := range r.Values {
		if math.IsNaN(v) {
			tst.Errorf("probe %d water depth is NaN\n", i)
		}
	}
}
