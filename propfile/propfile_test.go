// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package propfile

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestWriteReadRoundTrip(tst *testing.T) {

	chk.PrintTitle("writeReadRoundTrip")

	path := filepath.Join(tst.TempDir(), "test.prop")
	want := File{
		Dx: 10, Dy: 10, Dz: 0.1,
		NumRows: 1, NumXColumns: 2, NumYColumns: 3,
		RockValue: RockValue, WaterValue: WaterValue,
		Data: []float64{1, 2, 3, RockValue, WaterValue, 4.5},
	}
	if err := Write(path, want); err != nil {
		tst.Fatalf("Write failed: %v\n", err)
	}
	got, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v\n", err)
	}
	if got.NumXColumns != want.NumXColumns || got.NumYColumns != want.NumYColumns {
		tst.Errorf("grid shape mismatch: got (%d,%d), want (%d,%d)\n", got.NumXColumns, got.NumYColumns, want.NumXColumns, want.NumYColumns)
	}
	if len(got.Data) != len(want.Data) {
		tst.Fatalf("data length mismatch: got %d, want %d\n", len(got.Data), len(want.Data))
	}
	for i := range want.Data {
		if math.Abs(got.Data[i]-want.Data[i]) > 1e-9*math.Max(1, math.Abs(want.Data[i])) {
			tst.Errorf("data[%d] = %v, want %v\n", i, got.Data[i], want.Data[i])
		}
	}
}
