// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func writeTemp(tst *testing.T, name, content string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("failed to write temp file: %v\n", err)
	}
	return path
}

func TestReadKVBasic(tst *testing.T) {

	chk.PrintTitle("readKVBasic")

	path := writeTemp(tst, "cfg.txt", "# comment\nsua: 30\nsub : 0.2\nremoval rate constant: 1, 2, 3\n")
	kv, err := ReadKV(path)
	if err != nil {
		tst.Fatalf("ReadKV failed: %v\n", err)
	}
	sua, err := kv.Float("sua")
	if err != nil || sua != 30 {
		tst.Errorf("sua = %v, err=%v\n", sua, err)
	}
	arr, err := kv.FloatArray("removal rate constant")
	if err != nil || len(arr) != 3 {
		tst.Errorf("removal rate constant = %v, err=%v\n", arr, err)
	}
}

func TestReadBathymetryRejectsNonIncreasing(tst *testing.T) {

	chk.PrintTitle("readBathymetryRejectsNonIncreasing")

	path := writeTemp(tst, "bathy.csv", "-10,5\n0,3\n-5,2\n")
	_, err := ReadBathymetry(path)
	if err == nil {
		tst.Errorf("expected an error for non-increasing positions\n")
	}
}

func TestReadBathymetryRequiresNonPositive(tst *testing.T) {

	chk.PrintTitle("readBathymetryRequiresNonPositive")

	path := writeTemp(tst, "bathy.csv", "1,5\n2,3\n")
	_, err := ReadBathymetry(path)
	if err == nil {
		tst.Errorf("expected an error when no position <= 0 is present\n")
	}
}

func TestReadBathymetryValid(tst *testing.T) {

	chk.PrintTitle("readBathymetryValid")

	path := writeTemp(tst, "bathy.csv", "-100,20\n-10,5\n0,0\n50,-5\n")
	pts, err := ReadBathymetry(path)
	if err != nil {
		tst.Fatalf("ReadBathymetry failed: %v\n", err)
	}
	if len(pts) != 4 {
		tst.Errorf("expected 4 points, got %d\n", len(pts))
	}
}

func TestReadFlood(tst *testing.T) {

	chk.PrintTitle("readFlood")

	path := writeTemp(tst, "flood.txt", "1,100,2,1,50,0.1,0.2\n2,100,2.5,1.2,60,0.15,0.25\n")
	recs, err := ReadFlood(path)
	if err != nil {
		tst.Fatalf("ReadFlood failed: %v\n", err)
	}
	if len(recs) != 2 {
		tst.Fatalf("expected 2 records, got %d\n", len(recs))
	}
	if math.Abs(recs[0].DurationDays-1) > 1e-12 {
		tst.Errorf("duration = %v, want 1\n", recs[0].DurationDays)
	}
	if len(recs[0].SuspendedConc) != 2 {
		tst.Errorf("expected 2 suspended-conc entries, got %d\n", len(recs[0].SuspendedConc))
	}
}
