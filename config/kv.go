// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config reads the plain KEY : VALUE text configuration files,
// the bathymetry and flood boundary-condition files, in the idiom the
// teacher uses for its own JSON material database: gosl/io for file
// access, gosl/chk for error reporting.
package config

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// KV is a parsed KEY : VALUE file. Multiple lines with the same key are
// collected in order, so per-grain array keys (e.g. "removal rate
// constant") yield one slice per key.
type KV struct {
	values map[string][]string
}

// ReadKV parses a KEY : VALUE text file. Lines beginning with '#' or blank
// lines are skipped; keys and values are split on the first ':'.
func ReadKV(path string) (*KV, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kv := &KV{values: make(map[string][]string)}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, ":")
		if i < 0 {
			return nil, chk.Err("config: malformed KEY : VALUE line: %q", line)
		}
		key := strings.ToLower(strings.TrimSpace(line[:i]))
		val := strings.TrimSpace(line[i+1:])
		kv.values[key] = append(kv.values[key], val)
	}
	return kv, nil
}

// Has reports whether key was present at least once.
func (kv *KV) Has(key string) bool {
	_, ok := kv.values[strings.ToLower(key)]
	return ok
}

// String returns the first value for key.
func (kv *KV) String(key string) (string, error) {
	v, ok := kv.values[strings.ToLower(key)]
	if !ok || len(v) == 0 {
		return "", chk.Err("config: missing key %q", key)
	}
	return v[0], nil
}

// Float returns the first value for key parsed as a float64.
func (kv *KV) Float(key string) (float64, error) {
	s, err := kv.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, chk.Err("config: key %q value %q is not a number", key, s)
	}
	return f, nil
}

// FloatOr returns Float(key), or def if the key is absent.
func (kv *KV) FloatOr(key string, def float64) float64 {
	if !kv.Has(key) {
		return def
	}
	f, err := kv.Float(key)
	if err != nil {
		return def
	}
	return f
}

// FloatArray parses a comma- or whitespace-separated list of numbers from
// the first occurrence of key, used for per-grain scalar arrays written on
// a single line.
func (kv *KV) FloatArray(key string) ([]float64, error) {
	s, err := kv.String(key)
	if err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, chk.Err("config: key %q has non-numeric entry %q", key, f)
		}
		out = append(out, v)
	}
	return out, nil
}
