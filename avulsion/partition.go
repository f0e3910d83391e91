// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avulsion

import "math"

// Partition assigns water discharge and bed-load flux to every leaf given
// the channel lengths already computed by Trace (leaf.Length), per
// spec.md 4.6's slope-proxy power-law split.
func Partition(leaves []*LeafState, qTotal, qbTotal, waterExponent, bedLoadExponent float64) {
	n := len(leaves)
	if n == 0 {
		return
	}

	slopes := make([]float64, n)
	sSumN := 0.0
	for i, l := range leaves {
		length := l.Length
		if length <= 0 {
			length = 1e-9
		}
		slopes[i] = 1 / length
		sSumN += math.Pow(slopes[i], waterExponent)
	}

	if sSumN <= 0 {
		for _, l := range leaves {
			l.Q = 0
			l.Qb = 0
		}
		return
	}
	for i, l := range leaves {
		l.Q = qTotal * math.Pow(slopes[i], waterExponent) / sSumN
	}

	bedSum := 0.0
	raw := make([]float64, n)
	for i, l := range leaves {
		raw[i] = math.Pow(l.Q*slopes[i], bedLoadExponent)
		bedSum += raw[i]
	}
	if bedSum <= 0 {
		for _, l := range leaves {
			l.Qb = 0
		}
		return
	}
	for i, l := range leaves {
		l.Qb = qbTotal * raw[i] / bedSum
	}
}
