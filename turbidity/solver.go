// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package turbidity implements the 1-D steady-state hyperpycnal
// turbidity-current solver: a single forward-Euler march down a
// bathymetric profile with entrainment, friction, and grain-by-grain
// deposition/erosion.
package turbidity

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ErrNegativeVelocity is returned when the marching solution drives the
// flow velocity to or below zero; the caller should roll the step back.
var ErrNegativeVelocity = chk.Err("turbidity: flow velocity reached zero or below")

const e = math.E

// Node is one sample of the 1-D bathymetric profile.
type Node struct {
	X, Slope, Width float64
}

// Packet describes the flood (river mouth) boundary condition at node 0.
type Packet struct {
	Width0            float64
	Velocity0         float64
	Depth0            float64
	Q0                float64 // volume discharge [m3/s]
	Fractions         []float64
	RiverWaterDensity float64 // rho_0
	FlowDensity       float64 // rho_F0
}

// ClassConstants are the per-grain-class physical constants §4.4 names.
type ClassConstants struct {
	RemovalRate  []float64 // lambda_n [1/day]
	GrainDiam    []float64 // d_n [m]
	BulkDensity  []float64 // rho_sed,n
	GrainDensity []float64 // rho_gr,n
}

// PheQuery asks the sediment substrate for the grain-size distribution of
// the top erodeDepth metres at position x, returning the realised erosion
// depth (which may be less than requested if the substrate runs out) and
// the per-class fractions of that eroded material.
type PheQuery func(x, dx, erodeDepth float64) (erodeDepthActual float64, fractions []float64)

// Constants are the process-wide physical constants §4.4 names.
type Constants struct {
	Ea, Eb  float64 // entrainment constants
	Sua     float64 // shear-erosion constant [Pa]
	Sub     float64 // shear-erosion threshold [Pa]
	Cd      float64 // drag coefficient
	TanPhi  float64 // tan(internal friction angle)
	Mu      float64 // viscosity-like constant (unused directly by the marching formulas, carried for callers)
	RhoSW   float64 // seawater density
	Xdep    float64 // no-deposition distance; see DESIGN.md open question
	DaySecs float64 // seconds per day, defaults to 86400 if zero
}

const gravity = 9.81
const maxSlopeMagnitude = 0.2
const minEntrainmentSin = 0.01

// Result carries the marching solution and mass-balance telemetry.
type Result struct {
	Velocity    []float64   // u at every node
	Depth       []float64   // h at every node
	Density     []float64   // rho at every node
	Discharge   []float64   // q at every node
	Deposit     [][]float64 // [node][class] deposit_n (m of sediment thickness)
	Erosion     [][]float64 // [node][class] erosion_n (m of sediment thickness)
	Fractions   [][]float64 // [node][class] renormalised class fractions
	MassIn      float64
	MassDeposited float64
	MassEroded    float64
}

// Solve runs the forward-Euler march described in spec.md 4.4 over the
// given profile for the given duration (seconds).
func Solve(profile []Node, pk Packet, cc ClassConstants, pq PheQuery, k Constants, duration float64) (*Result, error) {
	n := len(profile)
	g := len(pk.Fractions)
	if n < 2 {
		chk.Panic("turbidity: profile must have at least 2 nodes")
	}
	if k.DaySecs == 0 {
		k.DaySecs = 86400
	}
	dx := profile[1].X - profile[0].X

	res := &Result{
		Velocity:  make([]float64, n),
		Depth:     make([]float64, n),
		Density:   make([]float64, n),
		Discharge: make([]float64, n),
		Deposit:   make([][]float64, n),
		Erosion:   make([][]float64, n),
		Fractions: make([][]float64, n),
	}
	for i := range res.Deposit {
		res.Deposit[i] = make([]float64, g)
		res.Erosion[i] = make([]float64, g)
		res.Fractions[i] = make([]float64, g)
	}

	u0 := pk.Velocity0
	q0 := pk.Q0
	h0 := pk.Depth0
	rho := pk.RiverWaterDensity // ambient (entrainment-diluted) density, rho
	rhoF := pk.FlowDensity      // flow/mixture density, rho_F

	// J_n,0: per-class volumetric sediment flux carried by the flow,
	// initialised from the packet's class fractions.
	J := make([]float64, g)
	for n2 := 0; n2 < g; n2++ {
		J[n2] = pk.Fractions[n2] * q0
	}

	res.Velocity[0] = u0
	res.Depth[0] = h0
	res.Density[0] = rhoF
	res.Discharge[0] = q0
	copy(res.Fractions[0], pk.Fractions)

	res.MassIn = q0 * (rhoF - rho) * duration

	pastMaxDepth := false
	sinBetaAccum := 0.0

	for i := 1; i < n; i++ {
		w := profile[i].Width
		if w <= 0 {
			w = profile[i-1].Width
		}

		// rho_S: grain-weighted mean density of the sediment currently
		// carried by the flow, recomputed every node from the class
		// fluxes carried forward from the previous node.
		rhoS := grainWeightedDensity(J, cc.GrainDensity)

		// step 1: richardson number
		beta := -profile[i].Slope
		if beta > maxSlopeMagnitude {
			beta = maxSlopeMagnitude
		}
		if beta < -maxSlopeMagnitude {
			beta = -maxSlopeMagnitude
		}
		gPrime := gravity * (rhoS - rho) / rho
		J0total := 0.0
		for _, jn := range J {
			J0total += jn
		}
		RI := gPrime * math.Cos(beta) * J0total / (u0 * u0 * u0 * w)

		// step 2: entrainment
		sinBeta := math.Sin(beta)
		var E float64
		switch {
		case sinBeta > minEntrainmentSin:
			E = k.Ea / (k.Eb + RI)
		case sinBeta > 0:
			E = 0.072 * sinBeta
		default:
			E = 0
		}

		// step 3: forcing terms
		gamma := k.TanPhi * (math.Exp(J0total/q0) - 1) / (e - 1)
		A1 := gPrime * J0total * sinBeta / (u0 * q0)
		A2 := -(E + k.Cd) * u0 * u0 * w / q0
		A3 := -0.1 * gPrime * J0total * math.Cos(beta) * gamma / (u0 * q0)

		// once the profile starts climbing back up (net descent goes
		// negative) buoyancy forcing is damped rather than reversed
		sinBetaAccum += sinBeta
		if sinBetaAccum < 0 {
			pastMaxDepth = true
		}
		if pastMaxDepth {
			A1 *= 0.05
		}

		// step 4: velocity update
		u := u0 + (A1+A2+A3)*dx
		if u <= 0 {
			return nil, ErrNegativeVelocity
		}
		if u < 0.01 {
			u = 0.01
		}

		// step 5: discharge, depth, ambient density (entrainment dilutes
		// the ambient fluid toward seawater density)
		q := q0 + E*u0*w*dx
		h := q / (w * u)
		ambNew := rho + E*u0*w*(k.RhoSW-rho)*dx/q0

		// step 6: shear-based erosion depth [m/day], using the flow
		// (mixture) density carried forward from the previous node
		erosionRateMPerDay := math.Max(0, (k.Cd*rhoF*u0*u0-k.Sub)/k.Sua)
		realisedDepth, phi := pq(profile[i].X, dx, erosionRateMPerDay)

		// step 7/8: per-class erosion/deposition and flux update
		maxWs := 0.0
		for _, d := range cc.GrainDiam {
			ws := settlingVelocity(d)
			if ws > maxWs {
				maxWs = ws
			}
		}
		uCrit := maxWs / math.Sqrt(k.Cd)

		for n2 := 0; n2 < g; n2++ {
			En := realisedDepth * safeIdx(phi, n2) * (dx / k.DaySecs) * w
			var Dn float64
			if u < uCrit {
				Dn = -cc.RemovalRate[n2] * J[n2] / u * (1 - (u/uCrit)*(u/uCrit)) / 10
			}
			res.Deposit[i][n2] = -Dn * (cc.GrainDensity[n2] / cc.BulkDensity[n2]) * duration / w
			res.Erosion[i][n2] = -En * duration / w
			J[n2] = J[n2] + (Dn+En)*dx
			if J[n2] < 0 {
				J[n2] = 0
			}
		}

		// step 9: renormalise fractions, update flow properties; the
		// mixture density is the ambient density plus the sediment's
		// excess density weighted by its volumetric concentration in
		// the flow, matching the original's rhoF = conc*(rhoS-rho)+rho
		total := 0.0
		for _, jn := range J {
			total += jn
		}
		if total > 0 {
			for n2 := 0; n2 < g; n2++ {
				res.Fractions[i][n2] = J[n2] / total
			}
		}
		rhoSNew := grainWeightedDensity(J, cc.GrainDensity)
		conc := total / q
		rhoFNew := conc*(rhoSNew-ambNew) + ambNew

		res.Velocity[i] = u
		res.Depth[i] = h
		res.Density[i] = rhoFNew
		res.Discharge[i] = q

		for n2 := 0; n2 < g; n2++ {
			res.MassDeposited += res.Deposit[i][n2] * w * cc.BulkDensity[n2]
			res.MassEroded += res.Erosion[i][n2] * w * cc.BulkDensity[n2]
		}

		u0, q0, rho, rhoF = u, q, ambNew, rhoFNew
	}

	return res, nil
}

func safeIdx(v []float64, i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// grainWeightedDensity is rho_S, the grain-density mean of weights (class
// fractions or fluxes, need not sum to 1) against the per-class grain
// densities.
func grainWeightedDensity(weights, grainDensity []float64) float64 {
	sumW, sumWD := 0.0, 0.0
	for i, w := range weights {
		sumW += w
		sumWD += w * safeIdx(grainDensity, i)
	}
	if sumW <= 0 {
		return 0
	}
	return sumWD / sumW
}

// settlingVelocity is Stokes' law terminal velocity for a spherical grain
// of diameter d in water, used only to locate u_crit = max_ws/sqrt(Cd).
func settlingVelocity(d float64) float64 {
	const rhoGrain = 2650.0
	const rhoWater = 1028.0
	const nu = 1.0e-6 // kinematic viscosity of water [m2/s]
	return (rhoGrain - rhoWater) * gravity * d * d / (18 * rhoWater * nu)
}
