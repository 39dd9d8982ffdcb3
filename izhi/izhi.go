// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package izhi implements the Izhikevich hybrid quadratic neuron model:
a 2-variable ODE system (membrane potential v and recovery variable u)
integrated with fixed-step RK4, plus the discrete spike-reset rule applied
when v reaches the spike peak.  Firing behavior is selected from the
standard (a, b, c, d) parameter presets of Izhikevich (2003).
*/
package izhi

import (
	"github.com/goki/ki/kit"

	"github.com/Marshmallow-963/neurolab/rk4"
)

// indexes into the state vector
const (
	// V is the membrane potential (mV)
	V = iota

	// U is the membrane recovery variable
	U

	// NVars is the dimension of the ODE system
	NVars
)

// SpikePeak is the voltage (mV) that triggers the discrete spike reset.
const SpikePeak = 30

// FiringPattern selects one of the canonical (a,b,c,d) parameter presets.
type FiringPattern int32

//go:generate stringer -type=FiringPattern

var KiT_FiringPattern = kit.Enums.AddEnum(FiringPatternN, kit.NotBitFlag, nil)

// The firing patterns
const (
	Chattering FiringPattern = iota
	FastSpiking
	IntrinsicallyBursting
	LowThresholdSpiking
	RegularSpiking
	Resonator
	ThalamoCortical

	FiringPatternN
)

// Params are the Izhikevich model constants for one firing pattern.
type Params struct {

	// recovery time scale
	A float32

	// recovery sensitivity to subthreshold v fluctuations
	B float32

	// post-spike reset value of v (mV)
	C float32

	// post-spike increment of u
	D float32
}

// PatternParams is the immutable preset table, indexed by FiringPattern.
// Values are from Izhikevich, E. M. (2003), "Simple model of spiking neurons".
var PatternParams = [FiringPatternN]Params{
	Chattering:            {A: 0.02, B: 0.2, C: -50, D: 2},
	FastSpiking:           {A: 0.1, B: 0.2, C: -65, D: 2},
	IntrinsicallyBursting: {A: 0.02, B: 0.2, C: -55, D: 4},
	LowThresholdSpiking:   {A: 0.02, B: 0.25, C: -65, D: 2},
	RegularSpiking:        {A: 0.02, B: 0.2, C: -65, D: 8},
	Resonator:             {A: 0.1, B: 0.26, C: -60, D: -1},
	ThalamoCortical:       {A: 0.02, B: 0.25, C: -65, D: 0.05},
}

// Model is one Izhikevich neuron: the preset parameters, the live state
// vector, input currents, and the integrator that advances the state.
type Model struct {

	// the selected firing pattern preset
	Pattern FiringPattern

	// model constants, copied from PatternParams at creation
	Params Params

	// state vector [v, u], mutated in place by the integrator
	State []float32

	// externally injected current, set between steps via SetIExt
	IExt float32

	// synaptic current accumulator -- connected synapses add into this;
	// the caller zeroes it once per simulation tick
	ISyn float32

	// the RK4 integrator for this neuron
	Integ *rk4.RK4
}

// New returns a new Izhikevich model for the given firing pattern,
// integrating with the given time step (msec), initialized near
// equilibrium (v = c - 10, u = b*v).
func New(pat FiringPattern, dt float32) (*Model, error) {
	md := &Model{Pattern: pat}
	md.Params = PatternParams[pat]
	md.State = make([]float32, NVars)
	ig, err := rk4.New(md.Derivs, NVars, dt)
	if err != nil {
		return nil, err
	}
	md.Integ = ig
	md.InitState()
	return md, nil
}

// InitState sets the state to the near-equilibrium starting point and
// zeroes the input currents.
func (md *Model) InitState() {
	md.State[V] = md.Params.C - 10
	md.State[U] = md.Params.B * md.State[V]
	md.IExt = 0
	md.ISyn = 0
}

// Derivs is the DerivFunc for the two Izhikevich equations:
// dv/dt = 0.04v^2 + 5v + 140 - u + I, du/dt = a(bv - u).
func (md *Model) Derivs(state, deriv []float32) {
	v := state[V]
	u := state[U]
	inj := md.IExt + md.ISyn
	deriv[V] = 0.04*v*v + 5*v + 140 - u + inj
	deriv[U] = md.Params.A * (md.Params.B*v - u)
}

// SetIExt sets the externally injected current for subsequent steps.
func (md *Model) SetIExt(i float32) {
	md.IExt = i
}

// Update advances the model by one RK4 step, then applies the discrete
// spike rule: if v reached SpikePeak, the stored state is reset
// (v = c, u += d) and SpikePeak is returned as the sample for this step,
// so the recorded trace shows the spike even though the internal state
// has already been reset.  Otherwise the new v is returned.
func (md *Model) Update() float32 {
	md.Integ.Step(md.State)
	if md.State[V] >= SpikePeak {
		md.State[V] = md.Params.C
		md.State[U] += md.Params.D
		return SpikePeak
	}
	return md.State[V]
}

// Vm returns the membrane potential.
func (md *Model) Vm() float32 { return md.State[V] }

// Recovery returns the recovery variable u.
func (md *Model) Recovery() float32 { return md.State[U] }

// VmPtr returns a stable reference to the membrane potential, for
// connecting a synapse to this neuron.
func (md *Model) VmPtr() *float32 { return &md.State[V] }

// ISynPtr returns a stable reference to the synaptic current accumulator,
// for connecting a synapse to this neuron.
func (md *Model) ISynPtr() *float32 { return &md.ISyn }
