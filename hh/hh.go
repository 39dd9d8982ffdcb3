// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hh implements the Hodgkin-Huxley conductance-based neuron model:
a 4-variable ODE system over the membrane potential V and the m, h, n
channel gating variables, integrated with a fixed-step RK4 integrator.

Voltages use the original shifted convention (resting potential at 0 mV);
time is in msec and currents are on the uA scale set by the membrane-area
(pi-scaled) conductances of the default parameters.
*/
package hh

import (
	"github.com/Marshmallow-963/neurolab/chans"
	"github.com/Marshmallow-963/neurolab/rates"
	"github.com/Marshmallow-963/neurolab/rk4"
)

// indexes into the state vector
const (
	// V is the membrane potential (mV)
	V = iota

	// M is the sodium activation gate
	M

	// H is the sodium inactivation gate
	H

	// N is the potassium activation gate
	N

	// NVars is the dimension of the ODE system
	NVars
)

// Params are the Hodgkin-Huxley membrane parameters.  The defaults are the
// original-paper values scaled by the membrane area (the pi factors),
// with voltages in the shifted convention (rest at 0 mV).
type Params struct {

	// membrane capacitance
	C float32

	// maximal conductances per channel type
	Gbar chans.Chans

	// reversal potentials per channel type
	Erev chans.Chans

	// resting membrane potential -- initial V, and the voltage the gates
	// are equilibrated to at init
	RestPot float32
}

func (pr *Params) Defaults() {
	pr.C = 9 * pi
	pr.Gbar.SetAll(1080*pi, 324*pi, 2.7*pi)
	pr.Erev.SetAll(115, -12, 10.6)
	pr.RestPot = 0
}

const pi = 3.14159265358979323846

// Model is one Hodgkin-Huxley neuron: parameters, the live state vector,
// derived per-step currents, and the integrator that advances the state.
type Model struct {

	// membrane parameters, copied from defaults at creation
	Params Params

	// state vector [V, m, h, n], mutated in place by the integrator
	State []float32

	// sodium current, recomputed on every derivative evaluation
	INa float32

	// potassium current, recomputed on every derivative evaluation
	IK float32

	// leak current, recomputed on every derivative evaluation
	ILeak float32

	// externally injected current, set between steps via SetIExt
	IExt float32

	// synaptic current accumulator -- connected synapses add into this;
	// the caller zeroes it once per simulation tick
	ISyn float32

	// the RK4 integrator for this neuron
	Integ *rk4.RK4
}

// New returns a new Hodgkin-Huxley model with default parameters,
// integrating with the given time step (msec), initialized at rest.
func New(dt float32) (*Model, error) {
	md := &Model{}
	md.Params.Defaults()
	md.State = make([]float32, NVars)
	ig, err := rk4.New(md.Derivs, NVars, dt)
	if err != nil {
		return nil, err
	}
	md.Integ = ig
	md.InitState()
	return md, nil
}

// InitState sets the membrane potential to the resting potential and the
// gates to their steady-state values at that voltage, and zeroes the
// input currents.
func (md *Model) InitState() {
	rp := md.Params.RestPot
	md.State[V] = rp
	md.State[M] = rates.SteadyState(rates.AlphaM(rp), rates.BetaM(rp))
	md.State[H] = rates.SteadyState(rates.AlphaH(rp), rates.BetaH(rp))
	md.State[N] = rates.SteadyState(rates.AlphaN(rp), rates.BetaN(rp))
	md.IExt = 0
	md.ISyn = 0
}

// Derivs is the DerivFunc for the 4 Hodgkin-Huxley equations.  It also
// records the ionic currents as a side effect, so they can be read back
// after a step via the current getters.
func (md *Model) Derivs(state, deriv []float32) {
	v := state[V]
	m := state[M]
	h := state[H]
	n := state[N]

	il := md.Params.Gbar.L * (md.Params.Erev.L - v)
	ik := md.Params.Gbar.K * n * n * n * n * (md.Params.Erev.K - v)
	ina := md.Params.Gbar.Na * m * m * m * h * (md.Params.Erev.Na - v)

	md.ILeak = il
	md.IK = ik
	md.INa = ina

	inj := md.IExt + md.ISyn

	deriv[V] = (ina + ik + il + inj) / md.Params.C
	deriv[M] = rates.AlphaM(v)*(1-m) - rates.BetaM(v)*m
	deriv[H] = rates.AlphaH(v)*(1-h) - rates.BetaH(v)*h
	deriv[N] = rates.AlphaN(v)*(1-n) - rates.BetaN(v)*n
}

// SetIExt sets the externally injected current for subsequent steps.
func (md *Model) SetIExt(i float32) {
	md.IExt = i
}

// Update advances the model by one RK4 step and returns the new
// membrane potential.
func (md *Model) Update() float32 {
	md.Integ.Step(md.State)
	return md.State[V]
}

// Vm returns the membrane potential.
func (md *Model) Vm() float32 { return md.State[V] }

// MGate returns the sodium activation gate value.
func (md *Model) MGate() float32 { return md.State[M] }

// HGate returns the sodium inactivation gate value.
func (md *Model) HGate() float32 { return md.State[H] }

// NGate returns the potassium activation gate value.
func (md *Model) NGate() float32 { return md.State[N] }

// VmPtr returns a stable reference to the membrane potential, for
// connecting a synapse to this neuron.
func (md *Model) VmPtr() *float32 { return &md.State[V] }

// ISynPtr returns a stable reference to the synaptic current accumulator,
// for connecting a synapse to this neuron.
func (md *Model) ISynPtr() *float32 { return &md.ISyn }
