// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synapse implements a kinetic model of AMPA and GABA-A synaptic
receptors coupling two neurons.  Neurotransmitter concentration is a
sigmoid function of the pre-synaptic voltage, driving first-order
open/close kinetics of the receptor channels (the single state variable r,
the fraction of open channels), integrated with fixed-step RK4.  After
each step the synaptic current g_max * r * (E_rev - V_post) is accumulated
into the post-synaptic neuron's synaptic-current slot.

The synapse holds non-owning references into the two neurons it couples,
established via Connect; it never outlives or frees them.  Before Connect,
stepping is safe and uses a default holding voltage of -70 mV on both
sides, producing a physically meaningless but finite current.
*/
package synapse

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"

	"github.com/Marshmallow-963/neurolab/rk4"
)

// indexes into the state vector
const (
	// R is the fraction of open receptor channels
	R = iota

	// NVars is the dimension of the ODE system
	NVars
)

// DefaultVoltage is the pre- and post-synaptic voltage (mV) assumed when
// the synapse is not connected.
const DefaultVoltage = -70

// Receptor selects the synaptic receptor type.
type Receptor int32

//go:generate stringer -type=Receptor

var KiT_Receptor = kit.Enums.AddEnum(ReceptorN, kit.NotBitFlag, nil)

// The receptor types
const (
	// AMPA is the fast excitatory glutamate receptor
	AMPA Receptor = iota

	// GABAA is the fast inhibitory GABA-A receptor
	GABAA

	ReceptorN
)

// Params are the kinetic constants for one receptor preset.
type Params struct {

	// steepness of the neurotransmitter release sigmoid
	KP float32

	// midpoint voltage of the neurotransmitter release sigmoid (mV)
	VP float32

	// maximum neurotransmitter concentration
	TMax float32

	// channel opening (binding) rate
	Alpha float32

	// channel closing (unbinding) rate
	Beta float32

	// reversal potential of the receptor channel (mV)
	Erev float32

	// maximum conductance -- zero by default: the caller must set a
	// nonzero synaptic weight via SetGMax for the synapse to have effect
	GMax float32
}

// Receptor presets per neuron model.  The release sigmoid midpoint and the
// excitatory reversal potential differ between the Izhikevich voltage range
// and the shifted Hodgkin-Huxley range.
var (
	// IzAMPA is the AMPA preset for Izhikevich neurons
	IzAMPA = Params{KP: 5, VP: 2, TMax: 1, Alpha: 1.1, Beta: 0.3, Erev: 0}

	// IzGABAA is the GABA-A preset for Izhikevich neurons
	IzGABAA = Params{KP: 5, VP: 2, TMax: 1, Alpha: 5, Beta: 0.18, Erev: -80}

	// HhAMPA is the AMPA preset for Hodgkin-Huxley neurons
	HhAMPA = Params{KP: 5, VP: 62, TMax: 1, Alpha: 1.1, Beta: 0.19, Erev: 60}

	// HhGABAA is the GABA-A preset for Hodgkin-Huxley neurons
	HhGABAA = Params{KP: 5, VP: 62, TMax: 1, Alpha: 5, Beta: 0.18, Erev: -80}
)

// Model is one synapse: the receptor preset, the live state vector, the
// derived neurotransmitter concentration and synaptic current, and the
// non-owning references into the coupled neurons.
type Model struct {

	// receptor kinetic constants, copied from a preset at creation
	Params Params

	// state vector [r], mutated in place by the integrator
	State []float32

	// neurotransmitter concentration, recomputed on every derivative
	// evaluation from the live pre-synaptic voltage
	T float32

	// synaptic current computed on the last Update
	ISyn float32

	// reference to the pre-synaptic neuron's voltage (nil if unconnected)
	preV *float32

	// reference to the post-synaptic neuron's voltage (nil if unconnected)
	postV *float32

	// reference to the post-synaptic neuron's synaptic-current
	// accumulator (nil if unconnected)
	postISyn *float32

	// the RK4 integrator for this synapse
	Integ *rk4.RK4
}

// New returns a new synapse with the given receptor preset (e.g., IzAMPA),
// integrating with the given time step (msec), starting with no open
// channels and no connections.
func New(pars Params, dt float32) (*Model, error) {
	sy := &Model{Params: pars}
	sy.State = make([]float32, NVars)
	ig, err := rk4.New(sy.Derivs, NVars, dt)
	if err != nil {
		return nil, err
	}
	sy.Integ = ig
	return sy, nil
}

// Preset returns the receptor preset for the given receptor type, for
// Izhikevich-range voltages if iz is true, else Hodgkin-Huxley range.
func Preset(rec Receptor, iz bool) Params {
	switch {
	case rec == AMPA && iz:
		return IzAMPA
	case rec == AMPA:
		return HhAMPA
	case iz:
		return IzGABAA
	default:
		return HhGABAA
	}
}

// Connect binds the synapse to its neurons: the pre-synaptic voltage it
// reads, and the post-synaptic voltage and synaptic-current accumulator it
// writes to.  All three references must be non-nil.  The synapse does not
// own the neurons; callers must sever (recreate) synapses when the neurons
// they reference are destroyed.
func (sy *Model) Connect(preV, postV, postISyn *float32) error {
	if preV == nil || postV == nil || postISyn == nil {
		return fmt.Errorf("synapse.Connect: nil reference")
	}
	sy.preV = preV
	sy.postV = postV
	sy.postISyn = postISyn
	return nil
}

// SetGMax sets the maximum conductance (the synaptic weight).
func (sy *Model) SetGMax(g float32) {
	sy.Params.GMax = g
}

// Derivs is the DerivFunc for the receptor kinetics
// dr/dt = alpha*T*(1-r) - beta*r.  It also records the neurotransmitter
// concentration T as a side effect.
func (sy *Model) Derivs(state, deriv []float32) {
	vpre := float32(DefaultVoltage)
	if sy.preV != nil {
		vpre = *sy.preV
	}
	t := sy.Params.TMax / (1 + math32.Exp(-(vpre-sy.Params.VP)/sy.Params.KP))
	sy.T = t

	r := state[R]
	deriv[R] = sy.Params.Alpha*t*(1-r) - sy.Params.Beta*r
}

// Update advances the receptor kinetics by one RK4 step, computes the
// synaptic current g_max * r * (E_rev - V_post), and adds it into the
// post-synaptic accumulator if connected.  Callers must zero that
// accumulator once per simulation tick before any synapse updates,
// otherwise current accrues across ticks.
func (sy *Model) Update() {
	sy.Integ.Step(sy.State)

	vpost := float32(DefaultVoltage)
	if sy.postV != nil {
		vpost = *sy.postV
	}
	isyn := sy.Params.GMax * sy.State[R] * (sy.Params.Erev - vpost)
	sy.ISyn = isyn
	if sy.postISyn != nil {
		*sy.postISyn += isyn
	}
}

// Current returns the synaptic current computed on the last Update.
func (sy *Model) Current() float32 { return sy.ISyn }

// OpenFrac returns the fraction of open receptor channels r.
func (sy *Model) OpenFrac() float32 { return sy.State[R] }

// NtConc returns the neurotransmitter concentration T from the last
// derivative evaluation.
func (sy *Model) NtConc() float32 { return sy.T }

// Connected returns whether Connect has bound all three references.
func (sy *Model) Connected() bool {
	return sy.preV != nil && sy.postV != nil && sy.postISyn != nil
}
