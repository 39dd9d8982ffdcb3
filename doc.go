// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neurolab is the overall repository for single-neuron electrophysiology
simulation in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* rk4: a generic fixed-step 4th-order Runge-Kutta integrator that advances
any N-dimensional ODE state vector in place.

* rates: the voltage-dependent transition-rate functions for the
Hodgkin-Huxley gating kinetics, with analytic removal of the singular points.

* chans: per-channel parameter bundles (conductances, reversal potentials)
for the three Hodgkin-Huxley channel types.

* hh: the 4-variable Hodgkin-Huxley conductance-based neuron model.

* izhi: the 2-variable Izhikevich hybrid quadratic neuron model, with the
standard firing-pattern parameter presets.

* synapse: the AMPA / GABA-A kinetic synapse model that couples two neurons
through a neurotransmitter-release sigmoid and first-order receptor kinetics.

* sim: the simulation orchestrator that steps the active model each tick,
records time-series tables for plotting, and manages the run/pause/reset
state machine.

* examples: these compile into runnable programs -- examples/neuronplot is
the interactive plotting front end for the models.
*/
package neurolab
