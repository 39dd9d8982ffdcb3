// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides per-channel parameter bundles for the three ion
channel types of the Hodgkin-Huxley point-neuron model: voltage-gated
sodium (Na), voltage-gated potassium (K), and passive leak (L).
*/
package chans

// Chans holds one value (e.g., a maximal conductance or a reversal
// potential) per Hodgkin-Huxley channel type.
type Chans struct {

	// voltage-gated sodium channels, gated by the m (activation) and h (inactivation) gates
	Na float32

	// voltage-gated potassium channels, gated by the n activation gate
	K float32

	// passive leak channels -- determine the resting potential
	L float32
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l float32) {
	ch.Na, ch.K, ch.L = na, k, l
}
