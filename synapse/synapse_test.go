// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestConnectErrs(t *testing.T) {
	sy, err := New(IzAMPA, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	var v, isyn float32
	if err := sy.Connect(nil, &v, &isyn); err == nil {
		t.Errorf("Connect with nil preV: expected error")
	}
	if err := sy.Connect(&v, nil, &isyn); err == nil {
		t.Errorf("Connect with nil postV: expected error")
	}
	if err := sy.Connect(&v, &v, nil); err == nil {
		t.Errorf("Connect with nil postISyn: expected error")
	}
	if sy.Connected() {
		t.Errorf("Connected true after failed Connect")
	}
	if err := sy.Connect(&v, &v, &isyn); err != nil {
		t.Errorf("Connect: unexpected error: %v", err)
	}
	if !sy.Connected() {
		t.Errorf("Connected false after Connect")
	}
}

func TestUnconnectedDefaults(t *testing.T) {
	// stepping before Connect must not crash and uses the -70 mV holding
	// voltage, which keeps the AMPA release sigmoid essentially off
	sy, err := New(IzAMPA, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		sy.Update()
	}
	if sy.NtConc() > 1.0e-5 {
		t.Errorf("unconnected T: got %v, expected ~0 at -70 mV", sy.NtConc())
	}
	if sy.Current() != 0 {
		t.Errorf("unconnected current with GMax=0: got %v, want 0", sy.Current())
	}
}

func TestOpenFracFixedPoint(t *testing.T) {
	// with the pre voltage clamped above VP, r must approach
	// alpha*T/(alpha*T+beta) monotonically, staying within [0,1]
	sy, err := New(IzAMPA, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	preV := float32(30)
	postV := float32(-65)
	var isyn float32
	if err := sy.Connect(&preV, &postV, &isyn); err != nil {
		t.Fatal(err)
	}
	sy.SetGMax(1)

	rPrev := sy.OpenFrac()
	for i := 0; i < 20000; i++ {
		isyn = 0
		sy.Update()
		r := sy.OpenFrac()
		if r < 0 || r > 1 {
			t.Fatalf("r out of [0,1] at step %d: %v", i, r)
		}
		if r < rPrev-1.0e-6 {
			t.Fatalf("r not monotone at step %d: %v -> %v", i, rPrev, r)
		}
		rPrev = r
	}

	tConc := sy.Params.TMax / (1 + math32.Exp(-(preV-sy.Params.VP)/sy.Params.KP))
	rInf := sy.Params.Alpha * tConc / (sy.Params.Alpha*tConc + sy.Params.Beta)
	if dif := math32.Abs(sy.OpenFrac() - rInf); dif > 1.0e-3 {
		t.Errorf("fixed point: r %v, rInf %v, dif %v", sy.OpenFrac(), rInf, dif)
	}

	// current sign: excitatory (Erev=0) with post below reversal
	if sy.Current() <= 0 {
		t.Errorf("AMPA current onto -65 mV neuron: got %v, want positive", sy.Current())
	}
}

func TestCurrentAccumulates(t *testing.T) {
	// two synapses writing the same accumulator must sum, not overwrite
	preV := float32(30)
	postV := float32(-65)
	var isyn float32

	sy1, _ := New(IzAMPA, 0.01)
	sy2, _ := New(IzGABAA, 0.01)
	if err := sy1.Connect(&preV, &postV, &isyn); err != nil {
		t.Fatal(err)
	}
	if err := sy2.Connect(&preV, &postV, &isyn); err != nil {
		t.Fatal(err)
	}
	sy1.SetGMax(0.5)
	sy2.SetGMax(0.5)

	for i := 0; i < 100; i++ {
		isyn = 0 // caller zeroes once per tick
		sy1.Update()
		sy2.Update()
	}
	sum := sy1.Current() + sy2.Current()
	if dif := math32.Abs(isyn - sum); dif > 1.0e-5 {
		t.Errorf("accumulator: got %v, want sum of currents %v", isyn, sum)
	}
}
