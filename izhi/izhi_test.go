// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izhi

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestInitState(t *testing.T) {
	md, err := New(RegularSpiking, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if md.Vm() != md.Params.C-10 {
		t.Errorf("init v: got %v, want %v", md.Vm(), md.Params.C-10)
	}
	if md.Recovery() != md.Params.B*(md.Params.C-10) {
		t.Errorf("init u: got %v, want %v", md.Recovery(), md.Params.B*(md.Params.C-10))
	}
}

func TestSpikeReset(t *testing.T) {
	md, err := New(RegularSpiking, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	md.SetIExt(10) // constant suprathreshold drive
	const maxSteps = 200000
	spiked := false
	for i := 0; i < maxSteps; i++ {
		uPrev := md.Recovery()
		v := md.Update()
		if v == SpikePeak {
			spiked = true
			// returned sample is the peak, stored state is already reset
			if md.Vm() != md.Params.C {
				t.Errorf("post-spike stored v: got %v, want %v", md.Vm(), md.Params.C)
			}
			jump := md.Recovery() - uPrev
			if dif := math32.Abs(jump - md.Params.D); dif > 0.02 {
				t.Errorf("post-spike u jump: got %v, want %v (dif %v)", jump, md.Params.D, dif)
			}
			break
		}
	}
	if !spiked {
		t.Errorf("no spike within %d steps at IExt=10", maxSteps)
	}
}

func TestAllPatterns(t *testing.T) {
	for pat := FiringPattern(0); pat < FiringPatternN; pat++ {
		md, err := New(pat, 0.01)
		if err != nil {
			t.Fatalf("%v: %v", pat, err)
		}
		md.SetIExt(10)
		for i := 0; i < 5000; i++ {
			v := md.Update()
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				t.Fatalf("%v: non-finite v at step %d", pat, i)
			}
		}
	}
}

func TestPatternString(t *testing.T) {
	if RegularSpiking.String() != "RegularSpiking" {
		t.Errorf("String: got %v", RegularSpiking.String())
	}
}
