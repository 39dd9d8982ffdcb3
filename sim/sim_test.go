// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestStartTickReset(t *testing.T) {
	ss := New()
	ss.Model = Izhikevich
	ss.IExt = 10
	if err := ss.Start(); err != nil {
		t.Fatal(err)
	}
	if !ss.Running || !ss.Live() {
		t.Fatalf("not running after Start")
	}
	if err := ss.Start(); err == nil {
		t.Errorf("second Start without Reset: expected error")
	}
	for i := 0; i < 100; i++ {
		ss.Tick()
	}
	if ss.Count != 100 {
		t.Errorf("Count: got %v, want 100", ss.Count)
	}
	if dif := math32.Abs(ss.Time - 100*ss.Dt); dif > 1.0e-4 {
		t.Errorf("Time: got %v, want %v", ss.Time, 100*ss.Dt)
	}
	// samples are recorded at the post-step time, starting at 0
	if tm := ss.Table.CellFloat("Time", 0); tm != 0 {
		t.Errorf("first sample time: got %v, want 0", tm)
	}

	ss.Reset()
	if ss.Running || ss.Live() || ss.Count != 0 || ss.Time != 0 {
		t.Errorf("Reset: Running=%v Live=%v Count=%v Time=%v", ss.Running, ss.Live(), ss.Count, ss.Time)
	}
	if ss.Iz != nil || ss.Hh != nil || ss.Syn != nil {
		t.Errorf("Reset: model handles not severed")
	}
	if ss.Bounds.Vm.Min != -80 || ss.Bounds.Vm.Max != 40 {
		t.Errorf("Reset: bounds not restored: %v", ss.Bounds.Vm)
	}

	// tick after reset is a no-op: no crash, no time advance
	ss.Tick()
	if ss.Count != 0 || ss.Time != 0 {
		t.Errorf("tick after Reset advanced: Count=%v Time=%v", ss.Count, ss.Time)
	}
}

func TestStartFailureLeavesStopped(t *testing.T) {
	ss := New()
	ss.Model = Izhikevich
	ss.Coupled = true
	ss.Dt = -1
	if err := ss.Start(); err == nil {
		t.Fatalf("Start with invalid Dt: expected error")
	}
	if ss.Live() || ss.Running || ss.Iz != nil || ss.IzPost != nil || ss.Syn != nil {
		t.Errorf("failed Start left live state: Iz=%v IzPost=%v Syn=%v", ss.Iz, ss.IzPost, ss.Syn)
	}
	// recoverable without a Reset: fix the config and Start again
	ss.Dt = DefaultDt
	if err := ss.Start(); err != nil {
		t.Fatalf("Start after fixing Dt: %v", err)
	}
	if !ss.Running {
		t.Errorf("not running after successful Start")
	}
}

func TestToggle(t *testing.T) {
	ss := New()
	ss.Toggle() // no model: no effect
	if ss.Running {
		t.Errorf("Toggle without model set Running")
	}
	if err := ss.Start(); err != nil {
		t.Fatal(err)
	}
	ss.Toggle()
	if ss.Running {
		t.Errorf("Toggle did not pause")
	}
	ss.Tick()
	if ss.Count != 0 {
		t.Errorf("tick while paused advanced: Count=%v", ss.Count)
	}
	ss.Toggle()
	if !ss.Running {
		t.Errorf("Toggle did not resume")
	}
}

func TestBufferFull(t *testing.T) {
	ss := New()
	ss.Model = Izhikevich
	ss.IExt = 10
	if err := ss.Start(); err != nil {
		t.Fatal(err)
	}
	// one tick past capacity: the final tick must stop the run without
	// writing out of bounds
	for i := 0; i < ss.MaxPoints+1; i++ {
		ss.Tick()
	}
	if ss.Running {
		t.Errorf("still running past capacity")
	}
	if ss.Count != ss.MaxPoints {
		t.Errorf("Count: got %v, want %v", ss.Count, ss.MaxPoints)
	}
	if ss.Table.Rows != ss.MaxPoints {
		t.Errorf("table rows: got %v, want %v", ss.Table.Rows, ss.MaxPoints)
	}
}

func TestHodgkinHuxleyRecording(t *testing.T) {
	ss := New()
	ss.Model = HodgkinHuxley
	if err := ss.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		ss.Tick()
	}
	// no input current: the trace stays at rest
	v := ss.Table.CellFloat("Vm", 999)
	if math32.Abs(float32(v)) > 0.01 {
		t.Errorf("HH at rest: Vm[999]=%v, want ~0", v)
	}
	// gate columns recorded within [0,1]
	for _, col := range []string{"MGate", "HGate", "NGate"} {
		g := ss.Table.CellFloat(col, 999)
		if g < 0 || g > 1 {
			t.Errorf("%s out of range: %v", col, g)
		}
	}
}

func TestCoupledPair(t *testing.T) {
	ss := New()
	ss.Model = Izhikevich
	ss.Coupled = true
	ss.GSyn = 0.5
	ss.IExt = 10
	if err := ss.Start(); err != nil {
		t.Fatal(err)
	}
	if ss.IzPost == nil || ss.Syn == nil || !ss.Syn.Connected() {
		t.Fatalf("coupled pair not built")
	}
	for i := 0; i < 5000; i++ {
		ss.Tick()
	}
	// the accumulator is zeroed each tick, so it holds exactly the last
	// synapse current
	if dif := math32.Abs(ss.IzPost.ISyn - ss.Syn.Current()); dif > 1.0e-5 {
		t.Errorf("accumulator: got %v, want %v", ss.IzPost.ISyn, ss.Syn.Current())
	}
	v2 := ss.Table.CellFloat("Vm2", 4999)
	if v2 == 0 {
		t.Errorf("Vm2 not recorded")
	}
	ss.Reset()
	if ss.IzPost != nil || ss.Syn != nil {
		t.Errorf("Reset: coupled handles not severed")
	}
}
