// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/emer/etable/v2/minmax"

// margins applied below newly observed minima, so traces do not hug the
// bottom plot edge
const (
	// VmMargin is the margin below voltage and phase minima (mV)
	VmMargin = 2

	// CurrentMargin is the margin below ionic-current minima
	CurrentMargin = 10
)

// PlotBounds holds the axis bounds for all plotted quantities.  Bounds are
// owned by the Sim and auto-scale expand-only: they grow to enclose new
// data and are restored to the defaults only on Reset.
type PlotBounds struct {

	// X (time) axis of the voltage trace (msec)
	Time minmax.F32

	// Y axis of the voltage trace (mV)
	Vm minmax.F32

	// X (recovery) axis of the Izhikevich phase plot
	PhaseX minmax.F32

	// Y (voltage) axis of the Izhikevich phase plot (mV)
	PhaseY minmax.F32

	// Y axis of the gating-variable traces -- probabilities, fixed 0..1
	Prob minmax.F32

	// Y axis of the ionic-current traces
	Current minmax.F32
}

// Defaults restores all axis bounds to the initial zoom level.
func (pb *PlotBounds) Defaults() {
	pb.Time.Min, pb.Time.Max = 0, 200
	pb.Vm.Min, pb.Vm.Max = -80, 40
	pb.PhaseX.Min, pb.PhaseX.Max = -12, -10
	pb.PhaseY.Min, pb.PhaseY.Max = -80, 40
	pb.Prob.Min, pb.Prob.Max = 0, 1
	pb.Current.Min, pb.Current.Max = -20, 20
}

// UpdateVm expands the voltage-trace bounds to enclose a new sample.
// The X axis always advances to the current time.
func (pb *PlotBounds) UpdateVm(time, v float32) {
	if time > pb.Time.Max {
		pb.Time.Max = time
	}
	if v > pb.Vm.Max {
		pb.Vm.Max = v
	}
	if v < pb.Vm.Min {
		pb.Vm.Min = v - VmMargin
	}
}

// UpdatePhase expands the phase-plot bounds to enclose a new
// (recovery, voltage) point.
func (pb *PlotBounds) UpdatePhase(u, v float32) {
	if u > pb.PhaseX.Max {
		pb.PhaseX.Max = u
	}
	if u < pb.PhaseX.Min {
		pb.PhaseX.Min = u
	}
	if v > pb.PhaseY.Max {
		pb.PhaseY.Max = v
	}
	if v < pb.PhaseY.Min {
		pb.PhaseY.Min = v - VmMargin
	}
}

// UpdateCurrents expands the current-trace bounds to enclose new ionic
// current samples.
func (pb *PlotBounds) UpdateCurrents(iNa, iK, iLeak float32) {
	for _, c := range [3]float32{iNa, iK, iLeak} {
		if c > pb.Current.Max {
			pb.Current.Max = c
		}
		if c < pb.Current.Min {
			pb.Current.Min = c - CurrentMargin
		}
	}
}
