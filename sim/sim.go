// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim provides the simulation orchestrator: a run/pause/reset state
machine that steps the active neuron model (and its synapse, when two
neurons are coupled) once per tick, records the resulting voltages, gates,
currents and phase coordinates into fixed-capacity time-series tables, and
maintains the auto-scaling plot bounds for the presentation layer.

The orchestrator is single-threaded and cooperative: Tick is called once
per rendering frame from one control loop; Reset synchronously destroys
the live models.  The Sim exclusively owns the model handles; synapses
hold only non-owning references into neurons created in the same Start
call and are severed together with them on Reset.
*/
package sim

import (
	"fmt"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"

	"github.com/Marshmallow-963/neurolab/hh"
	"github.com/Marshmallow-963/neurolab/izhi"
	"github.com/Marshmallow-963/neurolab/synapse"
)

// MaxPlotPoints is the default time-series buffer capacity: with the
// default step the full run covers (MaxPlotPoints-1) * 0.01 = 500 msec.
const MaxPlotPoints = 50001

// DefaultDt is the default integration time step in msec.
const DefaultDt = 0.01

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// ModelType selects the active neuron model kind.
type ModelType int32

//go:generate stringer -type=ModelType

var KiT_ModelType = kit.Enums.AddEnum(ModelTypeN, kit.NotBitFlag, nil)

// The neuron model kinds
const (
	Izhikevich ModelType = iota
	HodgkinHuxley

	ModelTypeN
)

// Sim is the simulation orchestrator state.  Configuration fields
// (Dt, MaxPoints, Model, Pattern, Coupled, Receptor, GSyn) are read at
// Start; IExt is the GUI-controlled input read on every tick.
type Sim struct {

	// integration time step (msec)
	Dt float32 `def:"0.01"`

	// time-series buffer capacity -- the run stops when reached
	MaxPoints int `def:"50001"`

	// which neuron model to simulate
	Model ModelType

	// firing-pattern preset for the Izhikevich model
	Pattern izhi.FiringPattern

	// create a second neuron of the same kind, coupled by a synapse
	Coupled bool

	// receptor type of the coupling synapse
	Receptor synapse.Receptor

	// synaptic weight (max conductance) applied to the synapse at Start
	GSyn float32

	// externally injected current, controlled by the presentation layer
	// (clamped there to the slider range), pushed into the model each tick
	IExt float32

	// whether the simulation is advancing -- toggled by pause/resume
	Running bool

	// elapsed simulation time (msec)
	Time float32

	// number of samples recorded so far
	Count int

	// live Izhikevich model (nil unless started in Izhikevich mode)
	Iz *izhi.Model

	// post-synaptic Izhikevich model when coupled
	IzPost *izhi.Model

	// live Hodgkin-Huxley model (nil unless started in HodgkinHuxley mode)
	Hh *hh.Model

	// post-synaptic Hodgkin-Huxley model when coupled
	HhPost *hh.Model

	// the coupling synapse when coupled
	Syn *synapse.Model

	// auto-scaling plot axis bounds
	Bounds PlotBounds

	// recorded time-series table for the active run
	Table *etable.Table `view:"no-inline"`

	// recorded (recovery, voltage) phase points for the Izhikevich model
	Phase []mat32.Vec2 `view:"-"`
}

// New returns a new Sim with default configuration, stopped, with no
// live models.
func New() *Sim {
	ss := &Sim{}
	ss.Defaults()
	ss.Table = &etable.Table{}
	return ss
}

// Defaults sets default configuration values and plot bounds.
func (ss *Sim) Defaults() {
	ss.Dt = DefaultDt
	ss.MaxPoints = MaxPlotPoints
	ss.Model = Izhikevich
	ss.Pattern = izhi.RegularSpiking
	ss.Receptor = synapse.AMPA
	ss.Bounds.Defaults()
}

// Live returns whether any neuron model exists (started, running or paused).
func (ss *Sim) Live() bool {
	return ss.Iz != nil || ss.Hh != nil
}

// Start allocates the selected model (and the coupled pair and synapse if
// configured) with the configured time step, configures the recording
// table, and sets the simulation running.  Errors if models already exist:
// Reset first.
func (ss *Sim) Start() error {
	if ss.Live() {
		return fmt.Errorf("sim: already started -- Reset first")
	}
	// build into locals first: a failed Start must leave the Sim fully
	// stopped, with no live models
	switch ss.Model {
	case Izhikevich:
		md, err := izhi.New(ss.Pattern, ss.Dt)
		if err != nil {
			return err
		}
		if ss.Coupled {
			post, err := izhi.New(ss.Pattern, ss.Dt)
			if err != nil {
				return err
			}
			sy, err := synapse.New(synapse.Preset(ss.Receptor, true), ss.Dt)
			if err != nil {
				return err
			}
			if err := sy.Connect(md.VmPtr(), post.VmPtr(), post.ISynPtr()); err != nil {
				return err
			}
			sy.SetGMax(ss.GSyn)
			ss.IzPost = post
			ss.Syn = sy
		}
		ss.Iz = md
	case HodgkinHuxley:
		md, err := hh.New(ss.Dt)
		if err != nil {
			return err
		}
		if ss.Coupled {
			post, err := hh.New(ss.Dt)
			if err != nil {
				return err
			}
			sy, err := synapse.New(synapse.Preset(ss.Receptor, false), ss.Dt)
			if err != nil {
				return err
			}
			if err := sy.Connect(md.VmPtr(), post.VmPtr(), post.ISynPtr()); err != nil {
				return err
			}
			sy.SetGMax(ss.GSyn)
			ss.HhPost = post
			ss.Syn = sy
		}
		ss.Hh = md
	default:
		return fmt.Errorf("sim: unknown model type: %v", ss.Model)
	}
	ss.ConfigTable(ss.Table)
	ss.Phase = make([]mat32.Vec2, ss.MaxPoints)
	ss.Running = true
	return nil
}

// Toggle flips the run/pause flag without destroying the models.
// It has no effect unless a model exists.
func (ss *Sim) Toggle() {
	if ss.Live() {
		ss.Running = !ss.Running
	}
}

// Reset destroys any live models and synapse, zeroes elapsed time and the
// sample counter, restores the plot bounds to defaults, and stops.
// Ticking after Reset (without a new Start) is a no-op.
func (ss *Sim) Reset() {
	ss.Running = false
	ss.Time = 0
	ss.Count = 0
	ss.Iz = nil
	ss.IzPost = nil
	ss.Hh = nil
	ss.HhPost = nil
	ss.Syn = nil
	ss.Phase = nil
	ss.Bounds.Defaults()
	ss.Table.SetNumRows(0)
}

// Tick advances the simulation by one step: it pushes the external
// current into the active model, updates it (and the synapse and
// post-synaptic neuron when coupled), records one sample row, expands the
// plot bounds, and advances time.  A tick that would exceed the buffer
// capacity stops the run instead (terminal condition, not an error).
func (ss *Sim) Tick() {
	if !ss.Running {
		return
	}
	if ss.Count >= ss.MaxPoints {
		ss.Running = false
		return
	}
	switch ss.Model {
	case Izhikevich:
		ss.stepIzhi()
	case HodgkinHuxley:
		ss.stepHH()
	}
	ss.Time += ss.Dt
	ss.Count++
}

func (ss *Sim) stepIzhi() {
	md := ss.Iz
	if md == nil {
		return
	}
	if ss.IzPost != nil {
		ss.IzPost.ISyn = 0 // zero the accumulator before any synapse writes
	}
	md.SetIExt(ss.IExt)
	v := md.Update()
	u := md.Recovery()

	row := ss.Count
	dt := ss.Table
	dt.SetCellFloat("Time", row, float64(ss.Time))
	dt.SetCellFloat("Vm", row, float64(v))
	dt.SetCellFloat("Recovery", row, float64(u))
	ss.Phase[row] = mat32.NewVec2(u, v)
	ss.Bounds.UpdateVm(ss.Time, v)
	ss.Bounds.UpdatePhase(u, v)

	if ss.Syn != nil && ss.IzPost != nil {
		ss.Syn.Update()
		v2 := ss.IzPost.Update()
		dt.SetCellFloat("Vm2", row, float64(v2))
		dt.SetCellFloat("ISyn", row, float64(ss.Syn.Current()))
	}
}

func (ss *Sim) stepHH() {
	md := ss.Hh
	if md == nil {
		return
	}
	if ss.HhPost != nil {
		ss.HhPost.ISyn = 0 // zero the accumulator before any synapse writes
	}
	md.SetIExt(ss.IExt)
	v := md.Update()

	row := ss.Count
	dt := ss.Table
	dt.SetCellFloat("Time", row, float64(ss.Time))
	dt.SetCellFloat("Vm", row, float64(v))
	dt.SetCellFloat("MGate", row, float64(md.MGate()))
	dt.SetCellFloat("HGate", row, float64(md.HGate()))
	dt.SetCellFloat("NGate", row, float64(md.NGate()))
	dt.SetCellFloat("INa", row, float64(md.INa))
	dt.SetCellFloat("IK", row, float64(md.IK))
	dt.SetCellFloat("ILeak", row, float64(md.ILeak))
	ss.Bounds.UpdateVm(ss.Time, v)
	ss.Bounds.UpdateCurrents(md.INa, md.IK, md.ILeak)

	if ss.Syn != nil && ss.HhPost != nil {
		ss.Syn.Update()
		v2 := ss.HhPost.Update()
		dt.SetCellFloat("Vm2", row, float64(v2))
		dt.SetCellFloat("ISyn", row, float64(ss.Syn.Current()))
	}
}

// ConfigTable configures the recording table schema for the active model
// kind and preallocates the full buffer capacity.
func (ss *Sim) ConfigTable(dt *etable.Table) {
	dt.SetMetaData("name", "NeuronTable")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
		{"Vm", etensor.FLOAT64, nil, nil},
	}
	switch ss.Model {
	case Izhikevich:
		sch = append(sch, etable.Column{"Recovery", etensor.FLOAT64, nil, nil})
	case HodgkinHuxley:
		sch = append(sch,
			etable.Column{"MGate", etensor.FLOAT64, nil, nil},
			etable.Column{"HGate", etensor.FLOAT64, nil, nil},
			etable.Column{"NGate", etensor.FLOAT64, nil, nil},
			etable.Column{"INa", etensor.FLOAT64, nil, nil},
			etable.Column{"IK", etensor.FLOAT64, nil, nil},
			etable.Column{"ILeak", etensor.FLOAT64, nil, nil},
		)
	}
	if ss.Coupled {
		sch = append(sch,
			etable.Column{"Vm2", etensor.FLOAT64, nil, nil},
			etable.Column{"ISyn", etensor.FLOAT64, nil, nil},
		)
	}
	dt.SetFromSchema(sch, ss.MaxPoints)
}
