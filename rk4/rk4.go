// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rk4 provides a generic fixed-step 4th-order Runge-Kutta integrator
for N-dimensional systems of ordinary differential equations.

The integrator owns four slope buffers (k1..k4) and one temporary state
buffer, all carved out of a single contiguous allocation made once at
construction time and reused for every step.  The live state vector is
supplied by the caller on each Step call and is mutated in place -- it is
never aliased with the scratch buffers.
*/
package rk4

import "fmt"

// DerivFunc computes the derivatives dy/dt for the current state,
// writing them into deriv.  Both slices have the system dimension N.
// Implementations may have side effects (e.g., recording derived
// observables such as ionic currents): the function is evaluated four
// times per step, and only the side effects of the last evaluation
// (at y_n + dt*k3) survive the step.
type DerivFunc func(state, deriv []float32)

// RK4 is a fixed-step classical Runge-Kutta integrator for one ODE system.
type RK4 struct {

	// dimension of the ODE system
	N int

	// integration time step
	Dt float32

	// the derivative function for the system
	Fn DerivFunc

	// single contiguous scratch allocation backing the k and tmp slices
	buf []float32

	// slope buffers for the four RK stages
	k1, k2, k3, k4 []float32

	// temporary state for the intermediate stage evaluations
	tmp []float32
}

// New returns an integrator for an n-dimensional system with the given
// derivative function and time step, allocating the 5*n floats of scratch
// space it needs.  Returns an error for a nil function or non-positive
// dimension or step.
func New(fn DerivFunc, n int, dt float32) (*RK4, error) {
	if fn == nil {
		return nil, fmt.Errorf("rk4.New: nil derivative function")
	}
	if n <= 0 {
		return nil, fmt.Errorf("rk4.New: invalid dimension: %d", n)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("rk4.New: invalid time step: %g", dt)
	}
	rk := &RK4{N: n, Dt: dt, Fn: fn}
	rk.buf = make([]float32, 5*n)
	rk.k1 = rk.buf[0:n]
	rk.k2 = rk.buf[n : 2*n]
	rk.k3 = rk.buf[2*n : 3*n]
	rk.k4 = rk.buf[3*n : 4*n]
	rk.tmp = rk.buf[4*n : 5*n]
	return rk, nil
}

// Step advances state by one time step in place, using the classical
// 4-stage update y_{n+1} = y_n + (dt/6)(k1 + 2k2 + 2k3 + k4).
// state must have length N.
func (rk *RK4) Step(state []float32) {
	n := rk.N
	dt := rk.Dt
	dtHalf := dt * 0.5

	// k1 = f(y_n)
	rk.Fn(state, rk.k1)

	// k2 = f(y_n + 0.5*dt*k1)
	for i := 0; i < n; i++ {
		rk.tmp[i] = state[i] + dtHalf*rk.k1[i]
	}
	rk.Fn(rk.tmp, rk.k2)

	// k3 = f(y_n + 0.5*dt*k2)
	for i := 0; i < n; i++ {
		rk.tmp[i] = state[i] + dtHalf*rk.k2[i]
	}
	rk.Fn(rk.tmp, rk.k3)

	// k4 = f(y_n + dt*k3)
	for i := 0; i < n; i++ {
		rk.tmp[i] = state[i] + dt*rk.k3[i]
	}
	rk.Fn(rk.tmp, rk.k4)

	dtSixth := dt / 6
	for i := 0; i < n; i++ {
		state[i] += (rk.k1[i] + 2*(rk.k2[i]+rk.k3[i]) + rk.k4[i]) * dtSixth
	}
}
