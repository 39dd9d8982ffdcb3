// Copyright (c) 2025, The Neurolab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rates provides the classical Hodgkin-Huxley voltage-dependent
transition-rate functions (alpha and beta) for the m, h and n ion channel
gates, in the original shifted voltage convention (resting potential at
0 mV, spike peak near +100 mV), with rates in 1/msec.

AlphaM and AlphaN have removable singularities (at V = 25 and V = 10
respectively) where numerator and denominator both go to zero; both
special-case the singular voltage and return the analytic limit instead
of propagating NaN.
*/
package rates

import "github.com/chewxy/math32"

// AlphaM is the opening rate of the sodium activation gate m.
func AlphaM(v float32) float32 {
	if v == 25 {
		// analytic limit of the expression as v -> 25
		return 1
	}
	return (25 - v) / (10 * (math32.Exp((25-v)/10) - 1))
}

// BetaM is the closing rate of the sodium activation gate m.
func BetaM(v float32) float32 {
	return 4 * math32.Exp(-v/18)
}

// AlphaH is the opening rate of the sodium inactivation gate h.
func AlphaH(v float32) float32 {
	return 0.07 * math32.Exp(-v/20)
}

// BetaH is the closing rate of the sodium inactivation gate h.
func BetaH(v float32) float32 {
	return 1 / (math32.Exp((30-v)/10) + 1)
}

// AlphaN is the opening rate of the potassium activation gate n.
func AlphaN(v float32) float32 {
	if v == 10 {
		// analytic limit of the expression as v -> 10
		return 0.1
	}
	return (10 - v) / (100 * (math32.Exp((10-v)/10) - 1))
}

// BetaN is the closing rate of the potassium activation gate n.
func BetaN(v float32) float32 {
	return 0.125 * math32.Exp(-v/80)
}

// SteadyState returns the equilibrium gate value alpha / (alpha + beta)
// for a given alpha, beta rate pair.
func SteadyState(alpha, beta float32) float32 {
	return alpha / (alpha + beta)
}
