// Copyright 2026 lamW Authors. SPDX-License-Identifier: Apache-2.0

package lambertw

import (
	"math"
	"testing"
)

func TestInitialGuessAccuracy(t *testing.T) {
	// Reference values are fully converged W values; the guesses only need to
	// land inside the basin of the Fritsch iteration.
	tests := []struct {
		name   string
		branch Branch
		x      float64
		want   float64
		tol    float64
	}{
		{"W0 minimax", Principal, 1e-3, 0.0009990014973385308, 1e-12},
		{"W0 minimax negative", Principal, -1e-3, -0.0010010015026718857, 1e-12},
		{"W0 minimax edge", Principal, 6.4e-3, 0.006359428797267739, 1e-12},
		{"W0 padé near branch point", Principal, -0.36, -0.8060843159708177, 1e-4},
		{"W0 padé", Principal, 1, 0.5671432904097838, 0.05},
		{"W0 padé low edge", Principal, 0.0065, 0.006458157236961892, 0.25},
		{"W0 asymptotic", Principal, 10, 1.7455280027406994, 0.01},
		{"W0 asymptotic large", Principal, 1e300, 684.2472086297608, 1e-11},
		{"Wm1 padé near branch point", Secondary, -0.36, -1.222770133978506, 1e-5},
		{"Wm1 padé edge", Secondary, -0.25, -2.1532923641103494, 0.01},
		{"Wm1 asymptotic", Secondary, -0.1, -3.577152063957297, 0.01},
		{"Wm1 asymptotic tiny", Secondary, -1e-300, -697.3227762954601, 1e-11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := initialGuess(tt.x, tt.branch)
			if e := relErr(got, tt.want); e > tt.tol {
				t.Errorf("initialGuess(%v, %v) = %v, want %v (rel err %.3g > %.3g)",
					tt.x, tt.branch, got, tt.want, e, tt.tol)
			}
		})
	}
}

func TestMinimaxMatchesTaylor(t *testing.T) {
	// W0(x) = x - x² + 3x³/2 - 8x⁴/3 + 125x⁵/24 - ...
	for _, x := range []float64{-5e-3, -1e-3, -1e-4, 1e-4, 1e-3, 5e-3} {
		taylor := x - x*x + 1.5*x*x*x - 8.0/3.0*x*x*x*x + 125.0/24.0*x*x*x*x*x
		if e := relErr(minimaxGuess(x), taylor); e > 1e-9 {
			t.Errorf("minimaxGuess(%v) = %v, taylor %v (rel err %.3g)", x, minimaxGuess(x), taylor, e)
		}
	}
}

func TestBranchPointGuessSeparatesBranches(t *testing.T) {
	for k := 1; k <= 14; k++ {
		x := -invE + math.Pow(10, -float64(k))
		upper := branchPointGuess(x, 1)
		lower := branchPointGuess(x, -1)
		if !(upper > -1 && lower < -1) {
			t.Errorf("x=-1/e+1e-%d: guesses %v (W0), %v (Wm1) not on either side of -1", k, upper, lower)
		}
	}
}

func TestAsymptoticGuessSign(t *testing.T) {
	if w := asymptoticGuess(math.Log(1e5), false); w <= 0 {
		t.Errorf("W0 asymptotic guess for 1e5 = %v, want > 0", w)
	}
	if w := asymptoticGuess(math.Log(1e-5), true); w >= -1 {
		t.Errorf("Wm1 asymptotic guess for -1e-5 = %v, want < -1", w)
	}
}
