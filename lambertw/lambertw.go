// Copyright 2026 lamW Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lambertw

import "math"

// Eval returns W_b(x), the value of branch b of the Lambert W function at x.
//
// Out-of-domain inputs produce NaN rather than an error, the same way
// math.Sqrt(-1) does. An invalid Branch also yields NaN.
func Eval(x float64, b Branch) float64 {
	switch b {
	case Principal:
		return W0(x)
	case Secondary:
		return Wm1(x)
	default:
		return math.NaN()
	}
}

// W0 returns the principal branch W₀(x).
//
// Special cases are:
//
//	W0(+Inf) = +Inf
//	W0(x) = NaN if x < -1/e
//	W0(-1/e) = -1
//	W0(x) = x if |x| ≤ 1e-16
//	W0(NaN) = NaN
func W0(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 1):
		return x
	case x < -invE:
		return math.NaN()
	case math.Abs(x+invE) <= eps:
		return -1
	case math.Abs(x) <= identityBound:
		// Every term past x of the Taylor series is below half an ulp.
		return x
	}
	return refine(x, initialGuess(x, Principal))
}

// Wm1 returns the secondary branch W₋₁(x).
//
// Special cases are:
//
//	Wm1(±0) = -Inf
//	Wm1(x) = NaN if x < -1/e or x > 0
//	Wm1(-1/e) = -1
//	Wm1(NaN) = NaN
func Wm1(x float64) float64 {
	switch {
	case x == 0:
		return math.Inf(-1)
	case !(x >= -invE && x < 0):
		return math.NaN()
	case math.Abs(x+invE) <= eps:
		return -1
	}
	return refine(x, initialGuess(x, Secondary))
}
