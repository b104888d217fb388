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

// initialGuess returns a starting point for refine. The caller has already
// removed NaN, the branch point, out-of-domain values and the identity
// region around 0.
func initialGuess(x float64, b Branch) float64 {
	if b == Secondary {
		if x <= padeUpperWm1 {
			return branchPointGuess(x, -1)
		}
		return asymptoticGuess(math.Log(-x), true)
	}

	switch {
	case math.Abs(x) <= minimaxBound:
		return minimaxGuess(x)
	case x <= padeUpperW0:
		return branchPointGuess(x, 1)
	default:
		return asymptoticGuess(math.Log(x), false)
	}
}

// minimaxGuess evaluates the degree-6 minimax polynomial for W₀ near 0 by
// Horner's rule.
func minimaxGuess(x float64) float64 {
	r := minimaxW0[0]
	for _, c := range minimaxW0[1:] {
		r = r*x + c
	}
	return r
}

// branchPointGuess evaluates the (2,2) Padé approximant of the series around
// the branch point, W = -1 + p - p²/3 + ..., with p = sign·√(2(e·x+1)).
// sign is +1 for W₀ and -1 for W₋₁.
func branchPointGuess(x, sign float64) float64 {
	p := sign * math.Sqrt(2*(math.E*x+1))
	num := (padeN2*p+padeN1)*p - 1
	den := (padeD2*p+padeD1)*p + 1
	return num / den
}

// asymptoticGuess applies the first five correction terms of
//
//	W = L1 - L2 + L2/L1 + L2(L2-2)/(2L1²) + L2(2L2²-9L2+6)/(6L1³) + ...
//
// to w = L1 = ln|x|. For W₋₁ both L1 and w are negative, so L2 = ln(-w).
func asymptoticGuess(w float64, negative bool) float64 {
	var l2 float64
	if negative {
		l2 = math.Log(-w)
	} else {
		l2 = math.Log(w)
	}
	l3 := l2 / w
	l3sq := l3 * l3
	return w - l2 + l3 + 0.5*l3sq - l3/w + l3/(w*w) - 1.5*l3sq/w + l3sq*l3/3
}
