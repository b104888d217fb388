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

// =============================================================================
// Domain and convergence constants
// =============================================================================

const (
	// eps is the double precision machine epsilon. It is both the tolerance
	// for recognising the branch point and the convergence bound of refine.
	eps = 2.2204460492503131e-16

	// invE is 1/e, the magnitude of the branch point.
	invE = 1.0 / math.E

	// identityBound is the largest |x| for which W₀(x) == x in double precision.
	identityBound = 1e-16

	// maxFritschIter caps the refinement loop.
	maxFritschIter = 5

	// minNormal is the smallest positive normal float64.
	minNormal = 0x1p-1022
)

// =============================================================================
// Regime boundaries for the initial guess
// =============================================================================

const (
	// minimaxBound is the largest |x| handled by the W₀ minimax polynomial.
	minimaxBound = 6.4e-3

	// padeUpperW0 is the largest x handled by the W₀ branch-point approximant.
	// Above it the asymptotic series takes over.
	padeUpperW0 = math.E

	// padeUpperWm1 is the largest x handled by the W₋₁ branch-point
	// approximant. Above it the asymptotic series takes over.
	padeUpperWm1 = -0.25
)

// =============================================================================
// Approximant coefficients
// =============================================================================

// Degree-6 minimax polynomial for W₀ on [-6.4e-3, 6.4e-3], highest degree first.
var minimaxW0 = [...]float64{
	-1.0805085529250425e1,
	5.2100070265741278,
	-2.6666665063383532,
	1.4999999657268301,
	-1.0000000000016802,
	1.0000000000001752,
	2.6020852139652106e-18,
}

// (2,2) Padé approximant in p to -1 + p - p²/3 + 11p³/72 - 43p⁴/540.
const (
	padeN2 = 0.2787037037037037
	padeN1 = 0.311111111111111
	padeD2 = 0.0768518518518518
	padeD1 = 0.688888888888889
)
