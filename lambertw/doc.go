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

// Package lambertw evaluates the two real branches of the Lambert W function,
// the multivalued inverse of f(w) = w·e^w.
//
// # Branches
//
//   - Principal (W₀): defined for x ≥ -1/e, result ≥ -1.
//   - Secondary (W₋₁): defined for -1/e ≤ x < 0, result ≤ -1.
//
// Both branches meet at the branch point x = -1/e where W = -1.
//
// # Algorithm
//
// Each element is classified first (NaN, branch point, out of domain, the
// identity region around 0). Ordinary inputs get an initial guess from one of
// several approximants, chosen by the size of x:
//
//   - |x| ≤ 6.4e-3 on W₀: a degree-6 minimax polynomial.
//   - x near the branch point: a (2,2) Padé approximant in p = ±√(2(e·x+1)),
//     derived from the series of Corless et al. (4.22).
//   - large |log x|: the first five terms of the asymptotic series of
//     Corless et al. (4.19).
//
// The guess is then refined with Fritsch's iteration, which converges
// quartically and needs one logarithm per step and no exponentials.
//
// # Special values
//
//	W0(+Inf) = +Inf
//	W0(x) = NaN if x < -1/e
//	W0(±0) = ±0
//	Wm1(±0) = -Inf
//	Wm1(x) = NaN if x < -1/e or x > 0
//	W0(NaN) = Wm1(NaN) = NaN
//
// # Slices
//
// W0Slice, Wm1Slice and EvalSlice map the scalar kernel over a slice. For large
// inputs ParallelEval spreads the same work over a workerpool.Pool; results are
// identical to the sequential path.
//
// References:
//
// Corless, R. M.; Gonnet, G. H.; Hare, D. E.; Jeffrey, D. J. & Knuth, D. E.
// "On the Lambert W function", Advances in Computational Mathematics, 1996, 5,
// 329-359.
//
// Fritsch, F. N.; Shafer, R. E. & Crowley, W. P. "Algorithm 443: Solution of the
// transcendental equation w·e^w = x", Communications of the ACM, 1973, 16, 123-124.
package lambertw
