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

// refine improves an estimate w of W(x) with Fritsch's iteration:
//
//	z = ln(x/w) - w
//	q = 2(1+w)(1 + w + 2z/3)
//	e = z/(1+w) · (q-z)/(q-2z)
//	w ← w(1+e)
//
// The loop ends once |e| ≤ eps or after maxFritschIter steps; the last
// estimate is returned either way. w must be non-zero and share the sign of x.
func refine(x, w float64) float64 {
	for range maxFritschIter {
		z := logRatio(x, w) - w
		w1 := w + 1
		q := 2 * w1 * (w1 + 2.0/3.0*z)
		e := z / w1 * (q - z) / (q - 2*z)
		w *= 1 + e
		if math.Abs(e) <= eps {
			break
		}
	}
	return w
}

// logRatio returns ln(x/w). When the quotient would be subnormal it is split
// into a difference of logarithms.
func logRatio(x, w float64) float64 {
	if r := x / w; r >= minNormal {
		return math.Log(r)
	}
	return math.Log(math.Abs(x)) - math.Log(math.Abs(w))
}
