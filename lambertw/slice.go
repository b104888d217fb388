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

import "golang.org/x/exp/constraints"

// EvalSlice stores W_b(input[i]) in output[i] for every index covered by both
// slices. Elements are evaluated in float64 and converted to T on store.
func EvalSlice[T constraints.Float](b Branch, input, output []T) {
	size := min(len(input), len(output))
	if size == 0 {
		return
	}
	evalRange(b, input[:size], output[:size])
}

// W0Slice computes the principal branch for each element of input.
func W0Slice[T constraints.Float](input, output []T) {
	EvalSlice(Principal, input, output)
}

// Wm1Slice computes the secondary branch for each element of input.
func Wm1Slice[T constraints.Float](input, output []T) {
	EvalSlice(Secondary, input, output)
}

// LambertW0 returns a new slice holding W₀ of each element of x.
func LambertW0(x []float64) []float64 {
	out := make([]float64, len(x))
	W0Slice(x, out)
	return out
}

// LambertWm1 returns a new slice holding W₋₁ of each element of x.
func LambertWm1(x []float64) []float64 {
	out := make([]float64, len(x))
	Wm1Slice(x, out)
	return out
}

// evalRange is the inner loop shared by the sequential and parallel paths.
// input and output must have the same length.
func evalRange[T constraints.Float](b Branch, input, output []T) {
	switch b {
	case Principal:
		for i, x := range input {
			output[i] = T(W0(float64(x)))
		}
	case Secondary:
		for i, x := range input {
			output[i] = T(Wm1(float64(x)))
		}
	default:
		for i, x := range input {
			output[i] = T(Eval(float64(x), b))
		}
	}
}
