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

import (
	"github.com/aadler/lamW/workerpool"
	"golang.org/x/exp/constraints"
)

// Parallel tuning parameters for slice evaluation.
const (
	// MinParallelOps is the element count below which ParallelEval stays on
	// the calling goroutine.
	MinParallelOps = 16384

	// ParallelBatch is the number of elements a worker claims per grab.
	ParallelBatch = 2048
)

// ParallelEval computes W_b(input[i]) into output[i] like EvalSlice, spreading
// the work over pool. The result is identical to EvalSlice for any number of
// workers.
//
// Falls back to sequential execution when pool is nil or the element count is
// below MinParallelOps.
func ParallelEval[T constraints.Float](pool *workerpool.Pool, b Branch, input, output []T) {
	ParallelEvalBatched(pool, b, input, output, ParallelBatch)
}

// ParallelEvalBatched is ParallelEval with an explicit batch size. batch ≤ 0
// selects ParallelBatch.
func ParallelEvalBatched[T constraints.Float](pool *workerpool.Pool, b Branch, input, output []T, batch int) {
	size := min(len(input), len(output))
	if size == 0 {
		return
	}
	input, output = input[:size], output[:size]

	if pool == nil || size < MinParallelOps {
		evalRange(b, input, output)
		return
	}
	if batch <= 0 {
		batch = ParallelBatch
	}

	pool.ParallelForAtomicBatched(size, batch, func(start, end int) {
		evalRange(b, input[start:end], output[start:end])
	})
}

// ParallelW0 computes the principal branch of input into output using pool.
func ParallelW0[T constraints.Float](pool *workerpool.Pool, input, output []T) {
	ParallelEval(pool, Principal, input, output)
}

// ParallelWm1 computes the secondary branch of input into output using pool.
func ParallelWm1[T constraints.Float](pool *workerpool.Pool, input, output []T) {
	ParallelEval(pool, Secondary, input, output)
}
