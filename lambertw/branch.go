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
	"errors"
	"fmt"
	"math"
	"strings"
)

// Branch selects one of the two real branches of the Lambert W function.
type Branch int

const (
	// Principal is W₀, the branch with W ≥ -1.
	Principal Branch = iota

	// Secondary is W₋₁, the branch with W ≤ -1.
	Secondary
)

// ErrUnknownBranch is returned by ParseBranch for names it does not recognise.
var ErrUnknownBranch = errors.New("lambertw: unknown branch")

// String returns the conventional short name of the branch.
func (b Branch) String() string {
	switch b {
	case Principal:
		return "W0"
	case Secondary:
		return "Wm1"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the defined branches.
func (b Branch) Valid() bool {
	return b == Principal || b == Secondary
}

// Contains reports whether x lies in the real domain of the branch, where the
// result is finite. NaN is never contained.
func (b Branch) Contains(x float64) bool {
	switch b {
	case Principal:
		return x >= -invE && x < math.Inf(1)
	case Secondary:
		return x >= -invE && x < 0
	default:
		return false
	}
}

// ParseBranch converts a user-supplied branch name into a Branch.
// Matching is case-insensitive.
func ParseBranch(s string) (Branch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w0", "0", "principal":
		return Principal, nil
	case "wm1", "w-1", "-1", "secondary":
		return Secondary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBranch, s)
}
