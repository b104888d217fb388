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

// Command lamw evaluates the real branches of the Lambert W function.
//
// Usage:
//
//	lamw w0 1 2.5 10
//	lamw wm1 -- -0.1 -0.3
//	lamw eval --branch wm1 -i values.txt.zst
//	seq 0 0.1 5 | lamw w0 --workers 4
//	lamw check -- -0.2 1
//
// Settings come from --config (YAML), then LAMW_WORKERS, LAMW_BATCH,
// LAMW_BRANCH and LAMW_NO_PARALLEL, then flags.
package main

import "github.com/aadler/lamW/internal/cli"

func main() {
	cli.Execute()
}
