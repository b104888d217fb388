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

package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/aadler/lamW/internal/config"
	"github.com/aadler/lamW/internal/logger"
	"github.com/aadler/lamW/internal/numio"
	"github.com/aadler/lamW/lambertw"
)

func newBranchCmd(opts *options, name, short string) *cobra.Command {
	b, err := lambertw.ParseBranch(name)
	if err != nil {
		panic(err)
	}
	return &cobra.Command{
		Use:   name + " [x...]",
		Short: "Evaluate the " + short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			return runEval(cmd, opts, cfg, b, args)
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [x...]",
		Short: "Evaluate the branch selected by --branch or the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			b, err := cfg.BranchValue()
			if err != nil {
				return err
			}
			return runEval(cmd, opts, cfg, b, args)
		},
	}
	cmd.Flags().StringP("branch", "b", "", "branch: w0 or wm1 (default from config, w0)")
	return cmd
}

// runEval evaluates branch b over the input values and prints one result per
// line.
func runEval(cmd *cobra.Command, opts *options, cfg config.Config, b lambertw.Branch, args []string) error {
	xs, err := opts.values(cmd, args)
	if err != nil {
		return err
	}

	pool := cfg.NewPool()
	if pool != nil {
		defer pool.Close()
	}

	start := time.Now()
	out := make([]float64, len(xs))
	lambertw.ParallelEvalBatched(pool, b, xs, out, cfg.Batch)

	logger.L().Debug("evaluated",
		"branch", b.String(),
		"count", len(xs),
		"nan", countNaN(out),
		"elapsed", time.Since(start),
	)
	if err := numio.WriteFloats(cmd.OutOrStdout(), cfg.Format, out); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func countNaN(xs []float64) int {
	n := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			n++
		}
	}
	return n
}
