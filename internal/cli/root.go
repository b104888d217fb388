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

// Package cli implements the lamw command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aadler/lamW/internal/config"
	"github.com/aadler/lamW/internal/logger"
	"github.com/aadler/lamW/internal/numio"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	debug      bool
	logJSON    bool
	configPath string
	input      string
	format     string
	workers    int

	restoreLog func()
}

// Execute runs the lamw command and exits the process with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Tests drive it through SetArgs, SetIn
// and SetOut.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lamw",
		Short: "Evaluate the real branches of the Lambert W function",
		Long: `lamw evaluates W0 (principal) and Wm1 (secondary) branches of the
Lambert W function, the inverse of w·exp(w).

Values come from the arguments or, when there are none, from --input
(default stdin). Put negative arguments after "--", e.g.

  lamw wm1 -- -0.1 -0.2`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.restoreLog = logger.Setup(logger.Config{
				Debug:  opts.debug,
				JSON:   opts.logJSON,
				Writer: cmd.ErrOrStderr(),
			})
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.restoreLog != nil {
				opts.restoreLog()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	pf.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")
	pf.StringVar(&opts.configPath, "config", "", "YAML settings file")
	pf.StringVarP(&opts.input, "input", "i", "-", "input file (.gz and .zst are decompressed), - for stdin")
	pf.StringVar(&opts.format, "format", "", "fmt verb for each result (default from config, %v)")
	pf.IntVarP(&opts.workers, "workers", "w", 0, "worker count for large inputs, 0 for GOMAXPROCS")

	cmd.AddCommand(
		newBranchCmd(opts, "w0", "principal branch W0(x), defined for x >= -1/e"),
		newBranchCmd(opts, "wm1", "secondary branch W-1(x), defined for -1/e <= x < 0"),
		newEvalCmd(opts),
		newCheckCmd(opts),
	)
	return cmd
}

// settings resolves the configuration: defaults, then --config, then the
// LAMW_* environment, then explicitly set flags.
func (o *options) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = o.workers
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = o.format
	}
	if cmd.Flags().Changed("branch") {
		v, _ := cmd.Flags().GetString("branch")
		cfg.Branch = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	logger.L().Debug("config.resolved",
		"path", o.configPath,
		"workers", cfg.Workers,
		"parallel", cfg.Parallel,
		"batch", cfg.Batch,
		"branch", cfg.Branch,
	)
	return cfg, nil
}

// values returns the numbers to evaluate: the positional arguments if any,
// otherwise the contents of --input.
func (o *options) values(cmd *cobra.Command, args []string) ([]float64, error) {
	if len(args) > 0 {
		xs := make([]float64, len(args))
		for i, a := range args {
			x, err := numio.ParseFloat(a)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			xs[i] = x
		}
		return xs, nil
	}

	var r io.Reader
	if o.input == "-" {
		r = cmd.InOrStdin()
	} else {
		rc, err := numio.Open(o.input)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		r = rc
	}

	xs, err := numio.ReadFloats(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.input, err)
	}
	logger.L().Debug("input.read", "source", o.input, "count", len(xs))
	return xs, nil
}
