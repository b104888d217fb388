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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aadler/lamW/lambertw"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [x...]",
		Short: "Print both branches and the residual w·exp(w) - x for each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			xs, err := opts.values(cmd, args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "x\tW0\tresidual\tWm1\tresidual")
			f := cfg.Format
			for _, x := range xs {
				w0 := lambertw.W0(x)
				wm1 := lambertw.Wm1(x)
				fmt.Fprintf(tw, f+"\t"+f+"\t"+f+"\t"+f+"\t"+f+"\n",
					x, w0, residual(x, w0), wm1, residual(x, wm1))
			}
			return tw.Flush()
		},
	}
}

// residual returns w·e^w - x, or NaN when w is not finite.
func residual(x, w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return math.NaN()
	}
	return w*math.Exp(w) - x
}
