// Copyright 2025 go-hrbf Authors
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

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-hrbf/autodiff"
	"github.com/ajroetker/go-hrbf/internal/workerpool"
	"github.com/ajroetker/go-hrbf/kernel"
)

type tableOptions struct {
	kernel   string
	radius   float64
	from, to float64
	steps    int
	n        float64
	workers  int
}

func newTableCmd(root *rootOptions) *cobra.Command {
	opts := &tableOptions{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a kernel and its derivatives over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.steps < 1 {
				return fmt.Errorf("steps must be at least 1, got %d", opts.steps)
			}
			k, err := kernel.New(opts.kernel, autodiff.Float(opts.radius))
			if err != nil {
				return err
			}
			root.logger.Debug("tabulating",
				zap.String("kernel", opts.kernel),
				zap.Float64("from", opts.from),
				zap.Float64("to", opts.to),
				zap.Int("steps", opts.steps))

			pool := workerpool.New(opts.workers)
			defer pool.Close()
			rows := tabulate(pool, k, opts.from, opts.to, opts.steps, autodiff.Float(opts.n))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "x\tf\tdf\tddf\tdddf\tddddf\tdf_l\tg\tg_l\th\t")
			for _, row := range rows {
				for _, v := range row {
					fmt.Fprintf(tw, "%.6g\t", v)
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.kernel, "kernel", "k", kernel.NameGauss, "Kernel name")
	f.Float64Var(&opts.radius, "radius", 2, "Radius of gauss and csrbf kernels")
	f.Float64Var(&opts.from, "from", 0, "First x")
	f.Float64Var(&opts.to, "to", 3, "Last x")
	f.IntVar(&opts.steps, "steps", 12, "Number of intervals")
	f.Float64Var(&opts.n, "n", 3, "Exponent n of h(x, n)")
	f.IntVar(&opts.workers, "workers", 0, "Worker goroutines (default GOMAXPROCS)")
	return cmd
}

// tabulate evaluates x and the nine kernel quantities at steps+1 evenly
// spaced points of [from, to].
func tabulate(pool *workerpool.Pool, k kernel.Kernel[autodiff.Float], from, to float64, steps int, n autodiff.Float) [][10]float64 {
	rows := make([][10]float64, steps+1)
	pool.ParallelFor(len(rows), func(start, end int) {
		for i := start; i < end; i++ {
			x := autodiff.Float(from + (to-from)*float64(i)/float64(steps))
			rows[i] = [10]float64{
				float64(x), float64(k.F(x)), float64(k.Df(x)), float64(k.Ddf(x)),
				float64(k.Dddf(x)), float64(k.Ddddf(x)), float64(k.DfL(x)),
				float64(k.G(x)), float64(k.GL(x)), float64(k.H(x, n)),
			}
		}
	})
	return rows
}
