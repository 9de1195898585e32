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
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-hrbf/internal/check"
	"github.com/ajroetker/go-hrbf/internal/workerpool"
)

var errIdentitiesFailed = errors.New("kernel identities failed")

type runOptions struct {
	config  string
	kernels []string
	radius  float64
	seed    uint64
	samples int
	workers int
	format  string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Check derivative towers and quotient identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := opts.suite(cmd)
			if err != nil {
				return err
			}
			return runSuite(cmd, root.logger, suite, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "YAML suite file")
	f.StringSliceVarP(&opts.kernels, "kernel", "k", nil, "Kernels to check (default all)")
	f.Float64Var(&opts.radius, "radius", 0, "Radius of gauss and csrbf kernels")
	f.Uint64Var(&opts.seed, "seed", 0, "Sampler seed")
	f.IntVar(&opts.samples, "samples", 0, "Number of random samples")
	f.IntVar(&opts.workers, "workers", 0, "Worker goroutines (default GOMAXPROCS)")
	f.StringVar(&opts.format, "format", "text", "Report format: text or yaml")
	return cmd
}

// suite loads the configured suite and applies explicitly set flags on top.
func (o *runOptions) suite(cmd *cobra.Command) (check.Suite, error) {
	s := check.DefaultSuite()
	if o.config != "" {
		var err error
		if s, err = check.LoadSuite(o.config); err != nil {
			return check.Suite{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("kernel") {
		s.Kernels = o.kernels
	}
	if f.Changed("radius") {
		s.Radius = o.radius
	}
	if f.Changed("seed") {
		s.Seed = o.seed
	}
	if f.Changed("samples") {
		s.Samples = o.samples
	}
	return s, s.Validate()
}

func runSuite(cmd *cobra.Command, logger *zap.Logger, s check.Suite, opts *runOptions) error {
	pool := workerpool.New(opts.workers)
	defer pool.Close()

	logger.Debug("running suite",
		zap.Strings("kernels", s.Kernels),
		zap.Float64("radius", s.Radius),
		zap.Uint64("seed", s.Seed),
		zap.Int("samples", s.Samples),
		zap.Int("workers", pool.Workers()))

	report, err := s.Run(cmd.Context(), pool)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	case "text":
		if err := writeReport(out, report); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	if !report.OK() {
		logger.Warn("identities failed", zap.Int("failures", report.Failed()))
		return fmt.Errorf("%w: %d failures", errIdentitiesFailed, report.Failed())
	}
	logger.Info("all identities hold", zap.Int("kernels", len(report.Kernels)))
	return nil
}

func writeReport(w io.Writer, r *check.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KERNEL\tPOINTS\tSAMPLES\tFAILED")
	for _, k := range r.Kernels {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", k.Name, k.Points, k.Samples, k.Failed())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, f := range r.Failures() {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}
