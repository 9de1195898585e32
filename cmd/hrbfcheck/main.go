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

// Command hrbfcheck validates the analytic kernel derivatives against
// automatic differentiation and tabulates kernel values.
//
// Usage:
//
//	hrbfcheck run                              # every kernel, default suite
//	hrbfcheck run --config suite.yaml          # suite from a YAML file
//	hrbfcheck run --kernel gauss --radius 0.5 --samples 10000
//	hrbfcheck table --kernel csrbf42 --radius 2 --from 0 --to 2.5 --steps 10
//	hrbfcheck env
//
// A suite file sets any subset of:
//
//	kernels: [pow2, gauss, csrbf31]
//	radius: 2
//	points: [0, 1, 0.5, 3.141592653589793]
//	max_ulps: 6
//	seed: 3
//	samples: 999
//	lo: -1
//	hi: 1
//	max_relative: 1e-12
//	epsilon: 1e-14
//
// run exits with status 1 when any identity fails.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "hrbfcheck",
		Short: "Validate and tabulate Hermite RBF kernels",
		Long: `hrbfcheck cross-checks the closed-form derivatives of the HRBF kernels
against forward-mode automatic differentiation, and prints kernel tables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd(opts), newTableCmd(opts), newEnvCmd(opts))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
