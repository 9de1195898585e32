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
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

// Results are reproducible bit for bit only between machines that agree on
// GOARCH: the compiler may fuse multiply-adds on some architectures.
func newEnvCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the floating-point environment of this build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root.logger.Debug("environment",
				zap.String("goarch", runtime.GOARCH),
				zap.Bool("fma", hasFMA()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "target:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "fma:     %v\n", hasFMA())
			switch runtime.GOARCH {
			case "amd64", "386":
				fmt.Fprintf(out, "avx2:    %v\n", cpu.X86.HasAVX2)
				fmt.Fprintf(out, "avx512:  %v\n", cpu.X86.HasAVX512F)
			case "arm64":
				fmt.Fprintf(out, "asimd:   %v\n", cpu.ARM64.HasASIMD)
				fmt.Fprintf(out, "sve:     %v\n", cpu.ARM64.HasSVE)
			}
			return nil
		},
	}
}

// hasFMA reports whether the CPU executes fused multiply-add natively.
func hasFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64", "ppc64le", "ppc64", "s390x", "riscv64", "loong64":
		return true
	}
	return false
}
