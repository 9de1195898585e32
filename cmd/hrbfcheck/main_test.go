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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-hrbf/internal/check"
	"github.com/ajroetker/go-hrbf/kernel"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--kernel", "pow2,gauss", "--samples", "50")
	require.NoError(t, err, out)
	assert.Contains(t, out, "KERNEL")
	assert.Regexp(t, `pow2\s+4\s+50\s+0`, out)
	assert.Regexp(t, `gauss\s+4\s+50\s+0`, out)
	assert.NotContains(t, out, "csrbf42")
}

func TestRunYAML(t *testing.T) {
	out, err := execute(t, "run", "-k", "csrbf42", "--samples", "20", "--seed", "9", "--format", "yaml")
	require.NoError(t, err, out)

	var report check.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Kernels, 1)
	assert.Equal(t, "csrbf42", report.Kernels[0].Name)
	assert.Equal(t, 20, report.Kernels[0].Samples)
	assert.Equal(t, uint64(9), report.Suite.Seed)
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	// Zero tolerance turns rounding differences into failures.
	suite := "kernels: [gauss]\nsamples: 200\nmax_relative: 0\nepsilon: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(suite), 0o644))

	out, err := execute(t, "run", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errIdentitiesFailed), "got %v", err)
	assert.Contains(t, out, "gauss[")

	// Flags override the file.
	_, err = execute(t, "run", "--config", path, "--kernel", "pow2")
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "--kernel", "pow9")
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)

	_, err = execute(t, "run", "--kernel", "gauss", "--radius", "-1")
	assert.ErrorIs(t, err, kernel.ErrBadRadius)

	_, err = execute(t, "run", "--kernel", "pow2", "--format", "json", "--samples", "1")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table", "--kernel", "csrbf31", "--from", "0", "--to", "2.5", "--steps", "5")
	require.NoError(t, err, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "ddddf")
	// x = 2.5 is outside the support.
	fields := strings.Fields(lines[6])
	require.Len(t, fields, 10)
	assert.Equal(t, "2.5", fields[0])
	for _, f := range fields[1:] {
		assert.Equal(t, "0", f)
	}

	_, err = execute(t, "table", "--steps", "0")
	assert.Error(t, err)
}

func TestTableWorkers(t *testing.T) {
	args := []string{"table", "--kernel", "gauss", "--from", "-3", "--to", "3", "--steps", "40"}
	serial, err := execute(t, append(args, "--workers", "1")...)
	require.NoError(t, err)
	parallel, err := execute(t, append(args, "--workers", "4")...)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
	assert.Len(t, strings.Split(strings.TrimSpace(parallel), "\n"), 42)
}

func TestEnv(t *testing.T) {
	out, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "target:")
	assert.Contains(t, out, "fma:")
}
