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

package check

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-hrbf/autodiff"
	"github.com/ajroetker/go-hrbf/internal/approx"
	"github.com/ajroetker/go-hrbf/internal/workerpool"
	"github.com/ajroetker/go-hrbf/kernel"
)

// ErrInvalidSuite is returned for a suite that cannot be run.
var ErrInvalidSuite = errors.New("invalid suite")

// Suite configures a validation run.
type Suite struct {
	// Kernels to check, by name.
	Kernels []string `yaml:"kernels"`
	// Radius for the kernels that take one.
	Radius float64 `yaml:"radius"`

	// Points are checked with the ULP comparator.
	Points  []float64 `yaml:"points"`
	MaxULPs uint64    `yaml:"max_ulps"`

	// Samples points are drawn uniformly from [Lo, Hi) with Seed and checked
	// with the relative comparator.
	Seed        uint64  `yaml:"seed"`
	Samples     int     `yaml:"samples"`
	Lo          float64 `yaml:"lo"`
	Hi          float64 `yaml:"hi"`
	MaxRelative float64 `yaml:"max_relative"`
	Epsilon     float64 `yaml:"epsilon"`
}

// DefaultSuite checks every kernel with radius 2 at 0, 1, 0.5 and π within 6
// ULPs, and at 999 samples from [-1, 1) within a relative error of 1e-12 and
// an absolute error of 1e-14.
func DefaultSuite() Suite {
	return Suite{
		Kernels:     kernel.Names(),
		Radius:      2,
		Points:      []float64{0, 1, 0.5, math.Pi},
		MaxULPs:     6,
		Seed:        3,
		Samples:     999,
		Lo:          -1,
		Hi:          1,
		MaxRelative: 1e-12,
		Epsilon:     1e-14,
	}
}

// ParseSuite decodes a YAML suite. Fields not present keep their
// DefaultSuite values.
func ParseSuite(data []byte) (Suite, error) {
	s := DefaultSuite()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	return s, s.Validate()
}

// LoadSuite reads and decodes a YAML suite file.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("reading suite: %w", err)
	}
	s, err := ParseSuite(data)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate reports whether s can be run.
func (s Suite) Validate() error {
	if len(s.Kernels) == 0 {
		return fmt.Errorf("%w: no kernels", ErrInvalidSuite)
	}
	if dups := lo.FindDuplicates(s.Kernels); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate kernels %v", ErrInvalidSuite, dups)
	}
	for _, name := range s.Kernels {
		if _, err := kernel.New(name, autodiff.Float(s.Radius)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSuite, err)
		}
	}
	if s.Samples < 0 {
		return fmt.Errorf("%w: negative sample count %d", ErrInvalidSuite, s.Samples)
	}
	if s.Samples > 0 && !(s.Lo < s.Hi) {
		return fmt.Errorf("%w: empty sample interval [%v, %v)", ErrInvalidSuite, s.Lo, s.Hi)
	}
	if s.MaxRelative < 0 || s.Epsilon < 0 {
		return fmt.Errorf("%w: negative tolerance", ErrInvalidSuite)
	}
	return nil
}

// KernelReport holds the outcome for one kernel.
type KernelReport struct {
	Name           string    `yaml:"name"`
	Points         int       `yaml:"points"`
	Samples        int       `yaml:"samples"`
	PointFailures  []Failure `yaml:"point_failures,omitempty"`
	SampleFailures []Failure `yaml:"sample_failures,omitempty"`
}

// Failed returns the number of failed identities.
func (r KernelReport) Failed() int {
	return len(r.PointFailures) + len(r.SampleFailures)
}

// Report is the outcome of a suite run, with kernels in suite order and
// failures in point or sample order.
type Report struct {
	Suite   Suite          `yaml:"suite"`
	Kernels []KernelReport `yaml:"kernels"`
}

// Failed returns the total number of failed identities.
func (r *Report) Failed() int {
	return lo.SumBy(r.Kernels, func(k KernelReport) int { return k.Failed() })
}

// OK reports whether every identity held.
func (r *Report) OK() bool { return r.Failed() == 0 }

// Failures returns all failures, fixed points first within each kernel.
func (r *Report) Failures() []Failure {
	return lo.FlatMap(r.Kernels, func(k KernelReport, _ int) []Failure {
		return append(append([]Failure(nil), k.PointFailures...), k.SampleFailures...)
	})
}

// Run checks every kernel of s. Kernels run concurrently and samples are
// spread over pool. Every kernel sees the same sample sequence, so the report
// depends only on s.
func (s Suite) Run(ctx context.Context, pool *workerpool.Pool) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	samples := NewSampler(s.Seed, s.Lo, s.Hi).Draw(s.Samples)
	report := &Report{Suite: s, Kernels: make([]KernelReport, len(s.Kernels))}

	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range s.Kernels {
		eg.Go(func() error {
			k, err := kernel.New(name, autodiff.Cst(s.Radius))
			if err != nil {
				return err
			}
			kr, err := s.runKernel(ctx, pool, name, k, samples)
			if err != nil {
				return fmt.Errorf("kernel %s: %w", name, err)
			}
			report.Kernels[i] = kr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func (s Suite) runKernel(ctx context.Context, pool *workerpool.Pool, name string, k kernel.Kernel[autodiff.F], samples []float64) (KernelReport, error) {
	ulps := approx.ULPs{Epsilon: approx.Float64Epsilon, MaxULPs: s.MaxULPs}
	rel := approx.Relative{Epsilon: s.Epsilon, MaxRelative: s.MaxRelative}
	kr := KernelReport{Name: name, Points: len(s.Points), Samples: len(samples)}

	for i, x := range s.Points {
		kr.PointFailures = append(kr.PointFailures, label(Kernel(k, x, ulps), name, i)...)
	}

	perSample := make([][]Failure, len(samples))
	err := pool.ForEach(ctx, len(samples), func(i int) {
		perSample[i] = label(Kernel(k, samples[i], rel), name, i)
	})
	if err != nil {
		return kr, err
	}
	kr.SampleFailures = lo.Flatten(perSample)
	return kr, nil
}

func label(fails []Failure, name string, index int) []Failure {
	for i := range fails {
		fails[i].Kernel = name
		fails[i].Index = index
	}
	return fails
}
