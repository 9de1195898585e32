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

// Package check validates radial kernels against automatic differentiation.
//
// For a kernel k and a point x it evaluates k on the dual number Var(x) and
// compares
//
//	d/dx f = df, d/dx df = ddf, d/dx ddf = dddf, d/dx dddf = ddddf
//
// and, for x != 0, the quotient identities
//
//	x·df_l = df
//	x²·g   = x·ddf - df
//	x·g_l  = g
//	x³·h(x, n) = x²·dddf - n·(x·ddf - df),  n ∈ {3, 5/2}
//
// A [Suite] runs these checks for a set of kernels over fixed points with a
// ULP comparator and over seeded random samples with a relative comparator.
package check

import (
	"fmt"

	"github.com/ajroetker/go-hrbf/autodiff"
	"github.com/ajroetker/go-hrbf/internal/approx"
	"github.com/ajroetker/go-hrbf/kernel"
)

// Identity names reported in failures.
const (
	TowerF    = "d/dx f = df"
	TowerDf   = "d/dx df = ddf"
	TowerDdf  = "d/dx ddf = dddf"
	TowerDddf = "d/dx dddf = ddddf"
	QuotDfL   = "x·df_l = df"
	QuotG     = "x²·g = x·ddf - df"
	QuotGL    = "x·g_l = g"
	QuotH3    = "x³·h(x,3) = x²·dddf - 3(x·ddf - df)"
	QuotH52   = "x³·h(x,5/2) = x²·dddf - 5/2(x·ddf - df)"
)

// Failure is one identity that did not hold.
type Failure struct {
	Kernel   string  `yaml:"kernel"`
	Index    int     `yaml:"index"`
	X        float64 `yaml:"x"`
	Identity string  `yaml:"identity"`
	Got      float64 `yaml:"got"`
	Want     float64 `yaml:"want"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%s[%d] x=%v: %s: got %v, want %v (%d ulps)",
		f.Kernel, f.Index, f.X, f.Identity, f.Got, f.Want, approx.Distance(f.Got, f.Want))
}

// Kernel checks every identity of k at x0 and returns the ones that fail
// under cmp. The quotient identities are skipped at x0 == 0, where they are
// undefined. Kernel and Index of the returned failures are left unset.
func Kernel(k kernel.Kernel[autodiff.F], x0 float64, cmp approx.Comparator) []Failure {
	var fails []Failure
	expect := func(id string, got, want float64) {
		if !cmp.Eq(got, want) {
			fails = append(fails, Failure{X: x0, Identity: id, Got: got, Want: want})
		}
	}

	x := autodiff.Var(x0)
	f, df, ddf, dddf, ddddf := k.F(x), k.Df(x), k.Ddf(x), k.Dddf(x), k.Ddddf(x)
	expect(TowerF, f.Deriv(), df.Value())
	expect(TowerDf, df.Deriv(), ddf.Value())
	expect(TowerDdf, ddf.Deriv(), dddf.Value())
	expect(TowerDddf, dddf.Deriv(), ddddf.Value())

	if x0 == 0 {
		return fails
	}

	d1, d2, d3 := df.Value(), ddf.Value(), dddf.Value()
	dfL := k.DfL(x).Value()
	g := k.G(x).Value()
	gL := k.GL(x).Value()
	h3 := k.H(x, autodiff.Cst(3)).Value()
	h52 := k.H(x, autodiff.Cst(5.0/2)).Value()

	// Conversions round every product so that no multiply-add is fused.
	x2 := float64(x0 * x0)
	x3 := float64(x2 * x0)
	xddf := float64(x0 * d2)
	hRHS := func(n float64) float64 {
		return float64(x2*d3) - float64(n*float64(xddf-d1))
	}

	expect(QuotDfL, float64(x0*dfL), d1)
	expect(QuotG, float64(x2*g), float64(d2*x0)-d1)
	expect(QuotGL, float64(x0*gL), g)
	expect(QuotH3, float64(x3*h3), hRHS(3))
	expect(QuotH52, float64(x3*h52), hRHS(2.5))
	return fails
}
