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

package kernel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-hrbf/autodiff"
	"github.com/ajroetker/go-hrbf/internal/approx"
	"github.com/ajroetker/go-hrbf/internal/check"
	"github.com/ajroetker/go-hrbf/kernel"
)

const testRadius = 2.0

var (
	ulpCompare = approx.ULPs{Epsilon: approx.Float64Epsilon, MaxULPs: 6}
	relCompare = approx.Relative{Epsilon: 1e-14, MaxRelative: 1e-12}
)

func testKernelSimple(t *testing.T, k kernel.Kernel[autodiff.F]) {
	t.Helper()
	for _, x := range []float64{0, 1, 0.5, math.Pi} {
		for _, f := range check.Kernel(k, x, ulpCompare) {
			t.Error(f)
		}
	}
}

func testKernelRandom(t *testing.T, k kernel.Kernel[autodiff.F]) {
	t.Helper()
	s := check.NewSampler(3, -1, 1)
	for range 999 {
		for _, f := range check.Kernel(k, s.Next(), relCompare) {
			t.Error(f)
		}
	}
}

func TestKernels(t *testing.T) {
	r := autodiff.Cst(testRadius)
	tests := []struct {
		name string
		k    kernel.Kernel[autodiff.F]
	}{
		{"pow2", kernel.NewPow2[autodiff.F]()},
		{"pow3", kernel.NewPow3[autodiff.F]()},
		{"pow4", kernel.NewPow4[autodiff.F]()},
		{"pow5", kernel.NewPow5[autodiff.F]()},
		{"gauss", kernel.NewGauss(r)},
		{"csrbf31", kernel.NewCsrbf31(r)},
		{"csrbf42", kernel.NewCsrbf42(r)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testKernelSimple(t, tt.k)
			testKernelRandom(t, tt.k)
		})
	}
}

func TestPow2AtOne(t *testing.T) {
	k := kernel.NewPow2[autodiff.F]()
	x := autodiff.Var(1)
	assert.Equal(t, 1.0, k.F(x).Value())
	assert.Equal(t, 2.0, k.F(x).Deriv())
	assert.Equal(t, 2.0, k.Df(x).Value())
	assert.Equal(t, k.Ddf(x).Value(), k.Df(x).Deriv())
	assert.Equal(t, k.Df(x).Value(), k.DfL(x).Value()*1.0)
}

func TestValues(t *testing.T) {
	type fn func(x autodiff.Float) autodiff.Float
	r := autodiff.Float(testRadius)
	gauss := kernel.NewGauss(r)
	c31 := kernel.NewCsrbf31(r)
	c42 := kernel.NewCsrbf42(r)
	tests := []struct {
		name string
		f    fn
		x    float64
		want float64
	}{
		{"pow3", kernel.NewPow3[autodiff.Float]().F, 2, 8},
		{"pow4 ddddf", kernel.NewPow4[autodiff.Float]().Ddddf, 5, 24},
		{"pow5 ddddf", kernel.NewPow5[autodiff.Float]().Ddddf, 0.5, 60},
		{"gauss at 0", gauss.F, 0, 1},
		{"gauss at r", gauss.F, testRadius, math.Exp(-0.5)},
		{"gauss ddf at 0", gauss.Ddf, 0, -1 / (testRadius * testRadius)},
		{"csrbf31 at 0", c31.F, 0, 1},
		{"csrbf31 at r/2", c31.F, 1, 3.0 / 16},
		{"csrbf31 ddddf at 0", c31.Ddddf, 0, -360 / math.Pow(testRadius, 4)},
		{"csrbf42 at 0", c42.F, 0, 3},
		{"csrbf42 at r/2", c42.F, 1, (35.0/4 + 9 + 3) / 64},
		{"csrbf42 ddddf at 0", c42.Ddddf, 0, 5040 / math.Pow(testRadius, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(tt.f(autodiff.Float(tt.x)))
			assert.Truef(t, ulpCompare.Eq(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestCompactSupport(t *testing.T) {
	r := autodiff.Float(testRadius)
	n := autodiff.Float(3)
	for _, k := range []kernel.Kernel[autodiff.Float]{kernel.NewCsrbf31(r), kernel.NewCsrbf42(r)} {
		for _, x := range []autodiff.Float{r, r + 0.5, 100} {
			for _, v := range []autodiff.Float{
				k.F(x), k.Df(x), k.Ddf(x), k.Dddf(x), k.Ddddf(x),
				k.DfL(x), k.G(x), k.GL(x), k.H(x, n),
			} {
				assert.Equal(t, autodiff.Float(0), v)
			}
		}
		// The polynomial piece vanishes at the boundary too.
		x := autodiff.Float(math.Nextafter(testRadius, 0))
		assert.InDelta(t, 0, float64(k.F(x)), 1e-30)
		assert.InDelta(t, 0, float64(k.Df(x)), 1e-30)
	}
}

func TestQuotientsFiniteAtOrigin(t *testing.T) {
	r := autodiff.Float(testRadius)
	zero := autodiff.Float(0)
	tests := []struct {
		name string
		k    kernel.Kernel[autodiff.Float]
		// GL and H are singular at the origin for some kernels.
		singular bool
	}{
		{"pow2", kernel.NewPow2[autodiff.Float](), false},
		{"pow3", kernel.NewPow3[autodiff.Float](), true},
		{"pow4", kernel.NewPow4[autodiff.Float](), false},
		{"pow5", kernel.NewPow5[autodiff.Float](), false},
		{"gauss", kernel.NewGauss(r), false},
		{"csrbf31", kernel.NewCsrbf31(r), true},
		{"csrbf42", kernel.NewCsrbf42(r), false},
	}
	finite := func(v autodiff.Float) bool {
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, finite(tt.k.DfL(zero)), "DfL")
			assert.True(t, finite(tt.k.G(zero)), "G")
			gl, h := tt.k.GL(zero), tt.k.H(zero, 3)
			if tt.singular {
				assert.False(t, finite(gl) && finite(h), "GL and H")
				return
			}
			assert.True(t, finite(gl), "GL")
			assert.True(t, finite(h), "H")
		})
	}
}

func TestPlainAndDualAgree(t *testing.T) {
	rf := autodiff.Float(testRadius)
	rd := autodiff.Cst(testRadius)
	pairs := []struct {
		name  string
		plain kernel.Kernel[autodiff.Float]
		dual  kernel.Kernel[autodiff.F]
	}{
		{"pow5", kernel.NewPow5[autodiff.Float](), kernel.NewPow5[autodiff.F]()},
		{"gauss", kernel.NewGauss(rf), kernel.NewGauss(rd)},
		{"csrbf31", kernel.NewCsrbf31(rf), kernel.NewCsrbf31(rd)},
		{"csrbf42", kernel.NewCsrbf42(rf), kernel.NewCsrbf42(rd)},
	}
	s := check.NewSampler(7, -3, 3)
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for range 50 {
				x := s.Next()
				xf, xd := autodiff.Float(x), autodiff.Var(x)
				assert.Equal(t, float64(p.plain.F(xf)), p.dual.F(xd).Value())
				assert.Equal(t, float64(p.plain.Dddf(xf)), p.dual.Dddf(xd).Value())
				assert.Equal(t, float64(p.plain.H(xf, 2.5)), p.dual.H(xd, autodiff.Cst(2.5)).Value())
			}
		})
	}
}

func TestSecondDerivativeByNesting(t *testing.T) {
	r := autodiff.Cst(testRadius)
	k2 := kernel.NewGauss(autodiff.CstOf(r))
	k := kernel.NewGauss(autodiff.Float(testRadius))
	for _, x := range []float64{-1.5, -0.25, 0, 0.75, 3} {
		got := autodiff.Diff2(k2.F, x)
		want := float64(k.Ddf(autodiff.Float(x)))
		assert.Truef(t, relCompare.Eq(got, want), "φ''(%v) = %v, want %v", x, got, want)
	}
}

func TestNew(t *testing.T) {
	for _, name := range kernel.Names() {
		k, err := kernel.New(name, autodiff.Float(testRadius))
		require.NoError(t, err, name)
		require.NotNil(t, k, name)
	}

	k, err := kernel.New(kernel.NameGauss, autodiff.Float(1.5))
	require.NoError(t, err)
	assert.Equal(t, autodiff.Float(1.5), k.(kernel.Gauss[autodiff.Float]).Radius())

	// Pow kernels ignore the radius.
	_, err = kernel.New(kernel.NamePow3, autodiff.Float(-1))
	assert.NoError(t, err)

	_, err = kernel.New("pow6", autodiff.Float(1))
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)

	for _, r := range []float64{0, -2, math.Inf(1), math.NaN()} {
		_, err = kernel.New(kernel.NameCsrbf42, autodiff.Float(r))
		assert.True(t, errors.Is(err, kernel.ErrBadRadius), "radius %v: %v", r, err)
	}
}

func TestNameSets(t *testing.T) {
	assert.Len(t, kernel.Names(), 7)
	assert.True(t, kernel.IsLocal(kernel.NameCsrbf31))
	assert.False(t, kernel.IsLocal(kernel.NameGauss))
	assert.True(t, kernel.HasRadius(kernel.NameGauss))
	assert.False(t, kernel.HasRadius(kernel.NamePow2))

	names := kernel.Names()
	names[0] = "mutated"
	assert.Equal(t, kernel.NamePow2, kernel.Names()[0])
}
