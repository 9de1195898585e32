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

package kernel

import "github.com/ajroetker/go-hrbf/autodiff"

// Pow2 is the kernel φ(x) = x².
type Pow2[T autodiff.Real[T]] struct{}

// NewPow2 returns the x² kernel.
func NewPow2[T autodiff.Real[T]]() Pow2[T] { return Pow2[T]{} }

func (Pow2[T]) F(x T) T     { return x.Mul(x) }
func (Pow2[T]) Df(x T) T    { return x.Const(2).Mul(x) }
func (Pow2[T]) Ddf(x T) T   { return x.Const(2) }
func (Pow2[T]) Dddf(x T) T  { return x.Const(0) }
func (Pow2[T]) Ddddf(x T) T { return x.Const(0) }
func (Pow2[T]) DfL(x T) T   { return x.Const(2) }
func (Pow2[T]) G(x T) T     { return x.Const(0) }
func (Pow2[T]) GL(x T) T    { return x.Const(0) }
func (Pow2[T]) H(x, _ T) T  { return x.Const(0) }

// Pow3 is the kernel φ(x) = x³.
type Pow3[T autodiff.Real[T]] struct{}

// NewPow3 returns the x³ kernel.
func NewPow3[T autodiff.Real[T]]() Pow3[T] { return Pow3[T]{} }

func (Pow3[T]) F(x T) T     { return x.Mul(x).Mul(x) }
func (Pow3[T]) Df(x T) T    { return x.Const(3).Mul(x).Mul(x) }
func (Pow3[T]) Ddf(x T) T   { return x.Const(6).Mul(x) }
func (Pow3[T]) Dddf(x T) T  { return x.Const(6) }
func (Pow3[T]) Ddddf(x T) T { return x.Const(0) }
func (Pow3[T]) DfL(x T) T   { return x.Const(3).Mul(x) }
func (Pow3[T]) G(x T) T     { return x.Const(3) }

// GL is singular at the origin.
func (Pow3[T]) GL(x T) T { return x.Const(3).Div(x) }

// H is singular at the origin.
func (Pow3[T]) H(x, n T) T {
	return x.Const(3).Mul(x.Const(2).Sub(n)).Div(x)
}

// Pow4 is the kernel φ(x) = x⁴.
type Pow4[T autodiff.Real[T]] struct{}

// NewPow4 returns the x⁴ kernel.
func NewPow4[T autodiff.Real[T]]() Pow4[T] { return Pow4[T]{} }

func (Pow4[T]) F(x T) T {
	x2 := x.Mul(x)
	return x2.Mul(x2)
}

func (Pow4[T]) Df(x T) T    { return x.Const(4).Mul(x).Mul(x).Mul(x) }
func (Pow4[T]) Ddf(x T) T   { return x.Const(12).Mul(x).Mul(x) }
func (Pow4[T]) Dddf(x T) T  { return x.Const(24).Mul(x) }
func (Pow4[T]) Ddddf(x T) T { return x.Const(24) }
func (Pow4[T]) DfL(x T) T   { return x.Const(4).Mul(x).Mul(x) }
func (Pow4[T]) G(x T) T     { return x.Const(8).Mul(x) }
func (Pow4[T]) GL(x T) T    { return x.Const(8) }
func (Pow4[T]) H(x, n T) T  { return x.Const(8).Mul(x.Const(3).Sub(n)) }

// Pow5 is the kernel φ(x) = x⁵.
type Pow5[T autodiff.Real[T]] struct{}

// NewPow5 returns the x⁵ kernel.
func NewPow5[T autodiff.Real[T]]() Pow5[T] { return Pow5[T]{} }

func (Pow5[T]) F(x T) T {
	x2 := x.Mul(x)
	return x2.Mul(x2).Mul(x)
}

func (Pow5[T]) Df(x T) T {
	x2 := x.Mul(x)
	return x.Const(5).Mul(x2).Mul(x2)
}

func (Pow5[T]) Ddf(x T) T   { return x.Const(20).Mul(x).Mul(x).Mul(x) }
func (Pow5[T]) Dddf(x T) T  { return x.Const(60).Mul(x).Mul(x) }
func (Pow5[T]) Ddddf(x T) T { return x.Const(120).Mul(x) }
func (Pow5[T]) DfL(x T) T   { return x.Const(5).Mul(x).Mul(x).Mul(x) }
func (Pow5[T]) G(x T) T     { return x.Const(15).Mul(x).Mul(x) }
func (Pow5[T]) GL(x T) T    { return x.Const(15).Mul(x) }
func (Pow5[T]) H(x, n T) T  { return x.Const(15).Mul(x.Const(4).Sub(n)).Mul(x) }
