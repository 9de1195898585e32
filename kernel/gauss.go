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

// Gauss is the Gaussian kernel φ(x) = exp(-x²/(2r²)) with shape radius r.
//
// With c = 1/r² all derivatives are a polynomial in x times φ(x), so every
// quotient form is finite at the origin.
type Gauss[T autodiff.Real[T]] struct {
	r T
	c T
}

// NewGauss returns a Gaussian kernel with shape radius r.
func NewGauss[T autodiff.Real[T]](r T) Gauss[T] {
	return Gauss[T]{r: r, c: r.Mul(r).Recip()}
}

// Radius returns the shape radius.
func (k Gauss[T]) Radius() T { return k.r }

// cx2 returns c·x².
func (k Gauss[T]) cx2(x T) T { return k.c.Mul(x).Mul(x) }

func (k Gauss[T]) F(x T) T {
	return k.cx2(x).Mul(x.Const(-0.5)).Exp()
}

func (k Gauss[T]) Df(x T) T {
	return k.c.Mul(x).Mul(k.F(x)).Neg()
}

func (k Gauss[T]) Ddf(x T) T {
	return k.c.Mul(k.cx2(x).Sub(x.Const(1))).Mul(k.F(x))
}

func (k Gauss[T]) Dddf(x T) T {
	c2 := k.c.Mul(k.c)
	return c2.Mul(x).Mul(x.Const(3).Sub(k.cx2(x))).Mul(k.F(x))
}

func (k Gauss[T]) Ddddf(x T) T {
	c2 := k.c.Mul(k.c)
	return c2.Mul(poly(k.cx2(x), 3, -6, 1)).Mul(k.F(x))
}

func (k Gauss[T]) DfL(x T) T {
	return k.c.Mul(k.F(x)).Neg()
}

func (k Gauss[T]) G(x T) T {
	return k.c.Mul(k.c).Mul(x).Mul(k.F(x))
}

func (k Gauss[T]) GL(x T) T {
	return k.c.Mul(k.c).Mul(k.F(x))
}

func (k Gauss[T]) H(x, n T) T {
	c2 := k.c.Mul(k.c)
	return c2.Mul(x.Const(3).Sub(n).Sub(k.cx2(x))).Mul(k.F(x))
}
