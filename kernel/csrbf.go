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

// support holds the radius of a compactly supported kernel and evaluates the
// normalised coordinate t = x/r and its complement s = 1 - t.
type support[T autodiff.Real[T]] struct {
	r T
}

func (p support[T]) outside(x T) bool { return x.Float64() >= p.r.Float64() }

func (p support[T]) ts(x T) (t, s T) {
	t = x.Div(p.r)
	return t, x.Const(1).Sub(t)
}

// rpow returns r^n.
func (p support[T]) rpow(n int) T { return p.r.Powi(n) }

// Csrbf31 is Wendland's compactly supported kernel φ₃,₁:
//
//	φ(x) = (1-t)⁴(4t+1), t = x/r, for x < r, and 0 otherwise.
//
// It is C² at the origin. GL and H are singular at x = 0.
type Csrbf31[T autodiff.Real[T]] struct {
	support[T]
}

// NewCsrbf31 returns a φ₃,₁ kernel with support radius r.
func NewCsrbf31[T autodiff.Real[T]](r T) Csrbf31[T] {
	return Csrbf31[T]{support[T]{r: r}}
}

// Radius returns the support radius.
func (k Csrbf31[T]) Radius() T { return k.r }

func (k Csrbf31[T]) F(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return s.Powi(4).Mul(poly(t, 1, 4))
}

func (k Csrbf31[T]) Df(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(-20).Mul(t).Mul(s.Powi(3)).Div(k.r)
}

func (k Csrbf31[T]) Ddf(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(20).Mul(s.Mul(s)).Mul(poly(t, -1, 4)).Div(k.rpow(2))
}

func (k Csrbf31[T]) Dddf(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(120).Mul(s).Mul(poly(t, 1, -2)).Div(k.rpow(3))
}

func (k Csrbf31[T]) Ddddf(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, _ := k.ts(x)
	return x.Const(120).Mul(poly(t, -3, 4)).Div(k.rpow(4))
}

func (k Csrbf31[T]) DfL(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	_, s := k.ts(x)
	return x.Const(-20).Mul(s.Powi(3)).Div(k.rpow(2))
}

func (k Csrbf31[T]) G(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	_, s := k.ts(x)
	return x.Const(60).Mul(s.Mul(s)).Div(k.rpow(3))
}

func (k Csrbf31[T]) GL(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	_, s := k.ts(x)
	return x.Const(60).Mul(s.Mul(s)).Div(k.rpow(3).Mul(x))
}

func (k Csrbf31[T]) H(x, n T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	// 60 s (2(1-2t) - n s) / (r³ x)
	q := poly(t, 2, -4).Sub(n.Mul(s))
	return x.Const(60).Mul(s).Mul(q).Div(k.rpow(3).Mul(x))
}

// Csrbf42 is Wendland's compactly supported kernel φ₃,₂:
//
//	φ(x) = (1-t)⁶(35t²+18t+3), t = x/r, for x < r, and 0 otherwise.
//
// It is C⁴ at the origin and all of its quotient forms are finite there.
type Csrbf42[T autodiff.Real[T]] struct {
	support[T]
}

// NewCsrbf42 returns a φ₃,₂ kernel with support radius r.
func NewCsrbf42[T autodiff.Real[T]](r T) Csrbf42[T] {
	return Csrbf42[T]{support[T]{r: r}}
}

// Radius returns the support radius.
func (k Csrbf42[T]) Radius() T { return k.r }

func (k Csrbf42[T]) F(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return s.Powi(6).Mul(poly(t, 3, 18, 35))
}

func (k Csrbf42[T]) Df(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(-56).Mul(t).Mul(s.Powi(5)).Mul(poly(t, 1, 5)).Div(k.r)
}

func (k Csrbf42[T]) Ddf(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(56).Mul(s.Powi(4)).Mul(poly(t, -1, -4, 35)).Div(k.rpow(2))
}

func (k Csrbf42[T]) Dddf(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(1680).Mul(t).Mul(s.Powi(3)).Mul(poly(t, 3, -7)).Div(k.rpow(3))
}

func (k Csrbf42[T]) Ddddf(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(1680).Mul(s.Mul(s)).Mul(poly(t, 3, -26, 35)).Div(k.rpow(4))
}

func (k Csrbf42[T]) DfL(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(-56).Mul(s.Powi(5)).Mul(poly(t, 1, 5)).Div(k.rpow(2))
}

func (k Csrbf42[T]) G(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	return x.Const(1680).Mul(t).Mul(s.Powi(4)).Div(k.rpow(3))
}

func (k Csrbf42[T]) GL(x T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	_, s := k.ts(x)
	return x.Const(1680).Mul(s.Powi(4)).Div(k.rpow(4))
}

func (k Csrbf42[T]) H(x, n T) T {
	if k.outside(x) {
		return x.Const(0)
	}
	t, s := k.ts(x)
	q := poly(t, 3, -7).Sub(n.Mul(s))
	return x.Const(1680).Mul(s.Powi(3)).Mul(q).Div(k.rpow(4))
}
