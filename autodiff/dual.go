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

package autodiff

import "fmt"

// Dual is a value together with its derivative with respect to a single
// independent variable. Duals are immutable; every method returns a new value.
type Dual[T Real[T]] struct {
	// X is the value.
	X T
	// DX is the derivative of X.
	DX T
}

// F is the first-order dual number over float64.
type F = Dual[Float]

// CstOf wraps x as a constant: its derivative is zero.
func CstOf[T Real[T]](x T) Dual[T] {
	return Dual[T]{X: x, DX: x.Const(0)}
}

// VarOf wraps x as the independent variable: its derivative is one.
func VarOf[T Real[T]](x T) Dual[T] {
	return Dual[T]{X: x, DX: x.Const(1)}
}

// Cst wraps v as a constant first-order dual number.
func Cst(v float64) F { return CstOf(Float(v)) }

// Var wraps v as the first-order independent variable.
func Var(v float64) F { return VarOf(Float(v)) }

// Value returns the value component as a float64.
func (a Dual[T]) Value() float64 { return a.X.Float64() }

// Deriv returns the innermost derivative component as a float64.
func (a Dual[T]) Deriv() float64 { return a.DX.Float64() }

func (a Dual[T]) String() string {
	return fmt.Sprintf("(%v + %vε)", a.X, a.DX)
}

func (a Dual[T]) Add(b Dual[T]) Dual[T] {
	return Dual[T]{X: a.X.Add(b.X), DX: a.DX.Add(b.DX)}
}

func (a Dual[T]) Sub(b Dual[T]) Dual[T] {
	return Dual[T]{X: a.X.Sub(b.X), DX: a.DX.Sub(b.DX)}
}

// Mul applies the product rule.
func (a Dual[T]) Mul(b Dual[T]) Dual[T] {
	return Dual[T]{
		X:  a.X.Mul(b.X),
		DX: a.DX.Mul(b.X).Add(a.X.Mul(b.DX)),
	}
}

// Div applies the quotient rule. A zero denominator yields ±Inf or NaN in
// both components.
func (a Dual[T]) Div(b Dual[T]) Dual[T] {
	return Dual[T]{
		X:  a.X.Div(b.X),
		DX: a.DX.Mul(b.X).Sub(a.X.Mul(b.DX)).Div(b.X.Mul(b.X)),
	}
}

func (a Dual[T]) Neg() Dual[T] {
	return Dual[T]{X: a.X.Neg(), DX: a.DX.Neg()}
}

func (a Dual[T]) Recip() Dual[T] {
	return Dual[T]{X: a.X.Recip(), DX: a.DX.Neg().Div(a.X.Mul(a.X))}
}

func (a Dual[T]) Exp() Dual[T] {
	e := a.X.Exp()
	return Dual[T]{X: e, DX: e.Mul(a.DX)}
}

func (a Dual[T]) Ln() Dual[T] {
	return Dual[T]{X: a.X.Ln(), DX: a.DX.Div(a.X)}
}

func (a Dual[T]) Sqrt() Dual[T] {
	s := a.X.Sqrt()
	return Dual[T]{X: s, DX: a.DX.Div(s.Add(s))}
}

// Powi raises a to the integer power n.
func (a Dual[T]) Powi(n int) Dual[T] {
	if n == 0 {
		return Dual[T]{X: a.X.Const(1), DX: a.X.Const(0)}
	}
	return Dual[T]{
		X:  a.X.Powi(n),
		DX: a.X.Const(float64(n)).Mul(a.X.Powi(n - 1)).Mul(a.DX),
	}
}

// Powf raises a to the dual power p:
//
//	d(a^p) = p a^(p-1) a' + a^p ln(a) p'
//
// Each term is skipped when its exponent factor is identically zero. A
// negative base with a constant exponent stays finite, and so does a zero base
// with a zero exponent.
func (a Dual[T]) Powf(p Dual[T]) Dual[T] {
	v := a.X.Powf(p.X)
	dx := a.DX.Const(0)
	if !p.X.IsZero() {
		dx = p.X.Mul(a.X.Powf(p.X.Sub(p.X.Const(1)))).Mul(a.DX)
	}
	if !p.DX.IsZero() {
		dx = dx.Add(v.Mul(a.X.Ln()).Mul(p.DX))
	}
	return Dual[T]{X: v, DX: dx}
}

// Abs uses sign(a) as the derivative, taking 0 at the origin.
func (a Dual[T]) Abs() Dual[T] {
	switch x := a.X.Float64(); {
	case x > 0:
		return a
	case x < 0:
		return a.Neg()
	default:
		return Dual[T]{X: a.X.Abs(), DX: a.DX.Const(0)}
	}
}

func (a Dual[T]) Sin() Dual[T] {
	return Dual[T]{X: a.X.Sin(), DX: a.X.Cos().Mul(a.DX)}
}

func (a Dual[T]) Cos() Dual[T] {
	return Dual[T]{X: a.X.Cos(), DX: a.X.Sin().Neg().Mul(a.DX)}
}

// Const returns v as a dual constant of the same nesting depth as a.
func (a Dual[T]) Const(v float64) Dual[T] {
	return Dual[T]{X: a.X.Const(v), DX: a.X.Const(0)}
}

// Float64 returns the innermost value component.
func (a Dual[T]) Float64() float64 { return a.X.Float64() }

// IsZero reports whether a and all its derivatives are zero.
func (a Dual[T]) IsZero() bool { return a.X.IsZero() && a.DX.IsZero() }
