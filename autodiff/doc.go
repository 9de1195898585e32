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

// Package autodiff implements forward-mode automatic differentiation with
// dual numbers.
//
// A dual number carries a value together with its derivative with respect to
// one independent variable. Every operation propagates the derivative with the
// exact analytic chain rule of the corresponding scalar operation, so results
// are exact up to the rounding of evaluating the closed form directly.
//
// # Scalars
//
// Code that should run both on plain floats and on dual numbers is written
// against the [Real] constraint. [Float] is the plain float64 scalar and
// [Dual] wraps any Real, so duals nest: Dual[Dual[Float]] carries second
// derivatives.
//
// # Differentiation
//
//	// d/dx x^2 at 1
//	d := autodiff.Diff(func(x autodiff.F) autodiff.F { return x.Mul(x) }, 1) // 2
//
//	// ∇ exp(-x0*x1/2)
//	g := autodiff.Grad(func(x []autodiff.F) autodiff.F {
//	    return x[0].Mul(x[1]).Neg().Div(autodiff.Cst(2)).Exp()
//	}, []float64{a, b})
//
// [Grad] re-evaluates the function once per input dimension; there is no
// sharing between dimensions.
//
// Domain errors follow float64: dividing by a zero value component or taking
// the square root of a negative value produces ±Inf or NaN, never a panic.
package autodiff
