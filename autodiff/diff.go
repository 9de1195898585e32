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

// DiffOf returns the derivative of f at x0.
func DiffOf[T Real[T]](f func(Dual[T]) Dual[T], x0 T) T {
	return f(VarOf(x0)).DX
}

// Diff returns the derivative of f at x0.
func Diff(f func(F) F, x0 float64) float64 {
	return float64(DiffOf(f, Float(x0)))
}

// Diff2 returns the second derivative of f at x0 by nesting dual numbers.
func Diff2(f func(Dual[F]) Dual[F], x0 float64) float64 {
	x := Dual[F]{X: Var(x0), DX: Cst(1)}
	return float64(f(x).DX.DX)
}

// GradOf returns the gradient of f at x. The i-th pass seeds x[i] as the
// variable and every other component as a constant, so f is evaluated
// len(x) times.
func GradOf[T Real[T]](f func([]Dual[T]) Dual[T], x []T) []T {
	grad := make([]T, len(x))
	in := make([]Dual[T], len(x))
	for i := range x {
		for j, v := range x {
			in[j] = CstOf(v)
		}
		in[i] = VarOf(x[i])
		grad[i] = f(in).DX
	}
	return grad
}

// Grad returns the gradient of f at x, in the order of x.
func Grad(f func([]F) F, x []float64) []float64 {
	xf := make([]Float, len(x))
	for i, v := range x {
		xf[i] = Float(v)
	}
	gf := GradOf(f, xf)
	grad := make([]float64, len(gf))
	for i, v := range gf {
		grad[i] = float64(v)
	}
	return grad
}
