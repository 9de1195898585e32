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

// Kernel is a radial basis function φ together with its derivatives and the
// singularity-free quotient forms needed for gradient and Hessian assembly.
type Kernel[T autodiff.Real[T]] interface {
	// F returns φ(x).
	F(x T) T
	// Df returns φ'(x).
	Df(x T) T
	// Ddf returns φ''(x).
	Ddf(x T) T
	// Dddf returns φ'''(x).
	Dddf(x T) T
	// Ddddf returns φ''''(x).
	Ddddf(x T) T

	// DfL returns φ'(x)/x.
	DfL(x T) T
	// G returns g with x²·g(x) = x·φ''(x) - φ'(x).
	G(x T) T
	// GL returns g(x)/x.
	GL(x T) T
	// H returns h with x³·h(x,n) = x²·φ'''(x) - n·(x·φ''(x) - φ'(x)).
	H(x, n T) T
}

// poly evaluates c[0] + c[1]x + c[2]x² + ... with Horner's method.
func poly[T autodiff.Real[T]](x T, c ...float64) T {
	p := x.Const(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		p = p.Mul(x).Add(x.Const(c[i]))
	}
	return p
}
