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

// Package kernel provides the radial basis kernels used by Hermite RBF
// surface reconstruction, together with their analytic derivatives.
//
// Every kernel is generic over [autodiff.Real], so the same code evaluates on
// plain floats for values and on dual numbers to get one more derivative
// order. The hand-derived derivative formulas are cross-checked against
// automatic differentiation in the tests.
//
// Besides the raw derivatives f, f', f'', f''' and f'''' each kernel supplies
// quotient forms used when assembling gradients and Hessians of φ(|p|):
//
//	DfL(x) = f'(x)/x
//	G(x)   = (x f''(x) - f'(x))/x²
//	GL(x)  = G(x)/x
//	H(x,n) = (x² f'''(x) - n (x f''(x) - f'(x)))/x³
//
// They are written in closed form rather than by division, so most of them
// are finite at x = 0. Where the closed form itself is singular at the
// origin (Pow3.GL, Pow3.H and the Csrbf31 quotients) the result follows
// float64 division by zero.
//
// # Kernels
//
//   - Pow2, Pow3, Pow4, Pow5: x², x³, x⁴, x⁵; global support, no parameter.
//   - Gauss: exp(-x²/(2r²)); global support, shape radius r.
//   - Csrbf31: Wendland φ₃,₁ (1-x/r)⁴(4x/r+1), zero for x >= r.
//   - Csrbf42: Wendland φ₃,₂ (1-x/r)⁶(35(x/r)²+18x/r+3), zero for x >= r.
package kernel
