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

import "math"

// Real is the set of operations a scalar must support to be differentiated
// and to drive the radial kernels. Both [Float] and [Dual] satisfy it.
type Real[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Neg() T
	Recip() T

	Exp() T
	Ln() T
	Sqrt() T
	Powi(n int) T
	Powf(p T) T
	Abs() T
	Sin() T
	Cos() T

	// Const lifts a literal into the receiver's type. For dual numbers the
	// result has a zero derivative.
	Const(v float64) T

	// Float64 returns the innermost value component.
	Float64() float64

	// IsZero reports whether every component is zero.
	IsZero() bool
}

// Float is a float64 scalar implementing Real.
//
// Every method converts its result explicitly, which rounds each operation on
// its own and keeps the compiler from fusing a multiply and an add across
// inlined calls. Results are therefore bit-identical on every architecture.
type Float float64

func (x Float) Add(y Float) Float { return Float(float64(x) + float64(y)) }
func (x Float) Sub(y Float) Float { return Float(float64(x) - float64(y)) }
func (x Float) Mul(y Float) Float { return Float(float64(x) * float64(y)) }
func (x Float) Div(y Float) Float { return Float(float64(x) / float64(y)) }
func (x Float) Neg() Float        { return -x }
func (x Float) Recip() Float      { return Float(1 / float64(x)) }

func (x Float) Exp() Float  { return Float(math.Exp(float64(x))) }
func (x Float) Ln() Float   { return Float(math.Log(float64(x))) }
func (x Float) Sqrt() Float { return Float(math.Sqrt(float64(x))) }
func (x Float) Abs() Float  { return Float(math.Abs(float64(x))) }
func (x Float) Sin() Float  { return Float(math.Sin(float64(x))) }
func (x Float) Cos() Float  { return Float(math.Cos(float64(x))) }

// Powi raises x to an integer power.
func (x Float) Powi(n int) Float { return Float(math.Pow(float64(x), float64(n))) }

// Powf raises x to a real power.
func (x Float) Powf(p Float) Float { return Float(math.Pow(float64(x), float64(p))) }

func (x Float) Const(v float64) Float { return Float(v) }
func (x Float) Float64() float64      { return float64(x) }
func (x Float) IsZero() bool          { return x == 0 }
