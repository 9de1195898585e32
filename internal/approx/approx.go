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

// Package approx compares float64 values for approximate equality, either by
// distance in units in the last place or by relative error with an absolute
// floor.
package approx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float64Epsilon is the difference between 1 and the next representable
// float64.
const Float64Epsilon = 0x1p-52

// Comparator decides whether two values are close enough to be equal.
type Comparator interface {
	Eq(a, b float64) bool
	fmt.Stringer
}

// ULPs accepts values within Epsilon of each other, or of the same sign and
// at most MaxULPs representable values apart.
type ULPs struct {
	Epsilon float64
	MaxULPs uint64
}

func (c ULPs) Eq(a, b float64) bool {
	if scalar.EqualWithinAbs(a, b, c.Epsilon) {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}
	return scalar.EqualWithinULP(a, b, uint(min(c.MaxULPs, math.MaxUint32)))
}

func (c ULPs) String() string {
	return fmt.Sprintf("ulps(max=%d, eps=%g)", c.MaxULPs, c.Epsilon)
}

// Relative accepts values within Epsilon of each other, or whose difference
// is at most MaxRelative times the larger magnitude.
type Relative struct {
	Epsilon     float64
	MaxRelative float64
}

func (c Relative) Eq(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return scalar.EqualWithinAbsOrRel(a, b, c.Epsilon, c.MaxRelative)
}

func (c Relative) String() string {
	return fmt.Sprintf("relative(max=%g, eps=%g)", c.MaxRelative, c.Epsilon)
}

// Distance returns the number of representable float64 values between a and
// b. Values of different sign, and NaNs, are math.MaxUint64 apart.
func Distance(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	if math.Signbit(a) != math.Signbit(b) {
		if a == b {
			return 0 // +0 and -0
		}
		return math.MaxUint64
	}
	ab, bb := math.Float64bits(a), math.Float64bits(b)
	if ab > bb {
		return ab - bb
	}
	return bb - ab
}
