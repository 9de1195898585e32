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

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-hrbf/autodiff"
)

var (
	// ErrUnknownKernel is returned by New for a name not in Names.
	ErrUnknownKernel = errors.New("unknown kernel")
	// ErrBadRadius is returned by New when a radius-parameterised kernel is
	// given a radius that is not positive and finite.
	ErrBadRadius = errors.New("kernel radius must be positive and finite")
)

// Kernel names accepted by New.
const (
	NamePow2    = "pow2"
	NamePow3    = "pow3"
	NamePow4    = "pow4"
	NamePow5    = "pow5"
	NameGauss   = "gauss"
	NameCsrbf31 = "csrbf31"
	NameCsrbf42 = "csrbf42"
)

var (
	names       = []string{NamePow2, NamePow3, NamePow4, NamePow5, NameGauss, NameCsrbf31, NameCsrbf42}
	localNames  = []string{NameCsrbf31, NameCsrbf42}
	radialNames = []string{NameGauss, NameCsrbf31, NameCsrbf42}
)

// Names returns the names of all kernels in a fixed order.
func Names() []string { return slices.Clone(names) }

// IsLocal reports whether the named kernel has compact support.
func IsLocal(name string) bool { return lo.Contains(localNames, name) }

// HasRadius reports whether the named kernel takes a radius parameter.
func HasRadius(name string) bool { return lo.Contains(radialNames, name) }

// New returns the named kernel. The radius is ignored by the Pow kernels.
func New[T autodiff.Real[T]](name string, radius T) (Kernel[T], error) {
	if !lo.Contains(names, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	if HasRadius(name) {
		if r := radius.Float64(); !(r > 0) || math.IsInf(r, 1) {
			return nil, fmt.Errorf("%s: %w, got %v", name, ErrBadRadius, r)
		}
	}

	switch name {
	case NamePow2:
		return NewPow2[T](), nil
	case NamePow3:
		return NewPow3[T](), nil
	case NamePow4:
		return NewPow4[T](), nil
	case NamePow5:
		return NewPow5[T](), nil
	case NameGauss:
		return NewGauss(radius), nil
	case NameCsrbf31:
		return NewCsrbf31(radius), nil
	default:
		return NewCsrbf42(radius), nil
	}
}
