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

package check

import "math/rand/v2"

// Sampler draws reproducible uniform samples from [lo, hi).
type Sampler struct {
	rng       *rand.Rand
	lo, width float64
}

// NewSampler returns a sampler whose sequence is fixed by seed.
func NewSampler(seed uint64, lo, hi float64) *Sampler {
	return &Sampler{
		rng:   rand.New(rand.NewPCG(seed, seed)),
		lo:    lo,
		width: hi - lo,
	}
}

// Next returns the next sample.
func (s *Sampler) Next() float64 {
	return s.lo + s.width*s.rng.Float64()
}

// Draw returns the next n samples.
func (s *Sampler) Draw(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.Next()
	}
	return xs
}
