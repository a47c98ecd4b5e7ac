// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds random helpers shared by the model implementations.
package model

import (
	"fmt"
	"math/rand"

	"github.com/akualab/hmmlab/floatx"
)

// DefaultSeed provided for model implementation.
const DefaultSeed = 33

// Float64 returns a draw in [0,1) from r, or from the global source when r is nil.
func Float64(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}

// RandUniformDist fills a slice of size n with independent uniform draws in
// [0,1) and divides it by its sum.
func RandUniformDist(n int, r *rand.Rand) []float64 {

	dist := make([]float64, n)
	for {
		for i := range dist {
			dist[i] = Float64(r)
		}
		// A zero sum needs every draw to be exactly 0; draw again.
		if floatx.Normalize(dist) > 0 {
			return dist
		}
	}
}

// Generates a random number given a discrete prob distribution.
// The distribution need not be normalized.
func RandIntFromDist(dist []float64, r *rand.Rand) (int, error) {
	N := len(dist)
	if N == 0 {
		return -1, fmt.Errorf("Error prob distribution has len 0")
	}
	var total float64
	for _, p := range dist {
		if p < 0 {
			return -1, fmt.Errorf("Negative probability in distribution %v", dist)
		}
		total += p
	}
	if total <= 0 {
		return -1, fmt.Errorf("Distribution has zero mass")
	}
	ran := Float64(r) * total
	cum := 0.0
	for i := 0; i < N; i++ {
		cum = cum + dist[i]
		if ran < cum {
			return i, nil
		}
	}
	// Rounding left ran just above the last boundary.
	for i := N - 1; i > 0; i-- {
		if dist[i] > 0 {
			return i, nil
		}
	}
	return 0, nil
}
