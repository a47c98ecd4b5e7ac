// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"

	"github.com/akualab/hmmlab/model"
)

// Sample draws a hidden state sequence of the given length and the symbols
// emitted along it.
//
// The emission distribution of state j over the alphabet is b(j,o) for
// every symbol o, divided by its sum. If r is nil, the global routines in
// package rand are used.
func Sample[S comparable](m *Model[S], length int, r *rand.Rand) ([]int, []S, error) {

	if err := m.check(); err != nil {
		return nil, nil, err
	}
	if length < 1 {
		return nil, nil, valueErrorf("sequence length must be positive, got [%d]", length)
	}

	// Per state distribution over the alphabet.
	emit := make([][]float64, m.nstates)
	for j := range emit {
		emit[j] = make([]float64, len(m.alphabet))
		for k, sym := range m.alphabet {
			emit[j][k] = m.obsProbs[sym][j]
		}
	}

	states := make([]int, length)
	obs := make([]S, length)
	dist := m.initProbs
	for t := 0; t < length; t++ {
		s, err := model.RandIntFromDist(dist, r)
		if err != nil {
			return nil, nil, valueErrorf("state distribution at t=%d: %v", t, err)
		}
		k, err := model.RandIntFromDist(emit[s], r)
		if err != nil {
			return nil, nil, valueErrorf("observation distribution of state [%d]: %v", s, err)
		}
		states[t] = s
		obs[t] = m.alphabet[k]
		dist = m.transProbs.Row(s)
	}
	return states, obs, nil
}

// PathProb returns P(path, obs), the probability of the state sequence path
// jointly with the observations:
//
//	π(q(0)) b(q(0),o(0)) prod_{t=1}^{T-1} a(q(t-1),q(t)) b(q(t),o(t))
func PathProb[S comparable](m *Model[S], obs []S, path []int) (float64, error) {

	if err := m.check(); err != nil {
		return 0, err
	}
	if len(obs) == 0 {
		return 0, valueErrorf("empty observation sequence")
	}
	if len(path) != len(obs) {
		return 0, valueErrorf("mismatch in T. path has [%d] states, observations have [%d]", len(path), len(obs))
	}
	p := 1.0
	for t, s := range path {
		if s < 0 || s >= m.nstates {
			return 0, valueErrorf("state [%d] at t=%d is out of range", s, t)
		}
		b, err := m.obsVector(obs[t], t)
		if err != nil {
			return 0, err
		}
		if t == 0 {
			p *= m.initProbs[s]
		} else {
			p *= m.transProbs.At(path[t-1], s)
		}
		p *= b[s]
	}
	return p, nil
}
