// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmm provides inference for hidden Markov models with discrete
observations.

States are labeled {0,1,...,N-1}. Observation symbols can be any comparable
type. Probabilities are kept in the linear domain: lattice values shrink
geometrically with the sequence length and long sequences will underflow.

 α  forward lattice   [T x N]
 δ  viterbi lattice   [T x N]
 φ  backpointers      [T x N]
*/
package hmm

import (
	"fmt"
	"math"

	"github.com/akualab/hmmlab/floatx"
	"github.com/golang/glog"
)

// Model is a hidden Markov model with a finite observation alphabet.
// A Model is not modified by the inference functions and can be shared by
// concurrent callers.
type Model[S comparable] struct {

	// Number of hidden states.
	// N
	nstates int

	// Initial state distribution. [nstates]
	// π(i) = P[q(0) = i]; 0<=i<N
	initProbs []float64

	// State-transition probability matrix. [nstates x nstates]
	// a(i,j) = P[q(t+1) = j | q(t) = i]; 0 <= i,j <= N-1
	transProbs *floatx.Matrix

	// Observation probabilities. For each symbol a vector [nstates]
	// b(j,o) = P[o | q(t) = j]
	obsProbs map[S][]float64

	// Symbols in the order they were declared.
	alphabet []S
}

// NewModel creates a model. The alphabet is the list of symbols in obsProbs
// in the order they should be reported; symbols in obsProbs that are missing
// from alphabet are appended in unspecified order.
//
// NewModel checks shapes only. Use Validate to check that the distributions
// sum to one.
func NewModel[S comparable](initProbs []float64, transProbs [][]float64, obsProbs map[S][]float64, alphabet []S) (*Model[S], error) {

	n := len(initProbs)
	if n == 0 {
		return nil, valueErrorf("empty initial state distribution")
	}
	if len(transProbs) != n {
		return nil, valueErrorf("num states mismatch. transProbs has [%d] rows and initProbs has [%d]", len(transProbs), n)
	}
	for i, row := range transProbs {
		if len(row) != n {
			return nil, valueErrorf("transition row [%d] has [%d] entries, expected [%d]", i, len(row), n)
		}
	}
	trans, err := floatx.NewMatrixFrom(transProbs)
	if err != nil {
		return nil, valueErrorf("%v", err)
	}
	if len(obsProbs) == 0 {
		return nil, valueErrorf("empty observation alphabet")
	}

	m := &Model[S]{
		nstates:    n,
		initProbs:  append([]float64(nil), initProbs...),
		transProbs: trans,
		obsProbs:   make(map[S][]float64, len(obsProbs)),
	}
	for _, sym := range alphabet {
		if _, ok := obsProbs[sym]; !ok {
			return nil, &LookupError{Symbol: sym, T: -1}
		}
		if _, dup := m.obsProbs[sym]; dup {
			continue
		}
		m.alphabet = append(m.alphabet, sym)
		m.obsProbs[sym] = nil
	}
	for sym := range obsProbs {
		if _, ok := m.obsProbs[sym]; !ok {
			m.alphabet = append(m.alphabet, sym)
		}
	}
	for sym, probs := range obsProbs {
		if len(probs) != n {
			return nil, valueErrorf("observation probs for [%v] have [%d] entries, expected [%d]", sym, len(probs), n)
		}
		m.obsProbs[sym] = append([]float64(nil), probs...)
	}

	glog.V(2).Infof("new hmm - num states: %d, alphabet size: %d", n, len(m.alphabet))
	return m, nil
}

// NumStates returns the number of hidden states.
func (m *Model[S]) NumStates() int { return m.nstates }

// Alphabet returns the observation symbols known to the model.
func (m *Model[S]) Alphabet() []S { return append([]S(nil), m.alphabet...) }

// InitProbs returns a copy of the initial state distribution.
func (m *Model[S]) InitProbs() []float64 { return append([]float64(nil), m.initProbs...) }

// TransProbs returns a copy of the transition matrix.
func (m *Model[S]) TransProbs() [][]float64 { return m.transProbs.Slices() }

// TransProb returns a(i,j).
func (m *Model[S]) TransProb(i, j int) float64 { return m.transProbs.At(i, j) }

// ObsProbs returns a copy of the per-state probabilities of sym.
func (m *Model[S]) ObsProbs(sym S) ([]float64, error) {
	probs, err := m.obsVector(sym, -1)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), probs...), nil
}

// obsVector returns the model's own emission vector for sym.
// t is only used to annotate the error.
func (m *Model[S]) obsVector(sym S, t int) ([]float64, error) {
	probs, ok := m.obsProbs[sym]
	if !ok {
		return nil, &LookupError{Symbol: sym, T: t}
	}
	return probs, nil
}

// check verifies the invariants set by NewModel. It guards the inference
// functions against zero-value or hand-assembled models.
func (m *Model[S]) check() error {
	if m == nil || m.nstates < 1 {
		return valueErrorf("model has no states")
	}
	if len(m.initProbs) != m.nstates {
		return valueErrorf("initProbs has [%d] entries, expected [%d]", len(m.initProbs), m.nstates)
	}
	if m.transProbs == nil {
		return valueErrorf("missing transition matrix")
	}
	if r, c := m.transProbs.Dims(); r != m.nstates || c != m.nstates {
		return valueErrorf("transition matrix is [%dx%d], expected [%dx%d]", r, c, m.nstates, m.nstates)
	}
	return nil
}

// Validate checks that all probabilities are non-negative and that the
// initial distribution, each transition row and each per-symbol emission
// vector sum to one within tol.
func (m *Model[S]) Validate(tol float64) error {

	if err := m.check(); err != nil {
		return err
	}
	if err := checkDist(m.initProbs, tol); err != nil {
		return valueErrorf("initial probs: %v", err)
	}
	for i := 0; i < m.nstates; i++ {
		if err := checkDist(m.transProbs.Row(i), tol); err != nil {
			return valueErrorf("transition row [%d]: %v", i, err)
		}
	}
	for _, sym := range m.alphabet {
		if err := checkDist(m.obsProbs[sym], tol); err != nil {
			return valueErrorf("observation probs for [%v]: %v", sym, err)
		}
	}
	return nil
}

func checkDist(v []float64, tol float64) error {
	var sum float64
	for i, p := range v {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("entry [%d] is not a probability: %v", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > tol {
		return fmt.Errorf("sums to %v", sum)
	}
	return nil
}
