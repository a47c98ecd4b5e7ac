// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/hmmlab/floatx"
	"github.com/golang/glog"
)

// ViterbiResult is the output of Viterbi.
type ViterbiResult struct {
	// Path is the most likely state sequence [T].
	// All entries are -1 when no path has positive probability.
	Path []int
	// Prob is the probability of Path jointly with the observations.
	Prob float64
	// Delta is the viterbi lattice [T x N].
	Delta *floatx.Matrix
	// Backpointers [T x N]: φ(t,j) is the predecessor of state j at t-1 on
	// the best path ending in j at t. Row 0 is all zeros. A cell is -1 when
	// every candidate product was zero.
	Backpointers [][]int
	// Derivation is only set when the WithDerivation option is used.
	Derivation *Derivation
}

// Viterbi computes the most probable state sequence for the observations.
//
// δ(t,j) = max_{q(0),... q(t-1)} P(q(0),..,q(t-1), q(t)=j, o(0),...,o(t))
//
// Recursion   δ [T x N]
// δ(0,j) = π(j) b(j,o(0))    for j in [0, N-1]
// δ(t,j) = max_k [ δ(t-1,k) a(k,j) ] b(j,o(t))   j in [0, N-1], t in [1, T-1]
// φ(t,j) = argmax_k [ δ(t-1,k) a(k,j) ]          j in [0, N-1], t in [1, T-1]
//
// Decoding q* is the output sequence [T]
// q*(T-1) = argmax_j δ(T-1,j)
// q*(t) = φ(t+1, q*(t+1))  t in [0, T-2]
// prob = δ(T-1, q*(T-1))
//
// Ties go to the lowest state index.
func Viterbi[S comparable](m *Model[S], obs []S, opts ...Option) (*ViterbiResult, error) {

	r, err := newRun(m, obs, AlgoViterbi, opts)
	if err != nil {
		return nil, err
	}
	N := m.nstates
	T := len(obs)

	δ := floatx.NewMatrix(T, N)
	φ := floatx.MakeInt2D(T, N)

	// Init delta
	for i := 0; i < N; i++ {
		v := m.initProbs[i] * r.b[0][i]
		δ.Set(0, i, v)
		if r.tracing() {
			r.trace(&Step{T: 0, State: i, Init: m.initProbs[i], Obs: r.b[0][i], Value: v})
		}
	}

	// Recursion
	for t := 1; t < T; t++ {
		prev := δ.Row(t - 1)
		for j := 0; j < N; j++ {
			col := m.transProbs.Col(j)
			products, err := floatx.MulElem(prev, col)
			if err != nil {
				return nil, valueErrorf("delta row [%d] and transition column [%d]: %w", t-1, j, err)
			}
			argmax := floatx.ArgmaxFirst(products)
			var v float64
			if argmax >= 0 {
				v = products[argmax] * r.b[t][j]
			}
			φ[t][j] = argmax
			δ.Set(t, j, v)
			if r.tracing() {
				r.trace(&Step{T: t, State: j, Obs: r.b[t][j], Prev: prev, Trans: col, Products: products, Argmax: argmax, Value: v})
			}
		}
		if glog.V(4) {
			glog.Infof("t: %4d | delta: %v | phi: %v", t, δ.Row(t), φ[t])
		}
	}

	// Decoding
	path := make([]int, T)
	last := floatx.ArgmaxFirst(δ.Row(T - 1))
	res := &ViterbiResult{
		Path:         path,
		Delta:        δ,
		Backpointers: φ,
		Derivation:   r.deriv,
	}
	if last < 0 {
		for t := range path {
			path[t] = -1
		}
		glog.V(2).Infof("viterbi - no state sequence explains the %d observations", T)
		return res, nil
	}

	path[T-1] = last
	for t := T - 2; t >= 0; t-- {
		path[t] = φ[t+1][path[t+1]]
	}
	res.Prob = δ.At(T-1, last)

	glog.V(3).Infof("viterbi - T: %d, prob: %e, path: %v", T, res.Prob, path)
	return res, nil
}
