// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/hmmlab/floatx"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// ForwardResult is the output of Forward.
type ForwardResult struct {
	// Alpha is the forward lattice [T x N].
	// α(t,j) = P(o(0),...,o(t), q(t) = j)
	Alpha *floatx.Matrix
	// Likelihood is P(O|Φ), the sum of the last row of Alpha.
	Likelihood float64
	// Derivation is only set when the WithDerivation option is used.
	Derivation *Derivation
}

// Forward computes the forward lattice. Indices are: α(time, state)
//
//	α = | α(0,0),   α(0,1)   ... α(0,N-1)   |
//	    | α(1,0),   α(1,1)   ... α(1,N-1)   |
//	    ...
//	    | α(T-1,0), α(T-1,1) ... α(T-1,N-1) |
//
// 1. Initialization: α(0,i) =  π(i) b(i,o(0)); 0<=i<N
// 2. Induction:      α(t+1,j) =  sum_{i=0}^{N-1}[α(t,i)a(i,j)] b(j,o(t+1)); 0<=t<T-1; 0<=j<N
// 3. Termination:    P(O/Φ) = sum_{i=0}^{N-1} α(T-1,i)
//
// Values are not scaled.
func Forward[S comparable](m *Model[S], obs []S, opts ...Option) (*ForwardResult, error) {

	r, err := newRun(m, obs, AlgoForward, opts)
	if err != nil {
		return nil, err
	}
	N := m.nstates
	T := len(obs)

	α := floatx.NewMatrix(T, N)

	// 1. Initialization.
	for i := 0; i < N; i++ {
		v := m.initProbs[i] * r.b[0][i]
		α.Set(0, i, v)
		if r.tracing() {
			r.trace(&Step{T: 0, State: i, Init: m.initProbs[i], Obs: r.b[0][i], Value: v})
		}
	}

	// 2. Induction.
	for t := 1; t < T; t++ {
		prev := α.Row(t - 1)
		for j := 0; j < N; j++ {
			col := m.transProbs.Col(j)
			sum, err := floatx.Dot(prev, col)
			if err != nil {
				return nil, valueErrorf("alpha row [%d] and transition column [%d]: %w", t-1, j, err)
			}
			v := sum * r.b[t][j]
			α.Set(t, j, v)
			if r.tracing() {
				products, err := floatx.MulElem(prev, col)
				if err != nil {
					return nil, valueErrorf("alpha row [%d] and transition column [%d]: %w", t-1, j, err)
				}
				r.trace(&Step{T: t, State: j, Obs: r.b[t][j], Prev: prev, Trans: col, Products: products, Value: v})
			}
		}
		if glog.V(4) {
			glog.Infof("t: %4d | alpha: %v", t, α.Row(t))
		}
	}

	// 3. Termination.
	res := &ForwardResult{
		Alpha:      α,
		Likelihood: floats.Sum(α.Row(T - 1)),
		Derivation: r.deriv,
	}
	glog.V(3).Infof("forward - T: %d, likelihood: %e", T, res.Likelihood)
	return res, nil
}
