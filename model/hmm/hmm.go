// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"

	"github.com/golang/glog"
)

// Option type is used to pass options to Forward() and Viterbi().
type Option func(*options)

type options struct {
	tracers    []Tracer
	derivation bool
}

// WithTracer sends every lattice cell to tr as it is computed.
func WithTracer(tr Tracer) Option {
	return func(o *options) {
		if tr != nil {
			o.tracers = append(o.tracers, tr)
		}
	}
}

// WithDerivation attaches a Derivation table to the result.
func WithDerivation() Option {
	return func(o *options) { o.derivation = true }
}

// run holds the per-call state shared by the forward and viterbi
// recursions.
type run[S comparable] struct {
	m      *Model[S]
	obs    []S
	algo   Algorithm
	b      [][]float64 // b[t] is the emission vector of obs[t]
	tracer Tracer
	deriv  *Derivation
}

func newRun[S comparable](m *Model[S], obs []S, algo Algorithm, opts []Option) (*run[S], error) {

	if err := m.check(); err != nil {
		return nil, err
	}
	T := len(obs)
	if T == 0 {
		return nil, valueErrorf("empty observation sequence")
	}

	// Look up all emissions before touching the lattice so that an
	// unknown symbol fails fast.
	b := make([][]float64, T)
	for t, o := range obs {
		v, err := m.obsVector(o, t)
		if err != nil {
			return nil, err
		}
		if len(v) != m.nstates {
			return nil, valueErrorf("observation probs for [%v] have [%d] entries, expected [%d]", o, len(v), m.nstates)
		}
		b[t] = v
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &run[S]{m: m, obs: obs, algo: algo, b: b}
	if o.derivation {
		r.deriv = NewDerivation(T, m.nstates)
		o.tracers = append(o.tracers, r.deriv)
	}
	switch len(o.tracers) {
	case 0:
	case 1:
		r.tracer = o.tracers[0]
	default:
		r.tracer = MultiTracer(o.tracers...)
	}

	if glog.V(3) {
		glog.Infof("%s - N: %d, T: %d", algo, m.nstates, T)
	}
	return r, nil
}

// tracing reports whether steps need to be built at all.
func (r *run[S]) tracing() bool { return r.tracer != nil }

func (r *run[S]) trace(s *Step) {
	s.Algorithm = r.algo
	s.Symbol = symbolString(r.obs[s.T])
	r.tracer.Trace(s)
}

// symbolString prints runes as characters and everything else with
// fmt.Sprint.
func symbolString(v any) string {
	if c, ok := v.(rune); ok {
		return string(c)
	}
	return fmt.Sprint(v)
}
