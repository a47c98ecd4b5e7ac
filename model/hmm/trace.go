// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akualab/hmmlab/floatx"
	"github.com/golang/glog"
)

// Algorithm names the recursion that produced a Step.
type Algorithm string

const (
	AlgoForward Algorithm = "forward"
	AlgoViterbi Algorithm = "viterbi"
)

// Step describes how the value of one lattice cell was computed.
type Step struct {
	Algorithm Algorithm
	// Cell coordinates: time and state.
	T, State int
	// Observation symbol at time T. Runes are printed as characters,
	// other types with fmt.Sprint.
	Symbol string
	// π(State), only set at T=0.
	Init float64
	// b(State, o(T)).
	Obs float64
	// Previous lattice row and column State of the transition matrix.
	// Nil at T=0.
	Prev, Trans []float64
	// Prev[i]*Trans[i].
	Products []float64
	// Viterbi backpointer. Zero for forward steps and at T=0.
	Argmax int
	Value  float64
}

// Tracer receives lattice cells as they are computed.
type Tracer interface {
	Trace(s *Step)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(s *Step)

// Trace calls f(s).
func (f TracerFunc) Trace(s *Step) { f(s) }

type multiTracer []Tracer

func (mt multiTracer) Trace(s *Step) {
	for _, t := range mt {
		t.Trace(s)
	}
}

// MultiTracer duplicates steps to all the tracers.
func MultiTracer(tracers ...Tracer) Tracer {
	return multiTracer(append([]Tracer(nil), tracers...))
}

// Derivation holds, for every lattice cell, the arithmetic that produced
// it. Computations has the formula and its numeric expansion, Arrows has
// the predecessor terms prev*trans joined by ", " (empty at t=0).
type Derivation struct {
	Computations [][]string `json:"computations"`
	Arrows       [][]string `json:"arrows"`
}

// NewDerivation allocates tables with T rows and N columns.
func NewDerivation(T, N int) *Derivation {
	d := &Derivation{
		Computations: make([][]string, T),
		Arrows:       make([][]string, T),
	}
	for t := 0; t < T; t++ {
		d.Computations[t] = make([]string, N)
		d.Arrows[t] = make([]string, N)
	}
	return d
}

// Trace implements the Tracer interface.
func (d *Derivation) Trace(s *Step) {
	d.Computations[s.T][s.State] = Explain(s)
	d.Arrows[s.T][s.State] = arrows(s)
}

// Explain returns a two line description of the step: the formula and the
// numbers that were plugged into it.
func Explain(s *Step) string {
	if s.T == 0 {
		return fmt.Sprintf("initial probability for state %d * observation probability for '%s' at state %d\n%s * %s",
			s.State, s.Symbol, s.State, ftoa(s.Init), ftoa(s.Obs))
	}
	switch s.Algorithm {
	case AlgoViterbi:
		return fmt.Sprintf("max ( elementwise multiplication of delta_%d and probabilities of going to state %d ) * observation probability for '%s' at state %d\nmax( %s ) * %s",
			s.T-1, s.State, s.Symbol, s.State, arrows(s), ftoa(s.Obs))
	default:
		return fmt.Sprintf("( alpha_%d . probabilities of going to state %d ) * observation probability for '%s' at state %d\n( %s . %s ) * %s",
			s.T-1, s.State, s.Symbol, s.State, floatx.FormatSlice(s.Prev), floatx.FormatSlice(s.Trans), ftoa(s.Obs))
	}
}

func arrows(s *Step) string {
	if s.T == 0 {
		return ""
	}
	terms := make([]string, len(s.Prev))
	for i := range s.Prev {
		terms[i] = ftoa(s.Prev[i]) + " * " + ftoa(s.Trans[i])
	}
	return strings.Join(terms, ", ")
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// LogTracer writes steps to the glog info log when verbosity is at least
// Level.
type LogTracer struct {
	Level glog.Level
}

// Trace implements the Tracer interface.
func (lt LogTracer) Trace(s *Step) {
	if glog.V(lt.Level) {
		glog.Infof("%s | t: %4d | j: %2d | obs: %s | argmax: %2d | value: %5e", s.Algorithm, s.T, s.State, s.Symbol, s.Argmax, s.Value)
	}
}
