// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"

	"github.com/akualab/hmmlab/floatx"
	"github.com/akualab/hmmlab/model"
	"github.com/golang/glog"
)

// FlatStart returns a model where every initial, transition and
// observation probability is 1/numStates.
func FlatStart[S comparable](numStates int, alphabet []S) (*Model[S], error) {

	if err := checkFactoryArgs(numStates, alphabet); err != nil {
		return nil, err
	}
	flat := 1.0 / float64(numStates)

	initProbs := make([]float64, numStates)
	floatx.Fill(initProbs, flat)
	transProbs := floatx.MakeFloat2D(numStates, numStates)
	for _, row := range transProbs {
		floatx.Fill(row, flat)
	}
	obsProbs := make(map[S][]float64, len(alphabet))
	for _, sym := range alphabet {
		obsProbs[sym] = append([]float64(nil), initProbs...)
	}

	glog.V(1).Infof("flat start - num states: %d, alphabet: %v", numStates, alphabet)
	return NewModel(initProbs, transProbs, obsProbs, alphabet)
}

// RandomStart returns a model with random parameters. The initial
// distribution, each transition row and each observation vector are filled
// with uniform draws in [0,1) and divided by their sum.
//
// If r is nil, the global routines in package rand are used.
func RandomStart[S comparable](numStates int, alphabet []S, r *rand.Rand) (*Model[S], error) {

	if err := checkFactoryArgs(numStates, alphabet); err != nil {
		return nil, err
	}

	initProbs := model.RandUniformDist(numStates, r)
	transProbs := make([][]float64, numStates)
	for i := range transProbs {
		transProbs[i] = model.RandUniformDist(numStates, r)
	}
	obsProbs := make(map[S][]float64, len(alphabet))
	for _, sym := range alphabet {
		obsProbs[sym] = model.RandUniformDist(numStates, r)
	}

	glog.V(1).Infof("random start - num states: %d, alphabet: %v", numStates, alphabet)
	return NewModel(initProbs, transProbs, obsProbs, alphabet)
}

func checkFactoryArgs[S comparable](numStates int, alphabet []S) error {
	if numStates < 1 {
		return valueErrorf("num states must be positive, got [%d]", numStates)
	}
	if len(alphabet) == 0 {
		return valueErrorf("empty observation alphabet")
	}
	return nil
}
