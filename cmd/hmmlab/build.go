// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/akualab/hmmlab"
	"github.com/akualab/hmmlab/model/hmm"
	"github.com/golang/glog"
)

// Tolerance used to warn about user models that are not stochastic.
const validateTol = 1e-6

// buildModel creates the model described by the config.
func buildModel(mc *hmmlab.ModelConfig, r *rand.Rand) (*hmm.Model[string], error) {

	if e := mc.Check(); e != nil {
		return nil, e
	}

	var m *hmm.Model[string]
	var e error
	switch mc.StartMode() {
	case hmmlab.StartFlat:
		m, e = hmm.FlatStart(mc.NumStates, mc.Alphabet)
	case hmmlab.StartRandom:
		m, e = hmm.RandomStart(mc.NumStates, mc.Alphabet, r)
	case hmmlab.StartExplicit:
		m, e = hmm.NewModel(mc.Init, mc.Trans, mc.Emissions, alphabet(mc))
		if e == nil {
			if ve := m.Validate(validateTol); ve != nil {
				glog.Warningf("model is not stochastic: %v", ve)
			}
		}
	}
	if e != nil {
		return nil, fmt.Errorf("can't build model: %w", e)
	}
	glog.Infof("built %s model with %d states and %d symbols", mc.StartMode(), m.NumStates(), len(m.Alphabet()))
	return m, nil
}

// alphabet returns the configured alphabet. When none is given the
// emission symbols are sorted so that symbol indices, and therefore seeded
// samples, are the same on every run.
func alphabet(mc *hmmlab.ModelConfig) []string {
	if len(mc.Alphabet) > 0 {
		return mc.Alphabet
	}
	syms := make([]string, 0, len(mc.Emissions))
	for sym := range mc.Emissions {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// modelConfig returns the explicit parameters of a model.
func modelConfig(m *hmm.Model[string]) hmmlab.ModelConfig {

	mc := hmmlab.ModelConfig{
		Start:     hmmlab.StartExplicit,
		NumStates: m.NumStates(),
		Alphabet:  m.Alphabet(),
		Init:      m.InitProbs(),
		Trans:     m.TransProbs(),
		Emissions: make(map[string][]float64),
	}
	for _, sym := range mc.Alphabet {
		v, _ := m.ObsProbs(sym)
		mc.Emissions[sym] = v
	}
	return mc
}
