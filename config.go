// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmmlab

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Start modes for ModelConfig.Start.
const (
	StartFlat     = "flat"
	StartRandom   = "random"
	StartExplicit = "explicit"
)

// Config describes an experiment: the model and what to run on it.
type Config struct {
	Model ModelConfig `yaml:"model" json:"model"`

	// Observation symbols in order.
	Observations []string `yaml:"observations,omitempty" json:"observations,omitempty"`

	// forward or viterbi.
	Algorithm    string `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Derivation   bool   `yaml:"derivation,omitempty" json:"derivation,omitempty"`
	SampleLength int    `yaml:"sample_length,omitempty" json:"sample_length,omitempty"`
}

// ModelConfig holds the parameters of a discrete HMM. When Start is flat or
// random only NumStates and Alphabet are used. When Start is explicit (or
// empty) the probabilities are taken as given and a missing alphabet
// defaults to the sorted emission symbols.
type ModelConfig struct {
	Start     string               `yaml:"start,omitempty" json:"start,omitempty"`
	NumStates int                  `yaml:"num_states,omitempty" json:"num_states,omitempty"`
	Alphabet  []string             `yaml:"alphabet,omitempty" json:"alphabet,omitempty"`
	Seed      int64                `yaml:"seed,omitempty" json:"seed,omitempty"`
	Init      []float64            `yaml:"init,omitempty" json:"init,omitempty"`
	Trans     [][]float64          `yaml:"trans,omitempty" json:"trans,omitempty"`
	Emissions map[string][]float64 `yaml:"emissions,omitempty" json:"emissions,omitempty"`
}

// StartMode returns the start mode, explicit when unset.
func (mc ModelConfig) StartMode() string {
	if mc.Start == "" {
		return StartExplicit
	}
	return mc.Start
}

// Check verifies that the fields required by the start mode are present.
// Shapes are checked when the model is built.
func (mc ModelConfig) Check() error {
	switch mc.StartMode() {
	case StartFlat, StartRandom:
		if mc.NumStates < 1 {
			return fmt.Errorf("model start %q needs num_states > 0, got %d", mc.Start, mc.NumStates)
		}
		if len(mc.Alphabet) == 0 {
			return fmt.Errorf("model start %q needs an alphabet", mc.Start)
		}
	case StartExplicit:
		if len(mc.Init) == 0 || len(mc.Trans) == 0 || len(mc.Emissions) == 0 {
			return fmt.Errorf("explicit model needs init, trans and emissions")
		}
	default:
		return fmt.Errorf("unknown model start [%s], expected one of flat, random, explicit", mc.Start)
	}
	return nil
}

// ReadConfig reads a YAML config file.
func ReadConfig(fn string) (*Config, error) {

	data, e := os.ReadFile(fn)
	if e != nil {
		return nil, e
	}
	config := new(Config)
	if e = yaml.Unmarshal(data, config); e != nil {
		return nil, fmt.Errorf("can't parse config file [%s]: %w", fn, e)
	}
	return config, nil
}

// WriteConfig writes the config as YAML.
func WriteConfig(w io.Writer, config *Config) error {

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if e := enc.Encode(config); e != nil {
		return e
	}
	return enc.Close()
}
