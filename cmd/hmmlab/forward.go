// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/akualab/hmmlab"
	"github.com/akualab/hmmlab/model/hmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

var forwardCommand = cli.Command{
	Name:      "forward",
	ShortName: "f",
	Usage:     "Computes the forward lattice and the likelihood of the observations.",
	Description: `runs the forward algorithm.

The model is read from the config file. Observations given with --obs are
split on commas when there are any, otherwise every character is a symbol.

ex:
 $ hmmlab -c config.yaml forward --obs abba --derivation
`,
	Action: forwardAction,
	Flags:  inferenceFlags,
}

var inferenceFlags = []cli.Flag{
	cli.StringFlag{Name: "obs, o", Usage: "observation sequence, overwrites config file when set"},
	cli.BoolFlag{Name: "derivation, d", Usage: "print how every lattice value was computed"},
	cli.BoolFlag{Name: "trace", Usage: "log every lattice cell as it is computed"},
	cli.BoolFlag{Name: "json", Usage: "write results as JSON"},
}

func forwardAction(c *cli.Context) error {

	m, obs, opts, err := prepareInference(c, "forward")
	if err != nil {
		return err
	}
	res, err := hmm.Forward(m, obs, opts...)
	if err != nil {
		return err
	}
	glog.Infof("forward likelihood: %g", res.Likelihood)

	w := c.App.Writer
	if c.Bool("json") {
		return hmmlab.WriteJSON(w, &forwardOutput{
			Observations: obs,
			Alpha:        res.Alpha.Slices(),
			Likelihood:   res.Likelihood,
			Derivation:   res.Derivation,
		})
	}
	if err := writeLattice(w, "alpha", obs, res.Alpha); err != nil {
		return err
	}
	fmt.Fprintf(w, "likelihood: %g\n", res.Likelihood)
	if res.Derivation != nil {
		writeDerivation(w, res.Derivation)
	}
	return nil
}

// prepareInference reads the config, applies the command flags and builds
// the model.
func prepareInference(c *cli.Context, algo string) (*hmm.Model[string], []string, []hmm.Option, error) {

	if err := initApp(c); err != nil {
		return nil, nil, nil, err
	}
	if config == nil {
		return nil, nil, nil, fmt.Errorf("missing config file [%s]", c.GlobalString("config-file"))
	}
	if len(config.Algorithm) > 0 && config.Algorithm != algo {
		glog.Warningf("config algorithm is [%s], running %s", config.Algorithm, algo)
	}
	obs, err := obsParam(c)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := buildModel(&config.Model, newRand(c, &config.Model))
	if err != nil {
		return nil, nil, nil, err
	}

	var opts []hmm.Option
	if c.Bool("derivation") || config.Derivation {
		opts = append(opts, hmm.WithDerivation())
	}
	if c.Bool("trace") {
		opts = append(opts, hmm.WithTracer(hmm.LogTracer{}))
	}
	glog.V(1).Infof("observations: %v", obs)
	return m, obs, opts, nil
}
