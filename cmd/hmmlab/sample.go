// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/akualab/hmmlab"
	"github.com/akualab/hmmlab/model/hmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

var sampleCommand = cli.Command{
	Name:      "sample",
	ShortName: "s",
	Usage:     "Generates a random state sequence and observations using the model.",
	Description: `samples from the model in the config file.

Use the global --seed flag (or model.seed in the config file) to get the
same sequence every run.

ex:
 $ hmmlab -c config.yaml --seed 33 sample --length 20
`,
	Action: sampleAction,
	Flags: []cli.Flag{
		cli.IntFlag{Name: "length, n", Usage: "sequence length, overwrites config file when set"},
		cli.BoolFlag{Name: "json", Usage: "write results as JSON"},
	},
}

func sampleAction(c *cli.Context) error {

	if err := initApp(c); err != nil {
		return err
	}
	if config == nil {
		return fmt.Errorf("missing config file [%s]", c.GlobalString("config-file"))
	}
	if err := intParam(c, "length", &config.SampleLength); err != nil {
		return fmt.Errorf("missing param [length], set sample_length in the config file or use --length")
	}

	r := newRand(c, &config.Model)
	m, err := buildModel(&config.Model, r)
	if err != nil {
		return err
	}
	states, obs, err := hmm.Sample(m, config.SampleLength, r)
	if err != nil {
		return err
	}
	glog.Infof("sampled %d observations", len(obs))

	w := c.App.Writer
	if c.Bool("json") {
		return hmmlab.WriteJSON(w, &sampleOutput{States: states, Observations: obs})
	}
	fmt.Fprintf(w, "states: %s\n", formatPath(states))
	fmt.Fprintf(w, "observations: %s\n", strings.Join(obs, ","))
	return nil
}
