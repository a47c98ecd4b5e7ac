// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/akualab/hmmlab"
	"github.com/urfave/cli"
)

var initCommand = cli.Command{
	Name:      "init",
	ShortName: "i",
	Usage:     "Prints a config file with a new model.",
	Description: `creates a flat or random model and prints it as a YAML config
file with explicit probabilities that can be edited.

ex:
 $ hmmlab init --states 2 --alphabet a,b --random > config.yaml
`,
	Action: initAction,
	Flags: []cli.Flag{
		cli.IntFlag{Name: "states, n", Usage: "number of hidden states"},
		cli.StringFlag{Name: "alphabet, a", Usage: "comma separated observation symbols"},
		cli.BoolFlag{Name: "random, r", Usage: "draw random distributions instead of flat ones"},
	},
}

func initAction(c *cli.Context) error {

	if err := initApp(c); err != nil {
		return err
	}
	ensureConfig()
	mc := &config.Model

	if err := intParam(c, "states", &mc.NumStates); err != nil {
		return fmt.Errorf("missing param [states], set num_states in the config file or use --states")
	}
	if c.IsSet("alphabet") {
		mc.Alphabet = splitList(c.String("alphabet"))
	}
	mc.Start = hmmlab.StartFlat
	if c.Bool("random") {
		mc.Start = hmmlab.StartRandom
	}

	m, err := buildModel(mc, newRand(c, mc))
	if err != nil {
		return err
	}

	out := &hmmlab.Config{
		Model:        modelConfig(m),
		Observations: config.Observations,
		Algorithm:    config.Algorithm,
	}
	return hmmlab.WriteConfig(c.App.Writer, out)
}
