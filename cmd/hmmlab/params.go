// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/akualab/hmmlab"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

// Command flags overwrite config values. The param functions below copy the
// flag value into the config field when the flag is set and report whether
// a value is available.

func stringParam(c *cli.Context, name string, p *string) error {
	if c.IsSet(name) {
		*p = c.String(name)
	}
	if len(*p) == 0 {
		return NoConfigValueError
	}
	return nil
}

func requiredStringParam(c *cli.Context, name string, p *string) error {
	if e := stringParam(c, name, p); e != nil {
		return fmt.Errorf("missing param [%s], set it in the config file or with --%s", name, name)
	}
	return nil
}

func intParam(c *cli.Context, name string, p *int) error {
	if c.IsSet(name) {
		*p = c.Int(name)
	}
	if *p == 0 {
		return NoConfigValueError
	}
	return nil
}

// obsParam reads the observations from the obs flag or the config file.
func obsParam(c *cli.Context) ([]string, error) {

	if c.IsSet("obs") {
		config.Observations = splitObs(c.String("obs"))
	}
	if len(config.Observations) == 0 {
		return nil, fmt.Errorf("missing observations, set them in the config file or with --obs")
	}
	return config.Observations, nil
}

// splitObs splits on commas when there are any, otherwise every character
// is a symbol.
func splitObs(s string) []string {

	if strings.Contains(s, ",") {
		var obs []string
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); len(f) > 0 {
				obs = append(obs, f)
			}
		}
		return obs
	}
	obs := make([]string, 0, len(s))
	for _, r := range s {
		obs = append(obs, string(r))
	}
	return obs
}

// splitList splits a comma separated list.
func splitList(s string) []string {
	if len(strings.TrimSpace(s)) == 0 {
		return nil
	}
	return splitObs(s + ",")
}

// ensureConfig creates an empty config when no config file was given.
func ensureConfig() {
	if config == nil {
		config = new(hmmlab.Config)
	}
}

// newRand returns a generator seeded with the global seed flag, or with the
// config seed when the flag is unset. Returns nil when neither is set so
// callers use the global source.
func newRand(c *cli.Context, mc *hmmlab.ModelConfig) *rand.Rand {

	if c.GlobalIsSet("seed") || mc.Seed == 0 {
		mc.Seed = c.GlobalInt64("seed")
	}
	if mc.Seed == 0 {
		return nil
	}
	glog.V(1).Infof("random seed: %d", mc.Seed)
	return rand.New(rand.NewSource(mc.Seed))
}
