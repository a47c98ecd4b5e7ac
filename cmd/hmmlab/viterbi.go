// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/akualab/hmmlab"
	"github.com/akualab/hmmlab/model"
	"github.com/akualab/hmmlab/model/hmm"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

var viterbiCommand = cli.Command{
	Name:      "viterbi",
	ShortName: "v",
	Usage:     "Finds the most likely state sequence for the observations.",
	Description: `runs the viterbi algorithm.

Prints the delta lattice, the backpointers, the decoded path and its
probability. When no state sequence can explain the observations the path
is all -1 and the probability is zero.

ex:
 $ hmmlab -c config.yaml viterbi --obs a,b,b
`,
	Action: viterbiAction,
	Flags:  inferenceFlags,
}

func viterbiAction(c *cli.Context) error {

	m, obs, opts, err := prepareInference(c, "viterbi")
	if err != nil {
		return err
	}
	res, err := hmm.Viterbi(m, obs, opts...)
	if err != nil {
		return err
	}

	// Recompute the joint probability of the decoded path.
	var pathProb float64
	if len(res.Path) > 0 && res.Path[0] >= 0 {
		pathProb, err = hmm.PathProb(m, obs, res.Path)
		if err != nil {
			return err
		}
	}
	segs := model.AlignPath(res.Path)
	glog.Infof("viterbi path: %v, prob: %g", res.Path, res.Prob)

	w := c.App.Writer
	if c.Bool("json") {
		return hmmlab.WriteJSON(w, &viterbiOutput{
			Observations: obs,
			Delta:        res.Delta.Slices(),
			Backpointers: res.Backpointers,
			Path:         res.Path,
			Prob:         res.Prob,
			PathProb:     pathProb,
			Segments:     segs,
			Derivation:   res.Derivation,
		})
	}
	if err := writeLattice(w, "delta", obs, res.Delta); err != nil {
		return err
	}
	if err := writeBackpointers(w, obs, res.Backpointers); err != nil {
		return err
	}
	fmt.Fprintf(w, "path: %s\n", formatPath(res.Path))
	fmt.Fprintf(w, "prob: %g\n", res.Prob)
	fmt.Fprintf(w, "path prob: %g\n", pathProb)
	fmt.Fprintf(w, "segments: %v\n", segs)
	if res.Derivation != nil {
		writeDerivation(w, res.Derivation)
	}
	return nil
}
