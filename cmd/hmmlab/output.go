// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/akualab/hmmlab/floatx"
	"github.com/akualab/hmmlab/model"
	"github.com/akualab/hmmlab/model/hmm"
)

// Lattices are printed one row per time step:
//
//	t  obs  s0    s1
//	0  a    0.3   0.04
//	1  b    0.084 0.054

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func header(tw io.Writer, n int) {
	fmt.Fprint(tw, "t\tobs")
	for j := 0; j < n; j++ {
		fmt.Fprintf(tw, "\ts%d", j)
	}
	fmt.Fprintln(tw)
}

func writeLattice(w io.Writer, title string, obs []string, m *floatx.Matrix) error {

	fmt.Fprintf(w, "%s:\n", title)
	tw := newTable(w)
	rows, cols := m.Dims()
	header(tw, cols)
	for t := 0; t < rows; t++ {
		fmt.Fprintf(tw, "%d\t%s", t, obs[t])
		for _, v := range m.Row(t) {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(v, 'g', 6, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func writeBackpointers(w io.Writer, obs []string, phi [][]int) error {

	fmt.Fprintln(w, "backpointers:")
	tw := newTable(w)
	header(tw, len(phi[0]))
	for t, row := range phi {
		fmt.Fprintf(tw, "%d\t%s", t, obs[t])
		for _, v := range row {
			fmt.Fprintf(tw, "\t%d", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func writeDerivation(w io.Writer, d *hmm.Derivation) {

	fmt.Fprintln(w, "derivation:")
	for t, row := range d.Computations {
		for j, comp := range row {
			fmt.Fprintf(w, "[t=%d, s%d]\n  %s\n", t, j, strings.ReplaceAll(comp, "\n", "\n  "))
		}
	}
}

func formatPath(path []int) string {
	s := make([]string, len(path))
	for i, v := range path {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

// JSON output.

type forwardOutput struct {
	Observations []string        `json:"observations"`
	Alpha        [][]float64     `json:"alpha"`
	Likelihood   float64         `json:"likelihood"`
	Derivation   *hmm.Derivation `json:"derivation,omitempty"`
}

type viterbiOutput struct {
	Observations []string        `json:"observations"`
	Delta        [][]float64     `json:"delta"`
	Backpointers [][]int         `json:"backpointers"`
	Path         []int           `json:"path"`
	Prob         float64         `json:"prob"`
	PathProb     float64         `json:"path_prob"`
	Segments     []model.Segment `json:"segments"`
	Derivation   *hmm.Derivation `json:"derivation,omitempty"`
}

type sampleOutput struct {
	States       []int    `json:"states"`
	Observations []string `json:"observations"`
}
