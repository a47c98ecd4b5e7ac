// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmmlab holds the pieces shared by the hmmlab packages and
command: the experiment configuration, error exit and test helpers.

The inference code lives in model/hmm, the vector helpers in floatx and
the command line tool in cmd/hmmlab.

An experiment config looks like this:

	model:
	  start: explicit
	  alphabet: [a, b]
	  init: [0.6, 0.4]
	  trans:
	    - [0.7, 0.3]
	    - [0.4, 0.6]
	  emissions:
	    a: [0.5, 0.1]
	    b: [0.4, 0.6]
	observations: [a, b]
	algorithm: viterbi
*/
package hmmlab
