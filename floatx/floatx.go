// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatx provides the small dense matrix and vector helpers used by
// the inference engines.
package floatx

import (
	"gonum.org/v1/gonum/floats"
)

type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrIndexOutOfRange = Error("floatx: index out of range")
	ErrZeroLength      = Error("floatx: zero length in slice definition")
	ErrLength          = Error("floatx: length mismatch")
	ErrShape           = Error("floatx: ragged slice")
)

func MakeFloat2D(n1, n2 int) [][]float64 {

	s := make([][]float64, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]float64, n2)
	}

	return s
}

func MakeInt2D(n1, n2 int) [][]int {

	s := make([][]int, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]int, n2)
	}

	return s
}

// Check2D returns the dimensions of a rectangular 2D slice.
// Returns ErrZeroLength for empty input and ErrShape when rows differ in length.
func Check2D(s [][]float64) (n1, n2 int, err error) {

	n1 = len(s)
	if n1 == 0 {
		return 0, 0, ErrZeroLength
	}

	n2 = len(s[0])
	if n2 == 0 {
		return 0, 0, ErrZeroLength
	}
	for _, row := range s[1:] {
		if len(row) != n2 {
			return 0, 0, ErrShape
		}
	}

	return n1, n2, nil
}

// MulElem returns the element-wise product of a and b in a new slice.
func MulElem(a, b []float64) ([]float64, error) {

	if !floats.EqualLengths(a, b) {
		return nil, ErrLength
	}
	out := make([]float64, len(a))
	floats.MulTo(out, a, b)
	return out, nil
}

// Dot returns the inner product of a and b.
func Dot(a, b []float64) (float64, error) {

	if !floats.EqualLengths(a, b) {
		return 0, ErrLength
	}
	return floats.Dot(a, b), nil
}

// ArgmaxFirst returns the index of the largest element of v.
//
// The running maximum starts at 0 with index -1 and is only replaced by a
// strictly larger value. Ties keep the lowest index and a vector with no
// positive element returns -1.
func ArgmaxFirst(v []float64) int {

	var max float64
	argmax := -1
	for k, x := range v {
		if x > max {
			max = x
			argmax = k
		}
	}
	return argmax
}

// Normalize scales v in place so that it sums to one and returns the
// original sum. A zero sum leaves v untouched.
func Normalize(v []float64) float64 {

	sum := floats.Sum(v)
	if sum != 0 {
		floats.Scale(1/sum, v)
	}
	return sum
}

// Fill sets all values to f.
func Fill(s []float64, f float64) {
	for i := range s {
		s[i] = f
	}
}
