// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatx

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a dense row-major matrix with dimensions fixed at construction.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zero matrix. Panics if a dimension is not positive.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrZeroLength)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewMatrixFrom copies a rectangular 2D slice into a new matrix.
func NewMatrixFrom(s [][]float64) (*Matrix, error) {

	r, c, err := Check2D(s)
	if err != nil {
		return nil, err
	}
	m := NewMatrix(r, c)
	for i, row := range s {
		copy(m.data[i*c:], row)
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the value at row r and column c.
func (m *Matrix) At(r, c int) float64 {
	m.check(r, c)
	return m.data[r*m.cols+c]
}

// Set sets the value at row r and column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.check(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Matrix) check(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(ErrIndexOutOfRange)
	}
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	m.check(i, 0)
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	m.check(0, j)
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// SetRow copies v into row i.
func (m *Matrix) SetRow(i int, v []float64) error {
	m.check(i, 0)
	if len(v) != m.cols {
		return ErrLength
	}
	copy(m.data[i*m.cols:], v)
	return nil
}

// Slices returns the matrix as a freshly allocated 2D slice.
func (m *Matrix) Slices() [][]float64 {
	s := MakeFloat2D(m.rows, m.cols)
	for i := range s {
		copy(s[i], m.data[i*m.cols:])
	}
	return s
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatSlice(m.data[i*m.cols : (i+1)*m.cols]))
	}
	return b.String()
}

// FormatSlice formats v as "[x0, x1, ...]" using the shortest
// representation of each value.
func FormatSlice(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
