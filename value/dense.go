// SPDX-License-Identifier: MIT

// Package value: Dense is a concrete, row-major matrix of float64 values,
// storing elements in a flat slice for performance and cache friendliness.
package value

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape unless rows and cols are both > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, valueErrorf("NewDense", ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Scalar wraps a single float64 as a 1×1 Dense.
// Complexity: O(1).
func Scalar(v float64) *Dense {
	return &Dense{r: 1, c: 1, data: []float64{v}}
}

// FromVector wraps a 1-D slice as an n×1 column vector.
// Returns ErrBadShape for an empty slice. The slice is copied.
// Complexity: O(n).
func FromVector(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, valueErrorf("FromVector", ErrBadShape)
	}
	data := make([]float64, len(v))
	copy(data, v)

	return &Dense{r: len(v), c: 1, data: data}, nil
}

// FromRows builds a Dense from row slices. All rows must be non-empty and of
// equal length; ragged input returns ErrBadShape. The input is copied.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, valueErrorf("FromRows", ErrBadShape)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, valueErrorf("FromRows", ErrBadShape)
		}
		data = append(data, row...)
	}

	return &Dense{r: len(rows), c: c, data: data}, nil
}

// Ones creates an r×c Dense with every entry set to one.
// Returns ErrBadShape unless rows and cols are both > 0.
// Complexity: O(r*c).
func Ones(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, valueErrorf("Ones", ErrBadShape)
	}
	for i := range m.data {
		m.data[i] = 1
	}

	return m, nil
}

// Identity creates the n×n identity matrix.
// Returns ErrBadShape unless n > 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, valueErrorf("Identity", ErrBadShape)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsScalar reports whether the value is 1×1. Complexity: O(1).
func (m *Dense) IsScalar() bool { return m.r == 1 && m.c == 1 }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d) on %d×%d: %w", tag, row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
