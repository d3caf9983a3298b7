// Package expr: leaf constructors — constants and variables.

package expr

import (
	"fmt"

	"github.com/katalvlaran/cvxgraph/value"
)

// Constant wraps a numeric value as a constant leaf. The node's curvature is
// CONSTANT and its sign is inferred from the value's elementwise sign tests.
// v must be non-nil; the value is not copied and must not be mutated after.
func Constant(v *value.Dense) *Expr {
	e := newExpr(KindConstant, Dims{Rows: v.Rows(), Cols: v.Cols()})
	e.val = v

	return e
}

// Scalar wraps a single number as a 1×1 constant leaf.
func Scalar(v float64) *Expr {
	return Constant(value.Scalar(v))
}

// Vector wraps a 1-D slice as an n×1 constant column vector. The node is
// marked as originating from a 1-D array, which the product rule's shape
// heuristic for flattened arrays keys on.
func Vector(v []float64) (*Expr, error) {
	d, err := value.FromVector(v)
	if err != nil {
		return nil, fmt.Errorf("Vector: %w", ErrDimensionMismatch)
	}
	e := Constant(d)
	e.flat = true

	return e, nil
}

// Matrix wraps row slices as a constant matrix. All rows must be non-empty
// and of equal length.
func Matrix(rows [][]float64) (*Expr, error) {
	d, err := value.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", ErrDimensionMismatch)
	}

	return Constant(d), nil
}

// Variable creates a rows×cols optimization variable leaf. Variables are
// affine (simultaneously convex and concave) with unknown sign.
func Variable(name string, rows, cols int) (*Expr, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Variable: %d×%d: %w", rows, cols, ErrDimensionMismatch)
	}
	e := newExpr(KindVariable, Dims{Rows: rows, Cols: cols})
	e.varName = name

	return e, nil
}

// SetValue assigns the numeric point a variable takes during evaluation.
// It is the one assignment a finished graph admits: a value slot on a
// variable leaf, consumed by Value and Gradient. Structure and
// classification are untouched. The shape must match the variable's.
func (e *Expr) SetValue(v *value.Dense) error {
	if e.kind != KindVariable {
		return fmt.Errorf("SetValue on %s node: %w", e.kind, ErrNotAVariable)
	}
	if v != nil && (v.Rows() != e.dims.Rows || v.Cols() != e.dims.Cols) {
		return mismatchf("SetValue", e.dims, Dims{Rows: v.Rows(), Cols: v.Cols()})
	}
	e.val = v

	return nil
}
