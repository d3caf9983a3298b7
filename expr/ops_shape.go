// Package expr: shape-changing composition rules — power, transpose, and the
// indexing family. Indexing nodes record the selected operand entries in
// row-major order, which both numeric evaluation and Jacobian selection
// reuse directly.

package expr

import (
	"fmt"

	"github.com/katalvlaran/cvxgraph/value"
)

// Pow builds the elementwise power aᵖ for a numeric constant exponent.
//
// Two exponents resolve without a new composite: p = 0 yields the all-ones
// constant of a's shape, and p = 1 yields a itself. Every other exponent
// must hit a DCP-valid (base curvature, exponent) combination:
//
//	even integer p ≥ 2 – convex for affine, convex-nonnegative or
//	                     concave-nonpositive bases
//	other p > 1        – convex for affine or convex-nonnegative bases
//	p ∈ (0,1)          – concave for affine or concave-nonnegative bases
//	p < 0              – convex for affine or concave-nonnegative bases
//
// Combinations outside the table fail with ErrDisciplineViolation.
// Fractional and negative exponents restrict the base to nonnegative values;
// see Domain.
func Pow(a *Expr, p float64) (*Expr, error) {
	switch p {
	case 0:
		ones, _ := value.Ones(a.dims.Rows, a.dims.Cols) // dims are ≥1 by node invariant
		return Constant(ones), nil
	case 1:
		return a, nil
	}
	if !powIsConvex(p, a) && !powIsConcave(p, a) {
		return nil, violationf(opPow,
			fmt.Sprintf("unsupported combination of exponent %g and %s operand", p, a.Curvature()))
	}
	e := newExpr(KindPow, a.dims, a)
	e.exponent = p

	return e, nil
}

// Transpose builds the transpose of a: shape swapped, curvature and sign
// unchanged. Transposing a scalar is the identity and returns the same node.
func Transpose(a *Expr) *Expr {
	if a.IsScalar() {
		return a
	}

	return newExpr(KindTranspose, a.dims.Transposed(), a)
}

// At builds the single-entry selection a[i, j], a scalar node with the
// operand's curvature and sign. The key must lie within a's shape.
func At(a *Expr, i, j int) (*Expr, error) {
	if i < 0 || i >= a.dims.Rows || j < 0 || j >= a.dims.Cols {
		return nil, fmt.Errorf("%s: key (%d,%d) outside %s: %w",
			opIndex, i, j, a.dims, ErrDimensionMismatch)
	}
	e := newExpr(KindIndex, Dims{Rows: 1, Cols: 1}, a)
	e.sel = []int{i*a.dims.Cols + j}

	return e, nil
}

// Slice builds the contiguous sub-block a[r0:r1, c0:c1] with half-open
// ranges. Both ranges must be non-empty and within a's shape. Curvature and
// sign are unchanged; the shape reduces to (r1-r0)×(c1-c0).
func Slice(a *Expr, r0, r1, c0, c1 int) (*Expr, error) {
	if r0 < 0 || r1 > a.dims.Rows || r0 >= r1 || c0 < 0 || c1 > a.dims.Cols || c0 >= c1 {
		return nil, fmt.Errorf("%s: key [%d:%d, %d:%d] outside %s: %w",
			opSlice, r0, r1, c0, c1, a.dims, ErrDimensionMismatch)
	}
	e := newExpr(KindIndex, Dims{Rows: r1 - r0, Cols: c1 - c0}, a)
	e.sel = make([]int, 0, (r1-r0)*(c1-c0))
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			e.sel = append(e.sel, i*a.dims.Cols+j)
		}
	}

	return e, nil
}

// Select builds the fancy selection a[rows, cols]: the cross product of
// explicit row and column index lists, in the order given, with repetition
// allowed. The result shape is len(rows)×len(cols).
func Select(a *Expr, rows, cols []int) (*Expr, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("%s: empty index list on %s: %w", opSelect, a.dims, ErrDimensionMismatch)
	}
	sel := make([]int, 0, len(rows)*len(cols))
	for _, i := range rows {
		if i < 0 || i >= a.dims.Rows {
			return nil, fmt.Errorf("%s: row %d outside %s: %w", opSelect, i, a.dims, ErrDimensionMismatch)
		}
		for _, j := range cols {
			if j < 0 || j >= a.dims.Cols {
				return nil, fmt.Errorf("%s: col %d outside %s: %w", opSelect, j, a.dims, ErrDimensionMismatch)
			}
			sel = append(sel, i*a.dims.Cols+j)
		}
	}
	e := newExpr(KindSelect, Dims{Rows: len(rows), Cols: len(cols)}, a)
	e.sel = sel

	return e, nil
}

// Mask builds the boolean-mask selection a[mask]: the entries where mask is
// true, flattened in row-major order into an n×1 column — the distinct
// shape-reduction rule of the special slice. The mask must match a's shape
// exactly and select at least one entry.
func Mask(a *Expr, mask [][]bool) (*Expr, error) {
	if len(mask) != a.dims.Rows {
		return nil, fmt.Errorf("%s: mask of %d rows on %s: %w", opMask, len(mask), a.dims, ErrDimensionMismatch)
	}
	var sel []int
	for i, row := range mask {
		if len(row) != a.dims.Cols {
			return nil, fmt.Errorf("%s: mask row %d of %d cols on %s: %w",
				opMask, i, len(row), a.dims, ErrDimensionMismatch)
		}
		for j, keep := range row {
			if keep {
				sel = append(sel, i*a.dims.Cols+j)
			}
		}
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("%s: mask selects no entries of %s: %w", opMask, a.dims, ErrDimensionMismatch)
	}
	e := newExpr(KindMask, Dims{Rows: len(sel), Cols: 1}, a)
	e.sel = sel

	return e, nil
}
