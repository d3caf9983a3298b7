// Package expr: arithmetic composition rules. Every rule casts its raw
// operand, validates shape and discipline preconditions, and constructs a
// fresh node whose classification is derived from the operands; a failed
// precondition returns an error and no node.

package expr

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opPow       = "Pow"
	opIndex     = "Index"
	opSlice     = "Slice"
	opSelect    = "Select"
	opMask      = "Mask"
	opEq        = "Eq"
	opLeq       = "Leq"
	opPSD       = "SuccEq"
	opTranspose = "Transpose"
)

// Add builds the sum of a and a raw or expression operand. Shapes must be
// broadcast-compatible: equal, or either operand scalar (the scalar promotes
// to the other shape). The sum is convex when both summands are convex,
// concave when both are concave, affine when both are affine; its sign
// follows the sign-addition lattice.
func Add(a *Expr, b any) (*Expr, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	dims, ok := broadcast(a.dims, bb.dims)
	if !ok {
		return nil, mismatchf(opAdd, a.dims, bb.dims)
	}

	return newExpr(KindAdd, dims, a, bb), nil
}

// Sub builds the difference a - b as the sum of a and the negation of b.
func Sub(a *Expr, b any) (*Expr, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	dims, ok := broadcast(a.dims, bb.dims)
	if !ok {
		return nil, mismatchf(opSub, a.dims, bb.dims)
	}

	return newExpr(KindAdd, dims, a, Neg(bb)), nil
}

// Neg builds the negation of a. Convexity and concavity swap, and the sign
// flips; there are no preconditions.
func Neg(a *Expr) *Expr {
	return newExpr(KindNeg, a.dims, a)
}

// Mul builds the product of a and a raw or expression operand. At least one
// operand must be constant — the product of two non-constant expressions
// breaks the discipline. The constant factor's sign drives the curvature: a
// nonnegative scale preserves the other operand's curvature, a nonpositive
// scale swaps convexity and concavity.
//
// Canonical ordering: when either operand is scalar and the other is not,
// the constant is placed left as the coefficient, so a single scale rule
// covers both literal placements. A constant column built from a 1-D array
// whose row count matches the other operand's rows (and whose own shape is
// not square) is silently transposed first — the long-standing shape
// inference for flattened arrays participating in matrix products.
func Mul(a *Expr, b any) (*Expr, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	switch {
	case !a.IsConstant() && !bb.IsConstant():
		return nil, violationf(opMul, "cannot multiply two non-constant expressions")
	case a.IsConstant():
		if a.kind == KindConstant && a.flat &&
			a.dims.Rows == bb.dims.Rows && !a.dims.IsSquare() {
			a = Transpose(a)
		}
		return mulNode(a, bb)
	default:
		// Constant on the right. A scalar on either side reduces the
		// product to a scale, with the constant as the left coefficient;
		// otherwise this is a genuine right multiplication.
		if bb.IsScalar() || a.IsScalar() {
			return mulNode(bb, a)
		}
		return mulNode(a, bb)
	}
}

// mulNode validates the product shape for operands in product order and
// constructs the node. A scalar on either side scales the other operand;
// otherwise the inner dimensions must agree.
func mulNode(u, v *Expr) (*Expr, error) {
	var dims Dims
	switch {
	case u.IsScalar():
		dims = v.dims
	case v.IsScalar():
		dims = u.dims
	case u.dims.Cols == v.dims.Rows:
		dims = Dims{Rows: u.dims.Rows, Cols: v.dims.Cols}
	default:
		return nil, mismatchf(opMul, u.dims, v.dims)
	}

	return newExpr(KindMul, dims, u, v), nil
}

// Div builds the elementwise quotient of a by a scalar constant. Dividing by
// anything non-constant or non-scalar breaks the discipline. The quotient is
// the product by the divisor's reciprocal: a positive divisor preserves the
// numerator's curvature, a negative one swaps it.
func Div(a *Expr, b any) (*Expr, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	if !bb.IsConstant() || !bb.IsScalar() {
		return nil, violationf(opDiv, "can only divide by a scalar constant")
	}

	return newExpr(KindDiv, a.dims, a, bb), nil
}
