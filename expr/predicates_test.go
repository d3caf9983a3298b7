// Package expr_test validates the structural classification engine: the
// lattice-derivation properties every node must satisfy, and the per-kind
// curvature/sign propagation.
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvxgraph/dcp"
	"github.com/katalvlaran/cvxgraph/expr"
	"github.com/katalvlaran/cvxgraph/value"
)

// newVar is a test helper for a fresh variable leaf.
func newVar(t *testing.T, name string, rows, cols int) *expr.Expr {
	t.Helper()
	v, err := expr.Variable(name, rows, cols)
	require.NoError(t, err)

	return v
}

// square is a test helper for x² of a scalar variable: CONVEX, POSITIVE.
func square(t *testing.T, x *expr.Expr) *expr.Expr {
	t.Helper()
	s, err := expr.Pow(x, 2)
	require.NoError(t, err)

	return s
}

// ------------------------------------------------------------------------
// 1. Leaf classification.
// ------------------------------------------------------------------------

func TestConstants_AreConstantAndDCP(t *testing.T) {
	vec, err := expr.Vector([]float64{1, 2})
	require.NoError(t, err)
	mat, err := expr.Matrix([][]float64{{-1, 0}, {0, -2}})
	require.NoError(t, err)

	for _, c := range []*expr.Expr{expr.Scalar(5), expr.Scalar(-2), expr.Scalar(0), vec, mat} {
		require.Equal(t, dcp.Constant, c.Curvature())
		require.True(t, c.IsDCP())
		require.True(t, c.IsConstant())
		require.Empty(t, c.Variables())
	}
}

func TestConstant_SignFromEntries(t *testing.T) {
	require.Equal(t, dcp.Positive, expr.Scalar(5).Sign())
	require.Equal(t, dcp.Negative, expr.Scalar(-3).Sign())
	require.Equal(t, dcp.Zero, expr.Scalar(0).Sign())

	mixed, err := expr.Vector([]float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, dcp.UnknownSign, mixed.Sign())
}

func TestVariable_IsAffineUnknownSign(t *testing.T) {
	x := newVar(t, "x", 2, 3)
	require.Equal(t, dcp.Affine, x.Curvature())
	require.Equal(t, dcp.UnknownSign, x.Sign())
	require.True(t, x.IsDCP())
	require.False(t, x.IsConstant())
	require.Len(t, x.Variables(), 1)
	require.Equal(t, expr.Dims{Rows: 2, Cols: 3}, x.Dims())
}

// ------------------------------------------------------------------------
// 2. Lattice properties holding for every node.
// ------------------------------------------------------------------------

// sampleNodes builds a spread of kinds and curvatures over one scalar
// variable.
func sampleNodes(t *testing.T) []*expr.Expr {
	t.Helper()
	x := newVar(t, "x", 1, 1)
	sq := square(t, x)
	scaled, err := expr.Mul(expr.Scalar(-2), sq)
	require.NoError(t, err)
	sum, err := expr.Add(sq, x)
	require.NoError(t, err)
	quot, err := expr.Div(sq, 4)
	require.NoError(t, err)
	zeroed, err := expr.Mul(expr.Scalar(0), x)
	require.NoError(t, err)

	return []*expr.Expr{
		expr.Scalar(3), expr.Scalar(-1), expr.Scalar(0),
		x, expr.Neg(x), sq, expr.Neg(sq), scaled, sum, quot, zeroed,
	}
}

func TestProperty_AffineEquivalence(t *testing.T) {
	// is_affine ⇔ is_constant ∨ (is_convex ∧ is_concave), for every node.
	for _, n := range sampleNodes(t) {
		want := n.IsConstant() || (n.IsConvex() && n.IsConcave())
		require.Equal(t, want, n.IsAffine(), "node %s", n)
	}
}

func TestProperty_ZeroSignConjunction(t *testing.T) {
	// sign == ZERO ⇔ is_positive ∧ is_negative, for every node.
	for _, n := range sampleNodes(t) {
		both := n.IsPositive() && n.IsNegative()
		require.Equal(t, both, n.Sign() == dcp.Zero, "node %s", n)
	}
}

func TestProperty_DCPIsConvexOrConcave(t *testing.T) {
	for _, n := range sampleNodes(t) {
		require.Equal(t, n.IsConvex() || n.IsConcave(), n.IsDCP(), "node %s", n)
	}
}

// ------------------------------------------------------------------------
// 3. Structural zero: a zero coefficient collapses to a constant.
// ------------------------------------------------------------------------

func TestZeroScale_IsConstantZero(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	zeroed, err := expr.Mul(expr.Scalar(0), x)
	require.NoError(t, err)
	require.Equal(t, dcp.Zero, zeroed.Sign())
	require.True(t, zeroed.IsZero())
	// Identically zero counts as constant even with a variable inside.
	require.True(t, zeroed.IsConstant())
	require.Equal(t, dcp.Constant, zeroed.Curvature())
}

// ------------------------------------------------------------------------
// 4. Structural equality and node identity.
// ------------------------------------------------------------------------

func TestEqual_StructuralNotIdentity(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	a, err := expr.Add(x, 3)
	require.NoError(t, err)
	b, err := expr.Add(x, 3)
	require.NoError(t, err)

	// Two independently built copies are structurally equal but distinct.
	require.True(t, expr.Equal(a, b))
	require.NotEqual(t, a.ID(), b.ID())

	// Different payloads are not equal.
	c, err := expr.Add(x, 4)
	require.NoError(t, err)
	require.False(t, expr.Equal(a, c))

	// Two variables under the same name stay distinct objects.
	y := newVar(t, "x", 1, 1)
	require.False(t, expr.Equal(x, y))
}

func TestIDs_MonotonicallyIncrease(t *testing.T) {
	a := expr.Scalar(1)
	b := expr.Scalar(2)
	require.Greater(t, b.ID(), a.ID())
}

// ------------------------------------------------------------------------
// 5. Value access never drives classification.
// ------------------------------------------------------------------------

func TestClassification_IgnoresAssignedValues(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	require.Equal(t, dcp.UnknownSign, x.Sign())
	require.NoError(t, x.SetValue(value.Scalar(5)))
	// A concrete positive point does not make the variable sign POSITIVE:
	// classification is structural.
	require.Equal(t, dcp.UnknownSign, x.Sign())
	require.Equal(t, dcp.Affine, x.Curvature())
}
