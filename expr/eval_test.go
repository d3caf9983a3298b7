// Package expr_test: numeric queries — Value over every node kind, Gradient
// Jacobian blocks per variable, and Domain side constraints.
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvxgraph/expr"
	"github.com/katalvlaran/cvxgraph/value"
)

// entry reads one cell of a value, failing the test on a bad position.
func entry(t *testing.T, m *value.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// identity builds an n×n identity value.
func identity(t *testing.T, n int) *value.Dense {
	t.Helper()
	eye, err := value.Identity(n)
	require.NoError(t, err)

	return eye
}

// column builds an n×1 value from the given entries.
func column(t *testing.T, vs ...float64) *value.Dense {
	t.Helper()
	d, err := value.FromVector(vs)
	require.NoError(t, err)

	return d
}

// setScalar assigns a scalar point to a variable.
func setScalar(t *testing.T, x *expr.Expr, v float64) {
	t.Helper()
	require.NoError(t, x.SetValue(value.Scalar(v)))
}

// ------------------------------------------------------------------------
// 1. Value.
// ------------------------------------------------------------------------

func TestValue_NilUntilAssigned(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	sum, err := expr.Add(x, 1)
	require.NoError(t, err)
	require.Nil(t, sum.Value())

	setScalar(t, x, 4)
	got := sum.Value()
	require.NotNil(t, got)
	require.InDelta(t, 5, entry(t, got, 0, 0), value.DefaultEpsilon)
}

func TestValue_AffineScalarChain(t *testing.T) {
	// 5x + 1 at x = 4.
	x := newVar(t, "x", 1, 1)
	setScalar(t, x, 4)
	fiveX, err := expr.Mul(expr.Scalar(5), x)
	require.NoError(t, err)
	e, err := expr.Add(fiveX, 1)
	require.NoError(t, err)
	require.InDelta(t, 21, entry(t, e.Value(), 0, 0), value.DefaultEpsilon)
}

func TestValue_MatrixProductAndTranspose(t *testing.T) {
	c, err := expr.Matrix([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	x := newVar(t, "X", 2, 1)
	require.NoError(t, x.SetValue(column(t, 1, 1)))

	prod, err := expr.Mul(c, x)
	require.NoError(t, err)
	pv := prod.Value()
	require.InDelta(t, 3, entry(t, pv, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 7, entry(t, pv, 1, 0), value.DefaultEpsilon)

	tv := expr.Transpose(prod).Value()
	require.Equal(t, 1, tv.Rows())
	require.Equal(t, 2, tv.Cols())
	require.InDelta(t, 7, entry(t, tv, 0, 1), value.DefaultEpsilon)
}

func TestValue_ScalarBroadcastSum(t *testing.T) {
	m, err := expr.Matrix([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	shifted, err := expr.Add(m, 10)
	require.NoError(t, err)
	sv := shifted.Value()
	require.InDelta(t, 11, entry(t, sv, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 14, entry(t, sv, 1, 1), value.DefaultEpsilon)
}

func TestValue_DivPowAndNeg(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	setScalar(t, x, 6)

	half, err := expr.Div(x, 2)
	require.NoError(t, err)
	require.InDelta(t, 3, entry(t, half.Value(), 0, 0), value.DefaultEpsilon)

	sq := square(t, x)
	require.InDelta(t, 36, entry(t, sq.Value(), 0, 0), value.DefaultEpsilon)

	require.InDelta(t, -6, entry(t, expr.Neg(x).Value(), 0, 0), value.DefaultEpsilon)
}

func TestValue_IndexingGathers(t *testing.T) {
	m, err := expr.Matrix([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	e10, err := expr.At(m, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, 3, entry(t, e10.Value(), 0, 0), value.DefaultEpsilon)

	col, err := expr.Slice(m, 0, 2, 1, 2)
	require.NoError(t, err)
	cv := col.Value()
	require.InDelta(t, 2, entry(t, cv, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 4, entry(t, cv, 1, 0), value.DefaultEpsilon)

	diag, err := expr.Mask(m, [][]bool{{true, false}, {false, true}})
	require.NoError(t, err)
	dv := diag.Value()
	require.Equal(t, 2, dv.Rows())
	require.InDelta(t, 1, entry(t, dv, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 4, entry(t, dv, 1, 0), value.DefaultEpsilon)
}

func TestValue_FreshCopyPerCall(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	setScalar(t, x, 2)
	v := x.Value()
	require.NoError(t, v.Set(0, 0, 99))
	require.InDelta(t, 2, entry(t, x.Value(), 0, 0), value.DefaultEpsilon)
}

// ------------------------------------------------------------------------
// 2. Gradient.
// ------------------------------------------------------------------------

func TestGradient_NilUntilAssigned(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	require.Nil(t, square(t, x).Gradient())
}

func TestGradient_ScalarAffine(t *testing.T) {
	// d(5x)/dx = 5 regardless of the point.
	x := newVar(t, "x", 1, 1)
	setScalar(t, x, 7)
	fiveX, err := expr.Mul(expr.Scalar(5), x)
	require.NoError(t, err)

	g := fiveX.Gradient()
	require.Len(t, g, 1)
	require.InDelta(t, 5, entry(t, g[x.ID()], 0, 0), value.DefaultEpsilon)
}

func TestGradient_ConstantLeftProduct(t *testing.T) {
	// vec(C·X) = (C ⊗ I)·vec(X) for C = [[1,2],[3,4]].
	c, err := expr.Matrix([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	x := newVar(t, "X", 2, 2)
	require.NoError(t, x.SetValue(identity(t, 2)))

	prod, err := expr.Mul(c, x)
	require.NoError(t, err)
	j := prod.Gradient()[x.ID()]
	require.Equal(t, 4, j.Rows())
	require.Equal(t, 4, j.Cols())
	require.InDelta(t, 1, entry(t, j, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 2, entry(t, j, 0, 2), value.DefaultEpsilon)
	require.InDelta(t, 3, entry(t, j, 2, 0), value.DefaultEpsilon)
	require.InDelta(t, 4, entry(t, j, 3, 3), value.DefaultEpsilon)
	require.InDelta(t, 0, entry(t, j, 0, 1), value.DefaultEpsilon)
}

func TestGradient_ConstantRightProduct(t *testing.T) {
	// vec(X·B) = (I ⊗ Bᵀ)·vec(X) for B = [[1,2],[3,4]].
	b, err := expr.Matrix([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	x := newVar(t, "X", 2, 2)
	require.NoError(t, x.SetValue(identity(t, 2)))

	prod, err := expr.Mul(x, b)
	require.NoError(t, err)
	j := prod.Gradient()[x.ID()]
	// Top-left 2×2 block is Bᵀ.
	require.InDelta(t, 1, entry(t, j, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 3, entry(t, j, 0, 1), value.DefaultEpsilon)
	require.InDelta(t, 2, entry(t, j, 1, 0), value.DefaultEpsilon)
	require.InDelta(t, 0, entry(t, j, 0, 2), value.DefaultEpsilon)
}

func TestGradient_TransposePermutation(t *testing.T) {
	x := newVar(t, "X", 2, 2)
	require.NoError(t, x.SetValue(identity(t, 2)))
	j := expr.Transpose(x).Gradient()[x.ID()]
	// vec(Xᵀ) reads vec(X) rows in order 0, 2, 1, 3.
	for r, src := range []int{0, 2, 1, 3} {
		require.InDelta(t, 1, entry(t, j, r, src), value.DefaultEpsilon)
	}
}

func TestGradient_IndexPicksRow(t *testing.T) {
	x := newVar(t, "X", 2, 2)
	require.NoError(t, x.SetValue(identity(t, 2)))
	e10, err := expr.At(x, 1, 0)
	require.NoError(t, err)
	j := e10.Gradient()[x.ID()]
	require.Equal(t, 1, j.Rows())
	require.Equal(t, 4, j.Cols())
	// Entry (1,0) lives at flat position 2 of vec(X).
	require.InDelta(t, 1, entry(t, j, 0, 2), value.DefaultEpsilon)
	require.InDelta(t, 0, entry(t, j, 0, 0), value.DefaultEpsilon)
}

func TestGradient_DivScalesInverse(t *testing.T) {
	x := newVar(t, "x", 2, 1)
	require.NoError(t, x.SetValue(column(t, 1, 2)))
	half, err := expr.Div(x, 2)
	require.NoError(t, err)
	j := half.Gradient()[x.ID()]
	require.InDelta(t, 0.5, entry(t, j, 0, 0), value.DefaultEpsilon)
	require.InDelta(t, 0.5, entry(t, j, 1, 1), value.DefaultEpsilon)
	require.InDelta(t, 0, entry(t, j, 0, 1), value.DefaultEpsilon)
}

func TestGradient_PowChainsDerivative(t *testing.T) {
	// d(x²)/dx = 2x evaluated at the current point.
	x := newVar(t, "x", 1, 1)
	setScalar(t, x, 3)
	j := square(t, x).Gradient()[x.ID()]
	require.InDelta(t, 6, entry(t, j, 0, 0), value.DefaultEpsilon)

	// Sum rule composes: d(x² + x)/dx = 2x + 1.
	sum, err := expr.Add(square(t, x), x)
	require.NoError(t, err)
	require.InDelta(t, 7, entry(t, sum.Gradient()[x.ID()], 0, 0), value.DefaultEpsilon)
}

func TestGradient_ZeroCoefficientKeepsKey(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	setScalar(t, x, 5)
	zeroX, err := expr.Mul(expr.Scalar(0), x)
	require.NoError(t, err)
	g := zeroX.Gradient()
	require.Contains(t, g, x.ID())
	require.InDelta(t, 0, entry(t, g[x.ID()], 0, 0), value.DefaultEpsilon)
}

// ------------------------------------------------------------------------
// 3. Domain.
// ------------------------------------------------------------------------

func TestDomain_PowRestrictsBase(t *testing.T) {
	x := newVar(t, "x", 1, 1)

	sqrt, err := expr.Pow(x, 0.5)
	require.NoError(t, err)
	dom := sqrt.Domain()
	require.Len(t, dom, 1)
	require.Equal(t, expr.ConstraintLeq, dom[0].Kind())
	require.Same(t, x, dom[0].Rhs())

	inv, err := expr.Pow(x, -1)
	require.NoError(t, err)
	require.Len(t, inv.Domain(), 1)
}

func TestDomain_IntegerPowersUnrestricted(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	require.Empty(t, square(t, x).Domain())

	sum, err := expr.Add(square(t, x), x)
	require.NoError(t, err)
	require.Empty(t, sum.Domain())
}

func TestDomain_AccumulatesOverOperands(t *testing.T) {
	x := newVar(t, "x", 1, 1)
	y := newVar(t, "y", 1, 1)
	sx, err := expr.Pow(x, 0.5)
	require.NoError(t, err)
	sy, err := expr.Pow(y, 0.5)
	require.NoError(t, err)
	sum, err := expr.Add(sx, sy)
	require.NoError(t, err)

	dom := sum.Domain()
	require.Len(t, dom, 2)
	require.Same(t, x, dom[0].Rhs())
	require.Same(t, y, dom[1].Rhs())
}
