// Package expr: structural classification. Every predicate here is a pure,
// lazily evaluated function of the operands' corresponding predicates,
// propagated from the leaves — numeric evaluation is never consulted (a
// constant leaf inspects only its own stored entries). Operands are
// immutable, so recomputation on demand is safe and cheap.

package expr

import (
	"math"

	"github.com/katalvlaran/cvxgraph/dcp"
)

// Variables collects the distinct variable leaves reachable from e, in
// first-encounter order. Shared sub-expressions are visited once.
func (e *Expr) Variables() []*Expr {
	var vars []*Expr
	seen := make(map[uint64]bool)
	var walk func(*Expr)
	walk = func(n *Expr) {
		if seen[n.id] {
			return
		}
		seen[n.id] = true
		if n.kind == KindVariable {
			vars = append(vars, n)
			return
		}
		for _, a := range n.args {
			walk(a)
		}
	}
	walk(e)

	return vars
}

// IsConstant reports whether the expression has no free variables, or is
// identically zero.
func (e *Expr) IsConstant() bool {
	return len(e.Variables()) == 0 || e.IsZero()
}

// IsZero reports whether the expression is provably the zero value: the
// conjunction of the nonnegativity and nonpositivity predicates.
func (e *Expr) IsZero() bool {
	s := e.latticeSign()

	return s == dcp.Zero
}

// IsAffine reports whether the expression is affine: constant, or both
// convex and concave.
func (e *Expr) IsAffine() bool {
	return e.IsConstant() || (e.IsConvex() && e.IsConcave())
}

// IsDCP reports whether the expression obeys the composition discipline:
// provably convex or provably concave. A node of unknown curvature fails.
func (e *Expr) IsDCP() bool {
	return e.IsConvex() || e.IsConcave()
}

// Curvature derives the lattice point from the structural predicates, in the
// fixed priority CONSTANT > AFFINE > CONVEX > CONCAVE > UNKNOWN.
func (e *Expr) Curvature() dcp.Curvature {
	return dcp.CurvatureFrom(e.IsConstant(), e.IsConvex(), e.IsConcave())
}

// Sign derives the sign lattice point from the structural predicates.
func (e *Expr) Sign() dcp.Sign {
	return dcp.SignFrom(e.IsPositive(), e.IsNegative())
}

// IsPositive reports whether every entry is provably ≥ 0.
func (e *Expr) IsPositive() bool {
	return e.latticeSign().IsNonNegative()
}

// IsNegative reports whether every entry is provably ≤ 0.
func (e *Expr) IsNegative() bool {
	return e.latticeSign().IsNonPositive()
}

// IsConvex reports whether the expression is provably convex. Each composite
// derives the answer from its operands' predicates through the lattice rule
// of its own composition.
func (e *Expr) IsConvex() bool {
	switch e.kind {
	case KindConstant, KindVariable:
		return true
	case KindAdd:
		return e.args[0].IsConvex() && e.args[1].IsConvex()
	case KindNeg:
		return e.args[0].IsConcave()
	case KindMul:
		coeff, other := e.mulOperands()
		return dcp.ScaleConvex(coeff.latticeSign(), other.IsConvex(), other.IsConcave())
	case KindDiv:
		return dcp.ScaleConvex(e.args[1].latticeSign(), e.args[0].IsConvex(), e.args[0].IsConcave())
	case KindPow:
		return powIsConvex(e.exponent, e.args[0])
	case KindTranspose, KindIndex, KindSelect, KindMask:
		return e.args[0].IsConvex()
	default:
		panic("expr: IsConvex: invalid kind")
	}
}

// IsConcave reports whether the expression is provably concave.
func (e *Expr) IsConcave() bool {
	switch e.kind {
	case KindConstant, KindVariable:
		return true
	case KindAdd:
		return e.args[0].IsConcave() && e.args[1].IsConcave()
	case KindNeg:
		return e.args[0].IsConvex()
	case KindMul:
		coeff, other := e.mulOperands()
		return dcp.ScaleConcave(coeff.latticeSign(), other.IsConvex(), other.IsConcave())
	case KindDiv:
		return dcp.ScaleConcave(e.args[1].latticeSign(), e.args[0].IsConvex(), e.args[0].IsConcave())
	case KindPow:
		return powIsConcave(e.exponent, e.args[0])
	case KindTranspose, KindIndex, KindSelect, KindMask:
		return e.args[0].IsConcave()
	default:
		panic("expr: IsConcave: invalid kind")
	}
}

// latticeSign computes the sign lattice point by structural recursion,
// combining operand signs with the dcp sign algebra.
func (e *Expr) latticeSign() dcp.Sign {
	switch e.kind {
	case KindConstant:
		return dcp.SignFrom(e.val.AllNonNegative(), e.val.AllNonPositive())
	case KindVariable:
		return dcp.UnknownSign
	case KindAdd:
		return e.args[0].latticeSign().Add(e.args[1].latticeSign())
	case KindNeg:
		return e.args[0].latticeSign().Negate()
	case KindMul, KindDiv:
		// Reciprocal of a definite scalar keeps its sign, so division shares
		// the multiplication rule.
		return e.args[0].latticeSign().Mul(e.args[1].latticeSign())
	case KindPow:
		return powLatticeSign(e.exponent, e.args[0])
	case KindTranspose, KindIndex, KindSelect, KindMask:
		return e.args[0].latticeSign()
	default:
		panic("expr: latticeSign: invalid kind")
	}
}

// mulOperands splits a product node into its constant coefficient and the
// other operand. Operands are stored in product order; at least one side is
// constant by the product rule's precondition.
func (e *Expr) mulOperands() (coeff, other *Expr) {
	if e.args[0].IsConstant() {
		return e.args[0], e.args[1]
	}

	return e.args[1], e.args[0]
}

// Exponent classification helpers shared by the power rule and the power
// predicates. p=0 and p=1 never reach here: the power rule resolves them to
// a constant and to the base itself.

func isIntExponent(p float64) bool { return p == math.Trunc(p) }

func isEvenExponent(p float64) bool {
	return isIntExponent(p) && math.Mod(math.Abs(p), 2) == 0
}

// powIsConvex encodes the DCP-valid power combinations yielding convexity:
//
//	even integer p ≥ 2: affine, convex-nonnegative, or concave-nonpositive base
//	other p > 1:        affine or convex-nonnegative base
//	p < 0:              affine or concave-nonnegative base
func powIsConvex(p float64, a *Expr) bool {
	switch {
	case p > 1 && isEvenExponent(p):
		return a.IsAffine() || (a.IsConvex() && a.IsPositive()) || (a.IsConcave() && a.IsNegative())
	case p > 1:
		return a.IsAffine() || (a.IsConvex() && a.IsPositive())
	case p < 0:
		return a.IsAffine() || (a.IsConcave() && a.IsPositive())
	default:
		return false
	}
}

// powIsConcave encodes the single concavity row of the power table:
// p ∈ (0,1) with an affine or concave-nonnegative base.
func powIsConcave(p float64, a *Expr) bool {
	if p > 0 && p < 1 {
		return a.IsAffine() || (a.IsConcave() && a.IsPositive())
	}

	return false
}

// powLatticeSign: an odd integer exponent propagates the base's sign; every
// other exponent (even, fractional or negative) yields a nonnegative result.
func powLatticeSign(p float64, a *Expr) dcp.Sign {
	if isIntExponent(p) && !isEvenExponent(p) {
		return a.latticeSign()
	}

	return dcp.Positive
}
