// Package expr: constraint builders. Comparison operations terminate
// composition — they reference two expression nodes instead of producing a
// new one. Strict comparisons alias their non-strict forms: the discipline
// has no strict-inequality semantics.

package expr

import "fmt"

// ConstraintKind tags the relation a constraint imposes between its sides.
type ConstraintKind int

const (
	// ConstraintEq – lhs equals rhs at a solution.
	ConstraintEq ConstraintKind = iota

	// ConstraintLeq – lhs is at most rhs, elementwise.
	ConstraintLeq

	// ConstraintPSD – lhs dominates rhs in the positive-semidefinite order.
	ConstraintPSD
)

// String renders the relation symbol.
func (k ConstraintKind) String() string {
	switch k {
	case ConstraintEq:
		return "=="
	case ConstraintLeq:
		return "<="
	default:
		return ">>"
	}
}

// Constraint is an immutable relation between exactly two expression nodes,
// created only via the comparison builders and consumed downstream by
// canonicalization and solving.
type Constraint struct {
	kind ConstraintKind
	lhs  *Expr
	rhs  *Expr
}

// Kind returns the relation kind.
func (c *Constraint) Kind() ConstraintKind { return c.kind }

// Lhs returns the left-hand node.
func (c *Constraint) Lhs() *Expr { return c.lhs }

// Rhs returns the right-hand node.
func (c *Constraint) Rhs() *Expr { return c.rhs }

// Name renders the constraint as "lhs <relation> rhs".
func (c *Constraint) Name() string {
	return fmt.Sprintf("%s %s %s", c.lhs.Name(), c.kind, c.rhs.Name())
}

// String implements fmt.Stringer as the constraint's name.
func (c *Constraint) String() string { return c.Name() }

// IsDCP reports whether the constraint obeys the composition discipline: an
// equality requires both sides affine, an inequality requires a convex
// left-hand and a concave right-hand side. PSD orderings carry no curvature
// restriction at this layer — that check belongs to a downstream
// canonicalizer.
func (c *Constraint) IsDCP() bool {
	switch c.kind {
	case ConstraintEq:
		return c.lhs.IsAffine() && c.rhs.IsAffine()
	case ConstraintLeq:
		return c.lhs.IsConvex() && c.rhs.IsConcave()
	default:
		return true
	}
}

// Eq builds the equality constraint a == b. Shapes must be
// broadcast-compatible.
func Eq(a *Expr, b any) (*Constraint, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	if _, ok := broadcast(a.dims, bb.dims); !ok {
		return nil, mismatchf(opEq, a.dims, bb.dims)
	}

	return &Constraint{kind: ConstraintEq, lhs: a, rhs: bb}, nil
}

// Leq builds the inequality constraint a <= b. Shapes must be
// broadcast-compatible.
func Leq(a *Expr, b any) (*Constraint, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	if _, ok := broadcast(a.dims, bb.dims); !ok {
		return nil, mismatchf(opLeq, a.dims, bb.dims)
	}

	return &Constraint{kind: ConstraintLeq, lhs: a, rhs: bb}, nil
}

// Geq builds a >= b as the reflected Leq: b <= a.
func Geq(a *Expr, b any) (*Constraint, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}

	return Leq(bb, a)
}

// Lt aliases Leq; the discipline treats strict and non-strict inequalities
// identically.
func Lt(a *Expr, b any) (*Constraint, error) { return Leq(a, b) }

// Gt aliases Geq.
func Gt(a *Expr, b any) (*Constraint, error) { return Geq(a, b) }

// SuccEq builds the positive-semidefinite ordering a ⪰ b: both sides must be
// square and of equal shape. No curvature restriction is imposed here.
func SuccEq(a *Expr, b any) (*Constraint, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}
	if a.dims != bb.dims || !a.dims.IsSquare() {
		return nil, mismatchf(opPSD, a.dims, bb.dims)
	}

	return &Constraint{kind: ConstraintPSD, lhs: a, rhs: bb}, nil
}

// PrecEq builds the reflected ordering a ⪯ b as b ⪰ a.
func PrecEq(a *Expr, b any) (*Constraint, error) {
	bb, err := CastToConst(b)
	if err != nil {
		return nil, err
	}

	return SuccEq(bb, a)
}
