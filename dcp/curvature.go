// Package dcp: the Curvature lattice and its derivation rule.
//
// Curvature is never stored on a node; it is always re-derived from the
// node's structural predicates via CurvatureFrom, using the fixed priority
// CONSTANT > AFFINE > CONVEX > CONCAVE > UNKNOWN (first predicate wins).
package dcp

// Curvature classifies an expression's shape over its domain.
type Curvature int

const (
	// Constant – no free variables, or identically zero.
	Constant Curvature = iota

	// Affine – both convex and concave (includes all constants).
	Affine

	// Convex – convex but not provably concave.
	Convex

	// Concave – concave but not provably convex.
	Concave

	// UnknownCurvature – neither convexity nor concavity is provable;
	// a node with this curvature fails DCP verification.
	UnknownCurvature
)

// String returns the canonical upper-case label of the curvature.
func (c Curvature) String() string {
	switch c {
	case Constant:
		return "CONSTANT"
	case Affine:
		return "AFFINE"
	case Convex:
		return "CONVEX"
	case Concave:
		return "CONCAVE"
	default:
		return "UNKNOWN"
	}
}

// IsConvex reports whether the curvature lies in the convex cone of the
// lattice (CONSTANT, AFFINE or CONVEX).
func (c Curvature) IsConvex() bool {
	return c == Constant || c == Affine || c == Convex
}

// IsConcave reports whether the curvature lies in the concave cone of the
// lattice (CONSTANT, AFFINE or CONCAVE).
func (c Curvature) IsConcave() bool {
	return c == Constant || c == Affine || c == Concave
}

// IsAffine reports whether the curvature is at most AFFINE.
func (c Curvature) IsAffine() bool {
	return c == Constant || c == Affine
}

// CurvatureFrom derives the lattice point from a node's structural
// predicates, in the fixed priority order:
//
//	CONSTANT > AFFINE > CONVEX > CONCAVE > UNKNOWN
//
// Affinity is itself derived, never supplied: a node is affine iff it is
// constant or simultaneously convex and concave.
func CurvatureFrom(isConstant, isConvex, isConcave bool) Curvature {
	switch {
	case isConstant:
		return Constant
	case isConvex && isConcave:
		return Affine
	case isConvex:
		return Convex
	case isConcave:
		return Concave
	default:
		return UnknownCurvature
	}
}
