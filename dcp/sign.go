// Package dcp: the Sign lattice, its algebra, and the constant-scaling
// curvature rules used by the multiply/divide composition rules.
package dcp

// Sign classifies whether an expression's value is provably nonnegative,
// nonpositive, exactly zero, or unknown.
type Sign int

const (
	// Zero – provably ≥0 and ≤0 at once, hence identically zero.
	Zero Sign = iota

	// Positive – provably nonnegative (every entry ≥ 0).
	Positive

	// Negative – provably nonpositive (every entry ≤ 0).
	Negative

	// UnknownSign – neither nonnegativity nor nonpositivity is provable.
	UnknownSign
)

// String returns the canonical upper-case label of the sign.
func (s Sign) String() string {
	switch s {
	case Zero:
		return "ZERO"
	case Positive:
		return "POSITIVE"
	case Negative:
		return "NEGATIVE"
	default:
		return "UNKNOWN"
	}
}

// IsNonNegative reports whether the sign guarantees every entry ≥ 0.
func (s Sign) IsNonNegative() bool {
	return s == Zero || s == Positive
}

// IsNonPositive reports whether the sign guarantees every entry ≤ 0.
func (s Sign) IsNonPositive() bool {
	return s == Zero || s == Negative
}

// SignFrom derives the lattice point from a node's structural predicates.
// ZERO is the conjunction of both predicates; otherwise the single holding
// predicate wins; UNKNOWN is the default when neither is provable.
func SignFrom(isPositive, isNegative bool) Sign {
	switch {
	case isPositive && isNegative:
		return Zero
	case isPositive:
		return Positive
	case isNegative:
		return Negative
	default:
		return UnknownSign
	}
}

// Negate flips the sign: ZERO is fixed, POSITIVE and NEGATIVE swap,
// UNKNOWN stays unknown.
func (s Sign) Negate() Sign {
	switch s {
	case Positive:
		return Negative
	case Negative:
		return Positive
	default:
		return s
	}
}

// Add combines the signs of two summands. ZERO is the additive identity;
// equal definite signs are preserved; opposite or unknown operands yield
// UNKNOWN.
func (s Sign) Add(o Sign) Sign {
	switch {
	case s == Zero:
		return o
	case o == Zero:
		return s
	case s == o:
		return s
	default:
		return UnknownSign
	}
}

// Mul combines the signs of two factors. ZERO annihilates; definite signs
// follow the usual rule of signs; UNKNOWN absorbs everything else.
func (s Sign) Mul(o Sign) Sign {
	switch {
	case s == Zero || o == Zero:
		return Zero
	case s == UnknownSign || o == UnknownSign:
		return UnknownSign
	case s == o:
		return Positive
	default:
		return Negative
	}
}

// ScaleConvex reports whether scaling an operand with the given convexity and
// concavity predicates by a constant of sign s yields a convex result:
//
//   - an affine operand stays affine under any constant scale;
//   - a ZERO scale collapses the product to the zero constant;
//   - a POSITIVE scale preserves convexity, a NEGATIVE scale swaps in
//     concavity;
//   - an UNKNOWN scale destroys any non-affine curvature.
func ScaleConvex(s Sign, isConvex, isConcave bool) bool {
	switch {
	case isConvex && isConcave:
		return true
	case s == Zero:
		return true
	case s == Positive:
		return isConvex
	case s == Negative:
		return isConcave
	default:
		return false
	}
}

// ScaleConcave is the mirror of ScaleConvex: whether the scaled operand is
// concave. A POSITIVE scale preserves concavity, a NEGATIVE scale swaps in
// convexity.
func ScaleConcave(s Sign, isConvex, isConcave bool) bool {
	switch {
	case isConvex && isConcave:
		return true
	case s == Zero:
		return true
	case s == Positive:
		return isConcave
	case s == Negative:
		return isConvex
	default:
		return false
	}
}
