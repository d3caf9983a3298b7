// Package dcp defines the finite classification lattices of Disciplined
// Convex Programming: Curvature and Sign, together with the pure combination
// rules the expression layer consults when composing nodes.
//
// Curvature forms a partial order
//
//	CONSTANT ⊂ AFFINE ⊂ {CONVEX, CONCAVE} ⊂ UNKNOWN
//
// where AFFINE is simultaneously convex and concave. Sign is the four-point
// lattice {ZERO, POSITIVE, NEGATIVE, UNKNOWN}; ZERO is by definition the
// conjunction of POSITIVE and NEGATIVE — a value provably ≥0 and ≤0 at once
// is exactly zero.
//
// Everything in this package is a pure function over classifications: no
// numeric values are ever consulted, no state is kept. The expression layer
// propagates structural predicates (is-convex, is-positive, …) from leaves
// upward and uses CurvatureFrom/SignFrom to collapse them into lattice
// points, and the sign algebra plus the Scale* rules to combine operand
// classifications under addition, negation and constant scaling.
//
// Complexity: every function in this package is O(1).
package dcp
