// Package cvxgraph builds expression graphs for convex optimization models
// and statically verifies them against the rules of Disciplined Convex
// Programming (DCP) — a syntactic sufficient condition for convexity.
//
// 🚀 What is cvxgraph?
//
//	A pure-Go expression layer that brings together:
//		• Node construction: constants, variables, and composite expressions
//		• Curvature & sign inference: every composition derives convexity,
//		  concavity, affinity and numeric sign from its operands
//		• DCP verification: compositions outside the discipline fail fast
//		  at construction time, never at solve time
//		• Constraint builders: equality, inequality and PSD-ordering relations
//
// ✨ Why choose cvxgraph?
//
//   - Fail-fast guarantees – shape and discipline errors surface at the
//     exact operator that caused them
//   - Immutable nodes – graphs are safe for concurrent read-only traversal
//   - Pure Go – no cgo, no hidden deps
//   - Structural classification – curvature and sign are inferred from the
//     graph alone, never from numeric evaluation
//
// Under the hood, everything is organized under three subpackages:
//
//	dcp/   — the finite curvature & sign lattice and its combination rules
//	expr/  — expression nodes, composition rules, casting and constraints
//	value/ — dense numeric values backing constants and gradients
//
// Quick example:
//
//	x := expr.Variable("x", 1, 1)
//	e, _ := expr.Mul(expr.Scalar(5), x)   // affine, like x
//	c, _ := expr.Leq(e, 3)                // inequality constraint
//	_ = c.IsDCP()                         // true: affine <= constant
//
// A composition that breaks the discipline — say, the product of two
// variables — returns expr.ErrDisciplineViolation instead of a node, so an
// unsound "convex" model can never be built silently.
package cvxgraph
