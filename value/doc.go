// SPDX-License-Identifier: MIT

// Package value provides the dense numeric values that back constant
// expression nodes and gradient blocks.
//
// The expression layer treats values as opaque: it consumes only the shape
// query, the zero test, the elementwise sign tests, and a small set of
// linear-algebra kernels (add, scale, matmul, transpose, Hadamard, Kronecker,
// row selection) used by numeric evaluation and Jacobian composition.
// Classification of an expression never touches this package — curvature and
// sign are structural — with the single exception of a constant leaf
// inspecting its own stored entries.
//
// Dense is a row-major float64 matrix. All operations are fail-fast: shape
// violations return sentinel errors (ErrBadShape, ErrDimensionMismatch,
// ErrOutOfRange) matched via errors.Is, and operands are never mutated —
// every kernel allocates a fresh result.
//
// Numeric policy: the elementwise classification tests (IsZero,
// AllNonNegative, AllNonPositive) compare against DefaultEpsilon, the single
// source of truth for "numerically zero" in this module.
package value
