// SPDX-License-Identifier: MIT
// Package value: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the value
// package. All kernels return these sentinels and tests check them via
// errors.Is. Context is added at call sites with valueErrorf; the underlying
// sentinel always survives the wrap.

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0,
	// cols <= 0, an empty vector, or ragged row data).
	ErrBadShape = errors.New("value: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/SelectRows) return this, never panic.
	ErrOutOfRange = errors.New("value: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("value: dimension mismatch")

	// ErrNilValue indicates that a nil *Dense was passed to a kernel.
	ErrNilValue = errors.New("value: nil value")
)

// valueErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func valueErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
