// Package expr: sentinel error set.
// All composition rules return these sentinels, wrapped with the operator
// name and the violated rule or shapes, so callers can both match via
// errors.Is and read which operator failed and why.

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrDisciplineViolation indicates that a composition rule's curvature or
	// constancy precondition failed, e.g. multiplying two non-constant
	// expressions, dividing by a non-constant or non-scalar, or an
	// unsupported power/curvature combination. Always fatal to that
	// expression's construction; no partial node is produced.
	ErrDisciplineViolation = errors.New("expr: disciplined convex programming rule violated")

	// ErrDimensionMismatch indicates shape incompatibility between operands,
	// or an index key outside the operand's shape. Always fatal, raised
	// immediately by the operator that was invoked.
	ErrDimensionMismatch = errors.New("expr: dimension mismatch")

	// ErrUnsupportedType indicates that the casting layer received a raw
	// operand of a type it cannot promote to a constant node.
	ErrUnsupportedType = errors.New("expr: unsupported operand type")

	// ErrNotAVariable indicates that a value assignment was attempted on a
	// node that is not a variable leaf.
	ErrNotAVariable = errors.New("expr: node is not a variable")
)

// violationf wraps ErrDisciplineViolation with the operator name and the
// specific rule that was broken.
func violationf(op, rule string) error {
	return fmt.Errorf("%s: %s: %w", op, rule, ErrDisciplineViolation)
}

// mismatchf wraps ErrDimensionMismatch with the operator name and the two
// shapes involved.
func mismatchf(op string, a, b Dims) error {
	return fmt.Errorf("%s: %s vs %s: %w", op, a, b, ErrDimensionMismatch)
}
