// Package expr: the casting layer. Every binary operation and constraint
// builder routes its raw operand through CastToConst before delegating to a
// composition rule, so the rules themselves never see a raw numeric literal.

package expr

import (
	"fmt"

	"github.com/katalvlaran/cvxgraph/value"
)

// CastToConst promotes x to an expression node. An *Expr passes through
// unchanged; a numeric value is wrapped in a constant node whose dimensions
// come from the value's shape and whose sign comes from the value's
// elementwise tests. A []float64 becomes an n×1 column carrying the 1-D
// origin mark (see the product rule's flattened-array heuristic).
//
// Supported raw types: *value.Dense, float64, float32, int, int32, int64,
// []float64, [][]float64. Anything else returns ErrUnsupportedType.
func CastToConst(x any) (*Expr, error) {
	switch v := x.(type) {
	case *Expr:
		return v, nil
	case *value.Dense:
		return Constant(v), nil
	case float64:
		return Scalar(v), nil
	case float32:
		return Scalar(float64(v)), nil
	case int:
		return Scalar(float64(v)), nil
	case int32:
		return Scalar(float64(v)), nil
	case int64:
		return Scalar(float64(v)), nil
	case []float64:
		return Vector(v)
	case [][]float64:
		return Matrix(v)
	default:
		return nil, fmt.Errorf("cast %T: %w", x, ErrUnsupportedType)
	}
}
