// Package expr: human-readable rendering of expressions, for error messages
// and debugging. Names mirror the construction syntax; they carry no
// semantic weight.

package expr

import (
	"fmt"
	"strconv"
)

// Name returns the string representation of the expression.
func (e *Expr) Name() string {
	switch e.kind {
	case KindConstant:
		if e.IsScalar() {
			v, _ := e.val.At(0, 0)
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return fmt.Sprintf("const(%s)", e.dims)
	case KindVariable:
		if e.varName == "" {
			return fmt.Sprintf("var%d", e.id)
		}
		return e.varName
	case KindAdd:
		return fmt.Sprintf("(%s + %s)", e.args[0].Name(), e.args[1].Name())
	case KindNeg:
		return fmt.Sprintf("-%s", e.args[0].Name())
	case KindMul:
		return fmt.Sprintf("%s * %s", e.args[0].Name(), e.args[1].Name())
	case KindDiv:
		return fmt.Sprintf("%s / %s", e.args[0].Name(), e.args[1].Name())
	case KindPow:
		return fmt.Sprintf("power(%s, %g)", e.args[0].Name(), e.exponent)
	case KindTranspose:
		return fmt.Sprintf("%s.T", e.args[0].Name())
	case KindIndex:
		return e.indexName()
	case KindSelect:
		return fmt.Sprintf("%s[idx]", e.args[0].Name())
	case KindMask:
		return fmt.Sprintf("%s[mask]", e.args[0].Name())
	default:
		panic("expr: Name: invalid kind")
	}
}

// indexName renders a single entry as a[i, j] and a contiguous block as
// a[r0:r1, c0:c1], recovered from the selection's corners.
func (e *Expr) indexName() string {
	cols := e.args[0].dims.Cols
	first := e.sel[0]
	if len(e.sel) == 1 {
		return fmt.Sprintf("%s[%d, %d]", e.args[0].Name(), first/cols, first%cols)
	}
	last := e.sel[len(e.sel)-1]

	return fmt.Sprintf("%s[%d:%d, %d:%d]", e.args[0].Name(),
		first/cols, last/cols+1, first%cols, last%cols+1)
}

// String implements fmt.Stringer as the expression's name.
func (e *Expr) String() string { return e.Name() }
