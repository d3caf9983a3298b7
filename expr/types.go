// Package expr: node model — Dims, the closed Kind tag set, and the Expr
// node itself. Every query over a node dispatches on Kind with an exhaustive
// switch, so adding a node kind without extending each query is a compile- or
// panic-visible defect rather than a silent misclassification.

package expr

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/cvxgraph/value"
)

// Dims is the (rows, cols) shape of an expression; both are ≥ 1.
// A (1,1) expression is scalar.
type Dims struct {
	Rows int // number of rows, ≥ 1
	Cols int // number of columns, ≥ 1
}

// IsScalar reports whether the shape is 1×1.
func (d Dims) IsScalar() bool { return d.Rows == 1 && d.Cols == 1 }

// IsVector reports whether the shape is a row or column vector.
func (d Dims) IsVector() bool { return d.Rows == 1 || d.Cols == 1 }

// IsMatrix reports whether both dimensions exceed one.
func (d Dims) IsMatrix() bool { return d.Rows > 1 && d.Cols > 1 }

// IsSquare reports whether rows equal columns.
func (d Dims) IsSquare() bool { return d.Rows == d.Cols }

// Transposed returns the shape with rows and columns swapped.
func (d Dims) Transposed() Dims { return Dims{Rows: d.Cols, Cols: d.Rows} }

// Size returns the total entry count rows·cols.
func (d Dims) Size() int { return d.Rows * d.Cols }

// String renders the shape as "r×c".
func (d Dims) String() string { return fmt.Sprintf("%d×%d", d.Rows, d.Cols) }

// broadcast reports whether two shapes are broadcast-compatible — equal, or
// either scalar — and returns the resulting shape.
func broadcast(a, b Dims) (Dims, bool) {
	switch {
	case a == b:
		return a, true
	case a.IsScalar():
		return b, true
	case b.IsScalar():
		return a, true
	default:
		return Dims{}, false
	}
}

// Kind tags the closed set of node variants.
type Kind int

const (
	// KindConstant – a leaf wrapping a numeric value.
	KindConstant Kind = iota

	// KindVariable – a free optimization variable leaf.
	KindVariable

	// KindAdd – the sum of two broadcast-compatible operands.
	KindAdd

	// KindNeg – the negation of one operand.
	KindNeg

	// KindMul – a product whose operands are stored in product order;
	// at least one operand is constant.
	KindMul

	// KindDiv – elementwise division by a scalar constant.
	KindDiv

	// KindPow – an elementwise power with a numeric constant exponent.
	KindPow

	// KindTranspose – the transpose of one non-scalar operand.
	KindTranspose

	// KindIndex – a single entry or contiguous sub-block of one operand.
	KindIndex

	// KindSelect – a fancy selection by explicit row and column lists.
	KindSelect

	// KindMask – a boolean-mask selection flattened to a column vector.
	KindMask
)

// String returns the lower-case label of the kind.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindAdd:
		return "add"
	case KindNeg:
		return "neg"
	case KindMul:
		return "mul"
	case KindDiv:
		return "div"
	case KindPow:
		return "pow"
	case KindTranspose:
		return "transpose"
	case KindIndex:
		return "index"
	case KindSelect:
		return "select"
	case KindMask:
		return "mask"
	default:
		return "invalid"
	}
}

// nextID assigns each node a monotonically increasing identity at
// construction. The id is used for deduplication and debugging only —
// semantic equality stays structural (see Equal).
var nextID atomic.Uint64

// Expr is one node of the expression graph: a constant, a variable, or a
// composite referencing already-constructed operands. Nodes are immutable
// once constructed (the variable value slot, assigned via SetValue, is a
// numeric point for evaluation — it never alters structure or
// classification). Operands may be shared by multiple parents; construction
// is bottom-up, so no node can be its own ancestor.
type Expr struct {
	id   uint64  // construction-order identity
	kind Kind    // closed variant tag
	dims Dims    // validated result shape
	args []*Expr // direct operands, in rule-specific order

	val      *value.Dense // KindConstant: wrapped value; KindVariable: assigned point
	flat     bool         // KindConstant: built from a 1-D array
	varName  string       // KindVariable: display name
	exponent float64      // KindPow: the numeric exponent
	sel      []int        // KindIndex/KindSelect/KindMask: selected operand entries, row-major
}

// newExpr constructs a node with a fresh identity.
func newExpr(kind Kind, dims Dims, args ...*Expr) *Expr {
	return &Expr{id: nextID.Add(1), kind: kind, dims: dims, args: args}
}

// ID returns the node's construction-order identity.
func (e *Expr) ID() uint64 { return e.id }

// Kind returns the node's variant tag.
func (e *Expr) Kind() Kind { return e.kind }

// Dims returns the node's (rows, cols) shape.
func (e *Expr) Dims() Dims { return e.dims }

// Operands returns the node's direct operands. The returned slice is shared;
// callers must treat it as read-only.
func (e *Expr) Operands() []*Expr { return e.args }

// IsScalar reports whether the expression is 1×1.
func (e *Expr) IsScalar() bool { return e.dims.IsScalar() }

// IsVector reports whether the expression is a row or column vector.
func (e *Expr) IsVector() bool { return e.dims.IsVector() }

// IsMatrix reports whether both dimensions exceed one.
func (e *Expr) IsMatrix() bool { return e.dims.IsMatrix() }

// Equal reports structural equality of two expressions: same kind, shape and
// payload, with structurally equal operands. Constant values compare
// entrywise. Node identity never participates — two independently built
// copies of the same expression are Equal.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.dims != b.dims || len(a.args) != len(b.args) {
		return false
	}
	switch a.kind {
	case KindConstant:
		if !sameValues(a.val, b.val) {
			return false
		}
	case KindVariable:
		if a.varName != b.varName || a.id != b.id {
			// Two distinct variables are distinct objects even under one
			// name; a variable is only structurally equal to itself.
			return false
		}
	case KindPow:
		if a.exponent != b.exponent {
			return false
		}
	case KindIndex, KindSelect, KindMask:
		if len(a.sel) != len(b.sel) {
			return false
		}
		for i := range a.sel {
			if a.sel[i] != b.sel[i] {
				return false
			}
		}
	}
	for i := range a.args {
		if !Equal(a.args[i], b.args[i]) {
			return false
		}
	}

	return true
}

// sameValues compares two constant payloads entrywise.
func sameValues(a, b *value.Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}
