// Package expr: bottom-up numeric evaluation. Value is best-effort — it
// returns nil while any reachable variable has no assigned point — and never
// participates in classification, which is purely structural.

package expr

import (
	"math"

	"github.com/katalvlaran/cvxgraph/value"
)

// Value computes the numeric value of the expression, or nil when any
// reachable variable has no assigned value. The result is freshly allocated
// on every call; callers may mutate it freely.
func (e *Expr) Value() *value.Dense {
	v, ok := e.eval()
	if !ok {
		return nil
	}

	return v
}

// eval walks the graph bottom-up. Shape errors cannot occur on a constructed
// graph — every composition validated its operands — so kernel failures
// surface as an absent value rather than a panic.
func (e *Expr) eval() (*value.Dense, bool) {
	switch e.kind {
	case KindConstant:
		return e.val.Clone(), true
	case KindVariable:
		if e.val == nil {
			return nil, false
		}
		return e.val.Clone(), true
	case KindAdd:
		av, ok := e.args[0].eval()
		if !ok {
			return nil, false
		}
		bv, ok := e.args[1].eval()
		if !ok {
			return nil, false
		}
		out, err := value.Add(spread(av, e.dims), spread(bv, e.dims))
		return out, err == nil
	case KindNeg:
		av, ok := e.args[0].eval()
		if !ok {
			return nil, false
		}
		out, err := value.Scale(av, -1)
		return out, err == nil
	case KindMul:
		return e.evalMul()
	case KindDiv:
		av, ok := e.args[0].eval()
		if !ok {
			return nil, false
		}
		kv, ok := e.args[1].eval()
		if !ok {
			return nil, false
		}
		k, _ := kv.At(0, 0)
		out, err := value.Scale(av, 1/k)
		return out, err == nil
	case KindPow:
		av, ok := e.args[0].eval()
		if !ok {
			return nil, false
		}
		return evalPow(av, e.exponent), true
	case KindTranspose:
		av, ok := e.args[0].eval()
		if !ok {
			return nil, false
		}
		out, err := value.Transpose(av)
		return out, err == nil
	case KindIndex, KindSelect, KindMask:
		av, ok := e.args[0].eval()
		if !ok {
			return nil, false
		}
		return gather(av, e.sel, e.dims), true
	default:
		panic("expr: eval: invalid kind")
	}
}

// evalMul evaluates a product node with operands in product order: a scalar
// on either side scales the other operand, otherwise a matrix product.
func (e *Expr) evalMul() (*value.Dense, bool) {
	uv, ok := e.args[0].eval()
	if !ok {
		return nil, false
	}
	vv, ok := e.args[1].eval()
	if !ok {
		return nil, false
	}
	switch {
	case uv.IsScalar():
		k, _ := uv.At(0, 0)
		out, err := value.Scale(vv, k)
		return out, err == nil
	case vv.IsScalar():
		k, _ := vv.At(0, 0)
		out, err := value.Scale(uv, k)
		return out, err == nil
	default:
		out, err := value.MatMul(uv, vv)
		return out, err == nil
	}
}

// evalPow applies the exponent elementwise.
func evalPow(a *value.Dense, p float64) *value.Dense {
	out, _ := value.NewDense(a.Rows(), a.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, _ := a.At(i, j)
			_ = out.Set(i, j, math.Pow(v, p))
		}
	}

	return out
}

// spread promotes a scalar value to the given shape; non-scalar values pass
// through unchanged.
func spread(v *value.Dense, dims Dims) *value.Dense {
	if !v.IsScalar() || dims.IsScalar() {
		return v
	}
	k, _ := v.At(0, 0)
	ones, _ := value.Ones(dims.Rows, dims.Cols)
	out, _ := value.Scale(ones, k)

	return out
}

// gather copies the selected operand entries, in order, into the result
// shape (row-major).
func gather(v *value.Dense, sel []int, dims Dims) *value.Dense {
	out, _ := value.NewDense(dims.Rows, dims.Cols)
	cols := v.Cols()
	for idx, pos := range sel {
		x, _ := v.At(pos/cols, pos%cols)
		_ = out.Set(idx/dims.Cols, idx%dims.Cols, x)
	}

	return out
}
