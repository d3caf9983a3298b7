// Package expr: gradients. Gradient produces one Jacobian block per
// reachable variable, composed bottom-up by the chain rule over the same
// closed kind set the other queries dispatch on. Expressions are vectorized
// row-major: the block for variable x has d vec(e)/d vec(x) shape
// (e.rows·e.cols)×(x.rows·x.cols).

package expr

import (
	"github.com/katalvlaran/cvxgraph/value"
)

// gradMap maps variable identity to a Jacobian block.
type gradMap map[uint64]*value.Dense

// Gradient returns the (sub/super)gradient of the expression with respect to
// each reachable variable, keyed by variable ID, or nil when any required
// variable value is missing. Affine kinds contribute exact Jacobians; the
// power kind contributes the elementwise derivative at the current point.
func (e *Expr) Gradient() map[uint64]*value.Dense {
	vars := e.Variables()
	for _, v := range vars {
		if v.val == nil {
			return nil
		}
	}
	g, err := e.grad()
	if err != nil {
		return nil
	}
	// A variable annihilated by a zero coefficient still belongs to the
	// graph; report its (zero) block rather than omitting the key.
	for _, v := range vars {
		if _, ok := g[v.id]; !ok {
			z, zerr := value.NewDense(e.dims.Size(), v.dims.Size())
			if zerr != nil {
				return nil
			}
			g[v.id] = z
		}
	}

	return g
}

func (e *Expr) grad() (gradMap, error) {
	switch e.kind {
	case KindConstant:
		return gradMap{}, nil
	case KindVariable:
		eye, err := value.Identity(e.dims.Size())
		if err != nil {
			return nil, err
		}
		return gradMap{e.id: eye}, nil
	case KindAdd:
		return e.gradAdd()
	case KindNeg:
		ga, err := e.args[0].grad()
		if err != nil {
			return nil, err
		}
		return mapScale(ga, -1)
	case KindMul:
		return e.gradMul()
	case KindDiv:
		ga, err := e.args[0].grad()
		if err != nil {
			return nil, err
		}
		kv, _ := e.args[1].eval() // divisor is a scalar constant
		k, _ := kv.At(0, 0)
		return mapScale(ga, 1/k)
	case KindPow:
		return e.gradPow()
	case KindTranspose:
		ga, err := e.args[0].grad()
		if err != nil {
			return nil, err
		}
		return mapSelect(ga, transposePerm(e.args[0].dims))
	case KindIndex, KindSelect, KindMask:
		ga, err := e.args[0].grad()
		if err != nil {
			return nil, err
		}
		return mapSelect(ga, e.sel)
	default:
		panic("expr: grad: invalid kind")
	}
}

// gradAdd sums the operand Jacobians, lifting a scalar operand broadcast
// into the result shape first: vec(broadcast(s)) = 1·vec(s).
func (e *Expr) gradAdd() (gradMap, error) {
	out := gradMap{}
	for _, a := range e.args {
		ga, err := a.grad()
		if err != nil {
			return nil, err
		}
		for id, j := range ga {
			if a.dims.Size() != e.dims.Size() {
				ones, oerr := value.Ones(e.dims.Size(), 1)
				if oerr != nil {
					return nil, oerr
				}
				if j, err = value.MatMul(ones, j); err != nil {
					return nil, err
				}
			}
			if prev, ok := out[id]; ok {
				if j, err = value.Add(prev, j); err != nil {
					return nil, err
				}
			}
			out[id] = j
		}
	}

	return out, nil
}

// gradMul applies the product chain rule. Operands are in product order and
// one side is constant with an always-available value:
//
//	scalar coefficient k   – J = k·J_other
//	matrix·scalar          – J = vec(C)·J_s
//	C·X  (constant left)   – J = (C ⊗ I_cols(X))·J_X
//	X·C  (constant right)  – J = (I_rows(X) ⊗ Cᵀ)·J_X
func (e *Expr) gradMul() (gradMap, error) {
	u, v := e.args[0], e.args[1]
	cNode, xNode := u, v
	if !u.IsConstant() {
		cNode, xNode = v, u
	}
	cv, ok := cNode.eval()
	if !ok {
		return nil, value.ErrNilValue
	}
	gx, err := xNode.grad()
	if err != nil {
		return nil, err
	}
	switch {
	case cNode.IsScalar():
		k, _ := cv.At(0, 0)
		return mapScale(gx, k)
	case xNode.IsScalar():
		// C·s: every entry of C scales the scalar's gradient row.
		return mapLeftMul(gx, vecColumn(cv))
	case cNode == u:
		eye, ierr := value.Identity(xNode.dims.Cols)
		if ierr != nil {
			return nil, ierr
		}
		lift, kerr := value.Kron(cv, eye)
		if kerr != nil {
			return nil, kerr
		}
		return mapLeftMul(gx, lift)
	default:
		eye, ierr := value.Identity(xNode.dims.Rows)
		if ierr != nil {
			return nil, ierr
		}
		ct, terr := value.Transpose(cv)
		if terr != nil {
			return nil, terr
		}
		lift, kerr := value.Kron(eye, ct)
		if kerr != nil {
			return nil, kerr
		}
		return mapLeftMul(gx, lift)
	}
}

// gradPow chains the elementwise derivative p·aᵖ⁻¹ as a diagonal scaling of
// the base Jacobian.
func (e *Expr) gradPow() (gradMap, error) {
	av, ok := e.args[0].eval()
	if !ok {
		return nil, value.ErrNilValue
	}
	ga, err := e.args[0].grad()
	if err != nil {
		return nil, err
	}
	deriv, _ := value.Scale(evalPow(av, e.exponent-1), e.exponent)
	return mapLeftMul(ga, diagOf(deriv))
}

// mapScale scales every Jacobian block by k.
func mapScale(g gradMap, k float64) (gradMap, error) {
	out := gradMap{}
	for id, j := range g {
		s, err := value.Scale(j, k)
		if err != nil {
			return nil, err
		}
		out[id] = s
	}

	return out, nil
}

// mapLeftMul multiplies every Jacobian block by the lift matrix on the left.
func mapLeftMul(g gradMap, lift *value.Dense) (gradMap, error) {
	out := gradMap{}
	for id, j := range g {
		m, err := value.MatMul(lift, j)
		if err != nil {
			return nil, err
		}
		out[id] = m
	}

	return out, nil
}

// mapSelect gathers the listed rows of every Jacobian block.
func mapSelect(g gradMap, rows []int) (gradMap, error) {
	out := gradMap{}
	for id, j := range g {
		s, err := value.SelectRows(j, rows)
		if err != nil {
			return nil, err
		}
		out[id] = s
	}

	return out, nil
}

// vecColumn flattens a value row-major into an (r·c)×1 column.
func vecColumn(v *value.Dense) *value.Dense {
	out, _ := value.NewDense(v.Rows()*v.Cols(), 1)
	for i := 0; i < v.Rows(); i++ {
		for j := 0; j < v.Cols(); j++ {
			x, _ := v.At(i, j)
			_ = out.Set(i*v.Cols()+j, 0, x)
		}
	}

	return out
}

// diagOf places the entries of v, row-major, on the diagonal of a square
// matrix.
func diagOf(v *value.Dense) *value.Dense {
	n := v.Rows() * v.Cols()
	out, _ := value.NewDense(n, n)
	for i := 0; i < v.Rows(); i++ {
		for j := 0; j < v.Cols(); j++ {
			x, _ := v.At(i, j)
			k := i*v.Cols() + j
			_ = out.Set(k, k, x)
		}
	}

	return out
}

// transposePerm builds the row permutation carrying vec(X) to vec(Xᵀ) for an
// operand of the given shape: result entry (j,i) reads operand entry (i,j).
func transposePerm(d Dims) []int {
	perm := make([]int, d.Size())
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			perm[j*d.Rows+i] = i*d.Cols + j
		}
	}

	return perm
}
