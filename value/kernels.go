// SPDX-License-Identifier: MIT
// Package value: linear-algebra kernels over Dense.
//
// Purpose:
//   - Provide the operations numeric evaluation and Jacobian composition need:
//     elementwise add, scalar scale, matrix product, transpose, Hadamard
//     product, Kronecker product, and row selection.
//
// Notes:
//   - All kernels validate fail-fast, never mutate operands, and allocate a
//     single fresh Dense for the result.
//   - Loop orders are fixed (flat or i→j) for determinism.

package value

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opScale      = "Scale"
	opMatMul     = "MatMul"
	opTranspose  = "Transpose"
	opHadamard   = "Hadamard"
	opKron       = "Kron"
	opSelectRows = "SelectRows"
)

// validatePair ensures both operands are non-nil.
func validatePair(tag string, a, b *Dense) error {
	if a == nil || b == nil {
		return valueErrorf(tag, ErrNilValue)
	}

	return nil
}

// Add computes the elementwise sum a + b. Shapes must match exactly.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}
	if a.r != b.r || a.c != b.c {
		return nil, valueErrorf(opAdd, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Scale computes k·a.
// Complexity: O(r*c).
func Scale(a *Dense, k float64) (*Dense, error) {
	if a == nil {
		return nil, valueErrorf(opScale, ErrNilValue)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= k
	}

	return out, nil
}

// MatMul computes the matrix product a·b, requiring a.Cols == b.Rows.
// Complexity: O(r·k·c).
func MatMul(a, b *Dense) (*Dense, error) {
	if err := validatePair(opMatMul, a, b); err != nil {
		return nil, err
	}
	if a.c != b.r {
		return nil, valueErrorf(opMatMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, valueErrorf(opMatMul, err)
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns aᵀ.
// Complexity: O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, valueErrorf(opTranspose, ErrNilValue)
	}
	out, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, valueErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Hadamard computes the elementwise product a ∘ b. Shapes must match exactly.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := validatePair(opHadamard, a, b); err != nil {
		return nil, err
	}
	if a.r != b.r || a.c != b.c {
		return nil, valueErrorf(opHadamard, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= b.data[i]
	}

	return out, nil
}

// Kron computes the Kronecker product a ⊗ b, the (a.r·b.r)×(a.c·b.c) block
// matrix whose (i,j) block is a[i,j]·b. Used to lift matrix products into
// Jacobians of vectorized expressions.
// Complexity: O(a.r·a.c·b.r·b.c).
func Kron(a, b *Dense) (*Dense, error) {
	if err := validatePair(opKron, a, b); err != nil {
		return nil, err
	}
	out, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, valueErrorf(opKron, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			aij := a.data[i*a.c+j]
			if aij == 0 {
				continue
			}
			for p := 0; p < b.r; p++ {
				dst := (i*b.r+p)*out.c + j*b.c
				src := p * b.c
				for q := 0; q < b.c; q++ {
					out.data[dst+q] = aij * b.data[src+q]
				}
			}
		}
	}

	return out, nil
}

// SelectRows gathers the listed rows of a, in order, into a new
// len(rows)×a.Cols matrix. Returns ErrOutOfRange for an invalid row index
// and ErrBadShape for an empty selection.
// Complexity: O(len(rows)·c).
func SelectRows(a *Dense, rows []int) (*Dense, error) {
	if a == nil {
		return nil, valueErrorf(opSelectRows, ErrNilValue)
	}
	if len(rows) == 0 {
		return nil, valueErrorf(opSelectRows, ErrBadShape)
	}
	out, err := NewDense(len(rows), a.c)
	if err != nil {
		return nil, valueErrorf(opSelectRows, err)
	}
	for i, r := range rows {
		if r < 0 || r >= a.r {
			return nil, valueErrorf(opSelectRows, ErrOutOfRange)
		}
		copy(out.data[i*a.c:(i+1)*a.c], a.data[r*a.c:(r+1)*a.c])
	}

	return out, nil
}
