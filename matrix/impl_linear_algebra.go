// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose and
// scalar scaling. All functions validate fail-fast and return wrapped
// sentinels on nil operands or dimension mismatches.
//
// Every kernel allocates exactly one fresh *Dense for its result and never
// mutates or releases its operands.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatten returns the row-major elements of m. A *Dense hands out its own
// buffer, which callers must only read; any other Matrix is copied through At.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// flattenPair flattens both operands of a binary kernel.
func flattenPair(a, b Matrix) (av, bv []float64, err error) {
	if av, err = flatten(a); err != nil {
		return nil, nil, err
	}
	if bv, err = flatten(b); err != nil {
		return nil, nil, err
	}

	return av, bv, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Add and Sub share validation, allocation and the flat loop through it.
//
// Both operands are read as flat row-major slices, so a *Dense costs no copy
// and every Matrix implementation goes through the same 0..n-1 loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := newDenseLike(a.Rows(), a.Cols(), a, b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	av, bv, err := flattenPair(a, b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	for k := range res.data {
		res.data[k] = av[k] + sign*bv[k]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Every C[i,j] is a scalar sum starting at 0 over k ascending of
// A[i,k]*B[k,j]. There is no zero-skipping, so 0*Inf still yields NaN and
// the result does not depend on the operand implementation.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, cols := a.Cols(), b.Cols()
	res, err := newDenseLike(a.Rows(), cols, a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, bv, err := flattenPair(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	for i := 0; i < res.r; i++ {
		lhs := av[i*n : (i+1)*n]
		out := res.data[i*cols : (i+1)*cols]
		for j := range out {
			sum := 0.0
			for k, x := range lhs {
				sum += x * bv[k*cols+j]
			}
			out[j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Any non-nil matrix is transposable.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseLike(cols, rows, m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// src[i*cols+j] lands at res[j*rows+i].
	for k, v := range src {
		res.data[(k%cols)*rows+k/cols] = v
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha must be finite; alpha = 0 yields a zero matrix of the same shape.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite alpha).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	res, err := newDenseLike(m.Rows(), m.Cols(), m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	for k, v := range src {
		res.data[k] = v * alpha
	}

	return res, nil
}
