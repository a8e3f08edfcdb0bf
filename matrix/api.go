// SPDX-License-Identifier: MIT
// Package matrix - scoped lifecycle helpers.
//
// Purpose:
//   - Pair allocation and Release at the boundary where a matrix's scope ends,
//     so callers do not have to remember an explicit Release on every exit path.

package matrix

import "fmt"

const opWithDense = "WithDense"

// WithDense allocates an r×c zero matrix, passes it to fn and releases it
// when fn returns, fails or panics. fn must not retain m after it returns.
// Construction errors are returned without calling fn; fn's error is
// returned unchanged.
//
// Errors:
//   - ErrInvalidDimension, or whatever fn returns.
func WithDense(rows, cols int, fn func(m *Dense) error, opts ...Option) error {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return matrixErrorf(opWithDense, err)
	}
	defer m.Release()

	return fn(m)
}

// WithDenseFrom is WithDense for a matrix unpacked from src in row-major
// order; the NewDenseFrom preconditions apply.
func WithDenseFrom(src []float64, rows, cols int, fn func(m *Dense) error, opts ...Option) error {
	m, err := NewDenseFrom(src, rows, cols, opts...)
	if err != nil {
		return fmt.Errorf("%sFrom: %w", opWithDense, err)
	}
	defer m.Release()

	return fn(m)
}
