// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface consumed by every operation.
// Operations accept any Matrix and always return a freshly allocated *Dense.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// *Dense is the only implementation in this package; operations borrow its
// flat buffer. Any other implementation is read once through At in row-major
// order.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
