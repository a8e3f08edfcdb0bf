// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with call context, and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; the two documented exceptions are NewDenseFrom with a
// short source slice and Row with an invalid index.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Operations wrap with fmt.Errorf("Op: %w", ErrX) so callers can
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> index -> numeric policy.

var (
	// ErrInvalidDimension is returned by constructors when rows<=0 or cols<=0.
	// Nothing is allocated on this path.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, NewDenseFrom, Scale factor).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
