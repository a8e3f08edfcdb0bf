// SPDX-License-Identifier: MIT

// Package matrix - operand checks shared by every kernel.
//
// Kernels call exactly one Validate* function before allocating anything.
// A nil operand is always reported before any shape problem, and shape
// errors carry both shapes so a caller can see what was combined.

package matrix

import "fmt"

// isNil reports whether m is a nil interface or a typed nil *Dense.
func isNil(m Matrix) bool {
	d, isDense := m.(*Dense)

	return m == nil || (isDense && d == nil)
}

// checkOperands names the first nil operand of a binary call.
func checkOperands(a, b Matrix) error {
	switch {
	case isNil(a):
		return fmt.Errorf("left operand: %w", ErrNilMatrix)
	case isNil(b):
		return fmt.Errorf("right operand: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() == b.Rows() && a.Cols() == b.Cols() {
		return nil
	}

	return fmt.Errorf("shapes %dx%d and %dx%d differ: %w",
		a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
}

// ValidateBinarySameShape checks the operands of an elementwise call.
//
// Errors: ErrNilMatrix, then ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := checkOperands(a, b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks the operands of a product: a.Cols must equal b.Rows.
//
// Errors: ErrNilMatrix, then ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := checkOperands(a, b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("inner dimensions of %dx%d * %dx%d differ: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}
