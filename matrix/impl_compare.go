// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Equality predicates used by callers and tests to compare results:
//     Equal (exact, bitwise-by-value) and AllClose (tolerance based).

package matrix

import "math"

const opAllClose = "AllClose"

// valueAt reads (i,j) from a *Dense directly or through At otherwise.
// Shapes are validated by the caller, so the fallback error is ignored.
func valueAt(m Matrix, i, j int) float64 {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j]
	}
	v, _ := m.At(i, j)

	return v
}

// Equal reports whether a and b have the same shape and identical elements.
// NaN is never equal to anything. A nil operand is never equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if valueAt(a, i, j) != valueAt(b, i, j) {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; infinities compare equal only to the same infinity.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, bv := valueAt(a, i, j), valueAt(b, i, j)
			if av == bv { // covers matching infinities
				continue
			}
			// NaN makes the comparison false as well.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
