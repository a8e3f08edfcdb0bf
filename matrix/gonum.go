// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both directions copy: a *Dense never shares its buffer with a gonum value.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension (released Dense), or the error of a
//     failing At on a non-Dense m.
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		// Released Dense; gonum cannot represent an empty shape.
		return nil, matrixErrorf(opToGonum, ErrInvalidDimension)
	}

	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(src))
	copy(buf, src) // gonum takes ownership of buf

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix (including views and transposes) into a
// new *Dense. opts control the numeric policy exactly as in NewDenseFrom.
//
// Errors:
//   - ErrNilMatrix (nil g), ErrInvalidDimension (empty g), ErrNaNInf.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	gd, isDense := g.(*mat.Dense)
	if g == nil || (isDense && gd == nil) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimension)
	}

	buf := make([]float64, r*c)
	if isDense {
		// Honour the stride: gonum views share a larger backing array.
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(buf[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				buf[i*c+j] = g.At(i, j)
			}
		}
	}

	d, err := NewDenseFrom(buf, r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return d, nil
}
