// Package matrix is a small dense-matrix arithmetic library for float64 data.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c matrix that exclusively owns its storage.
//   - Construction from a shape (NewDense) or from a flat row-major slice
//     (NewDenseFrom), both rejecting non-positive dimensions with
//     ErrInvalidDimension.
//   - Add, Sub, Mul, Transpose and Scale, each returning a freshly allocated
//     Dense; shape conflicts yield ErrDimensionMismatch.
//   - Print/Fprint for a whitespace-separated, row-per-line rendering.
//   - Release and the scoped WithDense helper for explicit lifecycle control.
//   - ToGonum/FromGonum copies to and from gonum.org/v1/gonum/mat.
//
// Errors are package sentinels; match them with errors.Is. A Dense is not
// safe for concurrent mutation; distinct matrices may be used from different
// goroutines.
package matrix
