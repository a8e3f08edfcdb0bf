// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), safe accessors and lifecycle.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Give every Dense exclusive ownership of its buffer; nothing here aliases another Dense.
//   - Offer an opt-in numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom: O(r*c); At/Set/Row: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew  = "NewDense"     // ctor tag for NewDense
	ctxFrom = "NewDenseFrom" // ctor tag for NewDenseFrom
	ctxAt   = "At"           // method tag used in error wrappers
	ctxSet  = "Set"          // method tag used in error wrappers
)

// maxDenseLen caps rows*cols so the element count and its byte size both
// fit in an int.
const maxDenseLen = math.MaxInt / 8

// checkShape validates a requested shape for constructor ctx.
// Both dimensions must be positive and rows*cols must not exceed maxDenseLen.
func checkShape(ctx string, rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > maxDenseLen/cols {
		return fmt.Errorf("%s(%d,%d): %w", ctx, rows, cols, ErrInvalidDimension)
	}

	return nil
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for a live matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables opt-in NaN/Inf rejection in Set (off by default).
//
// A Dense exclusively owns data. Every operation returning a Dense allocates
// a new buffer.
type Dense struct {
	r, c           int       // row and column counts; 0×0 only after Release
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols is addressable;
//     else ErrInvalidDimension.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimension (nothing is allocated on this path).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := checkShape(ctxNew, rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds an r×c matrix by unpacking src in row-major order:
// element (i,j) is src[i*cols+j].
//
// Implementation:
//   - Stage 1: validate the shape exactly as NewDense does.
//   - Stage 2: under WithValidateNaNInf, reject a non-finite value among the first rows*cols.
//   - Stage 3: copy those values into a fresh buffer.
//
// Preconditions:
//   - len(src) ≥ rows*cols. A shorter src is a caller bug and panics with a
//     runtime index error; values past rows*cols are ignored.
//
// Errors:
//   - ErrInvalidDimension, ErrNaNInf (only under WithValidateNaNInf, non-finite value in src).
//
// Notes:
//   - src is copied; later writes to src never reach the matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(src []float64, rows, cols int, opts ...Option) (*Dense, error) {
	if err := checkShape(ctxFrom, rows, cols); err != nil {
		return nil, err
	}
	n := rows * cols
	_ = src[n-1] // precondition: len(src) >= rows*cols

	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k := 0; k < n; k++ {
			if math.IsNaN(src[k]) || math.IsInf(src[k], 0) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, k/cols, k%cols, ErrNaNInf)
			}
		}
	}

	buf := make([]float64, n)
	copy(buf, src[:n])

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseLike allocates an r×c result that inherits the numeric policy of
// the first *Dense found among operands (default policy otherwise).
// Shapes are already validated by the caller.
func newDenseLike(rows, cols int, operands ...Matrix) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, op := range operands {
		if d, ok := op.(*Dense); ok {
			res.validateNaNInf = d.validateNaNInf
			break
		}
	}

	return res, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under WithValidateNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns row i as a slice of the matrix's own buffer, so
// m.Row(i)[j] = v writes element (i,j) directly.
// The slice is capped at the row end and bypasses the numeric policy.
// Panics if i is out of range, like any slice index.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c]
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Release drops the storage owned by m and resets its shape to 0×0.
// A second call is a no-op. Using m after Release is a caller bug; At and
// Set report ErrOutOfRange and Row panics.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// String returns the same row-per-line rendering as Fprint.
func (m *Dense) String() string {
	return format(m)
}
