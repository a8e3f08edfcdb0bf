// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixlite/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels must copy it through At instead of borrowing a flat buffer.
type hide struct{ matrix.Matrix }

// brokenAt reports a fixed error from At at one cell and delegates elsewhere.
type brokenAt struct {
	matrix.Matrix
	row, col int
	err      error
}

func (b brokenAt) At(i, j int) (float64, error) {
	if i == b.row && j == b.col {
		return 0, b.err
	}

	return b.Matrix.At(i, j)
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
// Fails the test if len(vals) != r*c.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	m, err := matrix.NewDenseFrom(vals, r, c)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts got has the shape of want and identical elements.
func CompareExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), got.Rows())
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		if got.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), got.Cols())
		}
		for j = 0; j < len(want[i]); j++ {
			if v := MustAt(t, got, i, j); v != want[i][j] {
				t.Fatalf("[%d,%d]: want %v, got %v", i, j, want[i][j], v)
			}
		}
	}
}
