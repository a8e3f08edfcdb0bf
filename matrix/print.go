// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Format (stable, deterministic for identical bit patterns):
//   - one line per row, each terminated by '\n';
//   - elements in column order separated by a single space;
//   - each element in Go's shortest %g form (strconv 'g', precision -1).

package matrix

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

const opPrint = "Fprint"

// format renders m with the package text format. m must be non-nil.
func format(m Matrix) string {
	var b strings.Builder
	r, c := m.Rows(), m.Cols()
	buf := make([]byte, 0, 24) // scratch for AppendFloat
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			buf = strconv.AppendFloat(buf[:0], valueAt(m, i, j), 'g', -1, 64)
			b.Write(buf)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Fprint writes m to w, one line per row.
// m is neither mutated nor released.
//
// Errors:
//   - ErrNilMatrix, or the writer's error wrapped with the operation tag.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPrint, err)
	}
	if _, err := io.WriteString(w, format(m)); err != nil {
		return matrixErrorf(opPrint, fmt.Errorf("write: %w", err))
	}

	return nil
}

// Print writes m to standard output. Errors are dropped; use Fprint to
// observe them.
func Print(m Matrix) {
	_ = Fprint(os.Stdout, m)
}
