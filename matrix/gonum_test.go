package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixlite/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMul_AgainstGonum uses gonum as an independent oracle for Mul.
func TestMul_AgainstGonum(t *testing.T) {
	t.Parallel()

	for _, dims := range [][3]int{{1, 1, 1}, {2, 3, 2}, {5, 4, 3}, {7, 7, 7}, {3, 9, 1}} {
		A := RandFilledDense(t, dims[0], dims[1], int64(dims[0]+10*dims[1]))
		B := RandFilledDense(t, dims[1], dims[2], int64(dims[1]+10*dims[2]+1))

		got, err := matrix.Mul(A, B)
		require.NoError(t, err)

		ga, err := matrix.ToGonum(A)
		require.NoError(t, err)
		gb, err := matrix.ToGonum(B)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(ga, gb)

		wantDense, err := matrix.FromGonum(&want)
		require.NoError(t, err)
		ok, err := matrix.AllClose(got, wantDense, 1e-12, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "dims %v", dims)
	}
}

func TestTranspose_AgainstGonum(t *testing.T) {
	A := RandFilledDense(t, 3, 5, 21)
	got, err := matrix.Transpose(A)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(A)
	require.NoError(t, err)
	want, err := matrix.FromGonum(ga.T())
	require.NoError(t, err)

	require.True(t, matrix.Equal(got, want))
}

func TestToGonum_Copies(t *testing.T) {
	A := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	g, err := matrix.ToGonum(A)
	require.NoError(t, err)

	g.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, A, 0, 0))

	fromHidden, err := matrix.ToGonum(hide{A})
	require.NoError(t, err)
	require.True(t, mat.Equal(fromHidden, mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
}

func TestFromGonum_View(t *testing.T) {
	g := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	view := g.Slice(1, 3, 1, 3) // [[5 6] [8 9]], stride 3

	d, err := matrix.FromGonum(view)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 6}, {8, 9}}, d)

	g.Set(1, 1, -1)
	require.Equal(t, 5.0, MustAt(t, d, 0, 0))
}

func TestGonum_Errors(t *testing.T) {
	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	released := MustDense(t, 1, 1)
	released.Release()
	_, err = matrix.ToGonum(released)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilGonum *mat.Dense
	_, err = matrix.FromGonum(nilGonum)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	g := mat.NewDense(1, 1, []float64{math.NaN()})
	d, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, d, 0, 0)))
	_, err = matrix.FromGonum(g, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
