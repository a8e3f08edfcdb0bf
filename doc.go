// Package matrixlite is a small, dependency-light dense matrix library for
// float64 data.
//
// Everything lives in one subpackage:
//
//	matrix/  Dense storage, construction, Add/Sub/Mul/Transpose/Scale,
//	         printing, scoped lifecycle and gonum interop
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	b, _ := matrix.Transpose(a)
//	c, _ := matrix.Mul(a, b) // 2×2
//	matrix.Print(c)
//
// A runnable walkthrough lives in examples/.
//
//	go get github.com/katalvlaran/matrixlite
package matrixlite
