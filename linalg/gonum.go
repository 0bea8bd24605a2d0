// File: gonum.go
// Role: Backend delegating to gonum.org/v1/gonum/mat.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum is the Backend backed by gonum's LAPACK-style kernels.
type Gonum struct{}

// NewGonum returns the gonum backend.
func NewGonum() *Gonum { return &Gonum{} }

// Name implements Backend.
func (*Gonum) Name() string { return BackendGonum }

// toMat copies a into a gonum Dense.
func toMat(a *Dense) *mat.Dense {
	data := make([]float64, len(a.data))
	copy(data, a.data)

	return mat.NewDense(a.r, a.c, data)
}

// fromMat copies a gonum matrix into a Dense.
func fromMat(m mat.Matrix) *Dense {
	r, c := m.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out
}

// EigenSym implements Backend via mat.EigenSym. gonum returns the
// eigenvalues in ascending order already.
func (*Gonum) EigenSym(a *Dense) ([]float64, *Dense, error) {
	if err := checkSymmetric("EigenSym", a); err != nil {
		return nil, nil, err
	}
	n := a.r
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, a.data[i*n+j])
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("EigenSym: %w", ErrEigenFailed)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return vals, fromMat(&vecs), nil
}

// ExpSym implements Backend via mat.Dense.Exp (Padé approximation with
// scaling and squaring).
func (*Gonum) ExpSym(a *Dense) (*Dense, error) {
	if err := checkSymmetric("ExpSym", a); err != nil {
		return nil, err
	}
	var e mat.Dense
	e.Exp(toMat(a))

	return fromMat(&e), nil
}

// Inverse implements Backend via mat.Dense.Inverse. Any condition error
// reported by gonum is treated as singularity.
func (*Gonum) Inverse(a *Dense) (*Dense, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	var inv mat.Dense
	if err := inv.Inverse(toMat(a)); err != nil {
		return nil, fmt.Errorf("Inverse: %v: %w", err, ErrSingular)
	}

	return fromMat(&inv), nil
}

// Solve implements Backend via mat.VecDense.SolveVec.
func (*Gonum) Solve(a *Dense, b []float64) ([]float64, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("Solve: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	if a.r != len(b) {
		return nil, fmt.Errorf("Solve: %dx%d vs %d: %w", a.r, a.c, len(b), ErrDimensionMismatch)
	}
	rhs := make([]float64, len(b))
	copy(rhs, b)

	var x mat.VecDense
	if err := x.SolveVec(toMat(a), mat.NewVecDense(len(rhs), rhs)); err != nil {
		return nil, fmt.Errorf("Solve: %v: %w", err, ErrSingular)
	}
	out := make([]float64, x.Len())
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
