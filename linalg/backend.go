package linalg

import (
	"fmt"
	"math"
)

// Backend performs the dense kernels the centrality engine needs.
// Implementations must be deterministic and must not retain their inputs.
type Backend interface {
	// Name identifies the backend in logs and configuration ("native", "gonum").
	Name() string

	// EigenSym decomposes a symmetric matrix. Eigenvalues are ascending and
	// column k of the returned matrix is the unit eigenvector of value k.
	EigenSym(a *Dense) ([]float64, *Dense, error)

	// ExpSym returns exp(a) for a symmetric matrix a.
	ExpSym(a *Dense) (*Dense, error)

	// Inverse returns a⁻¹.
	Inverse(a *Dense) (*Dense, error)

	// Solve returns x with a·x = b.
	Solve(a *Dense, b []float64) ([]float64, error)
}

// Backend names accepted by ByName.
const (
	BackendNative = "native"
	BackendGonum  = "gonum"
)

// ByName returns the backend registered under name.
func ByName(name string) (Backend, error) {
	switch name {
	case BackendNative:
		return NewNative(), nil
	case BackendGonum:
		return NewGonum(), nil
	default:
		return nil, fmt.Errorf("linalg: unknown backend %q", name)
	}
}

// symTol is the absolute tolerance used for symmetry checks, scaled by the
// largest entry of the checked matrix.
const symTol = 1e-10

// checkSymmetric validates that a is square and symmetric.
func checkSymmetric(op string, a *Dense) error {
	if a.r != a.c {
		return fmt.Errorf("%s: %dx%d: %w", op, a.r, a.c, ErrNonSquare)
	}
	if !a.IsSymmetric(symTol * math.Max(1, a.maxAbs())) {
		return fmt.Errorf("%s: %w", op, ErrNotSymmetric)
	}

	return nil
}

// expFromEigen assembles V·diag(e^λ)·Vᵀ.
func expFromEigen(vals []float64, vecs *Dense) (*Dense, error) {
	n := len(vals)
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	ex := make([]float64, n)
	for k, l := range vals {
		ex[k] = math.Exp(l)
	}
	var (
		i, j, k int
		vik, s  float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s = 0
			for k = 0; k < n; k++ {
				vik = vecs.data[i*n+k]
				s += vik * ex[k] * vecs.data[j*n+k]
			}
			out.data[i*n+j] = s
			out.data[j*n+i] = s
		}
	}

	return out, nil
}
