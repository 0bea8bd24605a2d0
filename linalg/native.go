// SPDX-License-Identifier: MIT
// File: native.go
// Role: Pure-Go Backend: cyclic Jacobi eigen-decomposition and LU with
// partial pivoting.
// Determinism:
//   - Rotation order is fixed (row-major over p<q), pivots break ties by the
//     lowest row index; identical inputs give bit-identical outputs.

package linalg

import (
	"fmt"
	"math"
	"sort"
)

// Default numeric policy for Native.
const (
	// DefaultMaxSweeps caps the number of full Jacobi sweeps.
	DefaultMaxSweeps = 100

	// DefaultEigenTol is the relative off-diagonal threshold: converged when
	// ‖offdiag(A)‖_F <= tol·‖A‖_F.
	DefaultEigenTol = 1e-12

	// DefaultPivotTol is the relative pivot threshold for LU: a pivot with
	// |p| <= tol·max|a_ij| is treated as zero.
	DefaultPivotTol = 1e-13
)

// Native is the dependency-free Backend.
type Native struct {
	MaxSweeps int
	EigenTol  float64
	PivotTol  float64
}

// NewNative returns a Native backend with the default numeric policy.
func NewNative() *Native {
	return &Native{MaxSweeps: DefaultMaxSweeps, EigenTol: DefaultEigenTol, PivotTol: DefaultPivotTol}
}

// Name implements Backend.
func (*Native) Name() string { return BackendNative }

// EigenSym performs cyclic Jacobi rotations on a symmetric matrix.
//
// Blueprint:
//
//	Stage 1 (Validate): square + symmetric.
//	Stage 2 (Prepare):  A ← copy(a), V ← I.
//	Stage 3 (Execute):  sweep over all p<q, annihilating A[p][q] with a
//	                    rotation and accumulating it into V, until the
//	                    off-diagonal norm falls below EigenTol·‖A‖_F.
//	Stage 4 (Finalize): sort eigenvalues ascending, permute V's columns.
//
// Returns ErrEigenFailed if MaxSweeps sweeps do not converge.
// Complexity: O(n³) per sweep; Memory: O(n²).
func (b *Native) EigenSym(a *Dense) ([]float64, *Dense, error) {
	// Stage 1: Validate
	if err := checkSymmetric("EigenSym", a); err != nil {
		return nil, nil, err
	}
	n := a.r

	// Stage 2: Prepare
	A := a.Clone()
	V, _ := Identity(n)
	var total float64
	for _, x := range A.data {
		total += x * x
	}
	threshold := b.EigenTol * b.EigenTol * total

	// Stage 3: Execute
	var (
		sweep, p, q, k      int
		off                 float64
		apq, theta, t, c, s float64
		akp, akq, vkp, vkq  float64
		converged           bool
	)
	for sweep = 0; ; sweep++ {
		off = 0
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				off += 2 * A.data[p*n+q] * A.data[p*n+q]
			}
		}
		if off <= threshold {
			converged = true
			break
		}
		if sweep >= b.MaxSweeps {
			break
		}
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				apq = A.data[p*n+q]
				if apq == 0 {
					continue
				}
				theta = (A.data[q*n+q] - A.data[p*n+p]) / (2 * apq)
				t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
				c = 1 / math.Sqrt(t*t+1)
				s = t * c

				// A ← A·J (columns p,q)
				for k = 0; k < n; k++ {
					akp, akq = A.data[k*n+p], A.data[k*n+q]
					A.data[k*n+p] = c*akp - s*akq
					A.data[k*n+q] = s*akp + c*akq
				}
				// A ← Jᵀ·A (rows p,q)
				for k = 0; k < n; k++ {
					akp, akq = A.data[p*n+k], A.data[q*n+k]
					A.data[p*n+k] = c*akp - s*akq
					A.data[q*n+k] = s*akp + c*akq
				}
				A.data[p*n+q], A.data[q*n+p] = 0, 0
				// V ← V·J
				for k = 0; k < n; k++ {
					vkp, vkq = V.data[k*n+p], V.data[k*n+q]
					V.data[k*n+p] = c*vkp - s*vkq
					V.data[k*n+q] = s*vkp + c*vkq
				}
			}
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("EigenSym: %d sweeps: %w", b.MaxSweeps, ErrEigenFailed)
	}

	// Stage 4: Finalize
	order := make([]int, n)
	for k = 0; k < n; k++ {
		order[k] = k
	}
	sort.SliceStable(order, func(i, j int) bool { return A.data[order[i]*n+order[i]] < A.data[order[j]*n+order[j]] })
	vals := make([]float64, n)
	vecs, _ := NewDense(n, n)
	for dst, src := range order {
		vals[dst] = A.data[src*n+src]
		for k = 0; k < n; k++ {
			vecs.data[k*n+dst] = V.data[k*n+src]
		}
	}

	return vals, vecs, nil
}

// ExpSym returns exp(a) = V·diag(e^λ)·Vᵀ.
func (b *Native) ExpSym(a *Dense) (*Dense, error) {
	vals, vecs, err := b.EigenSym(a)
	if err != nil {
		return nil, fmt.Errorf("ExpSym: %w", err)
	}

	return expFromEigen(vals, vecs)
}

// lu is a packed LU factorization with row permutation: P·A = L·U, L unit
// lower triangular stored below the diagonal of f.
type lu struct {
	f    *Dense
	perm []int
}

// factorize runs Doolittle elimination with partial pivoting.
// Complexity: O(n³).
func (b *Native) factorize(op string, a *Dense) (*lu, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", op, a.r, a.c, ErrNonSquare)
	}
	n := a.r
	f := a.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	limit := b.PivotTol * f.maxAbs()

	var (
		i, j, k, piv int
		best, m      float64
	)
	for k = 0; k < n; k++ {
		piv, best = k, math.Abs(f.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(f.data[i*n+k]); v > best {
				piv, best = i, v
			}
		}
		if best <= limit || best == 0 {
			return nil, fmt.Errorf("%s: pivot %d: %w", op, k, ErrSingular)
		}
		if piv != k {
			for j = 0; j < n; j++ {
				f.data[k*n+j], f.data[piv*n+j] = f.data[piv*n+j], f.data[k*n+j]
			}
			perm[k], perm[piv] = perm[piv], perm[k]
		}
		for i = k + 1; i < n; i++ {
			m = f.data[i*n+k] / f.data[k*n+k]
			f.data[i*n+k] = m
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.data[i*n+j] -= m * f.data[k*n+j]
			}
		}
	}

	return &lu{f: f, perm: perm}, nil
}

// solve performs forward and backward substitution for one right-hand side.
func (d *lu) solve(rhs []float64) []float64 {
	n := d.f.r
	x := make([]float64, n)
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = rhs[d.perm[i]]
		for j = 0; j < i; j++ {
			sum -= d.f.data[i*n+j] * x[j]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d.f.data[i*n+j] * x[j]
		}
		x[i] = sum / d.f.data[i*n+i]
	}

	return x
}

// Inverse solves A·X = I column by column.
// Complexity: O(n³).
func (b *Native) Inverse(a *Dense) (*Dense, error) {
	d, err := b.factorize("Inverse", a)
	if err != nil {
		return nil, err
	}
	n := a.r
	inv, _ := NewDense(n, n)
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		col := d.solve(e)
		e[j] = 0
		for i := 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}

	return inv, nil
}

// Solve returns x with a·x = b.
func (b *Native) Solve(a *Dense, rhs []float64) ([]float64, error) {
	if a.r != len(rhs) {
		return nil, fmt.Errorf("Solve: %dx%d vs %d: %w", a.r, a.c, len(rhs), ErrDimensionMismatch)
	}
	d, err := b.factorize("Solve", a)
	if err != nil {
		return nil, err
	}

	return d.solve(rhs), nil
}
