// Package linalg is the small numeric-linear-algebra layer behind the
// spectral and flow centralities.
//
// It provides a row-major Dense matrix and the Backend interface:
//
//	EigenSym(a)    symmetric eigen-decomposition (ascending eigenvalues,
//	               eigenvectors as columns)
//	ExpSym(a)      matrix exponential of a symmetric matrix
//	Inverse(a)     inverse of a square matrix
//	Solve(a, b)    solution of a·x = b
//
// Two implementations are shipped:
//
//   - Native: pure Go. Cyclic Jacobi rotations for EigenSym (with a sweep
//     cap), ExpSym through the eigen-decomposition, and LU with partial
//     pivoting for Inverse/Solve.
//   - Gonum: delegates to gonum.org/v1/gonum/mat (EigenSym, Dense.Exp,
//     Dense.Inverse, VecDense.SolveVec).
//
// Both are deterministic for a fixed input. The centrality engine only sees
// the interface, so the dispatch logic does not depend on which library
// performs the matrix math.
//
// Errors:
//
//	ErrInvalidDimensions - non-positive shape.
//	ErrIndexOutOfBounds  - At/Set outside the matrix.
//	ErrNonSquare         - square matrix required.
//	ErrDimensionMismatch - operand shapes disagree.
//	ErrNotSymmetric      - symmetric matrix required.
//	ErrSingular          - pivot below the singularity threshold.
//	ErrEigenFailed       - eigen-decomposition did not converge.
package linalg
