// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
//
// Every message is prefixed with "linalg: ". Kernels return these sentinels,
// wrapped with the operation name via %w; callers match with errors.Is.

package linalg

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotSymmetric is returned when a symmetric matrix was required.
	ErrNotSymmetric = errors.New("linalg: matrix is not symmetric")

	// ErrSingular is returned when elimination meets a (numerically) zero pivot.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrEigenFailed is returned if the eigen solver does not converge within its cap.
	ErrEigenFailed = errors.New("linalg: eigen decomposition did not converge")
)
