// SPDX-License-Identifier: MIT
// Package: ppinet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w
// (record index, constructor name). Sentinels carry no parameters.

package builder

import "errors"

// ErrMalformedRecord indicates a record whose score is not a number or whose
// endpoint identifier is empty. The whole build is aborted.
var ErrMalformedRecord = errors.New("builder: malformed record")

// ErrTooFewNodes indicates that a topology constructor was asked for fewer
// nodes than it is defined for.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a programmer error while composing
// constructors (for example a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
