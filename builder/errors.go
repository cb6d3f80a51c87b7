// SPDX-License-Identifier: MIT
// Package: georoute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRadius indicates a RandomGeometric connection radius that is not
// a positive finite number.
var ErrInvalidRadius = errors.New("builder: radius must be positive")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not construct a
// topology (nil constructor, core rejection of a generated coordinate).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadRaster indicates an empty or non-rectangular Raster map.
var ErrBadRaster = errors.New("builder: raster must be non-empty and rectangular")

// ErrBadSynthetic indicates an unparsable synthetic graph descriptor.
var ErrBadSynthetic = errors.New("builder: invalid synthetic descriptor")

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
