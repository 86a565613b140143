// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Complete: n=-1 < min=0: ...").
//   • Constructors never panic; option constructors (WithX) may panic on
//     programmer errors such as WithRand(nil).

package builder

import "errors"

// ErrTooFewVertices indicates that n (or a part size) is below the minimum
// accepted by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that the requested order exceeds MaxVertices,
// the largest order the packed wire format can describe.
var ErrTooManyVertices = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an internal matrix error.
var ErrConstructFailed = errors.New("builder: construction failed")
