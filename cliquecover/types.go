// SPDX-License-Identifier: MIT
// Package: cliquecover
//
// types.go — public types, options and sentinel errors.

package cliquecover

import "errors"

var (
	// ErrNilGraph is returned when Solve or Validate receives a nil matrix.
	ErrNilGraph = errors.New("cliquecover: graph is nil")

	// ErrBadIterations is returned when Options.Iterations < 1.
	ErrBadIterations = errors.New("cliquecover: iterations must be ≥ 1")

	// ErrVertexOutOfRange indicates a partition member outside [0, n).
	ErrVertexOutOfRange = errors.New("cliquecover: vertex out of range")

	// ErrVertexRepeated indicates a vertex placed in more than one clique
	// (or twice in the same clique).
	ErrVertexRepeated = errors.New("cliquecover: vertex covered more than once")

	// ErrVertexMissing indicates a vertex not covered by any clique.
	ErrVertexMissing = errors.New("cliquecover: vertex not covered")

	// ErrNotClique indicates two members of one clique that are not adjacent.
	ErrNotClique = errors.New("cliquecover: clique members not adjacent")

	// ErrEmptyClique indicates a zero-length clique inside a partition.
	ErrEmptyClique = errors.New("cliquecover: empty clique")
)

// DefaultIterations is the trial count used when none is configured.
const DefaultIterations = 1

// Source is the random draw primitive used to pick the next vertex.
// Intn must return a value in [0, n) for n > 0. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Clique is a set of pairwise adjacent vertex indices, kept in insertion order.
type Clique []int

// Partition is a sequence of disjoint cliques covering every vertex once.
// Partitions returned by RunTrial are ordered by non-increasing clique size.
type Partition []Clique

// Result is the outcome of Solve.
type Result struct {
	// Partition is the fewest-cliques partition found.
	Partition Partition

	// Trials is the number of trials actually run.
	Trials int

	// BestTrial is the 0-based trial index that produced Partition.
	BestTrial int

	// LowerBound is the size of a greedy independent set: no partition can
	// have fewer cliques.
	LowerBound int
}

// Options configures Solve.
type Options struct {
	// Iterations is the number of randomized trials (≥ 1).
	Iterations int

	// Seed seeds the default RNG when Rand is nil. 0 selects defaultSeed.
	Seed int64

	// Rand overrides Seed with an explicit draw source.
	Rand Source

	// StopAtBound ends the run as soon as the best partition reaches
	// LowerBound. The returned partition is the same one a full run would
	// keep, since later trials can never be strictly better.
	StopAtBound bool

	// OnTrial, when set, is called after every trial with its partition.
	OnTrial func(trial int, p Partition)

	// OnImprove, when set, is called whenever the best partition changes,
	// including after the first trial.
	OnImprove func(trial int, p Partition)
}

// DefaultOptions returns Options with DefaultIterations and the default seed.
func DefaultOptions() Options {
	return Options{Iterations: DefaultIterations}
}
