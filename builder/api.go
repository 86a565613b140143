// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same constructor, options and seed ⇒ identical matrices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

// Constructor produces an adjacency matrix from the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(cfg builderConfig) (*matrix.Adjacency, error)

// Build resolves bopts and runs con. Constructor errors are wrapped with
// "Build: %w"; callers branch with errors.Is against the builder sentinels.
//
// Complexity: O(len(bopts)) + cost of con.
func Build(con Constructor, bopts ...BuilderOption) (*matrix.Adjacency, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuild, ErrConstructFailed)
	}

	a, err := con(newBuilderConfig(bopts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return a, nil
}

// newOrder allocates an edgeless matrix after validating n.
func newOrder(method string, n int) (*matrix.Adjacency, error) {
	if err := validateOrder(method, n); err != nil {
		return nil, err
	}
	a, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return a, nil
}

// link sets {i,j}; indices come from loops bounded by Order so a failure is
// an internal error.
func link(method string, a *matrix.Adjacency, i, j int) error {
	if err := a.Set(i, j); err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}

	return nil
}
