// Package cliquecover_test provides shared helpers for the heuristic tests.
package cliquecover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquecover/builder"
	"github.com/katalvlaran/cliquecover/matrix"
)

// script is a Source replaying a fixed sequence of pool indices.
// It fails the test if the sequence runs out or a draw is out of range.
type script struct {
	t     *testing.T
	draws []int
	pos   int
}

func newScript(t *testing.T, draws ...int) *script {
	return &script{t: t, draws: draws}
}

func (s *script) Intn(n int) int {
	s.t.Helper()
	require.Less(s.t, s.pos, len(s.draws), "script exhausted")
	d := s.draws[s.pos]
	require.True(s.t, d >= 0 && d < n, "draw %d out of [0,%d)", d, n)
	s.pos++

	return d
}

// zeros always draws pool index 0.
type zeros struct{}

func (zeros) Intn(int) int { return 0 }

// edges builds an n-vertex matrix from an edge list.
func edges(t *testing.T, n int, es ...[2]int) *matrix.Adjacency {
	t.Helper()
	a, err := matrix.NewAdjacency(n)
	require.NoError(t, err)
	for _, e := range es {
		require.NoError(t, a.Set(e[0], e[1]))
	}

	return a
}

// build wraps builder.Build and fails the test on error.
func build(t *testing.T, c builder.Constructor, opts ...builder.BuilderOption) *matrix.Adjacency {
	t.Helper()
	a, err := builder.Build(c, opts...)
	require.NoError(t, err)

	return a
}

// requireDescending asserts non-increasing clique sizes.
func requireDescending(t *testing.T, sizes []int) {
	t.Helper()
	for i := 1; i < len(sizes); i++ {
		require.GreaterOrEqual(t, sizes[i-1], sizes[i], "sizes %v not descending at %d", sizes, i)
	}
}
