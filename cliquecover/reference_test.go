package cliquecover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquecover/builder"
	"github.com/katalvlaran/cliquecover/cliquecover"
)

// Graphs on which every first-fit order is optimal: any trial must hit the
// known minimum, and the independent-set bound must certify it.
func TestRunTrial_ReferenceOptima(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"Star(6)", builder.Star(6), 5},
		{"CompleteBipartite(2,5)", builder.CompleteBipartite(2, 5), 5},
		{"CompleteBipartite(4,4)", builder.CompleteBipartite(4, 4), 4},
		{"Disjoint(4,3,2,1)", builder.Disjoint(4, 3, 2, 1), 4},
		{"Path(3)", builder.Path(3), 2},
		{"Cycle(3)", builder.Cycle(3), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := build(t, tc.ctor)
			require.Equal(t, tc.want, cliquecover.LowerBound(a))

			r := rand.New(rand.NewSource(5))
			for i := 0; i < 30; i++ {
				p := cliquecover.RunTrial(a, r)
				require.NoError(t, cliquecover.Validate(a, p))
				require.Equal(t, tc.want, p.Len(), "trial %d: %v", i, p)
			}
		})
	}
}

func TestSolve_CycleWithinBounds(t *testing.T) {
	for _, n := range []int{4, 5, 8, 11} {
		a := build(t, builder.Cycle(n))
		res, err := cliquecover.Solve(a, cliquecover.Options{Iterations: 40, Seed: int64(n)})
		require.NoError(t, err)
		require.NoError(t, cliquecover.Validate(a, res.Partition))

		optimum := (n + 1) / 2
		require.GreaterOrEqual(t, res.Partition.Len(), optimum)
		require.LessOrEqual(t, res.LowerBound, optimum)
		for _, s := range res.Partition.Sizes() {
			require.LessOrEqual(t, s, 2, "C_%d has no triangles", n)
		}
	}
}
