package cliquecover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquecover/builder"
	"github.com/katalvlaran/cliquecover/cliquecover"
)

func TestRunTrial_Boundaries(t *testing.T) {
	t.Parallel()

	t.Run("n=0", func(t *testing.T) {
		p := cliquecover.RunTrial(build(t, builder.Empty(0)), rand.New(rand.NewSource(3)))
		require.NotNil(t, p)
		require.Empty(t, p)
	})

	t.Run("edgeless n=5", func(t *testing.T) {
		a := build(t, builder.Empty(5))
		p := cliquecover.RunTrial(a, rand.New(rand.NewSource(3)))
		require.Len(t, p, 5)
		for _, c := range p {
			require.Len(t, c, 1)
		}
		require.NoError(t, cliquecover.Validate(a, p))
	})

	t.Run("K4", func(t *testing.T) {
		a := build(t, builder.Complete(4))
		p := cliquecover.RunTrial(a, rand.New(rand.NewSource(3)))
		require.Len(t, p, 1)
		require.ElementsMatch(t, []int{0, 1, 2, 3}, p[0])
	})

	t.Run("two vertices without edge", func(t *testing.T) {
		a := build(t, builder.Empty(2))
		for _, draws := range [][]int{{0, 0}, {1, 0}} {
			p := cliquecover.RunTrial(a, newScript(t, draws...))
			require.Len(t, p, 2)
			require.ElementsMatch(t, []int{0, 1}, []int{p[0][0], p[1][0]})
		}
	})
}

// TestRunTrial_ScriptedDraws pins exact outputs for fixed draw sequences.
// Draws index the unvisited pool, which is compacted by swap-remove.
func TestRunTrial_ScriptedDraws(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		adj  func(t *testing.T) cliquecover.Partition
		want cliquecover.Partition
	}{
		{
			// Triangle {2,3,4} plus edge {0,1}; always drawing slot 0 visits 0,4,3,2,1.
			name: "bubble-up past a singleton",
			adj: func(t *testing.T) cliquecover.Partition {
				a := edges(t, 5, [2]int{0, 1}, [2]int{2, 3}, [2]int{2, 4}, [2]int{3, 4})
				return cliquecover.RunTrial(a, zeros{})
			},
			want: cliquecover.Partition{{4, 3, 2}, {0, 1}},
		},
		{
			// Path 0-2-1; vertex 2 could extend {0} or {1} and takes the first.
			name: "first fit, not best fit",
			adj: func(t *testing.T) cliquecover.Partition {
				a := edges(t, 3, [2]int{0, 2}, [2]int{1, 2})
				return cliquecover.RunTrial(a, newScript(t, 0, 1, 0))
			},
			want: cliquecover.Partition{{0, 2}, {1}},
		},
		{
			// Three disjoint edges visited as 0,2,4,5,3,1: equal sizes never swap.
			name: "ties keep their order",
			adj: func(t *testing.T) cliquecover.Partition {
				a := edges(t, 6, [2]int{0, 1}, [2]int{2, 3}, [2]int{4, 5})
				return cliquecover.RunTrial(a, newScript(t, 0, 2, 2, 0, 0, 0))
			},
			want: cliquecover.Partition{{4, 5}, {2, 3}, {0, 1}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.adj(t))
		})
	}
}

func TestRunTrial_DecodedSample(t *testing.T) {
	t.Parallel()

	// Edges of the 6-vertex sample graph "BgAONgo=".
	a := edges(t, 6,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 4}, [2]int{1, 5},
		[2]int{2, 3}, [2]int{2, 4}, [2]int{3, 5}, [2]int{4, 5},
	)
	p := cliquecover.RunTrial(a, zeros{})
	// Visit order 0,5,4,3,2,1: {0,3,2} overtakes {5,4}, then 1 completes {5,4,1}.
	require.Equal(t, cliquecover.Partition{{0, 3, 2}, {5, 4, 1}}, p)
	require.NoError(t, cliquecover.Validate(a, p))
}

func TestRunTrial_ValidityAcrossSeeds(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 25; seed++ {
		a := build(t, builder.RandomSparse(40, 0.5), builder.WithSeed(seed))
		p := cliquecover.RunTrial(a, rand.New(rand.NewSource(seed*31)))

		require.NoError(t, cliquecover.Validate(a, p), "seed %d", seed)
		requireDescending(t, p.Sizes())
		require.GreaterOrEqual(t, p.Len(), cliquecover.LowerBound(a))
	}
}

func TestRunTrial_FixedSeedReproducible(t *testing.T) {
	t.Parallel()

	a := build(t, builder.RandomSparse(30, 0.3), builder.WithSeed(9))
	p1 := cliquecover.RunTrial(a, rand.New(rand.NewSource(77)))
	p2 := cliquecover.RunTrial(a, rand.New(rand.NewSource(77)))
	require.Equal(t, p1, p2)
}

func TestRunTrial_NilSourceUsesDefaultSeed(t *testing.T) {
	t.Parallel()

	a := build(t, builder.RandomSparse(20, 0.5), builder.WithSeed(5))
	require.Equal(t,
		cliquecover.RunTrial(a, rand.New(rand.NewSource(1))),
		cliquecover.RunTrial(a, nil),
	)
}
