package cliquecover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cliquecover/builder"
	"github.com/katalvlaran/cliquecover/cliquecover"
	"github.com/katalvlaran/cliquecover/matrix"
)

type SolveSuite struct {
	suite.Suite
	sparse *matrix.Adjacency
}

func (s *SolveSuite) SetupSuite() {
	var err error
	s.sparse, err = builder.Build(builder.RandomSparse(36, 0.45), builder.WithSeed(11))
	s.Require().NoError(err)
}

func (s *SolveSuite) TestRejectsNilGraph() {
	_, err := cliquecover.Solve(nil, cliquecover.DefaultOptions())
	s.Require().ErrorIs(err, cliquecover.ErrNilGraph)
}

func (s *SolveSuite) TestRejectsBadIterations() {
	for _, it := range []int{0, -4} {
		_, err := cliquecover.Solve(s.sparse, cliquecover.Options{Iterations: it})
		s.Require().ErrorIs(err, cliquecover.ErrBadIterations, "iterations=%d", it)
	}
}

func (s *SolveSuite) TestSeedDeterminism() {
	require := require.New(s.T())
	opts := cliquecover.Options{Iterations: 12, Seed: 99}

	r1, err := cliquecover.Solve(s.sparse, opts)
	require.NoError(err)
	r2, err := cliquecover.Solve(s.sparse, opts)
	require.NoError(err)
	require.Equal(r1, r2)

	// Seed 0 selects the fixed default stream.
	z, err := cliquecover.Solve(s.sparse, cliquecover.Options{Iterations: 4})
	require.NoError(err)
	one, err := cliquecover.Solve(s.sparse, cliquecover.Options{Iterations: 4, Seed: 1})
	require.NoError(err)
	require.Equal(one.Partition, z.Partition)
}

func (s *SolveSuite) TestHooks() {
	require := require.New(s.T())

	var trials []int
	var improved []int
	var sizes []int
	res, err := cliquecover.Solve(s.sparse, cliquecover.Options{
		Iterations: 20,
		Seed:       5,
		OnTrial: func(trial int, p cliquecover.Partition) {
			trials = append(trials, trial)
			require.NoError(cliquecover.Validate(s.sparse, p))
		},
		OnImprove: func(trial int, p cliquecover.Partition) {
			improved = append(improved, trial)
			sizes = append(sizes, p.Len())
		},
	})
	require.NoError(err)

	require.Len(trials, 20)
	require.Equal(20, res.Trials)
	require.Equal(0, improved[0], "first trial always initializes the best result")
	for i := 1; i < len(sizes); i++ {
		require.Less(sizes[i], sizes[i-1], "improvements must be strict")
	}
	require.Equal(improved[len(improved)-1], res.BestTrial)
	require.Equal(sizes[len(sizes)-1], res.Partition.Len())
	require.NoError(cliquecover.Validate(s.sparse, res.Partition))
	require.GreaterOrEqual(res.Partition.Len(), res.LowerBound)
}

func (s *SolveSuite) TestTiesKeepEarliest() {
	// Every trial on an edgeless graph has n cliques.
	a, err := builder.Build(builder.Empty(6))
	s.Require().NoError(err)
	res, err := cliquecover.Solve(a, cliquecover.Options{Iterations: 10, Seed: 3})
	s.Require().NoError(err)
	s.Require().Equal(0, res.BestTrial)
	s.Require().Equal(6, res.Partition.Len())
}

func (s *SolveSuite) TestStopAtBound() {
	require := require.New(s.T())
	a, err := builder.Build(builder.Disjoint(4, 3, 2, 1))
	require.NoError(err)

	res, err := cliquecover.Solve(a, cliquecover.Options{Iterations: 500, Seed: 8, StopAtBound: true})
	require.NoError(err)
	require.Equal(4, res.LowerBound)
	require.Equal(4, res.Partition.Len())
	require.Equal(1, res.Trials, "disjoint cliques are solved optimally by the first trial")

	full, err := cliquecover.Solve(a, cliquecover.Options{Iterations: 5, Seed: 8})
	require.NoError(err)
	require.Equal(5, full.Trials)
	require.Equal(res.Partition, full.Partition)
}

func (s *SolveSuite) TestExplicitRandOverridesSeed() {
	a := s.sparse
	res, err := cliquecover.Solve(a, cliquecover.Options{Iterations: 3, Seed: 1234, Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)
	def, err := cliquecover.Solve(a, cliquecover.Options{Iterations: 3})
	s.Require().NoError(err)
	s.Require().Equal(def.Partition, res.Partition)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestRunBest_Monotonic checks that best-of-(k+1) never has more cliques than
// best-of-k when both consume the same random stream.
func TestRunBest_Monotonic(t *testing.T) {
	t.Parallel()

	a := build(t, builder.RandomSparse(45, 0.5), builder.WithSeed(21))
	prev := -1
	for k := 1; k <= 15; k++ {
		p := cliquecover.RunBest(a, k, rand.New(rand.NewSource(404)))
		require.NoError(t, cliquecover.Validate(a, p))
		if prev >= 0 {
			require.LessOrEqual(t, p.Len(), prev, "k=%d", k)
		}
		prev = p.Len()
	}
}

func TestRunBest_NoIterations(t *testing.T) {
	t.Parallel()

	a := build(t, builder.Complete(3))
	require.Nil(t, cliquecover.RunBest(a, 0, rand.New(rand.NewSource(1))))
	require.Nil(t, cliquecover.RunBest(a, -2, nil))
}

func TestRunBest_CompleteGraph(t *testing.T) {
	t.Parallel()

	a := build(t, builder.Complete(3))
	p := cliquecover.RunBest(a, 1, rand.New(rand.NewSource(17)))
	require.Len(t, p, 1)
	require.Equal(t, cliquecover.Clique{0, 1, 2}, p.Sorted()[0])
}

func TestLowerBound(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, cliquecover.LowerBound(build(t, builder.Empty(0))))
	require.Equal(t, 5, cliquecover.LowerBound(build(t, builder.Empty(5))))
	require.Equal(t, 1, cliquecover.LowerBound(build(t, builder.Complete(4))))
	require.Equal(t, 3, cliquecover.LowerBound(build(t, builder.Disjoint(3, 2, 1))))
	// C5 has independence number 2.
	c5 := edges(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0})
	require.Equal(t, 2, cliquecover.LowerBound(c5))
}
