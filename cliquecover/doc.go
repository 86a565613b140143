// Package cliquecover approximates a minimum clique partition of an
// undirected graph with a randomized first-fit greedy heuristic.
//
// One trial (RunTrial) draws the unvisited vertices in random order and
// places each into the first existing clique it is fully adjacent to,
// scanning cliques from largest to smallest; otherwise it opens a new
// singleton clique. Cliques stay ordered by non-increasing size through a
// local bubble-up after every insertion.
//
// RunBest repeats trials and keeps the partition with the fewest cliques
// (earliest wins ties). Solve is the validated entry point with options,
// seed policy and progress hooks:
//
//	adj, _ := builder.Build(builder.Disjoint(3, 2))
//	res, err := cliquecover.Solve(adj, cliquecover.Options{Iterations: 8, Seed: 42})
//
// The heuristic is a Las Vegas style approximation: every trial returns a
// valid partition, none is guaranteed minimum, and best-of-N quality is
// non-increasing in N for a shared random stream.
//
// Concurrency: trials run sequentially. A Source (e.g. *rand.Rand) is not
// goroutine-safe and must not be shared between concurrent Solve calls.
package cliquecover
