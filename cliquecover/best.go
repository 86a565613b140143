// SPDX-License-Identifier: MIT
// Package: cliquecover
//
// best.go — best-of-N fold over independent trials.
//
// The best partition is an explicit accumulator owned by the fold: it is
// replaced only when a trial yields strictly fewer cliques, so ties keep the
// earliest trial. The first trial always initializes it.

package cliquecover

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

// RunBest runs iterations trials drawing from src and returns the partition
// with the fewest cliques. iterations < 1 returns nil: no trial ran, so no
// partition was ever chosen.
func RunBest(adj *matrix.Adjacency, iterations int, src Source) Partition {
	if src == nil {
		src = rngFromSeed(0)
	}

	return fold(adj, iterations, src, foldHooks{}).Partition
}

// Solve validates adj and opts, then runs the best-of-N fold.
//
// Errors: ErrNilGraph, ErrBadIterations. The heuristic itself cannot fail.
func Solve(adj *matrix.Adjacency, opts Options) (Result, error) {
	if adj == nil {
		return Result{}, ErrNilGraph
	}
	if opts.Iterations < 1 {
		return Result{}, fmt.Errorf("Solve: iterations=%d: %w", opts.Iterations, ErrBadIterations)
	}

	hooks := foldHooks{onTrial: opts.OnTrial, onImprove: opts.OnImprove, bound: -1}
	lb := LowerBound(adj)
	if opts.StopAtBound {
		hooks.bound = lb
	}

	res := fold(adj, opts.Iterations, resolveSource(opts), hooks)
	res.LowerBound = lb

	return res, nil
}

type foldHooks struct {
	onTrial   func(int, Partition)
	onImprove func(int, Partition)
	// bound stops the fold once len(best) ≤ bound; negative disables it.
	bound int
}

func fold(adj *matrix.Adjacency, iterations int, src Source, h foldHooks) Result {
	var res Result
	for t := 0; t < iterations; t++ {
		p := RunTrial(adj, src)
		res.Trials++
		if h.onTrial != nil {
			h.onTrial(t, p)
		}

		if t == 0 || len(p) < len(res.Partition) {
			res.Partition = p
			res.BestTrial = t
			if h.onImprove != nil {
				h.onImprove(t, p)
			}
		}
		if h.bound >= 0 && len(res.Partition) <= h.bound {
			break
		}
	}

	return res
}
