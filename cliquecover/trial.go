// SPDX-License-Identifier: MIT
// Package: cliquecover
//
// trial.go — one randomized first-fit greedy pass.
//
// Contract:
//   - Every vertex 0..n-1 is drawn exactly once; draw order comes from src.
//   - A drawn vertex joins the FIRST clique (in current order) whose members
//     are all adjacent to it, else opens a new singleton at the end.
//   - After a join, the grown clique bubbles towards index 0 while strictly
//     larger than its predecessor. The order is never fully re-sorted.
//
// Complexity:
//   - Draw + swap-remove O(1); placement O(n) adjacency probes worst case;
//     O(n²) per trial overall.

package cliquecover

import "github.com/katalvlaran/cliquecover/matrix"

// RunTrial runs one randomized greedy pass over adj and returns its
// partition. A nil src falls back to the default seed. A graph of order 0
// yields an empty, non-nil partition.
func RunTrial(adj *matrix.Adjacency, src Source) Partition {
	if src == nil {
		src = rngFromSeed(0)
	}

	n := adj.Order()
	p := make(Partition, 0, n)

	// Unvisited pool; drawn slots are refilled from the tail.
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	for len(pool) > 0 {
		k := src.Intn(len(pool))
		v := pool[k]
		last := len(pool) - 1
		pool[k] = pool[last]
		pool = pool[:last]

		p = p.place(adj, v)
	}

	return p
}

// place puts v into the first eligible clique, or a new one at the end.
func (p Partition) place(adj *matrix.Adjacency, v int) Partition {
	for i := range p {
		if adj.AdjacentToAll(v, p[i]) {
			p[i] = append(p[i], v)
			p.bubbleUp(i)
			return p
		}
	}

	return append(p, Clique{v})
}

// bubbleUp moves p[i] towards the front while it is strictly larger than
// its predecessor. Equal sizes keep their relative order.
func (p Partition) bubbleUp(i int) {
	for i > 0 && len(p[i]) > len(p[i-1]) {
		p[i], p[i-1] = p[i-1], p[i]
		i--
	}
}
