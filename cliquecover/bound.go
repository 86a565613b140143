// SPDX-License-Identifier: MIT
// Package: cliquecover

package cliquecover

import (
	"sort"

	"github.com/katalvlaran/cliquecover/matrix"
)

// LowerBound returns the size of a greedy maximal independent set of adj.
// Members of an independent set are pairwise non-adjacent, so each needs
// its own clique: every partition has at least this many cliques.
//
// Vertices are taken by ascending degree (index breaks ties), which is
// deterministic and tends to find larger independent sets.
//
// Complexity: O(n² + n log n).
func LowerBound(adj *matrix.Adjacency) int {
	n := adj.Order()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	deg := make([]int, n)
	for i := range deg {
		deg[i] = adj.Degree(i)
	}
	sort.SliceStable(order, func(x, y int) bool {
		return deg[order[x]] < deg[order[y]]
	})

	blocked := make([]bool, n)
	var size int
	for _, v := range order {
		if blocked[v] {
			continue
		}
		size++
		for u := 0; u < n; u++ {
			if u != v && adj.Has(v, u) {
				blocked[u] = true
			}
		}
	}

	return size
}
