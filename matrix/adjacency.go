// SPDX-License-Identifier: MIT
// Package: cliquecover/matrix
//
// adjacency.go — dense symmetric boolean adjacency relation.
//
// Contract:
//   - Vertices are the dense indices 0..n-1; n ≥ 0.
//   - Set(i,j) always writes both (i,j) and (j,i): symmetry is structural.
//   - Has never fails; out-of-range pairs are simply not adjacent.
//
// Complexity:
//   - Memory O(n²); Has/Set O(1); Edges/Degree O(n²)/O(n).

package matrix

import "fmt"

// Adjacency is a symmetric boolean adjacency matrix stored row-major.
type Adjacency struct {
	n     int
	cells []bool
}

// NewAdjacency allocates an edgeless relation over n vertices.
// Returns ErrBadShape for n < 0. n == 0 is the valid empty graph.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency: n=%d: %w", n, ErrBadShape)
	}

	return &Adjacency{n: n, cells: make([]bool, n*n)}, nil
}

// Order returns the number of vertices.
func (a *Adjacency) Order() int {
	if a == nil {
		return 0
	}

	return a.n
}

// Set marks i and j adjacent in both directions. i == j records a loop bit,
// which only matters for encodings.
func (a *Adjacency) Set(i, j int) error {
	if !a.inRange(i) || !a.inRange(j) {
		return fmt.Errorf("Set(%d,%d) with n=%d: %w", i, j, a.Order(), ErrOutOfRange)
	}
	a.cells[i*a.n+j] = true
	a.cells[j*a.n+i] = true

	return nil
}

// Has reports whether i and j are adjacent.
func (a *Adjacency) Has(i, j int) bool {
	if !a.inRange(i) || !a.inRange(j) {
		return false
	}

	return a.cells[i*a.n+j]
}

// Edges counts unordered adjacent pairs {i,j} with i<j.
func (a *Adjacency) Edges() int {
	var count int
	for i := 0; i < a.Order(); i++ {
		row := a.cells[i*a.n : (i+1)*a.n]
		for j := i + 1; j < a.n; j++ {
			if row[j] {
				count++
			}
		}
	}

	return count
}

// Degree returns the number of neighbours of v, loops excluded.
// Out-of-range v has degree 0.
func (a *Adjacency) Degree(v int) int {
	if !a.inRange(v) {
		return 0
	}
	var d int
	for j, on := range a.cells[v*a.n : (v+1)*a.n] {
		if on && j != v {
			d++
		}
	}

	return d
}

// AdjacentToAll reports whether v is adjacent to every member of vs.
// Members equal to v are skipped; an empty vs is trivially satisfied.
//
// Complexity: O(len(vs)).
func (a *Adjacency) AdjacentToAll(v int, vs []int) bool {
	if !a.inRange(v) {
		return false
	}
	row := a.cells[v*a.n : (v+1)*a.n]
	for _, u := range vs {
		if u == v {
			continue
		}
		if !a.inRange(u) || !row[u] {
			return false
		}
	}

	return true
}

// IsClique reports whether every pair of distinct members of vs is adjacent.
// The empty set and singletons are cliques.
//
// Complexity: O(len(vs)²).
func (a *Adjacency) IsClique(vs []int) bool {
	for k, v := range vs {
		if !a.AdjacentToAll(v, vs[k+1:]) {
			return false
		}
	}

	return true
}

func (a *Adjacency) inRange(i int) bool {
	return a != nil && i >= 0 && i < a.n
}
