// SPDX-License-Identifier: MIT
// Package: cliquecover/matrix
//
// gonum.go — adapters between Adjacency and gonum graphs.
//
// Policy:
//   - gonum node IDs map 1:1 onto matrix indices; FromGraph requires the
//     dense ID range 0..n-1 (the shape produced by graph6 decoding).
//   - Loops are dropped on export: gonum simple graphs reject self edges.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromGraph copies the undirected adjacency of g into a new Adjacency.
// Returns ErrGraphNil for nil g and ErrUnknownVertex when node IDs are not
// exactly 0..n-1.
//
// Complexity: O(n² + E).
func FromGraph(g graph.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := graph.NodesOf(g.Nodes())
	adj, err := NewAdjacency(len(nodes))
	if err != nil {
		return nil, err
	}
	for _, u := range nodes {
		uid := u.ID()
		if uid < 0 || uid >= int64(adj.n) {
			return nil, fmt.Errorf("FromGraph: node %d with n=%d: %w", uid, adj.n, ErrUnknownVertex)
		}
	}

	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			if err = adj.Set(int(u.ID()), int(to.Node().ID())); err != nil {
				return nil, fmt.Errorf("FromGraph: %w", err)
			}
		}
	}

	return adj, nil
}

// Undirected exports the relation as a gonum simple undirected graph whose
// node IDs are the matrix indices.
//
// Complexity: O(n²).
func (a *Adjacency) Undirected() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < a.Order(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < a.Order(); i++ {
		for j := i + 1; j < a.n; j++ {
			if a.cells[i*a.n+j] {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return g
}
