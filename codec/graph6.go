// SPDX-License-Identifier: MIT
// Package: cliquecover/codec

package codec

import (
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/encoding/graph6"

	"github.com/katalvlaran/cliquecover/matrix"
)

// DecodeGraph6 parses a graph6 string (no ">>graph6<<" header).
// Loops cannot be expressed in graph6, so the result has an empty diagonal.
func DecodeGraph6(s string) (*matrix.Adjacency, error) {
	g := graph6.Graph(strings.TrimSpace(s))
	if g == "" || !graph6.IsValid(g) {
		return nil, errors.Wrapf(ErrBadGraph6, "decode graph6: %q", s)
	}

	adj, err := matrix.FromGraph(g)
	if err != nil {
		return nil, errors.Wrap(err, "decode graph6")
	}

	return adj, nil
}

// EncodeGraph6 renders adj as graph6. Loop bits are dropped.
func EncodeGraph6(adj *matrix.Adjacency) (string, error) {
	if adj == nil {
		return "", ErrNilGraph
	}

	return string(graph6.Encode(adj.Undirected())), nil
}
