// SPDX-License-Identifier: MIT
// Package: cliquecover

package cliquecover

import (
	"slices"
	"strconv"
	"strings"
)

// Len returns the number of cliques.
func (p Partition) Len() int { return len(p) }

// Sizes returns the clique sizes in partition order.
func (p Partition) Sizes() []int {
	out := make([]int, len(p))
	for i, c := range p {
		out[i] = len(c)
	}

	return out
}

// Sorted returns a deep copy whose cliques are each sorted ascending.
// Partition order is preserved.
func (p Partition) Sorted() Partition {
	out := make(Partition, len(p))
	for i, c := range p {
		out[i] = slices.Clone(c)
		slices.Sort(out[i])
	}

	return out
}

// String renders the partition as nested lists in placement order,
// e.g. "[[2, 0, 1], [3]]".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for k, v := range c {
			if k > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
