// Package matrix offers the dense adjacency representation used by the
// clique-cover heuristic.
//
// Adjacency is a symmetric boolean relation over vertices 0..n-1 with O(1)
// pair lookups and O(n²) memory. Diagonal entries are stored so that packed
// encodings round-trip bit-for-bit, but clique queries ignore them: a vertex
// is never compared with itself.
//
// Matrices are built once (NewAdjacency + Set, or FromGraph for gonum
// graphs) and then only read. Reads are safe for concurrent use; Set is not.
package matrix
