// Package builder provides deterministic constructors for adjacency-matrix
// fixtures used by tests, benchmarks and the `generate` command.
//
// Constructors:
//
//   - Empty(n):          n isolated vertices.
//   - Complete(n):       K_n.
//   - RandomSparse(n,p): Erdős–Rényi G(n,p); requires WithSeed/WithRand for 0<p<1.
//   - Disjoint(s...):    union of complete blocks K_{s1} ∪ K_{s2} ∪ ...
//   - Cycle(n), Path(n):  C_n and P_n.
//   - Star(n):            K_{1,n-1} with center 0.
//   - CompleteBipartite(n1,n2): K_{n1,n2}.
//
// Every deterministic constructor has a known minimum clique partition
// (documented in its file), which makes them reference inputs for the
// heuristic's quality tests.
//
// All constructors run through Build, which resolves functional options
// (BuilderOption) into an immutable builderConfig. Same constructor, options
// and seed always yield the same matrix.
package builder
