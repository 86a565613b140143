// Package codec converts between wire strings and the in-memory types of
// the clique-cover tool.
//
// Graph formats:
//
//   - packed: base64 of [u16le n][upper-triangle bits incl. diagonal],
//     rows i = 0..n-1, columns j = i..n-1, LSB first within each byte.
//   - graph6: the nauty/gonum format, via gonum's graph6 encoding.
//
// Result format: one base64 token per clique, [u16le size][u16le v]...
// with vertices ascending; tokens are space separated in partition order.
//
// ResolveInput implements the "literal string or file whose first line is
// the string" convention of the command line.
package codec
