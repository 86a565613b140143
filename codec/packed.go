// SPDX-License-Identifier: MIT
// Package: cliquecover/codec
//
// packed.go — bit-packed upper-triangular adjacency format.
//
// Layout:
//   [0:2]  uint16 little-endian vertex count n
//   [2:]   one bit per pair (i,j), j ≥ i, row-major; bit k of the payload
//          lives in byte 2+k/8 at position k%8 (LSB first).
//
// Decoding reads exactly ceil(n(n+1)/2 / 8) payload bytes; anything after
// them is ignored. Encoding writes exactly that many. A header cut short
// to 0 or 1 zero bytes reads as n = 0.

package codec

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cliquecover/matrix"
)

// headerLen is the size of the little-endian vertex count.
const headerLen = 2

// payloadLen returns the packed triangle size in bytes for n vertices.
func payloadLen(n int) int {
	bits := n * (n + 1) / 2
	return (bits + 7) / 8
}

// DecodeGraph parses a base64 packed graph. Surrounding whitespace is ignored.
func DecodeGraph(s string) (*matrix.Adjacency, error) {
	buf, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(ErrBadBase64, "decode graph: %v", err)
	}

	return UnpackGraph(buf)
}

// UnpackGraph parses the raw (already base64-decoded) packed bytes.
func UnpackGraph(buf []byte) (*matrix.Adjacency, error) {
	if len(buf) < headerLen {
		// A truncated header that still reads as zero is the empty graph.
		for _, b := range buf {
			if b != 0 {
				return nil, errors.Wrapf(ErrShortHeader, "unpack graph: %d bytes", len(buf))
			}
		}
		return matrix.NewAdjacency(0)
	}
	n := int(binary.LittleEndian.Uint16(buf))
	if need := headerLen + payloadLen(n); len(buf) < need {
		return nil, errors.Wrapf(ErrTruncated, "unpack graph: n=%d needs %d bytes, have %d", n, need, len(buf))
	}

	adj, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, errors.Wrap(err, "unpack graph")
	}

	idx, mask := headerLen, byte(1)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if buf[idx]&mask != 0 {
				if err = adj.Set(i, j); err != nil {
					return nil, errors.Wrap(err, "unpack graph")
				}
			}
			mask <<= 1
			if mask == 0 {
				idx++
				mask = 1
			}
		}
	}

	return adj, nil
}

// EncodeGraph renders adj in the base64 packed format.
func EncodeGraph(adj *matrix.Adjacency) (string, error) {
	buf, err := PackGraph(adj)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// PackGraph renders adj as raw packed bytes, diagonal bits included.
func PackGraph(adj *matrix.Adjacency) ([]byte, error) {
	if adj == nil {
		return nil, ErrNilGraph
	}
	n := adj.Order()
	if n > math.MaxUint16 {
		return nil, errors.Wrapf(ErrTooManyVertices, "pack graph: n=%d", n)
	}

	buf := make([]byte, headerLen+payloadLen(n))
	binary.LittleEndian.PutUint16(buf, uint16(n))

	var bit int
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if adj.Has(i, j) {
				buf[headerLen+bit/8] |= 1 << (bit % 8)
			}
			bit++
		}
	}

	return buf, nil
}
