// SPDX-License-Identifier: MIT
// Package: cliquecover/codec
//
// result.go — per-clique result tokens.
//
// Token layout (before base64):
//   [0:2]           uint16 LE clique size k
//   [2+2m : 4+2m]   uint16 LE m-th vertex, ascending, m = 0..k-1

package codec

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cliquecover/cliquecover"
)

// EncodeClique renders one clique as a base64 token. c is not modified.
func EncodeClique(c cliquecover.Clique) (string, error) {
	if len(c) > math.MaxUint16 {
		return "", errors.Wrapf(ErrTooManyVertices, "encode clique: size %d", len(c))
	}

	sorted := slices.Clone(c)
	slices.Sort(sorted)

	buf := make([]byte, headerLen+2*len(sorted))
	binary.LittleEndian.PutUint16(buf, uint16(len(sorted)))
	for m, v := range sorted {
		if v < 0 || v > math.MaxUint16 {
			return "", errors.Wrapf(ErrVertexRange, "encode clique: vertex %d", v)
		}
		binary.LittleEndian.PutUint16(buf[headerLen+2*m:], uint16(v))
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// EncodePartition renders every clique of p, in partition order.
func EncodePartition(p cliquecover.Partition) ([]string, error) {
	out := make([]string, 0, len(p))
	for i, c := range p {
		tok, err := EncodeClique(c)
		if err != nil {
			return nil, errors.Wrapf(err, "clique %d", i)
		}
		out = append(out, tok)
	}

	return out, nil
}

// FormatPartition joins the tokens of p with single spaces.
func FormatPartition(p cliquecover.Partition) (string, error) {
	toks, err := EncodePartition(p)
	if err != nil {
		return "", err
	}

	return strings.Join(toks, " "), nil
}

// DecodeClique parses one base64 token back into a (sorted) clique.
func DecodeClique(tok string) (cliquecover.Clique, error) {
	buf, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return nil, errors.Wrapf(ErrBadBase64, "decode clique: %v", err)
	}
	if len(buf) < headerLen {
		return nil, errors.Wrapf(ErrShortHeader, "decode clique: %d bytes", len(buf))
	}

	k := int(binary.LittleEndian.Uint16(buf))
	need := headerLen + 2*k
	switch {
	case len(buf) < need:
		return nil, errors.Wrapf(ErrTruncated, "decode clique: size %d needs %d bytes, have %d", k, need, len(buf))
	case len(buf) > need:
		return nil, errors.Wrapf(ErrTrailingBytes, "decode clique: %d extra bytes", len(buf)-need)
	}

	c := make(cliquecover.Clique, k)
	for m := range c {
		c[m] = int(binary.LittleEndian.Uint16(buf[headerLen+2*m:]))
	}

	return c, nil
}

// ParsePartition splits s on whitespace and decodes every token.
func ParsePartition(s string) (cliquecover.Partition, error) {
	fields := strings.Fields(s)
	p := make(cliquecover.Partition, 0, len(fields))
	for i, tok := range fields {
		c, err := DecodeClique(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d", i)
		}
		p = append(p, c)
	}

	return p, nil
}
