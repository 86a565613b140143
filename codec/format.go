// SPDX-License-Identifier: MIT
// Package: cliquecover/codec

package codec

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cliquecover/matrix"
)

// Format names a graph wire format.
type Format string

// Supported graph formats.
const (
	FormatPacked Format = "packed"
	FormatGraph6 Format = "graph6"
)

// Formats lists the supported formats in help-text order.
var Formats = []Format{FormatPacked, FormatGraph6}

// ParseFormat resolves a case-insensitive format name. Empty means packed.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatPacked:
		return FormatPacked, nil
	case FormatGraph6:
		return FormatGraph6, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Decode parses s according to f.
func Decode(f Format, s string) (*matrix.Adjacency, error) {
	switch f {
	case FormatPacked:
		return DecodeGraph(s)
	case FormatGraph6:
		return DecodeGraph6(s)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}

// Encode renders adj according to f.
func Encode(f Format, adj *matrix.Adjacency) (string, error) {
	switch f {
	case FormatPacked:
		return EncodeGraph(adj)
	case FormatGraph6:
		return EncodeGraph6(adj)
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}
