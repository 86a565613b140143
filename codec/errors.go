// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.
// Decoders wrap these with github.com/pkg/errors for context; callers match
// with errors.Is.

package codec

import "github.com/pkg/errors"

var (
	// ErrBadBase64 indicates the input is not valid padded standard base64.
	ErrBadBase64 = errors.New("codec: invalid base64")

	// ErrShortHeader indicates a buffer shorter than the 2-byte count header.
	// Packed graphs accept an all-zero short header as n = 0.
	ErrShortHeader = errors.New("codec: missing length header")

	// ErrTruncated indicates the buffer ends before all declared data.
	ErrTruncated = errors.New("codec: truncated buffer")

	// ErrTrailingBytes indicates bytes after a fully decoded clique token.
	ErrTrailingBytes = errors.New("codec: trailing bytes")

	// ErrTooManyVertices indicates a count that does not fit in uint16.
	ErrTooManyVertices = errors.New("codec: too many vertices")

	// ErrVertexRange indicates a vertex index that does not fit in uint16.
	ErrVertexRange = errors.New("codec: vertex index out of range")

	// ErrBadGraph6 indicates an invalid graph6 string.
	ErrBadGraph6 = errors.New("codec: invalid graph6")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrInputUnreadable indicates an input file that exists but cannot be read.
	ErrInputUnreadable = errors.New("codec: input file unreadable")

	// ErrNilGraph indicates a nil matrix passed to an encoder.
	ErrNilGraph = errors.New("codec: graph is nil")
)
