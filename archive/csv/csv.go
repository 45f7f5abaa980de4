// Package csv implements the whitespace-delimited text archive pair. Every
// primitive is rendered as its decimal or verbatim text form followed by a
// single ASCII space; the stream carries no record separators, field names or
// type tags, so the reader must know the exact sequence and kinds of the
// values it reads back.
package csv

import (
	"io"

	"github.com/grainlabs/granary/archive"
)

// Format is the name the archive pair is registered under.
const Format = "csv"

// TokenBufferSize is the fixed capacity of the per-value token buffer. A
// formatted value may occupy at most TokenBufferSize-1 bytes, leaving room
// for the delimiter.
const TokenBufferSize = 64

// delimiter terminates every token on the wire.
const delimiter = ' '

func init() {
	archive.Register(Format, archive.Entry{
		NewOutput: func(stream io.Writer) archive.Output { return NewWriter(stream) },
		NewInput:  func(stream io.Reader) archive.Input { return NewReader(stream) },
	})
}
