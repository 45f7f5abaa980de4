// Package bin implements the binary archive pair. Primitives are encoded as
// little-endian fixed-width values, strings carry a uint32 length prefix and
// the byte-span primitive is a bit-exact pass-through. The encoding does
// nothing to reconcile endianness or layout differences between the saving
// and loading side; both ends must agree.
package bin

import (
	"encoding/binary"
	"io"

	"github.com/grainlabs/granary/archive"
)

// Format is the name the archive pair is registered under.
const Format = "bin"

// byteOrder is the byte order of every fixed-width value on the wire.
var byteOrder = binary.LittleEndian

// basicType covers the fixed-width values the generic helpers can encode
// directly.
type basicType interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// Write writes a fixed-width basic value to the writer in the wire byte
// order.
func Write[T basicType](writer io.Writer, value T) error {
	return binary.Write(writer, byteOrder, value)
}

// Read reads a fixed-width basic value from the reader in the wire byte
// order.
func Read[T basicType](reader io.Reader) (result T, err error) {
	return result, binary.Read(reader, byteOrder, &result)
}

// read decodes into an arbitrary fixed-width pointer target.
func read(reader io.Reader, target interface{}) error {
	return binary.Read(reader, byteOrder, target)
}

func init() {
	archive.Register(Format, archive.Entry{
		NewOutput: func(stream io.Writer) archive.Output { return NewWriter(stream) },
		NewInput:  func(stream io.Reader) archive.Input { return NewReader(stream) },
	})
}
