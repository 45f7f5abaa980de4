package bin

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/grainlabs/granary/archive"
)

// Writer is the save direction of the binary archive. It borrows the stream
// handle for its entire lifetime and never closes it. Writers are not safe
// for concurrent use.
type Writer struct {
	stream io.Writer
}

// NewWriter creates a Writer that encodes values onto the given stream.
func NewWriter(stream io.Writer) *Writer {
	return &Writer{stream: stream}
}

// WriteValue encodes a single primitive value onto the stream. Integers
// widen to their fixed-width wire form, strings carry a uint32 length
// prefix, a Named wrapper degrades to its wrapped value and a SizeTag to a
// uint64 count.
func (w *Writer) WriteValue(v interface{}) error {
	switch value := v.(type) {
	case archive.Named:
		return w.WriteValue(value.Value)
	case archive.SizeTag:
		return Write(w.stream, value.Size)
	case int:
		return Write(w.stream, int64(value))
	case int8:
		return Write(w.stream, value)
	case int16:
		return Write(w.stream, value)
	case int32:
		return Write(w.stream, value)
	case int64:
		return Write(w.stream, value)
	case uint:
		return Write(w.stream, uint64(value))
	case uint8:
		return Write(w.stream, value)
	case uint16:
		return Write(w.stream, value)
	case uint32:
		return Write(w.stream, value)
	case uint64:
		return Write(w.stream, value)
	case float32:
		return Write(w.stream, value)
	case float64:
		return Write(w.stream, value)
	case string:
		return w.writeString(value)
	default:
		return errors.Wrapf(archive.ErrUnsupportedType, "cannot write value of type %T (kind %s)", v, archive.KindOf(v))
	}
}

// WriteBytes implements the byte-span primitive as a bit-exact raw write.
func (w *Writer) WriteBytes(p []byte) error {
	writtenBytes, err := w.stream.Write(p)
	if err != nil {
		return errors.Wrap(err, "failed to write to output stream")
	}
	if writtenBytes != len(p) {
		return errors.Wrapf(archive.ErrWriteIncomplete, "wrote %d of %d bytes", writtenBytes, len(p))
	}

	return nil
}

func (w *Writer) writeString(value string) error {
	if len(value) > math.MaxUint32 {
		return errors.Wrapf(archive.ErrUnsupportedType, "string of %d bytes exceeds the uint32 length prefix", len(value))
	}

	if err := Write(w.stream, uint32(len(value))); err != nil {
		return errors.Wrap(err, "failed to write string length prefix")
	}

	return w.WriteBytes([]byte(value))
}
