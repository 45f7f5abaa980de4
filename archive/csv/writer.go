package csv

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/grainlabs/granary/archive"
)

// Writer is the save direction of the text archive. It borrows the stream
// handle for its entire lifetime and never closes it. Writers are not safe
// for concurrent use.
type Writer struct {
	stream io.Writer
}

// NewWriter creates a Writer that appends tokens to the given stream.
func NewWriter(stream io.Writer) *Writer {
	return &Writer{stream: stream}
}

// WriteInt64 writes the canonical base-10 form of the given value, followed
// by the delimiter.
func (w *Writer) WriteInt64(value int64) error {
	var buf [TokenBufferSize]byte

	return w.writeToken(strconv.AppendInt(buf[:0], value, 10))
}

// WriteUint64 writes the canonical base-10 form of the given value, followed
// by the delimiter.
func (w *Writer) WriteUint64(value uint64) error {
	var buf [TokenBufferSize]byte

	return w.writeToken(strconv.AppendUint(buf[:0], value, 10))
}

// WriteFloat64 writes the shortest fixed-notation decimal form that parses
// back to the given value, followed by the delimiter.
func (w *Writer) WriteFloat64(value float64) error {
	var buf [TokenBufferSize]byte

	return w.writeToken(strconv.AppendFloat(buf[:0], value, 'f', -1, 64))
}

// WriteFloat32 writes the shortest fixed-notation decimal form that parses
// back to the given value, followed by the delimiter.
func (w *Writer) WriteFloat32(value float32) error {
	var buf [TokenBufferSize]byte

	return w.writeToken(strconv.AppendFloat(buf[:0], float64(value), 'f', -1, 32))
}

// WriteString writes the string's bytes verbatim, followed by the delimiter.
// The string must not contain the delimiter character itself, or reading the
// stream back becomes ambiguous; this is a caller obligation and is not
// enforced here.
func (w *Writer) WriteString(value string) error {
	if err := w.writeAll([]byte(value)); err != nil {
		return err
	}

	return w.writeAll([]byte{delimiter})
}

// WriteValue appends a single primitive value to the stream, dispatching on
// its kind. A Named wrapper degrades to its wrapped value and a SizeTag to an
// ordinary unsigned integer.
func (w *Writer) WriteValue(v interface{}) error {
	switch value := v.(type) {
	case archive.Named:
		return w.WriteValue(value.Value)
	case archive.SizeTag:
		return w.WriteUint64(value.Size)
	case int:
		return w.WriteInt64(int64(value))
	case int8:
		return w.WriteInt64(int64(value))
	case int16:
		return w.WriteInt64(int64(value))
	case int32:
		return w.WriteInt64(int64(value))
	case int64:
		return w.WriteInt64(value)
	case uint:
		return w.WriteUint64(uint64(value))
	case uint8:
		return w.WriteUint64(uint64(value))
	case uint16:
		return w.WriteUint64(uint64(value))
	case uint32:
		return w.WriteUint64(uint64(value))
	case uint64:
		return w.WriteUint64(value)
	case float32:
		return w.WriteFloat32(value)
	case float64:
		return w.WriteFloat64(value)
	case string:
		return w.WriteString(value)
	default:
		return errors.Wrapf(archive.ErrUnsupportedType, "cannot write value of type %T (kind %s)", v, archive.KindOf(v))
	}
}

// WriteBytes implements the byte-span primitive. The text format defines no
// byte-span encoding, so the call always fails.
func (w *Writer) WriteBytes(p []byte) error {
	return errors.Wrapf(archive.ErrUnsupportedType, "the text format has no byte-span encoding (%d bytes requested)", len(p))
}

// writeToken appends the delimiter to the formatted token and flushes it to
// the stream in a single write.
func (w *Writer) writeToken(token []byte) error {
	if len(token) > TokenBufferSize-1 {
		return errors.Wrapf(archive.ErrTokenTooLong, "formatted value occupies %d bytes, token capacity is %d", len(token), TokenBufferSize-1)
	}

	return w.writeAll(append(token, delimiter))
}

func (w *Writer) writeAll(p []byte) error {
	writtenBytes, err := w.stream.Write(p)
	if err != nil {
		return errors.Wrap(err, "failed to write to output stream")
	}
	if writtenBytes != len(p) {
		return errors.Wrapf(archive.ErrWriteIncomplete, "wrote %d of %d bytes", writtenBytes, len(p))
	}

	return nil
}
