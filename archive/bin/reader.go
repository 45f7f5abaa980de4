package bin

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/grainlabs/granary/archive"
)

// Reader is the load direction of the binary archive. It borrows the stream
// handle for its entire lifetime and never closes it. Readers are not safe
// for concurrent use.
type Reader struct {
	stream io.Reader
}

// NewReader creates a Reader that decodes values from the given stream.
func NewReader(stream io.Reader) *Reader {
	return &Reader{stream: stream}
}

// ReadValue decodes the next value from the stream into target, which must be
// a pointer to one of the supported kinds. A Named wrapper degrades to its
// wrapped target and a SizeTag to a uint64 count.
func (r *Reader) ReadValue(target interface{}) error {
	switch target := target.(type) {
	case archive.Named:
		return r.ReadValue(target.Value)
	case *archive.Named:
		return r.ReadValue(target.Value)
	case *archive.SizeTag:
		size, err := Read[uint64](r.stream)
		if err != nil {
			return errors.Wrap(err, "failed to read size tag")
		}
		target.Size = size
	case *int:
		result, err := Read[int64](r.stream)
		if err != nil {
			return errors.Wrap(err, "failed to read int")
		}
		*target = int(result)
	case *uint:
		result, err := Read[uint64](r.stream)
		if err != nil {
			return errors.Wrap(err, "failed to read uint")
		}
		*target = uint(result)
	case *string:
		result, err := r.readString()
		if err != nil {
			return err
		}
		*target = result
	case *int8, *int16, *int32, *int64, *uint8, *uint16, *uint32, *uint64, *float32, *float64:
		if err := read(r.stream, target); err != nil {
			return errors.Wrapf(err, "failed to read value of type %T", target)
		}
	default:
		return errors.Wrapf(archive.ErrUnsupportedType, "cannot read into target of type %T (kind %s)", target, archive.KindOf(target))
	}

	return nil
}

// ReadBytes implements the byte-span primitive as a bit-exact raw read that
// fills p entirely.
func (r *Reader) ReadBytes(p []byte) error {
	readBytes, err := io.ReadFull(r.stream, p)
	if err != nil {
		return errors.Wrapf(err, "failed to read byte span: read %d of %d bytes", readBytes, len(p))
	}

	return nil
}

func (r *Reader) readString() (string, error) {
	length, err := Read[uint32](r.stream)
	if err != nil {
		return "", errors.Wrap(err, "failed to read string length prefix")
	}

	if length == 0 {
		return "", nil
	}

	raw := make([]byte, length)
	if err := r.ReadBytes(raw); err != nil {
		return "", err
	}

	return string(raw), nil
}
