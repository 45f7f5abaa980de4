package csv

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/grainlabs/granary/archive"
)

// Reader is the load direction of the text archive. It borrows the stream
// handle for its entire lifetime and never closes it. Readers are not safe
// for concurrent use.
//
// The Reader consumes the stream one byte at a time and never reads ahead of
// the current token, so the stream position always rests on a token boundary.
type Reader struct {
	stream io.Reader
}

// NewReader creates a Reader that consumes tokens from the given stream.
func NewReader(stream io.Reader) *Reader {
	return &Reader{stream: stream}
}

// ReadInt64 reads the next token and parses it as a base-10 integer.
func (r *Reader) ReadInt64() (int64, error) {
	return r.readInt(64)
}

// ReadUint64 reads the next token and parses it as a base-10 unsigned
// integer.
func (r *Reader) ReadUint64() (uint64, error) {
	return r.readUint(64)
}

// ReadFloat64 reads the next token and parses it as a decimal float.
func (r *Reader) ReadFloat64() (float64, error) {
	return r.readFloat(64)
}

// ReadFloat32 reads the next token and parses it as a decimal float.
func (r *Reader) ReadFloat32() (float32, error) {
	result, err := r.readFloat(32)

	return float32(result), err
}

// ReadString reads the next token and returns its bytes verbatim. At the end
// of the stream the token is empty and the returned string is "".
func (r *Reader) ReadString() (string, error) {
	var buf [TokenBufferSize]byte

	token, err := r.readToken(buf[:TokenBufferSize-1])
	if err != nil {
		return "", err
	}

	return string(token), nil
}

// ReadValue reads the next value from the stream into target, which must be a
// pointer to one of the supported kinds. A Named wrapper degrades to its
// wrapped target and a SizeTag to an ordinary unsigned integer.
func (r *Reader) ReadValue(target interface{}) error {
	switch target := target.(type) {
	case archive.Named:
		return r.ReadValue(target.Value)
	case *archive.Named:
		return r.ReadValue(target.Value)
	case *archive.SizeTag:
		size, err := r.ReadUint64()
		if err != nil {
			return err
		}
		target.Size = size
	case *int:
		result, err := r.readInt(strconv.IntSize)
		if err != nil {
			return err
		}
		*target = int(result)
	case *int8:
		result, err := r.readInt(8)
		if err != nil {
			return err
		}
		*target = int8(result)
	case *int16:
		result, err := r.readInt(16)
		if err != nil {
			return err
		}
		*target = int16(result)
	case *int32:
		result, err := r.readInt(32)
		if err != nil {
			return err
		}
		*target = int32(result)
	case *int64:
		result, err := r.readInt(64)
		if err != nil {
			return err
		}
		*target = result
	case *uint:
		result, err := r.readUint(strconv.IntSize)
		if err != nil {
			return err
		}
		*target = uint(result)
	case *uint8:
		result, err := r.readUint(8)
		if err != nil {
			return err
		}
		*target = uint8(result)
	case *uint16:
		result, err := r.readUint(16)
		if err != nil {
			return err
		}
		*target = uint16(result)
	case *uint32:
		result, err := r.readUint(32)
		if err != nil {
			return err
		}
		*target = uint32(result)
	case *uint64:
		result, err := r.readUint(64)
		if err != nil {
			return err
		}
		*target = result
	case *float32:
		result, err := r.ReadFloat32()
		if err != nil {
			return err
		}
		*target = result
	case *float64:
		result, err := r.ReadFloat64()
		if err != nil {
			return err
		}
		*target = result
	case *string:
		result, err := r.ReadString()
		if err != nil {
			return err
		}
		*target = result
	default:
		return errors.Wrapf(archive.ErrUnsupportedType, "cannot read into target of type %T (kind %s)", target, archive.KindOf(target))
	}

	return nil
}

// ReadBytes implements the byte-span primitive. The text format defines no
// byte-span encoding, so the call always fails.
func (r *Reader) ReadBytes(p []byte) error {
	return errors.Wrapf(archive.ErrUnsupportedType, "the text format has no byte-span encoding (%d bytes requested)", len(p))
}

func (r *Reader) readInt(bitSize int) (int64, error) {
	var buf [TokenBufferSize]byte

	token, err := r.readToken(buf[:TokenBufferSize-1])
	if err != nil {
		return 0, err
	}

	result, err := strconv.ParseInt(string(token), 10, bitSize)
	if err != nil {
		return 0, errors.Wrapf(archive.ErrParse, "token %q is not a valid %d bit integer", token, bitSize)
	}

	return result, nil
}

func (r *Reader) readUint(bitSize int) (uint64, error) {
	var buf [TokenBufferSize]byte

	token, err := r.readToken(buf[:TokenBufferSize-1])
	if err != nil {
		return 0, err
	}

	result, err := strconv.ParseUint(string(token), 10, bitSize)
	if err != nil {
		return 0, errors.Wrapf(archive.ErrParse, "token %q is not a valid %d bit unsigned integer", token, bitSize)
	}

	return result, nil
}

func (r *Reader) readFloat(bitSize int) (float64, error) {
	var buf [TokenBufferSize]byte

	token, err := r.readToken(buf[:TokenBufferSize-1])
	if err != nil {
		return 0, err
	}

	result, err := strconv.ParseFloat(string(token), bitSize)
	if err != nil {
		return 0, errors.Wrapf(archive.ErrParse, "token %q is not a valid %d bit float", token, bitSize)
	}

	return result, nil
}

// readToken scans the stream into buf until the delimiter is consumed or the
// stream ends. The delimiter is not part of the returned token; at the end of
// the stream the token may be empty.
func (r *Reader) readToken(buf []byte) ([]byte, error) {
	var one [1]byte

	n := 0
	for {
		readBytes, err := r.stream.Read(one[:])
		if readBytes > 0 {
			if one[0] == delimiter {
				return buf[:n], nil
			}
			if n == len(buf) {
				return nil, errors.Wrapf(archive.ErrTokenTooLong, "token exceeds %d bytes", len(buf))
			}

			buf[n] = one[0]
			n++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf[:n], nil
			}

			return nil, errors.Wrap(err, "failed to read from input stream")
		}
	}
}
