package types

import (
	"bytes"
	"encoding/binary"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/grainlabs/granary/archive"
)

// region static value adapter /////////////////////////////////////////////////////////////////////////////////////////

// WriteStatic persists the raw fixed-width byte image of a value through the
// byte-span primitive of the active archive. It is an escape hatch for
// trivially-copyable values only: fixed-size types without pointers, slices,
// maps or strings anywhere in them, whose byte image is a complete
// representation of the value. Anything else is rejected with
// ErrUnsupportedType.
//
// The image is written in little-endian field order; save and load side must
// agree on the exact type definition.
func WriteStatic(ar archive.Output, value interface{}) error {
	size := binary.Size(value)
	if size < 0 {
		return errors.Errorf("value of type %T is not trivially copyable: %w", value, archive.ErrUnsupportedType)
	}

	image := bytes.NewBuffer(make([]byte, 0, size))
	if err := binary.Write(image, binary.LittleEndian, value); err != nil {
		return errors.Errorf("failed to capture byte image of %T: %w", value, err)
	}

	return ar.WriteBytes(image.Bytes())
}

// ReadStatic restores a value previously persisted with WriteStatic from the
// active archive. The target must be a pointer to the same trivially-copyable
// type that was written.
func ReadStatic(ar archive.Input, target interface{}) error {
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		return errors.Errorf("read target of type %T is not a pointer: %w", target, archive.ErrUnsupportedType)
	}

	size := binary.Size(target)
	if size < 0 {
		return errors.Errorf("target of type %T is not trivially copyable: %w", target, archive.ErrUnsupportedType)
	}

	image := make([]byte, size)
	if err := ar.ReadBytes(image); err != nil {
		return errors.Errorf("failed to read byte image of %T: %w", target, err)
	}

	return binary.Read(bytes.NewReader(image), binary.LittleEndian, target)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
