// Package archive defines the contracts that concrete archive formats plug
// into: the save/load archive interfaces, the closed set of primitive value
// kinds, the positional wrappers and the format registry.
package archive

// Output is the save direction of an archive, bound to a concrete wire
// format. An Output borrows the stream handle it was constructed with for its
// entire lifetime and never closes it.
//
// Outputs provide no internal locking; callers must serialize access when
// sharing one instance across goroutines.
type Output interface {
	// WriteValue appends a single primitive value to the stream. The supported
	// kinds are the integer, float and text kinds (see KindOf); a Named wrapper
	// degrades to its wrapped value and a SizeTag to its count. Any other value
	// fails with ErrUnsupportedType.
	WriteValue(v interface{}) error

	// WriteBytes writes len(p) raw bytes through the archive's byte-span
	// primitive. Formats without a byte-span encoding fail with
	// ErrUnsupportedType.
	WriteBytes(p []byte) error
}

// Input is the load direction of an archive. It mirrors Output: each call
// consumes exactly one value previously produced by the paired Output.
//
// The stream carries no schema; the caller must request values in the same
// order and of the same kind they were written.
type Input interface {
	// ReadValue reads the next value from the stream into target, which must be
	// a pointer to one of the supported kinds (or a Named/SizeTag wrapper).
	ReadValue(target interface{}) error

	// ReadBytes fills p entirely through the archive's byte-span primitive.
	ReadBytes(p []byte) error
}

// Named attaches a label to a value. Format-aware archives may emit the label
// as a field name; positional formats discard it and serialize only the
// wrapped value. For reads, Value must hold a pointer to the target.
type Named struct {
	Name  string
	Value interface{}
}

// WithName wraps a value with a label.
func WithName(name string, value interface{}) Named {
	return Named{Name: name, Value: value}
}

// SizeTag marks a value as a collection's element count, allowing formats to
// encode lengths distinctly. Positional formats serialize the count as an
// ordinary unsigned integer.
type SizeTag struct {
	Size uint64
}
