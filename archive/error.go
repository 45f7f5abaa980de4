package archive

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrWriteIncomplete gets returned when the output stream accepted fewer
	// bytes than the archive produced. The wrapping error carries the expected
	// and actual byte counts.
	ErrWriteIncomplete = errors.New("stream accepted fewer bytes than intended")
	// ErrTokenTooLong gets returned when a formatted or scanned token exceeds
	// the fixed token buffer capacity.
	ErrTokenTooLong = errors.New("token exceeds buffer capacity")
	// ErrParse gets returned when a numeric token is malformed for the
	// requested kind.
	ErrParse = errors.New("malformed token")
	// ErrUnsupportedType gets returned when a value kind is outside the closed
	// set an archive supports, or when a format has no encoding for the
	// requested primitive.
	ErrUnsupportedType = errors.New("unsupported value type")
)
