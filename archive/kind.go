package archive

// ValueKind is the closed set of primitive kinds an archive can carry.
type ValueKind byte

const (
	// KindInvalid marks values outside the supported primitive kinds.
	KindInvalid ValueKind = iota
	// KindInteger covers the signed and unsigned fixed-width integer types.
	KindInteger
	// KindFloat covers float32 and float64.
	KindFloat
	// KindText covers string values.
	KindText
)

// String returns a human-readable version of the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "ValueKind(Integer)"
	case KindFloat:
		return "ValueKind(Float)"
	case KindText:
		return "ValueKind(Text)"
	default:
		return "ValueKind(Invalid)"
	}
}

// KindOf classifies a value into the closed set of primitive kinds. Pointers
// are classified by their element type, so read targets and plain values
// resolve to the same kind.
func KindOf(v interface{}) ValueKind {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64:
		return KindInteger
	case float32, float64, *float32, *float64:
		return KindFloat
	case string, *string:
		return KindText
	default:
		return KindInvalid
	}
}
