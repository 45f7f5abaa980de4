package archive_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grainlabs/granary/archive"

	_ "github.com/grainlabs/granary/archive/bin"
	_ "github.com/grainlabs/granary/archive/csv"
)

// The leaf formats register themselves on import; a caller generic over "any
// archive" can discover both pairs and round trip values without naming a
// concrete archive type.
func TestRegisteredFormats_RoundTrip(t *testing.T) {
	for _, format := range []string{"bin", "csv"} {
		entry, err := archive.Lookup(format)
		require.NoError(t, err, format)

		buffer := bytes.NewBuffer(nil)

		output := entry.NewOutput(buffer)
		require.NoError(t, output.WriteValue(int64(42)), format)
		require.NoError(t, output.WriteValue(3.5), format)
		require.NoError(t, output.WriteValue("abc"), format)

		input := entry.NewInput(buffer)

		var (
			integer int64
			float   float64
			text    string
		)
		require.NoError(t, input.ReadValue(&integer), format)
		require.NoError(t, input.ReadValue(&float), format)
		require.NoError(t, input.ReadValue(&text), format)

		require.EqualValues(t, 42, integer, format)
		require.EqualValues(t, 3.5, float, format)
		require.EqualValues(t, "abc", text, format)
	}
}
