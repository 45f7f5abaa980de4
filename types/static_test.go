package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grainlabs/granary/archive"
	"github.com/grainlabs/granary/archive/bin"
	"github.com/grainlabs/granary/types"
)

type settings struct {
	Version  uint32
	Offset   int16
	Flags    [4]byte
	Ratio    float64
	Disabled bool
}

func TestStatic_RoundTrip(t *testing.T) {
	saved := settings{
		Version:  3,
		Offset:   -120,
		Flags:    [4]byte{1, 0, 1, 0},
		Ratio:    0.75,
		Disabled: true,
	}

	buffer := bytes.NewBuffer(nil)
	require.NoError(t, types.WriteStatic(bin.NewWriter(buffer), saved))

	var loaded settings
	require.NoError(t, types.ReadStatic(bin.NewReader(buffer), &loaded))
	require.Equal(t, saved, loaded)
}

func TestStatic_PointerSource(t *testing.T) {
	saved := settings{Version: 7}

	buffer := bytes.NewBuffer(nil)
	require.NoError(t, types.WriteStatic(bin.NewWriter(buffer), &saved))

	var loaded settings
	require.NoError(t, types.ReadStatic(bin.NewReader(buffer), &loaded))
	require.Equal(t, saved, loaded)
}

func TestStatic_NotTriviallyCopyable(t *testing.T) {
	writer := bin.NewWriter(bytes.NewBuffer(nil))

	// strings, slices and maps have no fixed-width byte image
	require.ErrorIs(t, types.WriteStatic(writer, struct{ Name string }{"x"}), archive.ErrUnsupportedType)
	require.ErrorIs(t, types.WriteStatic(writer, []int{1, 2}), archive.ErrUnsupportedType)
	require.ErrorIs(t, types.WriteStatic(writer, map[int]int{}), archive.ErrUnsupportedType)
}

func TestStatic_ReadTargetMustBePointer(t *testing.T) {
	reader := bin.NewReader(bytes.NewReader(nil))

	require.ErrorIs(t, types.ReadStatic(reader, settings{}), archive.ErrUnsupportedType)
}
