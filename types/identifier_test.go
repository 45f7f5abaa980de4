package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grainlabs/granary/archive/bin"
	"github.com/grainlabs/granary/archive/csv"
	"github.com/grainlabs/granary/types"
)

func TestNewIdentifier(t *testing.T) {
	id := types.NewIdentifier([]byte("some blob of data"))

	require.Len(t, id.Bytes(), types.IdentifierLength)
	require.Equal(t, id, types.NewIdentifier([]byte("some blob of data")))
	require.NotEqual(t, id, types.NewIdentifier([]byte("some other blob")))
}

func TestIdentifier_Base58(t *testing.T) {
	var id types.Identifier
	require.NoError(t, id.FromRandomness())

	var restored types.Identifier
	require.NoError(t, restored.FromBase58(id.Base58()))
	require.Equal(t, id, restored)
}

func TestIdentifier_FromBase58_Invalid(t *testing.T) {
	var id types.Identifier

	err := id.FromBase58("l0IO")
	require.ErrorIs(t, err, types.ErrBase58DecodeFailed)
}

func TestIdentifier_Decode_NotEnoughData(t *testing.T) {
	var id types.Identifier

	_, err := id.Decode(make([]byte, types.IdentifierLength-1))
	require.Error(t, err)
}

func TestIdentifier_Alias(t *testing.T) {
	id := types.NewIdentifier([]byte("aliased"))

	id.RegisterAlias("MyIdentifier")
	defer id.UnregisterAlias()

	require.Equal(t, "Identifier(MyIdentifier)", id.String())
}

func TestIdentifier_BinaryRoundTrip(t *testing.T) {
	var id types.Identifier
	require.NoError(t, id.FromRandomness())

	buffer := bytes.NewBuffer(nil)
	require.NoError(t, types.WriteIdentifier(bin.NewWriter(buffer), id))

	// the byte span is bit-exact on the wire
	require.Equal(t, id.Bytes(), buffer.Bytes())

	restored, err := types.ReadIdentifier(bin.NewReader(buffer))
	require.NoError(t, err)
	require.Equal(t, id, restored)
}

func TestIdentifier_TextArchiveRejected(t *testing.T) {
	var id types.Identifier
	require.NoError(t, id.FromRandomness())

	require.Error(t, types.WriteIdentifier(csv.NewWriter(bytes.NewBuffer(nil)), id))

	_, err := types.ReadIdentifier(csv.NewReader(bytes.NewReader(nil)))
	require.Error(t, err)
}
