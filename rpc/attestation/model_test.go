package attestation

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeID(t *testing.T) {
	id := util.Uint256{1, 2, 3, 255}

	s := EncodeID(id)
	require.NotEmpty(t, s)

	decoded, err := DecodeID(s)
	require.NoError(t, err)
	require.Equal(t, id, decoded)

	_, err = DecodeID("not-an-id-0OIl")
	require.Error(t, err)

	// Valid base58, wrong payload length.
	_, err = DecodeID("3yZe7d")
	require.Error(t, err)
}
