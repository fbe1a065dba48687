package attestation

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// EncodeID returns a base58 string form of an attestation or schema ID,
// suitable for CLI arguments and logs.
func EncodeID(id util.Uint256) string {
	return base58.Encode(id.BytesBE())
}

// DecodeID parses an ID previously produced by EncodeID.
func DecodeID(s string) (util.Uint256, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid base58 string: %w", err)
	}

	u, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid ID length: %w", err)
	}
	return u, nil
}
