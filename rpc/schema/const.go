package schema

import (
	"github.com/nspcc-dev/attestation-contract/contracts/schema/schemaconst"
)

const (
	// ErrAlreadyExists is returned on an attempt to register a schema that
	// is already registered.
	ErrAlreadyExists = schemaconst.ErrAlreadyExists

	// ErrInvalidResolver is returned on a malformed resolver address.
	ErrInvalidResolver = schemaconst.ErrInvalidResolver
)
