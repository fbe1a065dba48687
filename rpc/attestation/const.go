package attestation

import (
	"github.com/nspcc-dev/attestation-contract/contracts/attestation/attestconst"
)

const (
	// ErrInvalidSchema is returned if the requested schema is not registered.
	ErrInvalidSchema = attestconst.ErrInvalidSchema
	// ErrInvalidExpiration is returned on an expiration time that is not in
	// the future.
	ErrInvalidExpiration = attestconst.ErrInvalidExpiration
	// ErrIrrevocable is returned on revocation attempts against data that
	// cannot be revoked.
	ErrIrrevocable = attestconst.ErrIrrevocable
	// ErrNotFound is returned if the requested attestation is missing.
	ErrNotFound = attestconst.ErrNotFound
	// ErrAccessDenied is returned on revocation by anyone but the original
	// attester.
	ErrAccessDenied = attestconst.ErrAccessDenied
	// ErrAlreadyRevoked is returned on double revocation.
	ErrAlreadyRevoked = attestconst.ErrAlreadyRevoked
	// ErrAlreadyTimestamped is returned on double timestamping.
	ErrAlreadyTimestamped = attestconst.ErrAlreadyTimestamped
	// ErrAlreadyRevokedOffchain is returned on a double offchain revocation
	// mark.
	ErrAlreadyRevokedOffchain = attestconst.ErrAlreadyRevokedOffchain
	// ErrInsufficientDeposit is returned if the GAS deposit cannot cover
	// the declared resolver value.
	ErrInsufficientDeposit = attestconst.ErrInsufficientDeposit
	// ErrResolverRejected is returned if the schema resolver refused the
	// batch.
	ErrResolverRejected = attestconst.ErrResolverRejected
)
