package attestconst

const (
	// ErrInvalidRegistry is returned if schema registry address is missing
	// or malformed at contract deployment.
	ErrInvalidRegistry = "invalid schema registry address"

	// ErrInvalidSchema is returned if referenced schema is not registered
	// in the schema registry, or if revoked attestation belongs to a
	// different schema.
	ErrInvalidSchema = "schema is not registered"

	// ErrInvalidExpiration is returned if requested expiration time is set
	// and is not strictly in the future.
	ErrInvalidExpiration = "expiration time is not in the future"

	// ErrIrrevocable is returned on attempt to create a revocable
	// attestation against a non-revocable schema, or to revoke a
	// non-revocable attestation.
	ErrIrrevocable = "attestation is irrevocable"

	// ErrNotFound is returned if referenced attestation does not exist,
	// either on direct lookup or through a reference ID.
	ErrNotFound = "attestation does not exist"

	// ErrAccessDenied is returned if revoker is not the original attester.
	ErrAccessDenied = "only original attester can revoke"

	// ErrAlreadyRevoked is returned on attempt to revoke an attestation
	// that already has a revocation time.
	ErrAlreadyRevoked = "attestation is already revoked"

	// ErrAlreadyTimestamped is returned on attempt to timestamp a data
	// hash that already has a timestamp entry.
	ErrAlreadyTimestamped = "data is already timestamped"

	// ErrAlreadyRevokedOffchain is returned on attempt to mark data as
	// revoked offchain twice with the same revoker.
	ErrAlreadyRevokedOffchain = "data is already revoked"

	// ErrInsufficientDeposit is returned if declared batch values exceed
	// the GAS deposit of the caller.
	ErrInsufficientDeposit = "insufficient deposit"

	// ErrResolverRejected is returned if schema resolver did not accept
	// the attestation or revocation batch.
	ErrResolverRejected = "resolver rejected the batch"
)
