package schemaconst

const (
	// ErrAlreadyExists is returned on attempt to register a schema with
	// (schema, revocable) pair that is already registered.
	ErrAlreadyExists = "schema already exists"

	// ErrInvalidResolver is returned if resolver contract address has
	// wrong length.
	ErrInvalidResolver = "invalid resolver address"
)
