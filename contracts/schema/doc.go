/*
Package schema implements Schema Registry contract.

Schema Registry stores immutable descriptors of attestation schemas. Every
attestation issued through the Attestation contract references one of the
records kept here. A record is identified by a SHA-256 hash of its schema
string and revocability flag, so the same pair can be registered exactly once.
A record may carry a resolver contract address; the Attestation contract
forwards every attestation and revocation batch made against the schema to
that resolver.

# Contract notifications

SchemaRegistered notification. This notification is produced when a new schema
is registered.

	SchemaRegistered:
	  - name: id
	    type: Hash256
	  - name: registerer
	    type: Hash160
	  - name: schema
	    type: String
	  - name: resolver
	    type: ByteArray
	  - name: revocable
	    type: Boolean
*/
package schema

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'x' + [32]byte -> std.Serialize(Record)
   registered schemas indexed by ID

# Schemas
Contract stores descriptors of all registered attestation schemas. Records are
write-once and are never modified or removed.
*/
