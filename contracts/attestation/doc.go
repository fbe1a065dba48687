/*
Package attestation implements Attestation contract.

Attestation contract keeps the shared ledger of attestations: claim records
binding a recipient, an attester and a registered schema with arbitrary
payload data. Records are content-addressed: the ID is a SHA-256 hash of the
defining fields plus a bump counter probed until a free slot is found, so
same-content attestations created within one block still get distinct IDs and
no record can overwrite another.

Attestations are created and revoked in batches. A batch is processed
atomically by the VM: any failed check faults the transaction and every
mutation made by it, including resolver effects, is discarded. After all
requests of a schema-scoped batch are processed, the batch is forwarded to the
resolver contract configured for the schema (if any) together with declared
GAS values. Callers fund resolver payments by transferring GAS to this
contract in advance; the unspent deposit is returned when the outermost batch
of the call completes.

The contract also provides tamper-evident timestamping of arbitrary data
hashes and write-once offchain revocation marks keyed by the marking identity.

# Contract notifications

Attested notification. This notification is produced when a new attestation
is created.

	Attested:
	  - name: recipient
	    type: Hash160
	  - name: attester
	    type: Hash160
	  - name: id
	    type: Hash256
	  - name: schemaID
	    type: Hash256

Revoked notification. This notification is produced when an attestation is
revoked by its attester.

	Revoked:
	  - name: recipient
	    type: Hash160
	  - name: revoker
	    type: Hash160
	  - name: id
	    type: Hash256
	  - name: schemaID
	    type: Hash256

Timestamped notification. This notification is produced when a data hash gets
an onchain timestamp.

	Timestamped:
	  - name: requester
	    type: Hash160
	  - name: data
	    type: Hash256
	  - name: time
	    type: Integer

RevokedOffchain notification. This notification is produced when a data hash
is marked as revoked by some identity.

	RevokedOffchain:
	  - name: revoker
	    type: Hash160
	  - name: data
	    type: Hash256
	  - name: time
	    type: Integer

Deposit notification. This notification is produced when GAS is attached to
an account deposit through OnNEP17Payment.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: receiver
	    type: Hash160
*/
package attestation

/*
Contract storage model.

# Summary
Key-value storage format:
 - 's' -> interop.Hash160
   Schema Registry contract reference
 - 'a' + [32]byte -> std.Serialize(Attestation)
   attestation records indexed by ID
 - 't' + [32]byte -> int
   onchain timestamps indexed by data hash
 - 'o' + [20]byte + [32]byte -> int
   offchain revocation marks indexed by revoker and data hash
 - 'd' + [20]byte -> int
   GAS deposits available for resolver payments

# Attestations
Attestation records are mutable in exactly one field: RevocationTime
transitions once from zero to the block time of the revoking transaction.
Timestamps, offchain revocation marks and schema references are write-once.
*/
