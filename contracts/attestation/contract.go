package attestation

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/attestation-contract/common"
	"github.com/nspcc-dev/attestation-contract/contracts/attestation/attestconst"
)

type (
	// Attestation groups all data of a single attestation record. Every
	// field except RevocationTime is immutable after creation.
	Attestation struct {
		ID             interop.Hash256
		SchemaID       interop.Hash256
		RefID          interop.Hash256
		Time           int
		ExpirationTime int
		RevocationTime int
		Recipient      interop.Hash160
		Attester       interop.Hash160
		Revocable      bool
		Data           []byte
	}

	// AttestationRequest is a single attestation order. Value is the
	// amount of GAS (from the attester's deposit) forwarded to the schema
	// resolver together with the resulting attestation.
	AttestationRequest struct {
		Recipient      interop.Hash160
		ExpirationTime int
		Revocable      bool
		RefID          interop.Hash256
		Data           []byte
		Value          int
	}

	// RevocationRequest is a single revocation order.
	RevocationRequest struct {
		ID    interop.Hash256
		Value int
	}

	// SchemaAttestationRequests groups attestation requests made against
	// one schema. MultiAttest processes a list of such groups.
	SchemaAttestationRequests struct {
		SchemaID interop.Hash256
		Requests []AttestationRequest
	}

	// SchemaRevocationRequests groups revocation requests made against
	// one schema.
	SchemaRevocationRequests struct {
		SchemaID interop.Hash256
		Requests []RevocationRequest
	}

	// schemaRecord mirrors the Record structure of the Schema Registry
	// contract.
	schemaRecord struct {
		ID        interop.Hash256
		Schema    string
		Resolver  interop.Hash160
		Revocable bool
	}
)

const (
	schemaContractKey = 's'

	attestationKeyPrefix = 'a'
	timestampKeyPrefix   = 't'
	offchainKeyPrefix    = 'o'
	depositKeyPrefix     = 'd'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	addrSchema := args[0].(interop.Hash160)
	if len(addrSchema) != interop.Hash160Len {
		panic(attestconst.ErrInvalidRegistry)
	}

	storage.Put(ctx, schemaContractKey, addrSchema)

	runtime.Log("attestation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("attestation contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Transferred GAS tops up the deposit the sender (or the account specified in
// data) draws from when paying schema resolvers. Unspent deposit is returned
// when the outermost attest or revoke batch completes.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS is accepted for deposit")
	}

	rcv := data.(interop.Hash160)
	switch len(rcv) {
	case interop.Hash160Len:
	case 0:
		rcv = from
	default:
		common.AbortWithMessage("invalid data argument, expected Hash160")
	}

	ctx := storage.GetContext()
	key := depositKey(rcv)
	storage.Put(ctx, key, getInt(ctx, key)+amount)

	runtime.Notify("Deposit", from, amount, rcv)
}

// Withdraw returns the whole unspent GAS deposit back to the account. It can
// be invoked only by the deposit owner.
func Withdraw(account interop.Hash160) {
	common.CheckOwnerWitness(account)

	ctx := storage.GetContext()
	key := depositKey(account)
	amount := getInt(ctx, key)
	if amount == 0 {
		panic("nothing to withdraw")
	}

	storage.Delete(ctx, key)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), account, amount, nil) {
		panic("failed to transfer funds, aborting")
	}
}

// Attest creates a single attestation against the specified schema and
// returns its ID. The method must be witnessed by attester. Any failed check
// faults the transaction, so no partial state is ever observable.
func Attest(attester interop.Hash160, schemaID interop.Hash256, req AttestationRequest) interop.Hash256 {
	common.CheckOwnerWitness(attester)

	ctx := storage.GetContext()
	ids := attestBatch(ctx, attester, schemaID, []AttestationRequest{req}, true)
	return ids[0]
}

// MultiAttest creates attestations for several schema-scoped request groups
// in one call and returns IDs of all created attestations in request order.
// Each group shares one resolver invocation; the deposit leftover is refunded
// once, after the last group.
func MultiAttest(attester interop.Hash160, batches []SchemaAttestationRequests) []interop.Hash256 {
	common.CheckOwnerWitness(attester)

	ctx := storage.GetContext()
	ids := []interop.Hash256{}
	for i := 0; i < len(batches); i++ {
		batch := batches[i]
		last := i == len(batches)-1
		ids = append(ids, attestBatch(ctx, attester, batch.SchemaID, batch.Requests, last)...)
	}
	return ids
}

// Revoke revokes a single attestation previously created by revoker against
// the specified schema. The method must be witnessed by revoker.
func Revoke(revoker interop.Hash160, schemaID interop.Hash256, req RevocationRequest) {
	common.CheckOwnerWitness(revoker)

	ctx := storage.GetContext()
	revokeBatch(ctx, revoker, schemaID, []RevocationRequest{req}, true)
}

// MultiRevoke revokes attestations for several schema-scoped request groups
// in one call. Refund semantics are the same as in MultiAttest.
func MultiRevoke(revoker interop.Hash160, batches []SchemaRevocationRequests) {
	common.CheckOwnerWitness(revoker)

	ctx := storage.GetContext()
	for i := 0; i < len(batches); i++ {
		batch := batches[i]
		last := i == len(batches)-1
		revokeBatch(ctx, revoker, batch.SchemaID, batch.Requests, last)
	}
}

// GetAttestation returns an attestation by ID. It returns an attestation
// with zero ID if the record does not exist.
func GetAttestation(id interop.Hash256) Attestation {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, attestationKey(id))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Attestation)
	}

	return Attestation{
		ID:        interop.Hash256(""),
		SchemaID:  interop.Hash256(""),
		RefID:     interop.Hash256(""),
		Recipient: interop.Hash160(""),
		Attester:  interop.Hash160(""),
		Data:      []byte{},
	}
}

// IsAttestationValid returns true if an attestation with the given ID exists.
func IsAttestationValid(id interop.Hash256) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, attestationKey(id)) != nil
}

// IterateAttestations iterates over all attestation records.
func IterateAttestations() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{attestationKeyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Timestamp records the current block time for the given data hash and
// returns it. Each data hash can be timestamped at most once.
func Timestamp(requester interop.Hash160, data interop.Hash256) int {
	common.CheckWitness(requester)

	ctx := storage.GetContext()
	now := runtime.GetTime()
	putTimestamp(ctx, requester, data, now)
	return now
}

// MultiTimestamp records the current block time for several data hashes at
// once and returns it.
func MultiTimestamp(requester interop.Hash160, data []interop.Hash256) int {
	common.CheckWitness(requester)

	ctx := storage.GetContext()
	now := runtime.GetTime()
	for i := 0; i < len(data); i++ {
		putTimestamp(ctx, requester, data[i], now)
	}
	return now
}

// GetTimestamp returns the time the given data hash was timestamped with,
// or 0 if it never was.
func GetTimestamp(data interop.Hash256) int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, timestampKey(data))
}

// RevokeOffchain marks the given data hash as revoked by revoker at the
// current block time and returns that time. Each (revoker, data) pair can be
// marked at most once. The method must be witnessed by revoker.
func RevokeOffchain(revoker interop.Hash160, data interop.Hash256) int {
	common.CheckOwnerWitness(revoker)

	ctx := storage.GetContext()
	now := runtime.GetTime()
	putRevokeOffchain(ctx, revoker, data, now)
	return now
}

// MultiRevokeOffchain marks several data hashes as revoked by revoker in one
// call and returns the shared revocation time.
func MultiRevokeOffchain(revoker interop.Hash160, data []interop.Hash256) int {
	common.CheckOwnerWitness(revoker)

	ctx := storage.GetContext()
	now := runtime.GetTime()
	for i := 0; i < len(data); i++ {
		putRevokeOffchain(ctx, revoker, data[i], now)
	}
	return now
}

// GetRevokeOffchain returns the time the given data hash was revoked by
// revoker, or 0 if it was not.
func GetRevokeOffchain(revoker interop.Hash160, data interop.Hash256) int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, offchainKey(revoker, data))
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func attestBatch(ctx storage.Context, attester interop.Hash160, schemaID interop.Hash256, reqs []AttestationRequest, isFinalBatch bool) []interop.Hash256 {
	schema := getSchemaRecord(ctx, schemaID)
	if len(schema.ID) != interop.Hash256Len {
		panic(attestconst.ErrInvalidSchema)
	}

	now := runtime.GetTime()

	ids := []interop.Hash256{}
	attestations := []Attestation{}
	values := []int{}

	for i := 0; i < len(reqs); i++ {
		req := reqs[i]

		if req.ExpirationTime != 0 && req.ExpirationTime <= now {
			panic(attestconst.ErrInvalidExpiration)
		}
		if req.Revocable && !schema.Revocable {
			panic(attestconst.ErrIrrevocable)
		}

		att := Attestation{
			ID:             interop.Hash256(""),
			SchemaID:       schemaID,
			RefID:          req.RefID,
			Time:           now,
			ExpirationTime: req.ExpirationTime,
			RevocationTime: 0,
			Recipient:      req.Recipient,
			Attester:       attester,
			Revocable:      req.Revocable,
			Data:           req.Data,
		}
		id := assignID(ctx, att)
		att.ID = id
		common.SetSerialized(ctx, attestationKey(id), att)

		// The record is persisted before the reference check, so an
		// attestation created earlier in the same batch is a valid target.
		if len(req.RefID) != 0 && storage.Get(ctx, attestationKey(req.RefID)) == nil {
			panic(attestconst.ErrNotFound)
		}

		ids = append(ids, id)
		attestations = append(attestations, att)
		values = append(values, req.Value)

		runtime.Notify("Attested", req.Recipient, attester, id, schemaID)
	}

	callResolver(ctx, attester, schema, attestations, values, false, isFinalBatch)

	return ids
}

func revokeBatch(ctx storage.Context, revoker interop.Hash160, schemaID interop.Hash256, reqs []RevocationRequest, isFinalBatch bool) {
	schema := getSchemaRecord(ctx, schemaID)
	if len(schema.ID) != interop.Hash256Len {
		panic(attestconst.ErrInvalidSchema)
	}

	now := runtime.GetTime()

	attestations := []Attestation{}
	values := []int{}

	for i := 0; i < len(reqs); i++ {
		req := reqs[i]

		key := attestationKey(req.ID)
		data := storage.Get(ctx, key)
		if data == nil {
			panic(attestconst.ErrNotFound)
		}

		att := std.Deserialize(data.([]byte)).(Attestation)
		if !att.SchemaID.Equals(schemaID) {
			panic(attestconst.ErrInvalidSchema)
		}
		if !att.Attester.Equals(revoker) {
			panic(attestconst.ErrAccessDenied)
		}
		if !att.Revocable {
			panic(attestconst.ErrIrrevocable)
		}
		if att.RevocationTime != 0 {
			panic(attestconst.ErrAlreadyRevoked)
		}

		att.RevocationTime = now
		common.SetSerialized(ctx, key, att)

		attestations = append(attestations, att)
		values = append(values, req.Value)

		runtime.Notify("Revoked", att.Recipient, revoker, req.ID, schemaID)
	}

	callResolver(ctx, revoker, schema, attestations, values, true, isFinalBatch)
}

// callResolver forwards a processed batch to the schema resolver, if there is
// one, and settles the caller's GAS deposit. It returns the amount of deposit
// consumed by the batch. The refund of the leftover is performed only when
// isFinalBatch is set, so value threads correctly through nested batches of
// one outer call.
func callResolver(ctx storage.Context, caller interop.Hash160, schema schemaRecord, attestations []Attestation, values []int, isRevocation bool, isFinalBatch bool) int {
	total := 0
	for i := 0; i < len(values); i++ {
		if values[i] < 0 {
			panic("negative value")
		}
		total += values[i]
	}

	key := depositKey(caller)
	available := getInt(ctx, key)
	used := 0

	if len(schema.Resolver) == interop.Hash160Len {
		if total > available {
			panic(attestconst.ErrInsufficientDeposit)
		}

		if total > 0 {
			if !gas.Transfer(runtime.GetExecutingScriptHash(), schema.Resolver, total, nil) {
				panic("failed to transfer funds, aborting")
			}
		}

		ok := contract.Call(schema.Resolver, "resolve", contract.All,
			attestations, values, isRevocation).(bool)
		if !ok {
			panic(attestconst.ErrResolverRejected)
		}

		used = total
		available -= used
		if available > 0 {
			storage.Put(ctx, key, available)
		} else {
			storage.Delete(ctx, key)
		}
	}

	if isFinalBatch && available > 0 {
		storage.Delete(ctx, key)
		if !gas.Transfer(runtime.GetExecutingScriptHash(), caller, available, nil) {
			panic("failed to transfer funds, aborting")
		}
	}

	return used
}

// assignID derives a content-addressed attestation ID. Block time is shared
// by every transaction in a block, so same-content attestations can collide;
// the bump counter is probed until a free slot is found.
func assignID(ctx storage.Context, att Attestation) interop.Hash256 {
	for bump := 0; ; bump++ {
		id := calculateID(att, bump)
		if storage.Get(ctx, attestationKey(id)) == nil {
			return id
		}
	}
}

func calculateID(att Attestation, bump int) interop.Hash256 {
	data := std.Serialize([]any{
		att.SchemaID,
		att.Recipient,
		att.Attester,
		att.Time,
		att.ExpirationTime,
		att.Revocable,
		att.RefID,
		att.Data,
		bump,
	})

	return crypto.Sha256(data)
}

func getSchemaRecord(ctx storage.Context, id interop.Hash256) schemaRecord {
	registry := storage.Get(ctx, schemaContractKey).(interop.Hash160)
	return contract.Call(registry, "get", contract.ReadOnly, id).(schemaRecord)
}

func putTimestamp(ctx storage.Context, requester interop.Hash160, data interop.Hash256, now int) {
	if len(data) != interop.Hash256Len {
		panic("invalid data hash")
	}

	key := timestampKey(data)
	if storage.Get(ctx, key) != nil {
		panic(attestconst.ErrAlreadyTimestamped)
	}
	storage.Put(ctx, key, now)

	runtime.Notify("Timestamped", requester, data, now)
}

func putRevokeOffchain(ctx storage.Context, revoker interop.Hash160, data interop.Hash256, now int) {
	if len(data) != interop.Hash256Len {
		panic("invalid data hash")
	}

	key := offchainKey(revoker, data)
	if storage.Get(ctx, key) != nil {
		panic(attestconst.ErrAlreadyRevokedOffchain)
	}
	storage.Put(ctx, key, now)

	runtime.Notify("RevokedOffchain", revoker, data, now)
}

func getInt(ctx storage.Context, key []byte) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}
	return 0
}

func attestationKey(id interop.Hash256) []byte {
	return append([]byte{attestationKeyPrefix}, id...)
}

func timestampKey(data interop.Hash256) []byte {
	return append([]byte{timestampKeyPrefix}, data...)
}

func offchainKey(revoker interop.Hash160, data interop.Hash256) []byte {
	key := append([]byte{offchainKeyPrefix}, revoker...)
	return append(key, data...)
}

func depositKey(acc interop.Hash160) []byte {
	return append([]byte{depositKeyPrefix}, acc...)
}
