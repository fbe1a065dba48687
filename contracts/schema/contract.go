package schema

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/attestation-contract/common"
	"github.com/nspcc-dev/attestation-contract/contracts/schema/schemaconst"
)

type (
	// Record groups all data of a registered schema. ID is a hash of
	// the (Schema, Revocable) pair, Resolver is an optional contract
	// that validates and charges attestations made against the schema.
	Record struct {
		ID        interop.Hash256
		Schema    string
		Resolver  interop.Hash160
		Revocable bool
	}
)

const (
	recordKeyPrefix = 'x'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("schema registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("schema registry contract updated")
}

// Register adds a new schema record and returns its ID. The ID is a SHA-256
// hash of the schema string and the revocable flag, so re-registering the
// identical pair fails. Resolver is an optional contract address implementing
// the resolve method of the attestation contract's resolver protocol; pass
// an empty value if the schema needs no resolver. The method must be
// witnessed by registerer.
func Register(registerer interop.Hash160, schema string, resolver interop.Hash160, revocable bool) interop.Hash256 {
	common.CheckOwnerWitness(registerer)

	if len(resolver) != 0 && len(resolver) != interop.Hash160Len {
		panic(schemaconst.ErrInvalidResolver)
	}

	ctx := storage.GetContext()
	id := calculateID(schema, revocable)

	key := append([]byte{recordKeyPrefix}, id...)
	if storage.Get(ctx, key) != nil {
		panic(schemaconst.ErrAlreadyExists)
	}

	record := Record{
		ID:        id,
		Schema:    schema,
		Resolver:  resolver,
		Revocable: revocable,
	}
	common.SetSerialized(ctx, key, record)

	// Resolver may be empty, so it is emitted as a plain byte string to
	// keep the notification valid against the manifest.
	runtime.Notify("SchemaRegistered", id, registerer, schema, []byte(resolver), revocable)

	return id
}

// Get returns a schema record by ID. It returns a record with zero ID if
// the schema is not registered.
func Get(id interop.Hash256) Record {
	ctx := storage.GetReadOnlyContext()
	return getRecord(ctx, id)
}

// List iterates over all registered schema records.
func List() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{recordKeyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Count returns the number of registered schemas.
func Count() int {
	count := 0
	ctx := storage.GetReadOnlyContext()
	it := storage.Find(ctx, []byte{recordKeyPrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		count++
	}
	return count
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func calculateID(schema string, revocable bool) interop.Hash256 {
	data := []byte(schema)
	if revocable {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}

	return crypto.Sha256(data)
}

func getRecord(ctx storage.Context, id interop.Hash256) Record {
	key := append([]byte{recordKeyPrefix}, id...)
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Record)
	}

	return Record{ID: interop.Hash256(""), Schema: "", Resolver: interop.Hash160(""), Revocable: false}
}
