package resolver

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Attestation mirrors the Attestation structure of the Attestation contract.
type Attestation struct {
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

const (
	rejectKey   = "reject"
	receivedKey = "received"
	batchesKey  = "batches"
	revokedKey  = "revocations"
	minValueKey = "minValue"
)

// Resolve accepts or rejects an attestation or revocation batch. It rejects
// when the reject switch is on or when any declared value is below the
// configured minimum. Batch statistics are persisted for test assertions.
func Resolve(attestations []Attestation, values []int, isRevocation bool) bool {
	if len(attestations) != len(values) {
		panic("attestations and values length mismatch")
	}

	ctx := storage.GetContext()
	if storage.Get(ctx, rejectKey) != nil {
		return false
	}

	minValue := getInt(ctx, minValueKey)
	for i := 0; i < len(values); i++ {
		if values[i] < minValue {
			return false
		}
	}

	storage.Put(ctx, batchesKey, getInt(ctx, batchesKey)+1)
	if isRevocation {
		storage.Put(ctx, revokedKey, getInt(ctx, revokedKey)+len(attestations))
	}

	return true
}

// SetReject switches the resolver into batch rejection mode and back.
func SetReject(reject bool) {
	ctx := storage.GetContext()
	if reject {
		storage.Put(ctx, rejectKey, []byte{1})
	} else {
		storage.Delete(ctx, rejectKey)
	}
}

// SetMinValue sets the minimum per-request value the resolver charges.
func SetMinValue(v int) {
	storage.Put(storage.GetContext(), minValueKey, v)
}

// OnNEP17Payment accepts resolver fees in GAS.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic("only GAS is accepted")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, receivedKey, getInt(ctx, receivedKey)+amount)
}

// ReceivedValue returns the total amount of GAS the resolver has charged.
func ReceivedValue() int {
	return getInt(storage.GetReadOnlyContext(), receivedKey)
}

// Batches returns the number of batches the resolver has accepted.
func Batches() int {
	return getInt(storage.GetReadOnlyContext(), batchesKey)
}

// Revocations returns the number of revocations the resolver has seen.
func Revocations() int {
	return getInt(storage.GetReadOnlyContext(), revokedKey)
}

func getInt(ctx storage.Context, key string) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}
	return 0
}
