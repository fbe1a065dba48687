// Package attestation contains RPC wrappers for Attestation Registry contract.
package attestation

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// AttestationAttestation is a contract-specific attestation.Attestation type used by its methods.
type AttestationAttestation struct {
	ID util.Uint256
	SchemaID util.Uint256
	RefID util.Uint256
	Time *big.Int
	ExpirationTime *big.Int
	RevocationTime *big.Int
	Recipient util.Uint160
	Attester util.Uint160
	Revocable bool
	Data []byte
}

// AttestedEvent represents "Attested" event emitted by the contract.
type AttestedEvent struct {
	Recipient util.Uint160
	Attester util.Uint160
	ID util.Uint256
	SchemaID util.Uint256
}

// RevokedEvent represents "Revoked" event emitted by the contract.
type RevokedEvent struct {
	Recipient util.Uint160
	Revoker util.Uint160
	ID util.Uint256
	SchemaID util.Uint256
}

// TimestampedEvent represents "Timestamped" event emitted by the contract.
type TimestampedEvent struct {
	Requester util.Uint160
	Data util.Uint256
	Time *big.Int
}

// RevokedOffchainEvent represents "RevokedOffchain" event emitted by the contract.
type RevokedOffchainEvent struct {
	Revoker util.Uint160
	Data util.Uint256
	Time *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From util.Uint160
	Amount *big.Int
	Receiver util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetAttestation invokes `getAttestation` method of contract.
func (c *ContractReader) GetAttestation(id util.Uint256) (*AttestationAttestation, error) {
	return itemToAttestationAttestation(unwrap.Item(c.invoker.Call(c.hash, "getAttestation", id)))
}

// GetRevokeOffchain invokes `getRevokeOffchain` method of contract.
func (c *ContractReader) GetRevokeOffchain(revoker util.Uint160, data util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getRevokeOffchain", revoker, data))
}

// GetTimestamp invokes `getTimestamp` method of contract.
func (c *ContractReader) GetTimestamp(data util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTimestamp", data))
}

// IsAttestationValid invokes `isAttestationValid` method of contract.
func (c *ContractReader) IsAttestationValid(id util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAttestationValid", id))
}

// IterateAttestations invokes `iterateAttestations` method of contract.
func (c *ContractReader) IterateAttestations() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateAttestations"))
}

// IterateAttestationsExpanded is similar to IterateAttestations (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateAttestationsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateAttestations", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Attest creates a transaction invoking `attest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Attest(attester util.Uint160, schemaID util.Uint256, req []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "attest", attester, schemaID, req)
}

// AttestTransaction creates a transaction invoking `attest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AttestTransaction(attester util.Uint160, schemaID util.Uint256, req []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "attest", attester, schemaID, req)
}

// AttestUnsigned creates a transaction invoking `attest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AttestUnsigned(attester util.Uint160, schemaID util.Uint256, req []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "attest", nil, attester, schemaID, req)
}

// MultiAttest creates a transaction invoking `multiAttest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MultiAttest(attester util.Uint160, batches []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "multiAttest", attester, batches)
}

// MultiAttestTransaction creates a transaction invoking `multiAttest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MultiAttestTransaction(attester util.Uint160, batches []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "multiAttest", attester, batches)
}

// MultiAttestUnsigned creates a transaction invoking `multiAttest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MultiAttestUnsigned(attester util.Uint160, batches []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "multiAttest", nil, attester, batches)
}

// MultiRevoke creates a transaction invoking `multiRevoke` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MultiRevoke(revoker util.Uint160, batches []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "multiRevoke", revoker, batches)
}

// MultiRevokeTransaction creates a transaction invoking `multiRevoke` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MultiRevokeTransaction(revoker util.Uint160, batches []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "multiRevoke", revoker, batches)
}

// MultiRevokeUnsigned creates a transaction invoking `multiRevoke` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MultiRevokeUnsigned(revoker util.Uint160, batches []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "multiRevoke", nil, revoker, batches)
}

// MultiRevokeOffchain creates a transaction invoking `multiRevokeOffchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MultiRevokeOffchain(revoker util.Uint160, data []util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "multiRevokeOffchain", revoker, data)
}

// MultiRevokeOffchainTransaction creates a transaction invoking `multiRevokeOffchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MultiRevokeOffchainTransaction(revoker util.Uint160, data []util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "multiRevokeOffchain", revoker, data)
}

// MultiRevokeOffchainUnsigned creates a transaction invoking `multiRevokeOffchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MultiRevokeOffchainUnsigned(revoker util.Uint160, data []util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "multiRevokeOffchain", nil, revoker, data)
}

// MultiTimestamp creates a transaction invoking `multiTimestamp` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MultiTimestamp(requester util.Uint160, data []util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "multiTimestamp", requester, data)
}

// MultiTimestampTransaction creates a transaction invoking `multiTimestamp` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MultiTimestampTransaction(requester util.Uint160, data []util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "multiTimestamp", requester, data)
}

// MultiTimestampUnsigned creates a transaction invoking `multiTimestamp` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MultiTimestampUnsigned(requester util.Uint160, data []util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "multiTimestamp", nil, requester, data)
}

// Revoke creates a transaction invoking `revoke` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Revoke(revoker util.Uint160, schemaID util.Uint256, req []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revoke", revoker, schemaID, req)
}

// RevokeTransaction creates a transaction invoking `revoke` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeTransaction(revoker util.Uint160, schemaID util.Uint256, req []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revoke", revoker, schemaID, req)
}

// RevokeUnsigned creates a transaction invoking `revoke` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeUnsigned(revoker util.Uint160, schemaID util.Uint256, req []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revoke", nil, revoker, schemaID, req)
}

// RevokeOffchain creates a transaction invoking `revokeOffchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeOffchain(revoker util.Uint160, data util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeOffchain", revoker, data)
}

// RevokeOffchainTransaction creates a transaction invoking `revokeOffchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeOffchainTransaction(revoker util.Uint160, data util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeOffchain", revoker, data)
}

// RevokeOffchainUnsigned creates a transaction invoking `revokeOffchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeOffchainUnsigned(revoker util.Uint160, data util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeOffchain", nil, revoker, data)
}

// Timestamp creates a transaction invoking `timestamp` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Timestamp(requester util.Uint160, data util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "timestamp", requester, data)
}

// TimestampTransaction creates a transaction invoking `timestamp` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TimestampTransaction(requester util.Uint160, data util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "timestamp", requester, data)
}

// TimestampUnsigned creates a transaction invoking `timestamp` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TimestampUnsigned(requester util.Uint160, data util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "timestamp", nil, requester, data)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", account)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", account)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, account)
}

// itemToAttestationAttestation converts stack item into *AttestationAttestation.
func itemToAttestationAttestation(item stackitem.Item, err error) (*AttestationAttestation, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AttestationAttestation)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AttestationAttestation from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AttestationAttestation) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.SchemaID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SchemaID: %w", err)
	}

	index++
	res.RefID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		if len(b) == 0 {
			return util.Uint256{}, nil
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field RefID: %w", err)
	}

	index++
	res.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	index++
	res.ExpirationTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ExpirationTime: %w", err)
	}

	index++
	res.RevocationTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevocationTime: %w", err)
	}

	index++
	res.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	res.Attester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Attester: %w", err)
	}

	index++
	res.Revocable, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Revocable: %w", err)
	}

	index++
	res.Data, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Data: %w", err)
	}

	return nil
}

// AttestedEventsFromApplicationLog retrieves a set of all emitted events
// with "Attested" name from the provided [result.ApplicationLog].
func AttestedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AttestedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AttestedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Attested" {
				continue
			}
			event := new(AttestedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AttestedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AttestedEvent or
// returns an error if it's not possible to do to so.
func (e *AttestedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.Attester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Attester: %w", err)
	}

	index++
	e.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.SchemaID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SchemaID: %w", err)
	}

	return nil
}

// RevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "Revoked" name from the provided [result.ApplicationLog].
func RevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Revoked" {
				continue
			}
			event := new(RevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RevokedEvent or
// returns an error if it's not possible to do to so.
func (e *RevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.Revoker, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Revoker: %w", err)
	}

	index++
	e.ID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.SchemaID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SchemaID: %w", err)
	}

	return nil
}

// TimestampedEventsFromApplicationLog retrieves a set of all emitted events
// with "Timestamped" name from the provided [result.ApplicationLog].
func TimestampedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TimestampedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TimestampedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Timestamped" {
				continue
			}
			event := new(TimestampedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TimestampedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TimestampedEvent or
// returns an error if it's not possible to do to so.
func (e *TimestampedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Requester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	index++
	e.Data, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Data: %w", err)
	}

	index++
	e.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// RevokedOffchainEventsFromApplicationLog retrieves a set of all emitted events
// with "RevokedOffchain" name from the provided [result.ApplicationLog].
func RevokedOffchainEventsFromApplicationLog(log *result.ApplicationLog) ([]*RevokedOffchainEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RevokedOffchainEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RevokedOffchain" {
				continue
			}
			event := new(RevokedOffchainEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RevokedOffchainEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RevokedOffchainEvent or
// returns an error if it's not possible to do to so.
func (e *RevokedOffchainEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Revoker, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Revoker: %w", err)
	}

	index++
	e.Data, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Data: %w", err)
	}

	index++
	e.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	return nil
}
