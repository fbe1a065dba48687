package tests

import (
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testRegistry struct {
	e          *neotest.Executor
	schema     *neotest.ContractInvoker
	att        *neotest.ContractInvoker
	schemaHash util.Uint160
	attHash    util.Uint160
}

func newTestRegistry(t *testing.T) *testRegistry {
	e := newExecutor(t)
	schemaHash := deploySchemaContract(t, e)
	attHash := deployAttestationContract(t, e, schemaHash)

	return &testRegistry{
		e:          e,
		schema:     e.CommitteeInvoker(schemaHash),
		att:        e.CommitteeInvoker(attHash),
		schemaHash: schemaHash,
		attHash:    attHash,
	}
}

func (r *testRegistry) registerSchema(t *testing.T, acc neotest.Signer, schema string, resolver []byte, revocable bool) []byte {
	id := schemaID(schema, revocable)
	r.schema.WithSigners(acc).Invoke(t, stackitem.NewByteArray(id), "register",
		acc.ScriptHash(), schema, resolver, revocable)
	return id
}

// attReq orders arguments the way the AttestationRequest structure does.
func attReq(recipient util.Uint160, expiration int64, revocable bool, refID, data []byte, value int64) []any {
	return []any{recipient, expiration, revocable, refID, data, value}
}

func (r *testRegistry) attest(t *testing.T, acc neotest.Signer, sid []byte, req []any) []byte {
	var id []byte
	r.att.WithSigners(acc).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		var err error
		id, err = stack[0].TryBytes()
		require.NoError(t, err)
		require.Len(t, id, 32)
	}, "attest", acc.ScriptHash(), sid, req)
	return id
}

type attRecord struct {
	id             []byte
	schemaID       []byte
	refID          []byte
	time           int64
	expirationTime int64
	revocationTime int64
	recipient      []byte
	attester       []byte
	revocable      bool
	data           []byte
}

func attRecordFromItem(t *testing.T, item stackitem.Item) attRecord {
	arr, ok := item.Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 10)

	var (
		rec attRecord
		err error
	)

	rec.id, err = arr[0].TryBytes()
	require.NoError(t, err)
	rec.schemaID, err = arr[1].TryBytes()
	require.NoError(t, err)
	rec.refID, err = arr[2].TryBytes()
	require.NoError(t, err)

	ts, err := arr[3].TryInteger()
	require.NoError(t, err)
	rec.time = ts.Int64()
	exp, err := arr[4].TryInteger()
	require.NoError(t, err)
	rec.expirationTime = exp.Int64()
	rev, err := arr[5].TryInteger()
	require.NoError(t, err)
	rec.revocationTime = rev.Int64()

	rec.recipient, err = arr[6].TryBytes()
	require.NoError(t, err)
	rec.attester, err = arr[7].TryBytes()
	require.NoError(t, err)

	rec.revocable, err = arr[8].TryBool()
	require.NoError(t, err)
	rec.data, err = arr[9].TryBytes()
	require.NoError(t, err)

	return rec
}

func (r *testRegistry) getAttestation(t *testing.T, id []byte) attRecord {
	s, err := r.att.TestInvoke(t, "getAttestation", id)
	require.NoError(t, err)
	return attRecordFromItem(t, s.Pop().Item())
}

func (r *testRegistry) countAttestations(t *testing.T) int {
	s, err := r.att.TestInvoke(t, "iterateAttestations")
	require.NoError(t, err)

	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	return len(iteratorToArray(iter))
}

func (r *testRegistry) makeDeposit(t *testing.T, acc neotest.Signer, amount int64) {
	gasInvoker(t, r.e, acc).Invoke(t, true, "transfer",
		acc.ScriptHash(), r.attHash, amount, []byte{})
}

func (r *testRegistry) depositItem(t *testing.T, acc util.Uint160) []byte {
	ctr := r.e.Chain.GetContractState(r.attHash)
	require.NotNil(t, ctr)
	return r.e.Chain.GetStorageItem(ctr.ID, append([]byte{'d'}, acc.BytesBE()...))
}

func futureTime() int64 {
	return time.Now().Add(time.Hour).UnixNano() / int64(time.Millisecond)
}

func TestAttestationLifecycle(t *testing.T) {
	r := newTestRegistry(t)

	attester := r.att.NewAccount(t)
	recipient := util.Uint160{1, 2, 3, 4, 5}

	sid := r.registerSchema(t, attester, "name:string", []byte{}, true)

	id := r.attest(t, attester, sid, attReq(recipient, 0, true, []byte{}, []byte("hello"), 0))

	rec := r.getAttestation(t, id)
	require.Equal(t, id, rec.id)
	require.Equal(t, sid, rec.schemaID)
	require.Empty(t, rec.refID)
	require.NotZero(t, rec.time)
	require.Zero(t, rec.expirationTime)
	require.Zero(t, rec.revocationTime)
	require.Equal(t, recipient.BytesBE(), rec.recipient)
	require.Equal(t, attester.ScriptHash().BytesBE(), rec.attester)
	require.True(t, rec.revocable)
	require.Equal(t, []byte("hello"), rec.data)

	r.att.Invoke(t, true, "isAttestationValid", id)
	r.att.Invoke(t, false, "isAttestationValid", make([]byte, 32))

	cAtt := r.att.WithSigners(attester)
	cAtt.Invoke(t, stackitem.Null{}, "revoke", attester.ScriptHash(), sid, []any{id, 0})

	rec = r.getAttestation(t, id)
	require.NotZero(t, rec.revocationTime)

	cAtt.InvokeFail(t, "attestation is already revoked", "revoke",
		attester.ScriptHash(), sid, []any{id, 0})
}

func TestAttestValidation(t *testing.T) {
	r := newTestRegistry(t)

	attester := r.att.NewAccount(t)
	recipient := util.Uint160{1, 2, 3}
	cAtt := r.att.WithSigners(attester)

	t.Run("unknown schema", func(t *testing.T) {
		cAtt.InvokeFail(t, "schema is not registered", "attest",
			attester.ScriptHash(), make([]byte, 32),
			attReq(recipient, 0, false, []byte{}, []byte("x"), 0))
	})

	sid := r.registerSchema(t, attester, "name:string", []byte{}, true)

	t.Run("expiration not in the future", func(t *testing.T) {
		cAtt.InvokeFail(t, "expiration time is not in the future", "attest",
			attester.ScriptHash(), sid,
			attReq(recipient, 1, false, []byte{}, []byte("x"), 0))
	})

	t.Run("future expiration", func(t *testing.T) {
		id := r.attest(t, attester, sid,
			attReq(recipient, futureTime(), false, []byte{}, []byte("x"), 0))

		rec := r.getAttestation(t, id)
		require.Greater(t, rec.expirationTime, rec.time)
	})

	t.Run("revocable against non-revocable schema", func(t *testing.T) {
		frozen := r.registerSchema(t, attester, "cert:bytes", []byte{}, false)

		cAtt.InvokeFail(t, "attestation is irrevocable", "attest",
			attester.ScriptHash(), frozen,
			attReq(recipient, 0, true, []byte{}, []byte("x"), 0))
	})

	t.Run("missing reference", func(t *testing.T) {
		cAtt.InvokeFail(t, "attestation does not exist", "attest",
			attester.ScriptHash(), sid,
			attReq(recipient, 0, false, make([]byte, 32), []byte("x"), 0))
	})

	t.Run("live and revoked references", func(t *testing.T) {
		target := r.attest(t, attester, sid,
			attReq(recipient, 0, true, []byte{}, []byte("target"), 0))

		ref := r.attest(t, attester, sid,
			attReq(recipient, 0, true, target, []byte("ref"), 0))
		require.Equal(t, target, r.getAttestation(t, ref).refID)

		// Revoking the target does not invalidate it as a reference.
		cAtt.Invoke(t, stackitem.Null{}, "revoke", attester.ScriptHash(), sid, []any{target, 0})
		r.attest(t, attester, sid,
			attReq(recipient, 0, true, target, []byte("ref2"), 0))
	})
}

func TestGetAttestationAbsent(t *testing.T) {
	r := newTestRegistry(t)

	rec := r.getAttestation(t, make([]byte, 32))
	require.Empty(t, rec.id)
	require.Empty(t, rec.schemaID)
	require.Empty(t, rec.refID)
	require.Empty(t, rec.recipient)
	require.Empty(t, rec.attester)
	require.Zero(t, rec.time)
	require.False(t, rec.revocable)
}

func TestAttestUniqueIDs(t *testing.T) {
	r := newTestRegistry(t)

	attester := r.att.NewAccount(t)
	sid := r.registerSchema(t, attester, "name:string", []byte{}, true)

	req := attReq(util.Uint160{7}, 0, true, []byte{}, []byte("same"), 0)

	// Three identical requests in one transaction share the block time, so
	// distinct IDs prove the collision bump engages.
	var ids [][]byte
	r.att.WithSigners(attester).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		arr, ok := stack[0].Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, arr, 3)

		for _, item := range arr {
			id, err := item.TryBytes()
			require.NoError(t, err)
			ids = append(ids, id)
		}
	}, "multiAttest", attester.ScriptHash(), []any{
		[]any{sid, []any{req, req, req}},
	})

	seen := make(map[string]bool)
	for _, id := range ids {
		require.False(t, seen[string(id)])
		seen[string(id)] = true
	}
	require.Equal(t, 3, r.countAttestations(t))
}

func TestRevokeChecks(t *testing.T) {
	r := newTestRegistry(t)

	attester := r.att.NewAccount(t)
	cAtt := r.att.WithSigners(attester)

	sid := r.registerSchema(t, attester, "name:string", []byte{}, true)
	id := r.attest(t, attester, sid, attReq(util.Uint160{1}, 0, true, []byte{}, []byte("x"), 0))

	t.Run("unknown attestation", func(t *testing.T) {
		cAtt.InvokeFail(t, "attestation does not exist", "revoke",
			attester.ScriptHash(), sid, []any{make([]byte, 32), 0})
	})

	t.Run("schema mismatch", func(t *testing.T) {
		other := r.registerSchema(t, attester, "age:int", []byte{}, true)
		cAtt.InvokeFail(t, "schema is not registered", "revoke",
			attester.ScriptHash(), other, []any{id, 0})
	})

	t.Run("foreign attestation", func(t *testing.T) {
		stranger := r.att.NewAccount(t)
		r.att.WithSigners(stranger).InvokeFail(t, "only original attester can revoke", "revoke",
			stranger.ScriptHash(), sid, []any{id, 0})

		require.Zero(t, r.getAttestation(t, id).revocationTime)
	})

	t.Run("non-revocable attestation", func(t *testing.T) {
		frozen := r.registerSchema(t, attester, "cert:bytes", []byte{}, false)
		frozenID := r.attest(t, attester, frozen,
			attReq(util.Uint160{2}, 0, false, []byte{}, []byte("x"), 0))

		cAtt.InvokeFail(t, "attestation is irrevocable", "revoke",
			attester.ScriptHash(), frozen, []any{frozenID, 0})
	})
}

func TestTimestamp(t *testing.T) {
	r := newTestRegistry(t)

	acc := r.att.NewAccount(t)
	cAtt := r.att.WithSigners(acc)

	data := make([]byte, 32)
	data[0] = 42

	r.att.Invoke(t, 0, "getTimestamp", data)

	var stamped int64
	cAtt.InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		v, err := stack[0].TryInteger()
		require.NoError(t, err)
		stamped = v.Int64()
		require.NotZero(t, stamped)
	}, "timestamp", acc.ScriptHash(), data)

	r.att.Invoke(t, stamped, "getTimestamp", data)

	cAtt.InvokeFail(t, "data is already timestamped", "timestamp", acc.ScriptHash(), data)

	t.Run("multiple hashes at once", func(t *testing.T) {
		d1 := make([]byte, 32)
		d1[0] = 1
		d2 := make([]byte, 32)
		d2[0] = 2

		cAtt.InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
			v, err := stack[0].TryInteger()
			require.NoError(t, err)
			require.NotZero(t, v.Int64())
		}, "multiTimestamp", acc.ScriptHash(), []any{d1, d2})

		cAtt.InvokeFail(t, "data is already timestamped", "timestamp", acc.ScriptHash(), d1)
	})
}

func TestRevokeOffchain(t *testing.T) {
	r := newTestRegistry(t)

	acc := r.att.NewAccount(t)
	other := r.att.NewAccount(t)

	data := make([]byte, 32)
	data[0] = 42

	r.att.Invoke(t, 0, "getRevokeOffchain", acc.ScriptHash(), data)

	var marked int64
	r.att.WithSigners(acc).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		v, err := stack[0].TryInteger()
		require.NoError(t, err)
		marked = v.Int64()
		require.NotZero(t, marked)
	}, "revokeOffchain", acc.ScriptHash(), data)

	r.att.Invoke(t, marked, "getRevokeOffchain", acc.ScriptHash(), data)

	r.att.WithSigners(acc).InvokeFail(t, "data is already revoked", "revokeOffchain",
		acc.ScriptHash(), data)

	// The same data hash under a different revoker is an independent mark.
	r.att.Invoke(t, 0, "getRevokeOffchain", other.ScriptHash(), data)
	r.att.WithSigners(other).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		v, err := stack[0].TryInteger()
		require.NoError(t, err)
		require.NotZero(t, v.Int64())
	}, "revokeOffchain", other.ScriptHash(), data)
}

func TestResolver(t *testing.T) {
	r := newTestRegistry(t)
	resolverHash := deployResolverContract(t, r.e)
	cResolver := r.e.CommitteeInvoker(resolverHash)

	attester := r.att.NewAccount(t)
	cAtt := r.att.WithSigners(attester)
	recipient := util.Uint160{9}

	sid := r.registerSchema(t, attester, "name:string", resolverHash.BytesBE(), true)

	t.Run("no deposit", func(t *testing.T) {
		cAtt.InvokeFail(t, "insufficient deposit", "attest",
			attester.ScriptHash(), sid,
			attReq(recipient, 0, true, []byte{}, []byte("x"), 30))
	})

	r.makeDeposit(t, attester, 50)

	t.Run("value routed to resolver, leftover refunded", func(t *testing.T) {
		r.attest(t, attester, sid, attReq(recipient, 0, true, []byte{}, []byte("x"), 30))

		require.EqualValues(t, 30, gasBalance(t, r.e, resolverHash))
		// The call was the outermost batch, so the 20 GAS leftover went back.
		require.EqualValues(t, 0, gasBalance(t, r.e, r.attHash))
		cResolver.Invoke(t, 1, "batches")
	})

	t.Run("rejected batch leaves no trace", func(t *testing.T) {
		before := r.countAttestations(t)
		cResolver.Invoke(t, stackitem.Null{}, "setReject", true)

		r.makeDeposit(t, attester, 10)
		cAtt.InvokeFail(t, "resolver rejected the batch", "attest",
			attester.ScriptHash(), sid,
			attReq(recipient, 0, true, []byte{}, []byte("x"), 10))

		require.Equal(t, before, r.countAttestations(t))
		// The faulted transaction also keeps the deposit intact.
		require.EqualValues(t, 10, gasBalance(t, r.e, r.attHash))

		cResolver.Invoke(t, stackitem.Null{}, "setReject", false)
		cAtt.Invoke(t, stackitem.Null{}, "withdraw", attester.ScriptHash())
	})

	t.Run("exact consumption drops the deposit entry", func(t *testing.T) {
		require.Nil(t, r.depositItem(t, attester.ScriptHash()))

		r.makeDeposit(t, attester, 30)
		require.NotNil(t, r.depositItem(t, attester.ScriptHash()))

		r.attest(t, attester, sid, attReq(recipient, 0, true, []byte{}, []byte("x"), 30))

		require.EqualValues(t, 0, gasBalance(t, r.e, r.attHash))
		require.Nil(t, r.depositItem(t, attester.ScriptHash()))
	})

	t.Run("revocation batch", func(t *testing.T) {
		r.makeDeposit(t, attester, 10)
		id := r.attest(t, attester, sid, attReq(recipient, 0, true, []byte{}, []byte("x"), 0))

		r.makeDeposit(t, attester, 5)
		cAtt.Invoke(t, stackitem.Null{}, "revoke", attester.ScriptHash(), sid, []any{id, 5})

		cResolver.Invoke(t, 1, "revocations")
		require.EqualValues(t, 0, gasBalance(t, r.e, r.attHash))
	})
}

func TestMultiAttestRefundOnce(t *testing.T) {
	r := newTestRegistry(t)
	resolverHash := deployResolverContract(t, r.e)

	attester := r.att.NewAccount(t)
	recipient := util.Uint160{9}

	paid := r.registerSchema(t, attester, "name:string", resolverHash.BytesBE(), true)
	free := r.registerSchema(t, attester, "age:int", []byte{}, true)

	r.makeDeposit(t, attester, 100)

	reqPaid := attReq(recipient, 0, true, []byte{}, []byte("paid"), 40)
	reqFree := attReq(recipient, 0, true, []byte{}, []byte("free"), 0)

	r.att.WithSigners(attester).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		arr, ok := stack[0].Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, arr, 3)
	}, "multiAttest", attester.ScriptHash(), []any{
		[]any{paid, []any{reqPaid, reqPaid}},
		[]any{free, []any{reqFree}},
	})

	// Both paid requests reached the resolver, the rest of the deposit was
	// refunded exactly once, after the last group.
	require.EqualValues(t, 80, gasBalance(t, r.e, resolverHash))
	require.EqualValues(t, 0, gasBalance(t, r.e, r.attHash))
}

func TestDepositWithdraw(t *testing.T) {
	r := newTestRegistry(t)

	acc := r.att.NewAccount(t)
	cAtt := r.att.WithSigners(acc)

	cAtt.InvokeFail(t, "nothing to withdraw", "withdraw", acc.ScriptHash())

	r.makeDeposit(t, acc, 25)
	require.EqualValues(t, 25, gasBalance(t, r.e, r.attHash))

	cAtt.Invoke(t, stackitem.Null{}, "withdraw", acc.ScriptHash())
	require.EqualValues(t, 0, gasBalance(t, r.e, r.attHash))

	t.Run("deposit for another account", func(t *testing.T) {
		other := r.att.NewAccount(t)

		gasInvoker(t, r.e, acc).Invoke(t, true, "transfer",
			acc.ScriptHash(), r.attHash, int64(10), other.ScriptHash())

		cAtt.InvokeFail(t, "nothing to withdraw", "withdraw", acc.ScriptHash())
		r.att.WithSigners(other).Invoke(t, stackitem.Null{}, "withdraw", other.ScriptHash())
		require.EqualValues(t, 0, gasBalance(t, r.e, r.attHash))
	})
}
