package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	schemaPath      = "../contracts/schema"
	attestationPath = "../contracts/attestation"
	resolverPath    = "../internal/testcontracts/resolver"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func deploySchemaContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	ctr := neotest.CompileFile(t, e.CommitteeHash, schemaPath, path.Join(schemaPath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	return ctr.Hash
}

func deployAttestationContract(t *testing.T, e *neotest.Executor, addrSchema util.Uint160) util.Uint160 {
	ctr := neotest.CompileFile(t, e.CommitteeHash, attestationPath, path.Join(attestationPath, "config.yml"))
	e.DeployContract(t, ctr, []any{addrSchema})
	return ctr.Hash
}

func deployResolverContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	ctr := neotest.CompileFile(t, e.CommitteeHash, resolverPath, path.Join(resolverPath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	return ctr.Hash
}

func gasInvoker(t *testing.T, e *neotest.Executor, signer neotest.Signer) *neotest.ContractInvoker {
	return e.NewInvoker(e.NativeHash(t, nativenames.Gas), signer)
}

func gasBalance(t *testing.T, e *neotest.Executor, acc util.Uint160) int64 {
	s, err := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas)).TestInvoke(t, "balanceOf", acc)
	if err != nil {
		t.Fatal(err)
	}
	return s.Pop().BigInt().Int64()
}
