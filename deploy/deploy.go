// Package deploy provides a procedure bringing the attestation system
// contracts on chain.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// ContractPrm groups deployment parameters of a single smart contract.
type ContractPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the attestation system deployment procedure.
type Prm struct {
	// Writes progress into the log. Defaults to a no-op logger.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	SchemaContract      ContractPrm
	AttestationContract ContractPrm
}

// Contracts groups on-chain addresses of the deployed contracts.
type Contracts struct {
	Schema      util.Uint160
	Attestation util.Uint160
}

// Deploy brings the Schema Registry and the Attestation Registry contracts on
// chain. The Schema Registry goes first since the Attestation Registry is
// bound to its address at deployment time.
//
// Deploy is idempotent: contracts already present on the chain are left
// untouched, so it is safe to re-run the procedure after a partial failure.
// The resulting addresses are stable for a fixed deployer account and contract
// code.
func Deploy(ctx context.Context, prm Prm) (Contracts, error) {
	var res Contracts

	if prm.Blockchain == nil {
		return res, errors.New("missing blockchain client")
	}
	if prm.LocalAccount == nil {
		return res, errors.New("missing local account")
	}
	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	prm.Logger.Info("synchronizing Schema Registry contract with the chain...")

	res.Schema, err = syncContract(ctx, prm, act, prm.SchemaContract, nil)
	if err != nil {
		return res, fmt.Errorf("sync Schema Registry contract with the chain: %w", err)
	}

	prm.Logger.Info("Schema Registry contract successfully synchronized",
		zap.Stringer("address", res.Schema))

	prm.Logger.Info("synchronizing Attestation Registry contract with the chain...")

	res.Attestation, err = syncContract(ctx, prm, act, prm.AttestationContract, []any{res.Schema})
	if err != nil {
		return res, fmt.Errorf("sync Attestation Registry contract with the chain: %w", err)
	}

	prm.Logger.Info("Attestation Registry contract successfully synchronized",
		zap.Stringer("address", res.Attestation))

	return res, nil
}

// syncContract deploys the contract unless it is already on the chain. The
// address is a function of the deployer account and the contract code, so
// presence is checked by the pre-calculated address.
func syncContract(ctx context.Context, prm Prm, act *actor.Actor, contract ContractPrm, deployArgs []any) (util.Uint160, error) {
	addr := state.CreateContractHash(act.Sender(), contract.NEF.Checksum, contract.Manifest.Name)

	onChainState, err := prm.Blockchain.GetContractStateByHash(addr)
	if err == nil && onChainState != nil {
		prm.Logger.Info("contract is already on the chain",
			zap.String("name", contract.Manifest.Name), zap.Stringer("address", addr))
		return addr, nil
	}
	if err != nil && !strings.Contains(err.Error(), "Unknown contract") {
		return addr, fmt.Errorf("read on-chain state of the contract by address %s: %w", addr, err)
	}

	if ctx.Err() != nil {
		return addr, ctx.Err()
	}

	prm.Logger.Info("contract is missing on the chain, deploying...",
		zap.String("name", contract.Manifest.Name), zap.Stringer("address", addr))

	txHash, vub, err := management.New(act).Deploy(&contract.NEF, &contract.Manifest, deployArgs)
	if err != nil {
		return addr, fmt.Errorf("send transaction deploying the contract: %w", err)
	}

	prm.Logger.Info("transaction deploying the contract has been successfully sent, waiting...",
		zap.String("name", contract.Manifest.Name), zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	_, err = act.Wait(txHash, vub, nil)
	if err != nil {
		return addr, fmt.Errorf("wait for deploy transaction %s to be accepted: %w", txHash, err)
	}

	return addr, nil
}
