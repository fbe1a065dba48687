// Deploy command brings the attestation system contracts on chain. Compiled
// contracts (NEF and manifest files produced by neo-go) are read from the
// directory given via -contracts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/attestation-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the deployer NEP-6 wallet")
	walletPassword := flag.String("password", "", "Password of the deployer wallet account")
	contractsDir := flag.String("contracts", "", "Directory with compiled 'schema' and 'attestation' contracts")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	case *contractsDir == "":
		log.Fatal("missing contracts directory")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer logger.Sync()

	err = run(*neoRPCEndpoint, *walletPath, *walletPassword, *contractsDir, logger)
	if err != nil {
		logger.Fatal("deployment failed", zap.Error(err))
	}
}

func run(endpoint, walletPath, walletPassword, contractsDir string, logger *zap.Logger) error {
	ctx := context.Background()

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open deployer wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return fmt.Errorf("deployer wallet has no usable account")
	}

	err = acc.Decrypt(walletPassword, w.Scrypt)
	if err != nil {
		return fmt.Errorf("unlock deployer account: %w", err)
	}

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init Neo RPC client: %w", err)
	}
	defer c.Close()

	err = c.Init()
	if err != nil {
		return fmt.Errorf("initial RPC connection: %w", err)
	}

	schemaPrm, err := readContract(filepath.Join(contractsDir, "schema"))
	if err != nil {
		return fmt.Errorf("read compiled Schema Registry contract: %w", err)
	}

	attestationPrm, err := readContract(filepath.Join(contractsDir, "attestation"))
	if err != nil {
		return fmt.Errorf("read compiled Attestation Registry contract: %w", err)
	}

	contracts, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:              logger,
		Blockchain:          c,
		LocalAccount:        acc,
		SchemaContract:      schemaPrm,
		AttestationContract: attestationPrm,
	})
	if err != nil {
		return err
	}

	logger.Info("attestation system contracts are on the chain",
		zap.Stringer("schema", contracts.Schema),
		zap.Stringer("attestation", contracts.Attestation))

	return nil
}

// readContract reads NEF and manifest files produced by the neo-go compiler
// from the given directory.
func readContract(dir string) (deploy.ContractPrm, error) {
	var prm deploy.ContractPrm

	nefData, err := os.ReadFile(filepath.Join(dir, "contract.nef"))
	if err != nil {
		return prm, fmt.Errorf("read NEF file: %w", err)
	}

	prm.NEF, err = nef.FileFromBytes(nefData)
	if err != nil {
		return prm, fmt.Errorf("parse NEF file: %w", err)
	}

	manifestData, err := os.ReadFile(filepath.Join(dir, "contract.manifest.json"))
	if err != nil {
		return prm, fmt.Errorf("read manifest file: %w", err)
	}

	err = json.Unmarshal(manifestData, &prm.Manifest)
	if err != nil {
		return prm, fmt.Errorf("parse manifest file: %w", err)
	}

	return prm, nil
}
