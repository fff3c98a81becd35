// Command luminacore is a minimal smoke-test binary for the execution
// core: it assembles a genesis state, builds one block from a signed
// instruction, imports it back through the storage + fork-choice path,
// and prints the resulting state root.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/erigontech/erigon-lib/log/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/sha3"

	"github.com/luminachain/core/core/chain"
	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/core/wal"
)

func main() {
	app := &cli.App{
		Name:  "luminacore",
		Usage: "deterministic execution core smoke-test driver",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML chain config overriding spec defaults"},
			&cli.StringFlag{Name: "wal", Value: "./luminacore.wal", Usage: "path to the in-flight block journal"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "luminacore:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	verbose := c.Bool("verbose")

	cfg := chain.DefaultConfig()
	if path := c.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		loaded, err := chain.LoadConfig(data)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	log.Info("loaded chain config", "chain_name", cfg.ChainName)

	walPath := c.String("wal")
	journal := wal.Open(walPath)
	if rec, ok, err := wal.Recover(walPath); err != nil {
		return fmt.Errorf("recover wal: %w", err)
	} else if ok {
		log.Info("recovered in-flight block from wal", "height", rec.Height, "txs", len(rec.TxBytes))
	} else if verbose {
		log.Debug("no in-flight wal record found", "path", walPath)
	}

	storage := chain.NewMemStorage()
	verifiers := crypto.DefaultVerifiers()
	ch := chain.NewChain(storage, verifiers)

	priv, sender, err := genEvenYKey()
	if err != nil {
		return fmt.Errorf("generate demo signing key: %w", err)
	}

	tx := &types.Transaction{
		Sender:      sender,
		Nonce:       0,
		Instruction: types.RegisterAsset{Ticker: "LUSD", Decimals: 6},
		GasLimit:    0,
		GasPrice:    0,
	}
	tx.Signature = sign(priv, state.SigningPreimage(tx))

	genesis := types.NewGlobalState()
	proposal := types.Proposal{
		Height:     1,
		ParentHash: types.Hash{},
		Proposer:   sender,
		Timestamp:  1,
		Txs:        []*types.Transaction{tx},
	}

	if err := journal.Write(wal.Record{Height: proposal.Height, Proposer: sender, Timestamp: proposal.Timestamp}); err != nil {
		return fmt.Errorf("journal begin_block: %w", err)
	}

	block, err := chain.Build(genesis, proposal, verifiers)
	if err != nil {
		return fmt.Errorf("build genesis block: %w", err)
	}

	if _, err := ch.Import(block); err != nil {
		return fmt.Errorf("import genesis block: %w", err)
	}

	if err := journal.Clear(); err != nil {
		return fmt.Errorf("journal commit: %w", err)
	}

	log.Info("smoke test complete", "height", block.Header.Height, "state_root", block.Header.StateRoot.Hex())
	return nil
}

// genEvenYKey mints a fresh secp256k1 keypair whose compressed public key
// has an even-y prefix, grinding over fresh keys until one matches. The
// core's classical verifier (core/crypto.VerifyClassical) always parses
// the 32-byte address as an even-y compressed point, so only such keys
// can ever produce a verifiable signature under this address scheme.
func genEvenYKey() (*secp256k1.PrivateKey, [32]byte, error) {
	for i := 0; i < 256; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, [32]byte{}, err
		}
		compressed := priv.PubKey().SerializeCompressed()
		if compressed[0] == 0x02 {
			var addr [32]byte
			copy(addr[:], compressed[1:])
			return priv, addr, nil
		}
	}
	return nil, [32]byte{}, errors.New("could not grind an even-y demo key")
}

func sign(priv *secp256k1.PrivateKey, msg []byte) []byte {
	digest := sha3.Sum256(msg)
	recoverable := ecdsa.SignCompact(priv, digest[:], false)
	return recoverable[1:] // strip the recovery-id byte, keeping raw R||S
}
