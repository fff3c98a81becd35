package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/executor"
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/testkeys"
)

func TestBuildDropsFailingTxButCommitsTheBlock(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	parent := types.NewGlobalState()
	verifiers := crypto.DefaultVerifiers()

	good := signedTx(t, priv, addr, 0, types.RegisterAsset{Ticker: "LUSD", Decimals: 6})
	// Wrong nonce: this tx fails pipeline validation and must be dropped,
	// not abort the whole block (spec §7 "Inside block build: failing
	// txs are dropped").
	bad := signedTx(t, priv, addr, 5, types.MintJunior{Amount: 1})

	proposal := types.Proposal{Height: 1, Proposer: addr, Timestamp: 1, Txs: []*types.Transaction{good, bad}}
	block, err := Build(parent, proposal, verifiers)
	require.NoError(t, err)
	require.Len(t, block.Body.Transactions, 1)
	require.Equal(t, good, block.Body.Transactions[0])
}

func TestBuildFailsEmptyBlock(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	parent := types.NewGlobalState()
	verifiers := crypto.DefaultVerifiers()

	bad := signedTx(t, priv, addr, 9, types.MintJunior{Amount: 1})
	proposal := types.Proposal{Height: 1, Proposer: addr, Timestamp: 1, Txs: []*types.Transaction{bad}}

	_, err := Build(parent, proposal, verifiers)
	require.Error(t, err)
	var execErr *executor.Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, executor.KindEmptyBlock, execErr.Kind)
}
