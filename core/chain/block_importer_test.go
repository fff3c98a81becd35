package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/executor"
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/testkeys"
)

func TestImportGenesisBlockSucceeds(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	verifiers := crypto.DefaultVerifiers()
	genesis := types.NewGlobalState()
	tx := signedTx(t, priv, addr, 0, types.RegisterAsset{Ticker: "LUSD", Decimals: 6})
	proposal := types.Proposal{Height: 1, Proposer: addr, Timestamp: 1, Txs: []*types.Transaction{tx}}

	block, err := Build(genesis, proposal, verifiers)
	require.NoError(t, err)

	ch := NewChain(NewMemStorage(), verifiers)
	reorged, err := ch.Import(block)
	require.NoError(t, err)
	require.True(t, reorged, "first-ever block always changes the canonical tip")

	height, hash, ok, err := ch.Storage.LoadTip()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(1), height)
	require.Equal(t, state.BlockHash(block.Header), hash)
}

// TestImportMismatchedStateRoot covers spec scenario S6.
func TestImportMismatchedStateRoot(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	verifiers := crypto.DefaultVerifiers()
	genesis := types.NewGlobalState()
	tx := signedTx(t, priv, addr, 0, types.RegisterAsset{Ticker: "LUSD", Decimals: 6})
	proposal := types.Proposal{Height: 1, Proposer: addr, Timestamp: 1, Txs: []*types.Transaction{tx}}

	block, err := Build(genesis, proposal, verifiers)
	require.NoError(t, err)
	block.Header.StateRoot[0] ^= 0x01 // corrupt one bit

	storage := NewMemStorage()
	ch := NewChain(storage, verifiers)
	_, err = ch.Import(block)
	require.Error(t, err)
	var execErr *executor.Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, executor.KindInvalidStateRoot, execErr.Kind)

	_, _, ok, err := storage.LoadTip()
	require.NoError(t, err)
	require.False(t, ok, "tip must remain unset (still genesis) after a rejected import")
}

// TestImportIsIdempotent covers spec invariant 10: importing the same
// block twice produces no further state changes the second time.
func TestImportIsIdempotent(t *testing.T) {
	priv, addr := testkeys.GenEvenY(t)
	verifiers := crypto.DefaultVerifiers()
	genesis := types.NewGlobalState()
	tx := signedTx(t, priv, addr, 0, types.RegisterAsset{Ticker: "LUSD", Decimals: 6})
	proposal := types.Proposal{Height: 1, Proposer: addr, Timestamp: 1, Txs: []*types.Transaction{tx}}

	block, err := Build(genesis, proposal, verifiers)
	require.NoError(t, err)

	storage := NewMemStorage()
	ch := NewChain(storage, verifiers)
	_, err = ch.Import(block)
	require.NoError(t, err)

	heightBefore, hashBefore, _, _ := storage.LoadTip()
	reorged, err := ch.Import(block)
	require.NoError(t, err)
	require.False(t, reorged)

	heightAfter, hashAfter, _, _ := storage.LoadTip()
	require.Equal(t, heightBefore, heightAfter)
	require.Equal(t, hashBefore, hashAfter)
}

// TestImportRejectsMissingParent exercises the height>1 parent-known
// precondition (spec §4.F step 3).
func TestImportRejectsMissingParent(t *testing.T) {
	verifiers := crypto.DefaultVerifiers()
	block := &types.Block{
		Header: types.Header{Height: 2, PrevHash: types.Hash{0x99}},
	}
	ch := NewChain(NewMemStorage(), verifiers)
	_, err := ch.Import(block)
	require.Error(t, err)
	var execErr *executor.Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, executor.KindMissingParentBlock, execErr.Kind)
}
