package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/testkeys"
)

// buildChain constructs n sequential, fully-valid blocks on top of
// genesis, each carrying a single RegisterAsset tx from a freshly ground
// signer so every block commits a non-empty, distinct state.
func buildChain(t *testing.T, n int, tickerPrefix string, verifiers crypto.Verifiers) []*types.Block {
	t.Helper()
	blocks := make([]*types.Block, 0, n)
	parentState := types.NewGlobalState()
	parentHash := types.Hash{}

	for i := 0; i < n; i++ {
		priv, addr := testkeys.GenEvenY(t)
		tx := signedTx(t, priv, addr, 0, types.RegisterAsset{Ticker: tickerFor(tickerPrefix, i), Decimals: 6})
		scratch := parentState.Clone()
		proposal := types.Proposal{Height: uint64(i + 1), ParentHash: parentHash, Proposer: addr, Timestamp: uint64(i + 1), Txs: []*types.Transaction{tx}}
		block, err := Build(scratch, proposal, verifiers)
		require.NoError(t, err)
		blocks = append(blocks, block)
		parentState = scratch
		parentHash = state.BlockHash(block.Header)
	}
	return blocks
}

func tickerFor(prefix string, i int) string {
	return prefix + string(rune('A'+i))
}

// TestReorgConsistency covers spec invariant 11: after importing a longer
// fork, every canonical height maps to a hash whose block-meta parent
// equals the prior canonical height's hash.
func TestReorgConsistency(t *testing.T) {
	verifiers := crypto.DefaultVerifiers()
	storage := NewMemStorage()
	ch := NewChain(storage, verifiers)

	chainA := buildChain(t, 2, "A", verifiers)
	for _, b := range chainA {
		_, err := ch.Import(b)
		require.NoError(t, err)
	}
	height, hash, ok, err := storage.LoadTip()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(2), height)
	require.Equal(t, state.BlockHash(chainA[1].Header), hash)

	chainB := buildChain(t, 3, "B", verifiers)
	for _, b := range chainB {
		_, err := ch.Import(b)
		require.NoError(t, err)
	}

	height, hash, ok, err = storage.LoadTip()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(3), height)
	require.Equal(t, state.BlockHash(chainB[2].Header), hash)

	for h := uint64(2); h <= height; h++ {
		canonHash, ok, err := storage.LoadCanonicalBlockAtHeight(h)
		require.NoError(t, err)
		require.True(t, ok)
		meta, ok, err := storage.LoadBlockMeta(canonHash)
		require.NoError(t, err)
		require.True(t, ok)
		parentCanon, ok, err := storage.LoadCanonicalBlockAtHeight(h - 1)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, parentCanon, meta.ParentHash, "canonical parent linkage at height %d", h)
	}
}

func TestBeatsTiebreaksOnHashWhenHeightsTie(t *testing.T) {
	lower := types.Hash{0x01}
	higher := types.Hash{0x02}
	require.True(t, beats(5, higher, 5, lower))
	require.False(t, beats(5, lower, 5, higher))
	require.True(t, beats(6, lower, 5, higher), "greater height always wins regardless of hash")
}
