package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

func TestTransactionsRootEmpty(t *testing.T) {
	require.Equal(t, ZeroHash, TransactionsRoot(nil))
}

func TestTransactionsRootDeterministic(t *testing.T) {
	ids := []types.Hash{Hash256([]byte("a")), Hash256([]byte("b")), Hash256([]byte("c"))}
	root1 := TransactionsRoot(ids)
	root2 := TransactionsRoot(append([]types.Hash(nil), ids...))
	require.Equal(t, root1, root2, "same ids in the same order must produce the same root")
}

func TestTransactionsRootOddLevelDuplication(t *testing.T) {
	a, b, c := Hash256([]byte("a")), Hash256([]byte("b")), Hash256([]byte("c"))
	got := TransactionsRoot([]types.Hash{a, b, c})
	ab := Hash256(a.Bytes(), b.Bytes())
	cc := Hash256(c.Bytes(), c.Bytes())
	want := Hash256(ab.Bytes(), cc.Bytes())
	require.Equal(t, want, got)
}

func TestTransactionsRootOrderSensitive(t *testing.T) {
	a, b := Hash256([]byte("a")), Hash256([]byte("b"))
	require.NotEqual(t, TransactionsRoot([]types.Hash{a, b}), TransactionsRoot([]types.Hash{b, a}))
}

func TestTxIDExcludesSignatureFromPreimageButIncludesItInID(t *testing.T) {
	tx := &types.Transaction{
		Sender:      types.Address{0x01},
		Nonce:       1,
		Instruction: types.RegisterAsset{Ticker: "LUSD", Decimals: 6},
		Signature:   []byte("sig-a"),
	}
	preimage := SigningPreimage(tx)

	other := *tx
	other.Signature = []byte("sig-b")
	require.Equal(t, preimage, SigningPreimage(&other), "signature must not affect the signing preimage")
	require.NotEqual(t, TxID(tx), TxID(&other), "signature must still be bound into the tx id")
}
