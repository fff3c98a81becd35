package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

func TestConfidentialTransferSetsCommitment(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	commitment := types.Hash{0x07}

	err := execConfidentialTransfer(types.ConfidentialTransfer{Commitment: commitment, Proof: []byte("proof")}, sender, ctx)
	require.NoError(t, err)
	require.Equal(t, commitment, *ctx.State.Accounts[sender].Commitment)
}

func TestConfidentialTransferRejectsEmptyProof(t *testing.T) {
	ctx := freshContext()
	err := execConfidentialTransfer(types.ConfidentialTransfer{Commitment: types.Hash{0x01}}, types.Address{0x01}, ctx)
	require.Error(t, err)
}

func TestProveComplianceDoesNotMutateBalances(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LUSD = 42

	err := execProveCompliance(types.ProveCompliance{TxHash: types.Hash{0x01}, Proof: []byte("proof")}, sender, ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(42), ctx.State.Accounts[sender].LUSD)
}
