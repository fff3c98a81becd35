package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

// TestInstantRedeemPaysDestinationWhenHealthy resolves Open Question F2:
// InstantRedeem pays out to v.Destination, not to the sender.
func TestInstantRedeemPaysDestinationWhenHealthy(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	dest := types.Address{0x02}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LUSD = 500
	ctx.State.ReserveRatioBps = bpsOne

	err := execInstantRedeem(types.InstantRedeem{Amount: 200, Destination: dest}, sender, ctx)
	require.NoError(t, err)

	require.Equal(t, uint64(300), ctx.State.Accounts[sender].LUSD)
	require.Equal(t, uint64(200), ctx.State.Accounts[dest].LUSD)
}

// TestInstantRedeemQueuesToDestinationWhenUnderReserved also resolves F2:
// even the queued path must record v.Destination as the payee, not sender.
func TestInstantRedeemQueuesToDestinationWhenUnderReserved(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	dest := types.Address{0x02}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LUSD = 500
	ctx.State.ReserveRatioBps = bpsRedeemQueueFloor - 1

	err := execInstantRedeem(types.InstantRedeem{Amount: 200, Destination: dest}, sender, ctx)
	require.NoError(t, err)

	require.Equal(t, uint64(300), ctx.State.Accounts[sender].LUSD)
	require.Len(t, ctx.State.FairRedeemQueue, 1)
	require.Equal(t, dest, ctx.State.FairRedeemQueue[0].Address)
	require.Equal(t, uint64(200), ctx.State.FairRedeemQueue[0].Amount)
}

func TestClaimInsurancePaysFromFundAndRequiresProof(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.InsuranceFund = 500
	ctx.State.TotalLUSDSupply = 1000

	require.NoError(t, execClaimInsurance(types.ClaimInsurance{Amount: 200, Proof: []byte("loss-proof")}, sender, ctx))

	require.Equal(t, uint64(200), ctx.State.Accounts[sender].LUSD)
	require.Equal(t, uint64(300), ctx.State.InsuranceFund)
	require.Equal(t, uint64(1200), ctx.State.TotalLUSDSupply)
}

func TestClaimInsuranceRejectsEmptyProof(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.InsuranceFund = 500

	err := execClaimInsurance(types.ClaimInsurance{Amount: 200}, sender, ctx)
	require.Error(t, err)
}

func TestClaimInsuranceRejectsAmountExceedingFund(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.InsuranceFund = 100

	err := execClaimInsurance(types.ClaimInsurance{Amount: 200, Proof: []byte("loss-proof")}, sender, ctx)
	require.Error(t, err)
}
