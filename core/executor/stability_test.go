package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

func TestRebalanceTranchesRedirectsExcessToPool(t *testing.T) {
	ctx := freshContext()
	ctx.State.TotalLUSDSupply = 6000
	ctx.State.TotalLJUNSupply = 5000 // 5000/11000 > 40% ceiling
	sender := types.Address{0x01}

	require.NoError(t, execRebalanceTranches(types.RebalanceTranches{}, sender, ctx))

	require.Less(t, ctx.State.TotalLJUNSupply, uint64(5000))
	require.Greater(t, ctx.State.StabilizationPool, uint64(0))
	require.Equal(t, ctx.Height, ctx.State.LastRebalanceHeight)
}

func TestRebalanceTranchesNoOpBelowCeiling(t *testing.T) {
	ctx := freshContext()
	ctx.State.TotalLUSDSupply = 9000
	ctx.State.TotalLJUNSupply = 1000 // 1000/10000 = 10%, under 40%
	sender := types.Address{0x01}

	require.NoError(t, execRebalanceTranches(types.RebalanceTranches{}, sender, ctx))

	require.Equal(t, uint64(1000), ctx.State.TotalLJUNSupply)
	require.Equal(t, uint64(0), ctx.State.StabilizationPool)
}

func TestDistributeYieldSplitsAcrossJuniorHoldersPoolAndInsurance(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	holderA := types.Address{0x02}
	holderB := types.Address{0x03}

	ctx.State.Accounts[holderA] = types.NewAccount()
	ctx.State.Accounts[holderA].LJUN = 300
	ctx.State.Accounts[holderB] = types.NewAccount()
	ctx.State.Accounts[holderB].LJUN = 700
	ctx.State.TotalLJUNSupply = 1000

	require.NoError(t, execDistributeYield(types.DistributeYield{Yield: 1000}, sender, ctx))

	// 80% to junior holders pro-rata, 15% to pool, 5% to insurance.
	require.Equal(t, uint64(300+240), ctx.State.Accounts[holderA].LJUN)
	require.Equal(t, uint64(700+560), ctx.State.Accounts[holderB].LJUN)
	require.Equal(t, uint64(150), ctx.State.StabilizationPool)
	require.Equal(t, uint64(50), ctx.State.InsuranceFund)
}

func TestDistributeYieldWithNoJuniorHoldersRoutesToPoolAndInsurance(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}

	require.NoError(t, execDistributeYield(types.DistributeYield{Yield: 1000}, sender, ctx))

	require.Equal(t, uint64(950), ctx.State.StabilizationPool)
	require.Equal(t, uint64(50), ctx.State.InsuranceFund)
}

func TestTriggerStabilizerTopsUpPoolFromInsuranceWhenUnderwater(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.TotalLUSDSupply = 1000
	ctx.State.StabilizationPool = 400
	ctx.State.InsuranceFund = 300
	ctx.State.ReserveRatioBps = 5000 // below 100%, stabilizer is live

	require.NoError(t, execTriggerStabilizer(types.TriggerStabilizer{}, sender, ctx))

	require.Equal(t, uint64(700), ctx.State.StabilizationPool)
	require.Equal(t, uint64(0), ctx.State.InsuranceFund)
}

func TestTriggerStabilizerNoOpWhenFullyReserved(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.TotalLUSDSupply = 1000
	ctx.State.StabilizationPool = 1000
	ctx.State.InsuranceFund = 300
	ctx.State.ReserveRatioBps = bpsOne

	require.NoError(t, execTriggerStabilizer(types.TriggerStabilizer{}, sender, ctx))

	require.Equal(t, uint64(300), ctx.State.InsuranceFund)
}
