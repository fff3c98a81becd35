package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/types"
)

func freshContext() *Context {
	return &Context{State: types.NewGlobalState(), Height: 1, Timestamp: 1, Verifiers: crypto.DefaultVerifiers()}
}

// TestMintSeniorFeeRouting covers spec scenario S1.
func TestMintSeniorFeeRouting(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0xAA}

	err := execMintSenior(types.MintSenior{Amount: 1000, CollateralAmount: 1200, Proof: []byte("proof")}, sender, ctx)
	require.NoError(t, err)

	require.Equal(t, uint64(950), ctx.State.Accounts[sender].LUSD)
	require.Equal(t, uint64(950), ctx.State.TotalLUSDSupply)
	require.Equal(t, uint64(50), ctx.State.InsuranceFund)
	require.Equal(t, uint64(1200), ctx.State.StabilizationPool)
	// reserve_ratio ~= 1200/950 = 1.263..., stored as basis points.
	require.InDelta(t, 12631, int(ctx.State.ReserveRatioBps), 1)
}

// TestMintSeniorRequiresNonEmptyProof exercises the MintSenior contract
// that execMintWithCreditScore's documented fallback relies on.
func TestMintSeniorRequiresNonEmptyProof(t *testing.T) {
	ctx := freshContext()
	err := execMintSenior(types.MintSenior{Amount: 1, CollateralAmount: 1}, types.Address{0x01}, ctx)
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, KindInvalidArgument, execErr.Kind)
}

// TestCircuitBreakerLatch covers spec scenario S2: a mint that drives the
// reserve ratio under 0.85 latches circuit_breaker_active, and every
// subsequent MintSenior then fails with CircuitBreakerTripped.
func TestCircuitBreakerLatch(t *testing.T) {
	ctx := freshContext()
	ctx.State.TotalLUSDSupply = 1_000_000
	ctx.State.StabilizationPool = 100_000

	sender := types.Address{0xBB}
	err := execMintSenior(types.MintSenior{Amount: 1, CollateralAmount: 1, Proof: []byte("p")}, sender, ctx)
	require.NoError(t, err)

	require.Less(t, ctx.State.ReserveRatioBps, uint64(8500))
	require.True(t, ctx.State.CircuitBreakerActive)

	err = execMintSenior(types.MintSenior{Amount: 1, CollateralAmount: 1, Proof: []byte("p")}, sender, ctx)
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, KindCircuitBreakerTripped, execErr.Kind)
}

// TestRedeemQueueingUnderStress covers spec scenario S3.
func TestRedeemQueueingUnderStress(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0xCC}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LUSD = 5000
	ctx.State.TotalLUSDSupply = 5000
	ctx.State.ReserveRatioBps = 9000 // 0.90 < 0.95 redeem-queue floor

	err := execRedeemSenior(types.RedeemSenior{Amount: 1000}, sender, ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(4000), ctx.State.Accounts[sender].LUSD)
	require.Equal(t, uint64(5000), ctx.State.TotalLUSDSupply, "supply unchanged while queued")
	require.Len(t, ctx.State.FairRedeemQueue, 1)

	ctx.State.CircuitBreakerActive = false
	err = execFairRedeemQueue(types.FairRedeemQueue{BatchSize: 1}, types.Address{}, ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(4000), ctx.State.TotalLUSDSupply)
	require.Empty(t, ctx.State.FairRedeemQueue)
}

func TestTransferPreservesSupply(t *testing.T) {
	ctx := freshContext()
	sender, recipient := types.Address{0x01}, types.Address{0x02}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LUSD = 500
	ctx.State.TotalLUSDSupply = 500

	err := execTransfer(types.Transfer{To: recipient, Amount: 200, Asset: types.AssetLUSD}, sender, ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(300), ctx.State.Accounts[sender].LUSD)
	require.Equal(t, uint64(200), ctx.State.Accounts[recipient].LUSD)
	require.Equal(t, uint64(500), ctx.State.TotalLUSDSupply, "total_lusd_supply invariant 4")
}

func TestTransferInsufficientBalance(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	err := execTransfer(types.Transfer{To: types.Address{0x02}, Amount: 1, Asset: types.AssetLUSD}, sender, ctx)
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, KindInsufficientBalance, execErr.Kind)
}
