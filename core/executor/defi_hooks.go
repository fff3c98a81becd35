package executor

import (
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/safemath"
)

func execInstantFiatBridge(v types.InstantFiatBridge, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.LUSD < v.Amount {
		return ErrInsufficientBalance("LUSD")
	}
	acc.LUSD -= v.Amount
	ctx.State.TotalLUSDSupply = safemath.SaturatingSub(ctx.State.TotalLUSDSupply, v.Amount)
	ctx.State.StabilizationPool = safemath.SaturatingSub(ctx.State.StabilizationPool, v.Amount)
	recalcRatio(ctx.State)
	return nil
}

const maxBatchMatchOrders = 1000

func execZeroSlipBatchMatch(v types.ZeroSlipBatchMatch, sender types.Address, ctx *Context) error {
	if len(v.Orders) == 0 || len(v.Orders) > maxBatchMatchOrders {
		return ErrInvalidArgument("orders length")
	}
	seen := make(map[string]struct{}, len(v.Orders))
	for _, o := range v.Orders {
		key := string(o)
		if _, dup := seen[key]; dup {
			return ErrInvalidArgument("duplicate order")
		}
		seen[key] = struct{}{}
	}
	batchID := state.Hash256(v.Orders...)
	if _, exists := ctx.State.ExecutedBatchMatches[batchID]; exists {
		return ErrReplay("batch match")
	}
	ctx.State.ExecutedBatchMatches[batchID] = struct{}{}
	return nil
}

func execDynamicHedge(v types.DynamicHedge, sender types.Address, ctx *Context) error {
	if v.RatioBps > bpsOne {
		return ErrInvalidArgument("ratio bps")
	}
	s := ctx.State
	target := mulDivU64(s.TotalLUSDSupply, uint64(v.RatioBps), bpsOne)
	if s.StabilizationPool >= target {
		return nil
	}
	need := target - s.StabilizationPool
	move := safemath.MinU64(need, s.InsuranceFund)
	s.StabilizationPool += move
	s.InsuranceFund -= move
	recalcRatio(s)
	return nil
}

func execGeoRebalance(v types.GeoRebalance, sender types.Address, ctx *Context) error {
	if v.ZoneID == 0 {
		return ErrInvalidArgument("zone id")
	}
	s := ctx.State
	n := len(s.Custodians)
	if n == 0 {
		return nil
	}
	shift := int(v.ZoneID) % n
	s.Custodians = append(s.Custodians[shift:], s.Custodians[:shift]...)
	return nil
}

func execVelocityIncentive(v types.VelocityIncentive, sender types.Address, ctx *Context) error {
	if v.MultiplierBps == 0 || v.MultiplierBps > 5000 {
		return ErrInvalidArgument("multiplier bps")
	}
	reward := mulDivU64(ctx.State.TotalLUSDSupply, uint64(v.MultiplierBps), 1_000_000)
	ctx.State.VelocityRewardPool = safemath.SaturatingAdd(ctx.State.VelocityRewardPool, reward)
	return nil
}

func execStreamPayment(v types.StreamPayment, sender types.Address, ctx *Context) error {
	if v.PerSecond == 0 || v.Duration == 0 {
		return ErrInvalidArgument("per_second/duration")
	}
	escrow, overflow := safemath.MulU64(v.PerSecond, v.Duration)
	if overflow {
		return ErrOverflow("stream escrow amount")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.LUSD < escrow {
		return ErrInsufficientBalance("LUSD")
	}
	acc.LUSD -= escrow
	endTS, overflow := safemath.AddU64(ctx.Timestamp, v.Duration)
	if overflow {
		return ErrOverflow("stream end timestamp")
	}
	acc.ActiveStreams = append(acc.ActiveStreams, types.StreamEscrow{
		Recipient: v.To,
		PerSecond: v.PerSecond,
		StartTS:   ctx.Timestamp,
		EndTS:     endTS,
		Withdrawn: 0,
	})
	return nil
}
