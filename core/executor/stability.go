package executor

import (
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/safemath"
)

// juniorCapBps is the 40% ceiling on junior/(senior+junior) before
// RebalanceTranches redirects the excess into the stabilization pool.
const juniorCapBps = 4000

func execRebalanceTranches(v types.RebalanceTranches, sender types.Address, ctx *Context) error {
	total := safemath.SaturatingAdd(ctx.State.TotalLUSDSupply, ctx.State.TotalLJUNSupply)
	ceiling := mulDivU64(total, juniorCapBps, bpsOne)
	if ctx.State.TotalLJUNSupply <= ceiling {
		ctx.State.LastRebalanceHeight = ctx.Height
		return nil
	}
	excess := ctx.State.TotalLJUNSupply - ceiling
	ctx.State.StabilizationPool = safemath.SaturatingAdd(ctx.State.StabilizationPool, excess)
	ctx.State.TotalLJUNSupply -= excess
	ctx.State.LastRebalanceHeight = ctx.Height
	recalcRatio(ctx.State)
	return nil
}

func execDistributeYield(v types.DistributeYield, sender types.Address, ctx *Context) error {
	juniorShare := mulDivU64(v.Yield, 80, 100)
	poolShare := mulDivU64(v.Yield, 15, 100)
	insuranceShare := v.Yield - juniorShare - poolShare

	s := ctx.State
	if s.TotalLJUNSupply == 0 {
		s.StabilizationPool = safemath.SaturatingAdd(s.StabilizationPool, juniorShare+poolShare)
		s.InsuranceFund = safemath.SaturatingAdd(s.InsuranceFund, insuranceShare)
		return nil
	}

	denom := s.TotalLJUNSupply
	for _, addr := range s.SortedAddresses() {
		acc := s.Accounts[addr]
		if acc.LJUN == 0 {
			continue
		}
		share := mulDivU64(juniorShare, acc.LJUN, denom)
		acc.LJUN = safemath.SaturatingAdd(acc.LJUN, share)
	}
	s.StabilizationPool = safemath.SaturatingAdd(s.StabilizationPool, poolShare)
	s.InsuranceFund = safemath.SaturatingAdd(s.InsuranceFund, insuranceShare)
	s.TotalLJUNSupply = safemath.SaturatingAdd(s.TotalLJUNSupply, juniorShare)
	return nil
}

func execTriggerStabilizer(v types.TriggerStabilizer, sender types.Address, ctx *Context) error {
	s := ctx.State
	if s.ReserveRatioBps >= bpsOne || s.InsuranceFund == 0 {
		return nil
	}
	deficit := safemath.SaturatingSub(s.TotalLUSDSupply, s.StabilizationPool)
	topUp := safemath.MinU64(deficit, s.InsuranceFund)
	s.StabilizationPool = safemath.SaturatingAdd(s.StabilizationPool, topUp)
	s.InsuranceFund -= topUp
	recalcRatio(s)
	return nil
}

func execRunCircuitBreaker(v types.RunCircuitBreaker, sender types.Address, ctx *Context) error {
	ctx.State.CircuitBreakerActive = v.Active
	return nil
}

func execFairRedeemQueue(v types.FairRedeemQueue, sender types.Address, ctx *Context) error {
	if ctx.State.CircuitBreakerActive {
		return ErrCircuitBreakerTripped()
	}
	s := ctx.State
	n := int(v.BatchSize)
	if n > len(s.FairRedeemQueue) {
		n = len(s.FairRedeemQueue)
	}
	for i := 0; i < n; i++ {
		req := s.FairRedeemQueue[i]
		s.TotalLUSDSupply = safemath.SaturatingSub(s.TotalLUSDSupply, req.Amount)
		s.StabilizationPool = safemath.SaturatingSub(s.StabilizationPool, req.Amount)
	}
	s.FairRedeemQueue = s.FairRedeemQueue[n:]
	recalcRatio(s)
	return nil
}
