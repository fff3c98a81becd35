package executor

import (
	"encoding/binary"

	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/safemath"
)

// flashMintCollateralBps is the 110% over-collateralization floor for
// FlashMint (spec §4.D).
const flashMintCollateralBps = 11000

func execFlashMint(v types.FlashMint, sender types.Address, ctx *Context) error {
	if v.Amount == 0 || v.CollateralAmount == 0 {
		return ErrInvalidArgument("amount")
	}
	minCollateral := mulDivU64(v.Amount, flashMintCollateralBps, bpsOne)
	if v.CollateralAmount < minCollateral {
		return ErrThresholdNotMet("flash mint collateral")
	}

	s := ctx.State
	acc := s.GetOrCreateAccount(sender)
	newBal, overflow := safemath.AddU64(acc.LUSD, v.Amount)
	if overflow {
		return ErrOverflow("sender lusd")
	}
	newSupply, overflow := safemath.AddU64(s.TotalLUSDSupply, v.Amount)
	if overflow {
		return ErrOverflow("total lusd supply")
	}

	s.StabilizationPool = safemath.SaturatingAdd(s.StabilizationPool, v.CollateralAmount)
	acc.LUSD = newBal
	s.TotalLUSDSupply = newSupply
	s.PendingFlashMints = safemath.SaturatingAdd(s.PendingFlashMints, v.Amount)
	acc.PendingFlashMint = safemath.SaturatingAdd(acc.PendingFlashMint, v.Amount)
	acc.PendingFlashCollateral = safemath.SaturatingAdd(acc.PendingFlashCollateral, v.CollateralAmount)
	recalcRatio(s)
	return nil
}

func execFlashBurn(v types.FlashBurn, sender types.Address, ctx *Context) error {
	s := ctx.State
	acc := s.GetOrCreateAccount(sender)
	if acc.PendingFlashMint == 0 {
		return ErrInvalidArgument("no pending flash mint")
	}
	if v.Amount != acc.PendingFlashMint {
		return ErrInvalidArgument("amount must equal pending flash mint exactly")
	}
	if acc.LUSD < v.Amount {
		return ErrInsufficientBalance("LUSD")
	}

	acc.LUSD -= v.Amount
	s.TotalLUSDSupply = safemath.SaturatingSub(s.TotalLUSDSupply, v.Amount)
	s.StabilizationPool = safemath.SaturatingSub(s.StabilizationPool, acc.PendingFlashCollateral)
	s.PendingFlashMints = safemath.SaturatingSub(s.PendingFlashMints, v.Amount)
	acc.PendingFlashMint = 0
	acc.PendingFlashCollateral = 0
	recalcRatio(s)
	return nil
}

func execInstantRedeem(v types.InstantRedeem, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	s := ctx.State
	senderAcc := s.GetOrCreateAccount(sender)
	if senderAcc.LUSD < v.Amount {
		return ErrInsufficientBalance("LUSD")
	}

	if s.CircuitBreakerActive || s.ReserveRatioBps < bpsRedeemQueueFloor {
		senderAcc.LUSD -= v.Amount
		s.FairRedeemQueue = append(s.FairRedeemQueue, types.RedemptionRequest{
			Address:   v.Destination,
			Amount:    v.Amount,
			Timestamp: ctx.Timestamp,
		})
		return nil
	}

	destAcc := s.GetOrCreateAccount(v.Destination)
	newDestBal, overflow := safemath.AddU64(destAcc.LUSD, v.Amount)
	if overflow {
		return ErrOverflow("destination lusd")
	}
	senderAcc.LUSD -= v.Amount
	destAcc.LUSD = newDestBal
	return nil
}

const (
	creditScoreTierBestBps = 10200
	creditScoreTierMidBps  = 10500
	creditScoreTierLowBps  = 11000
)

func execMintWithCreditScore(v types.MintWithCreditScore, sender types.Address, ctx *Context) error {
	s := ctx.State

	trusted := false
	for _, o := range s.TrustedCreditOracles {
		if o == v.Oracle {
			trusted = true
			break
		}
	}

	proofID := state.Hash256(v.Proof)
	_, replayed := s.UsedCreditProofs[proofID]

	if !trusted || replayed || !ctx.Verifiers.CreditScore(sender.Bytes(), v.Proof) {
		return execMintSenior(types.MintSenior{Amount: v.Amount, CollateralAmount: v.CollateralAmount}, sender, ctx)
	}

	var raw uint16
	if len(v.Proof) > 0 {
		raw = binary.LittleEndian.Uint16(proofID[:2])
	}
	score := 300 + raw%551
	if score < v.MinThreshold {
		return execMintSenior(types.MintSenior{Amount: v.Amount, CollateralAmount: v.CollateralAmount}, sender, ctx)
	}

	var requiredBps uint64
	switch {
	case score >= 800:
		requiredBps = creditScoreTierBestBps
	case score >= 750:
		requiredBps = creditScoreTierMidBps
	default:
		requiredBps = creditScoreTierLowBps
	}
	if v.CollateralAmount < mulDivU64(v.Amount, requiredBps, bpsOne) {
		return ErrThresholdNotMet("credit-scored collateral ratio")
	}

	acc := s.GetOrCreateAccount(sender)
	newBal, overflow := safemath.AddU64(acc.LUSD, v.Amount)
	if overflow {
		return ErrOverflow("sender lusd")
	}
	newSupply, overflow := safemath.AddU64(s.TotalLUSDSupply, v.Amount)
	if overflow {
		return ErrOverflow("total lusd supply")
	}

	s.UsedCreditProofs[proofID] = struct{}{}
	s.StabilizationPool = safemath.SaturatingAdd(s.StabilizationPool, v.CollateralAmount)
	acc.LUSD = newBal
	s.TotalLUSDSupply = newSupply
	acc.CreditScore = score
	recalcRatio(s)
	return nil
}

func execWrapToYieldToken(v types.WrapToYieldToken, sender types.Address, ctx *Context) error {
	if v.Amount == 0 || v.Maturity == 0 {
		return ErrInvalidArgument("amount/maturity")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.LUSD < v.Amount {
		return ErrInsufficientBalance("LUSD")
	}
	acc.LUSD -= v.Amount

	tokenID := ctx.State.NextYieldTokenID
	ctx.State.NextYieldTokenID++
	acc.YieldPositions = append(acc.YieldPositions, types.YieldPosition{
		TokenID:        tokenID,
		Principal:      v.Amount,
		IssuedHeight:   ctx.Height,
		MaturityHeight: v.Maturity,
	})
	return nil
}

// yieldAPRNumerator/yieldAPRDenominator express a 5%-per-year accrual rate
// over a 3,153,600-block year (spec §4.D UnwrapYieldToken).
const (
	yieldAPRNumerator   = 5
	yieldAPRDenominator = 100 * 3_153_600
	yieldInsuranceCutBps = 10
)

func execUnwrapYieldToken(v types.UnwrapYieldToken, sender types.Address, ctx *Context) error {
	acc := ctx.State.GetOrCreateAccount(sender)
	idx := -1
	for i, p := range acc.YieldPositions {
		if p.TokenID == v.TokenID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound("yield position")
	}
	pos := acc.YieldPositions[idx]
	if ctx.Height < pos.MaturityHeight {
		return ErrInvalidArgument("maturity not reached")
	}

	blocksHeld := ctx.Height - pos.IssuedHeight
	scaledPrincipal := mulDivU64(pos.Principal, yieldAPRNumerator, 1)
	yield := mulDivU64(scaledPrincipal, blocksHeld, yieldAPRDenominator)
	insuranceCut := mulDivU64(yield, yieldInsuranceCutBps, 100)
	userShare := yield - insuranceCut

	acc.LUSD = safemath.SaturatingAdd(acc.LUSD, pos.Principal+userShare)
	ctx.State.InsuranceFund = safemath.SaturatingAdd(ctx.State.InsuranceFund, insuranceCut)
	ctx.State.TotalLUSDSupply = safemath.SaturatingAdd(ctx.State.TotalLUSDSupply, yield)
	acc.YieldPositions = append(acc.YieldPositions[:idx], acc.YieldPositions[idx+1:]...)
	recalcRatio(ctx.State)
	return nil
}

func execListRWA(v types.ListRWA, sender types.Address, ctx *Context) error {
	if v.Description == "" {
		return ErrInvalidArgument("description")
	}
	if v.AttestedValue == 0 {
		return ErrInvalidArgument("attested_value")
	}
	var valueBytes [8]byte
	binary.BigEndian.PutUint64(valueBytes[:], v.AttestedValue)
	if !ctx.Verifiers.RWAAttestation(valueBytes[:], v.Attestation) {
		return ErrProofInvalid("rwa attestation")
	}

	id := ctx.State.NextRWAID
	ctx.State.NextRWAID++
	ctx.State.RWAListings[id] = &types.RWAListing{
		ID:                 id,
		Owner:              sender,
		Description:        v.Description,
		Attestation:        append([]byte(nil), v.Attestation...),
		AttestedValue:      v.AttestedValue,
		MaturityDate:       v.MaturityDate,
		CollateralEligible: v.CollateralEligible,
		IsActive:           true,
		PledgedAmount:      0,
	}
	return nil
}

func execUseRWAAsCollateral(v types.UseRWAAsCollateral, sender types.Address, ctx *Context) error {
	listing, ok := ctx.State.RWAListings[v.RWAID]
	if !ok {
		return ErrNotFound("rwa listing")
	}
	if !listing.IsActive || !listing.CollateralEligible {
		return ErrInvalidArgument("rwa listing not collateral-eligible")
	}
	newPledged, overflow := safemath.AddU64(listing.PledgedAmount, v.Pledge)
	if overflow || newPledged > listing.AttestedValue {
		return ErrThresholdNotMet("rwa pledge exceeds attested value")
	}

	acc := ctx.State.GetOrCreateAccount(sender)
	newBal, overflow := safemath.AddU64(acc.LUSD, v.Pledge)
	if overflow {
		return ErrOverflow("sender lusd")
	}
	newSupply, overflow := safemath.AddU64(ctx.State.TotalLUSDSupply, v.Pledge)
	if overflow {
		return ErrOverflow("total lusd supply")
	}

	listing.PledgedAmount = newPledged
	acc.LUSD = newBal
	ctx.State.TotalLUSDSupply = newSupply
	ctx.State.StabilizationPool = safemath.SaturatingAdd(ctx.State.StabilizationPool, v.Pledge)
	recalcRatio(ctx.State)
	return nil
}
