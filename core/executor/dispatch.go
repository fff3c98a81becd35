package executor

import (
	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/types"
)

// Context carries everything an instruction handler needs beyond the
// instruction itself: the mutable state, and the height/timestamp that
// are frozen for the entire block (spec §4.D).
type Context struct {
	State     *types.GlobalState
	Height    uint64
	Timestamp uint64
	Verifiers crypto.Verifiers
}

// Execute dispatches one instruction to its handler (spec §4.D
// execute_instruction). A handler that returns an error may already have
// mutated ctx.State (for example by creating an account through
// GetOrCreateAccount); the caller (core/chain pipeline) is responsible
// for restoring state on error since handlers operate directly on
// ctx.State for efficiency rather than cloning per instruction.
func Execute(ins types.Instruction, sender types.Address, ctx *Context) error {
	switch v := ins.(type) {
	case types.RegisterAsset:
		return execRegisterAsset(v, sender, ctx)
	case types.MintSenior:
		return execMintSenior(v, sender, ctx)
	case types.RedeemSenior:
		return execRedeemSenior(v, sender, ctx)
	case types.MintJunior:
		return execMintJunior(v, sender, ctx)
	case types.RedeemJunior:
		return execRedeemJunior(v, sender, ctx)
	case types.Burn:
		return execBurn(v, sender, ctx)
	case types.Transfer:
		return execTransfer(v, sender, ctx)
	case types.RebalanceTranches:
		return execRebalanceTranches(v, sender, ctx)
	case types.DistributeYield:
		return execDistributeYield(v, sender, ctx)
	case types.TriggerStabilizer:
		return execTriggerStabilizer(v, sender, ctx)
	case types.RunCircuitBreaker:
		return execRunCircuitBreaker(v, sender, ctx)
	case types.FairRedeemQueue:
		return execFairRedeemQueue(v, sender, ctx)
	case types.ConfidentialTransfer:
		return execConfidentialTransfer(v, sender, ctx)
	case types.ProveCompliance:
		return execProveCompliance(v, sender, ctx)
	case types.ZkTaxAttest:
		return execZkTaxAttest(v, sender, ctx)
	case types.MultiJurisdictionalCheck:
		return execMultiJurisdictionalCheck(v, sender, ctx)
	case types.UpdateOracle:
		return execUpdateOracle(v, sender, ctx)
	case types.SubmitZkPoR:
		return execSubmitZkPoR(v, sender, ctx)
	case types.InstantFiatBridge:
		return execInstantFiatBridge(v, sender, ctx)
	case types.ZeroSlipBatchMatch:
		return execZeroSlipBatchMatch(v, sender, ctx)
	case types.DynamicHedge:
		return execDynamicHedge(v, sender, ctx)
	case types.GeoRebalance:
		return execGeoRebalance(v, sender, ctx)
	case types.VelocityIncentive:
		return execVelocityIncentive(v, sender, ctx)
	case types.StreamPayment:
		return execStreamPayment(v, sender, ctx)
	case types.RegisterValidator:
		return execRegisterValidator(v, sender, ctx)
	case types.Vote:
		return execVote(v, sender, ctx)
	case types.CreatePasskeyAccount:
		return execCreatePasskeyAccount(v, sender, ctx)
	case types.RecoverSocial:
		return execRecoverSocial(v, sender, ctx)
	case types.SwitchToPQSignature:
		return execSwitchToPQSignature(v, sender, ctx)
	case types.RegisterGreenValidator:
		return execRegisterGreenValidator(v, sender, ctx)
	case types.UploadComplianceCircuit:
		return execUploadComplianceCircuit(v, sender, ctx)
	case types.RegisterCustodian:
		return execRegisterCustodian(v, sender, ctx)
	case types.RotateReserves:
		return execRotateReserves(v, sender, ctx)
	case types.ClaimInsurance:
		return execClaimInsurance(v, sender, ctx)
	case types.FlashMint:
		return execFlashMint(v, sender, ctx)
	case types.FlashBurn:
		return execFlashBurn(v, sender, ctx)
	case types.InstantRedeem:
		return execInstantRedeem(v, sender, ctx)
	case types.MintWithCreditScore:
		return execMintWithCreditScore(v, sender, ctx)
	case types.WrapToYieldToken:
		return execWrapToYieldToken(v, sender, ctx)
	case types.UnwrapYieldToken:
		return execUnwrapYieldToken(v, sender, ctx)
	case types.ListRWA:
		return execListRWA(v, sender, ctx)
	case types.UseRWAAsCollateral:
		return execUseRWAAsCollateral(v, sender, ctx)
	case types.ComputeHealthIndex:
		ctx.State.HealthIndex = ComputeHealthIndex(ctx.State)
		return nil
	default:
		return ErrInvalidArgument("unknown instruction")
	}
}

// EndBlock runs end-of-block accounting (spec §4.E end_block): recompute
// the health index and zero the per-block flash-mint aggregate, also
// clearing any stray per-account flash-mint fields left by an unpaired
// FlashMint (Open Question F1, resolved in SPEC_FULL.md §13).
func EndBlock(s *types.GlobalState) {
	s.HealthIndex = ComputeHealthIndex(s)
	for _, addr := range s.SortedAddresses() {
		acc := s.Accounts[addr]
		if acc.PendingFlashMint != 0 || acc.PendingFlashCollateral != 0 {
			acc.PendingFlashMint = 0
			acc.PendingFlashCollateral = 0
		}
	}
	s.PendingFlashMints = 0
}

// recalcRatio is the common post-mutation step almost every LUSD-facing
// op performs (spec §3 invariant: ratio recomputed after every
// mint/redeem/burn/transfer that touches LUSD).
func recalcRatio(s *types.GlobalState) {
	RecalculateReserveRatio(&s.ReserveRatioBps, &s.CircuitBreakerActive, s.StabilizationPool, s.TotalLUSDSupply)
}
