package executor

import (
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/safemath"
)

const maxCustodianMPCKeys = 7

// reserveRotationCooldown is the minimum block gap between RotateReserves
// calls: 259200 blocks (spec §4.D).
const reserveRotationCooldown = 259200

func execRegisterCustodian(v types.RegisterCustodian, sender types.Address, ctx *Context) error {
	if len(v.MPC) == 0 || len(v.MPC) > maxCustodianMPCKeys {
		return ErrInvalidArgument("mpc keys length")
	}
	if v.Stake == 0 {
		return ErrInvalidArgument("stake")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.LJUN < v.Stake {
		return ErrInsufficientBalance("LJUN")
	}
	acc.LJUN -= v.Stake
	ctx.State.Custodians = append(ctx.State.Custodians, types.Custodian{
		Pubkey:       [32]byte(sender),
		Stake:        v.Stake,
		MPCPubkeys:   append([][]byte(nil), v.MPC...),
		RegisteredAt: ctx.Height,
	})
	return nil
}

func isRegisteredCustodian(ctx *Context, pubkey [32]byte) bool {
	for _, c := range ctx.State.Custodians {
		if c.Pubkey == pubkey {
			return true
		}
	}
	return false
}

func execRotateReserves(v types.RotateReserves, sender types.Address, ctx *Context) error {
	if len(v.Set) == 0 {
		return ErrInvalidArgument("set")
	}
	for _, pubkey := range v.Set {
		if !isRegisteredCustodian(ctx, pubkey) {
			return ErrInvalidArgument("set contains unregistered custodian")
		}
	}
	if ctx.Height-ctx.State.LastReserveRotationHeight < reserveRotationCooldown {
		return ErrRateLimited("reserve rotation frequency")
	}
	ctx.State.LastReserveRotationHeight = ctx.Height
	return nil
}

func execClaimInsurance(v types.ClaimInsurance, sender types.Address, ctx *Context) error {
	if !ctx.Verifiers.InsuranceLoss(sender.Bytes(), v.Proof) {
		return ErrProofInvalid("insurance loss proof")
	}
	if v.Amount > ctx.State.InsuranceFund {
		return ErrInsufficientBalance("insurance fund")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	newBal, overflow := safemath.AddU64(acc.LUSD, v.Amount)
	if overflow {
		return ErrOverflow("sender lusd")
	}
	newSupply, overflow := safemath.AddU64(ctx.State.TotalLUSDSupply, v.Amount)
	if overflow {
		return ErrOverflow("total lusd supply")
	}
	acc.LUSD = newBal
	ctx.State.TotalLUSDSupply = newSupply
	ctx.State.InsuranceFund -= v.Amount
	recalcRatio(ctx.State)
	return nil
}
