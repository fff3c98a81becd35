package executor

import "github.com/luminachain/core/core/types"

func execRegisterValidator(v types.RegisterValidator, sender types.Address, ctx *Context) error {
	if v.Stake == 0 {
		return ErrInvalidArgument("stake")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.NativeGas < v.Stake {
		return ErrInsufficientBalance("NATIVE")
	}
	acc.NativeGas -= v.Stake
	ctx.State.Validators = append(ctx.State.Validators, types.Validator{
		Pubkey:  v.Pubkey,
		Stake:   v.Stake,
		Power:   v.Stake,
		IsGreen: false,
	})
	return nil
}

func findValidator(ctx *Context, sender types.Address) (*types.Validator, bool) {
	for i := range ctx.State.Validators {
		if ctx.State.Validators[i].Pubkey == [32]byte(sender) {
			return &ctx.State.Validators[i], true
		}
	}
	return nil, false
}

func execVote(v types.Vote, sender types.Address, ctx *Context) error {
	if _, ok := findValidator(ctx, sender); !ok {
		return ErrInvalidArgument("sender is not a registered validator")
	}
	return nil
}
