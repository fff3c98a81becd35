package executor

import (
	"github.com/luminachain/core/core/types"
	"github.com/luminachain/core/internal/safemath"
)

func execRegisterAsset(v types.RegisterAsset, sender types.Address, ctx *Context) error {
	if len(v.Ticker) < types.MinTickerLen || len(v.Ticker) > types.MaxTickerLen {
		return ErrInvalidArgument("ticker length")
	}
	if v.Decimals > 18 {
		return ErrInvalidArgument("decimals")
	}
	if _, ok := ctx.State.OraclePrices[v.Ticker]; !ok {
		ctx.State.OraclePrices[v.Ticker] = 0
	}
	return nil
}

// feeDenominator is the MintSenior fee divisor: fee = amount/20 (spec §4.D).
const feeDenominator = 20

func execMintSenior(v types.MintSenior, sender types.Address, ctx *Context) error {
	if v.Amount == 0 || v.CollateralAmount == 0 {
		return ErrInvalidArgument("amount")
	}
	if len(v.Proof) == 0 {
		return ErrInvalidArgument("proof")
	}
	if ctx.State.CircuitBreakerActive {
		return ErrCircuitBreakerTripped()
	}
	if !ctx.Verifiers.Reserves(reservesCtxBytes(v.CollateralAmount), v.Proof) {
		return ErrProofInvalid("reserves proof")
	}

	fee := v.Amount / feeDenominator
	net, underflow := safemath.SubU64(v.Amount, fee)
	if underflow {
		return ErrUnderflow("mint senior net")
	}

	acc := ctx.State.GetOrCreateAccount(sender)
	newBal, overflow := safemath.AddU64(acc.LUSD, net)
	if overflow {
		return ErrOverflow("sender lusd")
	}
	newSupply, overflow := safemath.AddU64(ctx.State.TotalLUSDSupply, net)
	if overflow {
		return ErrOverflow("total lusd supply")
	}
	newPool, overflow := safemath.AddU64(ctx.State.StabilizationPool, v.CollateralAmount)
	if overflow {
		return ErrOverflow("stabilization pool")
	}
	newInsurance, overflow := safemath.AddU64(ctx.State.InsuranceFund, fee)
	if overflow {
		return ErrOverflow("insurance fund")
	}
	newVolume, overflow := safemath.AddU64(acc.EpochTxVolume, v.Amount)
	if overflow {
		return ErrOverflow("epoch tx volume")
	}

	acc.LUSD = newBal
	acc.EpochTxVolume = newVolume
	ctx.State.TotalLUSDSupply = newSupply
	ctx.State.StabilizationPool = newPool
	ctx.State.InsuranceFund = newInsurance
	recalcRatio(ctx.State)
	return nil
}

func reservesCtxBytes(collateral uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(collateral >> (56 - 8*i))
	}
	return b
}

func execRedeemSenior(v types.RedeemSenior, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.LUSD < v.Amount {
		return ErrInsufficientBalance("LUSD")
	}

	if ctx.State.CircuitBreakerActive || ctx.State.ReserveRatioBps < bpsRedeemQueueFloor {
		acc.LUSD -= v.Amount
		ctx.State.FairRedeemQueue = append(ctx.State.FairRedeemQueue, types.RedemptionRequest{
			Address:   sender,
			Amount:    v.Amount,
			Timestamp: ctx.Timestamp,
		})
		return nil
	}

	acc.LUSD -= v.Amount
	ctx.State.TotalLUSDSupply = safemath.SaturatingSub(ctx.State.TotalLUSDSupply, v.Amount)
	ctx.State.StabilizationPool = safemath.SaturatingSub(ctx.State.StabilizationPool, v.Amount)
	recalcRatio(ctx.State)
	return nil
}

func execMintJunior(v types.MintJunior, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	newBal, overflow := safemath.AddU64(acc.LJUN, v.Amount)
	if overflow {
		return ErrOverflow("sender ljun")
	}
	newSupply, overflow := safemath.AddU64(ctx.State.TotalLJUNSupply, v.Amount)
	if overflow {
		return ErrOverflow("total ljun supply")
	}
	acc.LJUN = newBal
	ctx.State.TotalLJUNSupply = newSupply
	recalcRatio(ctx.State)
	return nil
}

func execRedeemJunior(v types.RedeemJunior, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	if acc.LJUN < v.Amount {
		return ErrInsufficientBalance("LJUN")
	}
	acc.LJUN -= v.Amount
	ctx.State.TotalLJUNSupply = safemath.SaturatingSub(ctx.State.TotalLJUNSupply, v.Amount)
	recalcRatio(ctx.State)
	return nil
}

func execBurn(v types.Burn, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	switch v.Asset {
	case types.AssetLUSD:
		if acc.LUSD < v.Amount {
			return ErrInsufficientBalance("LUSD")
		}
		acc.LUSD -= v.Amount
		ctx.State.TotalLUSDSupply = safemath.SaturatingSub(ctx.State.TotalLUSDSupply, v.Amount)
		recalcRatio(ctx.State)
	case types.AssetLJUN:
		if acc.LJUN < v.Amount {
			return ErrInsufficientBalance("LJUN")
		}
		acc.LJUN -= v.Amount
		ctx.State.TotalLJUNSupply = safemath.SaturatingSub(ctx.State.TotalLJUNSupply, v.Amount)
	case types.AssetNativeGas:
		if acc.NativeGas < v.Amount {
			return ErrInsufficientBalance("NATIVE")
		}
		acc.NativeGas -= v.Amount
	case types.AssetCustom:
		bal := acc.CustomBalances[v.Ticker]
		if bal < v.Amount {
			return ErrInsufficientBalance(v.Ticker)
		}
		acc.CustomBalances[v.Ticker] = bal - v.Amount
	default:
		return ErrInvalidArgument("asset kind")
	}
	return nil
}

func execTransfer(v types.Transfer, sender types.Address, ctx *Context) error {
	if v.Amount == 0 {
		return ErrInvalidArgument("amount")
	}
	senderAcc := ctx.State.GetOrCreateAccount(sender)
	receiverAcc := ctx.State.GetOrCreateAccount(v.To)

	switch v.Asset {
	case types.AssetLUSD:
		if senderAcc.LUSD < v.Amount {
			return ErrInsufficientBalance("LUSD")
		}
		newReceiver, overflow := safemath.AddU64(receiverAcc.LUSD, v.Amount)
		if overflow {
			return ErrOverflow("receiver lusd")
		}
		senderAcc.LUSD -= v.Amount
		receiverAcc.LUSD = newReceiver
		senderAcc.EpochTxVolume = safemath.SaturatingAdd(senderAcc.EpochTxVolume, v.Amount)
	case types.AssetLJUN:
		if senderAcc.LJUN < v.Amount {
			return ErrInsufficientBalance("LJUN")
		}
		newReceiver, overflow := safemath.AddU64(receiverAcc.LJUN, v.Amount)
		if overflow {
			return ErrOverflow("receiver ljun")
		}
		senderAcc.LJUN -= v.Amount
		receiverAcc.LJUN = newReceiver
		senderAcc.EpochTxVolume = safemath.SaturatingAdd(senderAcc.EpochTxVolume, v.Amount)
	case types.AssetNativeGas:
		if senderAcc.NativeGas < v.Amount {
			return ErrInsufficientBalance("NATIVE")
		}
		newReceiver, overflow := safemath.AddU64(receiverAcc.NativeGas, v.Amount)
		if overflow {
			return ErrOverflow("receiver native")
		}
		senderAcc.NativeGas -= v.Amount
		receiverAcc.NativeGas = newReceiver
	case types.AssetCustom:
		if len(v.Ticker) < types.MinTickerLen || len(v.Ticker) > types.MaxTickerLen {
			return ErrInvalidArgument("ticker")
		}
		bal := senderAcc.CustomBalances[v.Ticker]
		if bal < v.Amount {
			return ErrInsufficientBalance(v.Ticker)
		}
		newReceiver, overflow := safemath.AddU64(receiverAcc.CustomBalances[v.Ticker], v.Amount)
		if overflow {
			return ErrOverflow("receiver custom balance")
		}
		senderAcc.CustomBalances[v.Ticker] = bal - v.Amount
		receiverAcc.CustomBalances[v.Ticker] = newReceiver
	default:
		return ErrInvalidArgument("asset kind")
	}
	return nil
}
