package executor

import (
	"encoding/binary"

	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
)

func execUpdateOracle(v types.UpdateOracle, sender types.Address, ctx *Context) error {
	if v.Asset == "" {
		return ErrInvalidArgument("asset")
	}
	ctx.State.OraclePrices[v.Asset] = v.Price
	recalcRatio(ctx.State)
	return nil
}

func execSubmitZkPoR(v types.SubmitZkPoR, sender types.Address, ctx *Context) error {
	if v.Timestamp <= ctx.State.LastPoRTimestamp {
		return ErrInvalidArgument("timestamp not strictly increasing")
	}
	proofID := state.Hash256(v.Proof)
	if proofID == ctx.State.LastPoRHash {
		return ErrReplay("proof-of-reserves hash")
	}
	var reserveCtx [16]byte
	binary.BigEndian.PutUint64(reserveCtx[0:8], v.TotalReserves)
	binary.BigEndian.PutUint64(reserveCtx[8:16], v.Timestamp)
	if !ctx.Verifiers.ZkPoR(reserveCtx[:], v.Proof) {
		return ErrProofInvalid("proof-of-reserves")
	}

	ctx.State.StabilizationPool = v.TotalReserves
	ctx.State.LastPoRTimestamp = v.Timestamp
	ctx.State.LastPoRHash = proofID
	recalcRatio(ctx.State)
	return nil
}
