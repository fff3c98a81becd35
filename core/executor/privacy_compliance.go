package executor

import (
	"encoding/binary"

	"github.com/luminachain/core/core/types"
)

// None of these operations move balances (spec §4.D "Privacy/compliance");
// each is a proof check gating a write or a pure read.

func execConfidentialTransfer(v types.ConfidentialTransfer, sender types.Address, ctx *Context) error {
	if len(v.Proof) == 0 {
		return ErrInvalidArgument("proof")
	}
	if !ctx.Verifiers.Confidential(v.Commitment.Bytes(), v.Proof) {
		return ErrProofInvalid("confidential transfer proof")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	commitment := v.Commitment
	acc.Commitment = &commitment
	return nil
}

func execProveCompliance(v types.ProveCompliance, sender types.Address, ctx *Context) error {
	if len(v.Proof) == 0 {
		return ErrInvalidArgument("proof")
	}
	if !ctx.Verifiers.Compliance(v.TxHash.Bytes(), v.Proof) {
		return ErrProofInvalid("compliance proof")
	}
	return nil
}

func execZkTaxAttest(v types.ZkTaxAttest, sender types.Address, ctx *Context) error {
	if len(v.Proof) == 0 {
		return ErrInvalidArgument("proof")
	}
	var periodBytes [8]byte
	binary.BigEndian.PutUint64(periodBytes[:], v.Period)
	if !ctx.Verifiers.Tax(periodBytes[:], v.Proof) {
		return ErrProofInvalid("tax attestation proof")
	}
	return nil
}

func execMultiJurisdictionalCheck(v types.MultiJurisdictionalCheck, sender types.Address, ctx *Context) error {
	if len(v.Proof) == 0 {
		return ErrInvalidArgument("proof")
	}
	var jurisdictionBytes [4]byte
	binary.BigEndian.PutUint32(jurisdictionBytes[:], v.JurisdictionID)
	if !ctx.Verifiers.MultiJurisdictional(jurisdictionBytes[:], v.Proof) {
		return ErrProofInvalid("multi-jurisdictional proof")
	}
	return nil
}
