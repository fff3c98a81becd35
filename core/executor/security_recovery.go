package executor

import (
	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/types"
)

const (
	minGuardians = 2
	maxGuardians = 10
)

func execCreatePasskeyAccount(v types.CreatePasskeyAccount, sender types.Address, ctx *Context) error {
	if len(v.DeviceKey) == 0 {
		return ErrInvalidArgument("device_key")
	}
	if len(v.Guardians) < minGuardians || len(v.Guardians) > maxGuardians {
		return ErrInvalidArgument("guardians length")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	acc.PasskeyDeviceKey = append([]byte(nil), v.DeviceKey...)
	acc.Guardians = append([]types.Address(nil), v.Guardians...)
	return nil
}

func execRecoverSocial(v types.RecoverSocial, sender types.Address, ctx *Context) error {
	acc := ctx.State.GetOrCreateAccount(sender)
	threshold := len(acc.Guardians)/2 + 1

	consumed := make([]bool, len(acc.Guardians))
	verified := 0
	for _, sig := range v.Signatures {
		for i, guardian := range acc.Guardians {
			if consumed[i] {
				continue
			}
			if crypto.VerifyClassical([32]byte(guardian), v.NewDeviceKey, sig) == nil {
				consumed[i] = true
				verified++
				break
			}
		}
	}
	if verified < threshold {
		return ErrThresholdNotMet("social recovery signatures")
	}
	acc.PasskeyDeviceKey = append([]byte(nil), v.NewDeviceKey...)
	return nil
}

func execSwitchToPQSignature(v types.SwitchToPQSignature, sender types.Address, ctx *Context) error {
	if len(v.PQPubkey) == 0 {
		return ErrInvalidArgument("pq_pubkey")
	}
	acc := ctx.State.GetOrCreateAccount(sender)
	acc.PQPubkey = append([]byte(nil), v.PQPubkey...)
	return nil
}

func execRegisterGreenValidator(v types.RegisterGreenValidator, sender types.Address, ctx *Context) error {
	if !ctx.Verifiers.GreenEnergy(sender.Bytes(), v.EnergyProof) {
		return ErrProofInvalid("green energy proof")
	}
	validator, ok := findValidator(ctx, sender)
	if !ok {
		return ErrInvalidArgument("sender is not a registered validator")
	}
	validator.IsGreen = true
	validator.Power = validator.Stake * 2
	validator.EnergyProof = append([]byte(nil), v.EnergyProof...)
	return nil
}

func execUploadComplianceCircuit(v types.UploadComplianceCircuit, sender types.Address, ctx *Context) error {
	if v.ID == "" || len(v.VerifierKey) == 0 {
		return ErrInvalidArgument("id/verifier_key")
	}
	ctx.State.ComplianceCircuits[v.ID] = append([]byte(nil), v.VerifierKey...)
	return nil
}
