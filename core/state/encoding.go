package state

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/luminachain/core/core/types"
)

// encoder is a tiny length-prefixed binary writer. Every persisted
// struct in this chain (accounts, blocks, states, tx-signing-bytes) is
// built from these primitives so that two honest implementations that
// agree on field order agree on bytes (spec §6).
type encoder struct {
	buf []byte
}

func (e *encoder) u8(v uint8)   { e.buf = append(e.buf, v) }
func (e *encoder) boolean(v bool) {
	if v {
		e.u8(1)
	} else {
		e.u8(0)
	}
}

func (e *encoder) u16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) u32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) u64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// bytesField writes a uint32 length prefix followed by the raw bytes.
func (e *encoder) bytesField(b []byte) {
	e.u32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *encoder) stringField(s string) { e.bytesField([]byte(s)) }

func (e *encoder) fixed32(b [32]byte) { e.buf = append(e.buf, b[:]...) }

func (e *encoder) address(a types.Address) { e.buf = append(e.buf, a[:]...) }
func (e *encoder) hash(h types.Hash)       { e.buf = append(e.buf, h[:]...) }

func (e *encoder) optionalHash(h *types.Hash) {
	if h == nil {
		e.bytesField(nil)
		return
	}
	e.u8(1)
	e.hash(*h)
}

func (e *encoder) optionalU64(v *uint64) {
	if v == nil {
		e.u8(0)
		return
	}
	e.u8(1)
	e.u64(*v)
}

// AccountBytes is the canonical serialization of an Account (spec §6).
// Map-valued fields (CustomBalances) are written in sorted-key order.
func AccountBytes(a *types.Account) []byte {
	e := &encoder{}
	e.u64(a.Nonce)
	e.u64(a.LUSD)
	e.u64(a.LJUN)
	e.u64(a.NativeGas)

	tickers := make([]string, 0, len(a.CustomBalances))
	for t := range a.CustomBalances {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	e.u32(uint32(len(tickers)))
	for _, t := range tickers {
		e.stringField(t)
		e.u64(a.CustomBalances[t])
	}

	if a.Commitment == nil {
		e.u8(0)
	} else {
		e.u8(1)
		e.hash(*a.Commitment)
	}
	e.bytesField(a.PasskeyDeviceKey)

	e.u32(uint32(len(a.Guardians)))
	for _, g := range a.Guardians {
		e.address(g)
	}
	e.bytesField(a.PQPubkey)

	e.u64(a.EpochTxVolume)
	e.u64(a.LastRewardEpoch)
	e.u16(a.CreditScore)

	e.u32(uint32(len(a.ActiveStreams)))
	for _, s := range a.ActiveStreams {
		e.address(s.Recipient)
		e.u64(s.PerSecond)
		e.u64(s.StartTS)
		e.u64(s.EndTS)
		e.u64(s.Withdrawn)
	}

	e.u32(uint32(len(a.YieldPositions)))
	for _, y := range a.YieldPositions {
		e.u64(y.TokenID)
		e.u64(y.Principal)
		e.u64(y.IssuedHeight)
		e.u64(y.MaturityHeight)
	}

	e.u64(a.PendingFlashMint)
	e.u64(a.PendingFlashCollateral)
	return e.buf
}

// HeaderBytes is the canonical serialization of a block Header.
func HeaderBytes(h *types.Header) []byte {
	e := &encoder{}
	e.u64(h.Height)
	e.hash(h.PrevHash)
	e.hash(h.TransactionsRoot)
	e.hash(h.StateRoot)
	e.u64(h.Timestamp)
	e.address(h.Proposer)
	return e.buf
}

// BlockHash is the 32-byte commitment to a block Header. Only the Header
// is hashed — the Body's transactions are already bound in via
// TransactionsRoot (spec §4.F).
func BlockHash(h types.Header) types.Hash {
	return Hash256(HeaderBytes(&h))
}

// SigningPreimage is the deterministic serialization of
// (sender, nonce, instruction, gas_limit, gas_price) — Signature is
// excluded by contract (spec §4.A).
func SigningPreimage(tx *types.Transaction) []byte {
	e := &encoder{}
	e.address(tx.Sender)
	e.u64(tx.Nonce)
	e.buf = append(e.buf, InstructionBytes(tx.Instruction)...)
	e.u64(tx.GasLimit)
	e.u64(tx.GasPrice)
	return e.buf
}

// TxID is hash(signing_preimage || signature) (spec §4.A).
func TxID(tx *types.Transaction) types.Hash {
	return Hash256(SigningPreimage(tx), tx.Signature)
}

// InstructionBytes canonically encodes any Instruction variant, prefixed
// by its InstructionKind discriminant.
func InstructionBytes(ins types.Instruction) []byte {
	e := &encoder{}
	e.u8(uint8(ins.Kind()))
	switch v := ins.(type) {
	case types.RegisterAsset:
		e.stringField(v.Ticker)
		e.u8(v.Decimals)
	case types.MintSenior:
		e.u64(v.Amount)
		e.u64(v.CollateralAmount)
		e.bytesField(v.Proof)
	case types.RedeemSenior:
		e.u64(v.Amount)
	case types.MintJunior:
		e.u64(v.Amount)
		e.u64(v.CollateralAmount)
	case types.RedeemJunior:
		e.u64(v.Amount)
	case types.Burn:
		e.u64(v.Amount)
		e.u8(uint8(v.Asset))
		e.stringField(v.Ticker)
	case types.Transfer:
		e.address(v.To)
		e.u64(v.Amount)
		e.u8(uint8(v.Asset))
		e.stringField(v.Ticker)
	case types.RebalanceTranches:
	case types.DistributeYield:
		e.u64(v.Yield)
	case types.TriggerStabilizer:
	case types.RunCircuitBreaker:
		e.boolean(v.Active)
	case types.FairRedeemQueue:
		e.u32(v.BatchSize)
	case types.ConfidentialTransfer:
		e.hash(v.Commitment)
		e.bytesField(v.Proof)
	case types.ProveCompliance:
		e.hash(v.TxHash)
		e.bytesField(v.Proof)
	case types.ZkTaxAttest:
		e.u64(v.Period)
		e.bytesField(v.Proof)
	case types.MultiJurisdictionalCheck:
		e.u32(v.JurisdictionID)
		e.bytesField(v.Proof)
	case types.UpdateOracle:
		e.stringField(v.Asset)
		e.u64(v.Price)
	case types.SubmitZkPoR:
		e.bytesField(v.Proof)
		e.u64(v.TotalReserves)
		e.u64(v.Timestamp)
	case types.InstantFiatBridge:
		e.u64(v.Amount)
	case types.ZeroSlipBatchMatch:
		e.u32(uint32(len(v.Orders)))
		for _, o := range v.Orders {
			e.bytesField(o)
		}
	case types.DynamicHedge:
		e.u32(v.RatioBps)
	case types.GeoRebalance:
		e.u32(v.ZoneID)
	case types.VelocityIncentive:
		e.u32(v.MultiplierBps)
	case types.StreamPayment:
		e.address(v.To)
		e.u64(v.PerSecond)
		e.u64(v.Duration)
	case types.RegisterValidator:
		e.fixed32(v.Pubkey)
		e.u64(v.Stake)
	case types.Vote:
		e.u64(v.ProposalID)
		e.boolean(v.Approve)
	case types.CreatePasskeyAccount:
		e.bytesField(v.DeviceKey)
		e.u32(uint32(len(v.Guardians)))
		for _, g := range v.Guardians {
			e.address(g)
		}
	case types.RecoverSocial:
		e.bytesField(v.NewDeviceKey)
		e.u32(uint32(len(v.Signatures)))
		for _, s := range v.Signatures {
			e.bytesField(s)
		}
	case types.SwitchToPQSignature:
		e.bytesField(v.PQPubkey)
	case types.RegisterGreenValidator:
		e.bytesField(v.EnergyProof)
	case types.UploadComplianceCircuit:
		e.stringField(v.ID)
		e.bytesField(v.VerifierKey)
	case types.RegisterCustodian:
		e.u64(v.Stake)
		e.u32(uint32(len(v.MPC)))
		for _, m := range v.MPC {
			e.bytesField(m)
		}
	case types.RotateReserves:
		e.u32(uint32(len(v.Set)))
		for _, s := range v.Set {
			e.fixed32(s)
		}
	case types.ClaimInsurance:
		e.bytesField(v.Proof)
		e.u64(v.Amount)
	case types.FlashMint:
		e.u64(v.Amount)
		e.stringField(v.CollateralAsset)
		e.u64(v.CollateralAmount)
		e.hash(v.Commitment)
	case types.FlashBurn:
		e.u64(v.Amount)
	case types.InstantRedeem:
		e.u64(v.Amount)
		e.address(v.Destination)
	case types.MintWithCreditScore:
		e.u64(v.Amount)
		e.u64(v.CollateralAmount)
		e.bytesField(v.Proof)
		e.u16(v.MinThreshold)
		e.stringField(v.Oracle)
	case types.WrapToYieldToken:
		e.u64(v.Amount)
		e.u64(v.Maturity)
	case types.UnwrapYieldToken:
		e.u64(v.TokenID)
	case types.ListRWA:
		e.stringField(v.Description)
		e.bytesField(v.Attestation)
		e.u64(v.AttestedValue)
		e.optionalU64(v.MaturityDate)
		e.boolean(v.CollateralEligible)
	case types.UseRWAAsCollateral:
		e.u64(v.RWAID)
		e.u64(v.Pledge)
	case types.ComputeHealthIndex:
	default:
		panic(fmt.Sprintf("state: unknown instruction type %T", ins))
	}
	return e.buf
}
