package types

// Account is the per-address leaf value committed by the state trie
// (spec §3). Every field here participates in the canonical encoding in
// core/state/encoding.go — changing the field order or adding a field
// without updating the encoder changes every state root.
type Account struct {
	Nonce     uint64
	LUSD      uint64
	LJUN      uint64
	NativeGas uint64

	// CustomBalances maps a 1-16 char ticker to its balance. Encoded in
	// sorted-ticker order for determinism (spec §6).
	CustomBalances map[string]uint64

	// Commitment is set by ConfidentialTransfer; nil means unset.
	Commitment *Hash

	// PasskeyDeviceKey is the current device authenticator, if any.
	PasskeyDeviceKey []byte

	// Guardians is ordered; RecoverSocial consumes each at most once.
	Guardians []Address

	// PQPubkey is set by SwitchToPQSignature.
	PQPubkey []byte

	EpochTxVolume   uint64
	LastRewardEpoch uint64

	// CreditScore is 300-850 once scored, 0 if unscored.
	CreditScore uint16

	ActiveStreams   []StreamEscrow
	YieldPositions  []YieldPosition

	// PendingFlashMint/PendingFlashCollateral are strictly per-block
	// (spec §3 Lifecycle, Open Question F1).
	PendingFlashMint       uint64
	PendingFlashCollateral uint64
}

// NewAccount returns a zero-value account with initialized maps, matching
// the "accounts are created on first credit" lifecycle rule (spec §3).
func NewAccount() *Account {
	return &Account{CustomBalances: make(map[string]uint64)}
}

// Clone deep-copies an account so the transaction pipeline can restore
// pre-tx state on any error without aliasing slices/maps (spec §4.E
// atomic frame requirement).
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	out := *a
	if a.CustomBalances != nil {
		out.CustomBalances = make(map[string]uint64, len(a.CustomBalances))
		for k, v := range a.CustomBalances {
			out.CustomBalances[k] = v
		}
	}
	if a.Commitment != nil {
		c := *a.Commitment
		out.Commitment = &c
	}
	if a.PasskeyDeviceKey != nil {
		out.PasskeyDeviceKey = append([]byte(nil), a.PasskeyDeviceKey...)
	}
	if a.Guardians != nil {
		out.Guardians = append([]Address(nil), a.Guardians...)
	}
	if a.PQPubkey != nil {
		out.PQPubkey = append([]byte(nil), a.PQPubkey...)
	}
	if a.ActiveStreams != nil {
		out.ActiveStreams = append([]StreamEscrow(nil), a.ActiveStreams...)
	}
	if a.YieldPositions != nil {
		out.YieldPositions = append([]YieldPosition(nil), a.YieldPositions...)
	}
	return &out
}

// StreamEscrow is an outgoing continuous-payment escrow created by
// StreamPayment (spec §3).
type StreamEscrow struct {
	Recipient   Address
	PerSecond   uint64
	StartTS     uint64
	EndTS       uint64
	Withdrawn   uint64
}

// YieldPosition is created by WrapToYieldToken and removed by
// UnwrapYieldToken (spec §3 Lifecycle).
type YieldPosition struct {
	TokenID        uint64
	Principal      uint64
	IssuedHeight   uint64
	MaturityHeight uint64
}
