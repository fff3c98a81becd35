package types

// RWAListing is a real-world-asset collateral listing (spec §3), keyed by
// an auto-incrementing id assigned by ListRWA.
type RWAListing struct {
	ID                uint64
	Owner             Address
	Description       string
	Attestation       []byte
	AttestedValue     uint64
	MaturityDate      *uint64
	CollateralEligible bool
	IsActive          bool
	PledgedAmount     uint64
}

// Validator is a staked block-proposal participant. GreenValidators get
// doubled effective power (spec §4.D RegisterGreenValidator).
type Validator struct {
	Pubkey      [32]byte
	Stake       uint64
	Power       uint64
	IsGreen     bool
	EnergyProof []byte
}

// Custodian holds reserve collateral behind one or more MPC keys.
type Custodian struct {
	Pubkey         [32]byte
	Stake          uint64
	MPCPubkeys     [][]byte
	RegisteredAt   uint64
}

// RedemptionRequest is a FIFO entry in GlobalState.FairRedeemQueue.
type RedemptionRequest struct {
	Address   Address
	Amount    uint64
	Timestamp uint64
}

// GlobalState is the entire mutable world-state the executor operates on
// (spec §3). Accounts is keyed by Address; all other maps/sets use
// Go's native map type but MUST be iterated in sorted-key order whenever
// the result feeds a hash or another deterministic computation (spec §6).
type GlobalState struct {
	Accounts map[Address]*Account

	TotalLUSDSupply        uint64
	TotalLJUNSupply        uint64
	StabilizationPool      uint64
	ReserveRatioBps        uint64 // fixed-point; see core/executor/ratio.go
	OraclePrices           map[string]uint64

	Validators  []Validator
	Custodians  []Custodian

	CircuitBreakerActive bool
	FairRedeemQueue      []RedemptionRequest

	LastRebalanceHeight uint64
	InsuranceFund       uint64

	LastReserveRotationHeight uint64

	// ComplianceCircuits maps a circuit id to its opaque verifier key.
	ComplianceCircuits map[string][]byte

	RWAListings map[uint64]*RWAListing
	NextRWAID   uint64

	TrustedCreditOracles []string
	UsedCreditProofs     map[Hash]struct{}

	NextYieldTokenID uint64

	HealthIndex uint64

	PendingFlashMints uint64

	CurrentEpoch       uint64
	VelocityRewardPool uint64

	LastPoRTimestamp uint64
	LastPoRHash      Hash

	ExecutedBatchMatches map[Hash]struct{}
}

// NewGlobalState returns an empty genesis-shaped state: zero supply means
// ReserveRatioBps defaults to 1.0 (10000 bps) per the spec's "1.0 when
// supply is 0" rule.
func NewGlobalState() *GlobalState {
	return &GlobalState{
		Accounts:             make(map[Address]*Account),
		OraclePrices:         make(map[string]uint64),
		ComplianceCircuits:   make(map[string][]byte),
		RWAListings:          make(map[uint64]*RWAListing),
		UsedCreditProofs:     make(map[Hash]struct{}),
		ExecutedBatchMatches: make(map[Hash]struct{}),
		ReserveRatioBps:      10000,
	}
}

// GetOrCreateAccount implements the "accounts are created on first credit,
// passkey registration, or guardian-targeted lookup; never destroyed"
// lifecycle rule (spec §3).
func (g *GlobalState) GetOrCreateAccount(addr Address) *Account {
	if acc, ok := g.Accounts[addr]; ok {
		return acc
	}
	acc := NewAccount()
	g.Accounts[addr] = acc
	return acc
}

// SortedAddresses returns every account address in ascending order, used
// by DistributeYield and the state trie builder for deterministic
// iteration (spec §4.D, §4.B).
func (g *GlobalState) SortedAddresses() []Address {
	addrs := make([]Address, 0, len(g.Accounts))
	for a := range g.Accounts {
		addrs = append(addrs, a)
	}
	return SortAddresses(addrs)
}

// Clone deep-copies the entire state so the transaction pipeline and
// block importer can operate on a scratch copy and only commit on
// success (spec §4.E, §4.F).
func (g *GlobalState) Clone() *GlobalState {
	out := &GlobalState{
		Accounts:                  make(map[Address]*Account, len(g.Accounts)),
		TotalLUSDSupply:           g.TotalLUSDSupply,
		TotalLJUNSupply:           g.TotalLJUNSupply,
		StabilizationPool:         g.StabilizationPool,
		ReserveRatioBps:           g.ReserveRatioBps,
		OraclePrices:              make(map[string]uint64, len(g.OraclePrices)),
		Validators:                append([]Validator(nil), g.Validators...),
		Custodians:                append([]Custodian(nil), g.Custodians...),
		CircuitBreakerActive:      g.CircuitBreakerActive,
		FairRedeemQueue:           append([]RedemptionRequest(nil), g.FairRedeemQueue...),
		LastRebalanceHeight:       g.LastRebalanceHeight,
		InsuranceFund:             g.InsuranceFund,
		LastReserveRotationHeight: g.LastReserveRotationHeight,
		ComplianceCircuits:        make(map[string][]byte, len(g.ComplianceCircuits)),
		RWAListings:               make(map[uint64]*RWAListing, len(g.RWAListings)),
		NextRWAID:                 g.NextRWAID,
		TrustedCreditOracles:      append([]string(nil), g.TrustedCreditOracles...),
		UsedCreditProofs:          make(map[Hash]struct{}, len(g.UsedCreditProofs)),
		NextYieldTokenID:          g.NextYieldTokenID,
		HealthIndex:               g.HealthIndex,
		PendingFlashMints:         g.PendingFlashMints,
		CurrentEpoch:              g.CurrentEpoch,
		VelocityRewardPool:        g.VelocityRewardPool,
		LastPoRTimestamp:          g.LastPoRTimestamp,
		LastPoRHash:               g.LastPoRHash,
		ExecutedBatchMatches:      make(map[Hash]struct{}, len(g.ExecutedBatchMatches)),
	}
	for k, v := range g.Accounts {
		out.Accounts[k] = v.Clone()
	}
	for k, v := range g.OraclePrices {
		out.OraclePrices[k] = v
	}
	for k, v := range g.ComplianceCircuits {
		out.ComplianceCircuits[k] = append([]byte(nil), v...)
	}
	for k, v := range g.RWAListings {
		l := *v
		out.RWAListings[k] = &l
	}
	for k := range g.UsedCreditProofs {
		out.UsedCreditProofs[k] = struct{}{}
	}
	for k := range g.ExecutedBatchMatches {
		out.ExecutedBatchMatches[k] = struct{}{}
	}
	return out
}
