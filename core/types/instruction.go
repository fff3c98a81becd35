package types

// Instruction is implemented by every one of the ~40 stablecoin
// operations (spec §4.D). It carries no behavior itself — dispatch lives
// in core/executor — only a stable discriminant for encoding and logs.
type Instruction interface {
	Kind() InstructionKind
}

type InstructionKind uint8

const (
	KindRegisterAsset InstructionKind = iota
	KindMintSenior
	KindRedeemSenior
	KindMintJunior
	KindRedeemJunior
	KindBurn
	KindTransfer
	KindRebalanceTranches
	KindDistributeYield
	KindTriggerStabilizer
	KindRunCircuitBreaker
	KindFairRedeemQueue
	KindConfidentialTransfer
	KindProveCompliance
	KindZkTaxAttest
	KindMultiJurisdictionalCheck
	KindUpdateOracle
	KindSubmitZkPoR
	KindInstantFiatBridge
	KindZeroSlipBatchMatch
	KindDynamicHedge
	KindGeoRebalance
	KindVelocityIncentive
	KindStreamPayment
	KindRegisterValidator
	KindVote
	KindCreatePasskeyAccount
	KindRecoverSocial
	KindSwitchToPQSignature
	KindRegisterGreenValidator
	KindUploadComplianceCircuit
	KindRegisterCustodian
	KindRotateReserves
	KindClaimInsurance
	KindFlashMint
	KindFlashBurn
	KindInstantRedeem
	KindMintWithCreditScore
	KindWrapToYieldToken
	KindUnwrapYieldToken
	KindListRWA
	KindUseRWAAsCollateral
	KindComputeHealthIndex
)

type RegisterAsset struct {
	Ticker   string
	Decimals uint8
}

func (RegisterAsset) Kind() InstructionKind { return KindRegisterAsset }

type MintSenior struct {
	Amount           uint64
	CollateralAmount uint64
	Proof            []byte
}

func (MintSenior) Kind() InstructionKind { return KindMintSenior }

type RedeemSenior struct{ Amount uint64 }

func (RedeemSenior) Kind() InstructionKind { return KindRedeemSenior }

type MintJunior struct {
	Amount           uint64
	CollateralAmount uint64
}

func (MintJunior) Kind() InstructionKind { return KindMintJunior }

type RedeemJunior struct{ Amount uint64 }

func (RedeemJunior) Kind() InstructionKind { return KindRedeemJunior }

type Burn struct {
	Amount uint64
	Asset  AssetKind
	Ticker string // used when Asset == AssetCustom
}

func (Burn) Kind() InstructionKind { return KindBurn }

type Transfer struct {
	To     Address
	Amount uint64
	Asset  AssetKind
	Ticker string
}

func (Transfer) Kind() InstructionKind { return KindTransfer }

type RebalanceTranches struct{}

func (RebalanceTranches) Kind() InstructionKind { return KindRebalanceTranches }

type DistributeYield struct{ Yield uint64 }

func (DistributeYield) Kind() InstructionKind { return KindDistributeYield }

type TriggerStabilizer struct{}

func (TriggerStabilizer) Kind() InstructionKind { return KindTriggerStabilizer }

type RunCircuitBreaker struct{ Active bool }

func (RunCircuitBreaker) Kind() InstructionKind { return KindRunCircuitBreaker }

type FairRedeemQueue struct{ BatchSize uint32 }

func (FairRedeemQueue) Kind() InstructionKind { return KindFairRedeemQueue }

type ConfidentialTransfer struct {
	Commitment Hash
	Proof      []byte
}

func (ConfidentialTransfer) Kind() InstructionKind { return KindConfidentialTransfer }

type ProveCompliance struct {
	TxHash Hash
	Proof  []byte
}

func (ProveCompliance) Kind() InstructionKind { return KindProveCompliance }

type ZkTaxAttest struct {
	Period uint64
	Proof  []byte
}

func (ZkTaxAttest) Kind() InstructionKind { return KindZkTaxAttest }

type MultiJurisdictionalCheck struct {
	JurisdictionID uint32
	Proof          []byte
}

func (MultiJurisdictionalCheck) Kind() InstructionKind { return KindMultiJurisdictionalCheck }

type UpdateOracle struct {
	Asset string
	Price uint64
}

func (UpdateOracle) Kind() InstructionKind { return KindUpdateOracle }

type SubmitZkPoR struct {
	Proof         []byte
	TotalReserves uint64
	Timestamp     uint64
}

func (SubmitZkPoR) Kind() InstructionKind { return KindSubmitZkPoR }

type InstantFiatBridge struct{ Amount uint64 }

func (InstantFiatBridge) Kind() InstructionKind { return KindInstantFiatBridge }

type ZeroSlipBatchMatch struct{ Orders [][]byte }

func (ZeroSlipBatchMatch) Kind() InstructionKind { return KindZeroSlipBatchMatch }

type DynamicHedge struct{ RatioBps uint32 }

func (DynamicHedge) Kind() InstructionKind { return KindDynamicHedge }

type GeoRebalance struct{ ZoneID uint32 }

func (GeoRebalance) Kind() InstructionKind { return KindGeoRebalance }

type VelocityIncentive struct{ MultiplierBps uint32 }

func (VelocityIncentive) Kind() InstructionKind { return KindVelocityIncentive }

type StreamPayment struct {
	To        Address
	PerSecond uint64
	Duration  uint64
}

func (StreamPayment) Kind() InstructionKind { return KindStreamPayment }

type RegisterValidator struct {
	Pubkey [32]byte
	Stake  uint64
}

func (RegisterValidator) Kind() InstructionKind { return KindRegisterValidator }

type Vote struct {
	ProposalID uint64
	Approve    bool
}

func (Vote) Kind() InstructionKind { return KindVote }

type CreatePasskeyAccount struct {
	DeviceKey []byte
	Guardians []Address
}

func (CreatePasskeyAccount) Kind() InstructionKind { return KindCreatePasskeyAccount }

type RecoverSocial struct {
	NewDeviceKey []byte
	Signatures   [][]byte
}

func (RecoverSocial) Kind() InstructionKind { return KindRecoverSocial }

type SwitchToPQSignature struct{ PQPubkey []byte }

func (SwitchToPQSignature) Kind() InstructionKind { return KindSwitchToPQSignature }

type RegisterGreenValidator struct{ EnergyProof []byte }

func (RegisterGreenValidator) Kind() InstructionKind { return KindRegisterGreenValidator }

type UploadComplianceCircuit struct {
	ID          string
	VerifierKey []byte
}

func (UploadComplianceCircuit) Kind() InstructionKind { return KindUploadComplianceCircuit }

type RegisterCustodian struct {
	Stake uint64
	MPC   [][]byte
}

func (RegisterCustodian) Kind() InstructionKind { return KindRegisterCustodian }

type RotateReserves struct{ Set [][32]byte }

func (RotateReserves) Kind() InstructionKind { return KindRotateReserves }

type ClaimInsurance struct {
	Proof  []byte
	Amount uint64
}

func (ClaimInsurance) Kind() InstructionKind { return KindClaimInsurance }

type FlashMint struct {
	Amount           uint64
	CollateralAsset  string
	CollateralAmount uint64
	Commitment       Hash
}

func (FlashMint) Kind() InstructionKind { return KindFlashMint }

type FlashBurn struct{ Amount uint64 }

func (FlashBurn) Kind() InstructionKind { return KindFlashBurn }

type InstantRedeem struct {
	Amount      uint64
	Destination Address
}

func (InstantRedeem) Kind() InstructionKind { return KindInstantRedeem }

type MintWithCreditScore struct {
	Amount           uint64
	CollateralAmount uint64
	Proof            []byte
	MinThreshold     uint16
	Oracle           string
}

func (MintWithCreditScore) Kind() InstructionKind { return KindMintWithCreditScore }

type WrapToYieldToken struct {
	Amount   uint64
	Maturity uint64
}

func (WrapToYieldToken) Kind() InstructionKind { return KindWrapToYieldToken }

type UnwrapYieldToken struct{ TokenID uint64 }

func (UnwrapYieldToken) Kind() InstructionKind { return KindUnwrapYieldToken }

type ListRWA struct {
	Description        string
	Attestation         []byte
	AttestedValue        uint64
	MaturityDate         *uint64
	CollateralEligible   bool
}

func (ListRWA) Kind() InstructionKind { return KindListRWA }

type UseRWAAsCollateral struct {
	RWAID  uint64
	Pledge uint64
}

func (UseRWAAsCollateral) Kind() InstructionKind { return KindUseRWAAsCollateral }

type ComputeHealthIndex struct{}

func (ComputeHealthIndex) Kind() InstructionKind { return KindComputeHealthIndex }
