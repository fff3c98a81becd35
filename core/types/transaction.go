package types

// Transaction is a signed instruction from sender at a given nonce
// (spec §4.A). The signing preimage excludes Signature itself.
type Transaction struct {
	Sender      Address
	Nonce       uint64
	Instruction Instruction
	Signature   []byte
	GasLimit    uint64
	GasPrice    uint64
}

// The transaction id, hash(signing_preimage || signature) (spec §4.A), is
// computed by core/state.TxID since that package owns the canonical hash
// function; this type only describes the shape.
