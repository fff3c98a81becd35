package types

// Header is the canonical, hashed-over portion of a block (spec §4.F).
type Header struct {
	Height           uint64
	PrevHash         Hash
	TransactionsRoot Hash
	StateRoot        Hash
	Timestamp        uint64
	Proposer         Address
}

// BlockVote is populated by the external consensus collaborator; the core
// never inspects its contents (spec §1 non-goals, §4.F Body). It is
// distinct from the Vote instruction in instruction.go.
type BlockVote struct {
	Validator [32]byte
	Signature []byte
}

// Body holds the ordered transactions actually committed into the block
// plus the externally-supplied vote set.
type Body struct {
	Transactions []*Transaction
	Votes        []BlockVote
}

// Block is a Header plus Body. Its hash commits only the Header (the
// Body's transactions are already bound in via TransactionsRoot).
type Block struct {
	Header Header
	Body   Body
}

// Proposal is what the external consensus driver hands the builder: an
// ordered batch of transactions to attempt at a given height (spec §1).
type Proposal struct {
	Height    uint64
	ParentHash Hash
	Proposer  Address
	Timestamp uint64
	Txs       []*Transaction
}

// BlockMeta is the persisted (height, parent_hash) pair for a known
// block hash (spec §6 storage interface).
type BlockMeta struct {
	Height     uint64
	ParentHash Hash
}
