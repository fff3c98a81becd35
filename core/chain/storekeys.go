package chain

// Key namespaces for the storage interface (spec §6). Naming mirrors the
// teacher's flat string-constant table layout (erigon-lib/kv.Code,
// kv.HeaderNumber, ...) rather than typed bucket handles, so a concrete
// KV backend can map each one onto a bucket/prefix of its choosing.
const (
	TableBlocks       = "Blocks"       // hash -> encoded Block
	TableBlockMeta    = "BlockMeta"    // hash -> (height, parent_hash)
	TableStateByHash  = "StateByHash"  // hash -> encoded GlobalState
	TableStateByHeight = "StateByHeight" // height -> encoded GlobalState (canonical only)
	TableCanonical    = "Canonical"    // height -> hash
	TableTip          = "Tip"          // singleton -> (height, hash)
	TableLatestState  = "LatestState"  // singleton -> encoded GlobalState
)
