package state

import "github.com/luminachain/core/core/types"

// TransactionsRoot computes the Merkle binary tree root over tx ids:
// odd levels duplicate the last node; the root of an empty list is the
// all-zero value (spec §4.B).
func TransactionsRoot(ids []types.Hash) types.Hash {
	if len(ids) == 0 {
		return ZeroHash
	}
	level := make([]types.Hash, len(ids))
	copy(level, ids)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]types.Hash, len(level)/2)
		for i := 0; i < len(next); i++ {
			next[i] = Hash256(level[2*i].Bytes(), level[2*i+1].Bytes())
		}
		level = next
	}
	return level[0]
}

// TxIDs maps a transaction slice to their ids in order, the input to
// TransactionsRoot.
func TxIDs(txs []*types.Transaction) []types.Hash {
	ids := make([]types.Hash, len(txs))
	for i, tx := range txs {
		ids[i] = TxID(tx)
	}
	return ids
}
