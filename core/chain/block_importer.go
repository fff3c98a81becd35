package chain

import (
	"github.com/erigontech/erigon-lib/log/v3"
	"github.com/pkg/errors"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/executor"
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
)

// Chain bundles storage and fork-choice bookkeeping around Build/Import,
// the same shape as the teacher's embedding of a kv handle plus
// in-memory indices inside one struct passed down a call chain.
type Chain struct {
	Storage   Storage
	Verifiers crypto.Verifiers
	forks     *ForkChoice
}

func NewChain(storage Storage, verifiers crypto.Verifiers) *Chain {
	return &Chain{Storage: storage, Verifiers: verifiers, forks: NewForkChoice(storage)}
}

// Import implements spec §4.F "Import" steps 1-9.
func (c *Chain) Import(block *types.Block) (reorged bool, err error) {
	hash := state.BlockHash(block.Header)

	if _, known, err := c.Storage.LoadBlockMeta(hash); err != nil {
		return false, errors.Wrap(err, "load block meta")
	} else if known {
		return false, nil
	}

	if block.Header.Height < 1 {
		return false, executor.ErrInvalidArgument("height must be >= 1")
	}

	if block.Header.Height > 1 {
		if _, known, err := c.Storage.LoadBlockMeta(block.Header.PrevHash); err != nil {
			return false, errors.Wrap(err, "load parent block meta")
		} else if !known {
			return false, executor.ErrMissingParentBlock(block.Header.PrevHash.Hex())
		}
	}

	computedTxRoot := state.TransactionsRoot(state.TxIDs(block.Body.Transactions))
	if computedTxRoot != block.Header.TransactionsRoot {
		return false, executor.ErrInvalidTxRoot()
	}

	var parentState *types.GlobalState
	if block.Header.Height == 1 {
		parentState = types.NewGlobalState()
	} else {
		loaded, ok, err := c.Storage.LoadStateByHash(block.Header.PrevHash)
		if err != nil {
			return false, errors.Wrap(err, "load parent state")
		}
		if !ok {
			return false, executor.ErrMissingParentState(block.Header.PrevHash.Hex())
		}
		parentState = loaded
	}

	scratch := parentState.Clone()
	ctx := &executor.Context{State: scratch, Height: block.Header.Height, Timestamp: block.Header.Timestamp, Verifiers: c.Verifiers}
	for i, tx := range block.Body.Transactions {
		if err := ExecuteTransaction(tx, ctx); err != nil {
			return false, executor.ErrInvalidBlockTx(i, err)
		}
	}
	executor.EndBlock(scratch)

	root := state.Root(scratch.Accounts)
	if root != block.Header.StateRoot {
		return false, executor.ErrInvalidStateRoot()
	}

	if err := c.Storage.SaveBlock(block); err != nil {
		return false, errors.Wrap(err, "save block")
	}
	if err := c.Storage.SaveBlockMeta(hash, types.BlockMeta{Height: block.Header.Height, ParentHash: block.Header.PrevHash}); err != nil {
		return false, errors.Wrap(err, "save block meta")
	}
	if err := c.Storage.SaveStateByHash(hash, scratch); err != nil {
		return false, errors.Wrap(err, "save state by hash")
	}

	reorged, err = c.forks.Consider(block.Header.Height, hash)
	if err != nil {
		return false, errors.Wrap(err, "fork choice")
	}
	log.Info("block imported", "height", block.Header.Height, "hash", hash.Hex(), "reorg", reorged)
	return reorged, nil
}
