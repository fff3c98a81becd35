package chain

import (
	"github.com/erigontech/erigon-lib/log/v3"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/executor"
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
)

// Build implements spec §4.F "Build": starting from parentState, run each
// tx through ExecuteTransaction, dropping failures (a failing tx is simply
// not included, per spec §7 "Inside block build: failing txs are dropped
// from the block"). parentState is mutated in place to become the new
// block's post-state; callers that need the pre-state preserved must
// clone it first (the block importer does exactly that).
func Build(parentState *types.GlobalState, proposal types.Proposal, verifiers crypto.Verifiers) (*types.Block, error) {
	ctx := &executor.Context{State: parentState, Height: proposal.Height, Timestamp: proposal.Timestamp, Verifiers: verifiers}

	committed := make([]*types.Transaction, 0, len(proposal.Txs))
	for _, tx := range proposal.Txs {
		if err := ExecuteTransaction(tx, ctx); err != nil {
			log.Debug("dropping tx from block proposal", "sender", tx.Sender.Hex(), "nonce", tx.Nonce, "err", err)
			continue
		}
		committed = append(committed, tx)
	}
	if len(committed) == 0 {
		return nil, executor.ErrEmptyBlock()
	}

	executor.EndBlock(parentState)

	txRoot := state.TransactionsRoot(state.TxIDs(committed))
	stateRoot := state.Root(parentState.Accounts)

	block := &types.Block{
		Header: types.Header{
			Height:           proposal.Height,
			PrevHash:         proposal.ParentHash,
			TransactionsRoot: txRoot,
			StateRoot:        stateRoot,
			Timestamp:        proposal.Timestamp,
			Proposer:         proposal.Proposer,
		},
		Body: types.Body{
			Transactions: committed,
			Votes:        nil,
		},
	}
	log.Info("block built", "height", block.Header.Height, "txs", len(committed), "state_root", stateRoot.Hex())
	return block, nil
}
