package chain

import (
	"golang.org/x/sync/errgroup"

	"github.com/luminachain/core/core/crypto"
	"github.com/luminachain/core/core/executor"
	"github.com/luminachain/core/core/state"
	"github.com/luminachain/core/core/types"
)

// ExecuteTransaction runs the three-step pipeline from spec §4.E:
// signature verification, nonce-based replay protection, then dispatch.
// All three steps execute under an atomic frame: the state is cloned
// beforehand and only the clone's mutations are committed back into
// ctx.State on success, so a failing tx leaves the caller's state
// byte-for-byte as it was (spec §8 property 2, atomic rollback).
func ExecuteTransaction(tx *types.Transaction, ctx *executor.Context) error {
	scratch := ctx.State.Clone()
	scratchCtx := &executor.Context{State: scratch, Height: ctx.Height, Timestamp: ctx.Timestamp, Verifiers: ctx.Verifiers}

	if err := verifySignature(tx, scratch); err != nil {
		return err
	}

	acc := scratch.GetOrCreateAccount(tx.Sender)
	if tx.Nonce != acc.Nonce {
		return executor.ErrNonceMismatch(acc.Nonce, tx.Nonce)
	}
	nextNonce, overflow := addNonce(acc.Nonce)
	if overflow {
		return executor.ErrOverflow("nonce")
	}
	acc.Nonce = nextNonce

	if err := executor.Execute(tx.Instruction, tx.Sender, scratchCtx); err != nil {
		return err
	}

	*ctx.State = *scratch
	return nil
}

// readNonce is a read-only nonce lookup safe for concurrent pre-check
// goroutines: unlike GlobalState.GetOrCreateAccount, it never mutates the
// Accounts map (spec §5: pre-check performs "independent ... nonce-
// equality reads over a snapshot of per-account state; no writes occur in
// parallel").
func readNonce(s *types.GlobalState, addr types.Address) uint64 {
	if acc, ok := s.Accounts[addr]; ok {
		return acc.Nonce
	}
	return 0
}

func addNonce(n uint64) (uint64, bool) {
	if n == ^uint64(0) {
		return 0, true
	}
	return n + 1, false
}

// verifySignature implements spec §4.E step 1: PQ verification if the
// sender has switched to a PQ key, else classical verification against
// the sender address as the verifying key.
func verifySignature(tx *types.Transaction, s *types.GlobalState) error {
	signingBytes := state.SigningPreimage(tx)
	acc, known := s.Accounts[tx.Sender]
	if known && len(acc.PQPubkey) > 0 {
		if err := crypto.VerifyPQ(acc.PQPubkey, signingBytes, tx.Signature); err != nil {
			return executor.ErrCryptoInvalid(err.Error())
		}
		return nil
	}
	if err := crypto.VerifyClassical([32]byte(tx.Sender), signingBytes, tx.Signature); err != nil {
		return executor.ErrCryptoInvalid(err.Error())
	}
	return nil
}

// precheckResult is the outcome of the parallel pre-check for one
// candidate transaction (spec §4.E "Parallel pre-check").
type precheckResult struct {
	index int
	err   error
}

// ParallelPrecheck scans txs once, marks each pure Transfer whose sender
// and recipient appear in no earlier tx of the list (as the sender of any
// tx, or as the recipient of a Transfer) as eligible, and runs
// signature+nonce-equality checks for
// eligible txs concurrently via errgroup — an acceleration only. The
// actual application of every tx still happens serially afterward via
// ExecuteTransaction, so a pre-check failure is never surfaced on its
// own; it is purely advisory and discarded once serial execution begins.
func ParallelPrecheck(txs []*types.Transaction, snapshot *types.GlobalState) []error {
	results := make([]error, len(txs))
	seen := make(map[types.Address]struct{})
	eligible := make([]int, 0, len(txs))

	for i, tx := range txs {
		transfer, ok := tx.Instruction.(types.Transfer)
		if !ok {
			seen[tx.Sender] = struct{}{}
			continue
		}
		if _, conflict := seen[tx.Sender]; conflict {
			seen[tx.Sender] = struct{}{}
			seen[transfer.To] = struct{}{}
			continue
		}
		if _, conflict := seen[transfer.To]; conflict {
			seen[tx.Sender] = struct{}{}
			seen[transfer.To] = struct{}{}
			continue
		}
		seen[tx.Sender] = struct{}{}
		seen[transfer.To] = struct{}{}
		eligible = append(eligible, i)
	}

	var g errgroup.Group
	resultCh := make(chan precheckResult, len(eligible))
	for _, idx := range eligible {
		idx := idx
		g.Go(func() error {
			tx := txs[idx]
			err := verifySignature(tx, snapshot)
			if err == nil {
				expected := readNonce(snapshot, tx.Sender)
				if tx.Nonce != expected {
					err = executor.ErrNonceMismatch(expected, tx.Nonce)
				}
			}
			resultCh <- precheckResult{index: idx, err: err}
			return nil
		})
	}
	_ = g.Wait()
	close(resultCh)
	for r := range resultCh {
		results[r.index] = r.err
	}
	return results
}
