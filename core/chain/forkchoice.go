package chain

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/luminachain/core/core/types"
)

// snapshotCacheSize bounds the fork-choice's recently-rebuilt-state cache;
// a reorg replays states_by_hash for every block from height 1 up to the
// new tip, and a deep reorg benefits from not re-fetching a state it
// already held moments ago.
const snapshotCacheSize = 256

// ForkChoice tracks the current tip and performs the reorg procedure from
// spec §4.G: a candidate block beats the current tip if its height is
// greater, or its height ties and its hash is lexicographically greater
// (the tiebreak spec §4.G specifies to keep the rule total and
// deterministic across honest implementations).
type ForkChoice struct {
	storage Storage
	cache   *lru.Cache[types.Hash, *types.GlobalState]
}

func NewForkChoice(storage Storage) *ForkChoice {
	cache, err := lru.New[types.Hash, *types.GlobalState](snapshotCacheSize)
	if err != nil {
		panic(err) // only returns an error for a non-positive size, which snapshotCacheSize never is
	}
	return &ForkChoice{storage: storage, cache: cache}
}

// Consider evaluates a newly-imported block as a tip candidate and, if it
// wins, rewrites the canonical chain from height 1 up to the new tip
// (spec §4.G). It reports whether the canonical chain actually changed;
// the first block to become tip counts as a change.
func (f *ForkChoice) Consider(height uint64, hash types.Hash) (bool, error) {
	curHeight, curHash, hasTip, err := f.storage.LoadTip()
	if err != nil {
		return false, errors.Wrap(err, "load tip")
	}

	if hasTip && !beats(height, hash, curHeight, curHash) {
		return false, nil
	}

	chain, err := f.walkToGenesis(hash)
	if err != nil {
		return false, errors.Wrap(err, "walk to genesis")
	}

	for _, step := range chain {
		st, ok := f.cache.Get(step.hash)
		if !ok {
			loaded, found, err := f.storage.LoadStateByHash(step.hash)
			if err != nil {
				return false, errors.Wrap(err, "load state by hash")
			}
			if !found {
				return false, errors.Errorf("fork choice: missing state for block %s at height %d", step.hash.Hex(), step.height)
			}
			st = loaded
		}
		if err := f.storage.SaveCanonicalBlockAtHeight(step.height, step.hash); err != nil {
			return false, errors.Wrap(err, "save canonical")
		}
		if err := f.storage.SaveStateAtHeight(step.height, st); err != nil {
			return false, errors.Wrap(err, "save state at height")
		}
		f.cache.Add(step.hash, st)
		if step.hash == hash {
			if err := f.storage.SaveState(st); err != nil {
				return false, errors.Wrap(err, "save latest state")
			}
		}
	}

	if err := f.storage.SaveTip(height, hash); err != nil {
		return false, errors.Wrap(err, "save tip")
	}
	reorged := !hasTip || curHash != hash
	return reorged, nil
}

type chainStep struct {
	height uint64
	hash   types.Hash
}

// walkToGenesis follows parent_hash links from hash back to height 1,
// returning the path genesis-first so callers can replay canonical[h]
// and states_by_height[h] forward in ascending order (spec §4.G).
func (f *ForkChoice) walkToGenesis(hash types.Hash) ([]chainStep, error) {
	var steps []chainStep
	cur := hash
	for {
		meta, ok, err := f.storage.LoadBlockMeta(cur)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Errorf("fork choice: missing block meta for %s", cur.Hex())
		}
		steps = append(steps, chainStep{height: meta.Height, hash: cur})
		if meta.Height <= 1 {
			break
		}
		cur = meta.ParentHash
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}

// beats implements the §4.G tip-selection rule: greater height wins
// outright; a tied height falls back to the lexicographically greater
// hash so the choice is total and independent of arrival order.
func beats(candHeight uint64, candHash types.Hash, tipHeight uint64, tipHash types.Hash) bool {
	if candHeight != tipHeight {
		return candHeight > tipHeight
	}
	return bytes.Compare(candHash[:], tipHash[:]) > 0
}
