// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package state

import (
	"fmt"

	"github.com/luminachain/core/core/types"
)

// SnapshotReader is a read-only accessor over one committed GlobalState
// snapshot. It is what an external observer (an RPC server, a block
// explorer) is handed instead of direct state access: readers see only
// committed snapshots, never mid-block state (spec §5 concurrency
// model). Adapted from the teacher's HistoryReaderV3, which served the
// same "read a historical point-in-time view" role against a temporal
// key-value store; here the point in time is a block hash rather than a
// tx-num, and the backing store is an in-memory snapshot map rather than
// an on-disk history index.
type SnapshotReader struct {
	hash  types.Hash
	state *types.GlobalState
	trace bool
}

func NewSnapshotReader() *SnapshotReader { return &SnapshotReader{} }

func (r *SnapshotReader) String() string { return fmt.Sprintf("snapshot:%s", r.hash.Hex()) }

func (r *SnapshotReader) SetSnapshot(hash types.Hash, s *types.GlobalState) {
	r.hash = hash
	r.state = s
}

func (r *SnapshotReader) Hash() types.Hash { return r.hash }
func (r *SnapshotReader) SetTrace(t bool)  { r.trace = t }

// ReadAccount returns the account at address in this snapshot, or nil if
// it has never been created (spec §3 Lifecycle: accounts are never
// destroyed, so nil unambiguously means "never created").
func (r *SnapshotReader) ReadAccount(address types.Address) (*types.Account, error) {
	if r.state == nil {
		return nil, fmt.Errorf("snapshot reader: no snapshot bound")
	}
	acc, ok := r.state.Accounts[address]
	if !ok {
		if r.trace {
			fmt.Printf("ReadAccount [%x] => <absent>\n", address)
		}
		return nil, nil
	}
	if r.trace {
		fmt.Printf("ReadAccount [%x] => [nonce: %d, lusd: %d, ljun: %d]\n", address, acc.Nonce, acc.LUSD, acc.LJUN)
	}
	return acc, nil
}

// ReadHealthIndex and ReadReserveRatioBps expose the two most commonly
// polled aggregates without handing out the whole mutable state.
func (r *SnapshotReader) ReadHealthIndex() uint64 {
	if r.state == nil {
		return 0
	}
	return r.state.HealthIndex
}

func (r *SnapshotReader) ReadReserveRatioBps() uint64 {
	if r.state == nil {
		return 10000
	}
	return r.state.ReserveRatioBps
}
