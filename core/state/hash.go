// Package state implements the canonical state commitment: deterministic
// binary encoding, the nibble-trie account commitment, and the
// transaction Merkle root (spec §4.B, §6).
package state

import (
	"golang.org/x/crypto/sha3"

	"github.com/luminachain/core/core/types"
)

// Hash256 is the single 32-byte cryptographic hash function used for
// tx-id, Merkle roots, trie node hashes, and replay-protection tags
// (spec §6). Swapping this implementation changes every commitment the
// chain has ever produced, so it lives in exactly one place.
func Hash256(parts ...[]byte) types.Hash {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var out types.Hash
	h.Sum(out[:0])
	return out
}

// ZeroHash is the canonical root of an empty trie or empty tx list.
var ZeroHash = types.Hash{}
