package types

import (
	"encoding/hex"
	"sort"
)

// Hash is a 32-byte digest produced by the single global hash function
// (spec §6). Address is a 32-byte account identifier; core/crypto's
// classical verifier reads it as the x-coordinate of an even-y secp256k1
// public key. This package does not derive addresses from keys.
type Hash [32]byte

type Address [32]byte

func (h Hash) Bytes() []byte { return h[:] }
func (a Address) Bytes() []byte { return a[:] }

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (h Hash) IsZero() bool { return h == Hash{} }
func (a Address) IsZero() bool { return a == Address{} }

// Less gives Address a total order, used everywhere the spec requires
// "sorted by address" iteration (DistributeYield, trie construction).
func (a Address) Less(b Address) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// BytesToAddress left-truncates/pads like the teacher's common.BytesToAddress.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > len(a) {
		b = b[len(b)-len(a):]
	}
	copy(a[len(a)-len(b):], b)
	return a
}

func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > len(h) {
		b = b[len(b)-len(h):]
	}
	copy(h[len(h)-len(b):], b)
	return h
}

// SortAddresses returns a new sorted copy, used by callers that need
// deterministic iteration order over a set of addresses (spec: "Iteration
// order over accounts must be sorted by address to preserve determinism").
func SortAddresses(addrs []Address) []Address {
	out := make([]Address, len(addrs))
	copy(out, addrs)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
