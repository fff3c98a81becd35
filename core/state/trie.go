package state

import (
	"github.com/luminachain/core/core/types"
)

// trieEntry pairs an account with the 64-nibble path its address expands
// into (spec §4.B: 4-bit nibbles of the 32-byte address).
type trieEntry struct {
	nibbles []byte
	account *types.Account
}

const nodeKindLeaf = 0
const nodeKindExtension = 1
const nodeKindBranch = 2

// addressNibbles expands a 32-byte address into 64 4-bit nibbles,
// high nibble of each byte first.
func addressNibbles(addr types.Address) []byte {
	out := make([]byte, 64)
	for i, b := range addr {
		out[2*i] = b >> 4
		out[2*i+1] = b & 0x0f
	}
	return out
}

// Root computes the canonical state root: the hash of the topmost trie
// node, or the all-zero value when there are no accounts (spec §4.B).
func Root(accounts map[types.Address]*types.Account) types.Hash {
	if len(accounts) == 0 {
		return ZeroHash
	}
	addrs := make([]types.Address, 0, len(accounts))
	for a := range accounts {
		addrs = append(addrs, a)
	}
	addrs = types.SortAddresses(addrs)

	entries := make([]trieEntry, len(addrs))
	for i, a := range addrs {
		entries[i] = trieEntry{nibbles: addressNibbles(a), account: accounts[a]}
	}
	return buildNode(entries, 0)
}

// buildNode implements the top-down construction described in spec §4.B:
// a leaf when exactly one key remains, else an extension over the
// longest shared nibble prefix (never spanning a key that terminates
// exactly here), else a 16-way branch.
func buildNode(entries []trieEntry, depth int) types.Hash {
	if len(entries) == 1 {
		e := entries[0]
		return hashLeaf(e.nibbles[depth:], AccountBytes(e.account))
	}

	anyTerminal := false
	for _, e := range entries {
		if len(e.nibbles) == depth {
			anyTerminal = true
			break
		}
	}

	var ext []byte
	if !anyTerminal {
		ext = longestCommonPrefix(entries, depth)
	}
	if len(ext) > 0 {
		child := buildNode(entries, depth+len(ext))
		return hashExtension(ext, child)
	}

	var valueAccount *types.Account
	hasValue := false
	buckets := make([][]trieEntry, 16)
	for _, e := range entries {
		if len(e.nibbles) == depth {
			valueAccount = e.account
			hasValue = true
			continue
		}
		nb := e.nibbles[depth]
		buckets[nb] = append(buckets[nb], e)
	}

	var children [16]*types.Hash
	for nb := 0; nb < 16; nb++ {
		if len(buckets[nb]) == 0 {
			continue
		}
		h := buildNode(buckets[nb], depth+1)
		children[nb] = &h
	}
	return hashBranch(children, hasValue, valueAccount)
}

func longestCommonPrefix(entries []trieEntry, depth int) []byte {
	first := entries[0].nibbles[depth:]
	lcpLen := len(first)
	for _, e := range entries[1:] {
		rest := e.nibbles[depth:]
		if len(rest) < lcpLen {
			lcpLen = len(rest)
		}
		for i := 0; i < lcpLen; i++ {
			if first[i] != rest[i] {
				lcpLen = i
				break
			}
		}
	}
	out := make([]byte, lcpLen)
	copy(out, first[:lcpLen])
	return out
}

func hashLeaf(path []byte, accountBytes []byte) types.Hash {
	e := &encoder{}
	e.u8(nodeKindLeaf)
	e.nibblePath(path)
	e.bytesField(accountBytes)
	return Hash256(e.buf)
}

func hashExtension(path []byte, child types.Hash) types.Hash {
	e := &encoder{}
	e.u8(nodeKindExtension)
	e.nibblePath(path)
	e.hash(child)
	return Hash256(e.buf)
}

func hashBranch(children [16]*types.Hash, hasValue bool, value *types.Account) types.Hash {
	e := &encoder{}
	e.u8(nodeKindBranch)
	for _, c := range children {
		if c == nil {
			e.u8(0)
			continue
		}
		e.u8(1)
		e.hash(*c)
	}
	if hasValue {
		e.u8(1)
		e.bytesField(AccountBytes(value))
	} else {
		e.u8(0)
	}
	return Hash256(e.buf)
}

func (e *encoder) nibblePath(path []byte) {
	e.u32(uint32(len(path)))
	e.buf = append(e.buf, path...)
}
