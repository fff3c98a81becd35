package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

func TestRootEmptyIsZero(t *testing.T) {
	require.Equal(t, ZeroHash, Root(map[types.Address]*types.Account{}))
}

func TestRootDeterministicOverMapIterationOrder(t *testing.T) {
	accounts := map[types.Address]*types.Account{
		{0x01}: {Nonce: 1, LUSD: 100, CustomBalances: map[string]uint64{}},
		{0x02}: {Nonce: 2, LUSD: 200, CustomBalances: map[string]uint64{}},
		{0xff}: {Nonce: 3, LUSD: 300, CustomBalances: map[string]uint64{}},
	}
	// Go map iteration order is randomized per-run; recomputing Root
	// several times over the same map must always agree, since Root
	// sorts addresses internally before building the trie (spec §4.B).
	first := Root(accounts)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Root(accounts))
	}
}

func TestRootChangesWithAnyAccountField(t *testing.T) {
	base := map[types.Address]*types.Account{
		{0x01}: {Nonce: 1, LUSD: 100, CustomBalances: map[string]uint64{}},
	}
	baseRoot := Root(base)

	mutated := map[types.Address]*types.Account{
		{0x01}: {Nonce: 1, LUSD: 101, CustomBalances: map[string]uint64{}},
	}
	require.NotEqual(t, baseRoot, Root(mutated))
}

func TestRootSingleAccountIsALeaf(t *testing.T) {
	accounts := map[types.Address]*types.Account{
		{0x01}: {Nonce: 1, CustomBalances: map[string]uint64{}},
	}
	addr := types.Address{0x01}
	want := hashLeaf(addressNibbles(addr), AccountBytes(accounts[addr]))
	require.Equal(t, want, Root(accounts))
}

func TestRootDistinguishesSharedPrefixAddresses(t *testing.T) {
	// Two addresses sharing their first three nibbles force the trie
	// through an extension node down to a branch (spec §4.B).
	a := map[types.Address]*types.Account{
		{0x01, 0x02}: {CustomBalances: map[string]uint64{}},
		{0x01, 0x03}: {CustomBalances: map[string]uint64{}},
	}
	b := map[types.Address]*types.Account{
		{0x01, 0x02}: {CustomBalances: map[string]uint64{}},
		{0x01, 0x04}: {CustomBalances: map[string]uint64{}},
	}
	require.NotEqual(t, Root(a), Root(b))
}
