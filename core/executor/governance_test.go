package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

func TestVoteRequiresRegisteredValidator(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}

	err := execVote(types.Vote{ProposalID: 1, Approve: true}, sender, ctx)
	require.Error(t, err, "F3: Vote has no registry, but still requires validator membership")

	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].NativeGas = 100
	require.NoError(t, execRegisterValidator(types.RegisterValidator{Pubkey: [32]byte(sender), Stake: 100}, sender, ctx))

	require.NoError(t, execVote(types.Vote{ProposalID: 1, Approve: true}, sender, ctx))
}

// TestRegisterCustodianAllowsDuplicates resolves Open Question F4: no
// uniqueness check across custodian registrations by the same sender.
func TestRegisterCustodianAllowsDuplicates(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LJUN = 1000

	require.NoError(t, execRegisterCustodian(types.RegisterCustodian{Stake: 100, MPC: [][]byte{[]byte("mpc-1")}}, sender, ctx))
	require.NoError(t, execRegisterCustodian(types.RegisterCustodian{Stake: 100, MPC: [][]byte{[]byte("mpc-2")}}, sender, ctx))
	require.Len(t, ctx.State.Custodians, 2)
}

func TestRotateReservesRateLimited(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	ctx.State.Accounts[sender] = types.NewAccount()
	ctx.State.Accounts[sender].LJUN = 100
	require.NoError(t, execRegisterCustodian(types.RegisterCustodian{Stake: 100, MPC: [][]byte{[]byte("mpc-1")}}, sender, ctx))

	ctx.Height = reserveRotationCooldown
	require.NoError(t, execRotateReserves(types.RotateReserves{Set: [][32]byte{[32]byte(sender)}}, sender, ctx))

	ctx.Height = reserveRotationCooldown + 1
	err := execRotateReserves(types.RotateReserves{Set: [][32]byte{[32]byte(sender)}}, sender, ctx)
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, KindRateLimited, execErr.Kind)
}
