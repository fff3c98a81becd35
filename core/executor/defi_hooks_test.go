package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

// TestZeroSlipBatchMatchRejectsReplay covers spec invariant 9:
// executed_batch_matches never accepts the same batch id twice.
func TestZeroSlipBatchMatchRejectsReplay(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	orders := [][]byte{[]byte("order-a"), []byte("order-b")}

	require.NoError(t, execZeroSlipBatchMatch(types.ZeroSlipBatchMatch{Orders: orders}, sender, ctx))

	err := execZeroSlipBatchMatch(types.ZeroSlipBatchMatch{Orders: orders}, sender, ctx)
	require.Error(t, err)
	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, KindReplay, execErr.Kind)
}

func TestZeroSlipBatchMatchRejectsDuplicateOrderWithinOneCall(t *testing.T) {
	ctx := freshContext()
	sender := types.Address{0x01}
	orders := [][]byte{[]byte("order-a"), []byte("order-a")}

	err := execZeroSlipBatchMatch(types.ZeroSlipBatchMatch{Orders: orders}, sender, ctx)
	require.Error(t, err)
}
