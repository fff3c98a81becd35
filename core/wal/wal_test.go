package wal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luminachain/core/core/types"
)

func TestWriteThenRecoverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal")
	w := Open(path)

	rec := Record{
		Height:    7,
		Proposer:  types.Address{0x01, 0x02},
		Timestamp: 1234,
		TxBytes:   [][]byte{[]byte("tx-one"), []byte("tx-two")},
	}
	require.NoError(t, w.Write(rec))

	got, ok, err := Recover(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, rec, got)
}

func TestRecoverWithNoJournalFileReportsNotOK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-journal")
	_, ok, err := Recover(path)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClearRemovesJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal")
	w := Open(path)
	require.NoError(t, w.Write(Record{Height: 1}))
	require.NoError(t, w.Clear())

	_, ok, err := Recover(path)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWriteOverwritesPriorRecordAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal")
	w := Open(path)
	require.NoError(t, w.Write(Record{Height: 1, Timestamp: 10}))
	require.NoError(t, w.Write(Record{Height: 2, Timestamp: 20}))

	got, ok, err := Recover(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(2), got.Height)
	require.Equal(t, uint64(20), got.Timestamp)
}
