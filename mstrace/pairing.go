package mstrace

import (
	"time"

	"github.com/mstrace/mstrace/syscalls"
)

// EntrySnapshot is everything captured at entry-hit that the exit handler
// needs: the syscall identity, the argument registers (the exit-time
// registers are clobbered), the pre-call materializations, and timing.
type EntrySnapshot struct {
	Number uint64

	// Schema is nil for numbers the registry does not know; the event
	// degrades to raw rendering.
	Schema *syscalls.Schema

	Args       [6]uint64
	EntryArgs  []syscalls.Arg
	ReturnAddr uint64
	ThreadID   uint64
	Start      time.Time
}

// PairingTable tracks at most one in-flight syscall per thread. It is
// owned by the event loop and needs no locking.
type PairingTable struct {
	pending map[uint64]*EntrySnapshot
}

// NewPairingTable returns an empty table.
func NewPairingTable() *PairingTable {
	return &PairingTable{pending: make(map[uint64]*EntrySnapshot)}
}

// Begin stores the snapshot for its thread. If an earlier snapshot is
// still in flight on the same thread — two entry-hits with no exit between
// them — the earlier one is evicted and returned so the caller can emit it
// as unfinished. Correct kernels never produce this, but it must not
// corrupt the table.
func (t *PairingTable) Begin(snap *EntrySnapshot) *EntrySnapshot {
	evicted := t.pending[snap.ThreadID]
	t.pending[snap.ThreadID] = snap

	return evicted
}

// Complete removes and returns the snapshot the exit-hit on tid pairs
// with.
func (t *PairingTable) Complete(tid uint64) (*EntrySnapshot, bool) {
	snap, ok := t.pending[tid]
	if ok {
		delete(t.pending, tid)
	}

	return snap, ok
}

// Expecting reports whether tid has an in-flight syscall returning to
// addr.
func (t *PairingTable) Expecting(tid, addr uint64) bool {
	snap, ok := t.pending[tid]

	return ok && snap.ReturnAddr == addr
}

// DrainAll empties the table, returning the orphaned snapshots. Used at
// target exit to emit unfinished events.
func (t *PairingTable) DrainAll() []*EntrySnapshot {
	out := make([]*EntrySnapshot, 0, len(t.pending))
	for _, snap := range t.pending {
		out = append(out, snap)
	}

	t.pending = make(map[uint64]*EntrySnapshot)

	return out
}

// Len is the number of in-flight syscalls.
func (t *PairingTable) Len() int { return len(t.pending) }
