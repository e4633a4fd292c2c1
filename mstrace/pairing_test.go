package mstrace_test

import (
	"testing"
	"time"

	"github.com/mstrace/mstrace/mstrace"
	"github.com/stretchr/testify/require"
)

func snap(tid, retAddr uint64) *mstrace.EntrySnapshot {
	return &mstrace.EntrySnapshot{
		Number:     3,
		ThreadID:   tid,
		ReturnAddr: retAddr,
		Start:      time.Now(),
	}
}

func TestPairingEntryExit(t *testing.T) {
	table := mstrace.NewPairingTable()

	require.Nil(t, table.Begin(snap(0x100, 0x7000)))
	require.Equal(t, 1, table.Len())

	got, ok := table.Complete(0x100)
	require.True(t, ok)
	require.Equal(t, uint64(0x100), got.ThreadID)
	require.Equal(t, 0, table.Len())

	// A snapshot is consumed exactly once.
	_, ok = table.Complete(0x100)
	require.False(t, ok)
}

func TestPairingPerThread(t *testing.T) {
	table := mstrace.NewPairingTable()

	// Two threads in flight concurrently never clobber each other.
	require.Nil(t, table.Begin(snap(0x100, 0x7000)))
	require.Nil(t, table.Begin(snap(0x200, 0x8000)))
	require.Equal(t, 2, table.Len())

	a, ok := table.Complete(0x200)
	require.True(t, ok)
	require.Equal(t, uint64(0x8000), a.ReturnAddr)

	b, ok := table.Complete(0x100)
	require.True(t, ok)
	require.Equal(t, uint64(0x7000), b.ReturnAddr)
}

func TestPairingDoubleEntryEvicts(t *testing.T) {
	table := mstrace.NewPairingTable()

	first := snap(0x100, 0x7000)
	second := snap(0x100, 0x9000)

	require.Nil(t, table.Begin(first))

	// Second entry on the same thread with no exit between: the later
	// wins, the earlier is handed back for an unfinished event.
	evicted := table.Begin(second)
	require.Same(t, first, evicted)
	require.Equal(t, 1, table.Len())

	got, ok := table.Complete(0x100)
	require.True(t, ok)
	require.Same(t, second, got)
}

func TestPairingExpecting(t *testing.T) {
	table := mstrace.NewPairingTable()

	table.Begin(snap(0x100, 0x7000))

	require.True(t, table.Expecting(0x100, 0x7000))
	require.False(t, table.Expecting(0x100, 0x9999))
	require.False(t, table.Expecting(0x200, 0x7000))
}

func TestPairingDrainAll(t *testing.T) {
	table := mstrace.NewPairingTable()

	table.Begin(snap(0x100, 0x7000))
	table.Begin(snap(0x200, 0x8000))

	orphans := table.DrainAll()
	require.Len(t, orphans, 2)
	require.Equal(t, 0, table.Len())
	require.Empty(t, table.DrainAll())
}
