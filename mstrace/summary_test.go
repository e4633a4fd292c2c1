package mstrace_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/mstrace/mstrace/mstrace"
	"github.com/stretchr/testify/require"
)

func timedEvent(name string, dur time.Duration, isErr bool) *mstrace.SyscallEvent {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	return &mstrace.SyscallEvent{
		Name:   name,
		Start:  start,
		End:    start.Add(dur),
		Error:  isErr,
		Retval: -1,
	}
}

func TestSummaryAggregation(t *testing.T) {
	s := mstrace.NewSummary()

	require.NoError(t, s.Emit(timedEvent("read", 100*time.Microsecond, false)))
	require.NoError(t, s.Emit(timedEvent("read", 300*time.Microsecond, false)))
	require.NoError(t, s.Emit(timedEvent("open", 50*time.Microsecond, true)))

	// The sum of calls equals the number of emitted events.
	require.Equal(t, int64(3), s.TotalCalls())
}

func TestSummaryRender(t *testing.T) {
	s := mstrace.NewSummary()

	require.NoError(t, s.Emit(timedEvent("read", 400*time.Microsecond, false)))
	require.NoError(t, s.Emit(timedEvent("write", 100*time.Microsecond, false)))
	require.NoError(t, s.Emit(timedEvent("open", 0, true)))

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))

	out := buf.String()

	require.Contains(t, out, "% time")
	require.Contains(t, out, "usecs/call")
	require.Contains(t, out, "read")
	require.Contains(t, out, "write")
	require.Contains(t, out, "open")
	require.Contains(t, out, "total")

	// Sorted by cumulative elapsed: read before write before open.
	require.Less(t, bytes.Index(buf.Bytes(), []byte("read")), bytes.Index(buf.Bytes(), []byte("write")))
	require.Less(t, bytes.Index(buf.Bytes(), []byte("write")), bytes.Index(buf.Bytes(), []byte("open")))

	// Percentages over the two timed rows: 80 and 20.
	require.Contains(t, out, "80.00")
	require.Contains(t, out, "20.00")
	require.Contains(t, out, "100.00")
}

func TestSummaryCountRejected(t *testing.T) {
	s := mstrace.NewSummary()

	s.CountRejected("close")
	s.CountRejected("close")

	require.Equal(t, int64(2), s.TotalCalls())
}

func TestSummaryEmptyRender(t *testing.T) {
	s := mstrace.NewSummary()

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	require.Contains(t, buf.String(), "total")
}
