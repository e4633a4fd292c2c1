package dbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStopReply(t *testing.T) {
	cases := []struct {
		name     string
		reply    string
		expected StopEvent
		wantErr  bool
	}{
		{
			name:     "breakpoint stop with thread",
			reply:    "T05thread:2f03;threads:2f03,2f04;metype:6;",
			expected: StopEvent{Reason: StopSignal, Signal: 5, ThreadID: 0x2f03, Metype: 6},
		},
		{
			name:     "plain signal stop",
			reply:    "S02",
			expected: StopEvent{Reason: StopSignal, Signal: 2},
		},
		{
			name:     "clean exit",
			reply:    "W00",
			expected: StopEvent{Reason: StopExited, ExitStatus: 0},
		},
		{
			name:     "nonzero exit with detail",
			reply:    "W01;process:2a1f",
			expected: StopEvent{Reason: StopExited, ExitStatus: 1},
		},
		{
			name:     "killed by signal",
			reply:    "X09",
			expected: StopEvent{Reason: StopTerminated, Signal: 9},
		},
		{
			name:    "empty",
			reply:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			reply:   "banana",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ev, err := parseStopReply(c.reply)
			if c.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.expected, ev)
		})
	}
}

func TestIsBreakpoint(t *testing.T) {
	require.True(t, StopEvent{Reason: StopSignal, Signal: 5}.IsBreakpoint())
	require.False(t, StopEvent{Reason: StopSignal, Signal: 2}.IsBreakpoint())
	require.False(t, StopEvent{Reason: StopExited}.IsBreakpoint())
}

func TestParsePairs(t *testing.T) {
	pairs := parsePairs("pid:1a2b;cputype:100000c;ostype:macosx;")

	require.Equal(t, "1a2b", pairs["pid"])
	require.Equal(t, "100000c", pairs["cputype"])
	require.Equal(t, "macosx", pairs["ostype"])
}
