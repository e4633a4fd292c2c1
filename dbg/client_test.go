package dbg

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pkt frames a reply the way the stub would send it.
func pkt(payload string) string {
	return fmt.Sprintf("$%s#%02x", payload, checksum([]byte(payload)))
}

// script builds the stub's canned output for one client call sequence.
func script(replies ...string) *duplex {
	var b strings.Builder

	// Ack for the first packet (no-ack mode is not yet negotiated).
	b.WriteString("+")

	for _, r := range replies {
		b.WriteString(pkt(r))
	}

	return &duplex{in: bytes.NewReader([]byte(b.String()))}
}

func handshakeReplies() []string {
	return []string{
		"OK", // QStartNoAckMode
		"OK", // QThreadSuffixSupported
		"pid:1a2b;cputype:100000c;ostype:macosx;ptrsize:8;", // qProcessInfo
		"name:x0;bitsize:64;regnum:0;",                      // qRegisterInfo0
		"name:x16;bitsize:64;regnum:1;",                     // qRegisterInfo1
		"name:pc;bitsize:64;generic:pc;regnum:2;",           // qRegisterInfo2
		"E45", // end of register set
	}
}

func newTestClient(t *testing.T, extra ...string) (*Client, *duplex) {
	t.Helper()

	d := script(append(handshakeReplies(), extra...)...)

	cl, err := NewClient(zap.NewNop().Sugar(), d)
	require.NoError(t, err)

	return cl, d
}

func TestClientHandshake(t *testing.T) {
	cl, _ := newTestClient(t)

	require.Equal(t, 0x1a2b, cl.PID())
	require.Equal(t, "arm64-apple-macosx", cl.TargetTriple())
	require.Equal(t, 3, cl.regs.count())
}

func TestClientReadRegister(t *testing.T) {
	// pc = 0x0000000100004000, little-endian hex.
	cl, d := newTestClient(t, "0040000001000000")

	regs := cl.ThreadRegisters(0x1f03)

	pc, err := regs.Read("pc")
	require.NoError(t, err)
	require.Equal(t, uint64(0x100004000), pc)

	// The read names the register number and the thread.
	require.Contains(t, d.out.String(), "p2;thread:1f03;")

	_, err = regs.Read("no_such_register")
	require.Error(t, err)
}

func TestClientReadMemory(t *testing.T) {
	cl, _ := newTestClient(t, "68656c6c6f")

	buf := make([]byte, 8)

	n, err := cl.ReadMemory(0x2000, buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello"), buf[:5])
}

func TestClientBreakpoints(t *testing.T) {
	cl, d := newTestClient(t, "OK", "OK")

	require.NoError(t, cl.SetBreakpoint(0x100004000))
	require.NoError(t, cl.ClearBreakpoint(0x100004000))

	out := d.out.String()

	// arm64 software breakpoints are 4 bytes wide.
	require.Contains(t, out, "Z0,100004000,4")
	require.Contains(t, out, "z0,100004000,4")
}

func TestClientContinueToStop(t *testing.T) {
	cl, _ := newTestClient(t, "T05thread:2f03;")

	ev, err := cl.Continue()
	require.NoError(t, err)
	require.True(t, ev.IsBreakpoint())
	require.Equal(t, uint64(0x2f03), ev.ThreadID)
}

func TestClientTargetExit(t *testing.T) {
	cl, _ := newTestClient(t, "W02")

	ev, err := cl.Continue()
	require.NoError(t, err)
	require.Equal(t, StopExited, ev.Reason)
	require.Equal(t, 2, ev.ExitStatus)
}
