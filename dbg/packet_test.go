package dbg

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// duplex is an in-memory ReadWriter: reads serve the scripted stub output,
// writes accumulate what the client sent.
type duplex struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func (d *duplex) Read(p []byte) (int, error)  { return d.in.Read(p) }
func (d *duplex) Write(p []byte) (int, error) { return d.out.Write(p) }

func TestChecksum(t *testing.T) {
	require.Equal(t, byte(0x00), checksum(nil))
	require.Equal(t, byte('g'), checksum([]byte("g")))

	// "OK" = 0x4f + 0x4b = 0x9a
	require.Equal(t, byte(0x9a), checksum([]byte("OK")))
}

func TestEscapeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "plain", data: []byte("qProcessInfo")},
		{name: "hash and dollar", data: []byte("a#b$c")},
		{name: "brace", data: []byte("x}y")},
		{name: "star", data: []byte("a*b")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.data, unescape(escape(c.data)))
		})
	}
}

func TestConnSendRecvNoAck(t *testing.T) {
	d := &duplex{in: bytes.NewReader([]byte("$OK#9a"))}
	c := newConn(d)
	c.noAck = true

	require.NoError(t, c.send("QStartNoAckMode"))
	require.Equal(t, "$QStartNoAckMode#b0", d.out.String())

	reply, err := c.recv()
	require.NoError(t, err)
	require.Equal(t, "OK", reply)
}

func TestConnAckMode(t *testing.T) {
	// Stub acks our packet, then sends a reply which we must ack.
	d := &duplex{in: bytes.NewReader([]byte("+$OK#9a"))}
	c := newConn(d)

	reply, err := c.roundTrip("D")
	require.NoError(t, err)
	require.Equal(t, "OK", reply)

	// The trailing '+' is our ack of the stub's reply.
	require.Equal(t, "$D#44+", d.out.String())
}

func TestConnChecksumMismatch(t *testing.T) {
	d := &duplex{in: bytes.NewReader([]byte("$OK#00"))}
	c := newConn(d)
	c.noAck = true

	_, err := c.recv()
	require.Error(t, err)
}

func TestRoundTripErrorReplies(t *testing.T) {
	// E45 error reply.
	d := &duplex{in: bytes.NewReader([]byte("$E45#ae"))}
	c := newConn(d)
	c.noAck = true

	_, err := c.roundTrip("qRegisterInfo63")
	require.ErrorIs(t, err, ErrRemote)

	// Empty reply means unsupported.
	d = &duplex{in: bytes.NewReader([]byte("$#00"))}
	c = newConn(d)
	c.noAck = true

	_, err = c.roundTrip("qFoo")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestRecvSkipsNoise(t *testing.T) {
	d := &duplex{in: bytes.NewReader([]byte("++$T05thread:1f;#3d"))}
	c := newConn(d)
	c.noAck = true

	reply, err := c.recv()
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}

	require.Equal(t, "T05thread:1f;", reply)
}
