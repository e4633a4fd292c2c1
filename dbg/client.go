package dbg

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Client is a connection to one debugserver instance and, through it, one
// target process. It is not safe for concurrent use; the tracer's event
// loop is its only caller.
type Client struct {
	logger *zap.SugaredLogger
	c      *conn

	pid    int
	triple string

	regs *registerFile

	// breakpoint kind (the length field of Z0) per the target CPU.
	bpKind int
}

// Dial connects to a debugserver listening on addr and performs the
// protocol handshake.
func Dial(logger *zap.SugaredLogger, addr string) (*Client, error) {
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to debugserver at %s: %w", addr, err)
	}

	return NewClient(logger, nc)
}

// NewClient wraps an established stub connection and performs the
// handshake: ack-mode negotiation, thread-suffix support, register file
// enumeration and process identification.
func NewClient(logger *zap.SugaredLogger, rw io.ReadWriter) (*Client, error) {
	cl := &Client{
		logger: logger,
		c:      newConn(rw),
	}

	if reply, err := cl.c.roundTrip("QStartNoAckMode"); err != nil {
		return nil, fmt.Errorf("failed to negotiate no-ack mode: %w", err)
	} else if reply == "OK" {
		cl.c.noAck = true
	}

	// Thread-suffix support lets register packets name their thread, which
	// per-thread pairing depends on.
	if reply, err := cl.c.roundTrip("QThreadSuffixSupported"); err != nil || reply != "OK" {
		return nil, fmt.Errorf("stub lacks thread-suffix register reads: %w", err)
	}

	if err := cl.readProcessInfo(); err != nil {
		return nil, err
	}

	regs, err := enumerateRegisters(cl.c)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate register file: %w", err)
	}

	cl.regs = regs

	cl.logger.Debugw("debugserver handshake complete",
		"pid", cl.pid,
		"triple", cl.triple,
		"registers", regs.count(),
	)

	return cl, nil
}

// PID returns the target process id reported by the stub.
func (cl *Client) PID() int { return cl.pid }

// TargetTriple returns a triple such as "arm64-apple-macosx" derived from
// the stub's process info.
func (cl *Client) TargetTriple() string { return cl.triple }

// Mach CPU types reported in qProcessInfo.
const (
	cpuTypeX8664 = 0x01000007
	cpuTypeARM64 = 0x0100000c
)

func (cl *Client) readProcessInfo() error {
	reply, err := cl.c.roundTrip("qProcessInfo")
	if err != nil {
		return fmt.Errorf("failed to query process info: %w", err)
	}

	info := parsePairs(reply)

	if pidHex, ok := info["pid"]; ok {
		pid, err := strconv.ParseUint(pidHex, 16, 32)
		if err != nil {
			return fmt.Errorf("malformed pid %q in process info: %w", pidHex, err)
		}

		cl.pid = int(pid)
	}

	cputype, err := strconv.ParseUint(info["cputype"], 16, 32)
	if err != nil {
		return fmt.Errorf("malformed cputype %q in process info: %w", info["cputype"], err)
	}

	switch cputype {
	case cpuTypeARM64:
		cl.triple = "arm64-apple-macosx"
		cl.bpKind = 4
	case cpuTypeX8664:
		cl.triple = "x86_64-apple-macosx"
		cl.bpKind = 1
	default:
		return fmt.Errorf("unknown cputype %#x in process info", cputype)
	}

	return nil
}

// parsePairs splits a "key:value;key:value;" reply body.
func parsePairs(s string) map[string]string {
	out := make(map[string]string)

	for _, kv := range strings.Split(s, ";") {
		if kv == "" {
			continue
		}

		k, v, ok := strings.Cut(kv, ":")
		if !ok {
			continue
		}

		out[k] = v
	}

	return out
}

// ReadMemory reads len(p) bytes of target memory at addr. A short count
// with nil error means the tail of the range is unmapped.
func (cl *Client) ReadMemory(addr uint64, p []byte) (int, error) {
	reply, err := cl.c.roundTrip(fmt.Sprintf("m%x,%x", addr, len(p)))
	if err != nil {
		return 0, fmt.Errorf("failed to read %d bytes at %#x: %w", len(p), addr, err)
	}

	n := len(reply) / 2
	if n > len(p) {
		n = len(p)
	}

	for i := 0; i < n; i++ {
		b, err := strconv.ParseUint(reply[i*2:i*2+2], 16, 8)
		if err != nil {
			return i, fmt.Errorf("malformed memory reply at byte %d: %w", i, err)
		}

		p[i] = byte(b)
	}

	return n, nil
}

// SetBreakpoint plants a software breakpoint at addr.
func (cl *Client) SetBreakpoint(addr uint64) error {
	reply, err := cl.c.roundTrip(fmt.Sprintf("Z0,%x,%d", addr, cl.bpKind))
	if err != nil {
		return fmt.Errorf("failed to set breakpoint at %#x: %w", addr, err)
	}

	if reply != "OK" {
		return fmt.Errorf("unexpected Z0 reply %q for %#x", reply, addr)
	}

	return nil
}

// ClearBreakpoint removes a software breakpoint at addr.
func (cl *Client) ClearBreakpoint(addr uint64) error {
	reply, err := cl.c.roundTrip(fmt.Sprintf("z0,%x,%d", addr, cl.bpKind))
	if err != nil {
		return fmt.Errorf("failed to clear breakpoint at %#x: %w", addr, err)
	}

	if reply != "OK" {
		return fmt.Errorf("unexpected z0 reply %q for %#x", reply, addr)
	}

	return nil
}

// Continue resumes all threads and blocks until the next stop.
func (cl *Client) Continue() (StopEvent, error) {
	return cl.resume("vCont;c")
}

// ContinueWithSignal resumes, delivering sig to thread tid.
func (cl *Client) ContinueWithSignal(sig int, tid uint64) (StopEvent, error) {
	return cl.resume(fmt.Sprintf("vCont;C%02x:%x;c", sig, tid))
}

func (cl *Client) resume(payload string) (StopEvent, error) {
	reply, err := cl.c.roundTrip(payload)
	if err != nil {
		return StopEvent{}, fmt.Errorf("failed to resume target: %w", err)
	}

	return parseStopReply(reply)
}

// InitialStop asks the stub why the target is currently stopped, used right
// after launch or attach.
func (cl *Client) InitialStop() (StopEvent, error) {
	reply, err := cl.c.roundTrip("?")
	if err != nil {
		return StopEvent{}, fmt.Errorf("failed to query stop reason: %w", err)
	}

	return parseStopReply(reply)
}

// Interrupt sends the protocol break byte, forcing the running target to
// stop. It is the one write that may race the event loop's blocking read,
// and it is only meaningful while the target runs.
func (cl *Client) Interrupt() error {
	if _, err := cl.c.rw.Write([]byte{0x03}); err != nil {
		return fmt.Errorf("failed to send interrupt: %w", err)
	}

	return nil
}

// Detach detaches the stub from the target, leaving it running.
func (cl *Client) Detach() error {
	if _, err := cl.c.roundTrip("D"); err != nil {
		return fmt.Errorf("failed to detach: %w", err)
	}

	return nil
}

// Kill terminates the target.
func (cl *Client) Kill() error {
	if err := cl.c.send("k"); err != nil {
		return fmt.Errorf("failed to kill target: %w", err)
	}

	return nil
}
