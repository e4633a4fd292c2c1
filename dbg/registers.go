package dbg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
)

// regInfo describes one register as reported by qRegisterInfo.
type regInfo struct {
	num     int
	name    string
	generic string // "pc", "sp", "fp", "ra", "flags", "arg1"… when reported
	bits    int
}

// registerFile indexes the stub's register set by name and by the generic
// role names, so callers can ask for "pc" without knowing whether the stub
// calls it "pc" or "rip".
type registerFile struct {
	byName    map[string]regInfo
	byGeneric map[string]regInfo
}

// enumerateRegisters walks qRegisterInfo0, qRegisterInfo1, … until the stub
// reports the end of the register set.
func enumerateRegisters(c *conn) (*registerFile, error) {
	rf := &registerFile{
		byName:    make(map[string]regInfo),
		byGeneric: make(map[string]regInfo),
	}

	for num := 0; ; num++ {
		reply, err := c.roundTrip(fmt.Sprintf("qRegisterInfo%x", num))
		if err != nil {
			// An E45 (or any error reply) marks the end of the set.
			if num == 0 {
				return nil, fmt.Errorf("stub reported no registers: %w", err)
			}

			break
		}

		info := parsePairs(reply)

		ri := regInfo{num: num, name: info["name"], generic: info["generic"]}

		if bits, err := strconv.Atoi(info["bitsize"]); err == nil {
			ri.bits = bits
		} else {
			ri.bits = 64
		}

		if ri.name == "" {
			continue
		}

		rf.byName[ri.name] = ri

		if ri.generic != "" {
			rf.byGeneric[ri.generic] = ri
		}
	}

	return rf, nil
}

func (rf *registerFile) count() int { return len(rf.byName) }

// lookup resolves a register by its stub name first, then by generic role.
func (rf *registerFile) lookup(name string) (regInfo, bool) {
	if ri, ok := rf.byName[name]; ok {
		return ri, true
	}

	ri, ok := rf.byGeneric[name]

	return ri, ok
}

// ThreadRegisters returns a register view bound to one thread, satisfying
// the architecture adapter's Registers interface.
func (cl *Client) ThreadRegisters(tid uint64) *ThreadRegisters {
	return &ThreadRegisters{cl: cl, tid: tid}
}

// ThreadRegisters reads registers of a single thread by name.
type ThreadRegisters struct {
	cl  *Client
	tid uint64
}

// Read reads one register. Values come back hex-encoded in target byte
// order (little-endian on both supported CPUs).
func (tr *ThreadRegisters) Read(name string) (uint64, error) {
	ri, ok := tr.cl.regs.lookup(name)
	if !ok {
		return 0, fmt.Errorf("target has no register %q", name)
	}

	reply, err := tr.cl.c.roundTrip(fmt.Sprintf("p%x;thread:%x;", ri.num, tr.tid))
	if err != nil {
		return 0, fmt.Errorf("failed to read register %s of thread %#x: %w", name, tr.tid, err)
	}

	raw, err := hex.DecodeString(reply)
	if err != nil {
		return 0, fmt.Errorf("malformed register reply %q: %w", reply, err)
	}

	switch len(raw) {
	case 4:
		return uint64(binary.LittleEndian.Uint32(raw)), nil
	case 8:
		return binary.LittleEndian.Uint64(raw), nil
	default:
		// Odd-sized replies: take the low eight bytes.
		buf := make([]byte, 8)
		copy(buf, raw)

		return binary.LittleEndian.Uint64(buf), nil
	}
}
