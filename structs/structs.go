// Package structs renders kernel structures referenced by syscall arguments
// (stat, sockaddr, msghdr, iovec vectors, kevent lists, …) into the
// brace-delimited field form strace uses. Each renderer performs a single
// bounded read of the target region and renders field by field in declared
// order.
package structs

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/mstrace/mstrace/memio"
	"github.com/mstrace/mstrace/strquote"
)

// Caps mirroring the kernel's own limits; anything larger is treated as a
// garbage pointer and rendered raw.
const (
	maxIovecs  = 1024
	maxKevents = 256
)

// Renderer renders structs out of one target's memory. limit is the
// display cap for embedded strings and buffers.
type Renderer struct {
	mem   *memio.Reader
	limit int
}

// NewRenderer returns a Renderer over mem with the given string display
// cap.
func NewRenderer(mem *memio.Reader, limit int) *Renderer {
	if limit <= 0 {
		limit = strquote.DefaultLimit
	}

	return &Renderer{mem: mem, limit: limit}
}

// Ptr renders an address the way every formatter expects pointers.
func Ptr(addr uint64) string {
	if addr == 0 {
		return "NULL"
	}

	return fmt.Sprintf("0x%x", addr)
}

// Buffer renders actualLen bytes at addr as a quoted, escaped string capped
// at the display limit, with the untruncated length annotated when capped.
func (r *Renderer) Buffer(addr uint64, actualLen int) (string, error) {
	if addr == 0 {
		return "NULL", nil
	}

	if actualLen <= 0 {
		return `""`, nil
	}

	n := actualLen
	if n > r.limit {
		n = r.limit
	}

	data, truncated, err := r.mem.ReadBytes(addr, n)
	if err != nil {
		return "", err
	}

	quoted := `"` + strquote.Quote(data, r.limit) + `"`

	if truncated || actualLen > r.limit {
		quoted += fmt.Sprintf("... (%d bytes)", actualLen)
	}

	return quoted, nil
}

// CString renders the NUL-terminated string at addr, quoted, with an
// ellipsis when it exceeds the display cap.
func (r *Renderer) CString(addr uint64) (string, error) {
	if addr == 0 {
		return "NULL", nil
	}

	s, err := r.mem.ReadCString(addr, 4096)
	if err != nil {
		return "", err
	}

	quoted := `"` + strquote.Quote([]byte(s.Value), r.limit) + `"`
	if s.Truncated && len(s.Value) <= r.limit {
		quoted += "..."
	}

	return quoted, nil
}

// fields builds "{k=v, k=v}" in append order.
type fields struct {
	parts []string
}

func (f *fields) add(name, value string) {
	f.parts = append(f.parts, name+"="+value)
}

func (f *fields) addInt(name string, value int64) {
	f.add(name, fmt.Sprintf("%d", value))
}

func (f *fields) String() string {
	return "{" + strings.Join(f.parts, ", ") + "}"
}

func i16(b []byte) int16  { return int16(binary.LittleEndian.Uint16(b)) }
func u16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func u32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func i32(b []byte) int32  { return int32(binary.LittleEndian.Uint32(b)) }
func u64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func i64(b []byte) int64  { return int64(binary.LittleEndian.Uint64(b)) }

// cstr pulls a fixed-width NUL-padded char array field.
func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}

	return string(b)
}
