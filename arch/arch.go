// Package arch abstracts the per-architecture knowledge the tracer needs:
// which registers carry the syscall number, arguments and return value, how
// the kernel signals an error, and where the syscall trampoline lives.
// Everything architecture-specific is behind the Adapter interface so the
// decoders and the session never branch on CPU type.
package arch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported reports a target triple neither adapter covers.
var ErrUnsupported = errors.New("unsupported architecture")

// MaxArgs is the number of syscall argument registers on both supported
// ABIs.
const MaxArgs = 6

// Registers is a read-only view of one thread's register file, addressed by
// the names debugserver reports (x0…x30, sp, pc, cpsr / rax…r15, rip,
// rflags).
type Registers interface {
	Read(name string) (uint64, error)
}

// Memory is the single word read ReturnAddress needs on x86-64, where the
// return address lives on the stack rather than in a register.
type Memory interface {
	ReadU64(addr uint64) (uint64, error)
}

// Adapter maps the tracer's abstract register questions onto one
// architecture.
type Adapter interface {
	// Name is the canonical architecture name ("arm64" or "x86_64").
	Name() string

	// SyscallNumber reads the BSD syscall number at trampoline entry, with
	// any syscall-class bits already masked off.
	SyscallNumber(regs Registers) (uint64, error)

	// Arg reads argument i (0-based, i < MaxArgs) per the syscall calling
	// convention.
	Arg(i int, regs Registers) (uint64, error)

	// ReturnValue reads the raw return register as a signed value.
	ReturnValue(regs Registers) (int64, error)

	// ErrorIndicator reads the carry-style flag the kernel sets when the
	// return value is an errno.
	ErrorIndicator(regs Registers) (bool, error)

	// EntrySymbols is the ordered list of libsystem symbol names that
	// implement the BSD syscall trampoline on this architecture. The name
	// has varied across macOS releases, hence a list.
	EntrySymbols() []string

	// ReturnAddress computes where the trampoline will return to, for the
	// one-shot exit breakpoint.
	ReturnAddress(regs Registers, mem Memory) (uint64, error)
}

// Detect picks the adapter for a target triple such as
// "arm64-apple-macosx14.0.0" or "x86_64-apple-macosx".
func Detect(triple string) (Adapter, error) {
	cpu, _, _ := strings.Cut(triple, "-")

	switch cpu {
	case "arm64", "arm64e", "aarch64":
		return ARM64{}, nil
	case "x86_64", "x86_64h":
		return AMD64{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, triple)
	}
}
