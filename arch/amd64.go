package arch

import "fmt"

// AMD64 implements Adapter for Intel Macs.
//
// The trampoline receives arguments per the SysV convention; the syscall
// number carries the Darwin BSD class bits (0x2000000) in rax, which are
// masked off here so the registry sees plain BSD numbers. Errors are
// reported through the carry flag in rflags.
type AMD64 struct{}

var amd64ArgRegs = [MaxArgs]string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// Darwin encodes the syscall class in bits 24-31 of the number.
const amd64ClassMask = 0xffffff

func (AMD64) Name() string { return "x86_64" }

func (AMD64) SyscallNumber(regs Registers) (uint64, error) {
	rax, err := regs.Read("rax")
	if err != nil {
		return 0, err
	}

	return rax & amd64ClassMask, nil
}

func (AMD64) Arg(i int, regs Registers) (uint64, error) {
	if i < 0 || i >= MaxArgs {
		return 0, fmt.Errorf("argument index %d out of range", i)
	}

	return regs.Read(amd64ArgRegs[i])
}

func (AMD64) ReturnValue(regs Registers) (int64, error) {
	v, err := regs.Read("rax")
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// rflags bit 0 is the carry flag.
const amd64CarryBit = 1 << 0

func (AMD64) ErrorIndicator(regs Registers) (bool, error) {
	rflags, err := regs.Read("rflags")
	if err != nil {
		return false, err
	}

	return rflags&amd64CarryBit != 0, nil
}

func (AMD64) EntrySymbols() []string {
	return []string{"__syscall", "_syscall"}
}

// The trampoline is reached by call, so the return site is the word at the
// top of the stack.
func (AMD64) ReturnAddress(regs Registers, mem Memory) (uint64, error) {
	rsp, err := regs.Read("rsp")
	if err != nil {
		return 0, err
	}

	return mem.ReadU64(rsp)
}
