package arch_test

import (
	"testing"

	"github.com/mstrace/mstrace/arch"
	"github.com/stretchr/testify/require"
)

type fakeRegs map[string]uint64

func (f fakeRegs) Read(name string) (uint64, error) {
	v, ok := f[name]
	if !ok {
		return 0, &missingReg{name}
	}

	return v, nil
}

type missingReg struct{ name string }

func (m *missingReg) Error() string { return "no register " + m.name }

type fakeMem map[uint64]uint64

func (f fakeMem) ReadU64(addr uint64) (uint64, error) {
	return f[addr], nil
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name     string
		triple   string
		expected string
		wantErr  bool
	}{
		{name: "arm64", triple: "arm64-apple-macosx14.0.0", expected: "arm64"},
		{name: "arm64e", triple: "arm64e-apple-macosx", expected: "arm64"},
		{name: "intel", triple: "x86_64-apple-macosx12.0.0", expected: "x86_64"},
		{name: "unsupported", triple: "riscv64-unknown-linux", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arch.Detect(c.triple)
			if c.wantErr {
				require.ErrorIs(t, err, arch.ErrUnsupported)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.expected, a.Name())
		})
	}
}

func TestARM64(t *testing.T) {
	a := arch.ARM64{}

	regs := fakeRegs{
		"x0": 3, "x1": 0x1000, "x2": 512, "x3": 0, "x4": 0, "x5": 0,
		"x16":  5,
		"lr":   0x100004000,
		"cpsr": 0,
	}

	num, err := a.SyscallNumber(regs)
	require.NoError(t, err)
	require.Equal(t, uint64(5), num)

	arg0, err := a.Arg(0, regs)
	require.NoError(t, err)
	require.Equal(t, uint64(3), arg0)

	arg2, err := a.Arg(2, regs)
	require.NoError(t, err)
	require.Equal(t, uint64(512), arg2)

	_, err = a.Arg(6, regs)
	require.Error(t, err)

	ret, err := a.ReturnValue(regs)
	require.NoError(t, err)
	require.Equal(t, int64(3), ret)

	carry, err := a.ErrorIndicator(regs)
	require.NoError(t, err)
	require.False(t, carry)

	regs["cpsr"] = 1 << 29
	carry, err = a.ErrorIndicator(regs)
	require.NoError(t, err)
	require.True(t, carry)

	addr, err := a.ReturnAddress(regs, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0x100004000), addr)

	require.NotEmpty(t, a.EntrySymbols())
}

func TestAMD64(t *testing.T) {
	a := arch.AMD64{}

	regs := fakeRegs{
		"rax": 0x2000005, // open with the BSD class bits set
		"rdi": 0x2000, "rsi": 0, "rdx": 0, "rcx": 0, "r8": 0, "r9": 0,
		"rsp":    0x7ff0,
		"rflags": 0,
	}
	mem := fakeMem{0x7ff0: 0x100008000}

	num, err := a.SyscallNumber(regs)
	require.NoError(t, err)
	require.Equal(t, uint64(5), num)

	arg0, err := a.Arg(0, regs)
	require.NoError(t, err)
	require.Equal(t, uint64(0x2000), arg0)

	// A negated errno comes back as a negative signed value.
	regs["rax"] = ^uint64(0) // -1
	ret, err := a.ReturnValue(regs)
	require.NoError(t, err)
	require.Equal(t, int64(-1), ret)

	regs["rflags"] = 1
	carry, err := a.ErrorIndicator(regs)
	require.NoError(t, err)
	require.True(t, carry)

	addr, err := a.ReturnAddress(regs, mem)
	require.NoError(t, err)
	require.Equal(t, uint64(0x100008000), addr)
}
