package syscalls_test

import (
	"testing"

	"github.com/mstrace/mstrace/memio"
	"github.com/mstrace/mstrace/structs"
	"github.com/mstrace/mstrace/syscalls"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	regions map[uint64][]byte
}

func (f *fakeSource) ReadMemory(addr uint64, p []byte) (int, error) {
	for base, data := range f.regions {
		if addr < base || addr >= base+uint64(len(data)) {
			continue
		}

		return copy(p, data[addr-base:]), nil
	}

	return 0, memio.ErrUnreadable
}

func newContext(regions map[uint64][]byte) *syscalls.Context {
	mem := memio.NewReader(&fakeSource{regions: regions})

	return &syscalls.Context{
		Mem:     mem,
		Structs: structs.NewRenderer(mem, 32),
		Limit:   32,
	}
}

func mustSchema(t *testing.T, name string) *syscalls.Schema {
	t.Helper()

	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	s, ok := r.ByName(name)
	require.True(t, ok)

	return s
}

func values(args []syscalls.Arg) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a.Omitted {
			continue
		}

		out = append(out, a.Value)
	}

	return out
}

func TestRenderOpenWithoutCreat(t *testing.T) {
	s := mustSchema(t, "open")

	ctx := newContext(map[uint64][]byte{0x1000: []byte("/etc/hostname\x00")})
	ctx.Args = [6]uint64{0x1000, 0, 0o644}

	args := s.RenderEntry(ctx)

	// The mode argument only exists with O_CREAT.
	require.Equal(t, []string{`"/etc/hostname"`, "O_RDONLY"}, values(args))
}

func TestRenderOpenWithCreat(t *testing.T) {
	s := mustSchema(t, "open")

	ctx := newContext(map[uint64][]byte{0x1000: []byte("/tmp/out\x00")})
	ctx.Args = [6]uint64{0x1000, 0x0001 | 0x0200, 0o644}

	args := s.RenderEntry(ctx)

	require.Equal(t, []string{`"/tmp/out"`, "O_WRONLY|O_CREAT", "0644"}, values(args))
}

func TestRenderReadBufferAtExit(t *testing.T) {
	s := mustSchema(t, "read")

	ctx := newContext(map[uint64][]byte{0x2000: []byte("hello world")})
	ctx.Args = [6]uint64{3, 0x2000, 1024}

	args := s.RenderEntry(ctx)

	// At entry the kernel has not written yet: placeholder pointer.
	require.Equal(t, []string{"3", "0x2000", "1024"}, values(args))

	ctx.AtExit = true
	ctx.Ret = 11
	s.RenderExit(ctx, args)

	require.Equal(t, []string{"3", `"hello world"`, "1024"}, values(args))
}

func TestRenderExitSkippedOnError(t *testing.T) {
	s := mustSchema(t, "read")

	ctx := newContext(map[uint64][]byte{})
	ctx.Args = [6]uint64{3, 0x2000, 1024}

	args := s.RenderEntry(ctx)

	ctx.AtExit = true
	ctx.Ret = -9
	ctx.Errno = true
	s.RenderExit(ctx, args)

	// EBADF: the kernel wrote nothing, the placeholder stays.
	require.Equal(t, []string{"3", "0x2000", "1024"}, values(args))
}

func TestRenderUnreadablePath(t *testing.T) {
	s := mustSchema(t, "unlink")

	ctx := newContext(map[uint64][]byte{})
	ctx.Args = [6]uint64{0xdead0000}

	args := s.RenderEntry(ctx)

	require.Equal(t, []string{"0xdead0000 <unreadable>"}, values(args))
}

func TestRenderWritevVector(t *testing.T) {
	s := mustSchema(t, "writev")

	iov := make([]byte, 16)
	iov[0] = 0x00
	iov[1] = 0x30 // base 0x3000
	iov[8] = 3    // len 3

	ctx := newContext(map[uint64][]byte{
		0x2000: iov,
		0x3000: []byte("abc"),
	})
	ctx.Args = [6]uint64{1, 0x2000, 1}

	args := s.RenderEntry(ctx)

	require.Equal(t, []string{"1", `[{iov_base="abc", iov_len=3}]`, "1"}, values(args))
}

func TestRetDecoders(t *testing.T) {
	ctx := &syscalls.Context{Ret: 0}
	require.Equal(t, "0", syscalls.RetDefault(ctx))

	ctx = &syscalls.Context{Ret: -2, Errno: true}
	require.Equal(t, "-1 ENOENT (No such file or directory)", syscalls.RetDefault(ctx))

	ctx = &syscalls.Context{Ret: 0x104000000}
	require.Equal(t, "0x104000000", syscalls.RetPtr(ctx))

	// fcntl F_GETFL decodes the returned flag set.
	ctx = &syscalls.Context{Ret: 0x0002, Args: [6]uint64{5, 3}}
	require.Equal(t, "O_RDWR (0x2)", syscalls.RetFcntl(ctx))
}
