package syscalls_test

import (
	"testing"

	"github.com/mstrace/mstrace/syscalls"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r, err := syscalls.NewRegistry()
	require.NoError(t, err)
	require.Greater(t, r.Len(), 100)
}

func TestLookupByNumber(t *testing.T) {
	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	cases := []struct {
		name     string
		number   uint64
		expected string
		category syscalls.Category
	}{
		{name: "read", number: 3, expected: "read", category: syscalls.File},
		{name: "write", number: 4, expected: "write", category: syscalls.File},
		{name: "open", number: 5, expected: "open", category: syscalls.File},
		{name: "socket", number: 97, expected: "socket", category: syscalls.Network},
		{name: "fork", number: 2, expected: "fork", category: syscalls.Process},
		{name: "mmap", number: 197, expected: "mmap", category: syscalls.Memory},
		{name: "kill", number: 37, expected: "kill", category: syscalls.Signal},
		{name: "kevent", number: 363, expected: "kevent", category: syscalls.IPC},
		{name: "openat", number: 463, expected: "openat", category: syscalls.File},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := r.ByNumber(c.number)
			require.True(t, ok)
			require.Equal(t, c.expected, s.Name)
			require.Equal(t, c.category, s.Category)
		})
	}
}

func TestLookupUnknownNumber(t *testing.T) {
	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	_, ok := r.ByNumber(99999)
	require.False(t, ok)
}

func TestLookupByName(t *testing.T) {
	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	s, ok := r.ByName("OPENAT")
	require.True(t, ok)
	require.Equal(t, uint64(463), s.Number)

	_, ok = r.ByName("no_such_call")
	require.False(t, ok)
}

// The registry must resolve each number to exactly one schema, and every
// schema must be indexed under its own name.
func TestRegistryConsistency(t *testing.T) {
	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	for _, s := range r.All() {
		byNum, ok := r.ByNumber(s.Number)
		require.True(t, ok)
		require.Same(t, s, byNum)

		byName, ok := r.ByName(s.Name)
		require.True(t, ok, "schema %s not indexed by name", s.Name)
		require.Equal(t, s.Number, byName.Number)

		require.LessOrEqual(t, len(s.Params), 6, "%s exceeds the capture register count", s.Name)
		require.NotNil(t, s.Ret, "%s has no return decoder", s.Name)
	}
}

func TestSignature(t *testing.T) {
	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	s, _ := r.ByName("read")
	require.Equal(t, "read(int fd, void * buf, size_t nbyte)", s.Signature())
}

func TestRawRendering(t *testing.T) {
	require.Equal(t, "syscall_9999", syscalls.RawName(9999))

	args := syscalls.RawArgs([6]uint64{1, 0x2000, 0, 0, 0, 0})
	require.Len(t, args, 6)
	require.Equal(t, "0x1", args[0].Value)
	require.Equal(t, "0x2000", args[1].Value)
}
