package memio_test

import (
	"testing"

	"github.com/mstrace/mstrace/memio"
	"github.com/stretchr/testify/require"
)

// fakeSource serves reads from a sparse address-space map; reads past the
// end of a region are short, reads with no region at all fail.
type fakeSource struct {
	regions map[uint64][]byte
}

func (f *fakeSource) ReadMemory(addr uint64, p []byte) (int, error) {
	for base, data := range f.regions {
		if addr < base || addr >= base+uint64(len(data)) {
			continue
		}

		n := copy(p, data[addr-base:])
		return n, nil
	}

	return 0, memio.ErrUnreadable
}

func newFake(regions map[uint64][]byte) *memio.Reader {
	return memio.NewReader(&fakeSource{regions: regions})
}

func TestReadCString(t *testing.T) {
	cases := []struct {
		name      string
		regions   map[uint64][]byte
		addr      uint64
		max       int
		expected  string
		truncated bool
		wantErr   bool
	}{
		{
			name:     "terminated string",
			regions:  map[uint64][]byte{0x1000: []byte("/etc/hostname\x00garbage")},
			addr:     0x1000,
			max:      4096,
			expected: "/etc/hostname",
		},
		{
			name:      "no terminator within max",
			regions:   map[uint64][]byte{0x1000: []byte("abcdefgh")},
			addr:      0x1000,
			max:       4,
			expected:  "abcd",
			truncated: true,
		},
		{
			name:      "region ends before terminator",
			regions:   map[uint64][]byte{0x1000: []byte("abc")},
			addr:      0x1000,
			max:       4096,
			expected:  "abc",
			truncated: true,
		},
		{
			name:    "unmapped",
			regions: map[uint64][]byte{},
			addr:    0x2000,
			max:     64,
			wantErr: true,
		},
		{
			name:    "null pointer",
			regions: map[uint64][]byte{},
			addr:    0,
			max:     64,
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := newFake(c.regions).ReadCString(c.addr, c.max)
			if c.wantErr {
				require.ErrorIs(t, err, memio.ErrUnreadable)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.expected, s.Value)
			require.Equal(t, c.truncated, s.Truncated)
		})
	}
}

func TestReadBytes(t *testing.T) {
	r := newFake(map[uint64][]byte{0x1000: []byte("hello world")})

	data, truncated, err := r.ReadBytes(0x1000, 5)
	require.NoError(t, err)
	require.False(t, truncated)
	require.Equal(t, []byte("hello"), data)

	// Short read past the end of the region.
	data, truncated, err = r.ReadBytes(0x1006, 32)
	require.NoError(t, err)
	require.True(t, truncated)
	require.Equal(t, []byte("world"), data)

	_, _, err = r.ReadBytes(0xdead, 4)
	require.ErrorIs(t, err, memio.ErrUnreadable)
}

func TestReadArray(t *testing.T) {
	r := newFake(map[uint64][]byte{0x1000: {1, 0, 2, 0, 3, 0}})

	elems, truncated, err := r.ReadArray(0x1000, 2, 3)
	require.NoError(t, err)
	require.False(t, truncated)
	require.Len(t, elems, 3)
	require.Equal(t, []byte{2, 0}, elems[1])

	// Only one whole record fits.
	elems, truncated, err = r.ReadArray(0x1000, 4, 3)
	require.NoError(t, err)
	require.True(t, truncated)
	require.Len(t, elems, 1)
}

func TestReadWords(t *testing.T) {
	r := newFake(map[uint64][]byte{0x1000: {0x78, 0x56, 0x34, 0x12, 0, 0, 0, 0}})

	u32, err := r.ReadU32(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), u32)

	u64, err := r.ReadU64(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint64(0x12345678), u64)
}
