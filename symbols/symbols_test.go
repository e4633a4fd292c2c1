package symbols_test

import (
	"testing"

	"github.com/mstrace/mstrace/symbols"
	"github.com/stretchr/testify/require"
)

func TestFlagSetDecode(t *testing.T) {
	cases := []struct {
		name     string
		fs       symbols.FlagSet
		value    uint64
		expected string
	}{
		{
			name:     "single flag",
			fs:       symbols.OpenFlags,
			value:    0x0001,
			expected: "O_WRONLY",
		},
		{
			name:     "combined flags in table order",
			fs:       symbols.OpenFlags,
			value:    0x0001 | 0x0200 | 0x0400,
			expected: "O_WRONLY|O_CREAT|O_TRUNC",
		},
		{
			name:     "zero with zero name",
			fs:       symbols.OpenFlags,
			value:    0,
			expected: "O_RDONLY",
		},
		{
			name:     "zero without zero name",
			fs:       symbols.AtFlags,
			value:    0,
			expected: "0",
		},
		{
			name:     "residual bits as hex suffix",
			fs:       symbols.AtFlags,
			value:    0x0020 | 0x4000,
			expected: "AT_SYMLINK_NOFOLLOW|0x4000",
		},
		{
			name:     "prot none",
			fs:       symbols.ProtFlags,
			value:    0,
			expected: "PROT_NONE",
		},
		{
			name:     "prot read write",
			fs:       symbols.ProtFlags,
			value:    3,
			expected: "PROT_READ|PROT_WRITE",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, c.fs.Decode(c.value))
		})
	}
}

// Every value expressible as a disjoint OR over the table must survive a
// decode/parse round-trip, including the residual-bits rendering.
func TestFlagSetRoundTrip(t *testing.T) {
	sets := map[string]symbols.FlagSet{
		"open":  symbols.OpenFlags,
		"map":   symbols.MapFlags,
		"msg":   symbols.MsgFlags,
		"at":    symbols.AtFlags,
		"wait":  symbols.WaitOptions,
		"event": symbols.EvFlags,
	}

	for name, fs := range sets {
		t.Run(name, func(t *testing.T) {
			var all uint64
			for _, f := range fs.Flags {
				all |= f.Mask
			}

			values := []uint64{0, all}
			for _, f := range fs.Flags {
				values = append(values, f.Mask, f.Mask|fs.Flags[0].Mask)
			}

			// Residual case: a bit no table covers.
			values = append(values, all|1<<47)

			for _, v := range values {
				decoded := fs.Decode(v)

				parsed, err := fs.Parse(decoded)
				require.NoError(t, err, "decode %#x -> %q", v, decoded)
				require.Equal(t, v, parsed, "round-trip of %#x via %q", v, decoded)
			}
		})
	}
}

func TestEnumDecode(t *testing.T) {
	require.Equal(t, "SEEK_END", symbols.SeekWhence.Decode(2))
	require.Equal(t, "AF_INET6", symbols.AddressFamilies.Decode(30))

	// Misses render with the prefix and decimal value, never raw hex.
	require.Equal(t, "SEEK_99", symbols.SeekWhence.Decode(99))
	require.Equal(t, "AF_77", symbols.AddressFamilies.Decode(77))
}

func TestDecodeErrno(t *testing.T) {
	cases := []struct {
		name     string
		ret      int64
		expected string
	}{
		{"enoent", -2, "-1 ENOENT (No such file or directory)"},
		{"eagain", -35, "-1 EAGAIN (Resource temporarily unavailable)"},
		{"eintr", -4, "-1 EINTR (Interrupted system call)"},
		{"unknown", -999, "-1 ERRNO_999 (Unknown error)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, symbols.DecodeErrno(c.ret))
		})
	}
}

func TestFileMode(t *testing.T) {
	require.Equal(t, "S_IFREG|0644", symbols.FileMode(0o100644))
	require.Equal(t, "S_IFDIR|0755", symbols.FileMode(0o040755))
	require.Equal(t, "0600", symbols.FileMode(0o600))
}

func TestDirfd(t *testing.T) {
	require.Equal(t, "AT_FDCWD", symbols.Dirfd(-2))
	require.Equal(t, "3", symbols.Dirfd(3))
}

func TestDev(t *testing.T) {
	require.Equal(t, "makedev(1, 5)", symbols.Dev(1<<24|5))
}
