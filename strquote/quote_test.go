package strquote_test

import (
	"strings"
	"testing"

	"github.com/mstrace/mstrace/strquote"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		name     string
		data     []byte
		limit    int
		expected string
	}{
		{
			name:     "plain text",
			data:     []byte("/etc/hostname"),
			limit:    32,
			expected: "/etc/hostname",
		},
		{
			name:     "whitespace escapes",
			data:     []byte("a\tb\nc\r"),
			limit:    32,
			expected: `a\tb\nc\r`,
		},
		{
			name:     "quotes and backslashes",
			data:     []byte(`say "hi" \now`),
			limit:    32,
			expected: `say \"hi\" \\now`,
		},
		{
			name:     "non printable minimal octal",
			data:     []byte{0x01, 'x'},
			limit:    32,
			expected: `\1x`,
		},
		{
			name:     "octal padded before digit",
			data:     []byte{0x01, '7'},
			limit:    32,
			expected: `\0017`,
		},
		{
			name:     "high byte",
			data:     []byte{0xff},
			limit:    32,
			expected: `\377`,
		},
		{
			name:     "empty",
			data:     nil,
			limit:    32,
			expected: "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, strquote.Quote(c.data, c.limit))
		})
	}
}

func TestQuoteTruncation(t *testing.T) {
	data := []byte(strings.Repeat("a", 33))

	// Exactly at the cap: shown in full, no ellipsis.
	require.Equal(t, strings.Repeat("a", 32), strquote.Quote(data[:32], 32))

	// One past the cap: truncated with ellipsis.
	require.Equal(t, strings.Repeat("a", 32)+"...", strquote.Quote(data, 32))
}

func TestQuoteDefaultLimit(t *testing.T) {
	data := []byte(strings.Repeat("b", 40))

	require.Equal(t, strings.Repeat("b", 32)+"...", strquote.Quote(data, 0))
}
