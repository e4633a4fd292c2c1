package mstrace_test

import (
	"testing"

	"github.com/mstrace/mstrace/mstrace"
	"github.com/mstrace/mstrace/syscalls"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *syscalls.Registry {
	t.Helper()

	r, err := syscalls.NewRegistry()
	require.NoError(t, err)

	return r
}

func TestParseFilter(t *testing.T) {
	reg := testRegistry(t)

	cases := []struct {
		name     string
		expr     string
		allowed  []string
		rejected []string
	}{
		{
			name:     "names",
			expr:     "open,openat",
			allowed:  []string{"open", "openat"},
			rejected: []string{"close", "read"},
		},
		{
			name:     "category",
			expr:     "file",
			allowed:  []string{"open", "read", "stat64"},
			rejected: []string{"socket", "fork"},
		},
		{
			name:     "mixed names and categories",
			expr:     "network,kill",
			allowed:  []string{"socket", "connect", "kill"},
			rejected: []string{"open", "getpid"},
		},
		{
			name:     "trace= prefix accepted",
			expr:     "trace=open",
			allowed:  []string{"open"},
			rejected: []string{"close"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := mstrace.ParseFilter(c.expr, reg)
			require.NoError(t, err)

			for _, name := range c.allowed {
				schema, ok := reg.ByName(name)
				require.True(t, ok, name)
				require.True(t, f.Allow(schema), "expected %s allowed", name)
			}

			for _, name := range c.rejected {
				schema, ok := reg.ByName(name)
				require.True(t, ok, name)
				require.False(t, f.Allow(schema), "expected %s rejected", name)
			}
		})
	}
}

func TestParseFilterEmpty(t *testing.T) {
	reg := testRegistry(t)

	f, err := mstrace.ParseFilter("", reg)
	require.NoError(t, err)
	require.Nil(t, f)

	// A nil filter accepts everything, unknown schemas included.
	schema, _ := reg.ByName("open")
	require.True(t, f.Allow(schema))
	require.True(t, f.Allow(nil))
}

func TestParseFilterUnknownToken(t *testing.T) {
	reg := testRegistry(t)

	_, err := mstrace.ParseFilter("open,bogus_call", reg)
	require.Error(t, err)

	kind, ok := mstrace.KindOf(err)
	require.True(t, ok)
	require.Equal(t, mstrace.UsageError, kind)
}

func TestFilterRejectsUnknownSchema(t *testing.T) {
	reg := testRegistry(t)

	f, err := mstrace.ParseFilter("open", reg)
	require.NoError(t, err)

	// An active filter cannot match a nameless syscall.
	require.False(t, f.Allow(nil))
}
