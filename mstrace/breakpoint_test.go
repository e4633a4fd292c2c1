package mstrace_test

import (
	"errors"
	"testing"

	"github.com/mstrace/mstrace/mstrace"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSetter records breakpoint traffic and can be told to fail.
type fakeSetter struct {
	set     map[uint64]int
	failSet bool
}

func newFakeSetter() *fakeSetter {
	return &fakeSetter{set: make(map[uint64]int)}
}

func (f *fakeSetter) SetBreakpoint(addr uint64) error {
	if f.failSet {
		return errors.New("E09")
	}

	f.set[addr]++

	return nil
}

func (f *fakeSetter) ClearBreakpoint(addr uint64) error {
	f.set[addr]--

	return nil
}

func newController(f *fakeSetter) *mstrace.BreakpointController {
	return mstrace.NewBreakpointController(zap.NewNop().Sugar(), f)
}

func TestInstallEntry(t *testing.T) {
	f := newFakeSetter()
	c := newController(f)

	err := c.InstallEntry(map[string]uint64{"__kernel_syscall": 0x1000, "_syscall": 0x2000})
	require.NoError(t, err)

	require.True(t, c.IsEntry(0x1000))
	require.True(t, c.IsEntry(0x2000))
	require.False(t, c.IsEntry(0x3000))
	require.Equal(t, 1, f.set[0x1000])
}

func TestInstallEntryEmptyFails(t *testing.T) {
	c := newController(newFakeSetter())

	require.Error(t, c.InstallEntry(nil))
}

func TestInstallEntryFailureIsFatal(t *testing.T) {
	f := newFakeSetter()
	f.failSet = true

	c := newController(f)

	require.Error(t, c.InstallEntry(map[string]uint64{"_syscall": 0x1000}))
}

func TestExitRefcounting(t *testing.T) {
	f := newFakeSetter()
	c := newController(f)

	// Two threads in flight through the same return site share one
	// breakpoint.
	require.NoError(t, c.ArmExit(0x7000))
	require.NoError(t, c.ArmExit(0x7000))
	require.Equal(t, 1, f.set[0x7000])
	require.True(t, c.IsExit(0x7000))

	c.DisarmExit(0x7000)
	require.True(t, c.IsExit(0x7000), "still referenced by the second thread")
	require.Equal(t, 1, f.set[0x7000])

	c.DisarmExit(0x7000)
	require.False(t, c.IsExit(0x7000))
	require.Equal(t, 0, f.set[0x7000])

	// Disarming an unknown site is a no-op.
	c.DisarmExit(0x9999)
	require.Equal(t, 0, f.set[0x9999])
}

func TestRemoveAll(t *testing.T) {
	f := newFakeSetter()
	c := newController(f)

	require.NoError(t, c.InstallEntry(map[string]uint64{"_syscall": 0x1000}))
	require.NoError(t, c.ArmExit(0x7000))

	c.RemoveAll()

	require.False(t, c.IsEntry(0x1000))
	require.False(t, c.IsExit(0x7000))
	require.Equal(t, 0, f.set[0x1000])
	require.Equal(t, 0, f.set[0x7000])
}
