package mstrace

import (
	"fmt"

	"go.uber.org/zap"
)

// breakpointSetter is the slice of the debugger client the controller
// needs.
type breakpointSetter interface {
	SetBreakpoint(addr uint64) error
	ClearBreakpoint(addr uint64) error
}

// BreakpointController owns the tracer's breakpoints: the permanent entry
// breakpoints on the syscall trampoline(s) and the one-shot exit
// breakpoints at return sites. Exit sites are refcounted by address
// because two threads can be in flight through the same call site.
type BreakpointController struct {
	logger *zap.SugaredLogger
	client breakpointSetter

	entries map[uint64]bool
	exits   map[uint64]int
}

// NewBreakpointController returns a controller with no breakpoints
// installed.
func NewBreakpointController(logger *zap.SugaredLogger, client breakpointSetter) *BreakpointController {
	return &BreakpointController{
		logger:  logger,
		client:  client,
		entries: make(map[uint64]bool),
		exits:   make(map[uint64]int),
	}
}

// InstallEntry plants the permanent entry breakpoints. Failing to install
// any of them is fatal: without an entry breakpoint there is no tracing.
func (b *BreakpointController) InstallEntry(addrs map[string]uint64) error {
	if len(addrs) == 0 {
		return fmt.Errorf("no trampoline addresses to breakpoint")
	}

	for sym, addr := range addrs {
		if b.entries[addr] {
			continue
		}

		if err := b.client.SetBreakpoint(addr); err != nil {
			return fmt.Errorf("failed to install entry breakpoint at %s (%#x): %w", sym, addr, err)
		}

		b.entries[addr] = true

		b.logger.Debugw("entry breakpoint installed", "symbol", sym, "addr", fmt.Sprintf("%#x", addr))
	}

	return nil
}

// IsEntry reports whether addr is one of the trampoline breakpoints.
func (b *BreakpointController) IsEntry(addr uint64) bool {
	return b.entries[addr]
}

// ArmExit ensures a breakpoint exists at the return site, taking a
// reference on it.
func (b *BreakpointController) ArmExit(addr uint64) error {
	if b.exits[addr] == 0 {
		if err := b.client.SetBreakpoint(addr); err != nil {
			return fmt.Errorf("failed to arm exit breakpoint at %#x: %w", addr, err)
		}
	}

	b.exits[addr]++

	return nil
}

// DisarmExit drops one reference on the return site, removing the
// breakpoint when it was the last.
func (b *BreakpointController) DisarmExit(addr uint64) {
	n, ok := b.exits[addr]
	if !ok {
		return
	}

	if n > 1 {
		b.exits[addr] = n - 1
		return
	}

	delete(b.exits, addr)

	if err := b.client.ClearBreakpoint(addr); err != nil {
		// The site is no longer tracked, so RemoveAll will not retry it; a
		// failed clear here only costs a spurious future stop.
		b.logger.Debugw("failed to clear exit breakpoint", "addr", fmt.Sprintf("%#x", addr), "err", err)
	}
}

// IsExit reports whether addr currently has an armed exit breakpoint.
func (b *BreakpointController) IsExit(addr uint64) bool {
	return b.exits[addr] > 0
}

// RemoveAll clears every breakpoint the controller owns, for shutdown and
// detach paths.
func (b *BreakpointController) RemoveAll() {
	for addr := range b.exits {
		_ = b.client.ClearBreakpoint(addr)
		delete(b.exits, addr)
	}

	for addr := range b.entries {
		_ = b.client.ClearBreakpoint(addr)
		delete(b.entries, addr)
	}
}
