// Package mstrace is the tracer core: it owns the debugger session, pairs
// syscall entries with their exits per thread, renders events and feeds
// them to the configured sinks.
package mstrace

import (
	"time"

	"github.com/mstrace/mstrace/syscalls"
)

// SyscallEvent is one completed (or unfinished) syscall observation.
type SyscallEvent struct {
	Number   uint64
	Name     string
	Category syscalls.Category

	// Args are rendered in declared order; omitted entries are dropped by
	// the formatters.
	Args []syscalls.Arg

	// Retval is the raw (sign-normalized) return register value;
	// RetvalDecoded its symbolic form. Error mirrors the architecture's
	// errno indicator.
	Retval        int64
	RetvalDecoded string
	Error         bool

	Start    time.Time
	End      time.Time
	ThreadID uint64

	// Unfinished marks a syscall with no observable return (thread died,
	// target exited, exit breakpoint could not be armed).
	Unfinished bool
}

// Duration is the elapsed wall-clock time between entry and exit.
func (ev *SyscallEvent) Duration() time.Duration {
	if ev.End.Before(ev.Start) {
		return 0
	}

	return ev.End.Sub(ev.Start)
}
