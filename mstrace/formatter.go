package mstrace

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter renders events as strace-style lines:
//
//	openat(AT_FDCWD, "/etc/hostname", O_RDONLY) = 3
type TextFormatter struct {
	w io.Writer
}

// NewTextFormatter returns a plain text sink writing to w.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{w: w}
}

// formatLine builds the uncolored event line shared by the plain and
// colored formatters.
func formatLine(ev *SyscallEvent) string {
	var b strings.Builder

	b.WriteString(ev.Name)
	b.WriteByte('(')
	b.WriteString(joinArgs(ev))
	b.WriteByte(')')

	if ev.Unfinished {
		b.WriteString(" = ? <unfinished>")
		return b.String()
	}

	b.WriteString(" = ")
	b.WriteString(ev.RetvalDecoded)

	return b.String()
}

func joinArgs(ev *SyscallEvent) string {
	parts := make([]string, 0, len(ev.Args))

	for _, a := range ev.Args {
		if a.Omitted {
			continue
		}

		parts = append(parts, a.Value)
	}

	return strings.Join(parts, ", ")
}

// Emit writes one line per event.
func (f *TextFormatter) Emit(ev *SyscallEvent) error {
	if _, err := fmt.Fprintln(f.w, formatLine(ev)); err != nil {
		return fmt.Errorf("failed to write event line: %w", err)
	}

	return nil
}

// Flush is a no-op: lines are written unbuffered.
func (f *TextFormatter) Flush() error { return nil }
