package mstrace

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ColorTextFormatter renders the strace-style line with ANSI color
// classes: syscall name, string literals, numbers, flag sets, and error
// returns.
type ColorTextFormatter struct {
	w io.Writer

	syscall *color.Color
	str     *color.Color
	num     *color.Color
	flags   *color.Color
	pointer *color.Color
	retOK   *color.Color
	retErr  *color.Color
}

// NewColorTextFormatter returns a colored text sink writing to w.
func NewColorTextFormatter(w io.Writer) *ColorTextFormatter {
	return &ColorTextFormatter{
		w:       w,
		syscall: color.New(color.FgCyan, color.Bold),
		str:     color.New(color.FgYellow),
		num:     color.New(color.FgMagenta),
		flags:   color.New(color.FgGreen),
		pointer: color.New(color.FgBlue),
		retOK:   color.New(color.FgGreen, color.Bold),
		retErr:  color.New(color.FgRed, color.Bold),
	}
}

// Emit writes one colored line per event.
func (f *ColorTextFormatter) Emit(ev *SyscallEvent) error {
	var b strings.Builder

	b.WriteString(f.syscall.Sprint(ev.Name))
	b.WriteByte('(')

	first := true

	for _, a := range ev.Args {
		if a.Omitted {
			continue
		}

		if !first {
			b.WriteString(", ")
		}

		first = false

		b.WriteString(f.colorArg(a.Value))
	}

	b.WriteByte(')')

	if ev.Unfinished {
		b.WriteString(" = ? <unfinished>")
	} else {
		b.WriteString(" = ")

		if ev.Error {
			b.WriteString(f.retErr.Sprint(ev.RetvalDecoded))
		} else {
			b.WriteString(f.retOK.Sprint(ev.RetvalDecoded))
		}
	}

	if _, err := fmt.Fprintln(f.w, b.String()); err != nil {
		return fmt.Errorf("failed to write event line: %w", err)
	}

	return nil
}

// colorArg picks the color class from the rendered value's shape.
func (f *ColorTextFormatter) colorArg(value string) string {
	switch {
	case value == "":
		return value
	case value[0] == '"':
		return f.str.Sprint(value)
	case strings.HasPrefix(value, "0x"):
		return f.pointer.Sprint(value)
	case value[0] == '-' || (value[0] >= '0' && value[0] <= '9'):
		return f.num.Sprint(value)
	case strings.ContainsAny(value, "|") || strings.ToUpper(value) == value && strings.Contains(value, "_"):
		return f.flags.Sprint(value)
	default:
		return value
	}
}

// Flush is a no-op: lines are written unbuffered.
func (f *ColorTextFormatter) Flush() error { return nil }
