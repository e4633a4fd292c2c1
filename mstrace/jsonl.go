package mstrace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// jsonArg preserves the declared argument order in the output array.
type jsonArg struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// jsonEvent is the JSON-Lines record schema.
type jsonEvent struct {
	Ts            string    `json:"ts"`
	DurUs         int64     `json:"dur_us"`
	Tid           uint64    `json:"tid"`
	Syscall       string    `json:"syscall"`
	Category      string    `json:"category"`
	Args          []jsonArg `json:"args"`
	Retval        int64     `json:"retval"`
	RetvalDecoded string    `json:"retval_decoded"`
	Error         bool      `json:"error"`
	Unfinished    bool      `json:"unfinished,omitempty"`
}

// JSONFormatter emits one JSON object per line. Lines are buffered and
// written whole so a crash never leaves a partial record.
type JSONFormatter struct {
	w *bufio.Writer
}

// NewJSONFormatter returns a JSON-Lines sink writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: bufio.NewWriter(w)}
}

// Emit writes one record.
func (f *JSONFormatter) Emit(ev *SyscallEvent) error {
	args := make([]jsonArg, 0, len(ev.Args))

	for _, a := range ev.Args {
		if a.Omitted {
			continue
		}

		args = append(args, jsonArg{Name: a.Name, Value: a.Value})
	}

	rec := jsonEvent{
		Ts:            ev.Start.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
		DurUs:         ev.Duration().Microseconds(),
		Tid:           ev.ThreadID,
		Syscall:       ev.Name,
		Category:      ev.Category.String(),
		Args:          args,
		Retval:        ev.Retval,
		RetvalDecoded: ev.RetvalDecoded,
		Error:         ev.Error,
		Unfinished:    ev.Unfinished,
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal event to json: %w", err)
	}

	line = append(line, '\n')

	if _, err := f.w.Write(line); err != nil {
		return fmt.Errorf("failed to write json line: %w", err)
	}

	// Whole lines only: flush after each record so readers never see a
	// torn object.
	if err := f.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush json line: %w", err)
	}

	return nil
}

// Flush flushes the buffer.
func (f *JSONFormatter) Flush() error {
	if err := f.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush json sink: %w", err)
	}

	return nil
}
