package mstrace

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// summaryRow is the per-syscall aggregate: call count, error count and
// cumulative elapsed time.
type summaryRow struct {
	calls   int64
	errors  int64
	elapsed time.Duration
}

// Summary aggregates emitted events into the -c table. It retains only
// scalars per syscall name; events are not stored.
type Summary struct {
	rows map[string]*summaryRow
}

// NewSummary returns an empty aggregator.
func NewSummary() *Summary {
	return &Summary{rows: make(map[string]*summaryRow)}
}

// Emit implements Sink.
func (s *Summary) Emit(ev *SyscallEvent) error {
	row := s.row(ev.Name)

	row.calls++
	row.elapsed += ev.Duration()

	if ev.Error {
		row.errors++
	}

	return nil
}

// Flush implements Sink; rendering happens separately at shutdown.
func (s *Summary) Flush() error { return nil }

// CountRejected records a filter-rejected call as a bare count, used only
// when the session is configured to keep rejected calls visible in the
// summary.
func (s *Summary) CountRejected(name string) {
	s.row(name).calls++
}

func (s *Summary) row(name string) *summaryRow {
	row, ok := s.rows[name]
	if !ok {
		row = &summaryRow{}
		s.rows[name] = row
	}

	return row
}

// TotalCalls is the number of aggregated calls.
func (s *Summary) TotalCalls() int64 {
	var total int64
	for _, row := range s.rows {
		total += row.calls
	}

	return total
}

// Render writes the summary table, sorted by cumulative elapsed time.
func (s *Summary) Render(w io.Writer) error {
	names := make([]string, 0, len(s.rows))
	for name := range s.rows {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := s.rows[names[i]], s.rows[names[j]]
		if a.elapsed != b.elapsed {
			return a.elapsed > b.elapsed
		}

		return names[i] < names[j]
	})

	var (
		totalElapsed time.Duration
		totalCalls   int64
		totalErrors  int64
	)

	for _, row := range s.rows {
		totalElapsed += row.elapsed
		totalCalls += row.calls
		totalErrors += row.errors
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)

	// strace's summary is lowercase; keep go-pretty from shouting.
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)

	t.AppendHeader(table.Row{"% time", "seconds", "usecs/call", "calls", "errors", "syscall"})

	for _, name := range names {
		row := s.rows[name]

		percent := 0.0
		if totalElapsed > 0 {
			percent = float64(row.elapsed) / float64(totalElapsed) * 100
		}

		usecsPerCall := int64(0)
		if row.calls > 0 {
			usecsPerCall = row.elapsed.Microseconds() / row.calls
		}

		errCol := ""
		if row.errors > 0 {
			errCol = fmt.Sprintf("%d", row.errors)
		}

		t.AppendRow(table.Row{
			fmt.Sprintf("%6.2f", percent),
			fmt.Sprintf("%.6f", row.elapsed.Seconds()),
			usecsPerCall,
			row.calls,
			errCol,
			name,
		})
	}

	errTotal := ""
	if totalErrors > 0 {
		errTotal = fmt.Sprintf("%d", totalErrors)
	}

	t.AppendFooter(table.Row{
		"100.00",
		fmt.Sprintf("%.6f", totalElapsed.Seconds()),
		"",
		totalCalls,
		errTotal,
		"total",
	})

	t.Render()

	return nil
}
