package mstrace

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ChildStopEnv is the sentinel understood by the external fork
// interposition library: when set in a traced target's environment, newly
// spawned children SIGSTOP themselves so the tracer can attach before they
// run. The tracer sets it only when follow-spawn is requested and treats
// its value as opaque.
const ChildStopEnv = "STRACE_MACOS_CHILD_STOP"

// ColorMode is the coloring policy of the text formatter.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Enabled resolves the policy against the sink: auto colors only
// terminals, and NO_COLOR wins over everything except "always".
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}

		f, ok := w.(*os.File)

		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}

// Config is the configuration record the CLI layer hands to the session.
type Config struct {
	// Command is the program plus arguments to launch; mutually exclusive
	// with AttachPID.
	Command   []string
	AttachPID int

	// OutputPath redirects the event stream; empty means stderr.
	OutputPath string

	JSON        bool
	Color       ColorMode
	SummaryOnly bool

	// TraceExpr is the comma-separated syscall-name/category filter.
	TraceExpr string

	// CountRejected keeps filter-rejected calls in the summary counts.
	CountRejected bool

	NoAbbrev    bool
	StringLimit int

	// FollowSpawn sets the interposition sentinel in the target's
	// environment.
	FollowSpawn bool

	Verbose bool
}

// Validate enforces the launch/attach exclusivity.
func (c *Config) Validate() error {
	if len(c.Command) == 0 && c.AttachPID == 0 {
		return E(UsageError, nil, "either a command or --pid is required")
	}

	if len(c.Command) > 0 && c.AttachPID != 0 {
		return E(UsageError, nil, "a command and --pid are mutually exclusive")
	}

	if c.AttachPID < 0 {
		return E(UsageError, nil, "invalid pid %d", c.AttachPID)
	}

	return nil
}
