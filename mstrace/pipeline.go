package mstrace

// Sink consumes completed syscall events. Sinks run synchronously inside
// the debugger event loop and must never block on the traced process;
// blocking on output I/O is permitted.
type Sink interface {
	Emit(ev *SyscallEvent) error
	Flush() error
}

// Pipeline fans each event out to the configured sinks in order. Events
// arrive in completion (exit-hit) order; within one thread that is program
// order.
type Pipeline struct {
	sinks []Sink
}

// NewPipeline builds a pipeline over sinks.
func NewPipeline(sinks ...Sink) *Pipeline {
	return &Pipeline{sinks: sinks}
}

// Emit delivers ev to every sink. A sink failure is a SinkIOError: the
// trace stream has lost integrity and the session treats it as fatal.
func (p *Pipeline) Emit(ev *SyscallEvent) error {
	for _, s := range p.sinks {
		if err := s.Emit(ev); err != nil {
			return E(SinkIOError, err, "failed to emit %s event", ev.Name)
		}
	}

	return nil
}

// Flush flushes every sink, on all exit paths.
func (p *Pipeline) Flush() error {
	for _, s := range p.sinks {
		if err := s.Flush(); err != nil {
			return E(SinkIOError, err, "failed to flush sink")
		}
	}

	return nil
}
