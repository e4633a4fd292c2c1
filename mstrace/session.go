package mstrace

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/mstrace/mstrace/arch"
	"github.com/mstrace/mstrace/dbg"
	"github.com/mstrace/mstrace/memio"
	"github.com/mstrace/mstrace/structs"
	"github.com/mstrace/mstrace/syscalls"
)

// libsystemKernel is the image whose symbol table holds the BSD syscall
// trampolines.
const libsystemKernel = "libsystem_kernel.dylib"

// Session owns one tracing run: the debugserver process, the protocol
// client, the breakpoints, the pairing table and the sinks. All state is
// driven from the single event-loop goroutine; a signal watcher only flips
// the interrupt flag and pokes the stub.
type Session struct {
	logger *zap.SugaredLogger
	cfg    Config

	registry *syscalls.Registry
	filter   *Filter

	server  *dbg.Server
	client  *dbg.Client
	adapter arch.Adapter

	mem      *memio.Reader
	renderer *structs.Renderer

	controller *BreakpointController
	pairing    *PairingTable
	pipeline   *Pipeline
	summary    *Summary

	out      io.Writer
	closeOut func() error
	launched bool

	interrupted atomic.Bool
}

// NewSession validates cfg and prepares the immutable parts: the registry
// and the compiled filter.
func NewSession(logger *zap.SugaredLogger, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry, err := syscalls.NewRegistry()
	if err != nil {
		return nil, E(UsageError, err, "failed to build syscall registry")
	}

	filter, err := ParseFilter(cfg.TraceExpr, registry)
	if err != nil {
		return nil, err
	}

	return &Session{
		logger:   logger,
		cfg:      cfg,
		registry: registry,
		filter:   filter,
		pairing:  NewPairingTable(),
	}, nil
}

// Run traces until the target exits, the user interrupts, or a fatal error
// occurs. The returned exit code follows the tracer contract: the target's
// own exit status on a normal run, 130 on interrupt.
func (s *Session) Run(ctx context.Context) (int, error) {
	if err := s.openOutput(); err != nil {
		return 1, err
	}
	defer s.closeOutput()

	defer s.teardown()

	if err := s.start(ctx); err != nil {
		return ExitCode(err), err
	}

	stopper := make(chan os.Signal, 1)
	signal.Notify(stopper, os.Interrupt, unix.SIGTERM)
	defer signal.Stop(stopper)

	loopDone := make(chan struct{})

	var (
		group errgroup.Group
		code  int
	)

	group.Go(func() error {
		defer close(loopDone)

		var loopErr error
		code, loopErr = s.loop()

		return loopErr
	})

	group.Go(func() error {
		select {
		case sig := <-stopper:
			s.logger.Infow("received interrupt, stopping trace", "signal", sig)
			s.interrupted.Store(true)

			if err := s.client.Interrupt(); err != nil {
				s.logger.Errorw("failed to interrupt target", "err", err)
			}
		case <-loopDone:
		}

		return nil
	})

	err := group.Wait()

	if flushErr := s.pipeline.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}

	if s.cfg.SummaryOnly {
		if renderErr := s.summary.Render(s.out); renderErr != nil && err == nil {
			err = E(SinkIOError, renderErr, "failed to render summary")
		}
	}

	return code, err
}

// openOutput resolves the sink writer and builds the formatter pipeline.
func (s *Session) openOutput() error {
	s.out = os.Stderr
	s.closeOut = func() error { return nil }

	if s.cfg.OutputPath != "" {
		f, err := os.Create(s.cfg.OutputPath)
		if err != nil {
			return E(SinkIOError, err, "failed to open output file %s", s.cfg.OutputPath)
		}

		s.out = f
		s.closeOut = f.Close
	}

	s.summary = NewSummary()

	var sinks []Sink

	if !s.cfg.SummaryOnly {
		switch {
		case s.cfg.JSON:
			sinks = append(sinks, NewJSONFormatter(s.out))
		case s.cfg.Color.Enabled(s.out):
			sinks = append(sinks, NewColorTextFormatter(s.out))
		default:
			sinks = append(sinks, NewTextFormatter(s.out))
		}
	}

	sinks = append(sinks, s.summary)
	s.pipeline = NewPipeline(sinks...)

	return nil
}

func (s *Session) closeOutput() {
	if err := s.closeOut(); err != nil {
		s.logger.Errorw("failed to close output", "err", err)
	}
}

// start spawns debugserver, connects, and installs the entry breakpoints.
// Every failure here is fatal per the propagation policy.
func (s *Session) start(ctx context.Context) error {
	opts := dbg.ServerOptions{}

	if s.cfg.AttachPID != 0 {
		opts.AttachPID = s.cfg.AttachPID
	} else {
		opts.Program = s.cfg.Command[0]
		opts.Args = s.cfg.Command[1:]
		s.launched = true

		if wd, err := os.Getwd(); err == nil {
			opts.WorkDir = wd
		}

		if s.cfg.FollowSpawn {
			opts.Env = append(opts.Env, ChildStopEnv+"=1")
		}
	}

	server, err := dbg.StartServer(ctx, s.logger, opts)
	if err != nil {
		if s.launched {
			return E(LaunchError, err, "failed to launch %s", s.cfg.Command[0])
		}

		return E(AttachError, err, "failed to attach to pid %d", s.cfg.AttachPID)
	}

	s.server = server

	client, err := dbg.Dial(s.logger, server.Addr)
	if err != nil {
		if s.launched {
			return E(LaunchError, err, "failed to connect to debugserver")
		}

		return E(AttachError, err, "failed to connect to debugserver")
	}

	s.client = client

	adapter, err := arch.Detect(client.TargetTriple())
	if err != nil {
		return E(LaunchError, err, "unsupported target %s", client.TargetTriple())
	}

	s.adapter = adapter
	s.mem = memio.NewReader(client)
	s.renderer = structs.NewRenderer(s.mem, s.cfg.StringLimit)
	s.controller = NewBreakpointController(s.logger, client)

	s.logger.Infow("tracing target",
		"pid", client.PID(),
		"arch", adapter.Name(),
		"launched", s.launched,
	)

	addrs, err := s.resolveTrampolines()
	if err != nil {
		return err
	}

	if err := s.controller.InstallEntry(addrs); err != nil {
		return E(BreakpointInstallError, err, "failed to install entry breakpoints")
	}

	return nil
}

// resolveTrampolines finds the syscall trampoline symbol addresses in
// libsystem_kernel. Resolving none of the candidate names is fatal.
func (s *Session) resolveTrampolines() (map[string]uint64, error) {
	images, err := s.client.LoadedImages()
	if err != nil {
		return nil, E(SymbolResolutionError, err, "failed to list loaded images")
	}

	var kernelImage *dbg.Image

	for i := range images {
		if images[i].Contains(libsystemKernel) {
			kernelImage = &images[i]
			break
		}
	}

	if kernelImage == nil {
		return nil, E(SymbolResolutionError, nil, "%s not loaded in target", libsystemKernel)
	}

	names := s.adapter.EntrySymbols()

	addrs, err := s.client.ResolveSymbols(kernelImage.LoadAddress, names)
	if err != nil {
		return nil, E(SymbolResolutionError, err, "failed to scan %s symbols", libsystemKernel)
	}

	if len(addrs) == 0 {
		return nil, E(SymbolResolutionError, nil,
			"none of the trampoline symbols %v resolve in %s", names, libsystemKernel)
	}

	s.logger.Debugw("trampolines resolved", "symbols", addrs)

	return addrs, nil
}

// teardown releases breakpoints and the target on every exit path. A
// launched target dies with the session; an attached one keeps running.
func (s *Session) teardown() {
	if s.client != nil {
		if s.controller != nil {
			s.controller.RemoveAll()
		}

		if s.launched {
			if err := s.client.Kill(); err != nil {
				s.logger.Debugw("failed to kill target", "err", err)
			}
		} else {
			if err := s.client.Detach(); err != nil {
				s.logger.Debugw("failed to detach from target", "err", err)
			}
		}
	}

	if s.server != nil {
		if err := s.server.Close(); err != nil {
			s.logger.Debugw("failed to close debugserver", "err", err)
		}
	}
}

// loop is the single-threaded event loop: resume, classify the stop,
// dispatch, repeat. One event is handled to completion before the next is
// pulled, so the pairing table and summary need no locking.
func (s *Session) loop() (int, error) {
	ev, err := s.client.InitialStop()
	if err != nil {
		return 1, E(DebuggerEventError, err, "failed to read initial stop")
	}

	// Signal to deliver on the next resume, when forwarding.
	forwardSig := 0
	forwardTid := uint64(0)

	for {
		if s.interrupted.Load() {
			s.drainUnfinished()

			return 130, nil
		}

		switch ev.Reason {
		case dbg.StopExited:
			s.drainUnfinished()
			s.logger.Infow("target exited", "status", ev.ExitStatus)

			return ev.ExitStatus, nil

		case dbg.StopTerminated:
			s.drainUnfinished()
			s.logger.Infow("target terminated by signal", "signal", ev.Signal)

			return 128 + ev.Signal, nil

		case dbg.StopSignal:
			forwardSig, forwardTid = s.handleStop(ev)
		}

		var next dbg.StopEvent

		if forwardSig != 0 {
			next, err = s.client.ContinueWithSignal(forwardSig, forwardTid)
			forwardSig = 0
		} else {
			next, err = s.client.Continue()
		}

		if err != nil {
			if s.interrupted.Load() {
				s.drainUnfinished()

				return 130, nil
			}

			return 1, E(DebuggerEventError, err, "failed to resume target")
		}

		ev = next
	}
}

// handleStop classifies one signal stop and returns the signal to forward
// on resume (0 for none).
func (s *Session) handleStop(ev dbg.StopEvent) (int, uint64) {
	if !ev.IsBreakpoint() {
		// The synthetic stop of an attach (or of an interposed child
		// waiting for us) is swallowed; everything else is forwarded and
		// recorded.
		if ev.Signal == int(unix.SIGSTOP) {
			s.logger.Debugw("swallowing attach stop", "tid", ev.ThreadID)
			return 0, 0
		}

		s.logger.Infow("forwarding signal to target", "signal", ev.Signal, "tid", ev.ThreadID)

		return ev.Signal, ev.ThreadID
	}

	regs := s.client.ThreadRegisters(ev.ThreadID)

	pc, err := regs.Read("pc")
	if err != nil {
		s.logger.Errorw("failed to read pc at stop", "tid", ev.ThreadID, "err", err)
		return 0, 0
	}

	switch {
	case s.pairing.Expecting(ev.ThreadID, pc):
		s.handleExit(ev.ThreadID, pc, regs)
	case s.controller.IsEntry(pc):
		s.handleEntry(ev.ThreadID, regs)
	default:
		// Another thread tripped over a return site armed for someone
		// else; silently resume.
		s.logger.Debugw("stray breakpoint stop", "tid", ev.ThreadID, "pc", fmt.Sprintf("%#x", pc))
	}

	return 0, 0
}

// handleEntry runs at entry-hit: capture the snapshot, evaluate the
// filter, materialize pre-call arguments, arm the exit breakpoint.
func (s *Session) handleEntry(tid uint64, regs arch.Registers) {
	num, err := s.adapter.SyscallNumber(regs)
	if err != nil {
		s.logger.Errorw("failed to read syscall number", "tid", tid, "err", err)
		return
	}

	schema, known := s.registry.ByNumber(num)

	// Cheap skip: a rejected syscall arms nothing and materializes
	// nothing.
	if !s.filter.Allow(schema) {
		if s.cfg.CountRejected && known {
			s.summary.CountRejected(schema.Name)
		}

		return
	}

	snap := &EntrySnapshot{
		Number:   num,
		Schema:   schema,
		ThreadID: tid,
		Start:    time.Now(),
	}

	nargs := arch.MaxArgs
	if known {
		nargs = len(schema.Params)
	}

	for i := 0; i < nargs && i < arch.MaxArgs; i++ {
		v, err := s.adapter.Arg(i, regs)
		if err != nil {
			s.logger.Errorw("failed to read argument register", "tid", tid, "arg", i, "err", err)
			return
		}

		snap.Args[i] = v
	}

	if known {
		ctx := s.decodeContext(snap, false)
		snap.EntryArgs = schema.RenderEntry(ctx)
	} else {
		snap.EntryArgs = syscalls.RawArgs(snap.Args)
	}

	retAddr, err := s.adapter.ReturnAddress(regs, s.mem)
	if err != nil {
		// No return site, no exit: the best we can do is an unfinished
		// event now.
		s.logger.Debugw("failed to derive return address", "tid", tid, "err", err)
		s.emitUnfinished(snap)

		return
	}

	snap.ReturnAddr = retAddr

	if evicted := s.pairing.Begin(snap); evicted != nil {
		// Two entries on one thread with no exit between them: the later
		// wins, the earlier is reported unfinished.
		s.controller.DisarmExit(evicted.ReturnAddr)
		s.emitUnfinished(evicted)
	}

	if err := s.controller.ArmExit(retAddr); err != nil {
		s.pairing.Complete(tid)
		s.emitUnfinished(snap)
	}
}

// handleExit runs at exit-hit: read the return, re-render out-parameters,
// emit the completed event, disarm the breakpoint.
func (s *Session) handleExit(tid, pc uint64, regs arch.Registers) {
	snap, ok := s.pairing.Complete(tid)
	if !ok {
		return
	}

	s.controller.DisarmExit(pc)

	ret, err := s.adapter.ReturnValue(regs)
	if err != nil {
		s.logger.Errorw("failed to read return value", "tid", tid, "err", err)
		s.emitUnfinished(snap)

		return
	}

	errno, err := s.adapter.ErrorIndicator(regs)
	if err != nil {
		s.logger.Errorw("failed to read error indicator", "tid", tid, "err", err)
		s.emitUnfinished(snap)

		return
	}

	// The kernel reports the errno as a positive value plus the carry
	// flag; events carry the strace-style negated form.
	if errno && ret > 0 {
		ret = -ret
	}

	event := &SyscallEvent{
		Number:   snap.Number,
		Args:     snap.EntryArgs,
		Retval:   ret,
		Error:    errno,
		Start:    snap.Start,
		End:      time.Now(),
		ThreadID: tid,
	}

	if snap.Schema != nil {
		ctx := s.decodeContext(snap, true)
		ctx.Ret = ret
		ctx.Errno = errno

		snap.Schema.RenderExit(ctx, event.Args)

		event.Name = snap.Schema.Name
		event.Category = snap.Schema.Category
		event.RetvalDecoded = snap.Schema.Ret(ctx)
	} else {
		event.Name = syscalls.RawName(snap.Number)
		event.Category = syscalls.Misc
		event.RetvalDecoded = fmt.Sprintf("%d", ret)
	}

	s.emit(event)
}

// emitUnfinished reports a syscall with no observable return.
func (s *Session) emitUnfinished(snap *EntrySnapshot) {
	name := syscalls.RawName(snap.Number)
	category := syscalls.Misc

	if snap.Schema != nil {
		name = snap.Schema.Name
		category = snap.Schema.Category
	}

	s.emit(&SyscallEvent{
		Number:        snap.Number,
		Name:          name,
		Category:      category,
		Args:          snap.EntryArgs,
		RetvalDecoded: "?",
		Start:         snap.Start,
		End:           time.Now(),
		ThreadID:      snap.ThreadID,
		Unfinished:    true,
	})
}

// drainUnfinished flushes every in-flight syscall as unfinished, used when
// the target goes away or the user interrupts.
func (s *Session) drainUnfinished() {
	for _, snap := range s.pairing.DrainAll() {
		s.emitUnfinished(snap)
	}
}

func (s *Session) emit(ev *SyscallEvent) {
	if err := s.pipeline.Emit(ev); err != nil {
		// Sink integrity is gone; surface it loudly and stop tracing via
		// the interrupt path.
		s.logger.Errorw("sink failure, aborting trace", "err", err)
		s.interrupted.Store(true)
	}
}

func (s *Session) decodeContext(snap *EntrySnapshot, atExit bool) *syscalls.Context {
	return &syscalls.Context{
		Mem:      s.mem,
		Structs:  s.renderer,
		Args:     snap.Args,
		AtExit:   atExit,
		NoAbbrev: s.cfg.NoAbbrev,
		Limit:    s.cfg.StringLimit,
	}
}
