package dbg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Server is a spawned debugserver process. Closing it reaps the stub; the
// target's fate is whatever the protocol last asked for (k or D).
type Server struct {
	logger *zap.SugaredLogger
	cmd    *exec.Cmd

	// Addr is the host:port the stub listens on, read back through the
	// named-pipe handshake.
	Addr string
}

// ServerOptions selects launch or attach mode. Exactly one of Program and
// AttachPID must be set.
type ServerOptions struct {
	Program string
	Args    []string
	Env     []string
	WorkDir string

	AttachPID int
}

// Well-known debugserver location inside the command-line tools, tried
// before falling back to xcrun.
const cltDebugserver = "/Library/Developer/CommandLineTools/Library/PrivateFrameworks/LLDB.framework/Resources/debugserver"

func findDebugserver() (string, error) {
	if path := os.Getenv("MSTRACE_DEBUGSERVER"); path != "" {
		return path, nil
	}

	if _, err := os.Stat(cltDebugserver); err == nil {
		return cltDebugserver, nil
	}

	out, err := exec.Command("xcrun", "--find", "debugserver").Output()
	if err != nil {
		return "", fmt.Errorf("debugserver not found (is Xcode or the command-line tools installed?): %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}

// StartServer spawns debugserver listening on an ephemeral localhost port.
// The stub picks the port and writes it to a named pipe we create; waiting
// on the pipe is the startup synchronization.
func StartServer(ctx context.Context, logger *zap.SugaredLogger, opts ServerOptions) (*Server, error) {
	bin, err := findDebugserver()
	if err != nil {
		return nil, err
	}

	pipeDir, err := os.MkdirTemp("", "mstrace-")
	if err != nil {
		return nil, fmt.Errorf("failed to create pipe directory: %w", err)
	}
	defer os.RemoveAll(pipeDir)

	pipePath := filepath.Join(pipeDir, "port")

	if err := unix.Mkfifo(pipePath, 0o600); err != nil {
		return nil, fmt.Errorf("failed to create port pipe: %w", err)
	}

	args := []string{"--setsid", "--named-pipe", pipePath, "127.0.0.1:0"}

	switch {
	case opts.AttachPID > 0:
		args = append(args, fmt.Sprintf("--attach=%d", opts.AttachPID))
	case opts.Program != "":
		args = append(args, "--")
		args = append(args, opts.Program)
		args = append(args, opts.Args...)
	default:
		return nil, fmt.Errorf("server options name neither a program nor a pid")
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.WorkDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if len(opts.Env) > 0 {
		// debugserver launches the target with its own environment.
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start debugserver: %w", err)
	}

	port, err := readPortPipe(ctx, pipePath)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()

		return nil, fmt.Errorf("failed to read debugserver port: %w", err)
	}

	s := &Server{
		logger: logger,
		cmd:    cmd,
		Addr:   fmt.Sprintf("127.0.0.1:%s", port),
	}

	logger.Debugw("debugserver started", "addr", s.Addr, "pid", cmd.Process.Pid)

	return s, nil
}

// readPortPipe opens the fifo and reads the port number debugserver writes
// on startup. The open itself blocks until the writer appears, so it runs
// under a deadline goroutine.
func readPortPipe(ctx context.Context, path string) (string, error) {
	type result struct {
		port string
		err  error
	}

	ch := make(chan result, 1)

	go func() {
		f, err := os.Open(path)
		if err != nil {
			ch <- result{err: err}
			return
		}
		defer f.Close()

		buf := make([]byte, 16)

		n, err := f.Read(buf)
		if err != nil {
			ch <- result{err: err}
			return
		}

		port := string(bytes.TrimRight(buf[:n], "\x00\n"))
		ch <- result{port: port}
	}()

	select {
	case r := <-ch:
		return r.port, r.err
	case <-time.After(10 * time.Second):
		return "", fmt.Errorf("timed out waiting for debugserver to listen")
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close reaps the debugserver process.
func (s *Server) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}

	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("failed to reap debugserver: %w", err)
		}
	}

	return nil
}
