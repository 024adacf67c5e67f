// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package oscommand

import (
	"context"
	"errors"
	"os"
	"slices"
	"sync"
	"syscall"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/signalbroker"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrNoArgv is returned when the argument vector is empty.
	ErrNoArgv = errors.New("empty argument vector")
	// ErrContextDone is returned when the context ended while the process was running.
	ErrContextDone = errors.New("context done, process killed")
	// ErrSignalReceived is returned when a operating system signal was passed on to the process.
	ErrSignalReceived = errors.New("signal received")
	// ErrDuplicateSignalReceived is returned when a duplicate signal is received, forcing process termination.
	ErrDuplicateSignalReceived = errors.New("duplicate signal received, process forcefully terminated")
)

// Command is one program invocation.
type Command struct {
	Path   string         // Resolved path of the executable.
	Argv   []string       // Full argument vector, Argv[0] is the command name as typed.
	Dir    string         // Working directory of the child, empty means inherit.
	Env    []string       // Environment of the child, nil means inherit.
	Stdin  *os.File       // Standard input of the child.
	Stdout *os.File       // Standard output of the child.
	Stderr *os.File       // Standard error of the child.
	// Foreground is set when the child shares the shell's controlling terminal.
	// The terminal then delivers SIGINT and SIGQUIT to the child itself.
	Foreground bool
	sigCh  chan os.Signal // Channel to receive signals, allows mocking in test.
}

// Result is the outcome of a finished child.
type Result struct {
	Pid      int   // Process ID, zero when the process never started.
	ExitCode int   // Exit code, -1 when the process did not start or was killed by a signal.
	Error    error // Start failure, wait failure or the reason the watchdog intervened.
}

// Run starts the command and waits for it to exit.
func (c *Command) Run(ctx context.Context) *Result {
	logger := ctxlog.Logger(ctx).With("runnableType", "OSCommand")

	res := &Result{ExitCode: -1}

	if len(c.Argv) == 0 {
		res.Error = ErrNoArgv
		return res
	}

	logger.Debug("command info", "path", c.Path, "cwd", c.Dir, "argv", c.Argv)

	env := c.Env
	if env == nil {
		env = os.Environ()
	}

	sigCh := c.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(ctx, sigCh)
	}

	ps, err := os.StartProcess(c.Path, c.Argv, &os.ProcAttr{
		Dir:   c.Dir,
		Env:   env,
		Files: []*os.File{c.Stdin, c.Stdout, c.Stderr},
	})
	if err != nil {
		res.Error = errors.Join(ErrCouldNotStartProcess, err)
		return res
	}

	res.Pid = ps.Pid
	logger.Debug("process started", "pid", ps.Pid)

	done := make(chan struct{})

	var (
		wg     sync.WaitGroup
		reason error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()
		reason = watchdog(ctx, ps, sigCh, done, c.Foreground)
	}()

	state, waitErr := ps.Wait()

	close(done)
	wg.Wait()

	if state != nil {
		res.ExitCode = state.ExitCode()
	}

	res.Error = errors.Join(waitErr, reason)

	logger.Debug("process finished", "pid", ps.Pid, "exitCode", res.ExitCode, "error", res.Error)

	return res
}

// terminalSignals are sent by the terminal to its whole foreground process group.
var terminalSignals = []os.Signal{syscall.SIGINT, syscall.SIGQUIT}

// watchdog passes signals on to the process and kills it on a duplicate
// signal or when the context is done. It returns once done is closed, with the
// most recent reason it intervened, if any.
// A foreground process has already received terminal signals, they are ignored.
func watchdog(ctx context.Context, ps *os.Process, sigCh <-chan os.Signal, done <-chan struct{}, foreground bool) error {
	logger := ctxlog.Logger(ctx)
	signalCount := make(map[os.Signal]struct{})
	ctxDone := ctx.Done()

	var reason error

	for {
		select {
		case s, ok := <-sigCh:
			if !ok {
				sigCh = nil
				continue
			}

			if foreground && slices.Contains(terminalSignals, s) {
				logger.Debug("terminal signal already delivered to process", "signal", s.String())
				continue
			}

			if _, seen := signalCount[s]; seen {
				logger.Info("received duplicate signal, killing process", "signal", s.String())
				killPs(ctx, ps)

				reason = ErrDuplicateSignalReceived

				continue
			}

			signalCount[s] = struct{}{}

			logger.Info("received signal", "signal", s.String())

			if err := ps.Signal(s); err != nil {
				logger.Info("failed to send signal", "signal", s.String(), "error", err)
			}

			reason = ErrSignalReceived

		case <-ctxDone:
			logger.Info("context done, killing process")
			killPs(ctx, ps)

			reason = ErrContextDone
			ctxDone = nil

		case <-done:
			return reason
		}
	}
}

// killPs kills the process, tolerating one that has already exited.
func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Info(ctx, "process killed", "pid", ps.Pid)
}
