// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package oscommand

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	return ctxlog.New(ctx, ctxlog.DefaultLogger)
}

func outputFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func readFile(t *testing.T, f *os.File) string {
	t.Helper()

	b, err := os.ReadFile(f.Name())
	require.NoError(t, err)

	return string(b)
}

func TestCommandRun_Success(t *testing.T) {
	defer goleak.VerifyNone(t)

	out := outputFile(t)
	cmd := &Command{
		Path:   "/bin/sh",
		Argv:   []string{"sh", "-c", "echo hello"},
		Stdin:  os.Stdin,
		Stdout: out,
		Stderr: os.Stderr,
		sigCh:  make(chan os.Signal),
	}

	res := cmd.Run(testContext(t))
	require.NoError(t, res.Error)
	assert.Equal(t, 0, res.ExitCode)
	assert.NotZero(t, res.Pid)
	assert.Equal(t, "hello\n", readFile(t, out))
}

func TestCommandRun_Failure(t *testing.T) {
	defer goleak.VerifyNone(t)

	cmd := &Command{
		Path:   "/bin/sh",
		Argv:   []string{"sh", "-c", "exit 3"},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		sigCh:  make(chan os.Signal),
	}

	res := cmd.Run(testContext(t))
	require.NoError(t, res.Error, "a non-zero exit is not an error")
	assert.Equal(t, 3, res.ExitCode)
}

func TestCommandRun_NotFound(t *testing.T) {
	defer goleak.VerifyNone(t)

	cmd := &Command{
		Path:  "/not/a/real/command",
		Argv:  []string{"command"},
		sigCh: make(chan os.Signal),
	}

	res := cmd.Run(testContext(t))

	var pathErr *os.PathError

	require.ErrorAs(t, res.Error, &pathErr, "expected PathError")
	require.ErrorIs(t, res.Error, ErrCouldNotStartProcess)
	assert.Equal(t, -1, res.ExitCode)
	assert.Zero(t, res.Pid)
}

func TestCommandRun_EmptyArgv(t *testing.T) {
	res := (&Command{Path: "/bin/sh"}).Run(testContext(t))
	require.ErrorIs(t, res.Error, ErrNoArgv)
}

func TestCommandRun_DirAndEnv(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	out := outputFile(t)
	cmd := &Command{
		Path:   "/bin/sh",
		Argv:   []string{"sh", "-c", "echo $FOO; pwd -P"},
		Dir:    dir,
		Env:    []string{"FOO=BAR"},
		Stdout: out,
		Stderr: os.Stderr,
		sigCh:  make(chan os.Signal),
	}

	res := cmd.Run(testContext(t))
	require.NoError(t, res.Error)

	realDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, "BAR\n"+realDir+"\n", readFile(t, out))
}

func TestCommandRun_ContextCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	cmd := &Command{
		Path:   "/bin/sleep",
		Argv:   []string{"sleep", "10"},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		sigCh:  make(chan os.Signal),
	}

	start := time.Now()
	res := cmd.Run(ctxlog.New(ctx, ctxlog.DefaultLogger))

	require.ErrorIs(t, res.Error, ErrContextDone)
	assert.Equal(t, -1, res.ExitCode)
	assert.Less(t, time.Since(start), 5*time.Second, "process should have been killed")
}

func TestCommandRun_SignalForwarded(t *testing.T) {
	defer goleak.VerifyNone(t)

	sigCh := make(chan os.Signal, 1)
	cmd := &Command{
		Path:   "/bin/sleep",
		Argv:   []string{"sleep", "10"},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		sigCh:  sigCh,
	}

	sigCh <- syscall.SIGTERM

	res := cmd.Run(testContext(t))
	require.ErrorIs(t, res.Error, ErrSignalReceived)
	assert.Equal(t, -1, res.ExitCode)
}

func TestCommandRun_ForegroundIgnoresTerminalSignals(t *testing.T) {
	defer goleak.VerifyNone(t)

	sigCh := make(chan os.Signal, 2)
	cmd := &Command{
		Path:       "/bin/sh",
		Argv:       []string{"sh", "-c", "sleep 0.3"},
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Foreground: true,
		sigCh:      sigCh,
	}

	sigCh <- syscall.SIGINT
	sigCh <- syscall.SIGINT

	res := cmd.Run(testContext(t))
	require.NoError(t, res.Error)
	assert.Equal(t, 0, res.ExitCode)
}

func TestCommandRun_ForegroundForwardsTerm(t *testing.T) {
	defer goleak.VerifyNone(t)

	sigCh := make(chan os.Signal, 1)
	cmd := &Command{
		Path:       "/bin/sleep",
		Argv:       []string{"sleep", "10"},
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Foreground: true,
		sigCh:      sigCh,
	}

	sigCh <- syscall.SIGTERM

	res := cmd.Run(testContext(t))
	require.ErrorIs(t, res.Error, ErrSignalReceived)
	assert.Equal(t, -1, res.ExitCode)
}

func TestCommandRun_DuplicateSignalKills(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer r.Close() //nolint:errcheck

	sigCh := make(chan os.Signal, 2)
	cmd := &Command{
		Path:   "/bin/sh",
		Argv:   []string{"sh", "-c", "trap '' INT; echo ready; exec sleep 10"},
		Stdout: w,
		Stderr: os.Stderr,
		sigCh:  sigCh,
	}

	results := make(chan *Result, 1)

	go func() {
		results <- cmd.Run(testContext(t))
	}()

	line, err := bufio.NewReader(r).ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "ready\n", line)
	require.NoError(t, w.Close())

	sigCh <- syscall.SIGINT
	sigCh <- syscall.SIGINT

	select {
	case res := <-results:
		require.ErrorIs(t, res.Error, ErrDuplicateSignalReceived)
		assert.Equal(t, -1, res.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("expected the duplicate signal to kill the process")
	}
}
