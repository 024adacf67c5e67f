// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell runs the read-eval loop: it pulls lines from a LineSource and
// hands them to an Executor until the input ends or the user exits.
package shell

import (
	"context"
	"errors"
	"io"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/interp"
)

// LineSource supplies command lines. Next returns io.EOF when input is exhausted.
type LineSource interface {
	Next(ctx context.Context) (string, error)
	Close() error
}

// Executor runs one command line and reports its failures.
type Executor interface {
	Execute(ctx context.Context, line string) error
	Report(ctx context.Context, err error)
}

// Shell binds a line source to an executor.
type Shell struct {
	source LineSource
	exec   Executor
}

// New returns a Shell.
func New(source LineSource, exec Executor) *Shell {
	return &Shell{
		source: source,
		exec:   exec,
	}
}

// Run loops until end of input or exit, returning nil in both cases.
// Errors from a line are reported and the loop carries on.
// An error reading input, or a cancelled context, ends the loop with that error.
// The line source is closed before Run returns.
func (s *Shell) Run(ctx context.Context) error {
	defer func() {
		if cerr := s.source.Close(); cerr != nil {
			ctxlog.Warn(ctx, "failed to close line source", "error", cerr)
		}
	}()

	for {
		line, err := s.source.Next(ctx)

		switch {
		case errors.Is(err, io.EOF):
			ctxlog.Debug(ctx, "end of input")
			return nil
		case err != nil:
			return err
		}

		err = s.exec.Execute(ctx, line)

		switch {
		case errors.Is(err, interp.ErrExit):
			ctxlog.Debug(ctx, "exit requested")
			return nil
		case err != nil:
			s.exec.Report(ctx, err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
