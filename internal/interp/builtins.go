// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/fsys"
)

// Builtin is a command run inside the shell process.
// args excludes the command name.
type Builtin interface {
	Run(ctx context.Context, in *Interpreter, args []string) error
}

// BuiltinFunc adapts an ordinary function to a Builtin.
type BuiltinFunc func(ctx context.Context, in *Interpreter, args []string) error

// Run calls f.
func (f BuiltinFunc) Run(ctx context.Context, in *Interpreter, args []string) error {
	return f(ctx, in, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Registry maps built-in names to their implementation.
type Registry map[string]Builtin

// Searchable reports whether the process may enter dir.
// It works on the real filesystem, not through fsys.
var Searchable = searchableDir

// DefaultRegistry returns a registry holding exit and cd.
func DefaultRegistry() Registry {
	return Registry{
		"exit": BuiltinFunc(Exit),
		"cd":   BuiltinFunc(Cd),
	}
}

// Exit ends the shell. It takes no arguments.
func Exit(_ context.Context, _ *Interpreter, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("exit: %w", ErrUsage)
	}

	return ErrExit
}

// Cd changes the interpreter's working directory. It takes exactly one argument.
func Cd(ctx context.Context, in *Interpreter, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("cd: %w", ErrUsage)
	}

	dir := in.resolve(args[0])

	fi, err := fsys.FsFactory().Stat(dir)
	if err != nil {
		return fmt.Errorf("cd: %w", err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("cd: %s: %w", dir, ErrNotDirectory)
	}

	if err := Searchable(dir); err != nil {
		return fmt.Errorf("cd: %s: %w", dir, errors.Join(ErrNotSearchable, err))
	}

	ctxlog.Debug(ctx, "changing directory", "from", in.Dir, "to", dir)
	in.Dir = dir

	return nil
}
