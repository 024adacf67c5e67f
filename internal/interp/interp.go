// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/msh/internal/commandinpath"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/oscommand"
	"github.com/matt-FFFFFF/msh/internal/redirect"
	"github.com/matt-FFFFFF/msh/internal/tokenizer"
	"golang.org/x/term"
)

// Interpreter executes command lines.
type Interpreter struct {
	Dir      string   // Current working directory, always absolute.
	Stdin    *os.File // Standard input handed to children.
	Stdout   *os.File // Standard output handed to children when not redirected.
	Stderr   *os.File // Error stream for children and for ErrorMessage.
	Builtins Registry
}

// New returns an Interpreter rooted at dir, using the process' standard streams.
func New(dir string) *Interpreter {
	return &Interpreter{
		Dir:      dir,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Builtins: DefaultRegistry(),
	}
}

// Execute runs one line. Blank lines and no-op lines return nil.
// ErrExit is returned when the line asks the shell to stop.
func (in *Interpreter) Execute(ctx context.Context, line string) error {
	tokens := tokenizer.Tokenize(line)
	if tokenizer.IsNoop(tokens) {
		return nil
	}

	ctxlog.Debug(ctx, "executing", "tokens", tokens)

	if b, ok := in.Builtins[tokens[0]]; ok {
		return b.Run(ctx, in, tokens[1:])
	}

	return in.external(ctx, tokens)
}

// Report writes ErrorMessage to the error stream. The detail of err is only logged.
func (in *Interpreter) Report(ctx context.Context, err error) {
	ctxlog.Debug(ctx, "command failed", "error", err)
	_, _ = in.Stderr.WriteString(ErrorMessage)
}

func (in *Interpreter) external(ctx context.Context, tokens []string) error {
	spec, err := redirect.Parse(tokens)
	if err != nil {
		return err
	}

	stdout := in.Stdout

	if spec.Redirected() {
		target := in.resolve(spec.Target)

		f, err := os.OpenFile(target, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil {
			return errors.Join(ErrOpenTarget, err)
		}
		defer f.Close() //nolint:errcheck

		stdout = f
	}

	path, err := commandinpath.Find(spec.Argv[0], in.Dir)
	if err != nil {
		return errors.Join(ErrCommandNotFound, err)
	}

	cmd := &oscommand.Command{
		Path:       path,
		Argv:       spec.Argv,
		Dir:        in.Dir,
		Env:        in.environ(),
		Stdin:      in.Stdin,
		Stdout:     stdout,
		Stderr:     in.Stderr,
		Foreground: in.Stdin != nil && term.IsTerminal(int(in.Stdin.Fd())),
	}

	res := cmd.Run(ctx)

	ctxlog.Debug(ctx, "command finished", "path", path, "pid", res.Pid, "exitCode", res.ExitCode, "error", res.Error)

	// Only a failed spawn is reported, never how the child ended.
	if errors.Is(res.Error, oscommand.ErrCouldNotStartProcess) {
		return fmt.Errorf("%s: %w", spec.Argv[0], res.Error)
	}

	return nil
}

// environ is the inherited environment with PWD pointing at Dir.
func (in *Interpreter) environ() []string {
	env := slices.DeleteFunc(os.Environ(), func(kv string) bool {
		return strings.HasPrefix(kv, "PWD=")
	})

	return append(env, "PWD="+in.Dir)
}

func (in *Interpreter) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(in.Dir, path)
}
