// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linesource

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/fsys"
	"github.com/matt-FFFFFF/msh/internal/tokenizer"
	"github.com/peterh/liner"
)

// ErrHistory is returned when the history file cannot be written.
var ErrHistory = errors.New("failed to save history")

// Interactive prompts for each line on the terminal, with line editing and history.
type Interactive struct {
	line        *liner.State
	prompt      string
	historyFile string
}

// NewInteractive takes over the terminal. historyFile may be empty, and is
// loaded now if it exists.
func NewInteractive(ctx context.Context, prompt, historyFile string) *Interactive {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	i := &Interactive{
		line:        line,
		prompt:      prompt,
		historyFile: historyFile,
	}

	if historyFile != "" {
		i.loadHistory(ctx)
	}

	return i
}

// Next prompts for a line. Ctrl+C discards the line being edited and prompts
// again, Ctrl+D returns io.EOF.
func (i *Interactive) Next(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		input, err := i.line.Prompt(i.prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return "", io.EOF
		case err != nil:
			return "", err
		}

		input = tokenizer.TruncateLine(input)

		if strings.TrimSpace(input) != "" {
			i.line.AppendHistory(input)
		}

		return input, nil
	}
}

// Close saves the history file, if any, and gives the terminal back.
func (i *Interactive) Close() error {
	var result *multierror.Error

	if i.historyFile != "" {
		if err := i.writeHistory(); err != nil {
			result = multierror.Append(result, errors.Join(ErrHistory, err))
		}
	}

	if err := i.line.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// loadHistory reads what it can of the history file. A missing file is normal
// on first use, other failures are only logged.
func (i *Interactive) loadHistory(ctx context.Context) {
	f, err := fsys.FsFactory().Open(i.historyFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			ctxlog.Debug(ctx, "failed to open history", "file", i.historyFile, "error", err)
		}

		return
	}

	defer f.Close() //nolint:errcheck

	n, err := i.line.ReadHistory(f)
	if err != nil {
		ctxlog.Debug(ctx, "failed to read history", "file", i.historyFile, "entries", n, "error", err)
		return
	}

	ctxlog.Debug(ctx, "history loaded", "file", i.historyFile, "entries", n)
}

func (i *Interactive) writeHistory() error {
	f, err := fsys.FsFactory().OpenFile(i.historyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if _, err := i.line.WriteHistory(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
