// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/msh"
	"github.com/matt-FFFFFF/msh/internal/config"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/interp"
	"github.com/matt-FFFFFF/msh/internal/linesource"
	"github.com/matt-FFFFFF/msh/internal/shell"
	"github.com/urfave/cli/v3"
)

const (
	configFlag  = "config"
	promptFlag  = "prompt"
	historyFlag = "history"
)

var (
	// ErrTooManyArguments is returned when more than one batch file is given.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrStartup is returned when the shell cannot be set up.
	ErrStartup = errors.New("failed to start shell")
)

// New returns the root command. A fresh command is needed for each run.
func New() *cli.Command {
	return &cli.Command{
		Name:      "msh",
		Usage:     "a minimal command shell",
		UsageText: "msh [options] [batchfile]",
		Description: `msh reads command lines from the terminal, or from batchfile when one is given,
and runs each one. The built-ins are exit and cd; anything else is run as a
program found in PATH. A single '>' sends the program's output to a file.`,
		Version:         fmt.Sprintf("%s (commit: %s)", msh.Version, msh.Commit),
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		HideHelpCommand: true,
		Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "Read settings from this YAML file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    promptFlag,
				Aliases: []string{"p"},
				Usage:   "Interactive prompt, overrides the config file",
			},
			&cli.StringFlag{
				Name:      historyFlag,
				Usage:     "Interactive history file, overrides the config file",
				TakesFile: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	errw := cmd.Root().ErrWriter

	if cmd.Args().Len() > 1 {
		return fail(errw, ErrTooManyArguments)
	}

	cfg, err := config.Load(cmd.String(configFlag))
	if err != nil {
		return fail(errw, err)
	}

	if cmd.IsSet(promptFlag) {
		cfg.Prompt = cmd.String(promptFlag)
	}

	if cmd.IsSet(historyFlag) {
		cfg.HistoryFile = cmd.String(historyFlag)
	}

	if err := cfg.Validate(); err != nil {
		return fail(errw, err)
	}

	if cfg.LogLevel != "" {
		ctxlog.LevelVar.Set(ctxlog.ParseLevel(cfg.LogLevel))
	}

	dir, err := os.Getwd()
	if err != nil {
		return fail(errw, err)
	}

	var src shell.LineSource

	if cmd.Args().Present() {
		name := cmd.Args().First()

		b, err := linesource.OpenBatch(name)
		if err != nil {
			return fail(errw, err)
		}

		ctxlog.Debug(ctx, "batch mode", "file", name)
		src = b
	} else {
		ctxlog.Debug(ctx, "interactive mode", "history", cfg.HistoryPath())
		src = linesource.NewInteractive(ctx, cfg.Prompt, cfg.HistoryPath())
	}

	return shell.New(src, interp.New(dir)).Run(ctx)
}

// fail prints the generic error message and returns err for the exit status.
func fail(w io.Writer, err error) error {
	_, _ = io.WriteString(w, interp.ErrorMessage)
	return errors.Join(ErrStartup, err)
}
