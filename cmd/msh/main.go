// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the msh command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/msh/cmd"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	err := cmd.New().Run(ctx, os.Args)

	cancel()

	if err != nil {
		// The user has already seen the generic error message.
		ctxlog.Debug(ctx, "msh exited with error", "error", err)
		os.Exit(1)
	}

	ctxlog.Debug(ctx, "msh exited")
}
