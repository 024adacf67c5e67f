// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger for the shell.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler writing to standard error, so that
// logging never mixes with the output of the commands the shell runs.
// The level comes from the MSH_LOG_LEVEL environment variable and defaults to WARN.
package ctxlog
