// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interp

import "errors"

// ErrorMessage is written to the error stream for every failure.
const ErrorMessage = "An error has occurred\n"

var (
	// ErrExit is returned by Execute when the user asked the shell to exit.
	ErrExit = errors.New("exit requested")
	// ErrUsage is returned when a built-in is called with the wrong number of arguments.
	ErrUsage = errors.New("wrong number of arguments")
	// ErrNotDirectory is returned when cd is given something other than a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNotSearchable is returned when cd is given a directory the shell may not enter.
	ErrNotSearchable = errors.New("permission denied")
	// ErrOpenTarget is returned when the redirection target cannot be opened.
	ErrOpenTarget = errors.New("failed to open redirection target")
	// ErrCommandNotFound is returned when the command name cannot be resolved to an executable.
	ErrCommandNotFound = errors.New("command not found")
)
