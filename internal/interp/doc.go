// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interp turns one command line into either a built-in side effect or
// a child process.
//
// The Interpreter is the only state carried between lines: its working
// directory and the standard streams handed to children.
// Every failure is reported to the user with the same message, ErrorMessage;
// the underlying errors exist for logging and tests.
package interp
