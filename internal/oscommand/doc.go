// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package oscommand spawns a single external program with explicit standard
// streams and working directory, and blocks until it exits.
//
// While the child runs, terminal signals received by the shell are passed on
// to it. A second signal of the same kind, or cancelling the context, kills it.
package oscommand
