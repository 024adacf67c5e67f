// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decorates log output with ANSI colour codes.
// Colour is disabled by NO_COLOR, forced by FORCE_COLOR, and otherwise only
// used when standard error is a terminal, as that is where the shell logs.
package color
