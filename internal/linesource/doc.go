// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linesource supplies the shell with one command line at a time,
// either from an interactive terminal or from a batch file.
// Lines longer than tokenizer.MaxLineLength are truncated, and io.EOF marks
// the end of input.
package linesource
