// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokenizer splits a raw command line into whitespace-delimited tokens.
//
// Both the number of raw splits and the length of every token are bounded.
// Input beyond the bounds is dropped silently, it is never an error.
package tokenizer
