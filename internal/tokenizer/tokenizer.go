// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tokenizer

import "strings"

const (
	// MaxLineLength is the maximum length of a command line, and of any single token.
	MaxLineLength = 255
	// MaxTokens is the maximum number of raw splits taken from a line.
	MaxTokens = 32
	// Whitespace holds the token delimiters.
	Whitespace = " \t\n"
	// RedirectOperator diverts the standard output of a command to a file.
	RedirectOperator = ">"
)

// TruncateLine clamps a raw line to MaxLineLength bytes.
func TruncateLine(line string) string {
	if len(line) > MaxLineLength {
		return line[:MaxLineLength]
	}

	return line
}

// Tokenize splits line on whitespace and returns the non-empty tokens in order.
//
// Every delimiter ends a raw split, so runs of whitespace yield empty splits.
// Splitting stops once MaxTokens raw splits have been taken, and the empty
// splits are filtered out afterwards.
func Tokenize(line string) []string {
	raw := make([]string, 0, MaxTokens)
	rest := line

	for len(raw) < MaxTokens {
		i := strings.IndexAny(rest, Whitespace)
		if i < 0 {
			raw = append(raw, rest)
			break
		}

		raw = append(raw, rest[:i])
		rest = rest[i+1:]
	}

	tokens := make([]string, 0, len(raw))

	for _, tok := range raw {
		if tok == "" {
			continue
		}

		if len(tok) > MaxLineLength {
			tok = tok[:MaxLineLength]
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

// IsNoop reports whether the tokens should be ignored without any output.
// That is the case for an empty sequence, and for a sequence led by a single
// character other than the redirect operator.
func IsNoop(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	return len(tokens[0]) == 1 && tokens[0] != RedirectOperator
}
