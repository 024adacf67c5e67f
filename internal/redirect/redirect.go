// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package redirect finds and validates the output redirection of a command line.
// The operator may stand alone or be embedded in a token, so `ls>out.txt` is
// read as `ls > out.txt`. At most one redirection is allowed.
package redirect

import (
	"errors"
	"strings"

	"github.com/matt-FFFFFF/msh/internal/tokenizer"
)

var (
	// ErrNoCommand is returned when the operator leads the line.
	ErrNoCommand = errors.New("redirection without a command")
	// ErrMultipleRedirects is returned when the line has more than one operator.
	ErrMultipleRedirects = errors.New("more than one redirection")
	// ErrBadTarget is returned when the operator is not followed by exactly one token.
	ErrBadTarget = errors.New("redirection needs exactly one target")
)

// Spec is the argument vector to execute and where its standard output goes.
type Spec struct {
	Argv   []string // Argument vector with the operator and target removed, Argv[0] is the command.
	Target string   // File receiving standard output, empty when not redirected.
}

// Redirected reports whether standard output is sent to a file.
func (s Spec) Redirected() bool {
	return s.Target != ""
}

// Expand returns a new token slice where every token that contains the
// operator, but is not the operator itself, is split around each occurrence.
// Empty pieces are dropped.
func Expand(tokens []string) []string {
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if tok == tokenizer.RedirectOperator || !strings.Contains(tok, tokenizer.RedirectOperator) {
			out = append(out, tok)
			continue
		}

		for i, piece := range strings.Split(tok, tokenizer.RedirectOperator) {
			if i > 0 {
				out = append(out, tokenizer.RedirectOperator)
			}

			if piece != "" {
				out = append(out, piece)
			}
		}
	}

	return out
}

// Parse expands tokens and validates the redirection, if any.
func Parse(tokens []string) (Spec, error) {
	expanded := Expand(tokens)
	if len(expanded) == 0 || expanded[0] == tokenizer.RedirectOperator {
		return Spec{}, ErrNoCommand
	}

	at := -1
	count := 0

	for i, tok := range expanded {
		if tok == tokenizer.RedirectOperator {
			count++
			at = i
		}
	}

	switch {
	case count == 0:
		return Spec{Argv: expanded}, nil
	case count > 1:
		return Spec{}, ErrMultipleRedirects
	case at != len(expanded)-2:
		return Spec{}, ErrBadTarget
	}

	return Spec{
		Argv:   expanded[:at],
		Target: expanded[at+1],
	}, nil
}
