// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linesource

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/fsys"
	"github.com/matt-FFFFFF/msh/internal/tokenizer"
)

// ErrOpenBatchFile is returned when the batch file cannot be opened.
var ErrOpenBatchFile = errors.New("failed to open batch file")

// Batch reads lines sequentially from a file, without a prompt.
type Batch struct {
	r      *bufio.Reader
	closer io.Closer
	name   string
	lineNo int
}

// OpenBatch opens the named batch file.
func OpenBatch(name string) (*Batch, error) {
	f, err := fsys.FsFactory().Open(name)
	if err != nil {
		return nil, errors.Join(ErrOpenBatchFile, err)
	}

	b := NewBatch(f)
	b.closer = f
	b.name = name

	return b, nil
}

// NewBatch reads lines from r. Closing the Batch does not close r.
func NewBatch(r io.Reader) *Batch {
	return &Batch{r: bufio.NewReader(r)}
}

// Next returns the next line, without its terminator.
// A final line lacking a newline is still returned before io.EOF.
func (b *Batch) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := b.r.ReadString('\n')

	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", err
	}

	b.lineNo++

	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}

	if len(line) > tokenizer.MaxLineLength {
		ctxlog.Debug(ctx, "truncating batch line", "file", b.name, "line", b.lineNo, "length", len(line))
		line = tokenizer.TruncateLine(line)
	}

	return line, nil
}

// Close closes the batch file, if Batch opened it.
func (b *Batch) Close() error {
	if b.closer == nil {
		return nil
	}

	return b.closer.Close()
}
