// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath resolves a command name to an executable file the way
// execvp does: names containing a slash are used as paths, anything else is
// searched for in the directories of PATH.
package commandinpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/msh/internal/fsys"
)

var (
	// ErrNotFound is returned when no executable file of that name exists.
	ErrNotFound = errors.New("executable file not found")
	// ErrNotExecutable is returned when the named path is a directory or lacks the execute bit.
	ErrNotExecutable = errors.New("file is not executable")
)

// Find returns the path of the executable for command.
// Relative paths, both in command and in PATH, are taken relative to cwd.
// An empty PATH element means the current directory.
func Find(command, cwd string) (string, error) {
	if command == "" {
		return "", ErrNotFound
	}

	if strings.Contains(command, "/") {
		path := resolve(cwd, command)
		if err := executable(path); err != nil {
			return "", fmt.Errorf("%s: %w", command, err)
		}

		return path, nil
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}

		path := resolve(cwd, filepath.Join(dir, command))
		if executable(path) == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s: %w", command, ErrNotFound)
}

func resolve(cwd, path string) string {
	if filepath.IsAbs(path) || cwd == "" {
		return path
	}

	return filepath.Join(cwd, path)
}

func executable(path string) error {
	info, err := fsys.FsFactory().Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}

		return err
	}

	if info.IsDir() {
		return ErrNotExecutable
	}

	// check if the command is executable if not Windows
	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		return ErrNotExecutable
	}

	return nil
}
