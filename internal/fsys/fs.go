// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fsys holds the filesystem used by the shell for everything it reads
// itself: batch files, the history file, the config file, command lookup and
// directory checks for cd. Tests swap it for an in-memory filesystem.
package fsys

import "github.com/spf13/afero"

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
