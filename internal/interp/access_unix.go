// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package interp

import "golang.org/x/sys/unix"

func searchableDir(dir string) error {
	return unix.Access(dir, unix.X_OK)
}
