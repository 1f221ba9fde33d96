// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package filesystem

import (
	"errors"
	"io/fs"
	"os"
)

// RenameIfExists renames the file [a] to [b] if [a] exists.
// It returns whether the rename happened. A missing source is not an error.
func RenameIfExists(a, b string) (bool, error) {
	err := os.Rename(a, b)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Exists reports whether a file or directory exists at [path].
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
