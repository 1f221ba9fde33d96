// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import "errors"

var (
	// ErrNotFound is returned when a key is not present in the database.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned when an operation is attempted on a closed
	// database.
	ErrClosed = errors.New("closed")
)
