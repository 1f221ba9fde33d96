// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package database defines the key-value store abstraction that rebuilt
// snapshot stores are opened against.
package database

import "io"

// KeyValueReader wraps the Has and Get methods of a key-value store.
type KeyValueReader interface {
	// Has retrieves if a key is present in the key-value store.
	Has(key []byte) (bool, error)

	// Get retrieves the given key if it's present in the key-value store.
	// Returns ErrNotFound if the key is not present.
	Get(key []byte) ([]byte, error)
}

// KeyValueWriter wraps the Put method of a key-value store.
type KeyValueWriter interface {
	// Put inserts the given value into the key-value store.
	Put(key []byte, value []byte) error
}

// KeyValueDeleter wraps the Delete method of a key-value store.
type KeyValueDeleter interface {
	// Delete removes the key from the key-value store.
	Delete(key []byte) error
}

// KeyValueReaderWriter allows read/write access to a backing data store.
type KeyValueReaderWriter interface {
	KeyValueReader
	KeyValueWriter
}

// Database contains all of the methods required to interact with a
// key-value store.
type Database interface {
	KeyValueReader
	KeyValueWriter
	KeyValueDeleter
	io.Closer
}
