// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package leveldb provides a goleveldb-backed implementation of the
// database interface, opened by filesystem path.
package leveldb

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"go.uber.org/zap"

	"github.com/borealis-labs/borealisgo/database"
	"github.com/borealis-labs/borealisgo/utils/logging"
)

const (
	// BlockCacheSize is the number of bytes to use for block caching in
	// leveldb.
	BlockCacheSize = 12 * opt.MiB

	// WriteBufferSize is the number of bytes to use for buffers in leveldb.
	WriteBufferSize = 12 * opt.MiB

	// HandleCap is the number of files descriptors to cap leveldb to use.
	HandleCap = 1024
)

var _ database.Database = (*Database)(nil)

// Database is a persistent key-value store backed by leveldb.
type Database struct {
	db  *leveldb.DB
	log logging.Logger
}

// New opens (creating if necessary) a leveldb instance at [file].
// A corrupted store is recovered in place before giving up.
func New(file string, log logging.Logger) (*Database, error) {
	db, err := leveldb.OpenFile(file, &opt.Options{
		BlockCacheCapacity:     BlockCacheSize,
		WriteBuffer:            WriteBufferSize / 2,
		OpenFilesCacheCapacity: HandleCap,
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		log.Warn("recovering corrupted leveldb store",
			zap.String("path", file),
		)
		db, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("opening leveldb at %q: %w", file, err)
	}
	return &Database{
		db:  db,
		log: log,
	}, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	has, err := db.db.Has(key, nil)
	return has, updateError(err)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	value, err := db.db.Get(key, nil)
	return value, updateError(err)
}

func (db *Database) Put(key []byte, value []byte) error {
	return updateError(db.db.Put(key, value, nil))
}

func (db *Database) Delete(key []byte) error {
	return updateError(db.db.Delete(key, nil))
}

// Close flushes and releases the underlying store. The store's directory
// may be safely renamed or removed afterwards.
func (db *Database) Close() error {
	return updateError(db.db.Close())
}

// Translate leveldb's sentinel errors into the database package's.
func updateError(err error) error {
	switch err {
	case leveldb.ErrClosed:
		return database.ErrClosed
	case leveldb.ErrNotFound:
		return database.ErrNotFound
	default:
		return err
	}
}
