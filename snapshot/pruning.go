// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/borealis-labs/borealisgo/database"
)

// PruningMode is the storage algorithm variant governing how historical
// state is retained. It selects the live database root and is recorded in
// each restored store's version marker so the store is self-describing.
type PruningMode uint8

const (
	// PruningArchive retains every historical state version.
	PruningArchive PruningMode = iota

	// PruningFast retains only recent state versions.
	PruningFast
)

var (
	errUnknownPruningMode = errors.New("unknown pruning mode")

	// versionKey is the single key this engine writes into a freshly
	// opened store; everything else is written by the rebuilders.
	versionKey = []byte("pruning-version")
)

func (p PruningMode) String() string {
	switch p {
	case PruningArchive:
		return "archive"
	case PruningFast:
		return "fast"
	default:
		return "unknown"
	}
}

func PruningFromString(s string) (PruningMode, error) {
	switch strings.ToLower(s) {
	case PruningArchive.String():
		return PruningArchive, nil
	case PruningFast.String():
		return PruningFast, nil
	default:
		return PruningArchive, fmt.Errorf("%w: %q", errUnknownPruningMode, s)
	}
}

// On-disk version numbers. These are part of the persisted format; never
// renumber them.
func (p PruningMode) dbVersion() uint32 {
	switch p {
	case PruningArchive:
		return 1
	case PruningFast:
		return 2
	default:
		return 0
	}
}

func writeVersionMarker(db database.KeyValueWriter, mode PruningMode) error {
	return database.PutUInt32(db, versionKey, mode.dbVersion())
}

// ReadVersionMarker reports the pruning mode a store was built under.
func ReadVersionMarker(db database.KeyValueReader) (PruningMode, error) {
	version, err := database.GetUInt32(db, versionKey)
	if err != nil {
		return PruningArchive, err
	}
	for _, mode := range []PruningMode{PruningArchive, PruningFast} {
		if mode.dbVersion() == version {
			return mode, nil
		}
	}
	return PruningArchive, fmt.Errorf("%w: version %d", errUnknownPruningMode, version)
}
