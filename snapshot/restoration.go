// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/borealis-labs/borealisgo/database"
	"github.com/borealis-labs/borealisgo/database/leveldb"
	"github.com/borealis-labs/borealisgo/ids"
	"github.com/borealis-labs/borealisgo/utils/compression"
	"github.com/borealis-labs/borealisgo/utils/logging"
	"github.com/borealis-labs/borealisgo/utils/set"
)

const (
	stateDBName  = "state"
	blocksDBName = "blocks"
	extrasDBName = "extras"
)

// The stores swapped into the live location on finalize, in swap order.
var liveDBNames = []string{stateDBName, blocksDBName, extrasDBName}

// Restoration tracks one snapshot restoration attempt: the chunks still
// outstanding and the rebuilders consuming them. It is owned by the
// service and mutated only under the service's restoration lock.
type Restoration struct {
	manifest Manifest

	// Shrink monotonically to empty as chunks are consumed.
	stateChunksLeft set.Set[ids.ID]
	blockChunksLeft set.Set[ids.ID]

	state  StateRebuilder
	blocks BlockRebuilder

	// The freshly opened state store. Held so it can be released before
	// its directory is swapped.
	db database.Database

	decompressor compression.Compressor
	// Reused across feeds to avoid re-allocating per chunk.
	buf []byte
}

// newRestoration opens fresh stores under [dir] and wires up the
// rebuilders for one attempt.
func newRestoration(
	manifest Manifest,
	pruning PruningMode,
	dir string,
	spec ChainSpec,
	rebuilders Rebuilders,
	decompressor compression.Compressor,
	log logging.Logger,
) (*Restoration, error) {
	db, err := leveldb.New(filepath.Join(dir, stateDBName), log)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	if err := writeVersionMarker(db, pruning); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("writing version marker: %w", err)
	}

	blocks, err := rebuilders.NewBlockRebuilder(dir, spec.Genesis)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing chain for %s: %w", spec.Name, err)
	}

	return &Restoration{
		manifest:        manifest,
		stateChunksLeft: set.Of(manifest.StateChunks...),
		blockChunksLeft: set.Of(manifest.BlockChunks...),
		state:           rebuilders.NewStateRebuilder(db),
		blocks:          blocks,
		db:              db,
		decompressor:    decompressor,
	}, nil
}

// feedState consumes one compressed state chunk. An id that is not
// outstanding (never expected, or already consumed) is a no-op: chunk
// delivery may be retried or duplicated by the transport. On error the id
// stays outstanding.
func (r *Restoration) feedState(id ids.ID, chunk []byte) error {
	if !r.stateChunksLeft.Contains(id) {
		return nil
	}

	payload, err := r.decompressor.Decompress(r.buf, chunk)
	if err != nil {
		return fmt.Errorf("decompressing state chunk %s: %w", id, err)
	}
	r.buf = payload

	if err := r.state.Feed(payload); err != nil {
		return fmt.Errorf("rebuilding state from chunk %s: %w", id, err)
	}
	r.stateChunksLeft.Remove(id)
	return nil
}

// feedBlocks consumes one compressed block chunk, symmetric to feedState.
// Consuming the last outstanding block chunk triggers the glue step that
// links out-of-order segments into one chain.
func (r *Restoration) feedBlocks(id ids.ID, chunk []byte, engine Engine) error {
	if !r.blockChunksLeft.Contains(id) {
		return nil
	}

	payload, err := r.decompressor.Decompress(r.buf, chunk)
	if err != nil {
		return fmt.Errorf("decompressing block chunk %s: %w", id, err)
	}
	r.buf = payload

	if err := r.blocks.Feed(payload, engine); err != nil {
		return fmt.Errorf("rebuilding blocks from chunk %s: %w", id, err)
	}
	r.blockChunksLeft.Remove(id)

	if r.blockChunksLeft.Len() == 0 {
		if err := r.blocks.Glue(); err != nil {
			return fmt.Errorf("linking block chunks: %w", err)
		}
	}
	return nil
}

// Done reports whether every expected chunk has been consumed.
func (r *Restoration) Done() bool {
	return r.stateChunksLeft.Len() == 0 && r.blockChunksLeft.Len() == 0
}

// Close releases the restoration's store handles. Required before the
// directory holding them is renamed or removed.
func (r *Restoration) Close() error {
	return r.db.Close()
}
