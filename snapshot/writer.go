// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/borealis-labs/borealisgo/ids"
	"github.com/borealis-labs/borealisgo/utils/perms"
	"github.com/borealis-labs/borealisgo/utils/set"
)

// Writer produces a loose snapshot directory that a Reader can serve:
// one file per compressed chunk, named by the chunk's content hash, plus
// the manifest written by Finish. Not safe for concurrent use.
type Writer struct {
	dir string

	seen        set.Set[ids.ID]
	stateChunks []ids.ID
	blockChunks []ids.ID
}

// NewWriter creates [dir] (and parents) if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return &Writer{
		dir:  dir,
		seen: set.Of[ids.ID](),
	}, nil
}

// WriteStateChunk stores one compressed state chunk and returns its id.
// Writing a chunk with the same content twice records it once.
func (w *Writer) WriteStateChunk(chunk []byte) (ids.ID, error) {
	id, fresh, err := w.writeChunk(chunk)
	if err != nil {
		return ids.Empty, err
	}
	if fresh {
		w.stateChunks = append(w.stateChunks, id)
	}
	return id, nil
}

// WriteBlockChunk stores one compressed block chunk and returns its id.
// Writing a chunk with the same content twice records it once.
func (w *Writer) WriteBlockChunk(chunk []byte) (ids.ID, error) {
	id, fresh, err := w.writeChunk(chunk)
	if err != nil {
		return ids.Empty, err
	}
	if fresh {
		w.blockChunks = append(w.blockChunks, id)
	}
	return id, nil
}

func (w *Writer) writeChunk(chunk []byte) (ids.ID, bool, error) {
	id := ids.FromBytes(chunk)
	if w.seen.Contains(id) {
		return id, false, nil
	}
	if err := os.WriteFile(filepath.Join(w.dir, id.String()), chunk, perms.ReadWrite); err != nil {
		return ids.Empty, false, fmt.Errorf("writing chunk %s: %w", id, err)
	}
	w.seen.Add(id)
	return id, true, nil
}

// Finish writes the manifest describing everything written so far and
// returns it. The directory is servable by a Reader afterwards.
func (w *Writer) Finish(blockNumber uint64, blockHash ids.ID, stateRoot ids.ID) (Manifest, error) {
	manifest := Manifest{
		Version:     ManifestVersion,
		StateChunks: w.stateChunks,
		BlockChunks: w.blockChunks,
		BlockNumber: blockNumber,
		BlockHash:   blockHash,
		StateRoot:   stateRoot,
	}
	if err := manifest.Validate(); err != nil {
		return Manifest{}, err
	}

	raw, err := manifest.Bytes()
	if err != nil {
		return Manifest{}, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, manifestFileName), raw, perms.ReadWrite); err != nil {
		return Manifest{}, fmt.Errorf("writing manifest: %w", err)
	}
	return manifest, nil
}
