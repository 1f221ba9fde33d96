// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/borealis-labs/borealisgo/ids"
)

// manifestFileName is the manifest's file name inside a loose snapshot
// directory; chunks sit next to it, one file each, named by their id.
const manifestFileName = "manifest.json"

var errChunkMismatch = errors.New("chunk content does not match its id")

// Reader serves a completed snapshot from a loose snapshot directory.
// It is read-only and safe for concurrent use.
type Reader struct {
	dir      string
	manifest Manifest
}

// NewReader loads the manifest stored in [dir].
func NewReader(dir string) (*Reader, error) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot manifest: %w", err)
	}
	manifest, err := ParseManifest(raw)
	if err != nil {
		return nil, err
	}
	return &Reader{
		dir:      dir,
		manifest: manifest,
	}, nil
}

func (r *Reader) Manifest() Manifest {
	return r.manifest
}

// Chunk returns the raw compressed bytes of the chunk named [id],
// verifying that the file content still hashes to its name.
func (r *Reader) Chunk(id ids.ID) ([]byte, error) {
	chunk, err := os.ReadFile(filepath.Join(r.dir, id.String()))
	if err != nil {
		return nil, fmt.Errorf("reading chunk %s: %w", id, err)
	}
	if ids.FromBytes(chunk) != id {
		return nil, fmt.Errorf("%w: %s", errChunkMismatch, id)
	}
	return chunk, nil
}
