// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/borealis-labs/borealisgo/ids"
	"github.com/borealis-labs/borealisgo/utils/set"
)

// ManifestVersion is the current version of the manifest format.
const ManifestVersion uint32 = 1

var (
	errUnsupportedManifestVersion = errors.New("unsupported manifest version")
	errDuplicateChunk             = errors.New("duplicate chunk in manifest")
)

// Manifest enumerates the chunks that constitute one snapshot, along with
// the chain-head metadata needed to seed the block rebuilder. A manifest
// is immutable: it is created by whoever negotiates a snapshot source and
// consumed once per restoration attempt.
type Manifest struct {
	Version uint32 `json:"version"`

	// Content hashes of the compressed state and block chunks. Unique and
	// unordered.
	StateChunks []ids.ID `json:"stateChunks"`
	BlockChunks []ids.ID `json:"blockChunks"`

	// The chain head this snapshot reconstructs.
	BlockNumber uint64 `json:"blockNumber"`
	BlockHash   ids.ID `json:"blockHash"`
	StateRoot   ids.ID `json:"stateRoot"`
}

// ParseManifest parses and validates the JSON form of a manifest.
func ParseManifest(b []byte) (Manifest, error) {
	m := Manifest{}
	if err := json.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parsing manifest: %w", err)
	}
	return m, m.Validate()
}

// Bytes returns the JSON form of [m].
func (m Manifest) Bytes() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (m Manifest) Validate() error {
	if m.Version != ManifestVersion {
		return fmt.Errorf("%w: %d", errUnsupportedManifestVersion, m.Version)
	}
	seen := set.Of[ids.ID]()
	for _, id := range m.StateChunks {
		if seen.Contains(id) {
			return fmt.Errorf("%w: %s", errDuplicateChunk, id)
		}
		seen.Add(id)
	}
	for _, id := range m.BlockChunks {
		if seen.Contains(id) {
			return fmt.Errorf("%w: %s", errDuplicateChunk, id)
		}
		seen.Add(id)
	}
	return nil
}
