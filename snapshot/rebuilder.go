// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import "github.com/borealis-labs/borealisgo/database"

// StateRebuilder incrementally reconstructs the state trie from
// decompressed chunk payloads.
type StateRebuilder interface {
	// Feed ingests one decompressed state chunk payload. The payload
	// buffer is reused between feeds and must not be retained.
	Feed(payload []byte) error
}

// BlockRebuilder incrementally reconstructs block history from
// decompressed chunk payloads. Chunks may arrive in any order.
type BlockRebuilder interface {
	// Feed ingests one decompressed block chunk payload, validating
	// headers against [engine]. The payload buffer is reused between
	// feeds and must not be retained.
	Feed(payload []byte, engine Engine) error

	// Glue links the independently rebuilt, possibly out-of-order block
	// segments into one contiguous chain. Called exactly once, after the
	// last block chunk has been fed.
	Glue() error
}

// Engine validates block headers as they are rebuilt. The snapshot engine
// treats it as opaque.
type Engine interface {
	VerifyHeader(header []byte) error
}

// Rebuilders constructs the per-attempt rebuilder instances. The concrete
// implementations live with the chain code, not in this package.
type Rebuilders interface {
	// NewStateRebuilder returns a rebuilder writing into [db].
	NewStateRebuilder(db database.Database) StateRebuilder

	// NewBlockRebuilder returns a rebuilder writing its stores under
	// [dir], seeded with the chain's genesis block.
	NewBlockRebuilder(dir string, genesis []byte) (BlockRebuilder, error)
}

// ChainSpec carries the chain parameters the engine needs to seed and
// validate a block rebuilder.
type ChainSpec struct {
	// Name of the chain, for logging only.
	Name string

	// Genesis is the encoded genesis block.
	Genesis []byte

	// Engine validates rebuilt block headers.
	Engine Engine
}
