// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/borealis-labs/borealisgo/database"
	"github.com/borealis-labs/borealisgo/ids"
	"github.com/borealis-labs/borealisgo/utils/compression"
	"github.com/borealis-labs/borealisgo/utils/logging"
)

// recordingEngine counts header verifications and can be made to fail.
type recordingEngine struct {
	verified int
	err      error
}

func (e *recordingEngine) VerifyHeader([]byte) error {
	if e.err != nil {
		return e.err
	}
	e.verified++
	return nil
}

type fakeStateRebuilder struct {
	db  database.Database
	fed [][]byte
	err error
}

func (r *fakeStateRebuilder) Feed(payload []byte) error {
	if r.err != nil {
		return r.err
	}
	r.fed = append(r.fed, slices.Clone(payload))
	// Write through to the store the way a real rebuilder would.
	return r.db.Put(ids.FromBytes(payload).Bytes(), payload)
}

type fakeBlockRebuilder struct {
	dir     string
	fed     [][]byte
	glued   int
	feedErr error
	glueErr error
}

func (r *fakeBlockRebuilder) Feed(payload []byte, engine Engine) error {
	if r.feedErr != nil {
		return r.feedErr
	}
	if err := engine.VerifyHeader(payload); err != nil {
		return err
	}
	r.fed = append(r.fed, slices.Clone(payload))
	return nil
}

func (r *fakeBlockRebuilder) Glue() error {
	if r.glueErr != nil {
		return r.glueErr
	}
	r.glued++
	return nil
}

// fakeRebuilders hands out the fakes above and records the most recently
// created instances so tests can inspect them.
type fakeRebuilders struct {
	initErr      error
	stateFeedErr error
	blockFeedErr error
	glueErr      error

	state  *fakeStateRebuilder
	blocks *fakeBlockRebuilder
}

func (f *fakeRebuilders) NewStateRebuilder(db database.Database) StateRebuilder {
	f.state = &fakeStateRebuilder{
		db:  db,
		err: f.stateFeedErr,
	}
	return f.state
}

func (f *fakeRebuilders) NewBlockRebuilder(dir string, genesis []byte) (BlockRebuilder, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	// A real block rebuilder opens block and extras stores under [dir];
	// stand in for them so the finalize swap has directories to move.
	for _, name := range []string{blocksDBName, extrasDBName} {
		if err := os.MkdirAll(filepath.Join(dir, name), 0o750); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(filepath.Join(dir, blocksDBName, "genesis"), genesis, 0o640); err != nil {
		return nil, err
	}
	f.blocks = &fakeBlockRebuilder{
		dir:     dir,
		feedErr: f.blockFeedErr,
		glueErr: f.glueErr,
	}
	return f.blocks, nil
}

type testEnv struct {
	dataDir    string
	service    *Service
	rebuilders *fakeRebuilders
	engine     *recordingEngine
	compressor compression.Compressor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	require := require.New(t)

	compressor, err := compression.NewCompressor(compression.TypeSnappy, DefaultMaxChunkSize)
	require.NoError(err)

	env := &testEnv{
		dataDir:    t.TempDir(),
		rebuilders: &fakeRebuilders{},
		engine:     &recordingEngine{},
		compressor: compressor,
	}
	env.service, err = NewService(
		Config{
			DataDir: env.dataDir,
			Pruning: PruningArchive,
		},
		ChainSpec{
			Name:    "testchain",
			Genesis: []byte("genesis block"),
			Engine:  env.engine,
		},
		env.rebuilders,
		logging.NoLog,
		nil,
	)
	require.NoError(err)
	t.Cleanup(env.service.Stop)
	return env
}

// compress returns the wire form of [payload] along with its chunk id.
func (env *testEnv) compress(t *testing.T, payload []byte) (ids.ID, []byte) {
	t.Helper()
	chunk, err := env.compressor.Compress(payload)
	require.NoError(t, err)
	return ids.FromBytes(chunk), chunk
}

// manifestFor builds a manifest expecting the given payloads, compressing
// them and returning the wire chunks keyed by id.
func (env *testEnv) manifestFor(
	t *testing.T,
	statePayloads [][]byte,
	blockPayloads [][]byte,
) (Manifest, map[ids.ID][]byte) {
	t.Helper()

	chunks := make(map[ids.ID][]byte)
	manifest := Manifest{
		Version:     ManifestVersion,
		BlockNumber: 42,
		BlockHash:   ids.FromBytes([]byte("head")),
		StateRoot:   ids.FromBytes([]byte("root")),
	}
	for _, payload := range statePayloads {
		id, chunk := env.compress(t, payload)
		manifest.StateChunks = append(manifest.StateChunks, id)
		chunks[id] = chunk
	}
	for _, payload := range blockPayloads {
		id, chunk := env.compress(t, payload)
		manifest.BlockChunks = append(manifest.BlockChunks, id)
		chunks[id] = chunk
	}
	return manifest, chunks
}
