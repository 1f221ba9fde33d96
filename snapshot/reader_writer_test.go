// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/borealis-labs/borealisgo/ids"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "snapshot")
	writer, err := NewWriter(dir)
	require.NoError(err)

	stateChunk := []byte("compressed state chunk")
	blockChunk := []byte("compressed block chunk")

	stateID, err := writer.WriteStateChunk(stateChunk)
	require.NoError(err)
	blockID, err := writer.WriteBlockChunk(blockChunk)
	require.NoError(err)

	head := ids.FromBytes([]byte("head"))
	root := ids.FromBytes([]byte("root"))
	manifest, err := writer.Finish(99, head, root)
	require.NoError(err)
	require.Equal([]ids.ID{stateID}, manifest.StateChunks)
	require.Equal([]ids.ID{blockID}, manifest.BlockChunks)

	reader, err := NewReader(dir)
	require.NoError(err)
	require.Equal(manifest, reader.Manifest())

	got, err := reader.Chunk(stateID)
	require.NoError(err)
	require.Equal(stateChunk, got)

	got, err = reader.Chunk(blockID)
	require.NoError(err)
	require.Equal(blockChunk, got)
}

func TestWriterDeduplicatesChunks(t *testing.T) {
	require := require.New(t)

	writer, err := NewWriter(t.TempDir())
	require.NoError(err)

	chunk := []byte("same content")
	id1, err := writer.WriteStateChunk(chunk)
	require.NoError(err)
	id2, err := writer.WriteStateChunk(chunk)
	require.NoError(err)
	require.Equal(id1, id2)

	manifest, err := writer.Finish(1, ids.Empty, ids.Empty)
	require.NoError(err)
	require.Len(manifest.StateChunks, 1)
}

func TestReaderUnknownChunk(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	writer, err := NewWriter(dir)
	require.NoError(err)
	_, err = writer.Finish(1, ids.Empty, ids.Empty)
	require.NoError(err)

	reader, err := NewReader(dir)
	require.NoError(err)

	_, err = reader.Chunk(ids.FromBytes([]byte("never written")))
	require.Error(err)
}

func TestReaderDetectsTamperedChunk(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	writer, err := NewWriter(dir)
	require.NoError(err)
	id, err := writer.WriteStateChunk([]byte("original content"))
	require.NoError(err)
	_, err = writer.Finish(1, ids.Empty, ids.Empty)
	require.NoError(err)

	require.NoError(os.WriteFile(filepath.Join(dir, id.String()), []byte("tampered"), 0o640))

	reader, err := NewReader(dir)
	require.NoError(err)
	_, err = reader.Chunk(id)
	require.ErrorIs(err, errChunkMismatch)
}

func TestReaderMissingManifest(t *testing.T) {
	_, err := NewReader(t.TempDir())
	require.Error(t, err)
}
