// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/borealis-labs/borealisgo/ids"
)

func TestManifestRoundTrip(t *testing.T) {
	require := require.New(t)

	manifest := Manifest{
		Version: ManifestVersion,
		StateChunks: []ids.ID{
			ids.FromBytes([]byte("state chunk 1")),
			ids.FromBytes([]byte("state chunk 2")),
		},
		BlockChunks: []ids.ID{
			ids.FromBytes([]byte("block chunk 1")),
		},
		BlockNumber: 12345,
		BlockHash:   ids.FromBytes([]byte("head")),
		StateRoot:   ids.FromBytes([]byte("root")),
	}

	raw, err := manifest.Bytes()
	require.NoError(err)

	parsed, err := ParseManifest(raw)
	require.NoError(err)
	require.Equal(manifest, parsed)
}

func TestManifestValidate(t *testing.T) {
	id := ids.FromBytes([]byte("chunk"))

	tests := []struct {
		name        string
		manifest    Manifest
		expectedErr error
	}{
		{
			name:     "valid empty",
			manifest: Manifest{Version: ManifestVersion},
		},
		{
			name: "unsupported version",
			manifest: Manifest{
				Version: ManifestVersion + 1,
			},
			expectedErr: errUnsupportedManifestVersion,
		},
		{
			name: "duplicate state chunk",
			manifest: Manifest{
				Version:     ManifestVersion,
				StateChunks: []ids.ID{id, id},
			},
			expectedErr: errDuplicateChunk,
		},
		{
			name: "chunk in both lists",
			manifest: Manifest{
				Version:     ManifestVersion,
				StateChunks: []ids.ID{id},
				BlockChunks: []ids.ID{id},
			},
			expectedErr: errDuplicateChunk,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.manifest.Validate()
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestParseManifestMalformed(t *testing.T) {
	_, err := ParseManifest([]byte("{not json"))
	require.Error(t, err)
}
