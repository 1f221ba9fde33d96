// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDToID(t *testing.T) {
	require := require.New(t)

	b := make([]byte, IDLen)
	b[0] = 0x01
	id, err := ToID(b)
	require.NoError(err)
	require.Equal(b, id.Bytes())

	_, err = ToID(make([]byte, IDLen-1))
	require.Error(err)
}

func TestIDFromBytesDeterministic(t *testing.T) {
	require := require.New(t)

	id := FromBytes([]byte("chunk payload"))
	require.Equal(id, FromBytes([]byte("chunk payload")))
	require.NotEqual(id, FromBytes([]byte("other payload")))
	require.NotEqual(Empty, id)
}

func TestIDStringRoundTrip(t *testing.T) {
	require := require.New(t)

	id := FromBytes([]byte{1, 2, 3})
	parsed, err := FromString(id.String())
	require.NoError(err)
	require.Equal(id, parsed)

	_, err = FromString("not a valid cb58 id!!")
	require.Error(err)
}

func TestIDJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	id := FromBytes([]byte{4, 5, 6})
	b, err := json.Marshal(id)
	require.NoError(err)

	var parsed ID
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(id, parsed)
}

func TestIDCompare(t *testing.T) {
	require := require.New(t)

	a := ID{0x01}
	b := ID{0x02}
	require.Equal(-1, a.Compare(b))
	require.Equal(1, b.Compare(a))
	require.Zero(a.Compare(a))
}
