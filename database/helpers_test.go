// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/borealis-labs/borealisgo/database"
	"github.com/borealis-labs/borealisgo/database/memdb"
)

func TestUInt32(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	key := []byte("version")

	require.NoError(database.PutUInt32(db, key, 2))
	got, err := database.GetUInt32(db, key)
	require.NoError(err)
	require.Equal(uint32(2), got)

	_, err = database.GetUInt32(db, []byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put(key, []byte{1, 2, 3}))
	_, err = database.GetUInt32(db, key)
	require.Error(err)
}

func TestUInt64(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	key := []byte("height")

	require.NoError(database.PutUInt64(db, key, 1<<40))
	got, err := database.GetUInt64(db, key)
	require.NoError(err)
	require.Equal(uint64(1)<<40, got)
}
