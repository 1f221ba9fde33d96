// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cb58

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	require := require.New(t)

	for _, b := range [][]byte{
		{},
		{0},
		{0, 1, 2, 3, 255},
		make([]byte, 32),
	} {
		str, err := Encode(b)
		require.NoError(err)

		decoded, err := Decode(str)
		require.NoError(err)
		require.Equal(b, decoded)
	}
}

func TestDecodeBadChecksum(t *testing.T) {
	require := require.New(t)

	str, err := Encode([]byte{1, 2, 3})
	require.NoError(err)

	// flip the last character to corrupt the checksum
	corrupted := str[:len(str)-1] + string('1'+str[len(str)-1]%2)
	_, err = Decode(corrupted)
	require.Error(err)
}

func TestDecodeTooShort(t *testing.T) {
	_, err := Decode("")
	require.ErrorIs(t, err, ErrMissingChecksum)
}
