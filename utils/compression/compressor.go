// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compression

import "errors"

var (
	ErrInvalidMaxSizeCompressor = errors.New("invalid compressor max size")
	ErrDecompressedMsgTooLarge  = errors.New("decompressed msg too large")
	ErrMsgTooLarge              = errors.New("msg too large to be compressed")
)

type Compressor interface {
	// Compress [msg] and returns the compressed bytes.
	Compress(msg []byte) ([]byte, error)

	// Decompress decompresses [msg], reusing the capacity of [dst] when it
	// is large enough. Returns the decompressed bytes, which may alias
	// [dst].
	Decompress(dst, msg []byte) ([]byte, error)
}
