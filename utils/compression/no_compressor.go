// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compression

var _ Compressor = (*noCompressor)(nil)

func NewNoCompressor() Compressor {
	return &noCompressor{}
}

type noCompressor struct{}

func (*noCompressor) Compress(msg []byte) ([]byte, error) {
	return msg, nil
}

func (*noCompressor) Decompress(dst, msg []byte) ([]byte, error) {
	return append(dst[:0], msg...), nil
}
