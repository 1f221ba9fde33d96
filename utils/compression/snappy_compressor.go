// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compression

import (
	"fmt"

	"github.com/golang/snappy"
)

var _ Compressor = (*snappyCompressor)(nil)

func NewSnappyCompressor(maxSize int64) (Compressor, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidMaxSizeCompressor
	}
	return &snappyCompressor{
		maxSize: maxSize,
	}, nil
}

type snappyCompressor struct {
	maxSize int64
}

func (s *snappyCompressor) Compress(msg []byte) ([]byte, error) {
	if int64(len(msg)) > s.maxSize {
		return nil, fmt.Errorf("%w: (%d) > (%d)", ErrMsgTooLarge, len(msg), s.maxSize)
	}
	return snappy.Encode(nil, msg), nil
}

func (s *snappyCompressor) Decompress(dst, msg []byte) ([]byte, error) {
	decodedLen, err := snappy.DecodedLen(msg)
	if err != nil {
		return nil, err
	}
	if int64(decodedLen) > s.maxSize {
		return nil, fmt.Errorf("%w: (%d) > (%d)", ErrDecompressedMsgTooLarge, decodedLen, s.maxSize)
	}
	return snappy.Decode(dst[:cap(dst)], msg)
}
