// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package compression

import (
	"errors"
	"fmt"
	"strings"
)

var errUnknownCompressionType = errors.New("unknown compression type")

type Type byte

const (
	TypeNone Type = iota + 1
	TypeSnappy
	TypeZstd
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeSnappy:
		return "snappy"
	case TypeZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

func TypeFromString(s string) (Type, error) {
	switch strings.ToLower(s) {
	case TypeNone.String():
		return TypeNone, nil
	case TypeSnappy.String():
		return TypeSnappy, nil
	case TypeZstd.String():
		return TypeZstd, nil
	default:
		return TypeNone, fmt.Errorf("%w: %q", errUnknownCompressionType, s)
	}
}

// NewCompressor returns a Compressor of the given [typ] that refuses to
// produce or accept payloads that decompress to more than [maxSize] bytes.
func NewCompressor(typ Type, maxSize int64) (Compressor, error) {
	switch typ {
	case TypeNone:
		return NewNoCompressor(), nil
	case TypeSnappy:
		return NewSnappyCompressor(maxSize)
	case TypeZstd:
		return NewZstdCompressor(maxSize)
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownCompressionType, typ)
	}
}
