// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/borealis-labs/borealisgo/utils/cb58"
	"github.com/borealis-labs/borealisgo/utils/hashing"
)

const IDLen = 32

var (
	// Empty is a useful all-zero value.
	Empty = ID{}

	_ fmt.Stringer = ID{}
)

// ID is a 256 bit content hash uniquely naming a blob of bytes.
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id.
func ToID(bytes []byte) (ID, error) {
	res, err := hashing.ToHash256(bytes)
	return ID(res), err
}

// FromBytes returns the ID of [bytes]: the sha256 hash of its content.
func FromBytes(bytes []byte) ID {
	return ID(hashing.ComputeHash256Array(bytes))
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	b, err := cb58.Decode(idStr)
	if err != nil {
		return Empty, err
	}
	return ToID(b)
}

func (id ID) Bytes() []byte {
	return id[:]
}

func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	// We assume that the maximum size of a byte slice that can be
	// cb58-encoded is not exceeded by a 32 byte value.
	s, _ := cb58.Encode(id[:])
	return s
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Compare returns a comparison between the two ids.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}
