package forge

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// ID identifies a weapon by the indexes it was assembled from. The eight
// bytes are level, class, body, barrel, magazine, stock, a zero pad and a
// parity byte equal to the xor of the first six.
type ID [8]byte

// NewID encodes a weapon id and computes its parity byte.
func NewID(level, class, body, barrel, magazine, stock uint8) ID {
	parity := level ^ class ^ body ^ barrel ^ magazine ^ stock
	return ID{level, class, body, barrel, magazine, stock, 0, parity}
}

// IDFromUint64 decodes the big-endian form of an id.
func IDFromUint64(v uint64) ID {
	var id ID
	binary.BigEndian.PutUint64(id[:], v)
	return id
}

// ParseID decodes a hexadecimal id as printed by ID.String.
// The parity byte is not checked; use Valid.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", types.ErrInvalidWeaponID, s)
	}
	return IDFromUint64(v), nil
}

// Valid reports whether the parity byte matches.
func (id ID) Valid() bool {
	return id[7] == id[0]^id[1]^id[2]^id[3]^id[4]^id[5]
}

// Uint64 returns the big-endian integer form of id.
func (id ID) Uint64() uint64 { return binary.BigEndian.Uint64(id[:]) }

// String returns id as 16 hex digits.
func (id ID) String() string { return fmt.Sprintf("%016x", id.Uint64()) }

func (id ID) Level() uint8    { return id[0] }
func (id ID) Class() uint8    { return id[1] }
func (id ID) Body() uint8     { return id[2] }
func (id ID) Barrel() uint8   { return id[3] }
func (id ID) Magazine() uint8 { return id[4] }
func (id ID) Stock() uint8    { return id[5] }
