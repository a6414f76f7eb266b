package bleep

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// A UUID is a BLE UUID, stored little-endian.
// BLE UUIDs are either 2 or 16 bytes.
type UUID []byte

// baseUUID is the Bluetooth SIG base UUID
// 00000000-0000-1000-8000-00805F9B34FB, little-endian. The 16-bit
// variable segment of a short UUID sits at offsets 12..13; offsets
// 14..15 must stay zero.
var baseUUID = UUID{
	0xfb, 0x34, 0x9b, 0x5f, 0x80, 0x00, 0x00, 0x80,
	0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// UUID16 converts a uint16 (such as 0x2902) to a UUID.
func UUID16(i uint16) UUID {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, i)
	return UUID(b)
}

// Parse parses a standard-format UUID string, such
// as "2a37" or "00002A37-0000-1000-8000-00805F9B34FB".
func Parse(s string) (UUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse uuid %q", s)
	}
	switch len(b) {
	case 2, 16:
	default:
		return nil, errors.Errorf("uuid %q: length must be 2 or 16 bytes, got %d", s, len(b))
	}
	return UUID(Reverse(b)), nil
}

// MustParse parses a standard-format UUID string,
// like Parse, but panics in case of error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the length of the UUID, in bytes.
func (u UUID) Len() int {
	return len(u)
}

// String hex-encodes a UUID.
func (u UUID) String() string {
	return hex.EncodeToString(Reverse(u))
}

// Equal returns a boolean reporting whether v represents the same UUID as u.
func (u UUID) Equal(v UUID) bool {
	return bytes.Equal(u, v)
}

// IsShort reports whether u is an instance of the Bluetooth base UUID
// with only the 16-bit segment varying. The 96 fixed bits must match
// exactly. A 2-byte UUID is short by definition.
func (u UUID) IsShort() bool {
	if len(u) == 2 {
		return true
	}
	if len(u) != 16 {
		return false
	}
	return bytes.Equal(u[:12], baseUUID[:12]) && u[14] == 0 && u[15] == 0
}

// Shortest returns the canonical display form of u: the 4-hex-digit
// short form when u is an instance of the Bluetooth base UUID, the
// full 128-bit form otherwise.
func (u UUID) Shortest() string {
	if !u.IsShort() {
		return u.String()
	}
	if len(u) == 2 {
		return u.String()
	}
	return hex.EncodeToString([]byte{u[13], u[12]})
}

// Reverse returns a reversed copy of u.
func Reverse(u []byte) []byte {
	// Special-case 16 bit UUIDs for speed.
	l := len(u)
	if l == 2 {
		return []byte{u[1], u[0]}
	}
	b := make([]byte, l)
	for i := 0; i < l/2+1; i++ {
		b[i], b[l-i-1] = u[l-i-1], u[i]
	}
	return b
}
