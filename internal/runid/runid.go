// Package runid names simulation runs. An ID is a UUIDv7 encoded as 26
// characters of Crockford base32, so IDs sort by creation time and fit in
// log lines and file names.
package runid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	length   = 26
)

// New returns a fresh run ID
func New() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate run ID: %w", err)
	}
	return Encode(u), nil
}

// Encode renders a UUID as a run ID. The 128 bits are left-padded with two
// zero bits to fill 26 five-bit characters.
func Encode(u uuid.UUID) string {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(u[i])
		lo = lo<<8 | uint64(u[i+8])
	}

	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Decode parses a run ID back into its UUID
func Decode(id string) (uuid.UUID, error) {
	if err := Validate(id); err != nil {
		return uuid.Nil, err
	}

	var hi, lo uint64
	for i := 0; i < length; i++ {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}

	var u uuid.UUID
	for i := 7; i >= 0; i-- {
		u[i] = byte(hi)
		u[i+8] = byte(lo)
		hi >>= 8
		lo >>= 8
	}
	return u, nil
}

// Validate checks that id is 26 lower-case base32 characters representing
// at most 128 bits
func Validate(id string) error {
	if len(id) != length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}
