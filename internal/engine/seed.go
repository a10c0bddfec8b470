// Package engine implements deterministic character generation: identity
// seeding, weighted sampling, ability rolling, equipment choice
// resolution, stack merging, inventory placement, and weight accounting.
// Every run is single-threaded and consumes one seeded random stream, so
// the same identity key always produces the same character.
package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/heroforge/hero-api/internal/errors"
)

// IdentityKeySize is the required decoded length of an identity key
const IdentityKeySize = 32

// SeedFromIdentityKey derives the 64-bit generation seed from a
// hex-encoded identity key. The digest's avalanche behavior means
// near-identical keys still get uncorrelated seeds.
func SeedFromIdentityKey(hexKey string) (int64, error) {
	keyBytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return 0, errors.InvalidArgumentf("identity key is not valid hex: %v", err)
	}
	if len(keyBytes) != IdentityKeySize {
		return 0, errors.InvalidArgumentf("identity key must be %d bytes, got %d",
			IdentityKeySize, len(keyBytes))
	}

	digest := sha256.Sum256(keyBytes)
	return int64(binary.BigEndian.Uint64(digest[:8])), nil //nolint:gosec // intentional reinterpretation
}
