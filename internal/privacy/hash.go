// Package privacy hashes visitor addresses so raw IPs are never stored.
package privacy

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher hashes IPs with a per-process salt. The same IP maps to the same hash
// for the lifetime of the Hasher.
type Hasher struct {
	salt string
}

func NewHasher(salt string) Hasher { return Hasher{salt: salt} }

// NewRandomHasher salts with a fresh random token.
func NewRandomHasher() (Hasher, error) {
	salt, err := Token()
	if err != nil {
		return Hasher{}, err
	}
	return Hasher{salt: salt}, nil
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Token returns 32 random bytes, hex encoded.
func Token() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
