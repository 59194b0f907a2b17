package signal

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserID returns the lowercase hex SHA-256 digest of the user
// identifier with the salt appended. An empty salt hashes the
// identifier alone.
//
// The digest is deterministic so the same user maps to the same
// clientUser value across sessions and devices. The algorithm is not
// versioned: changing it would make previously recorded clientUser
// values incomparable with new ones.
func HashUserID(id, salt string) string {
	sum := sha256.Sum256([]byte(id + salt))
	return hex.EncodeToString(sum[:])
}
