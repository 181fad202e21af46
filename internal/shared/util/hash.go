package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey derives the storage namespace for a user. Hashing keeps raw
// user IDs out of object keys and filesystem paths.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:])
}
