package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a key of the form prefix:hash(parts...). Parts are JSON
// encoded before hashing so struct options participate field by field.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full 256-bit hashes; menus are small but truncation-collision bugs
	// are miserable to chase.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the SHA-256 of data as a 64-character hex string. Content
// hashes for catalogs and slides use this everywhere, so two processes
// always agree on what "unchanged" means.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
