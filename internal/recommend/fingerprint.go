// internal/recommend/fingerprint.go
package recommend

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyPrefix namespaces ranked-result entries in the cache store.
const KeyPrefix = "rec:"

// Fingerprint derives the content hash for a logical request: SHA-256 over
// the request text, a separator byte, and the serialized variables. It is
// stable across processes and runs; no per-process salt.
func Fingerprint(text string, variables []byte) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte("|"))
	h.Write(variables)
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey renders the namespaced cache key for a fingerprint.
func CacheKey(fingerprint string) string {
	return KeyPrefix + fingerprint
}
