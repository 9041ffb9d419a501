package godelta

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key for a (current, previous) pair of text
// hashes. The pair is ordered: swapping the arguments describes the inverse
// diff and must not share a key.
func CacheKey(currentHash, previousHash string) string {
	return currentHash + ":" + previousHash
}

// CacheKeyVersioned generates a cache key that also carries a summary-format
// version. Use this when the serialized DiffResult layout changes, so stale
// entries from an older layout are never decoded.
func CacheKeyVersioned(currentHash, previousHash, version string) string {
	return version + ":" + currentHash + ":" + previousHash
}

// CacheKeyExtended generates a cache key that carries the format version and
// a configuration fingerprint alongside the hash pair. Engines with different
// settings produce different summaries for the same texts; keying on the
// configuration keeps them from serving each other's entries through a
// shared cache.
func CacheKeyExtended(currentHash, previousHash, version, config string) string {
	return version + ":" + config + ":" + currentHash + ":" + previousHash
}
