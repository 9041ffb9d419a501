// Package cache provides diff-summary caching implementations.
package cache

// DiffCache is the interface for diff-summary caching. Values are the
// engine's serialized summaries, keyed by the hashes of the compared texts.
type DiffCache interface {
	// Get retrieves a cached summary. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a summary in the cache.
	Set(key string, value string) error
}
