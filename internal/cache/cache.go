// Package cache stores rendered analysis reports keyed by document
// content, so unchanged documents are not re-analyzed in batch runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for report caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ContentKey generates a cache key from document content. The key is
// content-addressed: any edit to the document produces a new key.
func ContentKey(content string) string {
	hash := sha256.Sum256([]byte(content))
	return "draftlens:v1:" + hex.EncodeToString(hash[:])
}
