package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a namespace and a canonical request string
func Key(namespace, request string) string {
	hash := sha256.Sum256([]byte(request))
	return "globex:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
