package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// NewSessionCache creates the store that keeps one selection per browser
// session. Entries expire after ttl of inactivity and are swept at twice
// that interval.
func NewSessionCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}

// GetCacheKey joins a prefix and parameters into a cache key.
func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
