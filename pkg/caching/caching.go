// Package caching is a file-based response cache with a TTL. The feed
// fetcher uses it so repeated runs inside the TTL window reuse feed
// bodies instead of hammering the sources.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Cache struct {
	dir string
	ttl time.Duration
}

// New creates a cache rooted at dir, creating it if needed. A zero or
// negative TTL yields a cache that never hits; Set still writes, so
// turning the TTL back on picks recent bodies up again.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		dir: dir,
		ttl: ttl,
	}, nil
}

// key hashes the URL into a stable filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.xml", hash)
}

// Get returns the cached body for a URL and whether it is still fresh.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	filePath := filepath.Join(c.dir, c.key(url))
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a response body for a URL.
func (c *Cache) Set(url string, data []byte) error {
	filePath := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
