// Package cache persists pipeline answers between runs so repeated queries
// skip the TMDb round trips. Entries are keyed by a hash of the normalized
// query text and expire after a configurable number of days.
package cache

import (
	"crypto/md5" //nolint:gosec // Cache key, not a security boundary.
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/oops"
)

// Entry is one cached answer.
type Entry struct {
	Query    string    `json:"query"`
	Result   string    `json:"result"`
	CachedAt time.Time `json:"cached_at"`
}

// Cache is a JSON-file-backed query cache. Safe for concurrent use.
type Cache struct {
	path   string
	expiry time.Duration

	mu      sync.Mutex
	entries map[string]Entry
}

// Load reads the cache at path, dropping expired entries. A missing file
// yields an empty cache; a corrupt file is discarded and replaced on the
// next save rather than treated as fatal.
func Load(path string, expiryDays int) (*Cache, error) {
	if expiryDays <= 0 {
		expiryDays = 7
	}

	c := &Cache{
		path:    path,
		expiry:  time.Duration(expiryDays) * 24 * time.Hour,
		entries: map[string]Entry{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}

		return nil, oops.
			Code("CACHE_ERROR").
			With("path", path).
			Wrapf(err, "reading query cache")
	}

	if unmarshalErr := json.Unmarshal(data, &c.entries); unmarshalErr != nil {
		c.entries = map[string]Entry{}
		return c, nil
	}

	c.pruneExpired()

	return c, nil
}

// Key returns the cache key for a query: hex MD5 of the lower-cased,
// trimmed text.
func Key(query string) string {
	normalized := normalize(query)
	sum := md5.Sum([]byte(normalized)) //nolint:gosec // Cache key, not a security boundary.

	return hex.EncodeToString(sum[:])
}

// Get returns the cached answer for query, if present and not expired.
func (c *Cache) Get(query string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[Key(query)]
	if !ok || time.Since(entry.CachedAt) > c.expiry {
		return "", false
	}

	return entry.Result, true
}

// Set stores an answer and writes the cache file immediately.
func (c *Cache) Set(query, result string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Key(query)] = Entry{
		Query:    normalize(query),
		Result:   result,
		CachedAt: time.Now().UTC(),
	}

	return c.save()
}

// Clear drops every entry and persists the empty cache.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[string]Entry{}

	return c.save()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Entries lists cached entries, newest first.
func (c *Cache) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CachedAt.After(entries[j].CachedAt)
	})

	return entries
}

func (c *Cache) pruneExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if time.Since(entry.CachedAt) > c.expiry {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) save() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return oops.
			Code("CACHE_ERROR").
			Wrapf(err, "encoding query cache")
	}

	if writeErr := os.WriteFile(c.path, data, 0o644); writeErr != nil {
		return oops.
			Code("CACHE_ERROR").
			With("path", c.path).
			Hint("Check that the cache directory is writable").
			Wrapf(writeErr, "writing query cache")
	}

	return nil
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
