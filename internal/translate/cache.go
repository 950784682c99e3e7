package translate

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

// Key derives the cache key for a text/language pair. The MD5-of-"text:lang"
// format matches existing cache files on disk; changing it would orphan every
// persisted entry.
func Key(text, targetLang string) string {
	sum := md5.Sum([]byte(text + ":" + targetLang))
	return hex.EncodeToString(sum[:])
}

// Cache is a file-backed translation cache. Lookups are served from memory;
// writes are buffered and hit disk after flushThreshold sets, on explicit
// Flush, and on Close.
type Cache struct {
	path           string
	flushThreshold int
	metrics        *observability.Metrics
	logger         *slog.Logger

	mu      sync.Mutex
	entries map[string]string
	dirty   int
}

// NewCache loads the cache file at path. A missing or corrupt file starts an
// empty cache; it is not an error.
func NewCache(path string, flushThreshold int, metrics *observability.Metrics, logger *slog.Logger) *Cache {
	c := &Cache{
		path:           path,
		flushThreshold: flushThreshold,
		metrics:        metrics,
		logger:         logger,
		entries:        make(map[string]string),
	}
	c.load()
	c.metrics.CacheEntries.Set(float64(len(c.entries)))
	return c
}

func (c *Cache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Error("translation cache read failed", "path", c.path, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.logger.Error("translation cache corrupt, starting empty", "path", c.path, "error", err)
		c.entries = make(map[string]string)
	}
}

// Get returns the cached value for key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if ok {
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		c.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}
	return v, ok
}

// Set stores key=value. Once enough writes accumulate the cache is flushed;
// a failed auto-flush is logged and retried on a later Set.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	c.dirty++
	c.metrics.CacheEntries.Set(float64(len(c.entries)))

	if c.dirty >= c.flushThreshold {
		if err := c.flushLocked(); err != nil {
			c.logger.Error("translation cache auto-flush failed", "path", c.path, "error", err)
		}
	}
}

// Contains reports whether key is cached without counting a lookup.
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Dirty returns the number of sets not yet flushed to disk.
func (c *Cache) Dirty() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Flush writes the full cache to disk.
func (c *Cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushLocked()
}

// flushLocked writes the snapshot to a temp file and renames it over the
// target, so a crash mid-write never truncates the cache. Callers hold mu.
func (c *Cache) flushLocked() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		c.metrics.CacheFlushes.WithLabelValues("error").Inc()
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		c.metrics.CacheFlushes.WithLabelValues("error").Inc()
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		c.metrics.CacheFlushes.WithLabelValues("error").Inc()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		c.metrics.CacheFlushes.WithLabelValues("error").Inc()
		return fmt.Errorf("replace cache file: %w", err)
	}

	c.dirty = 0
	c.metrics.CacheFlushes.WithLabelValues("success").Inc()
	return nil
}

// Close flushes pending writes. Call on shutdown.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dirty == 0 {
		return nil
	}
	return c.flushLocked()
}
