package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry represents a cached response
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ResponseCache caches GET responses keyed by tenant, path and query, so
// report widgets don't recompute aggregates on every poll.
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewResponseCache creates a new response cache
func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	// Clean up expired entries every 5 minutes
	go rc.cleanup()

	return rc
}

// Cache middleware for caching responses
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		key := rc.generateKey(c)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			c.JSON(200, entry.Data)
			c.Abort()
			return
		}

		// Wrap the writer to capture the response body
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           []byte{},
		}
		c.Writer = writer

		c.Next()

		// Cache successful responses
		if c.Writer.Status() == 200 && len(writer.body) > 0 {
			var data interface{}
			if err := json.Unmarshal(writer.body, &data); err == nil {
				rc.mu.Lock()
				rc.cache[key] = &CacheEntry{
					Data:      data,
					ExpiresAt: time.Now().Add(rc.ttl),
				}
				rc.mu.Unlock()
			}
		}
	}
}

// generateKey creates a cache key from the tenant and request. Including the
// user id keeps one tenant's cached aggregates invisible to another.
func (rc *ResponseCache) generateKey(c *gin.Context) string {
	h := md5.New()
	h.Write([]byte(strconv.Itoa(UserID(c))))
	h.Write([]byte(c.Request.URL.Path))
	h.Write([]byte(c.Request.URL.RawQuery))
	return hex.EncodeToString(h.Sum(nil))
}

// InvalidateOnWrite drops the cache after every successful non-GET request,
// so cached report aggregates never outlive the writes they summarize.
func (rc *ResponseCache) InvalidateOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method != "GET" && c.Writer.Status() < 400 {
			rc.Invalidate()
		}
	}
}

// Invalidate drops every cached entry. Called after writes that change
// aggregate results.
func (rc *ResponseCache) Invalidate() {
	rc.mu.Lock()
	rc.cache = make(map[string]*CacheEntry)
	rc.mu.Unlock()
}

// cleanup removes expired cache entries
func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for {
		<-ticker.C
		rc.mu.Lock()
		now := time.Now()
		for key, entry := range rc.cache {
			if now.After(entry.ExpiresAt) {
				delete(rc.cache, key)
			}
		}
		rc.mu.Unlock()
	}
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}
