package infrastructure

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// PDFCache keeps rendered PDFs in Redis keyed by the exact page HTML, so an
// unchanged document is not printed twice. A nil client disables it.
type PDFCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPDFCache(rdb *redis.Client, ttl time.Duration) *PDFCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PDFCache{rdb: rdb, ttl: ttl}
}

// CacheKey is the Redis key for a page of the given kind.
func CacheKey(kind, html string) string {
	sum := sha256.Sum256([]byte(html))
	return "pdf:" + kind + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached PDF. Misses and Redis errors both report false.
func (c *PDFCache) Get(ctx context.Context, kind, html string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, CacheKey(kind, html)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("pdf cache get failed", "err", err)
		}
		return nil, false
	}
	return b, true
}

// Put stores pdf; failures are logged and dropped.
func (c *PDFCache) Put(ctx context.Context, kind, html string, pdf []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, CacheKey(kind, html), pdf, c.ttl).Err(); err != nil {
		slog.Warn("pdf cache put failed", "err", err)
	}
}
