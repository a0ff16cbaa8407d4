package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/devdynamic/studio-backend/internal/config"
)

// cachedResponse is the stored form of a cacheable response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response body into a buffer, up to a limit, while
// forwarding everything to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
	over   bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.over {
		if cw.buf.Len()+len(b) <= cw.limit {
			cw.buf.Write(b)
		} else {
			cw.over = true
		}
	}
	return cw.ResponseWriter.Write(b)
}

// PublicCache caches successful GET responses in Redis.  It is attached
// only to the public read routes; admin mutations call Bust on the paired
// CacheBuster so a write is never followed by a stale read.  With a nil
// Redis client or a disabled config the middleware is a pass-through.
func PublicCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			// Serve from cache on a hit; any Redis error falls through to
			// the handler.
			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var stored cachedResponse
				if json.Unmarshal(raw, &stored) == nil {
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(stored.Status, stored.ContentType, stored.Body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}

			// Cache only complete 200 bodies.
			if cw.status == http.StatusOK && !cw.over {
				stored := cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(stored); err == nil {
					rdb.Set(ctx, key, raw, cfg.TTL)
				}
			}
			return nil
		}
	}
}

// cacheKey hashes path and query under the configured prefix.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// CacheBuster drops every cached public response.  Handlers call Bust after
// any admin mutation; a nil receiver or nil client makes it a no-op so
// handlers never need to care whether caching is on.
type CacheBuster struct {
	Rdb    *redis.Client
	Prefix string
}

// Bust deletes all keys under the configured prefix.
func (b *CacheBuster) Bust(ctx context.Context) {
	if b == nil || b.Rdb == nil {
		return
	}
	iter := b.Rdb.Scan(ctx, 0, b.Prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		b.Rdb.Del(ctx, iter.Val())
	}
}
