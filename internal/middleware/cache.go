package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/dmolina/parroquia-api/internal/config"
)

// cacheWriter captures the response body and status while still forwarding
// everything to the client, so a successful response can be stored after
// the handler runs.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (w *cacheWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	if w.limit <= 0 || w.size+int64(len(b)) <= w.limit {
		w.buf.Write(b)
	}
	w.size += int64(len(b))
	return w.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the matched route and raw query.
// Hashing keeps arbitrary query strings out of the keyspace.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// PublicCache caches successful GET responses of public endpoints in Redis.
// Only 200 responses with JSON bodies are stored; anything else passes
// through untouched.  A nil Redis client disables caching entirely, which
// keeps the application usable when Redis is down.
func PublicCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			w := &cacheWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: int64(cfg.MaxBodyBytes)}
			c.Response().Writer = w
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if w.status == http.StatusOK && w.buf.Len() > 0 {
				// Detached context: the request may already be done.
				_ = rdb.SetEx(context.Background(), key, w.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}
