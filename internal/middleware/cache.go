package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ositola/schedule-planner/internal/config"
)

// cachedResponse is the Redis payload for one cached GET response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response body so a successful reply can be stored
// after it has been sent to the client.  Bodies over the limit are passed
// through without buffering.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.buf.Len()+len(b) <= w.limit {
		w.buf.Write(b)
	} else {
		w.buf.Reset()
		w.limit = 0 // stop buffering for the rest of this response
	}
	return w.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses in Redis for cfg.TTL.
// Schedules change only when a generate run replaces them, so a short TTL
// removes nearly all repeated read load without a run-aware invalidation
// scheme.  A nil Redis client disables the middleware entirely.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if data, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(data, &cached) == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			cw := &captureWriter{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          cfg.MaxBodyBytes,
			}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				payload, err := json.Marshal(cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				})
				if err == nil {
					// Best effort; a failed SET only costs the next reader a miss.
					storeCtx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
					rdb.Set(storeCtx, key, payload, cfg.TTL)
					cancel()
				}
			}
			return nil
		}
	}
}

// cacheKey hashes method, path and raw query into a fixed-size key.
func cacheKey(prefix string, c echo.Context) string {
	req := c.Request()
	sum := sha1.Sum([]byte(req.Method + " " + req.URL.Path + "?" + req.URL.RawQuery))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
