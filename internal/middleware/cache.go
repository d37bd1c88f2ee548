package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

// ResponseCache is the storage behind ResponseCacheMiddleware;
// *cache.Store implements it on Redis.
type ResponseCache interface {
	Generation(ctx context.Context) (int64, error)
	Bump(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheKey identifies a GET response within one cache generation.
func CacheKey(generation int64, path, rawQuery string) string {
	sum := sha1.Sum([]byte(path + "?" + rawQuery))
	return fmt.Sprintf("g%d:%x", generation, sum[:])
}

// ResponseCacheMiddleware serves repeated GETs from the cache. Any
// successful non-GET request bumps the generation, so cascaded deletes and
// updates never leave stale reads behind. A nil store disables caching.
func ResponseCacheMiddleware(store ResponseCache) gin.HandlerFunc {
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		l := zerolog.Ctx(ctx)

		if c.Request.Method != http.MethodGet {
			c.Next()

			if status := c.Writer.Status(); status >= 200 && status < 400 {
				if err := store.Bump(ctx); err != nil {
					l.Warn().Err(err).Msg("cache generation bump failed")
				}
			}
			return
		}

		gen, err := store.Generation(ctx)
		if err != nil {
			l.Warn().Err(err).Msg("cache unavailable")
			c.Next()
			return
		}

		key := CacheKey(gen, c.Request.URL.Path, c.Request.URL.RawQuery)

		if body, err := store.Get(ctx, key); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()

		w := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = w
		c.Header("X-Cache", "MISS")

		c.Next()

		if w.Status() == http.StatusOK {
			if err := store.Set(ctx, key, w.buf.Bytes()); err != nil {
				l.Warn().Err(err).Msg("cache write failed")
			}
		}
	}
}
