package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedRouter(rc *ResponseCache, calls *int) *gin.Engine {
	r := gin.New()
	r.Use(rc.InvalidateOnWrite())
	r.GET("/areas", rc.Middleware(), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"calls": *calls, "town": c.Query("town")})
	})
	r.GET("/areas/:id", rc.Middleware(), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusNotFound, gin.H{"id": c.Param("id")})
	})
	r.POST("/devices", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})
	r.POST("/devices/bad", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{})
	})
	return r
}

func TestResponseCacheHitAndMiss(t *testing.T) {
	rc := NewResponseCache(DefaultCacheConfig)
	calls := 0
	r := newCachedRouter(rc, &calls)

	first := perform(r, http.MethodGet, "/areas?town=beihu&a=1", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	// 参数顺序不同命中同一条缓存
	second := perform(r, http.MethodGet, "/areas?a=1&town=beihu", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, calls)

	third := perform(r, http.MethodGet, "/areas?town=taiping", nil)
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)

	stats := rc.Stats()
	assert.Equal(t, 2, stats.Items)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Positive(t, stats.Bytes)
}

func TestResponseCacheSkipsErrors(t *testing.T) {
	rc := NewResponseCache(DefaultCacheConfig)
	calls := 0
	r := newCachedRouter(rc, &calls)

	perform(r, http.MethodGet, "/areas/area999", nil)
	rec := perform(r, http.MethodGet, "/areas/area999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, rc.Stats().Items)
}

func TestResponseCacheExpires(t *testing.T) {
	rc := NewResponseCache(CacheConfig{Expiration: time.Second})
	now := time.Date(2025, 7, 22, 14, 30, 0, 0, time.UTC)
	rc.now = func() time.Time { return now }
	calls := 0
	r := newCachedRouter(rc, &calls)

	perform(r, http.MethodGet, "/areas", nil)
	assert.Equal(t, "HIT", perform(r, http.MethodGet, "/areas", nil).Header().Get("X-Cache"))

	now = now.Add(2 * time.Second)
	assert.Equal(t, "MISS", perform(r, http.MethodGet, "/areas", nil).Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)

	now = now.Add(2 * time.Second)
	rc.cleanExpired()
	assert.Equal(t, 0, rc.Stats().Items)
}

func TestResponseCacheInvalidateOnWrite(t *testing.T) {
	rc := NewResponseCache(DefaultCacheConfig)
	calls := 0
	r := newCachedRouter(rc, &calls)

	perform(r, http.MethodGet, "/areas", nil)
	require.Equal(t, 1, rc.Stats().Items)

	// 失败的写请求不清缓存
	perform(r, http.MethodPost, "/devices/bad", nil)
	assert.Equal(t, 1, rc.Stats().Items)

	perform(r, http.MethodPost, "/devices", nil)
	assert.Equal(t, 0, rc.Stats().Items)
	assert.Equal(t, "MISS", perform(r, http.MethodGet, "/areas", nil).Header().Get("X-Cache"))
}

func TestResponseCachePurgeByPrefix(t *testing.T) {
	rc := NewResponseCache(DefaultCacheConfig)
	r := gin.New()
	r.GET("/*path", rc.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("path"))
	})

	perform(r, http.MethodGet, "/areas", nil)
	perform(r, http.MethodGet, "/analysis/overview", nil)
	require.Equal(t, 2, rc.Stats().Items)

	rc.PurgeByPrefix("/analysis")
	assert.Equal(t, 1, rc.Stats().Items)
	assert.Equal(t, "HIT", perform(r, http.MethodGet, "/areas", nil).Header().Get("X-Cache"))
}
