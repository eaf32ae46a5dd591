package middleware

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
)

// 缓存条目
type cacheEntry struct {
	Path        string
	ContentType string
	Content     []byte
	Expiration  time.Time
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Expiration time.Duration             // 缓存过期时间
	KeyFunc    func(*gin.Context) string // 自定义缓存键生成函数
}

// DefaultCacheConfig 默认缓存配置
var DefaultCacheConfig = CacheConfig{
	Expiration: 30 * time.Second,
	KeyFunc:    defaultKeyFunc,
}

// CacheStats 缓存统计信息
type CacheStats struct {
	Items  int   `json:"items"`
	Bytes  int   `json:"bytes"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// ResponseCache GET 响应的内存缓存，写请求成功后整体失效
type ResponseCache struct {
	cfg    CacheConfig
	mu     sync.RWMutex
	items  map[string]cacheEntry
	hits   *atomic.Int64
	misses *atomic.Int64
	now    func() time.Time
}

// NewResponseCache 创建响应缓存
func NewResponseCache(cfg CacheConfig) *ResponseCache {
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}
	return &ResponseCache{
		cfg:    cfg,
		items:  make(map[string]cacheEntry),
		hits:   atomic.NewInt64(0),
		misses: atomic.NewInt64(0),
		now:    time.Now,
	}
}

// 默认缓存键生成函数
func defaultKeyFunc(c *gin.Context) string {
	// 获取查询参数并排序
	queryParams := c.Request.URL.Query()
	queryKeys := make([]string, 0, len(queryParams))
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var b strings.Builder
	b.WriteString(c.Request.URL.Path)
	b.WriteByte('?')
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			b.WriteString(key + "=" + value + "&")
		}
	}

	// 使用MD5哈希缓存键
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Middleware 缓存 GET 请求的 200 响应
func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := rc.cfg.KeyFunc(c)

		rc.mu.RLock()
		entry, found := rc.items[key]
		rc.mu.RUnlock()

		if found && entry.Expiration.After(rc.now()) {
			// 缓存命中，直接返回缓存的响应
			rc.hits.Inc()
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, entry.ContentType, entry.Content)
			c.Abort()
			return
		}
		rc.misses.Inc()

		// 缓存未命中，捕获响应
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		if writer.Status() == http.StatusOK {
			rc.mu.Lock()
			rc.items[key] = cacheEntry{
				Path:        c.Request.URL.Path,
				ContentType: writer.Header().Get("Content-Type"),
				Content:     writer.body.Bytes(),
				Expiration:  rc.now().Add(rc.cfg.Expiration),
			}
			rc.mu.Unlock()
		}
	}
}

// InvalidateOnWrite 写请求成功后清空缓存
func (rc *ResponseCache) InvalidateOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() < http.StatusBadRequest {
			rc.Purge()
		}
	}
}

// Purge 清除所有缓存
func (rc *ResponseCache) Purge() {
	rc.mu.Lock()
	rc.items = make(map[string]cacheEntry)
	rc.mu.Unlock()
}

// PurgeByPrefix 根据请求路径前缀清除缓存
func (rc *ResponseCache) PurgeByPrefix(prefix string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	for key, entry := range rc.items {
		if strings.HasPrefix(entry.Path, prefix) {
			delete(rc.items, key)
		}
	}
}

// Stats 获取缓存统计信息
func (rc *ResponseCache) Stats() CacheStats {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	stats := CacheStats{
		Items:  len(rc.items),
		Hits:   rc.hits.Load(),
		Misses: rc.misses.Load(),
	}
	for _, entry := range rc.items {
		stats.Bytes += len(entry.Content)
	}
	return stats
}

// Run 定期清理过期缓存，直到 ctx 结束
func (rc *ResponseCache) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rc.cleanExpired()
		}
	}
}

// cleanExpired 清理过期缓存
func (rc *ResponseCache) cleanExpired() {
	now := rc.now()

	rc.mu.Lock()
	defer rc.mu.Unlock()

	for key, entry := range rc.items {
		if entry.Expiration.Before(now) {
			delete(rc.items, key)
		}
	}
}

// 自定义响应写入器，用于捕获响应内容
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 重写Write方法，同时写入原始响应和缓冲区
func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// WriteString 重写WriteString方法，同时写入原始响应和缓冲区
func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
