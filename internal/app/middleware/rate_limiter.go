package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	return tb.allowAt(time.Now())
}

func (tb *TokenBucket) allowAt(now time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	elapsed := now.Sub(tb.lastRefill).Seconds()
	if elapsed > 0 {
		tb.lastRefill = now
		// 填充令牌
		tb.tokens += elapsed * tb.rate
		if tb.tokens > float64(tb.capacity) {
			tb.tokens = float64(tb.capacity)
		}
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

func (tb *TokenBucket) idleSince() time.Time {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.lastRefill
}

// 限流类型
const (
	LimitByIP       = "ip"
	LimitByPath     = "path"
	LimitByCombined = "combined"
	LimitByCustom   = "custom"
)

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate       float64                   // 每秒允许的请求数
	Burst      int                       // 允许的突发请求数
	ExpiryTime time.Duration             // 空闲多久后回收限流器
	LimitType  string                    // 限流类型: "ip", "path", "combined", "custom"
	KeyFunc    func(*gin.Context) string // 自定义键生成函数
}

// DefaultRateLimiterConfig 默认限流器配置
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,             // 每秒1个请求
	Burst:      5,             // 允许5个突发请求
	ExpiryTime: 1 * time.Hour, // 空闲1小时后回收
	LimitType:  LimitByIP,     // 默认按IP限流
}

// RateLimiter 按键维护令牌桶
type RateLimiter struct {
	cfg     RateLimiterConfig
	mu      sync.RWMutex
	buckets map[string]*TokenBucket
}

// NewRateLimiter 创建限流器，缺省字段使用默认配置
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}
	return &RateLimiter{
		cfg:     cfg,
		buckets: make(map[string]*TokenBucket),
	}
}

func (l *RateLimiter) key(c *gin.Context) string {
	switch l.cfg.LimitType {
	case LimitByPath:
		return c.Request.URL.Path
	case LimitByCombined:
		return c.ClientIP() + ":" + c.Request.URL.Path
	case LimitByCustom:
		if l.cfg.KeyFunc != nil {
			return l.cfg.KeyFunc(c)
		}
	}
	return c.ClientIP()
}

func (l *RateLimiter) bucket(key string) *TokenBucket {
	l.mu.RLock()
	limiter, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, exists = l.buckets[key]; !exists {
		limiter = NewTokenBucket(l.cfg.Rate, l.cfg.Burst)
		l.buckets[key] = limiter
	}
	return limiter
}

// Middleware 返回限流中间件
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.bucket(l.key(c)).Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "请求频率过高，请稍后再试", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Cleanup 回收空闲超过 ExpiryTime 的限流器，返回回收数量
func (l *RateLimiter) Cleanup(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, limiter := range l.buckets {
		if now.Sub(limiter.idleSince()) > l.cfg.ExpiryTime {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Size 当前限流器数量
func (l *RateLimiter) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

// Run 定期清理过期的限流器，直到 ctx 结束
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Cleanup(now)
		}
	}
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) *RateLimiter {
	return NewRateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: LimitByIP,
	})
}
