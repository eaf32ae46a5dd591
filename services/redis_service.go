package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"straw-monitor-service/config"
)

// ErrRedisDisabled 未启用 Redis
var ErrRedisDisabled = errors.New("redis 未启用")

// InterfaceRedisService 定义Redis服务接口
type InterfaceRedisService interface {
	Enabled() bool
	Ping(ctx context.Context) error
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	SetString(key, value string, expiration time.Duration) error
	TakeString(key string) (string, error)
	Delete(key string) error
	CacheSnapshot(feed string, snapshot interface{}, expiration time.Duration) error
	GetSnapshot(feed string, dest interface{}) error
	Close() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service，未启用时返回不带客户端的实例
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	if !cfg.RedisEnabled {
		return &RedisService{Ctx: context.Background()}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return NewRedisServiceWithClient(client)
}

// NewRedisServiceWithClient 使用已有客户端创建Redis服务
func NewRedisServiceWithClient(client *redis.Client) InterfaceRedisService {
	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Enabled 是否配置了Redis客户端
func (s *RedisService) Enabled() bool {
	return s.Client != nil
}

// Ping 检查Redis连通性
func (s *RedisService) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return ErrRedisDisabled
	}
	return s.Client.Ping(ctx).Err()
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	if !s.Enabled() {
		return ErrRedisDisabled
	}

	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	if !s.Enabled() {
		return ErrRedisDisabled
	}

	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// SetString 写入字符串值
func (s *RedisService) SetString(key, value string, expiration time.Duration) error {
	if !s.Enabled() {
		return ErrRedisDisabled
	}
	return s.Client.Set(s.Ctx, key, value, expiration).Err()
}

// TakeString 读取并删除字符串值，键不存在时返回 redis.Nil
func (s *RedisService) TakeString(key string) (string, error) {
	if !s.Enabled() {
		return "", ErrRedisDisabled
	}
	return s.Client.GetDel(s.Ctx, key).Result()
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	if !s.Enabled() {
		return ErrRedisDisabled
	}
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheSnapshot 缓存实时数据快照
func (s *RedisService) CacheSnapshot(feed string, snapshot interface{}, expiration time.Duration) error {
	return s.Set("realtime:"+feed, snapshot, expiration)
}

// GetSnapshot 读取缓存的实时数据快照
func (s *RedisService) GetSnapshot(feed string, dest interface{}) error {
	return s.Get("realtime:"+feed, dest)
}

// Close 关闭Redis连接
func (s *RedisService) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.Client.Close()
}
