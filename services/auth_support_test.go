package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, InterfaceRedisService) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisServiceWithClient(client)
	t.Cleanup(func() { _ = s.Close() })
	return mr, s
}

func TestCaptchaMemory(t *testing.T) {
	s := newCaptchaService(time.Minute, nil)

	c, err := s.Generate()
	require.NoError(t, err)
	assert.Len(t, c.Captcha, 6)
	assert.Equal(t, 60, c.ExpiresIn)

	assert.True(t, s.Verify(c.CaptchaID, c.Captcha))
	assert.False(t, s.Verify(c.CaptchaID, c.Captcha), "验证码只能使用一次")
	assert.False(t, s.Verify("", c.Captcha))
}

func TestCaptchaEmptyAnswerIsConsumed(t *testing.T) {
	s := newCaptchaService(time.Minute, nil)

	c, err := s.Generate()
	require.NoError(t, err)

	assert.False(t, s.Verify(c.CaptchaID, ""))
	assert.False(t, s.Verify(c.CaptchaID, c.Captcha), "空答案同样消耗验证码")
}

func TestCaptchaMemoryExpiry(t *testing.T) {
	s := newCaptchaService(time.Minute, nil)
	now := time.Date(2025, 7, 22, 14, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	c, err := s.Generate()
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	assert.False(t, s.Verify(c.CaptchaID, c.Captcha))

	// 过期条目在下次生成时清理
	_, err = s.Generate()
	require.NoError(t, err)
	old, err := s.Generate()
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	_, err = s.Generate()
	require.NoError(t, err)
	s.mu.Lock()
	_, stillThere := s.memory[old.CaptchaID]
	s.mu.Unlock()
	assert.False(t, stillThere)
}

func TestCaptchaDefaultTTL(t *testing.T) {
	s := newCaptchaService(0, nil)
	assert.Equal(t, 5*time.Minute, s.TTL)
}

func TestCaptchaRedis(t *testing.T) {
	mr, redisService := newMiniRedis(t)
	s := newCaptchaService(time.Minute, redisService)

	c, err := s.Generate()
	require.NoError(t, err)
	stored, err := mr.Get("captcha:" + c.CaptchaID)
	require.NoError(t, err)
	assert.Equal(t, c.Captcha, stored)
	assert.Equal(t, time.Minute, mr.TTL("captcha:"+c.CaptchaID))

	wrong := "000000"
	if c.Captcha == wrong {
		wrong = "111111"
	}
	assert.False(t, s.Verify(c.CaptchaID, wrong))
	assert.False(t, mr.Exists("captcha:"+c.CaptchaID))
	assert.False(t, s.Verify(c.CaptchaID, c.Captcha))

	c, err = s.Generate()
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	assert.False(t, s.Verify(c.CaptchaID, c.Captcha))
}

func TestJWTRoundTrip(t *testing.T) {
	s := NewJWTService(testConfig())
	user := &models.User{ID: "user001", Username: "admin", Role: models.RoleAdmin}

	token, expiresAt, err := s.GenerateToken(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user001", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "straw-monitor-service", claims.Issuer)
}

func TestJWTRejectsForeignAndExpiredTokens(t *testing.T) {
	s := NewJWTService(testConfig())
	user := &models.User{ID: "user002", Username: "operator1", Role: models.RoleOperator}

	cfg := testConfig()
	cfg.JWTSecretKey = "other-secret"
	foreign, _, err := NewJWTService(cfg).GenerateToken(user)
	require.NoError(t, err)
	_, err = s.ValidateToken(foreign)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.ValidateToken(signed)
	assert.Error(t, err)

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{Username: "x"})
	signed, err = noUser.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = s.ValidateToken(signed)
	assert.Error(t, err)

	_, err = s.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestRedisService(t *testing.T) {
	mr, s := newMiniRedis(t)
	require.True(t, s.Enabled())
	require.NoError(t, s.Ping(context.Background()))

	type snapshot struct {
		Level int `json:"level"`
	}
	require.NoError(t, s.CacheSnapshot("smoke", snapshot{Level: 42}, time.Minute))
	assert.True(t, mr.Exists("realtime:smoke"))

	var got snapshot
	require.NoError(t, s.GetSnapshot("smoke", &got))
	assert.Equal(t, 42, got.Level)

	require.NoError(t, s.SetString("k", "v", 0))
	v, err := s.TakeString("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	_, err = s.TakeString("k")
	assert.ErrorIs(t, err, redis.Nil)

	require.NoError(t, s.Delete("realtime:smoke"))
	assert.Error(t, s.GetSnapshot("smoke", &got))
}

func TestRedisServiceDisabled(t *testing.T) {
	s := NewRedisService(testConfig())
	assert.False(t, s.Enabled())
	assert.ErrorIs(t, s.Ping(context.Background()), ErrRedisDisabled)
	assert.ErrorIs(t, s.SetString("k", "v", 0), ErrRedisDisabled)
	_, err := s.TakeString("k")
	assert.ErrorIs(t, err, ErrRedisDisabled)
	assert.NoError(t, s.Close())
}
