package services

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	"straw-monitor-service/config"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/utils"
)

const captchaLength = 6

// Captcha 登录验证码
type Captcha struct {
	CaptchaID string `json:"captcha_id" example:"5f1b0d2e-8f7c-4c61-9d43-0c7e7b1d2a11"`
	Captcha   string `json:"captcha" example:"482913"`
	ExpiresIn int    `json:"expires_in" example:"300"` // 秒
}

// InterfaceCaptchaService 定义验证码服务接口
type InterfaceCaptchaService interface {
	Generate() (*Captcha, error)
	Verify(captchaID, answer string) bool
}

// CaptchaService 验证码服务，优先存 Redis，未启用时存进程内
type CaptchaService struct {
	Redis InterfaceRedisService
	TTL   time.Duration

	mu     sync.Mutex
	memory map[string]memoryCaptcha
	now    func() time.Time
}

type memoryCaptcha struct {
	code      string
	expiresAt time.Time
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg *config.Config, redisService InterfaceRedisService) InterfaceCaptchaService {
	return newCaptchaService(cfg.CaptchaTTL, redisService)
}

func newCaptchaService(ttl time.Duration, redisService InterfaceRedisService) *CaptchaService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CaptchaService{
		Redis:  redisService,
		TTL:    ttl,
		memory: make(map[string]memoryCaptcha),
		now:    time.Now,
	}
}

func captchaKey(id string) string {
	return "captcha:" + id
}

// Generate 生成6位数字验证码
func (s *CaptchaService) Generate() (*Captcha, error) {
	code, err := utils.RandomDigits(captchaLength)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()

	if s.Redis != nil && s.Redis.Enabled() {
		if err := s.Redis.SetString(captchaKey(id), code, s.TTL); err != nil {
			return nil, err
		}
	} else {
		s.mu.Lock()
		s.purgeLocked()
		s.memory[id] = memoryCaptcha{code: code, expiresAt: s.now().Add(s.TTL)}
		s.mu.Unlock()
	}

	return &Captcha{CaptchaID: id, Captcha: code, ExpiresIn: int(s.TTL.Seconds())}, nil
}

// Verify 校验验证码，无论成功与否验证码都会被消耗
func (s *CaptchaService) Verify(captchaID, answer string) bool {
	if captchaID == "" {
		return false
	}

	var expected string
	if s.Redis != nil && s.Redis.Enabled() {
		code, err := s.Redis.TakeString(captchaKey(captchaID))
		if err != nil {
			logger.Debug("验证码读取失败: %v", err)
			return false
		}
		expected = code
	} else {
		s.mu.Lock()
		entry, ok := s.memory[captchaID]
		delete(s.memory, captchaID)
		s.mu.Unlock()
		if !ok || s.now().After(entry.expiresAt) {
			return false
		}
		expected = entry.code
	}

	if answer == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(answer)) == 1
}

// purgeLocked 清理过期的内存验证码
func (s *CaptchaService) purgeLocked() {
	now := s.now()
	for id, entry := range s.memory {
		if now.After(entry.expiresAt) {
			delete(s.memory, id)
		}
	}
}
