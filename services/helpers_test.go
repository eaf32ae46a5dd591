package services

import (
	"strings"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/internal/infrastructure/database"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin123",
		DefaultUserPassword:  "zc123456",
		CaptchaTTL:           time.Minute,
		MQTTTopicPrefix:      "straw",
		SimSmokeInterval:     5 * time.Second,
		SimFlameInterval:     10 * time.Second,
		SimHistoryLimit:      20,
		SimSeed:              1,
		SnapshotTTL:          time.Minute,
	}
}

// newTestDB 每个测试一个独立的内存库，已写入初始数据
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	pool, err := database.OpenMemory("services_"+name, testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return pool.GetDB()
}

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type publishedMessage struct {
	Topic   string
	Payload []byte
}

// fakeMQTTClient 记录发布的消息，未覆盖的方法不会被调用
type fakeMQTTClient struct {
	mqtt.Client

	mu         sync.Mutex
	connected  bool
	publishErr error
	published  []publishedMessage
}

func (c *fakeMQTTClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *fakeMQTTClient) Connect() mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
	return &fakeToken{}
}

func (c *fakeMQTTClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
}

func (c *fakeMQTTClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.publishErr != nil {
		return &fakeToken{err: c.publishErr}
	}
	c.published = append(c.published, publishedMessage{Topic: topic, Payload: payload.([]byte)})
	return &fakeToken{}
}

func (c *fakeMQTTClient) messages() []publishedMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]publishedMessage(nil), c.published...)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
