package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
)

// ErrMQTTDisabled 未启用 MQTT
var ErrMQTTDisabled = errors.New("mqtt 未启用")

// InterfaceMQTTService 定义MQTT发布服务接口
type InterfaceMQTTService interface {
	Enabled() bool
	Connect() error
	Disconnect()
	IsConnected() bool
	Publish(topic string, payload interface{}) error
	PublishDeviceCommand(cmd DeviceCommand) error
	PublishEvent(evt models.RealtimeEvent) error
	DeviceCommandTopic(deviceID string) string
	EventTopic(eventType string) string
}

// MQTTService 设备指令与实时数据的MQTT发布
type MQTTService struct {
	Config      *config.Config
	Client      mqtt.Client
	prefix      string
	isConnected *atomic.Bool
	publishMu   sync.Mutex
}

// NewMQTTService 创建MQTT服务，未启用时不创建客户端
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	if !cfg.MQTTEnabled {
		return NewMQTTServiceWithClient(cfg, nil)
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBroker)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("straw-monitor-%s", uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}

	s := NewMQTTServiceWithClient(cfg, nil).(*MQTTService)
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warning("[MQTT] 连接丢失: %v", err)
		s.isConnected.Store(false)
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("[MQTT] 成功连接到 %s", cfg.MQTTBroker)
		s.isConnected.Store(true)
	})
	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		logger.Info("[MQTT] 正在尝试重连...")
	})
	s.Client = mqtt.NewClient(opts)
	return s
}

// NewMQTTServiceWithClient 使用指定客户端创建MQTT服务，client 为 nil 表示未启用
func NewMQTTServiceWithClient(cfg *config.Config, client mqtt.Client) InterfaceMQTTService {
	prefix := strings.TrimSuffix(cfg.MQTTTopicPrefix, "/")
	if prefix == "" {
		prefix = "straw"
	}
	s := &MQTTService{
		Config:      cfg,
		Client:      client,
		prefix:      prefix,
		isConnected: atomic.NewBool(false),
	}
	if client != nil && client.IsConnected() {
		s.isConnected.Store(true)
	}
	return s
}

// Enabled 是否配置了MQTT客户端
func (s *MQTTService) Enabled() bool {
	return s.Client != nil
}

// Connect 连接到MQTT服务器，带有重试机制
func (s *MQTTService) Connect() error {
	if !s.Enabled() {
		return ErrMQTTDisabled
	}
	if s.IsConnected() {
		return nil
	}

	maxRetries := 3
	var err error
	for i := 0; i < maxRetries; i++ {
		token := s.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			s.isConnected.Store(true)
			return nil
		}

		err = token.Error()
		backoff := time.Duration(1<<uint(i)) * time.Second // 指数退避: 1s, 2s, 4s
		logger.Warning("[MQTT] 连接尝试 %d/%d 失败: %v, 将在 %v 后重试", i+1, maxRetries, err, backoff)
		time.Sleep(backoff)
	}

	return fmt.Errorf("[MQTT] 连接失败，已尝试 %d 次: %v", maxRetries, err)
}

// Disconnect 断开与MQTT服务器的连接
func (s *MQTTService) Disconnect() {
	if s.Enabled() && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.isConnected.Store(false)
}

// IsConnected 当前是否已连接
func (s *MQTTService) IsConnected() bool {
	return s.Enabled() && s.isConnected.Load() && s.Client.IsConnected()
}

// Publish 发布JSON消息到指定主题
func (s *MQTTService) Publish(topic string, payload interface{}) error {
	if !s.Enabled() {
		return ErrMQTTDisabled
	}
	if !s.IsConnected() {
		return fmt.Errorf("MQTT客户端未连接")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	token := s.Client.Publish(topic, 1, false, jsonData)
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("发布消息超时")
	}
	if token.Error() != nil {
		return fmt.Errorf("发布消息失败: %w", token.Error())
	}

	logger.Debug("[MQTT] 已发布消息到主题: %s", topic)
	return nil
}

// DeviceCommandTopic 设备指令主题
func (s *MQTTService) DeviceCommandTopic(deviceID string) string {
	return s.prefix + "/devices/" + deviceID + "/command"
}

// EventTopic 实时事件主题
func (s *MQTTService) EventTopic(eventType string) string {
	return s.prefix + "/realtime/" + eventType
}

// PublishDeviceCommand 下发设备控制指令
func (s *MQTTService) PublishDeviceCommand(cmd DeviceCommand) error {
	return s.Publish(s.DeviceCommandTopic(cmd.DeviceID), cmd)
}

// PublishEvent 发布实时事件
func (s *MQTTService) PublishEvent(evt models.RealtimeEvent) error {
	return s.Publish(s.EventTopic(evt.Type), evt)
}
