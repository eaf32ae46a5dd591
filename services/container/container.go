package container

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/internal/metrics"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/services"
)

// Option 自定义容器中的基础服务，主要用于测试替换 Redis/MQTT
type Option func(*ServiceContainer)

// WithRedisService 使用指定的 Redis 服务
func WithRedisService(redisService services.InterfaceRedisService) Option {
	return func(c *ServiceContainer) { c.redisService = redisService }
}

// WithMQTTService 使用指定的 MQTT 服务
func WithMQTTService(mqttService services.InterfaceMQTTService) Option {
	return func(c *ServiceContainer) { c.mqttService = mqttService }
}

// WithMetrics 使用指定的指标集合
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *ServiceContainer) { c.metrics = m }
}

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	redisService   services.InterfaceRedisService
	mqttService    services.InterfaceMQTTService
	jwtService     services.InterfaceJWTService
	captchaService services.InterfaceCaptchaService
	metrics        *metrics.Metrics
	hub            services.InterfaceRealtimeHub

	// 业务服务
	userService         services.InterfaceUserService
	deviceService       services.InterfaceDeviceService
	streamService       services.InterfaceStreamService
	recognitionService  services.InterfaceRecognitionService
	detectionService    services.InterfaceDetectionService
	alertService        services.InterfaceAlertService
	notificationService services.InterfaceNotificationService
	inspectionService   services.InterfaceInspectionService
	areaService         services.InterfaceAreaService
	analysisService     services.InterfaceAnalysisService
	settingsService     services.InterfaceSettingsService
	dashboardService    services.InterfaceDashboardService
	exportService       services.InterfaceExportService
	systemLogService    services.InterfaceSystemLogService
	simulatorService    services.InterfaceSimulatorService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, opts ...Option) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	for _, opt := range opts {
		opt(container)
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	if c.redisService == nil {
		c.redisService = services.NewRedisService(c.config)
	}
	if c.redisService.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.redisService.Ping(ctx); err != nil {
			logger.Warning("Redis连接测试失败: %v，验证码和实时数据缓存可能不可用", err)
		}
		cancel()
	}

	if c.mqttService == nil {
		c.mqttService = services.NewMQTTService(c.config)
	}
	if c.mqttService.Enabled() && !c.mqttService.IsConnected() {
		if err := c.mqttService.Connect(); err != nil {
			logger.Error("MQTT服务连接失败: %v", err)
		}
	}

	if c.metrics == nil {
		c.metrics = metrics.New()
	}
	c.hub = services.NewRealtimeHub()
	c.jwtService = services.NewJWTService(c.config)
	c.captchaService = services.NewCaptchaService(c.config, c.redisService)

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config, c.jwtService, c.captchaService)
	c.deviceService = services.NewDeviceService(c.db, c.config, c.mqttService)
	c.streamService = services.NewStreamService(c.db, c.config)
	c.recognitionService = services.NewRecognitionService(c.db, c.config)
	c.detectionService = services.NewDetectionService(c.db, c.config)
	c.alertService = services.NewAlertService(c.db, c.config, c.userService)
	c.settingsService = services.NewSettingsService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.alertService, c.userService, c.settingsService)
	c.notificationService.OnResult(func(channel models.NotifyChannel, status models.NotifyStatus) {
		c.metrics.Notifications.WithLabelValues(string(channel), string(status)).Inc()
	})
	c.inspectionService = services.NewInspectionService(c.db, c.config)
	c.areaService = services.NewAreaService(c.db, c.config)
	c.analysisService = services.NewAnalysisService(c.db, c.config, c.areaService)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.deviceService, c.alertService)
	c.exportService = services.NewExportService(c.db, c.config, c.alertService, c.detectionService, c.analysisService)
	c.systemLogService = services.NewSystemLogService(c.db, c.config)

	// 实时模拟
	c.simulatorService = services.NewSimulatorService(c.db, c.config, services.SimulatorDeps{
		Hub:        c.hub,
		Detections: c.detectionService,
		Alerts:     c.alertService,
		Devices:    c.deviceService,
		Settings:   c.settingsService,
		MQTT:       c.mqttService,
		Redis:      c.redisService,
		Metrics:    c.metrics,
	})
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "jwt":
		return c.jwtService
	case "captcha":
		return c.captchaService
	case "metrics":
		return c.metrics
	case "hub":
		return c.hub
	case "user":
		return c.userService
	case "device":
		return c.deviceService
	case "stream":
		return c.streamService
	case "recognition":
		return c.recognitionService
	case "detection":
		return c.detectionService
	case "alert":
		return c.alertService
	case "notification":
		return c.notificationService
	case "inspection":
		return c.inspectionService
	case "area":
		return c.areaService
	case "analysis":
		return c.analysisService
	case "settings":
		return c.settingsService
	case "dashboard":
		return c.dashboardService
	case "export":
		return c.exportService
	case "system_log":
		return c.systemLogService
	case "simulator":
		return c.simulatorService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// Metrics 获取指标集合
func (c *ServiceContainer) Metrics() *metrics.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}

// Close 停止实时模拟并释放外部连接
func (c *ServiceContainer) Close() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.simulatorService.Stop()
	c.mqttService.Disconnect()
	if err := c.redisService.Close(); err != nil {
		logger.Warning("关闭Redis连接失败: %v", err)
	}
}
