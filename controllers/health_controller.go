package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/app/middleware"
	"straw-monitor-service/internal/infrastructure/database"
	"straw-monitor-service/models"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Container *container.ServiceContainer
	Cache     *middleware.ResponseCache
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(container *container.ServiceContainer, cache *middleware.ResponseCache) *HealthCheckController {
	return &HealthCheckController{
		Container: container,
		Cache:     cache,
	}
}

// ComponentStatus 单个依赖的状态
type ComponentStatus struct {
	Enabled bool   `json:"enabled"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// DatabaseStatus 数据库连接池状态
type DatabaseStatus struct {
	Enabled bool `json:"enabled"`
	database.PoolStatus
}

// HealthReport 健康检查结果
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Database    DatabaseStatus         `json:"database"`
	Redis       ComponentStatus        `json:"redis"`
	MQTT        ComponentStatus        `json:"mqtt"`
	Feeds       []services.FeedState   `json:"feeds"`
	Subscribers int                    `json:"subscribers"`
	Published   int64                  `json:"published_events"`
	Cache       *middleware.CacheStats `json:"cache,omitempty"`
}

// Ping 健康检查端点
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Health 依赖状态检查，数据库不可用时返回 503
// @Summary      健康检查
// @Description  数据库连接池、Redis、MQTT、实时数据源和响应缓存状态
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthReport
// @Failure      503  {object}  HealthReport
// @Router       /health [get]
func (h *HealthCheckController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	report := HealthReport{
		Status:    "healthy",
		Timestamp: models.Now(),
		Database:  h.database(ctx),
	}

	redisService := h.Container.GetService("redis").(services.InterfaceRedisService)
	report.Redis.Enabled = redisService.Enabled()
	if report.Redis.Enabled {
		if err := redisService.Ping(ctx); err != nil {
			report.Redis.Error = err.Error()
		} else {
			report.Redis.Healthy = true
		}
	}

	mqttService := h.Container.GetService("mqtt").(services.InterfaceMQTTService)
	report.MQTT.Enabled = mqttService.Enabled()
	report.MQTT.Healthy = mqttService.IsConnected()

	simulator := h.Container.GetService("simulator").(services.InterfaceSimulatorService)
	report.Feeds = simulator.FeedStates()

	hub := h.Container.GetService("hub").(services.InterfaceRealtimeHub)
	report.Subscribers = hub.SubscriberCount()
	report.Published = hub.Published()

	if h.Cache != nil {
		stats := h.Cache.Stats()
		report.Cache = &stats
	}

	status := http.StatusOK
	switch {
	case !report.Database.Healthy:
		report.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	case report.Redis.Enabled && !report.Redis.Healthy, report.MQTT.Enabled && !report.MQTT.Healthy:
		report.Status = "degraded"
	}
	c.JSON(status, report)
}

func (h *HealthCheckController) database(ctx context.Context) DatabaseStatus {
	return DatabaseStatus{Enabled: true, PoolStatus: database.Inspect(ctx, h.Container.GetDB())}
}
