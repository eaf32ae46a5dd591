package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"straw-monitor-service/config"
	"straw-monitor-service/controllers"
	_ "straw-monitor-service/docs"
	"straw-monitor-service/internal/app/middleware"
	"straw-monitor-service/models"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// 登录限流：每个IP每秒0.2次，突发5次
const (
	loginRate  = 0.2
	loginBurst = 5
)

// 受告警数量影响的缓存路由
var alertCachedPrefixes = []string{"/api/areas", "/api/analysis"}

// SetupRouter 初始化并返回配置好的路由，ctx 结束时停止限流器和缓存的清理任务
func SetupRouter(ctx context.Context, cfg *config.Config, serviceContainer *container.ServiceContainer) *gin.Engine {
	// 初始化 Gin
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.GinMode != gin.TestMode {
		r.Use(gin.Logger())
	}

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Cache")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码，导出和实时推送接口会覆盖
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	r.Use(middleware.Metrics(serviceContainer.Metrics()))

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(serviceContainer.Metrics().Handler()))

	loginLimiter := middleware.IPRateLimiter(loginRate, loginBurst)
	cache := middleware.NewResponseCache(middleware.DefaultCacheConfig)
	go loginLimiter.Run(ctx, time.Hour)
	go cache.Run(ctx, time.Minute)

	// 模拟器生成的告警会改变区域告警数和分析趋势
	simulator := serviceContainer.GetService("simulator").(services.InterfaceSimulatorService)
	simulator.OnAlert(func(models.Alert) {
		for _, prefix := range alertCachedPrefixes {
			cache.PurgeByPrefix(prefix)
		}
	})

	auth := middleware.NewAuthMiddleware(serviceContainer.GetService("jwt").(services.InterfaceJWTService))

	// 注册路由
	registerRoutes(r, serviceContainer, auth, loginLimiter, cache)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	auth *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
	cache *middleware.ResponseCache,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container, loginLimiter, cache)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container, auth, cache)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	loginLimiter *middleware.RateLimiter,
	cache *middleware.ResponseCache,
) {
	health := controllers.NewHealthCheckController(container, cache)
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Health)

	// 认证路由
	api.GET("/auth/captcha", controllers.HandleAuthFunc(container, "getCaptcha"))
	api.POST("/auth/login", loginLimiter.Middleware(), controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	auth *middleware.AuthMiddleware,
	cache *middleware.ResponseCache,
) {
	// 添加认证中间件
	authed := api.Group("/")
	authed.Use(auth.Authentication(), cache.InvalidateOnWrite())

	write := middleware.RequireWrite()
	admin := middleware.RequireAdmin()
	cached := cache.Middleware()

	authed.GET("/auth/profile", controllers.HandleAuthFunc(container, "getProfile"))

	// 仪表盘
	authed.GET("/dashboard/overview", controllers.HandleDashboardFunc(container, "getOverview"))
	authed.GET("/dashboard/devices", controllers.HandleDashboardFunc(container, "getDevices"))

	// 设备路由
	devices := authed.Group("/devices")
	devices.GET("", controllers.HandleDeviceFunc(container, "getDevices"))
	devices.GET("/summary", controllers.HandleDeviceFunc(container, "getSummary"))
	devices.GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
	devices.POST("", write, controllers.HandleDeviceFunc(container, "createDevice"))
	devices.PUT("/:id", write, controllers.HandleDeviceFunc(container, "updateDevice"))
	devices.DELETE("/:id", write, controllers.HandleDeviceFunc(container, "deleteDevice"))
	devices.POST("/:id/start", write, controllers.HandleDeviceFunc(container, "startDevice"))
	devices.POST("/:id/stop", write, controllers.HandleDeviceFunc(container, "stopDevice"))
	devices.POST("/:id/restart", write, controllers.HandleDeviceFunc(container, "restartDevice"))
	devices.POST("/:id/maintenance", write, controllers.HandleDeviceFunc(container, "maintainDevice"))
	devices.POST("/:id/control", write, controllers.HandleDeviceFunc(container, "controlDevice"))
	devices.POST("/batch", write, controllers.HandleDeviceFunc(container, "batchDevices"))

	// 视频流路由
	streams := authed.Group("/streams")
	streams.GET("", controllers.HandleStreamFunc(container, "getStreams"))
	streams.GET("/stats", controllers.HandleStreamFunc(container, "getStats"))
	streams.GET("/:id", controllers.HandleStreamFunc(container, "getStream"))

	// 智能识别路由
	recognitions := authed.Group("/recognitions")
	recognitions.GET("", controllers.HandleRecognitionFunc(container, "getResults"))
	recognitions.GET("/stats", controllers.HandleRecognitionFunc(container, "getStats"))
	recognitions.GET("/:id", controllers.HandleRecognitionFunc(container, "getResult"))

	// 烟雾监测路由
	smoke := authed.Group("/smoke")
	smoke.GET("/detections", controllers.HandleSmokeFunc(container, "getDetections"))
	smoke.GET("/detections/:id", controllers.HandleSmokeFunc(container, "getDetection"))
	smoke.GET("/realtime", controllers.HandleSmokeFunc(container, "getRealtime"))
	smoke.GET("/stats", controllers.HandleSmokeFunc(container, "getStats"))
	smoke.GET("/alerts", controllers.HandleSmokeFunc(container, "getAlerts"))
	smoke.GET("/settings", controllers.HandleSmokeFunc(container, "getSettings"))
	smoke.PUT("/settings", write, controllers.HandleSmokeFunc(container, "updateSettings"))
	smoke.GET("/export", controllers.HandleSmokeFunc(container, "export"))

	// 火焰监测路由
	flame := authed.Group("/flame")
	flame.GET("/detections", controllers.HandleFlameFunc(container, "getDetections"))
	flame.GET("/detections/:id", controllers.HandleFlameFunc(container, "getDetection"))
	flame.GET("/realtime", controllers.HandleFlameFunc(container, "getRealtime"))
	flame.GET("/stats", controllers.HandleFlameFunc(container, "getStats"))
	flame.GET("/alerts", controllers.HandleFlameFunc(container, "getAlerts"))
	flame.GET("/settings", controllers.HandleFlameFunc(container, "getSettings"))
	flame.PUT("/settings", write, controllers.HandleFlameFunc(container, "updateSettings"))
	flame.GET("/export", controllers.HandleFlameFunc(container, "export"))

	// 告警路由
	alerts := authed.Group("/alerts")
	alerts.GET("", controllers.HandleAlertFunc(container, "getAlerts"))
	alerts.GET("/summary", controllers.HandleAlertFunc(container, "getSummary"))
	alerts.GET("/assignees", controllers.HandleAlertFunc(container, "getAssignees"))
	alerts.GET("/sms", controllers.HandleAlertFunc(container, "getSMSAlerts"))
	alerts.GET("/wechat", controllers.HandleAlertFunc(container, "getWeChatAlerts"))
	alerts.GET("/export", controllers.HandleAlertFunc(container, "export"))
	alerts.GET("/:id", controllers.HandleAlertFunc(container, "getAlert"))
	alerts.POST("/:id/process", write, controllers.HandleAlertFunc(container, "processAlert"))
	alerts.POST("/:id/dismiss", write, controllers.HandleAlertFunc(container, "dismissAlert"))
	alerts.POST("/:id/resolve", write, controllers.HandleAlertFunc(container, "resolveAlert"))
	alerts.POST("/:id/assign", write, controllers.HandleAlertFunc(container, "assignAlert"))
	alerts.POST("/:id/notify", write, controllers.HandleAlertFunc(container, "notifyAlert"))
	alerts.DELETE("/:id", write, controllers.HandleAlertFunc(container, "deleteAlert"))
	alerts.POST("/batch", write, controllers.HandleAlertFunc(container, "batchAlerts"))

	// 巡检路由
	inspections := authed.Group("/inspections")
	inspections.GET("", controllers.HandleInspectionFunc(container, "getInspections"))
	inspections.GET("/:id", controllers.HandleInspectionFunc(container, "getInspection"))
	inspections.POST("", write, controllers.HandleInspectionFunc(container, "createInspection"))
	inspections.PUT("/:id", write, controllers.HandleInspectionFunc(container, "updateInspection"))
	inspections.DELETE("/:id", write, controllers.HandleInspectionFunc(container, "deleteInspection"))

	// 区域与数据分析，结果短时缓存
	authed.GET("/areas", cached, controllers.HandleAreaFunc(container, "getAreas"))
	authed.GET("/areas/:id", cached, controllers.HandleAreaFunc(container, "getArea"))
	authed.GET("/analysis/overview", cached, controllers.HandleAnalysisFunc(container, "getOverview"))
	authed.GET("/analysis/export", controllers.HandleAnalysisFunc(container, "export"))

	// 实时数据
	authed.GET("/realtime/stream", controllers.HandleRealtimeFunc(container, "stream"))
	authed.GET("/realtime/feeds", controllers.HandleRealtimeFunc(container, "getFeeds"))
	authed.POST("/realtime/feeds/:name/start", admin, controllers.HandleRealtimeFunc(container, "startFeed"))
	authed.POST("/realtime/feeds/:name/stop", admin, controllers.HandleRealtimeFunc(container, "stopFeed"))

	// 管理员路由
	authed.GET("/users", admin, controllers.HandleUserFunc(container, "getUsers"))
	authed.GET("/users/:id", admin, controllers.HandleUserFunc(container, "getUser"))
	authed.GET("/settings", admin, controllers.HandleSettingsFunc(container, "getSettings"))
	authed.PUT("/settings", admin, controllers.HandleSettingsFunc(container, "updateSettings"))
	authed.GET("/system-logs", admin, controllers.HandleSystemLogFunc(container, "getLogs"))
}
