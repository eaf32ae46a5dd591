// @title           秸秆禁烧视频监控平台 API
// @version         1.0
// @description     邹城市秸秆禁烧视频监控平台后端：设备、告警、烟雾与火焰监测、巡检、数据分析和实时推送

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"straw-monitor-service/config"
	"straw-monitor-service/internal/infrastructure/database"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/routes"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 加载.env文件
	envErr := godotenv.Load()

	// 获取配置
	cfg := config.GetConfig()

	// 初始化日志配置
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.LogDir); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
		logger.Warning("无法加载.env文件: %v", envErr)
	} else {
		logger.Info("成功加载.env文件")
	}

	if err := run(cfg); err != nil {
		logger.Error("服务异常退出: %v", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	// 创建优化的数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return fmt.Errorf("无法创建数据库连接池: %w", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	// 根据配置执行迁移，drop 模式会重建所有表
	if err := database.Migrate(db, cfg.DBMigrationMode); err != nil {
		return err
	}
	if err := database.Seed(db, cfg); err != nil {
		return fmt.Errorf("写入初始数据失败: %w", err)
	}
	// 确保系统中有管理员账户
	if err := database.EnsureAdminExists(db, cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serviceContainer := container.NewServiceContainer(db, cfg)
	defer serviceContainer.Close()

	if cfg.SimEnabled {
		simulator := serviceContainer.GetService("simulator").(services.InterfaceSimulatorService)
		simulator.Start(ctx)
	} else {
		logger.Info("实时数据模拟未启用")
	}

	// 初始化路由
	r := routes.SetupRouter(ctx, cfg, serviceContainer)

	printSystemInfo(ctx, pool)

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// 退出信号会结束实时推送等长连接
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		// 启动服务器 - 注意监听所有接口(0.0.0.0)而不是只监听localhost
		logger.Info("服务器启动在: http://%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("启动服务器失败: %w", err)
		}
	case <-ctx.Done():
		logger.Info("收到退出信号，正在关闭服务器")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务器失败: %w", err)
	}
	logger.Info("服务器已关闭")
	return nil
}

// printSystemInfo 打印系统信息
func printSystemInfo(ctx context.Context, pool *database.ConnectionPool) {
	// 打印数据库连接池信息
	if status := pool.Status(ctx); status.Healthy {
		logger.Info("数据库连接池状态: %+v", status)
	} else {
		logger.Warning("数据库连接检查失败: %s", status.Error)
	}

	// 打印系统资源信息
	logger.Info("系统CPU核心数: %d", runtime.NumCPU())
	logger.Info("当前Go协程数: %d", runtime.NumGoroutine())

	// 打印内存信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logger.Info("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
