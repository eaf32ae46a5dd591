package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"straw-monitor-service/config"
	"straw-monitor-service/pkg/logger"
)

// ConnectionPool 数据库连接池管理
type ConnectionPool struct {
	DB              *gorm.DB
	Driver          string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConnectionPool 根据配置创建数据库连接池，默认使用内存 SQLite
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.GetDSN())
	case "sqlite", "":
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.DBDriver)
	}
	return NewConnectionPoolWithDialector(dialector, cfg.DBDriver)
}

// NewConnectionPoolWithDialector 使用指定的 gorm 方言创建连接池
func NewConnectionPoolWithDialector(dialector gorm.Dialector, driver string) (*ConnectionPool, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pool := &ConnectionPool{
		DB:              db,
		Driver:          driver,
		MaxIdleConns:    10,               // 默认空闲连接数
		MaxOpenConns:    100,              // 默认最大连接数
		ConnMaxLifetime: 1 * time.Hour,    // 连接最大生命周期
		ConnMaxIdleTime: 30 * time.Minute, // 空闲连接最大生命周期
	}

	// 内存库只存在于连接之上，必须保持唯一且永不回收的连接
	if driver == "sqlite" || driver == "" {
		pool.MaxIdleConns = 1
		pool.MaxOpenConns = 1
		pool.ConnMaxLifetime = 0
		pool.ConnMaxIdleTime = 0
	}

	if err := pool.ConfigurePool(); err != nil {
		return nil, err
	}
	return pool, nil
}

// ConfigurePool 配置连接池参数
func (p *ConnectionPool) ConfigurePool() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	logger.Info("数据库连接池已配置: 驱动=%s, 最大空闲连接数=%d, 最大连接数=%d", p.Driver, p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// PoolStatus 数据库连通性和连接池统计
type PoolStatus struct {
	Driver          string `json:"driver"`
	Healthy         bool   `json:"healthy"`
	Error           string `json:"error,omitempty"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	MaxOpen         int    `json:"max_open"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
}

// Inspect ping 数据库并读取连接池统计，最多等待 2 秒
func Inspect(ctx context.Context, db *gorm.DB) PoolStatus {
	status := PoolStatus{Driver: db.Dialector.Name()}

	sqlDB, err := db.DB()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Error = err.Error()
	} else {
		status.Healthy = true
	}

	stats := sqlDB.Stats()
	status.OpenConnections = stats.OpenConnections
	status.InUse = stats.InUse
	status.Idle = stats.Idle
	status.MaxOpen = stats.MaxOpenConnections
	status.WaitCount = stats.WaitCount
	status.WaitDuration = stats.WaitDuration.String()
	return status
}

// Status 当前连接池状态
func (p *ConnectionPool) Status(ctx context.Context) PoolStatus {
	return Inspect(ctx, p.DB)
}

// Close 关闭连接池
func (p *ConnectionPool) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB 获取GORM数据库实例
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}
