package services

import (
	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
)

// SystemLogFilter 操作日志过滤条件
type SystemLogFilter struct {
	UserID string `form:"user_id"`
	Action string `form:"action"`
	Search string `form:"search"`
	models.PaginationQuery
}

// InterfaceSystemLogService 定义操作日志服务接口
type InterfaceSystemLogService interface {
	Record(entry models.SystemLog)
	GetLogs(filter SystemLogFilter) ([]models.SystemLog, int64, error)
}

// SystemLogService 操作日志服务
type SystemLogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSystemLogService 创建操作日志服务
func NewSystemLogService(db *gorm.DB, cfg *config.Config) InterfaceSystemLogService {
	return &SystemLogService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Record 记录一条操作日志，写入失败只记录错误不影响业务
func (s *SystemLogService) Record(entry models.SystemLog) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = models.Now()
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		logger.Error("写入操作日志失败: action=%s target=%s err=%v", entry.Action, entry.Target, err)
	}
}

// 2 GetLogs 操作日志列表，最新的在前
func (s *SystemLogService) GetLogs(filter SystemLogFilter) ([]models.SystemLog, int64, error) {
	query := s.DB.Model(&models.SystemLog{}).Scopes(
		whereEq("user_id", filter.UserID),
		whereEq("action", filter.Action),
		whereSearch(filter.Search, "target", "detail"),
	)

	var logs []models.SystemLog
	total, err := findPage(query, filter.PaginationQuery, "timestamp DESC, id DESC", &logs)
	return logs, total, err
}
