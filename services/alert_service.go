package services

import (
	"errors"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/idgen"
)

var activeAlertStatuses = []models.AlertStatus{models.AlertStatusPending, models.AlertStatusProcessing}

// AlertFilter 告警过滤条件
type AlertFilter struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Level  string `form:"level"`
	Status string `form:"status"`
	models.PaginationQuery
}

// ResolveRequest 处理完成请求
type ResolveRequest struct {
	Resolution string `json:"resolution" binding:"max=500" example:"已组织人员扑灭"`
}

// AssignRequest 指派请求
type AssignRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required" example:"张明华"`
}

// 告警状态操作
const (
	AlertActionProcess = "process"
	AlertActionResolve = "resolve"
	AlertActionDismiss = "dismiss"
	AlertActionDelete  = "delete"
)

var alertActionStatus = map[string]models.AlertStatus{
	AlertActionProcess: models.AlertStatusProcessing,
	AlertActionResolve: models.AlertStatusResolved,
	AlertActionDismiss: models.AlertStatusDismissed,
}

// InterfaceAlertService 定义告警服务接口
type InterfaceAlertService interface {
	GetAlerts(filter AlertFilter) ([]models.Alert, int64, error)
	GetAlertByID(id string) (*models.Alert, error)
	GetSummary() (*models.AlertSummary, error)
	Process(id string) (*models.Alert, error)
	Dismiss(id string) (*models.Alert, error)
	Resolve(id string, req ResolveRequest) (*models.Alert, error)
	Assign(id string, req AssignRequest) (*models.Alert, error)
	DeleteAlert(id string) error
	Batch(req BatchRequest) (*models.BatchResult, error)
	CreateAlert(alert *models.Alert) error
	RecentAlerts(limit int) ([]models.Alert, error)
}

// AlertService 告警管理服务
type AlertService struct {
	DB     *gorm.DB
	Config *config.Config
	Users  InterfaceUserService
}

// NewAlertService 创建告警服务
func NewAlertService(db *gorm.DB, cfg *config.Config, userService InterfaceUserService) InterfaceAlertService {
	return &AlertService{
		DB:     db,
		Config: cfg,
		Users:  userService,
	}
}

// 1 GetAlerts 获取告警列表，最新的在前
func (s *AlertService) GetAlerts(filter AlertFilter) ([]models.Alert, int64, error) {
	query := s.DB.Model(&models.Alert{}).Scopes(
		whereSearch(filter.Search, "title", "description", "device_name"),
		whereEq("type", filter.Type),
		whereEq("level", filter.Level),
		whereEq("status", filter.Status),
	)

	var alerts []models.Alert
	total, err := findPage(query, filter.PaginationQuery, "timestamp DESC, id ASC", &alerts)
	return alerts, total, err
}

// 2 GetAlertByID 获取告警详情
func (s *AlertService) GetAlertByID(id string) (*models.Alert, error) {
	var alert models.Alert
	if err := s.DB.First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// 3 GetSummary 告警处理统计
func (s *AlertService) GetSummary() (*models.AlertSummary, error) {
	counts, err := countBy(s.DB.Model(&models.Alert{}), "status")
	if err != nil {
		return nil, err
	}

	summary := &models.AlertSummary{
		Pending:    counts[string(models.AlertStatusPending)],
		Processing: counts[string(models.AlertStatusProcessing)],
		Resolved:   counts[string(models.AlertStatusResolved)],
		Dismissed:  counts[string(models.AlertStatusDismissed)],
	}
	for _, n := range counts {
		summary.Total += n
	}
	summary.ResolveRate = percent(summary.Resolved, summary.Total)
	return summary, nil
}

// 4 Process 开始处理
func (s *AlertService) Process(id string) (*models.Alert, error) {
	return s.update(id, map[string]interface{}{"status": models.AlertStatusProcessing})
}

// 5 Dismiss 忽略告警（误报）
func (s *AlertService) Dismiss(id string) (*models.Alert, error) {
	return s.update(id, map[string]interface{}{"status": models.AlertStatusDismissed})
}

// 6 Resolve 处理完成
func (s *AlertService) Resolve(id string, req ResolveRequest) (*models.Alert, error) {
	updates := map[string]interface{}{
		"status":      models.AlertStatusResolved,
		"resolved_at": models.Now(),
	}
	if req.Resolution != "" {
		updates["resolution"] = req.Resolution
	}
	return s.update(id, updates)
}

// 7 Assign 指派处理人，告警进入处理中
func (s *AlertService) Assign(id string, req AssignRequest) (*models.Alert, error) {
	if _, err := s.GetAlertByID(id); err != nil {
		return nil, err
	}
	user, err := s.Users.ResolveAssignee(req.AssignedTo)
	if err != nil {
		return nil, err
	}
	return s.update(id, map[string]interface{}{
		"assigned_to": user.Name,
		"status":      models.AlertStatusProcessing,
	})
}

func (s *AlertService) update(id string, updates map[string]interface{}) (*models.Alert, error) {
	result := s.DB.Model(&models.Alert{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlertNotFound
	}
	return s.GetAlertByID(id)
}

// 8 DeleteAlert 删除告警
func (s *AlertService) DeleteAlert(id string) error {
	result := s.DB.Delete(&models.Alert{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// 9 Batch 批量处理/完成/忽略/删除
func (s *AlertService) Batch(req BatchRequest) (*models.BatchResult, error) {
	status, isStatus := alertActionStatus[req.Operation]
	if !isStatus && req.Operation != AlertActionDelete {
		return nil, ErrAlertOperation
	}

	var existing []string
	if err := s.DB.Model(&models.Alert{}).Where("id IN ?", req.IDs).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}

	result := &models.BatchResult{Missing: missingIDs(req.IDs, existing)}
	if len(existing) == 0 {
		return result, nil
	}

	var tx *gorm.DB
	switch req.Operation {
	case AlertActionDelete:
		tx = s.DB.Where("id IN ?", existing).Delete(&models.Alert{})
	case AlertActionResolve:
		tx = s.DB.Model(&models.Alert{}).Where("id IN ?", existing).Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": models.Now(),
		})
	default:
		tx = s.DB.Model(&models.Alert{}).Where("id IN ?", existing).Update("status", status)
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	result.Affected = int(tx.RowsAffected)
	return result, nil
}

// 10 CreateAlert 新建告警（实时监测自动告警），未设置的字段使用默认值
func (s *AlertService) CreateAlert(alert *models.Alert) error {
	if alert.ID == "" {
		alert.ID = idgen.NewID("alert")
	}
	if alert.Status == "" {
		alert.Status = models.AlertStatusPending
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = models.Now()
	}
	if alert.Coordinates.IsZero() {
		alert.Coordinates = models.DefaultCoordinates
	}
	return s.DB.Create(alert).Error
}

// 11 RecentAlerts 最近的告警
func (s *AlertService) RecentAlerts(limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.DB.Order("timestamp DESC, id ASC").Limit(limit).Find(&alerts).Error
	return alerts, err
}

// alertLevelFor 自动告警级别: 数值 >= 90 为 critical，其余为 high
func alertLevelFor(value int) models.AlertLevel {
	if value >= 90 {
		return models.AlertLevelCritical
	}
	return models.AlertLevelHigh
}

