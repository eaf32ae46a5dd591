package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/idgen"
)

const dateLayout = "2006-01-02"

// InspectionFilter 巡检记录过滤条件
type InspectionFilter struct {
	Search    string `form:"search"`
	Area      string `form:"area"`
	Status    string `form:"status"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	models.PaginationQuery
}

// CreateInspectionRequest 新增巡检记录请求
type CreateInspectionRequest struct {
	Inspector     string `json:"inspector" binding:"required,max=50" example:"孙德胜"`
	Area          string `json:"area" binding:"required,max=100" example:"北湖街道农田区域"`
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02" example:"2025-07-25"`
	Description   string `json:"description" binding:"required,max=500" example:"例行巡检"`
}

// UpdateInspectionRequest 更新巡检记录请求，只更新传入的字段
type UpdateInspectionRequest struct {
	Inspector       *string                  `json:"inspector" binding:"omitempty,max=50"`
	Area            *string                  `json:"area" binding:"omitempty,max=100"`
	ScheduledDate   *string                  `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	ActualDate      *string                  `json:"actual_date" binding:"omitempty,datetime=2006-01-02"`
	Status          *models.InspectionStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed overdue"`
	Description     *string                  `json:"description" binding:"omitempty,max=500"`
	Findings        *string                  `json:"findings" binding:"omitempty,max=500"`
	Issues          *string                  `json:"issues" binding:"omitempty,max=500"`
	Photos          []string                 `json:"photos"`
	Recommendations *string                  `json:"recommendations" binding:"omitempty,max=500"`
}

// InterfaceInspectionService 定义巡检管理服务接口
type InterfaceInspectionService interface {
	GetInspections(filter InspectionFilter) ([]models.InspectionRecord, int64, error)
	GetInspectionByID(id string) (*models.InspectionRecord, error)
	CreateInspection(req CreateInspectionRequest) (*models.InspectionRecord, error)
	UpdateInspection(id string, req UpdateInspectionRequest) (*models.InspectionRecord, error)
	DeleteInspection(id string) error
}

// InspectionService 巡检管理服务
type InspectionService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInspectionService 创建巡检管理服务
func NewInspectionService(db *gorm.DB, cfg *config.Config) InterfaceInspectionService {
	return &InspectionService{
		DB:     db,
		Config: cfg,
	}
}

// parseDate 按平台时区解析 YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, models.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式错误 %q: %w", value, err)
	}
	return t, nil
}

// 1 GetInspections 巡检记录列表，日期范围按整天包含两端
func (s *InspectionService) GetInspections(filter InspectionFilter) ([]models.InspectionRecord, int64, error) {
	query := s.DB.Model(&models.InspectionRecord{}).Scopes(
		whereSearch(filter.Search, "inspector", "description"),
		whereEq("area", filter.Area),
		whereEq("status", filter.Status),
	)
	if filter.StartDate != "" {
		start, err := parseDate(filter.StartDate)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("scheduled_date >= ?", start)
	}
	if filter.EndDate != "" {
		end, err := parseDate(filter.EndDate)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("scheduled_date < ?", end.AddDate(0, 0, 1))
	}

	var records []models.InspectionRecord
	total, err := findPage(query, filter.PaginationQuery, "scheduled_date DESC, id ASC", &records)
	return records, total, err
}

// 2 GetInspectionByID 获取巡检记录
func (s *InspectionService) GetInspectionByID(id string) (*models.InspectionRecord, error) {
	var record models.InspectionRecord
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, err
	}
	return &record, nil
}

// 3 CreateInspection 新增巡检计划，状态为待巡检
func (s *InspectionService) CreateInspection(req CreateInspectionRequest) (*models.InspectionRecord, error) {
	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	record := &models.InspectionRecord{
		ID:            idgen.NewID("inspection"),
		Inspector:     req.Inspector,
		Area:          req.Area,
		ScheduledDate: scheduled,
		Status:        models.InspectionPending,
		Description:   req.Description,
	}
	if err := s.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// 4 UpdateInspection 更新巡检记录
func (s *InspectionService) UpdateInspection(id string, req UpdateInspectionRequest) (*models.InspectionRecord, error) {
	record, err := s.GetInspectionByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	setString("inspector", req.Inspector)
	setString("area", req.Area)
	setString("description", req.Description)
	setString("findings", req.Findings)
	setString("issues", req.Issues)
	setString("recommendations", req.Recommendations)
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ScheduledDate != nil {
		t, err := parseDate(*req.ScheduledDate)
		if err != nil {
			return nil, err
		}
		updates["scheduled_date"] = t
	}
	if req.ActualDate != nil {
		t, err := parseDate(*req.ActualDate)
		if err != nil {
			return nil, err
		}
		updates["actual_date"] = t
	}

	if len(updates) > 0 {
		if err := s.DB.Model(record).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if req.Photos != nil {
		record.Photos = req.Photos
		if err := s.DB.Model(record).Select("photos").Updates(record).Error; err != nil {
			return nil, err
		}
	}
	return s.GetInspectionByID(id)
}

// 5 DeleteInspection 删除巡检记录
func (s *InspectionService) DeleteInspection(id string) error {
	result := s.DB.Delete(&models.InspectionRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInspectionNotFound
	}
	return nil
}
