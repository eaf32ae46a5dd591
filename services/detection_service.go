package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// SmokeFilter 烟雾检测过滤条件
type SmokeFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Level  string `form:"level" binding:"omitempty,oneof=all high medium low"`
	models.PaginationQuery
}

// FlameFilter 火焰检测过滤条件
type FlameFilter struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	DeviceID  string `form:"device_id"`
	Intensity string `form:"intensity" binding:"omitempty,oneof=all high medium low"`
	models.PaginationQuery
}

// InterfaceDetectionService 定义烟雾/火焰检测记录服务接口
type InterfaceDetectionService interface {
	GetSmokeDetections(filter SmokeFilter) ([]models.SmokeDetection, int64, error)
	GetSmokeDetectionByID(id string) (*models.SmokeDetection, error)
	GetSmokeStats() (*models.SmokeStats, error)
	RecordSmoke(detection *models.SmokeDetection) error

	GetFlameDetections(filter FlameFilter) ([]models.FlameDetection, int64, error)
	GetFlameDetectionByID(id string) (*models.FlameDetection, error)
	GetFlameStats() (*models.FlameStats, error)
	RecordFlame(detection *models.FlameDetection) error
}

// DetectionService 烟雾与火焰检测记录服务
type DetectionService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDetectionService 创建检测记录服务
func NewDetectionService(db *gorm.DB, cfg *config.Config) InterfaceDetectionService {
	return &DetectionService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetSmokeDetections 烟雾检测列表，浓度分档: high >= 70, medium 40-70, low < 40
func (s *DetectionService) GetSmokeDetections(filter SmokeFilter) ([]models.SmokeDetection, int64, error) {
	query := s.DB.Model(&models.SmokeDetection{}).Scopes(
		whereSearch(filter.Search, "device_name", "wind_direction"),
		whereEq("status", filter.Status),
		whereBand("smoke_level", filter.Level, 40, 70),
	)

	var detections []models.SmokeDetection
	total, err := findPage(query, filter.PaginationQuery, "timestamp DESC, id ASC", &detections)
	return detections, total, err
}

// 2 GetSmokeDetectionByID 获取单条烟雾检测记录
func (s *DetectionService) GetSmokeDetectionByID(id string) (*models.SmokeDetection, error) {
	var detection models.SmokeDetection
	if err := s.DB.First(&detection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetectionNotFound
		}
		return nil, err
	}
	return &detection, nil
}

// 3 GetSmokeStats 烟雾检测统计
func (s *DetectionService) GetSmokeStats() (*models.SmokeStats, error) {
	var rows []struct {
		Status     models.SmokeStatus
		SmokeLevel int
	}
	if err := s.DB.Model(&models.SmokeDetection{}).Select("status, smoke_level").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &models.SmokeStats{ByStatus: map[models.SmokeStatus]int64{}}
	var sum int
	for _, row := range rows {
		stats.Total++
		stats.ByStatus[row.Status]++
		sum += row.SmokeLevel
		if row.SmokeLevel > stats.MaxLevel {
			stats.MaxLevel = row.SmokeLevel
		}
	}
	if stats.Total > 0 {
		stats.AverageLevel = math.Round(float64(sum)*10/float64(stats.Total)) / 10
	}
	return stats, nil
}

// 4 RecordSmoke 写入模拟烟雾检测，只保留最近 SimHistoryLimit 条模拟记录
func (s *DetectionService) RecordSmoke(detection *models.SmokeDetection) error {
	detection.Simulated = true
	if err := s.DB.Create(detection).Error; err != nil {
		return err
	}
	return pruneSimulated(s.DB, &models.SmokeDetection{}, s.Config.SimHistoryLimit)
}

// 5 GetFlameDetections 火焰检测列表，强度分档: high >= 80, medium 50-80, low < 50
func (s *DetectionService) GetFlameDetections(filter FlameFilter) ([]models.FlameDetection, int64, error) {
	query := s.DB.Model(&models.FlameDetection{}).Scopes(
		whereSearch(filter.Search, "device_name"),
		whereEq("status", filter.Status),
		whereEq("device_id", filter.DeviceID),
		whereBand("flame_intensity", filter.Intensity, 50, 80),
	)

	var detections []models.FlameDetection
	total, err := findPage(query, filter.PaginationQuery, "timestamp DESC, id ASC", &detections)
	return detections, total, err
}

// 6 GetFlameDetectionByID 获取单条火焰检测记录
func (s *DetectionService) GetFlameDetectionByID(id string) (*models.FlameDetection, error) {
	var detection models.FlameDetection
	if err := s.DB.First(&detection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetectionNotFound
		}
		return nil, err
	}
	return &detection, nil
}

// 7 GetFlameStats 火焰检测统计，强度分布: low < 40, medium 40-80, high >= 80
func (s *DetectionService) GetFlameStats() (*models.FlameStats, error) {
	var rows []struct {
		Status         models.FlameStatus
		FlameIntensity int
	}
	if err := s.DB.Model(&models.FlameDetection{}).Select("status, flame_intensity").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &models.FlameStats{ByStatus: map[models.FlameStatus]int64{}}
	for _, row := range rows {
		stats.Total++
		stats.ByStatus[row.Status]++
		switch {
		case row.FlameIntensity >= 80:
			stats.HighIntensity++
			stats.IntensityDistribution.High++
		case row.FlameIntensity >= 40:
			stats.IntensityDistribution.Medium++
		default:
			stats.IntensityDistribution.Low++
		}
	}
	return stats, nil
}

// 8 RecordFlame 写入模拟火焰检测
func (s *DetectionService) RecordFlame(detection *models.FlameDetection) error {
	detection.Simulated = true
	if err := s.DB.Create(detection).Error; err != nil {
		return err
	}
	return pruneSimulated(s.DB, &models.FlameDetection{}, s.Config.SimHistoryLimit)
}

// pruneSimulated 删除超出保留条数的模拟记录，初始数据不受影响
func pruneSimulated(db *gorm.DB, model interface{}, keep int) error {
	if keep <= 0 {
		return nil
	}

	var stale []string
	err := db.Model(model).
		Where("simulated = ?", true).
		Order("timestamp DESC, id DESC").
		Offset(keep).Limit(1000).
		Pluck("id", &stale).Error
	if err != nil || len(stale) == 0 {
		return err
	}
	return db.Where("id IN ?", stale).Delete(model).Error
}
