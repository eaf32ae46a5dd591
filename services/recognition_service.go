package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// RecognitionFilter 识别结果过滤条件
type RecognitionFilter struct {
	Search     string `form:"search"`
	Type       string `form:"type"`
	DeviceID   string `form:"device_id"`
	Confidence string `form:"confidence" binding:"omitempty,oneof=all high medium low"`
	models.PaginationQuery
}

// InterfaceRecognitionService 定义图像识别服务接口
type InterfaceRecognitionService interface {
	GetResults(filter RecognitionFilter) ([]models.RecognitionResult, int64, error)
	GetResultByID(id string) (*models.RecognitionResult, error)
	GetStats() (*models.RecognitionStats, error)
}

// RecognitionService 图像识别结果服务
type RecognitionService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRecognitionService 创建图像识别服务
func NewRecognitionService(db *gorm.DB, cfg *config.Config) InterfaceRecognitionService {
	return &RecognitionService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetResults 获取识别结果，置信度分档: high >= 80, medium 60-80, low < 60
func (s *RecognitionService) GetResults(filter RecognitionFilter) ([]models.RecognitionResult, int64, error) {
	query := s.DB.Model(&models.RecognitionResult{}).Scopes(
		whereSearch(filter.Search, "device_name"),
		whereEq("type", filter.Type),
		whereEq("device_id", filter.DeviceID),
		whereBand("confidence", filter.Confidence, 60, 80),
	)

	var results []models.RecognitionResult
	total, err := findPage(query, filter.PaginationQuery, "timestamp DESC, id ASC", &results)
	return results, total, err
}

// 2 GetResultByID 获取单条识别结果
func (s *RecognitionService) GetResultByID(id string) (*models.RecognitionResult, error) {
	var result models.RecognitionResult
	if err := s.DB.First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecognitionNotFound
		}
		return nil, err
	}
	return &result, nil
}

// 3 GetStats 识别统计
func (s *RecognitionService) GetStats() (*models.RecognitionStats, error) {
	var rows []struct {
		Type       models.RecognitionType
		Confidence int
	}
	if err := s.DB.Model(&models.RecognitionResult{}).Select("type, confidence").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &models.RecognitionStats{ByType: map[models.RecognitionType]int64{}}
	var sum int
	for _, row := range rows {
		stats.Total++
		stats.ByType[row.Type]++
		sum += row.Confidence
		if row.Confidence >= 80 {
			stats.HighConfidence++
		}
	}
	stats.Burning = stats.ByType[models.RecognitionBurning]
	stats.StrawPile = stats.ByType[models.RecognitionStrawPile]
	if stats.Total > 0 {
		stats.AverageConfidence = math.Round(float64(sum)*10/float64(stats.Total)) / 10
	}
	return stats, nil
}
