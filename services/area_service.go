package services

import (
	"errors"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// InterfaceAreaService 定义监控区域服务接口
type InterfaceAreaService interface {
	GetAreas() ([]models.AreaOverview, error)
	GetAreaByID(id string) (*models.AreaOverview, error)
	GetAreaByName(name string) (*models.Area, error)
}

// AreaService 监控区域服务
type AreaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAreaService 创建监控区域服务
func NewAreaService(db *gorm.DB, cfg *config.Config) InterfaceAreaService {
	return &AreaService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAreas 区域列表，附带实时设备数和告警数
func (s *AreaService) GetAreas() ([]models.AreaOverview, error) {
	var areas []models.Area
	if err := s.DB.Order("id ASC").Find(&areas).Error; err != nil {
		return nil, err
	}

	overviews := make([]models.AreaOverview, 0, len(areas))
	for _, area := range areas {
		overview, err := s.enrich(area)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, *overview)
	}
	return overviews, nil
}

// 2 GetAreaByID 区域详情
func (s *AreaService) GetAreaByID(id string) (*models.AreaOverview, error) {
	var area models.Area
	if err := s.DB.First(&area, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	return s.enrich(area)
}

// 3 GetAreaByName 按名称查找区域
func (s *AreaService) GetAreaByName(name string) (*models.Area, error) {
	var area models.Area
	if err := s.DB.First(&area, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	return &area, nil
}

// enrich 按区域所属街道/乡镇统计设备和告警
func (s *AreaService) enrich(area models.Area) (*models.AreaOverview, error) {
	overview := &models.AreaOverview{Area: area}
	town := area.Town()
	if err := s.DB.Model(&models.MonitorDevice{}).Scopes(inTown(town)).Count(&overview.LiveDeviceCount).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Alert{}).Scopes(inTown(town)).Count(&overview.AlertCount).Error; err != nil {
		return nil, err
	}
	return overview, nil
}

// inTown location 包含街道/乡镇名称，town 为空时不过滤
func inTown(town string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if town == "" {
			return db
		}
		return db.Where("location LIKE ? ESCAPE '!'", containsPattern(town))
	}
}
