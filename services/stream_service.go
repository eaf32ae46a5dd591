package services

import (
	"errors"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// StreamFilter 视频流过滤条件
type StreamFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
	models.PaginationQuery
}

// StreamDetail 视频流及其关联设备
type StreamDetail struct {
	models.VideoStream
	Device *models.MonitorDevice `json:"device,omitempty"`
}

// InterfaceStreamService 定义视频流服务接口
type InterfaceStreamService interface {
	GetStreams(filter StreamFilter) ([]models.VideoStream, int64, error)
	GetStreamByID(id string) (*StreamDetail, error)
	GetStats() (*models.StreamStats, error)
}

// StreamService 视频监控服务
type StreamService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStreamService 创建视频流服务
func NewStreamService(db *gorm.DB, cfg *config.Config) InterfaceStreamService {
	return &StreamService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetStreams 获取视频流列表
func (s *StreamService) GetStreams(filter StreamFilter) ([]models.VideoStream, int64, error) {
	query := s.DB.Model(&models.VideoStream{}).Scopes(
		whereSearch(filter.Search, "device_name"),
		whereEq("status", filter.Status),
	)

	var streams []models.VideoStream
	total, err := findPage(query, filter.PaginationQuery, "id ASC", &streams)
	return streams, total, err
}

// 2 GetStreamByID 获取视频流详情，关联设备不存在时 device 为空
func (s *StreamService) GetStreamByID(id string) (*StreamDetail, error) {
	var stream models.VideoStream
	if err := s.DB.First(&stream, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStreamNotFound
		}
		return nil, err
	}

	detail := &StreamDetail{VideoStream: stream}
	var device models.MonitorDevice
	err := s.DB.First(&device, "id = ?", stream.DeviceID).Error
	switch {
	case err == nil:
		detail.Device = &device
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	return detail, nil
}

// 3 GetStats 视频监控概览
func (s *StreamService) GetStats() (*models.StreamStats, error) {
	stats := &models.StreamStats{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalCameras, s.DB.Model(&models.VideoStream{})},
		{&stats.ActiveCameras, s.DB.Model(&models.VideoStream{}).Where("status IN ?", []models.StreamStatus{models.StreamStatusLive, models.StreamStatusRecording})},
		{&stats.TotalDevices, s.DB.Model(&models.MonitorDevice{})},
		{&stats.OnlineDevices, s.DB.Model(&models.MonitorDevice{}).Where("status = ?", models.DeviceStatusOnline)},
		{&stats.ActiveAlerts, s.DB.Model(&models.Alert{}).Where("status IN ?", activeAlertStatuses)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
