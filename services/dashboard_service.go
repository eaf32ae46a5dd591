package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// DashboardDeviceFilter 首页设备列表过滤条件
type DashboardDeviceFilter struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// InterfaceDashboardService 定义首页服务接口
type InterfaceDashboardService interface {
	GetOverview() (*models.DashboardOverview, error)
	GetDevices(filter DashboardDeviceFilter) ([]models.MonitorDevice, error)
}

// DashboardService 首页概览服务
type DashboardService struct {
	DB      *gorm.DB
	Config  *config.Config
	Devices InterfaceDeviceService
	Alerts  InterfaceAlertService
}

// NewDashboardService 创建首页服务
func NewDashboardService(db *gorm.DB, cfg *config.Config, devices InterfaceDeviceService, alerts InterfaceAlertService) InterfaceDashboardService {
	return &DashboardService{
		DB:      db,
		Config:  cfg,
		Devices: devices,
		Alerts:  alerts,
	}
}

// 1 GetOverview 首页统计，设备和告警数据实时计算，响应时间和识别准确率取基线数据
func (s *DashboardService) GetOverview() (*models.DashboardOverview, error) {
	var stats models.Statistics
	if err := s.DB.First(&stats, "id = ?", 1).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	devices, err := s.Devices.GetSummary()
	if err != nil {
		return nil, err
	}
	alerts, err := s.Alerts.GetSummary()
	if err != nil {
		return nil, err
	}

	stats.TotalDevices = devices.Total
	stats.OnlineDevices = devices.Online
	stats.TotalAlerts = alerts.Total
	stats.ActiveAlerts = alerts.Pending + alerts.Processing
	stats.ResolvedAlerts = alerts.Resolved
	stats.FalseAlarms = alerts.Dismissed

	recent, err := s.Alerts.RecentAlerts(5)
	if err != nil {
		return nil, err
	}

	overview := &models.DashboardOverview{
		Statistics:   stats,
		AlertRate:    percent(stats.ActiveAlerts, stats.TotalAlerts),
		RecentAlerts: recent,
	}
	if stats.TotalDevices > 0 {
		overview.SystemHealth = int(math.Round(float64(stats.OnlineDevices) * 100 / float64(stats.TotalDevices)))
	}
	return overview, nil
}

// 2 GetDevices 首页设备状态列表
func (s *DashboardService) GetDevices(filter DashboardDeviceFilter) ([]models.MonitorDevice, error) {
	devices, _, err := s.Devices.GetDevices(DeviceFilter{
		Search: filter.Search,
		Status: filter.Status,
	})
	return devices, err
}
