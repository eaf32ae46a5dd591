package services

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
)

// SettingsListener 系统设置保存后的回调
type SettingsListener func(settings models.SystemSettings)

// InterfaceSettingsService 定义系统设置服务接口
type InterfaceSettingsService interface {
	GetSettings() (*models.SystemSettings, error)
	UpdateSettings(settings models.SystemSettings) (*models.SystemSettings, error)
	OnChange(listener SettingsListener)
}

// SettingsService 系统设置服务
type SettingsService struct {
	DB     *gorm.DB
	Config *config.Config

	mu        sync.RWMutex
	listeners []SettingsListener
}

// NewSettingsService 创建系统设置服务
func NewSettingsService(db *gorm.DB, cfg *config.Config) InterfaceSettingsService {
	return &SettingsService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetSettings 获取系统设置
func (s *SettingsService) GetSettings() (*models.SystemSettings, error) {
	var settings models.SystemSettings
	err := s.DB.Where(models.SystemSettings{ID: models.SettingsID}).
		Attrs(defaultSettings()).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// 2 UpdateSettings 校验并保存系统设置，保存后通知监听者
func (s *SettingsService) UpdateSettings(settings models.SystemSettings) (*models.SystemSettings, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	current, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	settings.ID = models.SettingsID
	settings.CreatedAt = current.CreatedAt
	if err := s.DB.Save(&settings).Error; err != nil {
		return nil, err
	}

	saved, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	logger.Info("系统设置已更新: smoke_threshold=%d flame_threshold=%d",
		saved.AlertThresholds.SmokeLevel, saved.AlertThresholds.FlameIntensity)

	s.mu.RLock()
	listeners := append([]SettingsListener(nil), s.listeners...)
	s.mu.RUnlock()
	for _, listener := range listeners {
		listener(*saved)
	}
	return saved, nil
}

// 3 OnChange 注册设置变更回调
func (s *SettingsService) OnChange(listener SettingsListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// validateSettings 绑定标签之外的业务校验
func validateSettings(settings models.SystemSettings) error {
	t := settings.AlertThresholds
	switch {
	case settings.PlatformName == "":
		return fmt.Errorf("%w: 平台名称不能为空", ErrSettingsInvalid)
	case settings.MonitoringMode != "auto" && settings.MonitoringMode != "manual":
		return fmt.Errorf("%w: monitoring_mode 只能为 auto 或 manual", ErrSettingsInvalid)
	case t.SmokeLevel < 0 || t.SmokeLevel > 100 || t.FlameIntensity < 0 || t.FlameIntensity > 100:
		return fmt.Errorf("%w: 告警阈值范围为 0-100", ErrSettingsInvalid)
	case t.TemperatureLow >= t.TemperatureHigh:
		return fmt.Errorf("%w: 低温阈值必须小于高温阈值", ErrSettingsInvalid)
	case settings.SystemMaintenance.LogRetention < 1:
		return fmt.Errorf("%w: 日志保留天数至少为 1", ErrSettingsInvalid)
	}
	switch settings.SystemMaintenance.BackupFrequency {
	case "daily", "weekly", "monthly":
	default:
		return fmt.Errorf("%w: backup_frequency 只能为 daily/weekly/monthly", ErrSettingsInvalid)
	}
	return nil
}

// defaultSettings 数据库中没有设置记录时使用的默认值
func defaultSettings() models.SystemSettings {
	return models.SystemSettings{
		PlatformName:   "邹城市农业农村局秸秆禁烧视频监控平台",
		MonitoringMode: "auto",
		AlertThresholds: models.AlertThresholds{
			SmokeLevel:      70,
			FlameIntensity:  80,
			TemperatureHigh: 40,
			TemperatureLow:  -10,
		},
		Notifications: models.NotificationSettings{
			SMSEnabled:    true,
			WeChatEnabled: true,
			EmailEnabled:  true,
			AutoAlert:     true,
		},
		DeviceSettings: models.DeviceSettings{
			DefaultQuality:    "HD",
			RecordingDuration: 30,
			StorageLimit:      1000,
			AutoCleanup:       true,
		},
		SystemMaintenance: models.MaintenanceSettings{
			AutoUpdate:      true,
			BackupFrequency: "daily",
			LogRetention:    30,
		},
	}
}
