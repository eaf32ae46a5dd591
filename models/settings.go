package models

// AlertThresholds 告警阈值
type AlertThresholds struct {
	SmokeLevel      int `gorm:"column:smoke_level" json:"smoke_level" binding:"gte=0,lte=100"`
	FlameIntensity  int `gorm:"column:flame_intensity" json:"flame_intensity" binding:"gte=0,lte=100"`
	TemperatureHigh int `gorm:"column:temperature_high" json:"temperature_high"`
	TemperatureLow  int `gorm:"column:temperature_low" json:"temperature_low"`
}

// NotificationSettings 通知开关
type NotificationSettings struct {
	SMSEnabled    bool `gorm:"column:sms_enabled" json:"sms_enabled"`
	WeChatEnabled bool `gorm:"column:wechat_enabled" json:"wechat_enabled"`
	EmailEnabled  bool `gorm:"column:email_enabled" json:"email_enabled"`
	AutoAlert     bool `gorm:"column:auto_alert" json:"auto_alert"`
}

// DeviceSettings 设备默认参数
type DeviceSettings struct {
	DefaultQuality    string `gorm:"column:default_quality" json:"default_quality" binding:"omitempty,oneof=HD SD 4K"`
	RecordingDuration int    `gorm:"column:recording_duration" json:"recording_duration" binding:"gte=0"`
	StorageLimit      int    `gorm:"column:storage_limit" json:"storage_limit" binding:"gte=0"`
	AutoCleanup       bool   `gorm:"column:auto_cleanup" json:"auto_cleanup"`
}

// MaintenanceSettings 系统维护
type MaintenanceSettings struct {
	AutoUpdate      bool   `gorm:"column:auto_update" json:"auto_update"`
	BackupFrequency string `gorm:"column:backup_frequency" json:"backup_frequency" binding:"oneof=daily weekly monthly"`
	LogRetention    int    `gorm:"column:log_retention" json:"log_retention" binding:"gte=1"`
}

// SystemSettings 系统设置（单行）
type SystemSettings struct {
	ID                uint                 `gorm:"primaryKey" json:"-"`
	PlatformName      string               `gorm:"type:varchar(100)" json:"platform_name" binding:"required"`
	MonitoringMode    string               `gorm:"type:varchar(10)" json:"monitoring_mode" binding:"oneof=auto manual"`
	AlertThresholds   AlertThresholds      `gorm:"embedded;embeddedPrefix:threshold_" json:"alert_thresholds"`
	Notifications     NotificationSettings `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
	DeviceSettings    DeviceSettings       `gorm:"embedded;embeddedPrefix:device_" json:"device_settings"`
	SystemMaintenance MaintenanceSettings  `gorm:"embedded;embeddedPrefix:maintenance_" json:"system_maintenance"`
	Timestamps
}

func (SystemSettings) TableName() string {
	return "system_settings"
}

// SettingsID 系统设置固定主键
const SettingsID uint = 1
