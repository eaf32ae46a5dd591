package models

// Statistics 平台总体统计
type Statistics struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	TotalDevices        int64   `json:"total_devices"`
	OnlineDevices       int64   `json:"online_devices"`
	TotalAlerts         int64   `json:"total_alerts"`
	ActiveAlerts        int64   `json:"active_alerts"`
	ResolvedAlerts      int64   `json:"resolved_alerts"`
	FalseAlarms         int64   `json:"false_alarms"`
	AverageResponseTime float64 `json:"average_response_time"` // 分钟
	DetectionAccuracy   float64 `json:"detection_accuracy"`    // 百分比
}

func (Statistics) TableName() string {
	return "statistics_baseline"
}

// DashboardOverview 首页概览
type DashboardOverview struct {
	Statistics   Statistics `json:"statistics"`
	SystemHealth int        `json:"system_health"`
	AlertRate    float64    `json:"alert_rate"`
	RecentAlerts []Alert    `json:"recent_alerts"`
}
