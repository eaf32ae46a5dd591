package models

import "time"

// AlertType 告警类型
type AlertType string

const (
	AlertTypeSmoke     AlertType = "smoke"
	AlertTypeFlame     AlertType = "flame"
	AlertTypePerson    AlertType = "person"
	AlertTypeVehicle   AlertType = "vehicle"
	AlertTypeMachinery AlertType = "machinery"
	AlertTypeSystem    AlertType = "system"
)

// AlertLevel 告警级别
type AlertLevel string

const (
	AlertLevelLow      AlertLevel = "low"
	AlertLevelMedium   AlertLevel = "medium"
	AlertLevelHigh     AlertLevel = "high"
	AlertLevelCritical AlertLevel = "critical"
)

// AlertStatus 告警处理状态
type AlertStatus string

const (
	AlertStatusPending    AlertStatus = "pending"
	AlertStatusProcessing AlertStatus = "processing"
	AlertStatusResolved   AlertStatus = "resolved"
	AlertStatusDismissed  AlertStatus = "dismissed"
)

// Alert 告警信息
type Alert struct {
	ID          string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Type        AlertType   `gorm:"type:varchar(20);index" json:"type"`
	Level       AlertLevel  `gorm:"type:varchar(20);index" json:"level"`
	Title       string      `gorm:"type:varchar(100)" json:"title"`
	Description string      `gorm:"type:varchar(500)" json:"description"`
	DeviceID    string      `gorm:"type:varchar(64);index" json:"device_id"`
	DeviceName  string      `gorm:"type:varchar(100)" json:"device_name"`
	Location    string      `gorm:"type:varchar(200)" json:"location"`
	Timestamp   time.Time   `gorm:"index" json:"timestamp"`
	Status      AlertStatus `gorm:"type:varchar(20);index" json:"status"`
	AssignedTo  string      `gorm:"type:varchar(50)" json:"assigned_to,omitempty"`
	Coordinates Coordinates `gorm:"embedded" json:"coordinates"`
	Resolution  string      `gorm:"type:varchar(500)" json:"resolution,omitempty"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty"`
	Timestamps
}

func (Alert) TableName() string {
	return "alerts"
}

// IsActive 待处理或处理中的告警
func (a Alert) IsActive() bool {
	return a.Status == AlertStatusPending || a.Status == AlertStatusProcessing
}

// AlertSummary 告警处理统计
type AlertSummary struct {
	Total       int64   `json:"total"`
	Pending     int64   `json:"pending"`
	Processing  int64   `json:"processing"`
	Resolved    int64   `json:"resolved"`
	Dismissed   int64   `json:"dismissed"`
	ResolveRate float64 `json:"resolve_rate"`
}

// BatchResult 批量操作结果
type BatchResult struct {
	Affected int      `json:"affected"`
	Missing  []string `json:"missing"`
}
