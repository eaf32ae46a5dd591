package models

import "time"

// SmokeStatus 烟雾检测状态
type SmokeStatus string

const (
	SmokeStatusNormal   SmokeStatus = "normal"
	SmokeStatusWarning  SmokeStatus = "warning"
	SmokeStatusAlert    SmokeStatus = "alert"
	SmokeStatusCritical SmokeStatus = "critical"
)

// SmokeDetection 烟雾检测记录
type SmokeDetection struct {
	ID            string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	DeviceID      string      `gorm:"type:varchar(64);index" json:"device_id"`
	DeviceName    string      `gorm:"type:varchar(100)" json:"device_name"`
	Timestamp     time.Time   `gorm:"index" json:"timestamp"`
	SmokeLevel    int         `json:"smoke_level"` // 烟雾浓度（0-100）
	SmokeArea     int         `json:"smoke_area"`  // 烟雾面积（平方米）
	WindDirection string      `gorm:"type:varchar(20)" json:"wind_direction"`
	WindSpeed     float64     `json:"wind_speed"`
	Temperature   float64     `json:"temperature"`
	Humidity      float64     `json:"humidity"`
	Coordinates   Coordinates `gorm:"embedded" json:"coordinates"`
	Status        SmokeStatus `gorm:"type:varchar(20);index" json:"status"`
	Simulated     bool        `gorm:"index" json:"simulated"` // 由实时模拟生成
	Timestamps
}

func (SmokeDetection) TableName() string {
	return "smoke_detections"
}

// FlameStatus 火焰检测状态
type FlameStatus string

const (
	FlameStatusDetected     FlameStatus = "detected"
	FlameStatusSpreading    FlameStatus = "spreading"
	FlameStatusControlled   FlameStatus = "controlled"
	FlameStatusExtinguished FlameStatus = "extinguished"
)

// FlameDetection 火焰检测记录
type FlameDetection struct {
	ID              string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	DeviceID        string      `gorm:"type:varchar(64);index" json:"device_id"`
	DeviceName      string      `gorm:"type:varchar(100)" json:"device_name"`
	Timestamp       time.Time   `gorm:"index" json:"timestamp"`
	FlameSize       float64     `json:"flame_size"`      // 火焰大小（平方米）
	FlameIntensity  int         `json:"flame_intensity"` // 火焰强度（0-100）
	FlameHeight     float64     `json:"flame_height"`    // 火焰高度（米）
	SpreadSpeed     float64     `json:"spread_speed"`    // 蔓延速度（m/min）
	Temperature     float64     `json:"temperature"`
	Humidity        float64     `json:"humidity"`
	DetectionRadius int         `json:"detection_radius"`
	WindDirection   string      `gorm:"type:varchar(20)" json:"wind_direction"`
	WindSpeed       float64     `json:"wind_speed"`
	LastUpdate      time.Time   `json:"last_update"`
	Coordinates     Coordinates `gorm:"embedded" json:"coordinates"`
	Status          FlameStatus `gorm:"type:varchar(20);index" json:"status"`
	EstimatedArea   *int        `json:"estimated_area,omitempty"`
	Simulated       bool        `gorm:"index" json:"simulated"`
	Timestamps
}

func (FlameDetection) TableName() string {
	return "flame_detections"
}

// SmokeStats 烟雾检测统计
type SmokeStats struct {
	Total        int64                 `json:"total"`
	ByStatus     map[SmokeStatus]int64 `json:"by_status"`
	AverageLevel float64               `json:"average_level"`
	MaxLevel     int                   `json:"max_level"`
}

// FlameStats 火焰检测统计
type FlameStats struct {
	Total                 int64                 `json:"total"`
	HighIntensity         int64                 `json:"high_intensity"`
	ByStatus              map[FlameStatus]int64 `json:"by_status"`
	IntensityDistribution IntensityDistribution `json:"intensity_distribution"`
}

// IntensityDistribution 火焰强度分布: low(<40) / medium(40-80) / high(>=80)
type IntensityDistribution struct {
	Low    int64 `json:"low"`
	Medium int64 `json:"medium"`
	High   int64 `json:"high"`
}
