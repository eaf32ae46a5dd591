package models

import "time"

// SmokeSnapshot 烟雾实时面板数据
type SmokeSnapshot struct {
	CurrentLevel  int       `json:"current_level"`
	AverageLevel  int       `json:"average_level"`
	PeakLevel     int       `json:"peak_level"`
	AffectedArea  int       `json:"affected_area"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection string    `json:"wind_direction"`
	Temperature   int       `json:"temperature"`
	Humidity      int       `json:"humidity"`
	AirQuality    int       `json:"air_quality"`
	Visibility    int       `json:"visibility"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// FlameSnapshot 火焰实时面板数据
type FlameSnapshot struct {
	CurrentTemperature int       `json:"current_temperature"`
	FlameIntensity     int       `json:"flame_intensity"`
	DetectionRadius    int       `json:"detection_radius"`
	WindSpeed          float64   `json:"wind_speed"`
	WindDirection      string    `json:"wind_direction"`
	Humidity           int       `json:"humidity"`
	AirPressure        int       `json:"air_pressure"`
	Visibility         int       `json:"visibility"`
	RiskLevel          int       `json:"risk_level"`
	RiskLabel          string    `json:"risk_label"`
	ActiveDetectors    int       `json:"active_detectors"`
	TotalDetectors     int       `json:"total_detectors"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// FlameRiskLabel 火焰风险等级文字: 极高(>=80) / 高(>=60) / 中(>=40) / 低
func FlameRiskLabel(risk int) string {
	switch {
	case risk >= 80:
		return "极高"
	case risk >= 60:
		return "高"
	case risk >= 40:
		return "中"
	default:
		return "低"
	}
}

// ClockTick 时钟事件
type ClockTick struct {
	Now time.Time `json:"now"`
}

// SmokeFeedSettings 烟雾实时监测设置
type SmokeFeedSettings struct {
	AutoRefresh     bool   `json:"auto_refresh"`
	RefreshInterval int    `json:"refresh_interval" binding:"gte=1,lte=300"` // 秒
	AlertThreshold  int    `json:"alert_threshold" binding:"gte=0,lte=100"`
	MonitoringMode  string `json:"monitoring_mode" binding:"oneof=auto manual"`
}

// FlameFeedSettings 火焰实时监测设置
type FlameFeedSettings struct {
	AutoRefresh          bool   `json:"auto_refresh"`
	RefreshInterval      int    `json:"refresh_interval" binding:"gte=1,lte=300"` // 秒
	TemperatureThreshold int    `json:"temperature_threshold" binding:"gte=0"`
	IntensityThreshold   int    `json:"intensity_threshold" binding:"gte=0,lte=100"`
	MonitoringMode       string `json:"monitoring_mode" binding:"oneof=auto manual"`
}

// 实时事件类型
const (
	EventClock      = "clock"
	EventSmoke      = "smoke"
	EventFlame      = "flame"
	EventSmokeAlert = "smoke_alert"
	EventFlameAlert = "flame_alert"
	EventDetection  = "detection"
	EventAlert      = "alert"
)

// RealtimeEvent 推送给订阅者的实时事件
type RealtimeEvent struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}
