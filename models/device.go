package models

import (
	"time"
)

// DeviceType 监控设备类型
type DeviceType string

const (
	DeviceTypeCamera  DeviceType = "camera"
	DeviceTypeSensor  DeviceType = "sensor"
	DeviceTypeDrone   DeviceType = "drone"
	DeviceTypeThermal DeviceType = "thermal"
)

// DeviceStatus 监控设备状态
type DeviceStatus string

const (
	DeviceStatusOnline      DeviceStatus = "online"
	DeviceStatusOffline     DeviceStatus = "offline"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
	DeviceStatusFault       DeviceStatus = "fault"
)

// MonitorDevice 前端监控设备（摄像头、环境传感器、无人机、红外热成像）
type MonitorDevice struct {
	ID          string       `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name"`
	Type        DeviceType   `gorm:"type:varchar(20);index" json:"type"`
	Status      DeviceStatus `gorm:"type:varchar(20);index" json:"status"`
	Location    string       `gorm:"type:varchar(200)" json:"location"`
	Coordinates Coordinates  `gorm:"embedded" json:"coordinates"`
	LastUpdate  time.Time    `json:"last_update"`
	Resolution  string       `gorm:"type:varchar(20)" json:"resolution,omitempty"`
	Coverage    *int         `json:"coverage,omitempty"` // 覆盖范围（米）
	Height      *int         `json:"height,omitempty"`   // 安装高度（米）
	Angle       *int         `json:"angle,omitempty"`    // 监控角度
	Battery     *int         `json:"battery,omitempty"`  // 电池电量（%）
	Signal      *int         `json:"signal,omitempty"`   // 信号强度（%）
	Timestamps
}

func (MonitorDevice) TableName() string {
	return "monitor_devices"
}

// DeviceDefaults 新增设备时按类型填充的默认参数
type DeviceDefaults struct {
	Resolution string
	Coverage   *int
	Height     *int
	Angle      *int
	Battery    *int
	Signal     *int
}

// DefaultsFor 返回指定类型设备的默认参数
func DefaultsFor(t DeviceType) DeviceDefaults {
	switch t {
	case DeviceTypeCamera:
		return DeviceDefaults{Resolution: "HD", Coverage: intPtr(300), Height: intPtr(15), Angle: intPtr(120), Signal: intPtr(90)}
	case DeviceTypeSensor:
		return DeviceDefaults{Battery: intPtr(80), Signal: intPtr(90)}
	case DeviceTypeDrone:
		return DeviceDefaults{Coverage: intPtr(2000), Height: intPtr(100), Battery: intPtr(70), Signal: intPtr(90)}
	case DeviceTypeThermal:
		return DeviceDefaults{Resolution: "HD", Coverage: intPtr(400), Height: intPtr(20), Angle: intPtr(90), Signal: intPtr(90)}
	default:
		return DeviceDefaults{Signal: intPtr(90)}
	}
}

// SignalBand 信号强度分档: good(>=80) / fair(>=60) / weak(>=40) / poor
func SignalBand(signal int) string {
	switch {
	case signal >= 80:
		return "good"
	case signal >= 60:
		return "fair"
	case signal >= 40:
		return "weak"
	default:
		return "poor"
	}
}

// BatteryBand 电量分档: normal(>=50) / low(>=20) / critical
func BatteryBand(battery int) string {
	switch {
	case battery >= 50:
		return "normal"
	case battery >= 20:
		return "low"
	default:
		return "critical"
	}
}

// DeviceSummary 设备状态统计
type DeviceSummary struct {
	Total       int64   `json:"total"`
	Online      int64   `json:"online"`
	Offline     int64   `json:"offline"`
	Maintenance int64   `json:"maintenance"`
	Fault       int64   `json:"fault"`
	OnlineRate  float64 `json:"online_rate"`
}

func intPtr(v int) *int {
	return &v
}
