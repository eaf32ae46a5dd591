package models

import "gorm.io/datatypes"

// AreaType 区域类型
type AreaType string

const (
	AreaVillage     AreaType = "village"
	AreaFarmland    AreaType = "farmland"
	AreaForest      AreaType = "forest"
	AreaResidential AreaType = "residential"
)

// RiskLevel 风险等级
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Area 监控区域
type Area struct {
	ID          string                            `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string                            `gorm:"type:varchar(100);uniqueIndex" json:"name"`
	Type        AreaType                          `gorm:"type:varchar(20)" json:"type"`
	Coordinates datatypes.JSONType[[]Coordinates] `json:"coordinates"`
	RiskLevel   RiskLevel                         `gorm:"type:varchar(20);index" json:"risk_level"`
	DeviceCount int                               `json:"device_count"`
	Population  *int                              `json:"population,omitempty"`
	Description string                            `gorm:"type:varchar(500)" json:"description,omitempty"`
	Timestamps
}

func (Area) TableName() string {
	return "areas"
}

// Town 区域所属街道/乡镇
func (a Area) Town() string {
	return TownOf(a.Name)
}

// AreaOverview 区域信息及实时统计
type AreaOverview struct {
	Area
	LiveDeviceCount int64 `json:"live_device_count"`
	AlertCount      int64 `json:"alert_count"`
}
