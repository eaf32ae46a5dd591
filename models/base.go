package models

import (
	"strings"
	"time"
)

// Coordinates 经纬度坐标
type Coordinates struct {
	Latitude  float64 `gorm:"column:latitude" json:"latitude" binding:"omitempty,latitude" example:"35.4053"`
	Longitude float64 `gorm:"column:longitude" json:"longitude" binding:"omitempty,longitude" example:"116.9734"`
}

// DefaultCoordinates 邹城市中心坐标，新增记录未提供坐标时使用
var DefaultCoordinates = Coordinates{Latitude: 35.4053, Longitude: 116.9734}

// IsZero 判断坐标是否未设置
func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Timestamps 记录的创建/更新时间，不参与接口输出
type Timestamps struct {
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TownOf 截取区域名称中的街道/乡镇前缀，例如 "太平镇田间地头" -> "太平镇"
func TownOf(name string) string {
	if i := strings.Index(name, "街道"); i >= 0 {
		return name[:i+len("街道")]
	}
	if i := strings.Index(name, "镇"); i >= 0 {
		return name[:i+len("镇")]
	}
	return name
}

// Local 平台统一时区（UTC+8），入库时间均使用该时区
var Local = time.FixedZone("CST", 8*60*60)

// Now 平台时区的当前时间
func Now() time.Time {
	return time.Now().In(Local)
}
