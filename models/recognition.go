package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecognitionType 图像识别目标类型
type RecognitionType string

const (
	RecognitionPerson    RecognitionType = "person"
	RecognitionVehicle   RecognitionType = "vehicle"
	RecognitionMachinery RecognitionType = "machinery"
	RecognitionStrawPile RecognitionType = "straw_pile"
	RecognitionBurning   RecognitionType = "burning"
)

// BoundingBox 识别框在画面中的位置
type BoundingBox struct {
	X      int `gorm:"column:x" json:"x"`
	Y      int `gorm:"column:y" json:"y"`
	Width  int `gorm:"column:width" json:"width"`
	Height int `gorm:"column:height" json:"height"`
}

// RecognitionDetails 识别附加信息
type RecognitionDetails struct {
	PersonCount   *int     `json:"person_count,omitempty"`
	VehicleType   string   `json:"vehicle_type,omitempty"`
	MachineryType string   `json:"machinery_type,omitempty"`
	StrawVolume   *float64 `json:"straw_volume,omitempty"`
}

// RecognitionResult 图像识别结果
type RecognitionResult struct {
	ID         string                                 `gorm:"primaryKey;type:varchar(64)" json:"id"`
	DeviceID   string                                 `gorm:"type:varchar(64);index" json:"device_id"`
	DeviceName string                                 `gorm:"type:varchar(100)" json:"device_name"`
	Timestamp  time.Time                              `gorm:"index" json:"timestamp"`
	Type       RecognitionType                        `gorm:"type:varchar(20);index" json:"type"`
	Confidence int                                    `json:"confidence"`
	Location   BoundingBox                            `gorm:"embedded;embeddedPrefix:box_" json:"location"`
	Details    datatypes.JSONType[RecognitionDetails] `json:"details"`
	ImageURL   string                                 `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	Timestamps
}

func (RecognitionResult) TableName() string {
	return "recognition_results"
}

// RecognitionStats 识别统计
type RecognitionStats struct {
	Total             int64                     `json:"total"`
	HighConfidence    int64                     `json:"high_confidence"`
	Burning           int64                     `json:"burning"`
	StrawPile         int64                     `json:"straw_pile"`
	ByType            map[RecognitionType]int64 `json:"by_type"`
	AverageConfidence float64                   `json:"average_confidence"`
}
