package models

import (
	"time"
)

// SystemLog 操作日志，记录设备控制、告警处置等写操作
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(64);index" json:"user_id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Target    string    `gorm:"type:varchar(100)" json:"target"` // 操作对象, 如 device:cam001
	Detail    string    `gorm:"type:varchar(500)" json:"detail,omitempty"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
