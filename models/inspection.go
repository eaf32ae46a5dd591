package models

import "time"

// InspectionStatus 巡检状态
type InspectionStatus string

const (
	InspectionPending    InspectionStatus = "pending"
	InspectionInProgress InspectionStatus = "in-progress"
	InspectionCompleted  InspectionStatus = "completed"
	InspectionOverdue    InspectionStatus = "overdue"
)

// InspectionRecord 巡检记录
type InspectionRecord struct {
	ID              string           `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Inspector       string           `gorm:"type:varchar(50);index" json:"inspector"`
	Area            string           `gorm:"type:varchar(100);index" json:"area"`
	ScheduledDate   time.Time        `gorm:"index" json:"scheduled_date"`
	ActualDate      *time.Time       `json:"actual_date,omitempty"`
	Status          InspectionStatus `gorm:"type:varchar(20);index" json:"status"`
	Description     string           `gorm:"type:varchar(500)" json:"description"`
	Findings        string           `gorm:"type:varchar(500)" json:"findings,omitempty"`
	Issues          string           `gorm:"type:varchar(500)" json:"issues,omitempty"`
	Photos          []string         `gorm:"serializer:json" json:"photos,omitempty"`
	Recommendations string           `gorm:"type:varchar(500)" json:"recommendations,omitempty"`
	Timestamps
}

func (InspectionRecord) TableName() string {
	return "inspection_records"
}
