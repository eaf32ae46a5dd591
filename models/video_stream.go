package models

import "time"

// StreamStatus 视频流状态
type StreamStatus string

const (
	StreamStatusLive      StreamStatus = "live"
	StreamStatusRecording StreamStatus = "recording"
	StreamStatusOffline   StreamStatus = "offline"
)

// VideoStream 视频监控流
type VideoStream struct {
	ID         string       `gorm:"primaryKey;type:varchar(64)" json:"id"`
	DeviceID   string       `gorm:"type:varchar(64);index" json:"device_id"`
	DeviceName string       `gorm:"type:varchar(100)" json:"device_name"`
	StreamURL  string       `gorm:"type:varchar(255)" json:"stream_url"`
	Status     StreamStatus `gorm:"type:varchar(20);index" json:"status"`
	Quality    string       `gorm:"type:varchar(10)" json:"quality"` // HD / SD / 4K
	Timestamp  time.Time    `json:"timestamp"`
	Duration   *int         `json:"duration,omitempty"`  // 录像时长（秒）
	FileSize   *float64     `json:"file_size,omitempty"` // 文件大小（MB）
	Timestamps
}

func (VideoStream) TableName() string {
	return "video_streams"
}

// StreamStats 视频监控概览
type StreamStats struct {
	TotalCameras  int64 `json:"total_cameras"`
	ActiveCameras int64 `json:"active_cameras"`
	OnlineDevices int64 `json:"online_devices"`
	TotalDevices  int64 `json:"total_devices"`
	ActiveAlerts  int64 `json:"active_alerts"`
}
