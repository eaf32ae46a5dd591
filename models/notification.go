package models

import "time"

// NotifyStatus 通知发送状态
type NotifyStatus string

const (
	NotifyStatusSent      NotifyStatus = "sent"
	NotifyStatusDelivered NotifyStatus = "delivered"
	NotifyStatusFailed    NotifyStatus = "failed"
	NotifyStatusPending   NotifyStatus = "pending"
)

// NotifyChannel 通知渠道
type NotifyChannel string

const (
	ChannelSMS    NotifyChannel = "sms"
	ChannelWeChat NotifyChannel = "wechat"
)

// SMSAlert 短信告警记录
type SMSAlert struct {
	ID            string       `gorm:"primaryKey;type:varchar(64)" json:"id"`
	AlertID       string       `gorm:"type:varchar(64);index" json:"alert_id"`
	PhoneNumber   string       `gorm:"type:varchar(20)" json:"phone_number"`
	RecipientName string       `gorm:"type:varchar(50)" json:"recipient_name"`
	Message       string       `gorm:"type:varchar(1000)" json:"message"`
	Timestamp     time.Time    `json:"timestamp"`
	Status        NotifyStatus `gorm:"type:varchar(20)" json:"status"`
	RetryCount    int          `json:"retry_count"`
	Timestamps
}

func (SMSAlert) TableName() string {
	return "sms_alerts"
}

// WeChatAlert 微信告警记录
type WeChatAlert struct {
	ID            string       `gorm:"primaryKey;type:varchar(64)" json:"id"`
	AlertID       string       `gorm:"type:varchar(64);index" json:"alert_id"`
	WeChatID      string       `gorm:"column:wechat_id;type:varchar(64)" json:"wechat_id"`
	RecipientName string       `gorm:"type:varchar(50)" json:"recipient_name"`
	Message       string       `gorm:"type:varchar(1000)" json:"message"`
	Timestamp     time.Time    `json:"timestamp"`
	Status        NotifyStatus `gorm:"type:varchar(20)" json:"status"`
	MessageType   string       `gorm:"type:varchar(20)" json:"message_type"` // text / template / card
	Timestamps
}

func (WeChatAlert) TableName() string {
	return "wechat_alerts"
}
