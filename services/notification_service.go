package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/idgen"
	"straw-monitor-service/pkg/logger"
)

// NotifyRequest 告警通知请求
type NotifyRequest struct {
	Channel    models.NotifyChannel `json:"channel" binding:"required,oneof=sms wechat" example:"sms"`
	Recipients []string             `json:"recipients,omitempty" example:"user002,user003"`
}

// NotifyResult 通知发送结果
type NotifyResult struct {
	Channel models.NotifyChannel `json:"channel"`
	Sent    int                  `json:"sent"`
	Failed  int                  `json:"failed"`
	Records interface{}          `json:"records"`
}

// gatewayMessage 通知网关请求体
type gatewayMessage struct {
	Channel     models.NotifyChannel `json:"channel"`
	To          string               `json:"to"`
	Message     string               `json:"message"`
	MessageType string               `json:"message_type,omitempty"`
}

// InterfaceNotificationService 定义告警通知服务接口
type InterfaceNotificationService interface {
	Notify(alertID string, req NotifyRequest) (*NotifyResult, error)
	GetSMSAlerts(alertID string) ([]models.SMSAlert, error)
	GetWeChatAlerts(alertID string) ([]models.WeChatAlert, error)
	OnResult(fn func(channel models.NotifyChannel, status models.NotifyStatus))
}

// NotificationService 短信/微信告警通知服务
type NotificationService struct {
	DB       *gorm.DB
	Config   *config.Config
	Alerts   InterfaceAlertService
	Users    InterfaceUserService
	Settings InterfaceSettingsService
	client   *resty.Client
	observe  func(channel models.NotifyChannel, status models.NotifyStatus)
}

// NewNotificationService 创建告警通知服务，未配置网关地址时只记录不外发
func NewNotificationService(db *gorm.DB, cfg *config.Config, alerts InterfaceAlertService, users InterfaceUserService, settings InterfaceSettingsService) InterfaceNotificationService {
	timeout := cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var client *resty.Client
	if cfg.NotifyGatewayURL != "" {
		client = resty.New().
			SetBaseURL(cfg.NotifyGatewayURL).
			SetTimeout(timeout).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			}).
			SetHeader("Content-Type", "application/json")
	}

	return &NotificationService{
		DB:       db,
		Config:   cfg,
		Alerts:   alerts,
		Users:    users,
		Settings: settings,
		client:   client,
	}
}

// OnResult 注册发送结果回调（用于指标统计）
func (s *NotificationService) OnResult(fn func(channel models.NotifyChannel, status models.NotifyStatus)) {
	s.observe = fn
}

// 1 Notify 按渠道给接收人发送告警通知，每个接收人生成一条记录
func (s *NotificationService) Notify(alertID string, req NotifyRequest) (*NotifyResult, error) {
	settings, err := s.Settings.GetSettings()
	if err != nil {
		return nil, err
	}
	switch req.Channel {
	case models.ChannelSMS:
		if !settings.Notifications.SMSEnabled {
			return nil, ErrNotifyChannelDisabled
		}
	case models.ChannelWeChat:
		if !settings.Notifications.WeChatEnabled {
			return nil, ErrNotifyChannelDisabled
		}
	default:
		return nil, ErrNotifyChannel
	}

	alert, err := s.Alerts.GetAlertByID(alertID)
	if err != nil {
		return nil, err
	}
	recipients, err := s.Users.GetRecipients(req.Recipients)
	if err != nil {
		return nil, err
	}

	result := &NotifyResult{Channel: req.Channel}
	now := models.Now()
	if req.Channel == models.ChannelSMS {
		records := make([]models.SMSAlert, 0, len(recipients))
		text := SMSMessage(alert)
		for _, user := range recipients {
			status, retries := s.dispatch(gatewayMessage{Channel: models.ChannelSMS, To: user.Phone, Message: text})
			records = append(records, models.SMSAlert{
				ID:            idgen.NewID("sms"),
				AlertID:       alert.ID,
				PhoneNumber:   user.Phone,
				RecipientName: user.Name,
				Message:       text,
				Timestamp:     now,
				Status:        status,
				RetryCount:    retries,
			})
			result.count(status)
		}
		if err := s.DB.Create(&records).Error; err != nil {
			return nil, err
		}
		result.Records = records
	} else {
		records := make([]models.WeChatAlert, 0, len(recipients))
		text := WeChatMessage(alert)
		for _, user := range recipients {
			status, _ := s.dispatch(gatewayMessage{Channel: models.ChannelWeChat, To: user.WeChatID(), Message: text, MessageType: "template"})
			records = append(records, models.WeChatAlert{
				ID:            idgen.NewID("wechat"),
				AlertID:       alert.ID,
				WeChatID:      user.WeChatID(),
				RecipientName: user.Name,
				Message:       text,
				Timestamp:     now,
				Status:        status,
				MessageType:   "template",
			})
			result.count(status)
		}
		if err := s.DB.Create(&records).Error; err != nil {
			return nil, err
		}
		result.Records = records
	}

	logger.L().Info("告警通知已发送",
		zap.String("alert_id", alert.ID),
		zap.String("channel", string(req.Channel)),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)
	if result.Sent == 0 {
		return result, fmt.Errorf("%w: %d 条全部失败", ErrNotifyFailed, result.Failed)
	}
	return result, nil
}

func (r *NotifyResult) count(status models.NotifyStatus) {
	if status == models.NotifyStatusFailed {
		r.Failed++
	} else {
		r.Sent++
	}
}

// dispatch 通过网关发送单条消息，返回最终状态和重试次数
func (s *NotificationService) dispatch(msg gatewayMessage) (models.NotifyStatus, int) {
	status, retries := models.NotifyStatusSent, 0
	if s.client != nil {
		resp, err := s.client.R().SetBody(msg).Post("/notify/" + string(msg.Channel))
		if resp != nil && resp.Request != nil && resp.Request.Attempt > 1 {
			retries = resp.Request.Attempt - 1
		}
		switch {
		case err != nil:
			logger.Warning("通知网关调用失败: channel=%s to=%s err=%v", msg.Channel, msg.To, err)
			status = models.NotifyStatusFailed
		case resp.IsError():
			logger.Warning("通知网关返回错误: channel=%s to=%s status=%d", msg.Channel, msg.To, resp.StatusCode())
			status = models.NotifyStatusFailed
		default:
			status = models.NotifyStatusDelivered
		}
	}
	if s.observe != nil {
		s.observe(msg.Channel, status)
	}
	return status, retries
}

// 2 GetSMSAlerts 短信通知记录，alertID 为空时返回全部
func (s *NotificationService) GetSMSAlerts(alertID string) ([]models.SMSAlert, error) {
	var records []models.SMSAlert
	err := s.DB.Scopes(whereEq("alert_id", alertID)).Order("timestamp DESC, id ASC").Find(&records).Error
	return records, err
}

// 3 GetWeChatAlerts 微信通知记录
func (s *NotificationService) GetWeChatAlerts(alertID string) ([]models.WeChatAlert, error) {
	var records []models.WeChatAlert
	err := s.DB.Scopes(whereEq("alert_id", alertID)).Order("timestamp DESC, id ASC").Find(&records).Error
	return records, err
}

// SMSMessage 短信内容
func SMSMessage(alert *models.Alert) string {
	return fmt.Sprintf("【邹城秸秆监控】%s：%s。位置：%s。请立即处理！", alert.Title, alert.Description, alert.Location)
}

// WeChatMessage 微信模板消息内容
func WeChatMessage(alert *models.Alert) string {
	icon := "⚠️"
	switch alert.Type {
	case models.AlertTypeFlame:
		icon = "🔥"
	case models.AlertTypeSmoke:
		icon = "💨"
	}
	return fmt.Sprintf("%s%s\n设备：%s\n位置：%s\n状况：%s\n时间：%s\n请立即处理！",
		icon, alert.Title, alert.DeviceName, alert.Location, alert.Description,
		alert.Timestamp.In(models.Local).Format("2006-01-02 15:04:05"))
}
