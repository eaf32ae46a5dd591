package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

type gatewayRecorder struct {
	mu       sync.Mutex
	paths    []string
	messages []gatewayMessage
}

func (g *gatewayRecorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg gatewayMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		g.mu.Lock()
		g.paths = append(g.paths, r.URL.Path)
		g.messages = append(g.messages, msg)
		g.mu.Unlock()
		w.WriteHeader(status)
	}
}

func newNotificationService(t *testing.T, cfg *config.Config) (*NotificationService, InterfaceSettingsService) {
	db := newTestDB(t)
	users := NewUserService(db, cfg, NewJWTService(cfg), newCaptchaService(0, nil))
	alerts := NewAlertService(db, cfg, users)
	settings := NewSettingsService(db, cfg)
	return NewNotificationService(db, cfg, alerts, users, settings).(*NotificationService), settings
}

func TestNotifyWithoutGateway(t *testing.T) {
	s, _ := newNotificationService(t, testConfig())

	var observed []models.NotifyStatus
	s.OnResult(func(_ models.NotifyChannel, status models.NotifyStatus) { observed = append(observed, status) })

	result, err := s.Notify("alert001", NotifyRequest{Channel: models.ChannelSMS})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
	assert.Zero(t, result.Failed)
	assert.Equal(t, []models.NotifyStatus{models.NotifyStatusSent, models.NotifyStatusSent, models.NotifyStatusSent}, observed)

	records, ok := result.Records.([]models.SMSAlert)
	require.True(t, ok)
	require.Len(t, records, 3)
	assert.Equal(t, "系统管理员", records[0].RecipientName)
	assert.Contains(t, records[0].Message, "【邹城秸秆监控】")

	stored, err := s.GetSMSAlerts("alert001")
	require.NoError(t, err)
	assert.Len(t, stored, 4)

	all, err := s.GetSMSAlerts("")
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestNotifyThroughGateway(t *testing.T) {
	gw := &gatewayRecorder{}
	server := httptest.NewServer(gw.handler(http.StatusOK))
	defer server.Close()

	cfg := testConfig()
	cfg.NotifyGatewayURL = server.URL
	s, _ := newNotificationService(t, cfg)

	result, err := s.Notify("alert003", NotifyRequest{Channel: models.ChannelWeChat, Recipients: []string{"user002", "user004"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)

	records := result.Records.([]models.WeChatAlert)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, models.NotifyStatusDelivered, r.Status)
		assert.Equal(t, "template", r.MessageType)
	}
	assert.Equal(t, "wx_operator1", records[0].WeChatID)

	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.Equal(t, []string{"/notify/wechat", "/notify/wechat"}, gw.paths)
	assert.Equal(t, "wx_viewer1", gw.messages[1].To)
	assert.Contains(t, gw.messages[0].Message, "🔥")

	stored, err := s.GetWeChatAlerts("alert003")
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestNotifyGatewayFailure(t *testing.T) {
	gw := &gatewayRecorder{}
	server := httptest.NewServer(gw.handler(http.StatusBadGateway))
	defer server.Close()

	cfg := testConfig()
	cfg.NotifyGatewayURL = server.URL
	s, _ := newNotificationService(t, cfg)

	result, err := s.Notify("alert002", NotifyRequest{Channel: models.ChannelSMS, Recipients: []string{"user003"}})
	assert.ErrorIs(t, err, ErrNotifyFailed)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Failed)
	assert.Zero(t, result.Sent)

	// 失败记录同样保存
	stored, err := s.GetSMSAlerts("alert002")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	var failed int
	for _, r := range stored {
		if r.Status == models.NotifyStatusFailed {
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.GreaterOrEqual(t, len(gw.paths), 1)
}

func TestNotifyRejections(t *testing.T) {
	s, settings := newNotificationService(t, testConfig())

	_, err := s.Notify("alert001", NotifyRequest{Channel: "email"})
	assert.ErrorIs(t, err, ErrNotifyChannel)

	_, err = s.Notify("missing", NotifyRequest{Channel: models.ChannelSMS})
	assert.ErrorIs(t, err, ErrAlertNotFound)

	_, err = s.Notify("alert001", NotifyRequest{Channel: models.ChannelSMS, Recipients: []string{"user999"}})
	assert.ErrorIs(t, err, ErrNoRecipients)

	current, err := settings.GetSettings()
	require.NoError(t, err)
	current.Notifications.WeChatEnabled = false
	_, err = settings.UpdateSettings(*current)
	require.NoError(t, err)

	_, err = s.Notify("alert001", NotifyRequest{Channel: models.ChannelWeChat})
	assert.ErrorIs(t, err, ErrNotifyChannelDisabled)
}

func TestMessageTemplates(t *testing.T) {
	alert := &models.Alert{
		Type:        models.AlertTypeSmoke,
		Title:       "烟雾浓度超标",
		Description: "浓度达到 85%",
		DeviceName:  "红外热成像-01",
		Location:    "邹城市北湖街道重点区域",
	}
	assert.Equal(t, "【邹城秸秆监控】烟雾浓度超标：浓度达到 85%。位置：邹城市北湖街道重点区域。请立即处理！", SMSMessage(alert))

	msg := WeChatMessage(alert)
	assert.Contains(t, msg, "💨烟雾浓度超标")
	assert.Contains(t, msg, "设备：红外热成像-01")

	alert.Type = models.AlertTypeVehicle
	assert.Contains(t, WeChatMessage(alert), "⚠️")
}
