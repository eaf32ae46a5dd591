package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/internal/metrics"
	"straw-monitor-service/models"
)

type simulatorFixture struct {
	sim      *SimulatorService
	hub      InterfaceRealtimeHub
	settings InterfaceSettingsService
	alerts   InterfaceAlertService
	metrics  *metrics.Metrics
}

func newSimulatorFixture(t *testing.T, mqttService InterfaceMQTTService, redisService InterfaceRedisService) *simulatorFixture {
	db := newTestDB(t)
	cfg := testConfig()
	users := NewUserService(db, cfg, NewJWTService(cfg), newCaptchaService(0, nil))
	if mqttService == nil {
		mqttService = NewMQTTService(cfg)
	}
	f := &simulatorFixture{
		hub:      NewRealtimeHub(),
		settings: NewSettingsService(db, cfg),
		alerts:   NewAlertService(db, cfg, users),
		metrics:  metrics.New(),
	}
	f.sim = NewSimulatorService(db, cfg, SimulatorDeps{
		Hub:        f.hub,
		Detections: NewDetectionService(db, cfg),
		Alerts:     f.alerts,
		Devices:    NewDeviceService(db, cfg, mqttService),
		Settings:   f.settings,
		MQTT:       mqttService,
		Redis:      redisService,
		Metrics:    f.metrics,
	}).(*SimulatorService)
	t.Cleanup(f.sim.Stop)
	return f
}

func countTypes(events []models.RealtimeEvent) map[string]int {
	counts := map[string]int{}
	for _, evt := range events {
		counts[evt.Type]++
	}
	return counts
}

func TestTickSmoke(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)
	sub := f.hub.Subscribe(4096)

	base := time.Date(2025, 7, 22, 15, 0, 0, 0, models.Local)
	for i := 0; i < 300; i++ {
		f.sim.TickSmoke(base.Add(time.Duration(i) * 5 * time.Second))
	}
	events := drain(sub)
	counts := countTypes(events)
	assert.Equal(t, 300, counts[models.EventSmoke])
	require.Positive(t, counts[models.EventDetection])

	overThreshold := 0
	for _, evt := range events {
		switch evt.Type {
		case models.EventDetection:
			det := evt.Payload.(DetectionEvent).Detection.(models.SmokeDetection)
			assert.True(t, det.Simulated)
			if det.SmokeLevel >= 70 {
				overThreshold++
			}
		case models.EventSmokeAlert:
			assert.GreaterOrEqual(t, evt.Payload.(models.SmokeDetection).SmokeLevel, 70)
		case models.EventAlert:
			alert := evt.Payload.(models.Alert)
			assert.Equal(t, models.AlertTypeSmoke, alert.Type)
			assert.Equal(t, models.AlertStatusPending, alert.Status)
			assert.True(t, strings.HasPrefix(alert.Location, "邹城市"))
		}
	}
	assert.Equal(t, overThreshold, counts[models.EventSmokeAlert])
	assert.Equal(t, overThreshold, counts[models.EventAlert])

	summary, err := f.alerts.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(10+overThreshold), summary.Total)

	var simulated int64
	require.NoError(t, f.sim.DB.Model(&models.SmokeDetection{}).Where("simulated = ?", true).Count(&simulated).Error)
	want := int64(counts[models.EventDetection])
	if want > 20 {
		want = 20
	}
	assert.Equal(t, want, simulated)

	assert.Equal(t, float64(counts[models.EventDetection]), testutil.ToFloat64(f.metrics.SimulatedDetections.WithLabelValues(FeedSmoke)))
	assert.Equal(t, 9.0, testutil.ToFloat64(f.metrics.DevicesOnline))
}

func TestTickSmokeWithoutAutoAlert(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)

	settings, err := f.settings.GetSettings()
	require.NoError(t, err)
	settings.AlertThresholds.SmokeLevel = 0
	settings.Notifications.AutoAlert = false
	_, err = f.settings.UpdateSettings(*settings)
	require.NoError(t, err)
	assert.Equal(t, 0, f.sim.SmokeSettings().AlertThreshold)

	sub := f.hub.Subscribe(4096)
	for i := 0; i < 100; i++ {
		f.sim.TickSmoke(time.Now())
	}
	counts := countTypes(drain(sub))
	require.Positive(t, counts[models.EventDetection])
	// 阈值为0时每条检测都触发告警事件，但不生成告警记录
	assert.Equal(t, counts[models.EventDetection], counts[models.EventSmokeAlert])
	assert.Zero(t, counts[models.EventAlert])

	summary, err := f.alerts.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(10), summary.Total)
}

func TestTickFlame(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)
	sub := f.hub.Subscribe(4096)

	for i := 0; i < 400; i++ {
		f.sim.TickFlame(time.Now())
	}
	events := drain(sub)
	counts := countTypes(events)
	assert.Equal(t, 400, counts[models.EventFlame])
	require.Positive(t, counts[models.EventDetection])

	expectedAlerts := 0
	for _, evt := range events {
		switch evt.Type {
		case models.EventFlame:
			snap := evt.Payload.(models.FlameSnapshot)
			assert.Equal(t, models.FlameRiskLabel(snap.RiskLevel), snap.RiskLabel)
		case models.EventDetection:
			det := evt.Payload.(DetectionEvent).Detection.(models.FlameDetection)
			if det.FlameIntensity >= 80 || det.FlameHeight >= 15 {
				expectedAlerts++
			}
		case models.EventAlert:
			assert.Equal(t, models.AlertTypeFlame, evt.Payload.(models.Alert).Type)
		}
	}
	assert.Equal(t, expectedAlerts, counts[models.EventFlameAlert])
	assert.Equal(t, expectedAlerts, counts[models.EventAlert])

	snap, err := f.sim.LatestFlame()
	require.NoError(t, err)
	assert.False(t, snap.GeneratedAt.IsZero())
}

func TestTickClock(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)
	sub := f.hub.Subscribe(4, models.EventClock)

	now := time.Date(2025, 7, 22, 14, 30, 0, 0, models.Local)
	f.sim.TickClock(now)
	events := drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, now, events[0].Payload.(models.ClockTick).Now)
}

func TestLatestSnapshots(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)

	_, err := f.sim.LatestSmoke()
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	_, err = f.sim.LatestFlame()
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)

	f.sim.TickSmoke(time.Now())
	snap, err := f.sim.LatestSmoke()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, snap.PeakLevel, 0)
}

func TestLatestSmokeFromRedis(t *testing.T) {
	_, redisService := newMiniRedis(t)
	f := newSimulatorFixture(t, nil, redisService)

	cached := models.SmokeSnapshot{CurrentLevel: 61, WindDirection: "东北"}
	require.NoError(t, redisService.CacheSnapshot(FeedSmoke, cached, time.Minute))

	snap, err := f.sim.LatestSmoke()
	require.NoError(t, err)
	assert.Equal(t, 61, snap.CurrentLevel)
	assert.Equal(t, "东北", snap.WindDirection)

	_, err = f.sim.LatestFlame()
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
}

func TestFeedSettings(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)

	smoke := f.sim.SmokeSettings()
	assert.Equal(t, 5, smoke.RefreshInterval)
	assert.Equal(t, 70, smoke.AlertThreshold)
	assert.Equal(t, 10, f.sim.FlameSettings().RefreshInterval)

	smoke.RefreshInterval = 0
	_, err := f.sim.UpdateSmokeSettings(smoke)
	assert.ErrorIs(t, err, ErrSettingsInvalid)

	flame := f.sim.FlameSettings()
	flame.IntensityThreshold = 101
	_, err = f.sim.UpdateFlameSettings(flame)
	assert.ErrorIs(t, err, ErrSettingsInvalid)

	smoke.RefreshInterval = 30
	smoke.AlertThreshold = 60
	updated, err := f.sim.UpdateSmokeSettings(smoke)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.RefreshInterval)
	assert.Equal(t, 60, f.sim.SmokeSettings().AlertThreshold)

	// 未启动时更新设置不会启动数据源
	for _, st := range f.sim.FeedStates() {
		assert.False(t, st.Running, st.Name)
	}
	assert.Equal(t, "30s", f.sim.FeedStates()[1].Interval)
}

func TestStartAndStopFeed(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)

	assert.ErrorIs(t, f.sim.StartFeed("weather"), ErrFeedNotFound)
	assert.ErrorIs(t, f.sim.StopFeed("weather"), ErrFeedNotFound)

	require.NoError(t, f.sim.StartFeed(FeedClock))
	assert.Eventually(t, func() bool {
		return f.sim.FeedStates()[0].Ticks > 0
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, f.sim.StopFeed(FeedClock))
	st := f.sim.FeedStates()[0]
	assert.False(t, st.Running)
	require.NotNil(t, st.LastTick)
	require.NoError(t, f.sim.StopFeed(FeedClock))
}

func TestStartForwardsToObservers(t *testing.T) {
	mr, redisService := newMiniRedis(t)
	client := &fakeMQTTClient{connected: true}
	f := newSimulatorFixture(t, NewMQTTServiceWithClient(testConfig(), client), redisService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.sim.Start(ctx)
	f.sim.Start(ctx)

	// 启动时每个数据源立即执行一次
	assert.Eventually(t, func() bool {
		return mr.Exists("realtime:smoke") && mr.Exists("realtime:flame")
	}, 3*time.Second, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		for _, msg := range client.messages() {
			if msg.Topic == "straw/realtime/smoke" {
				return true
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)
	for _, msg := range client.messages() {
		assert.NotEqual(t, "straw/realtime/clock", msg.Topic)
	}

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(f.metrics.RealtimeEvents.WithLabelValues(models.EventSmoke)) >= 1
	}, 3*time.Second, 20*time.Millisecond)

	for _, st := range f.sim.FeedStates() {
		assert.True(t, st.Running, st.Name)
	}

	f.sim.Stop()
	for _, st := range f.sim.FeedStates() {
		assert.False(t, st.Running, st.Name)
	}
	assert.Zero(t, f.hub.SubscriberCount())
}

func TestOnAlertListeners(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)
	sub := f.hub.Subscribe(4096, models.EventAlert)

	var raised []models.Alert
	f.sim.OnAlert(func(alert models.Alert) { raised = append(raised, alert) })

	base := time.Date(2025, 7, 22, 15, 0, 0, 0, models.Local)
	for i := 0; i < 300; i++ {
		f.sim.TickSmoke(base.Add(time.Duration(i) * 5 * time.Second))
	}
	events := drain(sub)
	require.NotEmpty(t, events)
	require.Len(t, raised, len(events))
	for i, evt := range events {
		assert.Equal(t, evt.Payload.(models.Alert).ID, raised[i].ID)
	}
}

func TestStartFeedAfterStop(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.sim.Start(ctx)
	f.sim.Stop()

	// 停止后单独启动的数据源应持续运行
	require.NoError(t, f.sim.StartFeed(FeedClock))
	t.Cleanup(func() { _ = f.sim.StopFeed(FeedClock) })
	ticks := f.sim.FeedStates()[0].Ticks
	assert.Eventually(t, func() bool {
		return f.sim.FeedStates()[0].Ticks >= ticks+2
	}, 3*time.Second, 20*time.Millisecond)
	assert.True(t, f.sim.FeedStates()[0].Running)
}

func TestFeedStopsWithParentContext(t *testing.T) {
	f := newSimulatorFixture(t, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	f.sim.feeds[FeedClock].start(ctx)
	require.True(t, f.sim.FeedStates()[0].Running)

	cancel()
	assert.Eventually(t, func() bool {
		return !f.sim.FeedStates()[0].Running
	}, time.Second, 10*time.Millisecond)
}
