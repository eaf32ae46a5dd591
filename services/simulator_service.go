package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/internal/metrics"
	"straw-monitor-service/internal/simulation"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/idgen"
	"straw-monitor-service/pkg/logger"
)

// 实时数据源
const (
	FeedClock = "clock"
	FeedSmoke = "smoke"
	FeedFlame = "flame"
)

const (
	smokeDetectionChance = 0.3
	flameDetectionChance = 0.05
	flameHeightAlert     = 15
	observerBuffer       = 64
)

// FeedState 实时数据源运行状态
type FeedState struct {
	Name     string     `json:"name"`
	Running  bool       `json:"running"`
	Interval string     `json:"interval"`
	Ticks    int64      `json:"ticks"`
	LastTick *time.Time `json:"last_tick,omitempty"`
}

// DetectionEvent 新增检测记录事件
type DetectionEvent struct {
	Feed      string      `json:"feed"`
	Detection interface{} `json:"detection"`
}

// InterfaceSimulatorService 定义实时模拟服务接口
type InterfaceSimulatorService interface {
	Start(ctx context.Context)
	Stop()
	StartFeed(name string) error
	StopFeed(name string) error
	FeedStates() []FeedState

	SmokeSettings() models.SmokeFeedSettings
	UpdateSmokeSettings(settings models.SmokeFeedSettings) (models.SmokeFeedSettings, error)
	FlameSettings() models.FlameFeedSettings
	UpdateFlameSettings(settings models.FlameFeedSettings) (models.FlameFeedSettings, error)

	LatestSmoke() (*models.SmokeSnapshot, error)
	LatestFlame() (*models.FlameSnapshot, error)

	TickClock(now time.Time)
	TickSmoke(now time.Time)
	TickFlame(now time.Time)

	OnAlert(fn func(alert models.Alert))
}

// feed 一个按固定间隔运行的数据源
type feed struct {
	name     string
	tick     func(time.Time)
	interval *atomic.Duration
	running  *atomic.Bool
	ticks    *atomic.Int64
	lastTick *atomic.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func newFeed(name string, interval time.Duration, tick func(time.Time)) *feed {
	return &feed{
		name:     name,
		tick:     tick,
		interval: atomic.NewDuration(interval),
		running:  atomic.NewBool(false),
		ticks:    atomic.NewInt64(0),
		lastTick: atomic.NewTime(time.Time{}),
	}
}

func (f *feed) start(parent context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running.Load() {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	f.cancel, f.done = cancel, done
	f.running.Store(true)
	interval := f.interval.Load()

	go func() {
		defer close(done)
		// 上级 ctx 结束时同样标记为停止
		defer f.running.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		f.run(models.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.run(models.Now())
			}
		}
	}()
}

func (f *feed) run(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("实时数据源 %s 执行异常: %v", f.name, r)
		}
	}()
	f.tick(now)
	f.ticks.Inc()
	f.lastTick.Store(now)
}

func (f *feed) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running.Load() {
		return
	}
	f.cancel()
	<-f.done
	f.running.Store(false)
}

func (f *feed) state() FeedState {
	st := FeedState{
		Name:     f.name,
		Running:  f.running.Load(),
		Interval: f.interval.Load().String(),
		Ticks:    f.ticks.Load(),
	}
	if last := f.lastTick.Load(); !last.IsZero() {
		st.LastTick = &last
	}
	return st
}

// SimulatorService 模拟烟雾、火焰和时钟数据，发布到实时事件中心
type SimulatorService struct {
	DB         *gorm.DB
	Config     *config.Config
	Hub        InterfaceRealtimeHub
	Detections InterfaceDetectionService
	Alerts     InterfaceAlertService
	Devices    InterfaceDeviceService
	MQTT       InterfaceMQTTService
	Redis      InterfaceRedisService
	Metrics    *metrics.Metrics

	gen   *simulation.Generator
	feeds map[string]*feed

	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	flameState simulation.FlameState
	smokeCfg   models.SmokeFeedSettings
	flameCfg   models.FlameFeedSettings
	autoAlert  *atomic.Bool
	started    *atomic.Bool
	onAlert    []func(models.Alert)
}

// SimulatorDeps 实时模拟服务依赖
type SimulatorDeps struct {
	Hub        InterfaceRealtimeHub
	Detections InterfaceDetectionService
	Alerts     InterfaceAlertService
	Devices    InterfaceDeviceService
	Settings   InterfaceSettingsService
	MQTT       InterfaceMQTTService
	Redis      InterfaceRedisService
	Metrics    *metrics.Metrics
}

// NewSimulatorService 创建实时模拟服务，告警阈值取自系统设置并随设置变更
func NewSimulatorService(db *gorm.DB, cfg *config.Config, deps SimulatorDeps) InterfaceSimulatorService {
	s := &SimulatorService{
		DB:         db,
		Config:     cfg,
		Hub:        deps.Hub,
		Detections: deps.Detections,
		Alerts:     deps.Alerts,
		Devices:    deps.Devices,
		MQTT:       deps.MQTT,
		Redis:      deps.Redis,
		Metrics:    deps.Metrics,
		gen:        simulation.NewGenerator(cfg.SimSeed),
		flameState: simulation.InitialFlameState(),
		autoAlert:  atomic.NewBool(true),
		started:    atomic.NewBool(false),
		smokeCfg: models.SmokeFeedSettings{
			AutoRefresh:     true,
			RefreshInterval: seconds(cfg.SimSmokeInterval, 5),
			AlertThreshold:  70,
			MonitoringMode:  "auto",
		},
		flameCfg: models.FlameFeedSettings{
			AutoRefresh:          true,
			RefreshInterval:      seconds(cfg.SimFlameInterval, 10),
			TemperatureThreshold: 150,
			IntensityThreshold:   80,
			MonitoringMode:       "auto",
		},
	}
	s.feeds = map[string]*feed{
		FeedClock: newFeed(FeedClock, time.Second, s.TickClock),
		FeedSmoke: newFeed(FeedSmoke, time.Duration(s.smokeCfg.RefreshInterval)*time.Second, s.TickSmoke),
		FeedFlame: newFeed(FeedFlame, time.Duration(s.flameCfg.RefreshInterval)*time.Second, s.TickFlame),
	}

	if deps.Settings != nil {
		if settings, err := deps.Settings.GetSettings(); err != nil {
			logger.Warning("读取系统设置失败，使用默认告警阈值: %v", err)
		} else {
			s.applySettings(*settings)
		}
		deps.Settings.OnChange(s.applySettings)
	}
	return s
}

func seconds(d time.Duration, fallback int) int {
	if d < time.Second {
		return fallback
	}
	return int(d / time.Second)
}

// applySettings 同步系统设置中的告警阈值和自动告警开关
func (s *SimulatorService) applySettings(settings models.SystemSettings) {
	s.mu.Lock()
	s.smokeCfg.AlertThreshold = settings.AlertThresholds.SmokeLevel
	s.flameCfg.IntensityThreshold = settings.AlertThresholds.FlameIntensity
	s.mu.Unlock()
	s.autoAlert.Store(settings.Notifications.AutoAlert)
}

// 1 Start 启动观察者和所有数据源
func (s *SimulatorService) Start(ctx context.Context) {
	if !s.started.CAS(false, true) {
		return
	}
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.startObservers(s.ctx)
	for _, name := range []string{FeedClock, FeedSmoke, FeedFlame} {
		if name == FeedSmoke && !s.SmokeSettings().AutoRefresh {
			continue
		}
		if name == FeedFlame && !s.FlameSettings().AutoRefresh {
			continue
		}
		s.feeds[name].start(s.ctx)
	}
	logger.Info("实时模拟已启动: smoke=%ds flame=%ds", s.SmokeSettings().RefreshInterval, s.FlameSettings().RefreshInterval)
}

// 2 Stop 停止所有数据源并等待观察者退出
func (s *SimulatorService) Stop() {
	if !s.started.CAS(true, false) {
		return
	}
	for _, f := range s.feeds {
		f.stop()
	}
	s.mu.Lock()
	s.cancel()
	s.ctx, s.cancel = nil, nil
	s.mu.Unlock()
	s.wg.Wait()
	logger.Info("实时模拟已停止")
}

func (s *SimulatorService) rootContext() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// 3 StartFeed 启动单个数据源
func (s *SimulatorService) StartFeed(name string) error {
	f, ok := s.feeds[name]
	if !ok {
		return ErrFeedNotFound
	}
	f.start(s.rootContext())
	return nil
}

// 4 StopFeed 停止单个数据源
func (s *SimulatorService) StopFeed(name string) error {
	f, ok := s.feeds[name]
	if !ok {
		return ErrFeedNotFound
	}
	f.stop()
	return nil
}

// 5 FeedStates 数据源运行状态
func (s *SimulatorService) FeedStates() []FeedState {
	states := make([]FeedState, 0, len(s.feeds))
	for _, name := range []string{FeedClock, FeedSmoke, FeedFlame} {
		states = append(states, s.feeds[name].state())
	}
	return states
}

// reschedule 按新的间隔重启或停止数据源，其他数据源不受影响
func (s *SimulatorService) reschedule(name string, autoRefresh bool, interval time.Duration) {
	f := s.feeds[name]
	wasRunning := f.running.Load()
	f.stop()
	f.interval.Store(interval)
	if autoRefresh && (wasRunning || s.started.Load()) {
		f.start(s.rootContext())
	}
}

// 6 SmokeSettings 烟雾监测设置
func (s *SimulatorService) SmokeSettings() models.SmokeFeedSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.smokeCfg
}

// 7 UpdateSmokeSettings 更新烟雾监测设置，只重启烟雾数据源
func (s *SimulatorService) UpdateSmokeSettings(settings models.SmokeFeedSettings) (models.SmokeFeedSettings, error) {
	if settings.RefreshInterval < 1 || settings.RefreshInterval > 300 {
		return models.SmokeFeedSettings{}, fmt.Errorf("%w: refresh_interval 范围为 1-300 秒", ErrSettingsInvalid)
	}
	if settings.AlertThreshold < 0 || settings.AlertThreshold > 100 {
		return models.SmokeFeedSettings{}, fmt.Errorf("%w: alert_threshold 范围为 0-100", ErrSettingsInvalid)
	}
	s.mu.Lock()
	s.smokeCfg = settings
	s.mu.Unlock()

	s.reschedule(FeedSmoke, settings.AutoRefresh, time.Duration(settings.RefreshInterval)*time.Second)
	return settings, nil
}

// 8 FlameSettings 火焰监测设置
func (s *SimulatorService) FlameSettings() models.FlameFeedSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flameCfg
}

// 9 UpdateFlameSettings 更新火焰监测设置，只重启火焰数据源
func (s *SimulatorService) UpdateFlameSettings(settings models.FlameFeedSettings) (models.FlameFeedSettings, error) {
	if settings.RefreshInterval < 1 || settings.RefreshInterval > 300 {
		return models.FlameFeedSettings{}, fmt.Errorf("%w: refresh_interval 范围为 1-300 秒", ErrSettingsInvalid)
	}
	if settings.IntensityThreshold < 0 || settings.IntensityThreshold > 100 {
		return models.FlameFeedSettings{}, fmt.Errorf("%w: intensity_threshold 范围为 0-100", ErrSettingsInvalid)
	}
	s.mu.Lock()
	s.flameCfg = settings
	s.mu.Unlock()

	s.reschedule(FeedFlame, settings.AutoRefresh, time.Duration(settings.RefreshInterval)*time.Second)
	return settings, nil
}

// 10 LatestSmoke 最新的烟雾面板数据，进程内没有时读取 Redis 缓存
func (s *SimulatorService) LatestSmoke() (*models.SmokeSnapshot, error) {
	if evt, ok := s.Hub.Latest(models.EventSmoke); ok {
		if snap, ok := evt.Payload.(models.SmokeSnapshot); ok {
			return &snap, nil
		}
	}
	var snap models.SmokeSnapshot
	if s.Redis != nil && s.Redis.GetSnapshot(FeedSmoke, &snap) == nil {
		return &snap, nil
	}
	return nil, ErrSnapshotUnavailable
}

// 11 LatestFlame 最新的火焰面板数据
func (s *SimulatorService) LatestFlame() (*models.FlameSnapshot, error) {
	if evt, ok := s.Hub.Latest(models.EventFlame); ok {
		if snap, ok := evt.Payload.(models.FlameSnapshot); ok {
			return &snap, nil
		}
	}
	var snap models.FlameSnapshot
	if s.Redis != nil && s.Redis.GetSnapshot(FeedFlame, &snap) == nil {
		return &snap, nil
	}
	return nil, ErrSnapshotUnavailable
}

func (s *SimulatorService) publish(eventType string, now time.Time, payload interface{}) {
	s.Hub.Publish(models.RealtimeEvent{Type: eventType, Timestamp: now, Payload: payload})
}

// 12 TickClock 发布服务器时间
func (s *SimulatorService) TickClock(now time.Time) {
	s.publish(models.EventClock, now, models.ClockTick{Now: now})
}

// 13 TickSmoke 生成烟雾面板数据，按概率新增检测记录，超过阈值时告警
func (s *SimulatorService) TickSmoke(now time.Time) {
	s.publish(models.EventSmoke, now, s.gen.SmokeSnapshot(now))
	s.refreshGauges()

	if !s.gen.Chance(smokeDetectionChance) {
		return
	}
	det := s.gen.SmokeDetection(idgen.NewID("smoke"), now)
	if err := s.Detections.RecordSmoke(&det); err != nil {
		logger.Error("保存模拟烟雾检测失败: %v", err)
		return
	}
	if s.Metrics != nil {
		s.Metrics.SimulatedDetections.WithLabelValues(FeedSmoke).Inc()
	}
	s.publish(models.EventDetection, now, DetectionEvent{Feed: FeedSmoke, Detection: det})

	threshold := s.SmokeSettings().AlertThreshold
	if det.SmokeLevel < threshold {
		return
	}
	s.publish(models.EventSmokeAlert, now, det)
	if s.autoAlert.Load() {
		s.raiseAlert(now, &models.Alert{
			Type:        models.AlertTypeSmoke,
			Level:       alertLevelFor(det.SmokeLevel),
			Title:       "烟雾浓度异常",
			Description: fmt.Sprintf("%s检测到烟雾浓度%d%%，超过阈值%d%%", det.DeviceName, det.SmokeLevel, threshold),
			DeviceID:    det.DeviceID,
			DeviceName:  det.DeviceName,
			Coordinates: det.Coordinates,
		})
	}
}

// 14 TickFlame 火焰面板数据随机游走，按概率新增检测记录
func (s *SimulatorService) TickFlame(now time.Time) {
	s.mu.Lock()
	s.flameState = s.gen.StepFlame(s.flameState)
	snap := s.flameState.Snapshot(now)
	s.mu.Unlock()
	s.publish(models.EventFlame, now, snap)

	if !s.gen.Chance(flameDetectionChance) {
		return
	}
	det := s.gen.FlameDetection(idgen.NewID("flame"), now)
	if err := s.Detections.RecordFlame(&det); err != nil {
		logger.Error("保存模拟火焰检测失败: %v", err)
		return
	}
	if s.Metrics != nil {
		s.Metrics.SimulatedDetections.WithLabelValues(FeedFlame).Inc()
	}
	s.publish(models.EventDetection, now, DetectionEvent{Feed: FeedFlame, Detection: det})

	threshold := s.FlameSettings().IntensityThreshold
	if det.FlameIntensity < threshold && det.FlameHeight < flameHeightAlert {
		return
	}
	s.publish(models.EventFlameAlert, now, det)
	if s.autoAlert.Load() {
		s.raiseAlert(now, &models.Alert{
			Type:        models.AlertTypeFlame,
			Level:       alertLevelFor(det.FlameIntensity),
			Title:       "火焰检测告警",
			Description: fmt.Sprintf("%s检测到火焰，强度%d，高度%.0f米", det.DeviceName, det.FlameIntensity, det.FlameHeight),
			DeviceID:    det.DeviceID,
			DeviceName:  det.DeviceName,
			Coordinates: det.Coordinates,
		})
	}
}

// raiseAlert 保存自动告警，位置取自设备档案
func (s *SimulatorService) raiseAlert(now time.Time, alert *models.Alert) {
	alert.Timestamp = now
	alert.Location = "邹城市"
	if device, err := s.Devices.GetDeviceByID(alert.DeviceID); err == nil {
		alert.Location = device.Location
	} else if !errors.Is(err, ErrDeviceNotFound) {
		logger.Warning("查询告警设备失败: device=%s err=%v", alert.DeviceID, err)
	}
	if err := s.Alerts.CreateAlert(alert); err != nil {
		logger.Error("保存自动告警失败: %v", err)
		return
	}
	logger.L().Info("自动告警已生成",
		zap.String("alert_id", alert.ID),
		zap.String("type", string(alert.Type)),
		zap.String("level", string(alert.Level)),
	)
	s.publish(models.EventAlert, now, *alert)

	s.mu.RLock()
	listeners := append(([]func(models.Alert))(nil), s.onAlert...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(*alert)
	}
}

// OnAlert 注册自动告警回调
func (s *SimulatorService) OnAlert(fn func(alert models.Alert)) {
	s.mu.Lock()
	s.onAlert = append(s.onAlert, fn)
	s.mu.Unlock()
}

// refreshGauges 刷新在线设备数和活动告警数指标
func (s *SimulatorService) refreshGauges() {
	if s.Metrics == nil {
		return
	}
	var online, active int64
	if err := s.DB.Model(&models.MonitorDevice{}).Where("status = ?", models.DeviceStatusOnline).Count(&online).Error; err == nil {
		s.Metrics.DevicesOnline.Set(float64(online))
	}
	if err := s.DB.Model(&models.Alert{}).Where("status IN ?", activeAlertStatuses).Count(&active).Error; err == nil {
		s.Metrics.ActiveAlerts.Set(float64(active))
	}
}

// startObservers 订阅实时事件，转发到 MQTT、Redis 和 Prometheus
func (s *SimulatorService) startObservers(ctx context.Context) {
	if s.MQTT != nil && s.MQTT.Enabled() {
		s.observe(ctx, "mqtt", func(evt models.RealtimeEvent) {
			if evt.Type == models.EventClock {
				return
			}
			if err := s.MQTT.PublishEvent(evt); err != nil && !errors.Is(err, ErrMQTTDisabled) {
				logger.Warning("实时事件转发MQTT失败: type=%s err=%v", evt.Type, err)
			}
		})
	}

	if s.Redis != nil && s.Redis.Enabled() {
		s.observe(ctx, "redis", func(evt models.RealtimeEvent) {
			err := s.Redis.CacheSnapshot(evt.Type, evt.Payload, s.Config.SnapshotTTL)
			if s.Metrics != nil {
				status := "success"
				if err != nil {
					status = "error"
				}
				s.Metrics.RedisOperations.WithLabelValues("cache_snapshot", status).Inc()
			}
			if err != nil {
				logger.Warning("缓存实时数据失败: feed=%s err=%v", evt.Type, err)
			}
		}, models.EventSmoke, models.EventFlame)
	}

	if s.Metrics != nil {
		s.observe(ctx, "metrics", s.recordMetrics)
	}
}

func (s *SimulatorService) observe(ctx context.Context, name string, handle func(models.RealtimeEvent), types ...string) {
	sub := s.Hub.Subscribe(observerBuffer, types...)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.Hub.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				if dropped := sub.Dropped(); dropped > 0 {
					logger.Warning("实时观察者 %s 丢弃事件 %d 条", name, dropped)
				}
				return
			case evt, ok := <-sub.C:
				if !ok {
					return
				}
				handle(evt)
			}
		}
	}()
}

func (s *SimulatorService) recordMetrics(evt models.RealtimeEvent) {
	s.Metrics.RealtimeEvents.WithLabelValues(evt.Type).Inc()
	switch payload := evt.Payload.(type) {
	case models.SmokeSnapshot:
		s.Metrics.SmokeLevel.Set(float64(payload.CurrentLevel))
	case models.FlameSnapshot:
		s.Metrics.FlameIntensity.Set(float64(payload.FlameIntensity))
		s.Metrics.FlameRisk.Set(float64(payload.RiskLevel))
		s.Metrics.FlameTemperature.Set(float64(payload.CurrentTemperature))
	}
}
