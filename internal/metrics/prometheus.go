package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "straw_monitor"

// Metrics 平台 Prometheus 指标，每个实例使用独立的 Registry
type Metrics struct {
	Registry *prometheus.Registry

	// RequestsTotal HTTP 请求总数
	RequestsTotal *prometheus.CounterVec
	// RequestDuration HTTP 请求耗时
	RequestDuration *prometheus.HistogramVec

	// SmokeLevel 当前烟雾浓度
	SmokeLevel prometheus.Gauge
	// FlameIntensity 当前火焰强度
	FlameIntensity prometheus.Gauge
	// FlameRisk 当前火灾风险指数
	FlameRisk prometheus.Gauge
	// FlameTemperature 当前检测温度
	FlameTemperature prometheus.Gauge
	// DevicesOnline 在线设备数
	DevicesOnline prometheus.Gauge
	// ActiveAlerts 待处理和处理中的告警数
	ActiveAlerts prometheus.Gauge

	// RealtimeEvents 实时事件数
	RealtimeEvents *prometheus.CounterVec
	// SimulatedDetections 模拟生成的检测记录数
	SimulatedDetections *prometheus.CounterVec
	// Notifications 告警通知发送数
	Notifications *prometheus.CounterVec
	// RedisOperations Redis 操作
	RedisOperations *prometheus.CounterVec
}

// New 创建指标集合
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		SmokeLevel: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "smoke_level",
			Help:      "Current smoke level (0-100)",
		}),
		FlameIntensity: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flame_intensity",
			Help:      "Current flame intensity (0-100)",
		}),
		FlameRisk: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flame_risk_level",
			Help:      "Current fire risk level (0-100)",
		}),
		FlameTemperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flame_temperature_celsius",
			Help:      "Current temperature reported by thermal detectors",
		}),
		DevicesOnline: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "devices_online",
			Help:      "Number of online monitoring devices",
		}),
		ActiveAlerts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alerts_active",
			Help:      "Number of pending or processing alerts",
		}),
		RealtimeEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "realtime_events_total",
				Help:      "Total number of realtime events published",
			},
			[]string{"type"},
		),
		SimulatedDetections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "simulated_detections_total",
				Help:      "Total number of simulated detections recorded",
			},
			[]string{"feed"},
		),
		Notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of alert notifications dispatched",
			},
			[]string{"channel", "status"},
		),
		RedisOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redis_operations_total",
				Help:      "Total number of Redis operations",
			},
			[]string{"operation", "status"},
		),
	}
}

// Handler /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
