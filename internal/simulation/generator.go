package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"straw-monitor-service/models"
)

// 风向
var (
	WindDirections     = []string{"北风", "东北风", "东风", "东南风", "南风", "西南风", "西风", "西北风"}
	SmokeDetectionWind = WindDirections[:4]
)

// Generator 模拟数据生成器，并发安全
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator 创建生成器，seed 为 0 时使用当前时间
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)|1))}
}

// intn 返回 [0, n)
func (g *Generator) intn(n int) int {
	return g.rng.IntN(n)
}

// between 返回 [lo, lo+span)
func (g *Generator) between(lo, span int) int {
	return lo + g.rng.IntN(span)
}

// round1 保留一位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Chance 以概率 p 返回 true
func (g *Generator) Chance(p float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < p
}

// SmokeSnapshot 生成一帧烟雾实时面板数据，各项独立取值
func (g *Generator) SmokeSnapshot(now time.Time) models.SmokeSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return models.SmokeSnapshot{
		CurrentLevel:  g.intn(100),
		AverageLevel:  g.between(20, 50),
		PeakLevel:     g.between(70, 30),
		AffectedArea:  g.between(100, 500),
		WindSpeed:     round1(g.rng.Float64()*5 + 1),
		WindDirection: WindDirections[g.intn(len(WindDirections))],
		Temperature:   g.between(15, 15),
		Humidity:      g.between(40, 40),
		AirQuality:    g.between(50, 100),
		Visibility:    g.between(1000, 5000),
		GeneratedAt:   now,
	}
}

// jitter 在中心坐标附近 ±0.05 度随机偏移
func (g *Generator) jitter() models.Coordinates {
	return models.Coordinates{
		Latitude:  models.DefaultCoordinates.Latitude + (g.rng.Float64()-0.5)*0.1,
		Longitude: models.DefaultCoordinates.Longitude + (g.rng.Float64()-0.5)*0.1,
	}
}

// SmokeDetection 生成一条模拟烟雾检测记录
func (g *Generator) SmokeDetection(id string, now time.Time) models.SmokeDetection {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.between(1, 3)
	status := models.SmokeStatusNormal
	if g.rng.Float64() >= 0.7 {
		if g.rng.Float64() < 0.5 {
			status = models.SmokeStatusWarning
		} else {
			status = models.SmokeStatusAlert
		}
	}

	return models.SmokeDetection{
		ID:            id,
		DeviceID:      fmt.Sprintf("sensor00%d", n),
		DeviceName:    fmt.Sprintf("环境监测传感器-0%d", n),
		Timestamp:     now,
		SmokeLevel:    g.intn(100),
		SmokeArea:     g.between(100, 500),
		WindDirection: SmokeDetectionWind[g.intn(len(SmokeDetectionWind))],
		WindSpeed:     round1(g.rng.Float64()*5 + 1),
		Temperature:   float64(g.between(15, 15)),
		Humidity:      float64(g.between(40, 40)),
		Coordinates:   g.jitter(),
		Status:        status,
		Simulated:     true,
	}
}

// FlameDetection 生成一条模拟火焰检测记录
func (g *Generator) FlameDetection(id string, now time.Time) models.FlameDetection {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.between(1, 3)
	status := models.FlameStatusExtinguished
	if g.rng.Float64() >= 0.6 {
		if g.rng.Float64() < 0.4 {
			status = models.FlameStatusControlled
		} else {
			status = models.FlameStatusDetected
		}
	}
	area := g.between(200, 1000)

	return models.FlameDetection{
		ID:              id,
		DeviceID:        fmt.Sprintf("thermal00%d", n),
		DeviceName:      fmt.Sprintf("红外热成像仪-0%d", n),
		Timestamp:       now,
		FlameSize:       float64(g.between(100, 500)),
		FlameIntensity:  g.intn(100),
		FlameHeight:     float64(g.between(5, 20)),
		SpreadSpeed:     float64(g.between(10, 50)),
		Temperature:     float64(g.between(50, 150)),
		Humidity:        float64(g.between(30, 50)),
		DetectionRadius: g.between(300, 300),
		WindDirection:   WindDirections[g.intn(len(WindDirections))],
		WindSpeed:       round1(g.rng.Float64()*5 + 1),
		LastUpdate:      now,
		Coordinates:     g.jitter(),
		Status:          status,
		EstimatedArea:   &area,
		Simulated:       true,
	}
}
