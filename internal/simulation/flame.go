package simulation

import (
	"math"
	"time"

	"straw-monitor-service/models"
)

// FlameState 火焰面板的连续状态，每次 Step 在上一帧基础上小幅变化
type FlameState struct {
	Temperature     float64
	Intensity       float64
	DetectionRadius float64
	WindSpeed       float64
	WindDirection   string
	Humidity        float64
	AirPressure     float64
	Visibility      float64
	Risk            float64
	ActiveDetectors int
	TotalDetectors  int
}

// InitialFlameState 火焰面板初始状态
func InitialFlameState() FlameState {
	return FlameState{
		Temperature:     120,
		Intensity:       35,
		DetectionRadius: 500,
		WindSpeed:       2.5,
		WindDirection:   "东风",
		Humidity:        55,
		AirPressure:     1013,
		Visibility:      2000,
		Risk:            30,
		ActiveDetectors: 9,
		TotalDetectors:  10,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// StepFlame 在 s 的基础上走一步，返回新状态，s 本身不变
func (g *Generator) StepFlame(s FlameState) FlameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	delta := func(width float64) float64 {
		return (g.rng.Float64() - 0.5) * width
	}

	next := s
	next.Temperature = clamp(s.Temperature+delta(10), 50, 250)
	next.Intensity = clamp(s.Intensity+delta(15), 0, 100)
	next.WindSpeed = clamp(round1(s.WindSpeed+delta(1)), 0.5, 12)
	next.Humidity = clamp(s.Humidity+delta(5), 20, 80)
	next.Risk = clamp(s.Risk+delta(8), 0, 100)

	if g.rng.Float64() < 0.1 {
		next.WindDirection = WindDirections[g.intn(len(WindDirections))]
	}
	return next
}

// Snapshot 把连续状态取整为对外展示的快照
func (s FlameState) Snapshot(now time.Time) models.FlameSnapshot {
	risk := int(math.Round(s.Risk))
	return models.FlameSnapshot{
		CurrentTemperature: int(math.Round(s.Temperature)),
		FlameIntensity:     int(math.Round(s.Intensity)),
		DetectionRadius:    int(math.Round(s.DetectionRadius)),
		WindSpeed:          s.WindSpeed,
		WindDirection:      s.WindDirection,
		Humidity:           int(math.Round(s.Humidity)),
		AirPressure:        int(math.Round(s.AirPressure)),
		Visibility:         int(math.Round(s.Visibility)),
		RiskLevel:          risk,
		RiskLabel:          models.FlameRiskLabel(risk),
		ActiveDetectors:    s.ActiveDetectors,
		TotalDetectors:     s.TotalDetectors,
		GeneratedAt:        now,
	}
}
