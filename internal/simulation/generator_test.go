package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func TestSmokeSnapshotRanges(t *testing.T) {
	g := NewGenerator(42)
	now := time.Date(2024, 10, 15, 14, 0, 0, 0, models.Local)

	for i := 0; i < 200; i++ {
		s := g.SmokeSnapshot(now)
		assert.GreaterOrEqual(t, s.CurrentLevel, 0)
		assert.Less(t, s.CurrentLevel, 100)
		assert.GreaterOrEqual(t, s.AverageLevel, 20)
		assert.Less(t, s.AverageLevel, 70)
		assert.GreaterOrEqual(t, s.PeakLevel, 70)
		assert.Less(t, s.PeakLevel, 100)
		assert.GreaterOrEqual(t, s.WindSpeed, 1.0)
		assert.LessOrEqual(t, s.WindSpeed, 6.0)
		assert.Contains(t, WindDirections, s.WindDirection)
		assert.GreaterOrEqual(t, s.Visibility, 1000)
		assert.Less(t, s.Visibility, 6000)
		assert.Equal(t, now, s.GeneratedAt)
	}
}

func TestSmokeDetection(t *testing.T) {
	g := NewGenerator(7)
	now := models.Now()

	statuses := map[models.SmokeStatus]int{}
	for i := 0; i < 300; i++ {
		d := g.SmokeDetection("smoke_1", now)
		require.Equal(t, "smoke_1", d.ID)
		assert.True(t, d.Simulated)
		assert.Contains(t, []string{"sensor001", "sensor002", "sensor003"}, d.DeviceID)
		assert.Contains(t, SmokeDetectionWind, d.WindDirection)
		assert.InDelta(t, models.DefaultCoordinates.Latitude, d.Coordinates.Latitude, 0.05)
		assert.InDelta(t, models.DefaultCoordinates.Longitude, d.Coordinates.Longitude, 0.05)
		statuses[d.Status]++
	}
	// 正常约占七成
	assert.Greater(t, statuses[models.SmokeStatusNormal], statuses[models.SmokeStatusWarning])
	assert.Greater(t, statuses[models.SmokeStatusNormal], statuses[models.SmokeStatusAlert])
}

func TestFlameDetection(t *testing.T) {
	g := NewGenerator(7)
	now := models.Now()

	for i := 0; i < 200; i++ {
		d := g.FlameDetection("flame_1", now)
		assert.True(t, d.Simulated)
		assert.Contains(t, []string{"thermal001", "thermal002", "thermal003"}, d.DeviceID)
		assert.GreaterOrEqual(t, d.Temperature, 50.0)
		assert.Less(t, d.Temperature, 200.0)
		require.NotNil(t, d.EstimatedArea)
		assert.GreaterOrEqual(t, *d.EstimatedArea, 200)
		assert.Less(t, *d.EstimatedArea, 1200)
		assert.Contains(t, []models.FlameStatus{
			models.FlameStatusDetected, models.FlameStatusControlled, models.FlameStatusExtinguished,
		}, d.Status)
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	now := models.Now()
	a := NewGenerator(2024)
	b := NewGenerator(2024)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.SmokeSnapshot(now), b.SmokeSnapshot(now))
		assert.Equal(t, a.FlameDetection("x", now), b.FlameDetection("x", now))
	}
}

func TestStepFlameStaysInBounds(t *testing.T) {
	g := NewGenerator(99)
	state := InitialFlameState()
	start := state

	for i := 0; i < 5000; i++ {
		next := g.StepFlame(state)
		assert.InDelta(t, state.Temperature, next.Temperature, 5.0)
		assert.InDelta(t, state.Intensity, next.Intensity, 7.5)
		state = next

		require.GreaterOrEqual(t, state.Temperature, 50.0)
		require.LessOrEqual(t, state.Temperature, 250.0)
		require.GreaterOrEqual(t, state.Intensity, 0.0)
		require.LessOrEqual(t, state.Intensity, 100.0)
		require.GreaterOrEqual(t, state.WindSpeed, 0.5)
		require.LessOrEqual(t, state.WindSpeed, 12.0)
		require.GreaterOrEqual(t, state.Humidity, 20.0)
		require.LessOrEqual(t, state.Humidity, 80.0)
		require.GreaterOrEqual(t, state.Risk, 0.0)
		require.LessOrEqual(t, state.Risk, 100.0)
	}

	// 不变量
	assert.Equal(t, start.DetectionRadius, state.DetectionRadius)
	assert.Equal(t, start.TotalDetectors, state.TotalDetectors)
	assert.Equal(t, InitialFlameState(), start)
}

func TestFlameStateSnapshot(t *testing.T) {
	now := models.Now()
	s := InitialFlameState()
	s.Risk = 84.6
	s.Temperature = 119.5

	snap := s.Snapshot(now)
	assert.Equal(t, 85, snap.RiskLevel)
	assert.Equal(t, "极高", snap.RiskLabel)
	assert.Equal(t, 120, snap.CurrentTemperature)
	assert.Equal(t, 9, snap.ActiveDetectors)
	assert.Equal(t, 10, snap.TotalDetectors)
	assert.Equal(t, now, snap.GeneratedAt)
}

func TestChance(t *testing.T) {
	g := NewGenerator(1)
	for i := 0; i < 50; i++ {
		assert.False(t, g.Chance(0))
		assert.True(t, g.Chance(1))
	}
}
