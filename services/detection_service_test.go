package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func newDetectionService(t *testing.T) *DetectionService {
	return NewDetectionService(newTestDB(t), testConfig()).(*DetectionService)
}

func TestSmokeDetectionFilters(t *testing.T) {
	s := newDetectionService(t)

	all, total, err := s.GetSmokeDetections(SmokeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Equal(t, "smoke001", all[0].ID)

	cases := []struct {
		level string
		want  int64
	}{
		{"high", 3},
		{"medium", 3},
		{"low", 2},
		{"all", 8},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			detections, total, err := s.GetSmokeDetections(SmokeFilter{Level: tc.level})
			require.NoError(t, err)
			assert.Equal(t, tc.want, total)
			assert.Len(t, detections, int(tc.want))
		})
	}

	thermal, _, err := s.GetSmokeDetections(SmokeFilter{Search: "热成像"})
	require.NoError(t, err)
	assert.Len(t, thermal, 2)

	warning, _, err := s.GetSmokeDetections(SmokeFilter{Status: "warning", Level: "medium"})
	require.NoError(t, err)
	assert.Len(t, warning, 2)
}

func TestSmokeStats(t *testing.T) {
	s := newDetectionService(t)

	stats, err := s.GetSmokeStats()
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.Total)
	assert.Equal(t, 92, stats.MaxLevel)
	assert.Equal(t, 57.3, stats.AverageLevel)
	assert.Equal(t, int64(3), stats.ByStatus[models.SmokeStatusNormal])
	assert.Equal(t, int64(2), stats.ByStatus[models.SmokeStatusWarning])
	assert.Equal(t, int64(2), stats.ByStatus[models.SmokeStatusAlert])
	assert.Equal(t, int64(1), stats.ByStatus[models.SmokeStatusCritical])

	_, err = s.GetSmokeDetectionByID("smoke999")
	assert.ErrorIs(t, err, ErrDetectionNotFound)
	detection, err := s.GetSmokeDetectionByID("smoke005")
	require.NoError(t, err)
	assert.Equal(t, 92, detection.SmokeLevel)
}

func TestFlameDetectionFilters(t *testing.T) {
	s := newDetectionService(t)

	_, total, err := s.GetFlameDetections(FlameFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	high, _, err := s.GetFlameDetections(FlameFilter{Intensity: "high"})
	require.NoError(t, err)
	assert.Len(t, high, 3)
	medium, _, err := s.GetFlameDetections(FlameFilter{Intensity: "medium"})
	require.NoError(t, err)
	assert.Len(t, medium, 2)
	low, _, err := s.GetFlameDetections(FlameFilter{Intensity: "low"})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "flame005", low[0].ID)

	byDevice, _, err := s.GetFlameDetections(FlameFilter{DeviceID: "thermal001"})
	require.NoError(t, err)
	assert.Len(t, byDevice, 2)

	spreading, _, err := s.GetFlameDetections(FlameFilter{Status: "spreading"})
	require.NoError(t, err)
	assert.Len(t, spreading, 2)
}

func TestFlameStats(t *testing.T) {
	s := newDetectionService(t)

	stats, err := s.GetFlameStats()
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(3), stats.HighIntensity)
	assert.Equal(t, models.IntensityDistribution{Low: 0, Medium: 3, High: 3}, stats.IntensityDistribution)
	assert.Equal(t, int64(2), stats.ByStatus[models.FlameStatusDetected])
	assert.Equal(t, int64(1), stats.ByStatus[models.FlameStatusExtinguished])

	_, err = s.GetFlameDetectionByID("flame999")
	assert.ErrorIs(t, err, ErrDetectionNotFound)
}

func TestRecordSmokePrunesOnlySimulated(t *testing.T) {
	s := newDetectionService(t)
	s.Config.SimHistoryLimit = 3

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordSmoke(&models.SmokeDetection{
			ID:         fmt.Sprintf("sim_smoke_%d", i),
			DeviceID:   "sensor001",
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
			SmokeLevel: 30,
			Status:     models.SmokeStatusNormal,
		}))
	}

	var simulated []string
	require.NoError(t, s.DB.Model(&models.SmokeDetection{}).Where("simulated = ?", true).
		Order("id ASC").Pluck("id", &simulated).Error)
	assert.Equal(t, []string{"sim_smoke_2", "sim_smoke_3", "sim_smoke_4"}, simulated)

	_, total, err := s.GetSmokeDetections(SmokeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
}

func TestRecordFlameMarksSimulated(t *testing.T) {
	s := newDetectionService(t)

	detection := &models.FlameDetection{
		ID:             "sim_flame_1",
		DeviceID:       "thermal002",
		Timestamp:      time.Now(),
		FlameIntensity: 85,
		Status:         models.FlameStatusDetected,
	}
	require.NoError(t, s.RecordFlame(detection))
	assert.True(t, detection.Simulated)

	stored, err := s.GetFlameDetectionByID("sim_flame_1")
	require.NoError(t, err)
	assert.True(t, stored.Simulated)
	assert.Equal(t, 85, stored.FlameIntensity)
}
