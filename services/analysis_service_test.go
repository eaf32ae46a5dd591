package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisService(t *testing.T) InterfaceAnalysisService {
	db := newTestDB(t)
	cfg := testConfig()
	return NewAnalysisService(db, cfg, NewAreaService(db, cfg))
}

func namedValues(items []NamedCount) map[string]int64 {
	out := make(map[string]int64, len(items))
	for _, item := range items {
		out[item.Key] = item.Value
	}
	return out
}

func TestAnalysisOverviewAllAreas(t *testing.T) {
	overview, err := newAnalysisService(t).GetOverview(AnalysisFilter{})
	require.NoError(t, err)

	assert.Empty(t, overview.Area)
	assert.Equal(t, AnalysisTotals{Alerts: 10, SmokeDetections: 8, FlameDetections: 6, RecognitionEvents: 12, HighRiskAreas: 1}, overview.Totals)

	require.Len(t, overview.AlertTypes, 6)
	assert.Equal(t, "smoke", overview.AlertTypes[0].Key)
	assert.Equal(t, "烟雾告警", overview.AlertTypes[0].Name)
	assert.Equal(t, "system", overview.AlertTypes[5].Key)
	types := namedValues(overview.AlertTypes)
	assert.Equal(t, int64(3), types["smoke"])
	assert.Equal(t, int64(3), types["flame"])
	assert.Equal(t, int64(1), types["machinery"])

	require.Len(t, overview.DeviceStatus, 4)
	status := namedValues(overview.DeviceStatus)
	assert.Equal(t, int64(9), status["online"])
	assert.Equal(t, int64(1), status["fault"])

	assert.Len(t, overview.AreaRisks, 5)

	require.Len(t, overview.HourlyTrend, 12)
	assert.Equal(t, "00:00", overview.HourlyTrend[0].Label)
	assert.Equal(t, "14:00", overview.HourlyTrend[7].Label)
	assert.Equal(t, TrendPoint{Label: "14:00", Alerts: 5, Smoke: 6, Flame: 4}, overview.HourlyTrend[7])
	assert.Equal(t, TrendPoint{Label: "12:00", Alerts: 5, Smoke: 2, Flame: 2}, overview.HourlyTrend[6])

	assert.Equal(t, 2025, overview.Year)
	require.Len(t, overview.MonthlyTrend, 12)
	assert.Equal(t, TrendPoint{Label: "7月", Alerts: 10, Smoke: 8, Flame: 6}, overview.MonthlyTrend[6])
	assert.Zero(t, overview.MonthlyTrend[0].Alerts)
}

func TestAnalysisOverviewSingleArea(t *testing.T) {
	s := newAnalysisService(t)

	overview, err := s.GetOverview(AnalysisFilter{Area: "太平镇田间地头"})
	require.NoError(t, err)
	assert.Equal(t, "太平镇田间地头", overview.Area)
	assert.Equal(t, int64(4), overview.Totals.Alerts)
	assert.Equal(t, int64(2), overview.Totals.SmokeDetections)
	assert.Equal(t, int64(2), overview.Totals.FlameDetections)
	assert.Equal(t, int64(1), overview.Totals.HighRiskAreas)

	types := namedValues(overview.AlertTypes)
	assert.Equal(t, int64(2), types["flame"])
	assert.Equal(t, int64(1), types["smoke"])
	assert.Zero(t, types["person"])

	assert.Equal(t, int64(3), namedValues(overview.DeviceStatus)["online"])

	require.Len(t, overview.AreaRisks, 1)
	assert.Equal(t, AreaRisk{Name: "太平镇田间地头", RiskLevel: "high", DeviceCount: 3, AlertCount: 4}, overview.AreaRisks[0])

	lowRisk, err := s.GetOverview(AnalysisFilter{Area: "城前镇麦田区域"})
	require.NoError(t, err)
	assert.Zero(t, lowRisk.Totals.Alerts)
	assert.Zero(t, lowRisk.Totals.HighRiskAreas)

	_, err = s.GetOverview(AnalysisFilter{Area: "不存在的区域"})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}
