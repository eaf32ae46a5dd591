package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(t *testing.T) InterfaceDashboardService {
	db := newTestDB(t)
	cfg := testConfig()
	users := NewUserService(db, cfg, NewJWTService(cfg), newCaptchaService(0, nil))
	devices := NewDeviceService(db, cfg, NewMQTTService(cfg))
	return NewDashboardService(db, cfg, devices, NewAlertService(db, cfg, users))
}

func TestDashboardOverview(t *testing.T) {
	overview, err := newDashboardService(t).GetOverview()
	require.NoError(t, err)

	stats := overview.Statistics
	assert.Equal(t, int64(12), stats.TotalDevices)
	assert.Equal(t, int64(9), stats.OnlineDevices)
	assert.Equal(t, int64(10), stats.TotalAlerts)
	assert.Equal(t, int64(5), stats.ActiveAlerts)
	assert.Equal(t, int64(4), stats.ResolvedAlerts)
	assert.Equal(t, int64(1), stats.FalseAlarms)
	// 基线数据
	assert.Equal(t, 15.0, stats.AverageResponseTime)
	assert.Equal(t, 94.0, stats.DetectionAccuracy)

	assert.Equal(t, 75, overview.SystemHealth)
	assert.Equal(t, 50.0, overview.AlertRate)

	require.Len(t, overview.RecentAlerts, 5)
	ids := make([]string, 0, 5)
	for _, a := range overview.RecentAlerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"alert001", "alert004", "alert003", "alert002", "alert007"}, ids)
}

func TestDashboardDevices(t *testing.T) {
	s := newDashboardService(t)

	devices, err := s.GetDevices(DashboardDeviceFilter{})
	require.NoError(t, err)
	assert.Len(t, devices, 12)

	online, err := s.GetDevices(DashboardDeviceFilter{Status: "online", Search: "北湖"})
	require.NoError(t, err)
	assert.Len(t, online, 3)
}
