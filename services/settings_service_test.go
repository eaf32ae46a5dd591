package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func TestGetSettingsSeeded(t *testing.T) {
	s := NewSettingsService(newTestDB(t), testConfig())

	settings, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "auto", settings.MonitoringMode)
	assert.Equal(t, 70, settings.AlertThresholds.SmokeLevel)
	assert.Equal(t, 80, settings.AlertThresholds.FlameIntensity)
	assert.True(t, settings.Notifications.AutoAlert)
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Where("1 = 1").Delete(&models.SystemSettings{}).Error)

	settings, err := NewSettingsService(db, testConfig()).GetSettings()
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.Equal(t, defaultSettings().PlatformName, settings.PlatformName)
	assert.Equal(t, "daily", settings.SystemMaintenance.BackupFrequency)

	var count int64
	require.NoError(t, db.Model(&models.SystemSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateSettingsNotifiesListeners(t *testing.T) {
	s := NewSettingsService(newTestDB(t), testConfig())

	var seen []models.SystemSettings
	s.OnChange(func(settings models.SystemSettings) { seen = append(seen, settings) })

	settings := defaultSettings()
	settings.AlertThresholds.SmokeLevel = 55
	settings.Notifications.AutoAlert = false
	settings.MonitoringMode = "manual"

	saved, err := s.UpdateSettings(settings)
	require.NoError(t, err)
	assert.Equal(t, 55, saved.AlertThresholds.SmokeLevel)
	assert.False(t, saved.Notifications.AutoAlert)
	assert.Equal(t, "manual", saved.MonitoringMode)

	require.Len(t, seen, 1)
	assert.Equal(t, 55, seen[0].AlertThresholds.SmokeLevel)

	reloaded, err := s.GetSettings()
	require.NoError(t, err)
	assert.False(t, reloaded.Notifications.AutoAlert)
}

func TestUpdateSettingsValidation(t *testing.T) {
	s := NewSettingsService(newTestDB(t), testConfig())
	called := false
	s.OnChange(func(models.SystemSettings) { called = true })

	cases := map[string]func(*models.SystemSettings){
		"empty name":        func(v *models.SystemSettings) { v.PlatformName = "" },
		"bad mode":          func(v *models.SystemSettings) { v.MonitoringMode = "semi" },
		"threshold too big": func(v *models.SystemSettings) { v.AlertThresholds.FlameIntensity = 101 },
		"negative smoke":    func(v *models.SystemSettings) { v.AlertThresholds.SmokeLevel = -1 },
		"temperature order": func(v *models.SystemSettings) { v.AlertThresholds.TemperatureLow = 40 },
		"log retention":     func(v *models.SystemSettings) { v.SystemMaintenance.LogRetention = 0 },
		"backup frequency":  func(v *models.SystemSettings) { v.SystemMaintenance.BackupFrequency = "hourly" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			settings := defaultSettings()
			mutate(&settings)
			_, err := s.UpdateSettings(settings)
			assert.ErrorIs(t, err, ErrSettingsInvalid)
		})
	}
	assert.False(t, called)

	current, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, 80, current.AlertThresholds.FlameIntensity)
}
