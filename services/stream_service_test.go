package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func TestStreams(t *testing.T) {
	s := NewStreamService(newTestDB(t), testConfig())

	streams, total, err := s.GetStreams(StreamFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(16), total)
	assert.Equal(t, "stream001", streams[0].ID)

	offline, _, err := s.GetStreams(StreamFilter{Status: "offline"})
	require.NoError(t, err)
	assert.Len(t, offline, 2)

	detail, err := s.GetStreamByID("stream001")
	require.NoError(t, err)
	require.NotNil(t, detail.Device)
	assert.Equal(t, "cam001", detail.Device.ID)

	// 关联设备不存在
	detail, err = s.GetStreamByID("stream006")
	require.NoError(t, err)
	assert.Nil(t, detail.Device)

	_, err = s.GetStreamByID("stream999")
	assert.ErrorIs(t, err, ErrStreamNotFound)
}

func TestStreamStats(t *testing.T) {
	stats, err := NewStreamService(newTestDB(t), testConfig()).GetStats()
	require.NoError(t, err)
	assert.Equal(t, models.StreamStats{
		TotalCameras:  16,
		ActiveCameras: 14,
		OnlineDevices: 9,
		TotalDevices:  12,
		ActiveAlerts:  5,
	}, *stats)
}

func TestRecognitionResults(t *testing.T) {
	s := NewRecognitionService(newTestDB(t), testConfig())

	_, total, err := s.GetResults(RecognitionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	persons, _, err := s.GetResults(RecognitionFilter{Type: "person"})
	require.NoError(t, err)
	assert.Len(t, persons, 3)

	medium, _, err := s.GetResults(RecognitionFilter{Confidence: "medium"})
	require.NoError(t, err)
	require.Len(t, medium, 1)
	assert.Equal(t, "rec007", medium[0].ID)

	byDevice, _, err := s.GetResults(RecognitionFilter{DeviceID: "cam001"})
	require.NoError(t, err)
	assert.Len(t, byDevice, 3)

	_, err = s.GetResultByID("rec999")
	assert.ErrorIs(t, err, ErrRecognitionNotFound)
}

func TestRecognitionStats(t *testing.T) {
	stats, err := NewRecognitionService(newTestDB(t), testConfig()).GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.Equal(t, int64(11), stats.HighConfidence)
	assert.Equal(t, int64(3), stats.Burning)
	assert.Equal(t, int64(2), stats.StrawPile)
	assert.Equal(t, 88.3, stats.AverageConfidence)
	assert.Equal(t, int64(3), stats.ByType[models.RecognitionPerson])
}

func TestSystemLogs(t *testing.T) {
	s := NewSystemLogService(newTestDB(t), testConfig())

	s.Record(models.SystemLog{UserID: "user001", Action: "create_device", Target: "device:cam009", Detail: "新增摄像头"})
	s.Record(models.SystemLog{UserID: "user002", Action: "resolve_alert", Target: "alert:alert001"})
	s.Record(models.SystemLog{UserID: "user001", Action: "delete_device", Target: "device:cam009"})

	logs, total, err := s.GetLogs(SystemLogFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "delete_device", logs[0].Action)
	assert.False(t, logs[0].Timestamp.IsZero())

	byUser, _, err := s.GetLogs(SystemLogFilter{UserID: "user001"})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byAction, _, err := s.GetLogs(SystemLogFilter{Action: "resolve_alert"})
	require.NoError(t, err)
	assert.Len(t, byAction, 1)

	search, _, err := s.GetLogs(SystemLogFilter{Search: "cam009"})
	require.NoError(t, err)
	assert.Len(t, search, 2)
}
