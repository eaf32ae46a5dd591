package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func newDeviceService(t *testing.T, client *fakeMQTTClient) *DeviceService {
	cfg := testConfig()
	var mqttService InterfaceMQTTService
	if client == nil {
		mqttService = NewMQTTServiceWithClient(cfg, nil)
	} else {
		mqttService = NewMQTTServiceWithClient(cfg, client)
	}
	return NewDeviceService(newTestDB(t), cfg, mqttService).(*DeviceService)
}

func TestGetDevicesFilters(t *testing.T) {
	s := newDeviceService(t, nil)

	all, total, err := s.GetDevices(DeviceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, all, 12)

	cameras, total, err := s.GetDevices(DeviceFilter{Type: "camera", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	for _, d := range cameras {
		assert.Equal(t, models.DeviceTypeCamera, d.Type)
	}

	// 名称或位置，不区分大小写
	byLocation, _, err := s.GetDevices(DeviceFilter{Search: "太平镇"})
	require.NoError(t, err)
	assert.Len(t, byLocation, 3)

	none, total, err := s.GetDevices(DeviceFilter{Search: "太平镇", Status: "fault"})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

func TestGetDevicesPagination(t *testing.T) {
	s := newDeviceService(t, nil)

	page, total, err := s.GetDevices(DeviceFilter{PaginationQuery: models.PaginationQuery{PageNum: 2, PageSize: 5}})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page, 5)

	last, _, err := s.GetDevices(DeviceFilter{PaginationQuery: models.PaginationQuery{PageNum: 3, PageSize: 5}})
	require.NoError(t, err)
	assert.Len(t, last, 2)

	// 只给一个分页参数时返回全部
	unpaged, _, err := s.GetDevices(DeviceFilter{PaginationQuery: models.PaginationQuery{PageSize: 5}})
	require.NoError(t, err)
	assert.Len(t, unpaged, 12)
}

func TestCreateDeviceDefaults(t *testing.T) {
	s := newDeviceService(t, nil)

	device, err := s.CreateDevice(CreateDeviceRequest{
		Name:     "邹城北区监控点-06",
		Type:     models.DeviceTypeDrone,
		Location: "邹城市北湖街道农田区域",
		Battery:  intPtr(55),
	})
	require.NoError(t, err)

	assert.Contains(t, device.ID, "device_")
	assert.Equal(t, models.DeviceStatusOnline, device.Status)
	assert.Equal(t, models.DefaultCoordinates, device.Coordinates)
	assert.Equal(t, 2000, *device.Coverage)
	assert.Equal(t, 55, *device.Battery)
	assert.Equal(t, 90, *device.Signal)
	assert.Nil(t, device.Angle)

	stored, err := s.GetDeviceByID(device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.Name, stored.Name)

	_, total, err := s.GetDevices(DeviceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
}

func TestCreateDeviceCustomCoordinates(t *testing.T) {
	s := newDeviceService(t, nil)

	device, err := s.CreateDevice(CreateDeviceRequest{
		Name:        "热成像-03",
		Type:        models.DeviceTypeThermal,
		Location:    "邹城市城前镇",
		Coordinates: &models.Coordinates{Latitude: 35.31, Longitude: 117.02},
		Resolution:  "4K",
	})
	require.NoError(t, err)
	assert.Equal(t, 35.31, device.Coordinates.Latitude)
	assert.Equal(t, "4K", device.Resolution)
}

func TestUpdateDevicePartial(t *testing.T) {
	s := newDeviceService(t, nil)
	before, err := s.GetDeviceByID("cam001")
	require.NoError(t, err)

	status := models.DeviceStatusFault
	updated, err := s.UpdateDevice("cam001", UpdateDeviceRequest{
		Name:   strPtr("北区监控点-01A"),
		Status: &status,
		Signal: intPtr(40),
	})
	require.NoError(t, err)
	assert.Equal(t, "北区监控点-01A", updated.Name)
	assert.Equal(t, models.DeviceStatusFault, updated.Status)
	assert.Equal(t, 40, *updated.Signal)
	assert.Equal(t, before.Location, updated.Location)
	assert.Equal(t, before.Type, updated.Type)
	assert.False(t, updated.LastUpdate.Before(before.LastUpdate))

	_, err = s.UpdateDevice("missing", UpdateDeviceRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDeleteDevice(t *testing.T) {
	s := newDeviceService(t, nil)
	before, _, err := s.GetDevices(DeviceFilter{})
	require.NoError(t, err)

	require.NoError(t, s.DeleteDevice("drone002"))
	_, err = s.GetDeviceByID("drone002")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.ErrorIs(t, s.DeleteDevice("drone002"), ErrDeviceNotFound)

	// 其余设备保持不变
	after, total, err := s.GetDevices(DeviceFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	expected := make([]models.MonitorDevice, 0, len(before)-1)
	for _, d := range before {
		if d.ID != "drone002" {
			expected = append(expected, d)
		}
	}
	assert.ElementsMatch(t, expected, after)
}

// withoutStatus 去掉状态和记录时间，用于比较其余字段
func withoutStatus(d models.MonitorDevice) models.MonitorDevice {
	d.Status = ""
	d.Timestamps = models.Timestamps{}
	return d
}

func TestApplyActionChangesOnlyStatus(t *testing.T) {
	for _, action := range []string{DeviceActionStart, DeviceActionStop, DeviceActionMaintenance} {
		t.Run(action, func(t *testing.T) {
			s := newDeviceService(t, nil)
			before, err := s.GetDeviceByID("cam002")
			require.NoError(t, err)
			others, _, err := s.GetDevices(DeviceFilter{})
			require.NoError(t, err)

			after, err := s.ApplyAction("cam002", action)
			require.NoError(t, err)
			assert.Equal(t, deviceActionStatus[action], after.Status)
			assert.Equal(t, withoutStatus(*before), withoutStatus(*after))

			all, _, err := s.GetDevices(DeviceFilter{})
			require.NoError(t, err)
			for i, d := range all {
				if d.ID != "cam002" {
					assert.Equal(t, others[i], d)
				}
			}
		})
	}
}

func TestApplyActionRestartRefreshesLastUpdate(t *testing.T) {
	s := newDeviceService(t, nil)
	before, err := s.GetDeviceByID("cam002")
	require.NoError(t, err)

	after, err := s.ApplyAction("cam002", DeviceActionRestart)
	require.NoError(t, err)
	assert.False(t, after.LastUpdate.Before(before.LastUpdate))

	before.LastUpdate, after.LastUpdate = time.Time{}, time.Time{}
	assert.Equal(t, withoutStatus(*before), withoutStatus(*after))
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	s := newDeviceService(t, nil)

	for _, term := range []string{"%", "_", "!", "%%"} {
		found, total, err := s.GetDevices(DeviceFilter{Search: term})
		require.NoError(t, err)
		assert.Zero(t, total, term)
		assert.Empty(t, found, term)
	}

	device, err := s.CreateDevice(CreateDeviceRequest{
		Name:     "北区_100%覆盖!点",
		Type:     models.DeviceTypeCamera,
		Location: "邹城市北湖街道",
	})
	require.NoError(t, err)

	for _, term := range []string{"_100%", "%覆盖!", "!点"} {
		found, total, err := s.GetDevices(DeviceFilter{Search: term})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total, term)
		require.Len(t, found, 1)
		assert.Equal(t, device.ID, found[0].ID)
	}

	// "_" 不再匹配 "监控点-01" 中的 "-"
	_, total, err := s.GetDevices(DeviceFilter{Search: "监控点_0"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%abc%", containsPattern("abc"))
	assert.Equal(t, "%!%!_!!%", containsPattern("%_!"))
}

func TestApplyAction(t *testing.T) {
	s := newDeviceService(t, nil)

	device, err := s.ApplyAction("drone002", DeviceActionStart)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOnline, device.Status)

	device, err = s.ApplyAction("cam001", DeviceActionMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusMaintenance, device.Status)

	device, err = s.ApplyAction("cam001", DeviceActionStop)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOffline, device.Status)

	before := device.LastUpdate
	device, err = s.ApplyAction("cam001", DeviceActionRestart)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOnline, device.Status)
	assert.False(t, device.LastUpdate.Before(before))

	_, err = s.ApplyAction("cam001", "explode")
	assert.ErrorIs(t, err, ErrDeviceOperation)
	_, err = s.ApplyAction("nope", DeviceActionStart)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestBatchDevices(t *testing.T) {
	s := newDeviceService(t, nil)

	result, err := s.Batch(BatchRequest{Operation: DeviceActionStop, IDs: []string{"cam001", "ghost", "cam002", "ghost"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Affected)
	assert.Equal(t, []string{"ghost"}, result.Missing)

	offline, _, err := s.GetDevices(DeviceFilter{Status: "offline"})
	require.NoError(t, err)
	assert.Len(t, offline, 3)

	result, err = s.Batch(BatchRequest{Operation: DeviceActionDelete, IDs: []string{"cam001", "cam002"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Affected)
	assert.Empty(t, result.Missing)

	result, err = s.Batch(BatchRequest{Operation: DeviceActionStart, IDs: []string{"ghost"}})
	require.NoError(t, err)
	assert.Zero(t, result.Affected)
	assert.Equal(t, []string{"ghost"}, result.Missing)

	_, err = s.Batch(BatchRequest{Operation: DeviceActionRestart, IDs: []string{"cam003"}})
	assert.ErrorIs(t, err, ErrDeviceOperation)
}

func TestDeviceSummary(t *testing.T) {
	s := newDeviceService(t, nil)

	summary, err := s.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.Total)
	assert.Equal(t, int64(9), summary.Online)
	assert.Equal(t, int64(1), summary.Offline)
	assert.Equal(t, int64(1), summary.Maintenance)
	assert.Equal(t, int64(1), summary.Fault)
	assert.Equal(t, 75.0, summary.OnlineRate)
}

func TestControlWithoutMQTT(t *testing.T) {
	s := newDeviceService(t, nil)

	cmd, err := s.Control("cam001", ControlRequest{Operation: "zoom_in", Value: "2x"}, "admin")
	require.NoError(t, err)
	assert.False(t, cmd.Delivered)
	assert.Equal(t, "straw/devices/cam001/command", cmd.Topic)
	assert.Equal(t, "admin", cmd.IssuedBy)

	_, err = s.Control("drone002", ControlRequest{Operation: "calibrate"}, "admin")
	assert.ErrorIs(t, err, ErrDeviceOffline)
	_, err = s.Control("ghost", ControlRequest{Operation: "calibrate"}, "admin")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestControlPublishesCommand(t *testing.T) {
	client := &fakeMQTTClient{connected: true}
	s := newDeviceService(t, client)

	cmd, err := s.Control("thermal001", ControlRequest{Operation: "calibrate"}, "operator1")
	require.NoError(t, err)
	assert.True(t, cmd.Delivered)

	msgs := client.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "straw/devices/thermal001/command", msgs[0].Topic)

	var sent DeviceCommand
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &sent))
	assert.Equal(t, cmd.ID, sent.ID)
	assert.Equal(t, "calibrate", sent.Operation)
	assert.Equal(t, "operator1", sent.IssuedBy)
}

func TestControlPublishFailure(t *testing.T) {
	client := &fakeMQTTClient{connected: true, publishErr: errors.New("broker gone")}
	s := newDeviceService(t, client)

	_, err := s.Control("cam001", ControlRequest{Operation: "calibrate"}, "admin")
	assert.ErrorIs(t, err, ErrDeviceCommandFailed)
}

func TestMissingIDs(t *testing.T) {
	assert.Equal(t, []string{"b", "d"}, missingIDs([]string{"a", "b", "c", "d", "b"}, []string{"a", "c"}))
	assert.Equal(t, []string{}, missingIDs([]string{"a"}, []string{"a"}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(3, 0))
	assert.Equal(t, 33.3, percent(1, 3))
	assert.Equal(t, 66.7, percent(2, 3))
	assert.Equal(t, 100.0, percent(4, 4))
}
