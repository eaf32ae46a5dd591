package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func newAlertService(t *testing.T) *AlertService {
	cfg := testConfig()
	db := newTestDB(t)
	users := NewUserService(db, cfg, NewJWTService(cfg), newCaptchaService(time.Minute, nil))
	return NewAlertService(db, cfg, users).(*AlertService)
}

func TestGetAlertsNewestFirst(t *testing.T) {
	s := newAlertService(t)

	alerts, total, err := s.GetAlerts(AlertFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
	require.Len(t, alerts, 10)
	assert.Equal(t, "alert001", alerts[0].ID)
	assert.Equal(t, "alert004", alerts[1].ID)
	assert.Equal(t, "alert006", alerts[9].ID)
	for i := 1; i < len(alerts); i++ {
		assert.False(t, alerts[i].Timestamp.After(alerts[i-1].Timestamp))
	}
}

func TestGetAlertsFilters(t *testing.T) {
	s := newAlertService(t)

	smoke, total, err := s.GetAlerts(AlertFilter{Type: "smoke"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, a := range smoke {
		assert.Equal(t, models.AlertTypeSmoke, a.Type)
	}

	_, total, err = s.GetAlerts(AlertFilter{Type: "flame", Status: "processing"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = s.GetAlerts(AlertFilter{Level: "low", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestAlertSummary(t *testing.T) {
	s := newAlertService(t)

	summary, err := s.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(10), summary.Total)
	assert.Equal(t, int64(1), summary.Pending)
	assert.Equal(t, int64(4), summary.Processing)
	assert.Equal(t, int64(4), summary.Resolved)
	assert.Equal(t, int64(1), summary.Dismissed)
	assert.Equal(t, 40.0, summary.ResolveRate)
}

func TestAlertStatusTransitions(t *testing.T) {
	s := newAlertService(t)

	alert, err := s.Process("alert006")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusProcessing, alert.Status)

	alert, err = s.Resolve("alert006", ResolveRequest{Resolution: "摄像头已恢复"})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)
	assert.Equal(t, "摄像头已恢复", alert.Resolution)
	require.NotNil(t, alert.ResolvedAt)

	alert, err = s.Dismiss("alert002")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusDismissed, alert.Status)

	_, err = s.Process("missing")
	assert.ErrorIs(t, err, ErrAlertNotFound)
	_, err = s.Resolve("missing", ResolveRequest{})
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

// alertBody 去掉处理相关字段，用于比较告警的其余内容
func alertBody(a models.Alert) models.Alert {
	a.Status = ""
	a.AssignedTo = ""
	a.Resolution = ""
	a.ResolvedAt = nil
	a.Timestamps = models.Timestamps{}
	return a
}

func TestAlertTransitionsKeepOtherFields(t *testing.T) {
	s := newAlertService(t)

	cases := []struct {
		name   string
		id     string
		apply  func() (*models.Alert, error)
		status models.AlertStatus
	}{
		{"process", "alert006", func() (*models.Alert, error) { return s.Process("alert006") }, models.AlertStatusProcessing},
		{"dismiss", "alert002", func() (*models.Alert, error) { return s.Dismiss("alert002") }, models.AlertStatusDismissed},
		{"resolve", "alert003", func() (*models.Alert, error) { return s.Resolve("alert003", ResolveRequest{}) }, models.AlertStatusResolved},
		{"assign", "alert005", func() (*models.Alert, error) {
			return s.Assign("alert005", AssignRequest{AssignedTo: "operator1"})
		}, models.AlertStatusProcessing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before, err := s.GetAlertByID(tc.id)
			require.NoError(t, err)

			after, err := tc.apply()
			require.NoError(t, err)
			assert.Equal(t, tc.status, after.Status)
			assert.Equal(t, alertBody(*before), alertBody(*after))

			switch tc.name {
			case "assign":
				assert.Equal(t, before.Resolution, after.Resolution)
			case "resolve":
				assert.Equal(t, before.AssignedTo, after.AssignedTo)
				assert.Equal(t, before.Resolution, after.Resolution, "未填写处理结果时保留原值")
			default:
				assert.Equal(t, before.AssignedTo, after.AssignedTo)
				assert.Equal(t, before.Resolution, after.Resolution)
				assert.Equal(t, before.ResolvedAt, after.ResolvedAt)
			}
		})
	}
}

func TestAssignAlert(t *testing.T) {
	s := newAlertService(t)

	alert, err := s.Assign("alert006", AssignRequest{AssignedTo: "陈志华"})
	require.NoError(t, err)
	assert.Equal(t, "陈志华", alert.AssignedTo)
	assert.Equal(t, models.AlertStatusProcessing, alert.Status)

	// 用户名也可以，保存的是姓名
	alert, err = s.Assign("alert005", AssignRequest{AssignedTo: "operator1"})
	require.NoError(t, err)
	assert.Equal(t, "刘建国", alert.AssignedTo)

	_, err = s.Assign("alert005", AssignRequest{AssignedTo: "viewer1"})
	assert.ErrorIs(t, err, ErrAssigneeInvalid)
	_, err = s.Assign("alert005", AssignRequest{AssignedTo: "不存在的人"})
	assert.ErrorIs(t, err, ErrAssigneeInvalid)
	_, err = s.Assign("missing", AssignRequest{AssignedTo: "admin"})
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestDeleteAlert(t *testing.T) {
	s := newAlertService(t)

	before, _, err := s.GetAlerts(AlertFilter{})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAlert("alert010"))
	assert.ErrorIs(t, s.DeleteAlert("alert010"), ErrAlertNotFound)

	after, total, err := s.GetAlerts(AlertFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(9), total)
	expected := make([]models.Alert, 0, len(before)-1)
	for _, a := range before {
		if a.ID != "alert010" {
			expected = append(expected, a)
		}
	}
	assert.Equal(t, expected, after)
}

func TestBatchAlerts(t *testing.T) {
	s := newAlertService(t)

	result, err := s.Batch(BatchRequest{Operation: AlertActionResolve, IDs: []string{"alert001", "alert002", "nope"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Affected)
	assert.Equal(t, []string{"nope"}, result.Missing)

	alert, err := s.GetAlertByID("alert001")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)
	assert.NotNil(t, alert.ResolvedAt)

	result, err = s.Batch(BatchRequest{Operation: AlertActionDelete, IDs: []string{"alert001"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)

	_, err = s.Batch(BatchRequest{Operation: "assign", IDs: []string{"alert002"}})
	assert.ErrorIs(t, err, ErrAlertOperation)
}

func TestCreateAlertDefaults(t *testing.T) {
	s := newAlertService(t)

	alert := &models.Alert{
		Type:     models.AlertTypeSmoke,
		Level:    alertLevelFor(75),
		Title:    "烟雾浓度超标",
		DeviceID: "sensor001",
	}
	require.NoError(t, s.CreateAlert(alert))
	assert.Contains(t, alert.ID, "alert_")
	assert.Equal(t, models.AlertStatusPending, alert.Status)
	assert.Equal(t, models.AlertLevelHigh, alert.Level)
	assert.Equal(t, models.DefaultCoordinates, alert.Coordinates)
	assert.False(t, alert.Timestamp.IsZero())

	recent, err := s.RecentAlerts(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, alert.ID, recent[0].ID)
	assert.Equal(t, "alert001", recent[1].ID)
}

func TestAlertLevelFor(t *testing.T) {
	assert.Equal(t, models.AlertLevelCritical, alertLevelFor(90))
	assert.Equal(t, models.AlertLevelCritical, alertLevelFor(100))
	assert.Equal(t, models.AlertLevelHigh, alertLevelFor(89))
}
