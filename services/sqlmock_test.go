package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestDeviceQueryErrorIsReturned(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `monitor_devices`").
		WillReturnError(errors.New("connection reset"))

	s := NewDeviceService(db, testConfig(), NewMQTTService(testConfig()))
	_, _, err := s.GetDevices(DeviceFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertLookupUsesPrimaryKey(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `alerts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "level", "status"}).
			AddRow("alert001", "flame", "critical", "processing"))

	s := NewAlertService(db, testConfig(), nil)
	alert, err := s.GetAlertByID("alert001")
	require.NoError(t, err)
	assert.Equal(t, "alert001", alert.ID)
	assert.True(t, alert.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT status AS group_key, COUNT\\(\\*\\) AS total FROM `alerts` GROUP BY `status`").
		WillReturnError(errors.New("deadlock"))

	_, err := NewAlertService(db, testConfig(), nil).GetSummary()
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
