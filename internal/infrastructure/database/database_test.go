package database

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultAdminPassword: "admin123",
		DefaultUserPassword:  "zc123456",
	}
}

func openTestDB(t *testing.T) *ConnectionPool {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	pool, err := OpenMemory(name, testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture()
	require.NoError(t, err)

	assert.Len(t, f.MonitorDevices, 12)
	assert.Len(t, f.VideoStreams, 16)
	assert.Len(t, f.RecognitionResults, 12)
	assert.Len(t, f.SmokeDetections, 8)
	assert.Len(t, f.FlameDetections, 6)
	assert.Len(t, f.Alerts, 10)
	assert.Len(t, f.SMSAlerts, 4)
	assert.Len(t, f.WeChatAlerts, 3)
	assert.Len(t, f.InspectionRecords, 6)
	assert.Len(t, f.Areas, 5)
	assert.Len(t, f.Users, 4)

	// 每次返回独立副本
	f.MonitorDevices[0].Name = "changed"
	again, err := LoadFixture()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.MonitorDevices[0].Name)
}

func TestOpenMemorySeedsAllTables(t *testing.T) {
	db := openTestDB(t).GetDB()

	counts := []struct {
		model interface{}
		want  int64
	}{
		{&models.MonitorDevice{}, 12},
		{&models.VideoStream{}, 16},
		{&models.RecognitionResult{}, 12},
		{&models.SmokeDetection{}, 8},
		{&models.FlameDetection{}, 6},
		{&models.Alert{}, 10},
		{&models.SMSAlert{}, 4},
		{&models.WeChatAlert{}, 3},
		{&models.InspectionRecord{}, 6},
		{&models.Area{}, 5},
		{&models.User{}, 4},
		{&models.Statistics{}, 1},
		{&models.SystemSettings{}, 1},
		{&models.SystemLog{}, 0},
	}
	for _, c := range counts {
		var got int64
		require.NoError(t, db.Model(c.model).Count(&got).Error)
		assert.Equal(t, c.want, got, "%T", c.model)
	}

	var device models.MonitorDevice
	require.NoError(t, db.First(&device, "id = ?", "cam003").Error)
	assert.Equal(t, models.DeviceStatusMaintenance, device.Status)

	var settings models.SystemSettings
	require.NoError(t, db.First(&settings, models.SettingsID).Error)
	assert.NotEmpty(t, settings.PlatformName)
}

func TestSeedHashesPasswords(t *testing.T) {
	db := openTestDB(t).GetDB()

	var admin, viewer models.User
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	require.NoError(t, db.First(&viewer, "username = ?", "viewer1").Error)

	assert.True(t, utils.CheckPasswordHash("admin123", admin.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("zc123456", admin.PasswordHash))
	assert.True(t, utils.CheckPasswordHash("zc123456", viewer.PasswordHash))
	assert.Equal(t, []string{"all"}, admin.Permissions)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t).GetDB()

	require.NoError(t, Seed(db, testConfig()))

	var count int64
	require.NoError(t, db.Model(&models.MonitorDevice{}).Count(&count).Error)
	assert.Equal(t, int64(12), count)
}

func TestEnsureAdminExists(t *testing.T) {
	db := openTestDB(t).GetDB()
	cfg := testConfig()

	// 已有管理员时不做任何事
	require.NoError(t, EnsureAdminExists(db, cfg))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.Where("role = ?", models.RoleAdmin).Delete(&models.User{}).Error)
	require.NoError(t, EnsureAdminExists(db, cfg))

	var admin models.User
	require.NoError(t, db.First(&admin, "role = ?", models.RoleAdmin).Error)
	assert.Equal(t, "user_admin", admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.PasswordHash))
}

func TestDropAndRecreateTables(t *testing.T) {
	db := openTestDB(t).GetDB()

	require.NoError(t, Migrate(db, "drop"))

	var count int64
	require.NoError(t, db.Model(&models.Alert{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.True(t, db.Migrator().HasTable(&models.SystemLog{}))
}

func TestConnectionPoolStatus(t *testing.T) {
	pool := openTestDB(t)

	status := pool.Status(context.Background())
	assert.True(t, status.Healthy)
	assert.Empty(t, status.Error)
	assert.Equal(t, "sqlite", status.Driver)
	assert.Equal(t, 1, status.MaxOpen)

	require.NoError(t, pool.Close())
	status = Inspect(context.Background(), pool.GetDB())
	assert.False(t, status.Healthy)
	assert.NotEmpty(t, status.Error)
}

func TestNewConnectionPoolRejectsUnknownDriver(t *testing.T) {
	_, err := NewConnectionPool(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSeedSkipsPopulatedMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	pool, err := NewConnectionPoolWithDialector(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), "mysql")
	require.NoError(t, err)
	assert.Equal(t, 100, pool.MaxOpenConns)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `monitor_devices`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	require.NoError(t, Seed(pool.GetDB(), testConfig()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
