package database

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/utils"
)

//go:embed seeddata/mock_data.json
var fixtureJSON []byte

// Fixture 初始数据集
type Fixture struct {
	MonitorDevices     []models.MonitorDevice     `json:"monitor_devices"`
	VideoStreams       []models.VideoStream       `json:"video_streams"`
	RecognitionResults []models.RecognitionResult `json:"recognition_results"`
	SmokeDetections    []models.SmokeDetection    `json:"smoke_detections"`
	FlameDetections    []models.FlameDetection    `json:"flame_detections"`
	Alerts             []models.Alert             `json:"alerts"`
	SMSAlerts          []models.SMSAlert          `json:"sms_alerts"`
	WeChatAlerts       []models.WeChatAlert       `json:"wechat_alerts"`
	InspectionRecords  []models.InspectionRecord  `json:"inspection_records"`
	Areas              []models.Area              `json:"areas"`
	Statistics         models.Statistics          `json:"statistics"`
	Users              []models.User              `json:"users"`
	SystemSettings     models.SystemSettings      `json:"system_settings"`
}

// LoadFixture 解析内置的初始数据，每次调用返回独立副本
func LoadFixture() (*Fixture, error) {
	var f Fixture
	dec := json.NewDecoder(bytes.NewReader(fixtureJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("解析初始数据失败: %w", err)
	}
	return &f, nil
}

// Seed 在空库中写入初始数据，已有数据时跳过
func Seed(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.MonitorDevice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("数据库已有 %d 台设备，跳过初始数据写入", count)
		return nil
	}

	f, err := LoadFixture()
	if err != nil {
		return err
	}

	adminHash, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("生成管理员密码哈希失败: %w", err)
	}
	userHash, err := utils.HashPassword(cfg.DefaultUserPassword)
	if err != nil {
		return fmt.Errorf("生成用户密码哈希失败: %w", err)
	}
	for i := range f.Users {
		if f.Users[i].Role == models.RoleAdmin {
			f.Users[i].PasswordHash = adminHash
		} else {
			f.Users[i].PasswordHash = userHash
		}
	}
	f.SystemSettings.ID = models.SettingsID
	f.Statistics.ID = 1

	err = db.Transaction(func(tx *gorm.DB) error {
		batches := []interface{}{
			&f.MonitorDevices,
			&f.VideoStreams,
			&f.RecognitionResults,
			&f.SmokeDetections,
			&f.FlameDetections,
			&f.Alerts,
			&f.SMSAlerts,
			&f.WeChatAlerts,
			&f.InspectionRecords,
			&f.Areas,
			&f.Users,
			&f.Statistics,
			&f.SystemSettings,
		}
		for _, batch := range batches {
			if err := tx.Create(batch).Error; err != nil {
				return fmt.Errorf("写入 %T 失败: %w", batch, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("初始数据写入完成: 设备 %d, 告警 %d, 巡检 %d", len(f.MonitorDevices), len(f.Alerts), len(f.InspectionRecords))
	return nil
}

// EnsureAdminExists 确保系统中至少有一个可用的管理员账户
func EnsureAdminExists(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:           "user_admin",
		Username:     "admin",
		Name:         "系统管理员",
		Role:         models.RoleAdmin,
		Department:   "信息中心",
		Status:       models.UserActive,
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("创建默认管理员失败: %w", err)
	}

	logger.Warning("未找到管理员账户，已创建默认管理员: admin，请尽快修改默认密码")
	return nil
}

// OpenMemory 打开一个独立命名的内存库，完成迁移和初始数据写入
func OpenMemory(name string, cfg *config.Config) (*ConnectionPool, error) {
	dsn := "file:" + name + "?mode=memory&cache=shared"
	pool, err := NewConnectionPoolWithDialector(sqlite.Open(dsn), "sqlite")
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(pool.DB); err != nil {
		return nil, err
	}
	if err := Seed(pool.DB, cfg); err != nil {
		return nil, err
	}
	return pool, nil
}
