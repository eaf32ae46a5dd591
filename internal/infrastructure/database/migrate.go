package database

import (
	"fmt"

	"gorm.io/gorm"

	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
)

// AllModels 需要迁移的全部模型
func AllModels() []interface{} {
	return []interface{}{
		&models.MonitorDevice{},
		&models.VideoStream{},
		&models.RecognitionResult{},
		&models.SmokeDetection{},
		&models.FlameDetection{},
		&models.Alert{},
		&models.SMSAlert{},
		&models.WeChatAlert{},
		&models.InspectionRecord{},
		&models.Area{},
		&models.User{},
		&models.Statistics{},
		&models.SystemSettings{},
		&models.SystemLog{},
	}
}

// AutoMigrate 自动迁移所有模型（只添加新列和新表）
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("自动迁移失败: %w", err)
	}
	logger.Info("数据库迁移完成")
	return nil
}

// DropAndRecreateTables 删除并重建所有表
func DropAndRecreateTables(db *gorm.DB) error {
	logger.Warning("正在删除并重建所有表，所有数据将丢失")

	for _, model := range AllModels() {
		if err := db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}

	logger.Info("正在重新创建所有表")
	return AutoMigrate(db)
}

// Migrate 按迁移模式执行迁移
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case "drop":
		return DropAndRecreateTables(db)
	default:
		return AutoMigrate(db)
	}
}
