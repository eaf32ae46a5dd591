package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/idgen"
	"straw-monitor-service/pkg/logger"
)

// DeviceFilter 设备列表过滤条件
type DeviceFilter struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Status string `form:"status"`
	models.PaginationQuery
}

// CreateDeviceRequest 新增设备请求
type CreateDeviceRequest struct {
	Name        string              `json:"name" binding:"required" example:"邹城北区监控点-06"`
	Type        models.DeviceType   `json:"type" binding:"required,oneof=camera sensor drone thermal" example:"camera"`
	Location    string              `json:"location" binding:"required" example:"邹城市北湖街道农田区域"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Resolution  string              `json:"resolution" binding:"omitempty,oneof=HD SD 4K" example:"HD"`
	Coverage    *int                `json:"coverage" binding:"omitempty,gte=0"`
	Height      *int                `json:"height" binding:"omitempty,gte=0"`
	Angle       *int                `json:"angle" binding:"omitempty,gte=0,lte=360"`
	Battery     *int                `json:"battery" binding:"omitempty,gte=0,lte=100"`
	Signal      *int                `json:"signal" binding:"omitempty,gte=0,lte=100"`
}

// UpdateDeviceRequest 部分更新设备请求，未提供的字段保持不变
type UpdateDeviceRequest struct {
	Name        *string              `json:"name" binding:"omitempty,min=1"`
	Type        *models.DeviceType   `json:"type" binding:"omitempty,oneof=camera sensor drone thermal"`
	Status      *models.DeviceStatus `json:"status" binding:"omitempty,oneof=online offline maintenance fault"`
	Location    *string              `json:"location" binding:"omitempty,min=1"`
	Coordinates *models.Coordinates  `json:"coordinates"`
	Resolution  *string              `json:"resolution" binding:"omitempty,oneof=HD SD 4K"`
	Coverage    *int                 `json:"coverage" binding:"omitempty,gte=0"`
	Height      *int                 `json:"height" binding:"omitempty,gte=0"`
	Angle       *int                 `json:"angle" binding:"omitempty,gte=0,lte=360"`
	Battery     *int                 `json:"battery" binding:"omitempty,gte=0,lte=100"`
	Signal      *int                 `json:"signal" binding:"omitempty,gte=0,lte=100"`
}

// BatchRequest 批量操作请求
type BatchRequest struct {
	Operation string   `json:"operation" binding:"required" example:"stop"`
	IDs       []string `json:"ids" binding:"required,min=1" example:"cam001,cam002"`
}

// ControlRequest 设备控制请求
type ControlRequest struct {
	Operation string `json:"operation" binding:"required,oneof=start_detection pause_detection stop_detection calibrate zoom_in zoom_out fullscreen" example:"calibrate"`
	Value     string `json:"value,omitempty" example:"2x"`
}

// DeviceCommand 下发给设备的控制指令
type DeviceCommand struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Operation string    `json:"operation"`
	Value     string    `json:"value,omitempty"`
	IssuedBy  string    `json:"issued_by,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Topic     string    `json:"topic"`
	Delivered bool      `json:"delivered"` // false 表示 MQTT 未启用，仅记录
}

// 设备状态操作
const (
	DeviceActionStart       = "start"
	DeviceActionStop        = "stop"
	DeviceActionRestart     = "restart"
	DeviceActionMaintenance = "maintenance"
	DeviceActionDelete      = "delete"
)

var deviceActionStatus = map[string]models.DeviceStatus{
	DeviceActionStart:       models.DeviceStatusOnline,
	DeviceActionStop:        models.DeviceStatusOffline,
	DeviceActionRestart:     models.DeviceStatusOnline,
	DeviceActionMaintenance: models.DeviceStatusMaintenance,
}

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	GetDevices(filter DeviceFilter) ([]models.MonitorDevice, int64, error)
	GetDeviceByID(id string) (*models.MonitorDevice, error)
	CreateDevice(req CreateDeviceRequest) (*models.MonitorDevice, error)
	UpdateDevice(id string, req UpdateDeviceRequest) (*models.MonitorDevice, error)
	DeleteDevice(id string) error
	ApplyAction(id, action string) (*models.MonitorDevice, error)
	Batch(req BatchRequest) (*models.BatchResult, error)
	Control(id string, req ControlRequest, issuedBy string) (*DeviceCommand, error)
	GetSummary() (*models.DeviceSummary, error)
}

// DeviceService 提供设备相关的服务
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
	MQTT   InterfaceMQTTService
}

// NewDeviceService 创建一个新的设备服务
func NewDeviceService(db *gorm.DB, cfg *config.Config, mqttService InterfaceMQTTService) InterfaceDeviceService {
	return &DeviceService{
		DB:     db,
		Config: cfg,
		MQTT:   mqttService,
	}
}

// 1 GetDevices 获取设备列表
func (s *DeviceService) GetDevices(filter DeviceFilter) ([]models.MonitorDevice, int64, error) {
	query := s.DB.Model(&models.MonitorDevice{}).Scopes(
		whereSearch(filter.Search, "name", "location"),
		whereEq("type", filter.Type),
		whereEq("status", filter.Status),
	)

	var devices []models.MonitorDevice
	total, err := findPage(query, filter.PaginationQuery, "created_at ASC, id ASC", &devices)
	return devices, total, err
}

// 2 GetDeviceByID 根据ID获取设备
func (s *DeviceService) GetDeviceByID(id string) (*models.MonitorDevice, error) {
	var device models.MonitorDevice
	if err := s.DB.First(&device, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// 3 CreateDevice 新增设备，未提供的参数按设备类型填充默认值
func (s *DeviceService) CreateDevice(req CreateDeviceRequest) (*models.MonitorDevice, error) {
	defaults := models.DefaultsFor(req.Type)
	device := &models.MonitorDevice{
		ID:          idgen.NewID("device"),
		Name:        req.Name,
		Type:        req.Type,
		Status:      models.DeviceStatusOnline,
		Location:    req.Location,
		Coordinates: models.DefaultCoordinates,
		LastUpdate:  models.Now(),
		Resolution:  defaults.Resolution,
		Coverage:    firstInt(req.Coverage, defaults.Coverage),
		Height:      firstInt(req.Height, defaults.Height),
		Angle:       firstInt(req.Angle, defaults.Angle),
		Battery:     firstInt(req.Battery, defaults.Battery),
		Signal:      firstInt(req.Signal, defaults.Signal),
	}
	if req.Coordinates != nil && !req.Coordinates.IsZero() {
		device.Coordinates = *req.Coordinates
	}
	if req.Resolution != "" {
		device.Resolution = req.Resolution
	}

	if err := s.DB.Create(device).Error; err != nil {
		return nil, err
	}
	return device, nil
}

func firstInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			out := *v
			return &out
		}
	}
	return nil
}

// 4 UpdateDevice 更新设备信息
func (s *DeviceService) UpdateDevice(id string, req UpdateDeviceRequest) (*models.MonitorDevice, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Coordinates != nil {
		updates["latitude"] = req.Coordinates.Latitude
		updates["longitude"] = req.Coordinates.Longitude
	}
	if req.Resolution != nil {
		updates["resolution"] = *req.Resolution
	}
	if req.Coverage != nil {
		updates["coverage"] = *req.Coverage
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Angle != nil {
		updates["angle"] = *req.Angle
	}
	if req.Battery != nil {
		updates["battery"] = *req.Battery
	}
	if req.Signal != nil {
		updates["signal"] = *req.Signal
	}
	if len(updates) == 0 {
		return device, nil
	}
	updates["last_update"] = models.Now()

	if err := s.DB.Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的设备信息
	return s.GetDeviceByID(id)
}

// 5 DeleteDevice 删除设备
func (s *DeviceService) DeleteDevice(id string) error {
	result := s.DB.Delete(&models.MonitorDevice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// 6 ApplyAction 启动/停止/重启/维护，只修改状态，重启同时刷新 last_update
func (s *DeviceService) ApplyAction(id, action string) (*models.MonitorDevice, error) {
	status, ok := deviceActionStatus[action]
	if !ok {
		return nil, ErrDeviceOperation
	}

	updates := map[string]interface{}{"status": status}
	if action == DeviceActionRestart {
		updates["last_update"] = models.Now()
	}

	result := s.DB.Model(&models.MonitorDevice{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDeviceNotFound
	}
	return s.GetDeviceByID(id)
}

// 7 Batch 批量操作，不存在的ID跳过并在结果中返回
func (s *DeviceService) Batch(req BatchRequest) (*models.BatchResult, error) {
	status, isStatus := deviceActionStatus[req.Operation]
	if req.Operation == DeviceActionRestart || (!isStatus && req.Operation != DeviceActionDelete) {
		return nil, ErrDeviceOperation
	}

	var existing []string
	if err := s.DB.Model(&models.MonitorDevice{}).Where("id IN ?", req.IDs).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}

	result := &models.BatchResult{Missing: missingIDs(req.IDs, existing)}
	if len(existing) == 0 {
		return result, nil
	}

	var tx *gorm.DB
	if req.Operation == DeviceActionDelete {
		tx = s.DB.Where("id IN ?", existing).Delete(&models.MonitorDevice{})
	} else {
		tx = s.DB.Model(&models.MonitorDevice{}).Where("id IN ?", existing).Update("status", status)
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	result.Affected = int(tx.RowsAffected)
	return result, nil
}

// missingIDs 返回 requested 中不在 existing 里的ID，保持请求顺序并去重
func missingIDs(requested, existing []string) []string {
	found := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}
	missing := []string{}
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
			found[id] = struct{}{}
		}
	}
	return missing
}

// 8 Control 通过 MQTT 下发设备控制指令
func (s *DeviceService) Control(id string, req ControlRequest, issuedBy string) (*DeviceCommand, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}
	if device.Status == models.DeviceStatusOffline {
		return nil, ErrDeviceOffline
	}

	cmd := &DeviceCommand{
		ID:        idgen.NewID("cmd"),
		DeviceID:  device.ID,
		Operation: req.Operation,
		Value:     req.Value,
		IssuedBy:  issuedBy,
		Timestamp: models.Now(),
		Topic:     s.MQTT.DeviceCommandTopic(device.ID),
	}

	switch err := s.MQTT.PublishDeviceCommand(*cmd); {
	case err == nil:
		cmd.Delivered = true
	case errors.Is(err, ErrMQTTDisabled):
		logger.Info("MQTT未启用，设备指令仅记录: device=%s operation=%s", device.ID, req.Operation)
	default:
		return nil, fmt.Errorf("%w: %v", ErrDeviceCommandFailed, err)
	}
	return cmd, nil
}

// 9 GetSummary 设备状态统计
func (s *DeviceService) GetSummary() (*models.DeviceSummary, error) {
	counts, err := countBy(s.DB.Model(&models.MonitorDevice{}), "status")
	if err != nil {
		return nil, err
	}

	summary := &models.DeviceSummary{
		Online:      counts[string(models.DeviceStatusOnline)],
		Offline:     counts[string(models.DeviceStatusOffline)],
		Maintenance: counts[string(models.DeviceStatusMaintenance)],
		Fault:       counts[string(models.DeviceStatusFault)],
	}
	for _, n := range counts {
		summary.Total += n
	}
	summary.OnlineRate = percent(summary.Online, summary.Total)
	return summary, nil
}

// countBy 按列分组计数
func countBy(query *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		GroupKey string
		Total    int64
	}
	if err := query.Select(column + " AS group_key, COUNT(*) AS total").Group(column).Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupKey] = row.Total
	}
	return counts, nil
}

// percent 百分比，保留一位小数，分母为0时返回0
func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}
