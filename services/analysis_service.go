package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// AlertTypeLabels 告警类型中文名称
var AlertTypeLabels = map[models.AlertType]string{
	models.AlertTypeSmoke:     "烟雾告警",
	models.AlertTypeFlame:     "火焰告警",
	models.AlertTypePerson:    "人员告警",
	models.AlertTypeVehicle:   "车辆告警",
	models.AlertTypeMachinery: "机械告警",
	models.AlertTypeSystem:    "系统告警",
}

var alertTypeOrder = []models.AlertType{
	models.AlertTypeSmoke, models.AlertTypeFlame, models.AlertTypePerson,
	models.AlertTypeVehicle, models.AlertTypeMachinery, models.AlertTypeSystem,
}

// DeviceStatusLabels 设备状态中文名称
var DeviceStatusLabels = map[models.DeviceStatus]string{
	models.DeviceStatusOnline:      "在线",
	models.DeviceStatusOffline:     "离线",
	models.DeviceStatusMaintenance: "维护",
	models.DeviceStatusFault:       "故障",
}

var deviceStatusOrder = []models.DeviceStatus{
	models.DeviceStatusOnline, models.DeviceStatusOffline,
	models.DeviceStatusMaintenance, models.DeviceStatusFault,
}

// AnalysisFilter 数据分析过滤条件，area 为区域名称
type AnalysisFilter struct {
	Area string `form:"area"`
}

// AnalysisTotals 汇总指标
type AnalysisTotals struct {
	Alerts            int64 `json:"alerts"`
	SmokeDetections   int64 `json:"smoke_detections"`
	FlameDetections   int64 `json:"flame_detections"`
	RecognitionEvents int64 `json:"recognition_events"`
	HighRiskAreas     int64 `json:"high_risk_areas"`
}

// NamedCount 分布图数据项
type NamedCount struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// AreaRisk 区域风险数据
type AreaRisk struct {
	Name        string           `json:"name"`
	RiskLevel   models.RiskLevel `json:"risk_level"`
	DeviceCount int64            `json:"device_count"`
	AlertCount  int64            `json:"alert_count"`
}

// TrendPoint 趋势图数据点
type TrendPoint struct {
	Label  string `json:"label"`
	Alerts int    `json:"alerts"`
	Smoke  int    `json:"smoke"`
	Flame  int    `json:"flame"`
}

// AnalysisOverview 数据分析页面数据
type AnalysisOverview struct {
	Area         string         `json:"area,omitempty"`
	Totals       AnalysisTotals `json:"totals"`
	AlertTypes   []NamedCount   `json:"alert_types"`
	DeviceStatus []NamedCount   `json:"device_status"`
	AreaRisks    []AreaRisk     `json:"area_risks"`
	HourlyTrend  []TrendPoint   `json:"hourly_trend"`
	Year         int            `json:"year"`
	MonthlyTrend []TrendPoint   `json:"monthly_trend"`
}

// InterfaceAnalysisService 定义数据分析服务接口
type InterfaceAnalysisService interface {
	GetOverview(filter AnalysisFilter) (*AnalysisOverview, error)
}

// AnalysisService 数据分析服务
type AnalysisService struct {
	DB     *gorm.DB
	Config *config.Config
	Areas  InterfaceAreaService
}

// NewAnalysisService 创建数据分析服务
func NewAnalysisService(db *gorm.DB, cfg *config.Config, areas InterfaceAreaService) InterfaceAnalysisService {
	return &AnalysisService{
		DB:     db,
		Config: cfg,
		Areas:  areas,
	}
}

// analysisScope 区域过滤后的查询条件
type analysisScope struct {
	town      string
	deviceIDs []string
}

func (sc analysisScope) located(db *gorm.DB) *gorm.DB {
	return inTown(sc.town)(db)
}

// detections 烟雾/火焰检测记录按设备所在区域过滤
func (sc analysisScope) detections(db *gorm.DB) *gorm.DB {
	if sc.town == "" {
		return db
	}
	return db.Where("device_id IN ?", append([]string{""}, sc.deviceIDs...))
}

// 1 GetOverview 数据分析概览，area 限定告警和设备所在街道/乡镇
func (s *AnalysisService) GetOverview(filter AnalysisFilter) (*AnalysisOverview, error) {
	overview := &AnalysisOverview{}
	var scope analysisScope
	if !isAll(filter.Area) {
		area, err := s.Areas.GetAreaByName(filter.Area)
		if err != nil {
			return nil, err
		}
		overview.Area = area.Name
		scope.town = area.Town()
		if err := s.DB.Model(&models.MonitorDevice{}).Scopes(scope.located).Pluck("id", &scope.deviceIDs).Error; err != nil {
			return nil, err
		}
	}

	if err := s.fillTotals(overview, scope, filter.Area); err != nil {
		return nil, err
	}
	if err := s.fillDistributions(overview, scope); err != nil {
		return nil, err
	}
	if err := s.fillAreaRisks(overview, filter.Area); err != nil {
		return nil, err
	}
	if err := s.fillTrends(overview, scope); err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *AnalysisService) fillTotals(overview *AnalysisOverview, scope analysisScope, area string) error {
	t := &overview.Totals
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&t.Alerts, s.DB.Model(&models.Alert{}).Scopes(scope.located)},
		{&t.SmokeDetections, s.DB.Model(&models.SmokeDetection{}).Scopes(scope.detections)},
		{&t.FlameDetections, s.DB.Model(&models.FlameDetection{}).Scopes(scope.detections)},
		{&t.RecognitionEvents, s.DB.Model(&models.RecognitionResult{}).Scopes(scope.detections)},
		{&t.HighRiskAreas, s.DB.Model(&models.Area{}).Where("risk_level = ?", models.RiskHigh).Scopes(whereEq("name", area))},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *AnalysisService) fillDistributions(overview *AnalysisOverview, scope analysisScope) error {
	alertCounts, err := countBy(s.DB.Model(&models.Alert{}).Scopes(scope.located), "type")
	if err != nil {
		return err
	}
	overview.AlertTypes = make([]NamedCount, 0, len(alertTypeOrder))
	for _, t := range alertTypeOrder {
		overview.AlertTypes = append(overview.AlertTypes, NamedCount{Key: string(t), Name: AlertTypeLabels[t], Value: alertCounts[string(t)]})
	}

	deviceCounts, err := countBy(s.DB.Model(&models.MonitorDevice{}).Scopes(scope.located), "status")
	if err != nil {
		return err
	}
	overview.DeviceStatus = make([]NamedCount, 0, len(deviceStatusOrder))
	for _, st := range deviceStatusOrder {
		overview.DeviceStatus = append(overview.DeviceStatus, NamedCount{Key: string(st), Name: DeviceStatusLabels[st], Value: deviceCounts[string(st)]})
	}
	return nil
}

func (s *AnalysisService) fillAreaRisks(overview *AnalysisOverview, area string) error {
	areas, err := s.Areas.GetAreas()
	if err != nil {
		return err
	}
	overview.AreaRisks = make([]AreaRisk, 0, len(areas))
	for _, a := range areas {
		if !isAll(area) && a.Name != area {
			continue
		}
		overview.AreaRisks = append(overview.AreaRisks, AreaRisk{
			Name:        a.Name,
			RiskLevel:   a.RiskLevel,
			DeviceCount: a.LiveDeviceCount,
			AlertCount:  a.AlertCount,
		})
	}
	return nil
}

// fillTrends 按小时（两小时一档）和按月统计告警、烟雾、火焰数量
func (s *AnalysisService) fillTrends(overview *AnalysisOverview, scope analysisScope) error {
	var alertTimes, smokeTimes, flameTimes []time.Time
	if err := s.DB.Model(&models.Alert{}).Scopes(scope.located).Pluck("timestamp", &alertTimes).Error; err != nil {
		return err
	}
	if err := s.DB.Model(&models.SmokeDetection{}).Scopes(scope.detections).Pluck("timestamp", &smokeTimes).Error; err != nil {
		return err
	}
	if err := s.DB.Model(&models.FlameDetection{}).Scopes(scope.detections).Pluck("timestamp", &flameTimes).Error; err != nil {
		return err
	}

	overview.HourlyTrend = make([]TrendPoint, 12)
	for i := range overview.HourlyTrend {
		overview.HourlyTrend[i].Label = fmt.Sprintf("%02d:00", i*2)
	}
	hourly := func(times []time.Time, field func(*TrendPoint) *int) {
		for _, ts := range times {
			*field(&overview.HourlyTrend[ts.In(models.Local).Hour()/2])++
		}
	}
	hourly(alertTimes, func(p *TrendPoint) *int { return &p.Alerts })
	hourly(smokeTimes, func(p *TrendPoint) *int { return &p.Smoke })
	hourly(flameTimes, func(p *TrendPoint) *int { return &p.Flame })

	overview.Year = models.Now().Year()
	var newest time.Time
	for _, ts := range alertTimes {
		if ts.After(newest) {
			newest = ts
		}
	}
	if !newest.IsZero() {
		overview.Year = newest.In(models.Local).Year()
	}

	overview.MonthlyTrend = make([]TrendPoint, 12)
	for i := range overview.MonthlyTrend {
		overview.MonthlyTrend[i].Label = fmt.Sprintf("%d月", i+1)
	}
	monthly := func(times []time.Time, field func(*TrendPoint) *int) {
		for _, ts := range times {
			local := ts.In(models.Local)
			if local.Year() == overview.Year {
				*field(&overview.MonthlyTrend[int(local.Month())-1])++
			}
		}
	}
	monthly(alertTimes, func(p *TrendPoint) *int { return &p.Alerts })
	monthly(smokeTimes, func(p *TrendPoint) *int { return &p.Smoke })
	monthly(flameTimes, func(p *TrendPoint) *int { return &p.Flame })
	return nil
}
