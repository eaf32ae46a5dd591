package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
)

// 导出格式
const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportTimeFmt   = "2006-01-02 15:04:05"
)

// ExportFile 导出文件
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Table 一个工作表的数据
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]interface{}
}

// InterfaceExportService 定义数据导出服务接口
type InterfaceExportService interface {
	ExportAlerts(filter AlertFilter, format string) (*ExportFile, error)
	ExportSmoke(filter SmokeFilter, format string) (*ExportFile, error)
	ExportFlame(filter FlameFilter, format string) (*ExportFile, error)
	ExportAnalysis(filter AnalysisFilter) (*ExportFile, error)
}

// ExportService 告警、检测记录和分析报表导出
type ExportService struct {
	DB         *gorm.DB
	Config     *config.Config
	Alerts     InterfaceAlertService
	Detections InterfaceDetectionService
	Analysis   InterfaceAnalysisService
	now        func() time.Time
}

// NewExportService 创建导出服务
func NewExportService(db *gorm.DB, cfg *config.Config, alerts InterfaceAlertService, detections InterfaceDetectionService, analysis InterfaceAnalysisService) InterfaceExportService {
	return &ExportService{
		DB:         db,
		Config:     cfg,
		Alerts:     alerts,
		Detections: detections,
		Analysis:   analysis,
		now:        models.Now,
	}
}

// 1 ExportAlerts 按列表过滤条件导出告警
func (s *ExportService) ExportAlerts(filter AlertFilter, format string) (*ExportFile, error) {
	filter.PaginationQuery = models.PaginationQuery{}
	alerts, _, err := s.Alerts.GetAlerts(filter)
	if err != nil {
		return nil, err
	}

	table := Table{
		Sheet:   "告警记录",
		Headers: []string{"告警ID", "类型", "级别", "标题", "描述", "设备", "位置", "时间", "状态", "处理人", "处理结果", "完成时间"},
	}
	for _, a := range alerts {
		resolvedAt := ""
		if a.ResolvedAt != nil {
			resolvedAt = formatTime(*a.ResolvedAt)
		}
		table.Rows = append(table.Rows, []interface{}{
			a.ID, AlertTypeLabels[a.Type], string(a.Level), a.Title, a.Description, a.DeviceName,
			a.Location, formatTime(a.Timestamp), string(a.Status), a.AssignedTo, a.Resolution, resolvedAt,
		})
	}
	return s.render("alerts", format, table)
}

// 2 ExportSmoke 导出烟雾检测记录
func (s *ExportService) ExportSmoke(filter SmokeFilter, format string) (*ExportFile, error) {
	filter.PaginationQuery = models.PaginationQuery{}
	detections, _, err := s.Detections.GetSmokeDetections(filter)
	if err != nil {
		return nil, err
	}

	table := Table{
		Sheet:   "烟雾检测",
		Headers: []string{"记录ID", "设备ID", "设备名称", "时间", "烟雾浓度", "烟雾面积", "风向", "风速", "温度", "湿度", "纬度", "经度", "状态"},
	}
	for _, d := range detections {
		table.Rows = append(table.Rows, []interface{}{
			d.ID, d.DeviceID, d.DeviceName, formatTime(d.Timestamp), d.SmokeLevel, d.SmokeArea,
			d.WindDirection, d.WindSpeed, d.Temperature, d.Humidity,
			d.Coordinates.Latitude, d.Coordinates.Longitude, string(d.Status),
		})
	}
	return s.render("smoke_detections", format, table)
}

// 3 ExportFlame 导出火焰检测记录
func (s *ExportService) ExportFlame(filter FlameFilter, format string) (*ExportFile, error) {
	filter.PaginationQuery = models.PaginationQuery{}
	detections, _, err := s.Detections.GetFlameDetections(filter)
	if err != nil {
		return nil, err
	}

	table := Table{
		Sheet:   "火焰检测",
		Headers: []string{"记录ID", "设备ID", "设备名称", "时间", "火焰大小", "火焰强度", "火焰高度", "蔓延速度", "温度", "湿度", "检测半径", "风向", "风速", "预计面积", "状态"},
	}
	for _, d := range detections {
		area := ""
		if d.EstimatedArea != nil {
			area = strconv.Itoa(*d.EstimatedArea)
		}
		table.Rows = append(table.Rows, []interface{}{
			d.ID, d.DeviceID, d.DeviceName, formatTime(d.Timestamp), d.FlameSize, d.FlameIntensity,
			d.FlameHeight, d.SpreadSpeed, d.Temperature, d.Humidity, d.DetectionRadius,
			d.WindDirection, d.WindSpeed, area, string(d.Status),
		})
	}
	return s.render("flame_detections", format, table)
}

// 4 ExportAnalysis 数据分析报表，每个部分一个工作表
func (s *ExportService) ExportAnalysis(filter AnalysisFilter) (*ExportFile, error) {
	overview, err := s.Analysis.GetOverview(filter)
	if err != nil {
		return nil, err
	}

	totals := Table{Sheet: "汇总", Headers: []string{"指标", "数值"}, Rows: [][]interface{}{
		{"总告警数", overview.Totals.Alerts},
		{"烟雾检测", overview.Totals.SmokeDetections},
		{"火焰检测", overview.Totals.FlameDetections},
		{"识别事件", overview.Totals.RecognitionEvents},
		{"高风险区域", overview.Totals.HighRiskAreas},
	}}
	alertTypes := Table{Sheet: "告警类型分布", Headers: []string{"类型", "名称", "数量"}}
	for _, c := range overview.AlertTypes {
		alertTypes.Rows = append(alertTypes.Rows, []interface{}{c.Key, c.Name, c.Value})
	}
	deviceStatus := Table{Sheet: "设备状态分布", Headers: []string{"状态", "名称", "数量"}}
	for _, c := range overview.DeviceStatus {
		deviceStatus.Rows = append(deviceStatus.Rows, []interface{}{c.Key, c.Name, c.Value})
	}
	areaRisks := Table{Sheet: "区域风险", Headers: []string{"区域", "风险等级", "设备数", "告警数"}}
	for _, r := range overview.AreaRisks {
		areaRisks.Rows = append(areaRisks.Rows, []interface{}{r.Name, string(r.RiskLevel), r.DeviceCount, r.AlertCount})
	}
	hourly := trendTable("告警趋势", "时间", overview.HourlyTrend)
	monthly := trendTable(fmt.Sprintf("%d年月度趋势", overview.Year), "月份", overview.MonthlyTrend)

	data, err := writeXLSX(totals, alertTypes, deviceStatus, areaRisks, hourly, monthly)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    s.filename("analysis", ExportXLSX),
		ContentType: contentTypeXLSX,
		Data:        data,
	}, nil
}

func trendTable(sheet, label string, points []TrendPoint) Table {
	t := Table{Sheet: sheet, Headers: []string{label, "告警", "烟雾", "火焰"}}
	for _, p := range points {
		t.Rows = append(t.Rows, []interface{}{p.Label, p.Alerts, p.Smoke, p.Flame})
	}
	return t
}

func (s *ExportService) render(name, format string, table Table) (*ExportFile, error) {
	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case ExportCSV, "":
		format, contentType = ExportCSV, contentTypeCSV
		data, err = writeCSV(table)
	case ExportXLSX:
		contentType = contentTypeXLSX
		data, err = writeXLSX(table)
	default:
		return nil, ErrExportFormat
	}
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    s.filename(name, format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *ExportService) filename(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", name, s.now().Format("20060102_150405"), ext)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(models.Local).Format(exportTimeFmt)
}

// writeCSV 生成带 UTF-8 BOM 的 CSV，Excel 可直接打开中文
func writeCSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Headers); err != nil {
		return nil, err
	}
	record := make([]string, len(table.Headers))
	for _, row := range table.Rows {
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeXLSX 每个 Table 写入一个工作表
func writeXLSX(tables ...Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("创建表头样式失败: %w", err)
	}

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(table.Sheet); err != nil {
			return nil, fmt.Errorf("创建工作表失败: %w", err)
		}

		if err := f.SetSheetRow(table.Sheet, "A1", &table.Headers); err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(table.Headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(table.Sheet, "A1", last, headerStyle); err != nil {
			return nil, err
		}
		lastCol, err := excelize.ColumnNumberToName(len(table.Headers))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(table.Sheet, "A", lastCol, 18); err != nil {
			return nil, err
		}

		for r, row := range table.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			values := row
			if err := f.SetSheetRow(table.Sheet, cell, &values); err != nil {
				return nil, fmt.Errorf("写入第 %d 行失败: %w", r+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成 Excel 失败: %w", err)
	}
	return buf.Bytes(), nil
}
