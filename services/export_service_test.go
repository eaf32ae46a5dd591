package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportService(t *testing.T) *ExportService {
	db := newTestDB(t)
	cfg := testConfig()
	users := NewUserService(db, cfg, NewJWTService(cfg), newCaptchaService(0, nil))
	s := NewExportService(db, cfg,
		NewAlertService(db, cfg, users),
		NewDetectionService(db, cfg),
		NewAnalysisService(db, cfg, NewAreaService(db, cfg)),
	).(*ExportService)
	s.now = func() time.Time { return time.Date(2025, 7, 22, 14, 30, 5, 0, time.UTC) }
	return s
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("\xEF\xBB\xBF")), "缺少 BOM")
	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportAlertsCSV(t *testing.T) {
	s := newExportService(t)

	file, err := s.ExportAlerts(AlertFilter{Status: "processing"}, "")
	require.NoError(t, err)
	assert.Equal(t, "alerts_20250722_143005.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	records := readCSV(t, file.Data)
	require.Len(t, records, 5)
	assert.Equal(t, "告警ID", records[0][0])
	assert.Len(t, records[0], 12)
	assert.Equal(t, "alert001", records[1][0])
	assert.Equal(t, "火焰告警", records[1][1])
	assert.Equal(t, "2025-07-22 14:18:45", records[1][7])
	assert.Equal(t, "刘建国", records[1][9])
}

func TestExportDetectionsXLSX(t *testing.T) {
	s := newExportService(t)

	file, err := s.ExportSmoke(SmokeFilter{Level: "high"}, ExportXLSX)
	require.NoError(t, err)
	assert.Equal(t, "smoke_detections_20250722_143005.xlsx", file.Filename)
	assert.Equal(t, contentTypeXLSX, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"烟雾检测"}, f.GetSheetList())
	rows, err := f.GetRows("烟雾检测")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "烟雾浓度", rows[0][4])
	assert.Equal(t, "85", rows[1][4])

	flame, err := s.ExportFlame(FlameFilter{}, ExportCSV)
	require.NoError(t, err)
	records := readCSV(t, flame.Data)
	require.Len(t, records, 7)
	assert.Equal(t, "flame001", records[1][0])
	assert.Equal(t, "180", records[1][13])
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	s := newExportService(t)

	_, err := s.ExportAlerts(AlertFilter{}, "pdf")
	assert.ErrorIs(t, err, ErrExportFormat)
	_, err = s.ExportFlame(FlameFilter{}, "json")
	assert.ErrorIs(t, err, ErrExportFormat)
}

func TestExportAnalysisWorkbook(t *testing.T) {
	s := newExportService(t)

	file, err := s.ExportAnalysis(AnalysisFilter{})
	require.NoError(t, err)
	assert.Equal(t, "analysis_20250722_143005.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"汇总", "告警类型分布", "设备状态分布", "区域风险", "告警趋势", "2025年月度趋势"}, f.GetSheetList())

	total, err := f.GetCellValue("汇总", "B2")
	require.NoError(t, err)
	assert.Equal(t, "10", total)

	rows, err := f.GetRows("告警趋势")
	require.NoError(t, err)
	assert.Len(t, rows, 13)

	_, err = s.ExportAnalysis(AnalysisFilter{Area: "不存在"})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}
