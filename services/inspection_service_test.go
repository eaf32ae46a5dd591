package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"straw-monitor-service/models"
)

func newInspectionService(t *testing.T) InterfaceInspectionService {
	return NewInspectionService(newTestDB(t), testConfig())
}

func TestGetInspectionsDateRange(t *testing.T) {
	s := newInspectionService(t)

	all, total, err := s.GetInspections(InspectionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Equal(t, "inspect006", all[len(all)-1].ID)

	ranged, total, err := s.GetInspections(InspectionFilter{StartDate: "2025-07-14", EndDate: "2025-07-16"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, ranged, 2)
	assert.Equal(t, "inspect004", ranged[0].ID)
	assert.Equal(t, "inspect005", ranged[1].ID)

	// 结束日期包含当天
	sameDay, _, err := s.GetInspections(InspectionFilter{StartDate: "2025-07-22", EndDate: "2025-07-22"})
	require.NoError(t, err)
	assert.Len(t, sameDay, 3)

	_, _, err = s.GetInspections(InspectionFilter{StartDate: "22/07/2025"})
	assert.Error(t, err)
}

func TestGetInspectionsFilters(t *testing.T) {
	s := newInspectionService(t)

	completed, _, err := s.GetInspections(InspectionFilter{Status: "completed"})
	require.NoError(t, err)
	assert.Len(t, completed, 3)

	byArea, _, err := s.GetInspections(InspectionFilter{Area: "太平镇田间地头"})
	require.NoError(t, err)
	require.Len(t, byArea, 1)
	assert.Equal(t, "赵文斌", byArea[0].Inspector)

	byInspector, _, err := s.GetInspections(InspectionFilter{Search: "赵"})
	require.NoError(t, err)
	assert.Len(t, byInspector, 2)
}

func TestCreateAndUpdateInspection(t *testing.T) {
	s := newInspectionService(t)

	record, err := s.CreateInspection(CreateInspectionRequest{
		Inspector:     "孙德胜",
		Area:          "北湖街道农田区域",
		ScheduledDate: "2025-07-25",
		Description:   "例行巡检",
	})
	require.NoError(t, err)
	assert.Contains(t, record.ID, "inspection_")
	assert.Equal(t, models.InspectionPending, record.Status)
	assert.Equal(t, "2025-07-25", record.ScheduledDate.In(models.Local).Format(dateLayout))

	status := models.InspectionCompleted
	updated, err := s.UpdateInspection(record.ID, UpdateInspectionRequest{
		Status:     &status,
		ActualDate: strPtr("2025-07-25"),
		Findings:   strPtr("未发现焚烧痕迹"),
		Photos:     []string{"photo_a.jpg", "photo_b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.InspectionCompleted, updated.Status)
	assert.Equal(t, "未发现焚烧痕迹", updated.Findings)
	assert.Equal(t, []string{"photo_a.jpg", "photo_b.jpg"}, updated.Photos)
	require.NotNil(t, updated.ActualDate)
	assert.Equal(t, "例行巡检", updated.Description)

	_, err = s.UpdateInspection(record.ID, UpdateInspectionRequest{ScheduledDate: strPtr("not-a-date")})
	assert.Error(t, err)

	_, err = s.CreateInspection(CreateInspectionRequest{Inspector: "x", Area: "y", ScheduledDate: "2025/07/25", Description: "z"})
	assert.Error(t, err)
}

func TestDeleteInspection(t *testing.T) {
	s := newInspectionService(t)
	before, total, err := s.GetInspections(InspectionFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(6), total)

	require.NoError(t, s.DeleteInspection("inspect006"))

	// 只删除指定记录
	after, total, err := s.GetInspections(InspectionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	expected := make([]models.InspectionRecord, 0, len(before)-1)
	for _, r := range before {
		if r.ID != "inspect006" {
			expected = append(expected, r)
		}
	}
	assert.Equal(t, expected, after)

	_, err = s.GetInspectionByID("inspect006")
	assert.ErrorIs(t, err, ErrInspectionNotFound)
	assert.ErrorIs(t, s.DeleteInspection("inspect006"), ErrInspectionNotFound)
	_, err = s.UpdateInspection("inspect006", UpdateInspectionRequest{})
	assert.ErrorIs(t, err, ErrInspectionNotFound)
}
