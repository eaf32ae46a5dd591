package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/models"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// SmokeController 处理烟雾监测相关的请求
type SmokeController struct {
	BaseController
}

// NewSmokeController 创建烟雾监测控制器
func NewSmokeController(ctx *gin.Context, container *container.ServiceContainer) *SmokeController {
	return &SmokeController{BaseController{Ctx: ctx, Container: container}}
}

// HandleSmokeFunc 返回一个处理烟雾监测请求的Gin处理函数
func HandleSmokeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSmokeController(ctx, container)

		switch method {
		case "getDetections":
			controller.GetDetections()
		case "getDetection":
			controller.GetDetection()
		case "getRealtime":
			controller.GetRealtime()
		case "getStats":
			controller.GetStats()
		case "getAlerts":
			controller.GetAlerts()
		case "getSettings":
			controller.GetSettings()
		case "updateSettings":
			controller.UpdateSettings()
		case "export":
			controller.Export()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *SmokeController) detections() services.InterfaceDetectionService {
	return c.Container.GetService("detection").(services.InterfaceDetectionService)
}

func (c *SmokeController) simulator() services.InterfaceSimulatorService {
	return c.Container.GetService("simulator").(services.InterfaceSimulatorService)
}

// 1. GetDetections 烟雾检测记录
// @Summary      烟雾检测记录
// @Tags         Smoke
// @Produce      json
// @Param        search query string false "设备名称或风向"
// @Param        status query string false "状态" Enums(all, normal, warning, alert)
// @Param        level query string false "浓度区间: high>=70, medium 40-70, low<40" Enums(all, high, medium, low)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      400  {object}  ErrorResponse
// @Router       /smoke/detections [get]
// @Security     BearerAuth
func (c *SmokeController) GetDetections() {
	var filter services.SmokeFilter
	if !c.bindQuery(&filter) {
		return
	}

	detections, total, err := c.detections().GetSmokeDetections(filter)
	if err != nil {
		c.fail(err, "查询烟雾检测记录")
		return
	}
	response.Success(c.Ctx, page(detections, total, filter.PaginationQuery))
}

// 2. GetDetection 烟雾检测详情
// @Summary      烟雾检测详情
// @Tags         Smoke
// @Produce      json
// @Param        id path string true "记录ID"
// @Success      200  {object}  models.SmokeDetection
// @Failure      404  {object}  ErrorResponse
// @Router       /smoke/detections/{id} [get]
// @Security     BearerAuth
func (c *SmokeController) GetDetection() {
	detection, err := c.detections().GetSmokeDetectionByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询烟雾检测记录")
		return
	}
	response.Success(c.Ctx, detection)
}

// 3. GetRealtime 最新烟雾实时数据
// @Summary      烟雾实时数据
// @Tags         Smoke
// @Produce      json
// @Success      200  {object}  models.SmokeSnapshot
// @Failure      404  {object}  ErrorResponse
// @Router       /smoke/realtime [get]
// @Security     BearerAuth
func (c *SmokeController) GetRealtime() {
	snapshot, err := c.simulator().LatestSmoke()
	if err != nil {
		c.fail(err, "获取烟雾实时数据")
		return
	}
	response.Success(c.Ctx, snapshot)
}

// 4. GetStats 烟雾检测统计
// @Summary      烟雾检测统计
// @Tags         Smoke
// @Produce      json
// @Success      200  {object}  models.SmokeStats
// @Router       /smoke/stats [get]
// @Security     BearerAuth
func (c *SmokeController) GetStats() {
	stats, err := c.detections().GetSmokeStats()
	if err != nil {
		c.fail(err, "统计烟雾检测")
		return
	}
	response.Success(c.Ctx, stats)
}

// 5. GetAlerts 烟雾类告警
// @Summary      烟雾告警
// @Tags         Smoke
// @Produce      json
// @Param        status query string false "告警状态"
// @Param        level query string false "告警级别"
// @Param        search query string false "标题、描述或设备"
// @Success      200  {object}  models.PageData
// @Router       /smoke/alerts [get]
// @Security     BearerAuth
func (c *SmokeController) GetAlerts() {
	var filter services.AlertFilter
	if !c.bindQuery(&filter) {
		return
	}
	filter.Type = string(models.AlertTypeSmoke)

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alerts, total, err := alertService.GetAlerts(filter)
	if err != nil {
		c.fail(err, "查询烟雾告警")
		return
	}
	response.Success(c.Ctx, page(alerts, total, filter.PaginationQuery))
}

// 6. GetSettings 烟雾实时监测设置
// @Summary      烟雾监测设置
// @Tags         Smoke
// @Produce      json
// @Success      200  {object}  models.SmokeFeedSettings
// @Router       /smoke/settings [get]
// @Security     BearerAuth
func (c *SmokeController) GetSettings() {
	response.Success(c.Ctx, c.simulator().SmokeSettings())
}

// 7. UpdateSettings 更新烟雾实时监测设置
// @Summary      更新烟雾监测设置
// @Description  修改刷新间隔或自动刷新开关只会重启烟雾数据源
// @Tags         Smoke
// @Accept       json
// @Produce      json
// @Param        settings body models.SmokeFeedSettings true "监测设置"
// @Success      200  {object}  models.SmokeFeedSettings
// @Failure      400  {object}  ErrorResponse
// @Router       /smoke/settings [put]
// @Security     BearerAuth
func (c *SmokeController) UpdateSettings() {
	var req models.SmokeFeedSettings
	if !c.bindJSON(&req) {
		return
	}

	settings, err := c.simulator().UpdateSmokeSettings(req)
	if err != nil {
		c.fail(err, "更新烟雾监测设置")
		return
	}
	c.logOperation("update_smoke_settings", "feed:"+services.FeedSmoke,
		fmt.Sprintf("auto_refresh=%t interval=%ds threshold=%d", settings.AutoRefresh, settings.RefreshInterval, settings.AlertThreshold))
	response.Success(c.Ctx, settings)
}

// 8. Export 导出烟雾检测记录
// @Summary      导出烟雾检测记录
// @Tags         Smoke
// @Produce      octet-stream
// @Param        format query string false "导出格式" Enums(csv, xlsx)
// @Param        status query string false "状态"
// @Param        level query string false "浓度区间"
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Router       /smoke/export [get]
// @Security     BearerAuth
func (c *SmokeController) Export() {
	var filter services.SmokeFilter
	if !c.bindQuery(&filter) {
		return
	}

	exportService := c.Container.GetService("export").(services.InterfaceExportService)
	file, err := exportService.ExportSmoke(filter, c.Ctx.Query("format"))
	if err != nil {
		c.fail(err, "导出烟雾检测记录")
		return
	}
	c.sendFile(file)
}
