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

// FlameController 处理火焰监测相关的请求
type FlameController struct {
	BaseController
}

// NewFlameController 创建火焰监测控制器
func NewFlameController(ctx *gin.Context, container *container.ServiceContainer) *FlameController {
	return &FlameController{BaseController{Ctx: ctx, Container: container}}
}

// HandleFlameFunc 返回一个处理火焰监测请求的Gin处理函数
func HandleFlameFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFlameController(ctx, container)

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

func (c *FlameController) detections() services.InterfaceDetectionService {
	return c.Container.GetService("detection").(services.InterfaceDetectionService)
}

func (c *FlameController) simulator() services.InterfaceSimulatorService {
	return c.Container.GetService("simulator").(services.InterfaceSimulatorService)
}

// 1. GetDetections 火焰检测记录
// @Summary      火焰检测记录
// @Tags         Flame
// @Produce      json
// @Param        search query string false "设备名称"
// @Param        status query string false "状态" Enums(all, detected, controlled, extinguished)
// @Param        device_id query string false "设备ID"
// @Param        intensity query string false "强度区间: high>=80, medium 50-80, low<50" Enums(all, high, medium, low)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      400  {object}  ErrorResponse
// @Router       /flame/detections [get]
// @Security     BearerAuth
func (c *FlameController) GetDetections() {
	var filter services.FlameFilter
	if !c.bindQuery(&filter) {
		return
	}

	detections, total, err := c.detections().GetFlameDetections(filter)
	if err != nil {
		c.fail(err, "查询火焰检测记录")
		return
	}
	response.Success(c.Ctx, page(detections, total, filter.PaginationQuery))
}

// 2. GetDetection 火焰检测详情
// @Summary      火焰检测详情
// @Tags         Flame
// @Produce      json
// @Param        id path string true "记录ID"
// @Success      200  {object}  models.FlameDetection
// @Failure      404  {object}  ErrorResponse
// @Router       /flame/detections/{id} [get]
// @Security     BearerAuth
func (c *FlameController) GetDetection() {
	detection, err := c.detections().GetFlameDetectionByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询火焰检测记录")
		return
	}
	response.Success(c.Ctx, detection)
}

// 3. GetRealtime 最新火焰实时数据
// @Summary      火焰实时数据
// @Description  risk_label: 极高(>=80) 高(>=60) 中(>=40) 低
// @Tags         Flame
// @Produce      json
// @Success      200  {object}  models.FlameSnapshot
// @Failure      404  {object}  ErrorResponse
// @Router       /flame/realtime [get]
// @Security     BearerAuth
func (c *FlameController) GetRealtime() {
	snapshot, err := c.simulator().LatestFlame()
	if err != nil {
		c.fail(err, "获取火焰实时数据")
		return
	}
	response.Success(c.Ctx, snapshot)
}

// 4. GetStats 火焰检测统计
// @Summary      火焰检测统计
// @Tags         Flame
// @Produce      json
// @Success      200  {object}  models.FlameStats
// @Router       /flame/stats [get]
// @Security     BearerAuth
func (c *FlameController) GetStats() {
	stats, err := c.detections().GetFlameStats()
	if err != nil {
		c.fail(err, "统计火焰检测")
		return
	}
	response.Success(c.Ctx, stats)
}

// 5. GetAlerts 火焰类告警
// @Summary      火焰告警
// @Tags         Flame
// @Produce      json
// @Param        status query string false "告警状态"
// @Param        level query string false "告警级别"
// @Param        search query string false "标题、描述或设备"
// @Success      200  {object}  models.PageData
// @Router       /flame/alerts [get]
// @Security     BearerAuth
func (c *FlameController) GetAlerts() {
	var filter services.AlertFilter
	if !c.bindQuery(&filter) {
		return
	}
	filter.Type = string(models.AlertTypeFlame)

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alerts, total, err := alertService.GetAlerts(filter)
	if err != nil {
		c.fail(err, "查询火焰告警")
		return
	}
	response.Success(c.Ctx, page(alerts, total, filter.PaginationQuery))
}

// 6. GetSettings 火焰实时监测设置
// @Summary      火焰监测设置
// @Tags         Flame
// @Produce      json
// @Success      200  {object}  models.FlameFeedSettings
// @Router       /flame/settings [get]
// @Security     BearerAuth
func (c *FlameController) GetSettings() {
	response.Success(c.Ctx, c.simulator().FlameSettings())
}

// 7. UpdateSettings 更新火焰实时监测设置
// @Summary      更新火焰监测设置
// @Tags         Flame
// @Accept       json
// @Produce      json
// @Param        settings body models.FlameFeedSettings true "监测设置"
// @Success      200  {object}  models.FlameFeedSettings
// @Failure      400  {object}  ErrorResponse
// @Router       /flame/settings [put]
// @Security     BearerAuth
func (c *FlameController) UpdateSettings() {
	var req models.FlameFeedSettings
	if !c.bindJSON(&req) {
		return
	}

	settings, err := c.simulator().UpdateFlameSettings(req)
	if err != nil {
		c.fail(err, "更新火焰监测设置")
		return
	}
	c.logOperation("update_flame_settings", "feed:"+services.FeedFlame,
		fmt.Sprintf("auto_refresh=%t interval=%ds intensity=%d", settings.AutoRefresh, settings.RefreshInterval, settings.IntensityThreshold))
	response.Success(c.Ctx, settings)
}

// 8. Export 导出火焰检测记录
// @Summary      导出火焰检测记录
// @Tags         Flame
// @Produce      octet-stream
// @Param        format query string false "导出格式" Enums(csv, xlsx)
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Router       /flame/export [get]
// @Security     BearerAuth
func (c *FlameController) Export() {
	var filter services.FlameFilter
	if !c.bindQuery(&filter) {
		return
	}

	exportService := c.Container.GetService("export").(services.InterfaceExportService)
	file, err := exportService.ExportFlame(filter, c.Ctx.Query("format"))
	if err != nil {
		c.fail(err, "导出火焰检测记录")
		return
	}
	c.sendFile(file)
}
