package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// DashboardController 处理首页仪表盘请求
type DashboardController struct {
	BaseController
}

// NewDashboardController 创建仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{BaseController{Ctx: ctx, Container: container}}
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getOverview":
			controller.GetOverview()
		case "getDevices":
			controller.GetDevices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetOverview 仪表盘概览
// @Summary      仪表盘概览
// @Description  设备与告警统计、系统健康度、告警率和最近 5 条告警
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardOverview
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/overview [get]
// @Security     BearerAuth
func (c *DashboardController) GetOverview() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	overview, err := dashboardService.GetOverview()
	if err != nil {
		c.fail(err, "获取仪表盘数据")
		return
	}
	response.Success(c.Ctx, overview)
}

// 2. GetDevices 仪表盘设备列表
// @Summary      仪表盘设备列表
// @Tags         Dashboard
// @Produce      json
// @Param        status query string false "设备状态" Enums(all, online, offline, maintenance, fault)
// @Param        search query string false "名称或位置"
// @Success      200  {array}   models.MonitorDevice
// @Failure      400  {object}  ErrorResponse
// @Router       /dashboard/devices [get]
// @Security     BearerAuth
func (c *DashboardController) GetDevices() {
	var filter services.DashboardDeviceFilter
	if !c.bindQuery(&filter) {
		return
	}

	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	devices, err := dashboardService.GetDevices(filter)
	if err != nil {
		c.fail(err, "获取设备列表")
		return
	}
	response.Success(c.Ctx, devices)
}
