package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/models"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// SettingsController 系统设置，仅管理员可访问
type SettingsController struct {
	BaseController
}

// NewSettingsController 创建系统设置控制器
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{BaseController{Ctx: ctx, Container: container}}
}

// HandleSettingsFunc 返回一个处理系统设置请求的Gin处理函数
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "getSettings":
			controller.GetSettings()
		case "updateSettings":
			controller.UpdateSettings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetSettings 获取系统设置
// @Summary      系统设置
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  models.SystemSettings
// @Failure      403  {object}  ErrorResponse
// @Router       /settings [get]
// @Security     BearerAuth
func (c *SettingsController) GetSettings() {
	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.GetSettings()
	if err != nil {
		c.fail(err, "获取系统设置")
		return
	}
	response.Success(c.Ctx, settings)
}

// 2. UpdateSettings 保存系统设置
// @Summary      保存系统设置
// @Description  保存后烟雾浓度和火焰强度阈值同步到实时监测
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings body models.SystemSettings true "系统设置"
// @Success      200  {object}  models.SystemSettings
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /settings [put]
// @Security     BearerAuth
func (c *SettingsController) UpdateSettings() {
	var req models.SystemSettings
	if !c.bindJSON(&req) {
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.UpdateSettings(req)
	if err != nil {
		c.fail(err, "保存系统设置")
		return
	}
	c.logOperation("update_settings", "settings", "")
	response.Success(c.Ctx, settings)
}
