package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// SystemLogController 操作日志查询
type SystemLogController struct {
	BaseController
}

// NewSystemLogController 创建操作日志控制器
func NewSystemLogController(ctx *gin.Context, container *container.ServiceContainer) *SystemLogController {
	return &SystemLogController{BaseController{Ctx: ctx, Container: container}}
}

// HandleSystemLogFunc 返回一个处理操作日志请求的Gin处理函数
func HandleSystemLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSystemLogController(ctx, container)

		switch method {
		case "getLogs":
			controller.GetLogs()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetLogs 操作日志列表
// @Summary      操作日志
// @Tags         SystemLog
// @Produce      json
// @Param        user_id query string false "用户ID"
// @Param        action query string false "操作"
// @Param        search query string false "操作对象或详情"
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      403  {object}  ErrorResponse
// @Router       /system-logs [get]
// @Security     BearerAuth
func (c *SystemLogController) GetLogs() {
	var filter services.SystemLogFilter
	if !c.bindQuery(&filter) {
		return
	}

	logService := c.Container.GetService("system_log").(services.InterfaceSystemLogService)
	logs, total, err := logService.GetLogs(filter)
	if err != nil {
		c.fail(err, "查询操作日志")
		return
	}
	response.Success(c.Ctx, page(logs, total, filter.PaginationQuery))
}
