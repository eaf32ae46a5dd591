package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// AreaController 处理监控区域请求
type AreaController struct {
	BaseController
}

// NewAreaController 创建区域控制器
func NewAreaController(ctx *gin.Context, container *container.ServiceContainer) *AreaController {
	return &AreaController{BaseController{Ctx: ctx, Container: container}}
}

// HandleAreaFunc 返回一个处理区域请求的Gin处理函数
func HandleAreaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAreaController(ctx, container)

		switch method {
		case "getAreas":
			controller.GetAreas()
		case "getArea":
			controller.GetArea()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAreas 区域列表，附带在线设备数和告警数
// @Summary      区域列表
// @Tags         Area
// @Produce      json
// @Success      200  {array}   models.AreaOverview
// @Router       /areas [get]
// @Security     BearerAuth
func (c *AreaController) GetAreas() {
	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	areas, err := areaService.GetAreas()
	if err != nil {
		c.fail(err, "查询区域")
		return
	}
	response.Success(c.Ctx, areas)
}

// 2. GetArea 区域详情
// @Summary      区域详情
// @Tags         Area
// @Produce      json
// @Param        id path string true "区域ID"
// @Success      200  {object}  models.AreaOverview
// @Failure      404  {object}  ErrorResponse
// @Router       /areas/{id} [get]
// @Security     BearerAuth
func (c *AreaController) GetArea() {
	areaService := c.Container.GetService("area").(services.InterfaceAreaService)
	area, err := areaService.GetAreaByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询区域")
		return
	}
	response.Success(c.Ctx, area)
}
