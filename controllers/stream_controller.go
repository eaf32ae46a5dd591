package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// StreamController 处理视频流相关的请求
type StreamController struct {
	BaseController
}

// NewStreamController 创建视频流控制器
func NewStreamController(ctx *gin.Context, container *container.ServiceContainer) *StreamController {
	return &StreamController{BaseController{Ctx: ctx, Container: container}}
}

// HandleStreamFunc 返回一个处理视频流请求的Gin处理函数
func HandleStreamFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStreamController(ctx, container)

		switch method {
		case "getStreams":
			controller.GetStreams()
		case "getStream":
			controller.GetStream()
		case "getStats":
			controller.GetStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *StreamController) service() services.InterfaceStreamService {
	return c.Container.GetService("stream").(services.InterfaceStreamService)
}

// 1. GetStreams 视频流列表
// @Summary      视频流列表
// @Tags         Stream
// @Produce      json
// @Param        search query string false "设备名称"
// @Param        status query string false "状态" Enums(all, live, offline, recording)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Router       /streams [get]
// @Security     BearerAuth
func (c *StreamController) GetStreams() {
	var filter services.StreamFilter
	if !c.bindQuery(&filter) {
		return
	}

	streams, total, err := c.service().GetStreams(filter)
	if err != nil {
		c.fail(err, "查询视频流")
		return
	}
	response.Success(c.Ctx, page(streams, total, filter.PaginationQuery))
}

// 2. GetStream 视频流详情，附带所属设备
// @Summary      视频流详情
// @Tags         Stream
// @Produce      json
// @Param        id path string true "视频流ID"
// @Success      200  {object}  services.StreamDetail
// @Failure      404  {object}  ErrorResponse
// @Router       /streams/{id} [get]
// @Security     BearerAuth
func (c *StreamController) GetStream() {
	stream, err := c.service().GetStreamByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询视频流")
		return
	}
	response.Success(c.Ctx, stream)
}

// 3. GetStats 视频监控统计
// @Summary      视频监控统计
// @Tags         Stream
// @Produce      json
// @Success      200  {object}  models.StreamStats
// @Router       /streams/stats [get]
// @Security     BearerAuth
func (c *StreamController) GetStats() {
	stats, err := c.service().GetStats()
	if err != nil {
		c.fail(err, "统计视频流")
		return
	}
	response.Success(c.Ctx, stats)
}
