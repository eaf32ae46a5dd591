package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// RecognitionController 处理智能识别结果请求
type RecognitionController struct {
	BaseController
}

// NewRecognitionController 创建识别控制器
func NewRecognitionController(ctx *gin.Context, container *container.ServiceContainer) *RecognitionController {
	return &RecognitionController{BaseController{Ctx: ctx, Container: container}}
}

// HandleRecognitionFunc 返回一个处理识别请求的Gin处理函数
func HandleRecognitionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRecognitionController(ctx, container)

		switch method {
		case "getResults":
			controller.GetResults()
		case "getResult":
			controller.GetResult()
		case "getStats":
			controller.GetStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *RecognitionController) service() services.InterfaceRecognitionService {
	return c.Container.GetService("recognition").(services.InterfaceRecognitionService)
}

// 1. GetResults 识别结果列表
// @Summary      识别结果列表
// @Tags         Recognition
// @Produce      json
// @Param        search query string false "设备名称"
// @Param        type query string false "识别类型"
// @Param        device_id query string false "设备ID"
// @Param        confidence query string false "置信度区间" Enums(all, high, medium, low)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      400  {object}  ErrorResponse
// @Router       /recognitions [get]
// @Security     BearerAuth
func (c *RecognitionController) GetResults() {
	var filter services.RecognitionFilter
	if !c.bindQuery(&filter) {
		return
	}

	results, total, err := c.service().GetResults(filter)
	if err != nil {
		c.fail(err, "查询识别结果")
		return
	}
	response.Success(c.Ctx, page(results, total, filter.PaginationQuery))
}

// 2. GetResult 识别结果详情
// @Summary      识别结果详情
// @Tags         Recognition
// @Produce      json
// @Param        id path string true "识别记录ID"
// @Success      200  {object}  models.RecognitionResult
// @Failure      404  {object}  ErrorResponse
// @Router       /recognitions/{id} [get]
// @Security     BearerAuth
func (c *RecognitionController) GetResult() {
	result, err := c.service().GetResultByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询识别结果")
		return
	}
	response.Success(c.Ctx, result)
}

// 3. GetStats 识别统计
// @Summary      识别统计
// @Tags         Recognition
// @Produce      json
// @Success      200  {object}  models.RecognitionStats
// @Router       /recognitions/stats [get]
// @Security     BearerAuth
func (c *RecognitionController) GetStats() {
	stats, err := c.service().GetStats()
	if err != nil {
		c.fail(err, "统计识别结果")
		return
	}
	response.Success(c.Ctx, stats)
}
