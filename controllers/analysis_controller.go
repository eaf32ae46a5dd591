package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// AnalysisController 处理数据分析请求
type AnalysisController struct {
	BaseController
}

// NewAnalysisController 创建数据分析控制器
func NewAnalysisController(ctx *gin.Context, container *container.ServiceContainer) *AnalysisController {
	return &AnalysisController{BaseController{Ctx: ctx, Container: container}}
}

// HandleAnalysisFunc 返回一个处理数据分析请求的Gin处理函数
func HandleAnalysisFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnalysisController(ctx, container)

		switch method {
		case "getOverview":
			controller.GetOverview()
		case "export":
			controller.Export()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetOverview 数据分析概览
// @Summary      数据分析概览
// @Description  汇总、告警类型分布、设备状态分布、区域风险、按两小时分组的趋势和年度月趋势
// @Tags         Analysis
// @Produce      json
// @Param        area query string false "区域名称，按所属街道/镇过滤"
// @Success      200  {object}  services.AnalysisOverview
// @Failure      404  {object}  ErrorResponse
// @Router       /analysis/overview [get]
// @Security     BearerAuth
func (c *AnalysisController) GetOverview() {
	var filter services.AnalysisFilter
	if !c.bindQuery(&filter) {
		return
	}

	analysisService := c.Container.GetService("analysis").(services.InterfaceAnalysisService)
	overview, err := analysisService.GetOverview(filter)
	if err != nil {
		c.fail(err, "生成数据分析")
		return
	}
	response.Success(c.Ctx, overview)
}

// 2. Export 导出数据分析报表
// @Summary      导出分析报表
// @Tags         Analysis
// @Produce      octet-stream
// @Param        area query string false "区域名称"
// @Success      200  {file}    file
// @Failure      404  {object}  ErrorResponse
// @Router       /analysis/export [get]
// @Security     BearerAuth
func (c *AnalysisController) Export() {
	var filter services.AnalysisFilter
	if !c.bindQuery(&filter) {
		return
	}

	exportService := c.Container.GetService("export").(services.InterfaceExportService)
	file, err := exportService.ExportAnalysis(filter)
	if err != nil {
		c.fail(err, "导出分析报表")
		return
	}
	c.sendFile(file)
}
