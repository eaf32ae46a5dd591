package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// InspectionController 处理巡检记录相关的请求
type InspectionController struct {
	BaseController
}

// NewInspectionController 创建巡检控制器
func NewInspectionController(ctx *gin.Context, container *container.ServiceContainer) *InspectionController {
	return &InspectionController{BaseController{Ctx: ctx, Container: container}}
}

// HandleInspectionFunc 返回一个处理巡检请求的Gin处理函数
func HandleInspectionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInspectionController(ctx, container)

		switch method {
		case "getInspections":
			controller.GetInspections()
		case "getInspection":
			controller.GetInspection()
		case "createInspection":
			controller.CreateInspection()
		case "updateInspection":
			controller.UpdateInspection()
		case "deleteInspection":
			controller.DeleteInspection()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *InspectionController) service() services.InterfaceInspectionService {
	return c.Container.GetService("inspection").(services.InterfaceInspectionService)
}

// 1. GetInspections 巡检记录列表
// @Summary      巡检记录列表
// @Description  start_date 和 end_date 按整天包含过滤计划日期
// @Tags         Inspection
// @Produce      json
// @Param        search query string false "巡检员或描述"
// @Param        area query string false "巡检区域"
// @Param        status query string false "状态" Enums(all, pending, in-progress, completed, overdue)
// @Param        start_date query string false "开始日期 YYYY-MM-DD"
// @Param        end_date query string false "结束日期 YYYY-MM-DD"
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      400  {object}  ErrorResponse
// @Router       /inspections [get]
// @Security     BearerAuth
func (c *InspectionController) GetInspections() {
	var filter services.InspectionFilter
	if !c.bindQuery(&filter) {
		return
	}

	records, total, err := c.service().GetInspections(filter)
	if err != nil {
		c.fail(err, "查询巡检记录")
		return
	}
	response.Success(c.Ctx, page(records, total, filter.PaginationQuery))
}

// 2. GetInspection 巡检记录详情
// @Summary      巡检记录详情
// @Tags         Inspection
// @Produce      json
// @Param        id path string true "巡检记录ID"
// @Success      200  {object}  models.InspectionRecord
// @Failure      404  {object}  ErrorResponse
// @Router       /inspections/{id} [get]
// @Security     BearerAuth
func (c *InspectionController) GetInspection() {
	record, err := c.service().GetInspectionByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询巡检记录")
		return
	}
	response.Success(c.Ctx, record)
}

// 3. CreateInspection 新增巡检计划
// @Summary      新增巡检
// @Tags         Inspection
// @Accept       json
// @Produce      json
// @Param        request body services.CreateInspectionRequest true "巡检信息"
// @Success      201  {object}  models.InspectionRecord
// @Failure      400  {object}  ErrorResponse
// @Router       /inspections [post]
// @Security     BearerAuth
func (c *InspectionController) CreateInspection() {
	var req services.CreateInspectionRequest
	if !c.bindJSON(&req) {
		return
	}

	record, err := c.service().CreateInspection(req)
	if err != nil {
		c.fail(err, "新增巡检记录")
		return
	}
	c.logOperation("create_inspection", "inspection:"+record.ID, record.Area)
	response.Created(c.Ctx, record)
}

// 4. UpdateInspection 更新巡检记录
// @Summary      更新巡检
// @Tags         Inspection
// @Accept       json
// @Produce      json
// @Param        id path string true "巡检记录ID"
// @Param        request body services.UpdateInspectionRequest true "需要更新的字段"
// @Success      200  {object}  models.InspectionRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /inspections/{id} [put]
// @Security     BearerAuth
func (c *InspectionController) UpdateInspection() {
	var req services.UpdateInspectionRequest
	if !c.bindJSON(&req) {
		return
	}

	record, err := c.service().UpdateInspection(c.Ctx.Param("id"), req)
	if err != nil {
		c.fail(err, "更新巡检记录")
		return
	}
	c.logOperation("update_inspection", "inspection:"+record.ID, string(record.Status))
	response.Success(c.Ctx, record)
}

// 5. DeleteInspection 删除巡检记录
// @Summary      删除巡检
// @Tags         Inspection
// @Produce      json
// @Param        id path string true "巡检记录ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /inspections/{id} [delete]
// @Security     BearerAuth
func (c *InspectionController) DeleteInspection() {
	id := c.Ctx.Param("id")
	if err := c.service().DeleteInspection(id); err != nil {
		c.fail(err, "删除巡检记录")
		return
	}
	c.logOperation("delete_inspection", "inspection:"+id, "")
	response.Success(c.Ctx, gin.H{"id": id})
}
