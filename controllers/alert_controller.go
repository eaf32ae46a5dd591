package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// InterfaceAlertController 定义告警控制器接口
type InterfaceAlertController interface {
	GetAlerts()
	GetSummary()
	GetAssignees()
	GetAlert()
	ProcessAlert()
	DismissAlert()
	ResolveAlert()
	AssignAlert()
	DeleteAlert()
	BatchAlerts()
	NotifyAlert()
	GetSMSAlerts()
	GetWeChatAlerts()
	Export()
}

// AlertController 处理告警相关的请求
type AlertController struct {
	BaseController
}

// NewAlertController 创建告警控制器
func NewAlertController(ctx *gin.Context, container *container.ServiceContainer) *AlertController {
	return &AlertController{BaseController{Ctx: ctx, Container: container}}
}

// HandleAlertFunc 返回一个处理告警请求的Gin处理函数
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "getSummary":
			controller.GetSummary()
		case "getAssignees":
			controller.GetAssignees()
		case "getAlert":
			controller.GetAlert()
		case "processAlert":
			controller.ProcessAlert()
		case "dismissAlert":
			controller.DismissAlert()
		case "resolveAlert":
			controller.ResolveAlert()
		case "assignAlert":
			controller.AssignAlert()
		case "deleteAlert":
			controller.DeleteAlert()
		case "batchAlerts":
			controller.BatchAlerts()
		case "notifyAlert":
			controller.NotifyAlert()
		case "getSMSAlerts":
			controller.GetSMSAlerts()
		case "getWeChatAlerts":
			controller.GetWeChatAlerts()
		case "export":
			controller.Export()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *AlertController) service() services.InterfaceAlertService {
	return c.Container.GetService("alert").(services.InterfaceAlertService)
}

func (c *AlertController) notifications() services.InterfaceNotificationService {
	return c.Container.GetService("notification").(services.InterfaceNotificationService)
}

// 1. GetAlerts 告警列表，最新的在前
// @Summary      告警列表
// @Tags         Alert
// @Produce      json
// @Param        search query string false "标题、描述或设备名称"
// @Param        type query string false "告警类型" Enums(all, smoke, flame, person, vehicle, machinery, system)
// @Param        level query string false "告警级别" Enums(all, low, medium, high, critical)
// @Param        status query string false "处理状态" Enums(all, pending, processing, resolved, dismissed)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      400  {object}  ErrorResponse
// @Router       /alerts [get]
// @Security     BearerAuth
func (c *AlertController) GetAlerts() {
	var filter services.AlertFilter
	if !c.bindQuery(&filter) {
		return
	}

	alerts, total, err := c.service().GetAlerts(filter)
	if err != nil {
		c.fail(err, "查询告警列表")
		return
	}
	response.Success(c.Ctx, page(alerts, total, filter.PaginationQuery))
}

// 2. GetSummary 告警处理情况汇总
// @Summary      告警汇总
// @Tags         Alert
// @Produce      json
// @Success      200  {object}  models.AlertSummary
// @Router       /alerts/summary [get]
// @Security     BearerAuth
func (c *AlertController) GetSummary() {
	summary, err := c.service().GetSummary()
	if err != nil {
		c.fail(err, "统计告警")
		return
	}
	response.Success(c.Ctx, summary)
}

// 3. GetAssignees 可指派的处理人
// @Summary      可指派处理人
// @Tags         Alert
// @Produce      json
// @Success      200  {array}   models.User
// @Router       /alerts/assignees [get]
// @Security     BearerAuth
func (c *AlertController) GetAssignees() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, err := userService.GetAssignees()
	if err != nil {
		c.fail(err, "查询处理人")
		return
	}
	response.Success(c.Ctx, users)
}

// 4. GetAlert 告警详情
// @Summary      告警详情
// @Tags         Alert
// @Produce      json
// @Param        id path string true "告警ID"
// @Success      200  {object}  models.Alert
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id} [get]
// @Security     BearerAuth
func (c *AlertController) GetAlert() {
	alert, err := c.service().GetAlertByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询告警")
		return
	}
	response.Success(c.Ctx, alert)
}

// 5. ProcessAlert 开始处理告警
// @Summary      处理告警
// @Tags         Alert
// @Produce      json
// @Param        id path string true "告警ID"
// @Success      200  {object}  models.Alert
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id}/process [post]
// @Security     BearerAuth
func (c *AlertController) ProcessAlert() {
	alert, err := c.service().Process(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "处理告警")
		return
	}
	c.logOperation("process_alert", "alert:"+alert.ID, "")
	response.Success(c.Ctx, alert)
}

// 6. DismissAlert 忽略告警（误报）
// @Summary      忽略告警
// @Tags         Alert
// @Produce      json
// @Param        id path string true "告警ID"
// @Success      200  {object}  models.Alert
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id}/dismiss [post]
// @Security     BearerAuth
func (c *AlertController) DismissAlert() {
	alert, err := c.service().Dismiss(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "忽略告警")
		return
	}
	c.logOperation("dismiss_alert", "alert:"+alert.ID, "")
	response.Success(c.Ctx, alert)
}

// 7. ResolveAlert 完成告警处理
// @Summary      完成处理
// @Tags         Alert
// @Accept       json
// @Produce      json
// @Param        id path string true "告警ID"
// @Param        request body services.ResolveRequest false "处理结果"
// @Success      200  {object}  models.Alert
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id}/resolve [post]
// @Security     BearerAuth
func (c *AlertController) ResolveAlert() {
	var req services.ResolveRequest
	if c.Ctx.Request.ContentLength > 0 && !c.bindJSON(&req) {
		return
	}

	alert, err := c.service().Resolve(c.Ctx.Param("id"), req)
	if err != nil {
		c.fail(err, "完成告警处理")
		return
	}
	c.logOperation("resolve_alert", "alert:"+alert.ID, req.Resolution)
	response.Success(c.Ctx, alert)
}

// 8. AssignAlert 指派处理人
// @Summary      指派处理人
// @Description  assigned_to 可以是姓名或用户名，指派后告警进入处理中
// @Tags         Alert
// @Accept       json
// @Produce      json
// @Param        id path string true "告警ID"
// @Param        request body services.AssignRequest true "处理人"
// @Success      200  {object}  models.Alert
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id}/assign [post]
// @Security     BearerAuth
func (c *AlertController) AssignAlert() {
	var req services.AssignRequest
	if !c.bindJSON(&req) {
		return
	}

	alert, err := c.service().Assign(c.Ctx.Param("id"), req)
	if err != nil {
		c.fail(err, "指派告警")
		return
	}
	c.logOperation("assign_alert", "alert:"+alert.ID, alert.AssignedTo)
	response.Success(c.Ctx, alert)
}

// 9. DeleteAlert 删除告警
// @Summary      删除告警
// @Tags         Alert
// @Produce      json
// @Param        id path string true "告警ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id} [delete]
// @Security     BearerAuth
func (c *AlertController) DeleteAlert() {
	id := c.Ctx.Param("id")
	if err := c.service().DeleteAlert(id); err != nil {
		c.fail(err, "删除告警")
		return
	}
	c.logOperation("delete_alert", "alert:"+id, "")
	response.Success(c.Ctx, gin.H{"id": id})
}

// 10. BatchAlerts 批量处理告警
// @Summary      批量处理告警
// @Description  operation: process / resolve / dismiss / delete
// @Tags         Alert
// @Accept       json
// @Produce      json
// @Param        request body services.BatchRequest true "批量操作"
// @Success      200  {object}  models.BatchResult
// @Failure      400  {object}  ErrorResponse
// @Router       /alerts/batch [post]
// @Security     BearerAuth
func (c *AlertController) BatchAlerts() {
	var req services.BatchRequest
	if !c.bindJSON(&req) {
		return
	}

	result, err := c.service().Batch(req)
	if err != nil {
		c.fail(err, "批量处理告警")
		return
	}
	c.logOperation("batch_"+req.Operation+"_alert", "alert:"+strings.Join(req.IDs, ","),
		fmt.Sprintf("affected=%d missing=%d", result.Affected, len(result.Missing)))
	response.Success(c.Ctx, result)
}

// 11. NotifyAlert 发送短信或微信告警通知
// @Summary      发送告警通知
// @Description  未指定接收人时发送给所有在职的非只读用户，全部发送失败返回 502 并附带发送记录
// @Tags         Alert
// @Accept       json
// @Produce      json
// @Param        id path string true "告警ID"
// @Param        request body services.NotifyRequest true "通知渠道与接收人"
// @Success      200  {object}  services.NotifyResult
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /alerts/{id}/notify [post]
// @Security     BearerAuth
func (c *AlertController) NotifyAlert() {
	var req services.NotifyRequest
	if !c.bindJSON(&req) {
		return
	}

	id := c.Ctx.Param("id")
	result, err := c.notifications().Notify(id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotifyFailed) && result != nil {
			c.logOperation("notify_alert", "alert:"+id, fmt.Sprintf("channel=%s failed=%d", req.Channel, result.Failed))
			response.FailWithMessage(c.Ctx, code.ErrNotifyFailed, err.Error(), result)
			return
		}
		c.fail(err, "发送告警通知")
		return
	}
	c.logOperation("notify_alert", "alert:"+id, fmt.Sprintf("channel=%s sent=%d failed=%d", req.Channel, result.Sent, result.Failed))
	response.Success(c.Ctx, result)
}

// 12. GetSMSAlerts 短信通知记录
// @Summary      短信通知记录
// @Tags         Alert
// @Produce      json
// @Param        alert_id query string false "告警ID"
// @Success      200  {array}   models.SMSAlert
// @Router       /alerts/sms [get]
// @Security     BearerAuth
func (c *AlertController) GetSMSAlerts() {
	records, err := c.notifications().GetSMSAlerts(c.Ctx.Query("alert_id"))
	if err != nil {
		c.fail(err, "查询短信通知记录")
		return
	}
	response.Success(c.Ctx, records)
}

// 13. GetWeChatAlerts 微信通知记录
// @Summary      微信通知记录
// @Tags         Alert
// @Produce      json
// @Param        alert_id query string false "告警ID"
// @Success      200  {array}   models.WeChatAlert
// @Router       /alerts/wechat [get]
// @Security     BearerAuth
func (c *AlertController) GetWeChatAlerts() {
	records, err := c.notifications().GetWeChatAlerts(c.Ctx.Query("alert_id"))
	if err != nil {
		c.fail(err, "查询微信通知记录")
		return
	}
	response.Success(c.Ctx, records)
}

// 14. Export 按列表过滤条件导出告警
// @Summary      导出告警
// @Tags         Alert
// @Produce      octet-stream
// @Param        format query string false "导出格式" Enums(csv, xlsx)
// @Param        type query string false "告警类型"
// @Param        level query string false "告警级别"
// @Param        status query string false "处理状态"
// @Param        search query string false "关键词"
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Router       /alerts/export [get]
// @Security     BearerAuth
func (c *AlertController) Export() {
	var filter services.AlertFilter
	if !c.bindQuery(&filter) {
		return
	}

	exportService := c.Container.GetService("export").(services.InterfaceExportService)
	file, err := exportService.ExportAlerts(filter, c.Ctx.Query("format"))
	if err != nil {
		c.fail(err, "导出告警")
		return
	}
	c.sendFile(file)
}
