package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/app/middleware"
	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// ErrorResponse 错误响应，用于文档
type ErrorResponse = response.Response

// BaseController 是控制器的基础实现
type BaseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// 业务错误到错误码的映射，按顺序匹配
var errorCodes = []struct {
	err  error
	code int
}{
	{services.ErrUserNotFound, code.ErrUserNotFound},
	{services.ErrInvalidCredentials, code.ErrUserPasswordIncorrect},
	{services.ErrCaptchaInvalid, code.ErrCaptchaInvalid},
	{services.ErrUserDisabled, code.ErrUserDisabled},
	{services.ErrDeviceNotFound, code.ErrDeviceNotFound},
	{services.ErrDeviceOperation, code.ErrDeviceOperationInvalid},
	{services.ErrDeviceOffline, code.ErrDeviceOffline},
	{services.ErrDeviceCommandFailed, code.ErrDeviceCommandFailed},
	{services.ErrStreamNotFound, code.ErrStreamNotFound},
	{services.ErrRecognitionNotFound, code.ErrRecognitionNotFound},
	{services.ErrDetectionNotFound, code.ErrDetectionNotFound},
	{services.ErrAlertNotFound, code.ErrAlertNotFound},
	{services.ErrAlertOperation, code.ErrAlertOperationInvalid},
	{services.ErrAssigneeInvalid, code.ErrAssigneeInvalid},
	{services.ErrInspectionNotFound, code.ErrInspectionNotFound},
	{services.ErrAreaNotFound, code.ErrAreaNotFound},
	{services.ErrNotifyChannelDisabled, code.ErrNotifyChannelDisabled},
	{services.ErrNotifyChannel, code.ErrValidation},
	{services.ErrNoRecipients, code.ErrNoRecipients},
	{services.ErrNotifyFailed, code.ErrNotifyFailed},
	{services.ErrExportFormat, code.ErrExportFormat},
	{services.ErrSettingsInvalid, code.ErrSettingsInvalid},
	{services.ErrFeedNotFound, code.ErrFeedNotFound},
	{services.ErrSnapshotUnavailable, code.ErrSnapshotUnavailable},
}

// errorCode 业务错误对应的错误码，未知错误返回 ErrDatabase
func errorCode(err error) (int, bool) {
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return m.code, true
		}
	}
	return code.ErrDatabase, false
}

// fail 按业务错误返回响应，未知错误记录日志
func (c *BaseController) fail(err error, action string) {
	errCode, known := errorCode(err)
	if known {
		response.FailWithMessage(c.Ctx, errCode, err.Error(), nil)
		return
	}
	logger.Error("%s失败: %s %s: %v", action, c.Ctx.Request.Method, c.Ctx.Request.URL.Path, err)
	response.FailWithMessage(c.Ctx, errCode, action+"失败: "+err.Error(), nil)
}

// bindQuery 绑定查询参数，失败时已写入响应
func (c *BaseController) bindQuery(obj interface{}) bool {
	if err := c.Ctx.ShouldBindQuery(obj); err != nil {
		response.ValidationFail(c.Ctx, err)
		return false
	}
	return true
}

// bindJSON 绑定请求体，失败时已写入响应
func (c *BaseController) bindJSON(obj interface{}) bool {
	if err := c.Ctx.ShouldBindJSON(obj); err != nil {
		response.ValidationFail(c.Ctx, err)
		return false
	}
	return true
}

// page 列表响应，请求了分页时附带分页信息
func page(list interface{}, total int64, q models.PaginationQuery) models.PageData {
	data := models.PageData{List: list, Total: total}
	if q.Enabled() {
		q = q.Normalize()
		pagination := models.NewPaginationResult(total, q.PageNum, q.PageSize)
		data.Pagination = &pagination
	}
	return data
}

// logOperation 记录写操作
func (c *BaseController) logOperation(action, target, detail string) {
	logs := c.Container.GetService("system_log").(services.InterfaceSystemLogService)
	logs.Record(models.SystemLog{
		UserID:    middleware.CurrentUserID(c.Ctx),
		Action:    action,
		Target:    target,
		Detail:    detail,
		IPAddress: c.Ctx.ClientIP(),
	})
}

// sendFile 以附件形式返回导出文件
func (c *BaseController) sendFile(file *services.ExportFile) {
	c.Ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		file.Filename, url.PathEscape(file.Filename)))
	c.Ctx.Header("Content-Type", file.ContentType)
	c.Ctx.Data(http.StatusOK, file.ContentType, file.Data)
}
