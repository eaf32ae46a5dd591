package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/app/middleware"
	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// InterfaceDeviceController 定义设备控制器接口
type InterfaceDeviceController interface {
	GetDevices()
	GetSummary()
	GetDevice()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
	ApplyAction(action string)
	BatchDevices()
	ControlDevice()
}

// DeviceController 处理监控设备相关的请求
type DeviceController struct {
	BaseController
}

// NewDeviceController 创建一个新的设备控制器
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{BaseController{Ctx: ctx, Container: container}}
}

// HandleDeviceFunc 返回一个处理设备请求的Gin处理函数
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getSummary":
			controller.GetSummary()
		case "getDevice":
			controller.GetDevice()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		case "startDevice":
			controller.ApplyAction(services.DeviceActionStart)
		case "stopDevice":
			controller.ApplyAction(services.DeviceActionStop)
		case "restartDevice":
			controller.ApplyAction(services.DeviceActionRestart)
		case "maintainDevice":
			controller.ApplyAction(services.DeviceActionMaintenance)
		case "batchDevices":
			controller.BatchDevices()
		case "controlDevice":
			controller.ControlDevice()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *DeviceController) service() services.InterfaceDeviceService {
	return c.Container.GetService("device").(services.InterfaceDeviceService)
}

// 1. GetDevices 获取设备列表
// @Summary      获取设备列表
// @Description  按名称/位置搜索，按类型和状态过滤，未传分页参数时返回全部
// @Tags         Device
// @Produce      json
// @Param        search query string false "名称或位置"
// @Param        type query string false "设备类型" Enums(all, camera, sensor, drone, thermal)
// @Param        status query string false "设备状态" Enums(all, online, offline, maintenance, fault)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /devices [get]
// @Security     BearerAuth
func (c *DeviceController) GetDevices() {
	var filter services.DeviceFilter
	if !c.bindQuery(&filter) {
		return
	}

	devices, total, err := c.service().GetDevices(filter)
	if err != nil {
		c.fail(err, "查询设备列表")
		return
	}
	response.Success(c.Ctx, page(devices, total, filter.PaginationQuery))
}

// 2. GetSummary 设备状态汇总
// @Summary      设备状态汇总
// @Tags         Device
// @Produce      json
// @Success      200  {object}  models.DeviceSummary
// @Router       /devices/summary [get]
// @Security     BearerAuth
func (c *DeviceController) GetSummary() {
	summary, err := c.service().GetSummary()
	if err != nil {
		c.fail(err, "统计设备状态")
		return
	}
	response.Success(c.Ctx, summary)
}

// 3. GetDevice 获取单个设备
// @Summary      获取设备详情
// @Tags         Device
// @Produce      json
// @Param        id path string true "设备ID"
// @Success      200  {object}  models.MonitorDevice
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id} [get]
// @Security     BearerAuth
func (c *DeviceController) GetDevice() {
	device, err := c.service().GetDeviceByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询设备")
		return
	}
	response.Success(c.Ctx, device)
}

// 4. CreateDevice 添加设备
// @Summary      添加设备
// @Description  名称、类型和位置必填，未提供的参数按设备类型填充默认值
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        device body services.CreateDeviceRequest true "设备信息"
// @Success      201  {object}  models.MonitorDevice
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /devices [post]
// @Security     BearerAuth
func (c *DeviceController) CreateDevice() {
	var req services.CreateDeviceRequest
	if !c.bindJSON(&req) {
		return
	}

	device, err := c.service().CreateDevice(req)
	if err != nil {
		c.fail(err, "添加设备")
		return
	}
	c.logOperation("create_device", "device:"+device.ID, device.Name)
	response.Created(c.Ctx, device)
}

// 5. UpdateDevice 更新设备
// @Summary      更新设备
// @Description  只更新请求中出现的字段
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        id path string true "设备ID"
// @Param        device body services.UpdateDeviceRequest true "需要更新的字段"
// @Success      200  {object}  models.MonitorDevice
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id} [put]
// @Security     BearerAuth
func (c *DeviceController) UpdateDevice() {
	var req services.UpdateDeviceRequest
	if !c.bindJSON(&req) {
		return
	}

	device, err := c.service().UpdateDevice(c.Ctx.Param("id"), req)
	if err != nil {
		c.fail(err, "更新设备")
		return
	}
	c.logOperation("update_device", "device:"+device.ID, "")
	response.Success(c.Ctx, device)
}

// 6. DeleteDevice 删除设备
// @Summary      删除设备
// @Tags         Device
// @Produce      json
// @Param        id path string true "设备ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id} [delete]
// @Security     BearerAuth
func (c *DeviceController) DeleteDevice() {
	id := c.Ctx.Param("id")
	if err := c.service().DeleteDevice(id); err != nil {
		c.fail(err, "删除设备")
		return
	}
	c.logOperation("delete_device", "device:"+id, "")
	response.Success(c.Ctx, gin.H{"id": id})
}

// 7. ApplyAction 启动/停止/重启/维护设备
// @Summary      设备状态操作
// @Description  start: 在线, stop: 离线, restart: 在线并刷新更新时间, maintenance: 维护中
// @Tags         Device
// @Produce      json
// @Param        id path string true "设备ID"
// @Success      200  {object}  models.MonitorDevice
// @Failure      404  {object}  ErrorResponse
// @Router       /devices/{id}/start [post]
// @Router       /devices/{id}/stop [post]
// @Router       /devices/{id}/restart [post]
// @Router       /devices/{id}/maintenance [post]
// @Security     BearerAuth
func (c *DeviceController) ApplyAction(action string) {
	device, err := c.service().ApplyAction(c.Ctx.Param("id"), action)
	if err != nil {
		c.fail(err, "设备操作")
		return
	}
	c.logOperation(action+"_device", "device:"+device.ID, string(device.Status))
	response.Success(c.Ctx, device)
}

// 8. BatchDevices 批量操作设备
// @Summary      批量操作设备
// @Description  operation: start / stop / maintenance / delete，不存在的ID会在 missing 中返回
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        request body services.BatchRequest true "批量操作"
// @Success      200  {object}  models.BatchResult
// @Failure      400  {object}  ErrorResponse
// @Router       /devices/batch [post]
// @Security     BearerAuth
func (c *DeviceController) BatchDevices() {
	var req services.BatchRequest
	if !c.bindJSON(&req) {
		return
	}

	result, err := c.service().Batch(req)
	if err != nil {
		c.fail(err, "批量操作设备")
		return
	}
	c.logOperation("batch_"+req.Operation+"_device", "device:"+strings.Join(req.IDs, ","),
		fmt.Sprintf("affected=%d missing=%d", result.Affected, len(result.Missing)))
	response.Success(c.Ctx, result)
}

// 9. ControlDevice 下发设备控制指令
// @Summary      设备控制
// @Description  指令通过 MQTT 发布到 straw/devices/{id}/command，离线设备拒绝控制
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        id path string true "设备ID"
// @Param        request body services.ControlRequest true "控制指令"
// @Success      200  {object}  services.DeviceCommand
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /devices/{id}/control [post]
// @Security     BearerAuth
func (c *DeviceController) ControlDevice() {
	var req services.ControlRequest
	if !c.bindJSON(&req) {
		return
	}

	cmd, err := c.service().Control(c.Ctx.Param("id"), req, middleware.CurrentUsername(c.Ctx))
	if err != nil {
		c.fail(err, "设备控制")
		return
	}
	c.logOperation("control_device", "device:"+cmd.DeviceID, req.Operation)
	response.Success(c.Ctx, cmd)
}
