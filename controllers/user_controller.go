package controllers

import (
	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// UserController 用户管理，仅管理员可访问
type UserController struct {
	BaseController
}

// NewUserController 创建用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{BaseController{Ctx: ctx, Container: container}}
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUsers 用户列表，不返回密码
// @Summary      用户列表
// @Tags         User
// @Produce      json
// @Param        search query string false "用户名、姓名或部门"
// @Param        role query string false "角色" Enums(all, admin, operator, viewer)
// @Param        status query string false "状态" Enums(all, active, inactive)
// @Param        page_num query int false "页码"
// @Param        page_size query int false "每页条数"
// @Success      200  {object}  models.PageData
// @Failure      403  {object}  ErrorResponse
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	var filter services.UserFilter
	if !c.bindQuery(&filter) {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetUsers(filter)
	if err != nil {
		c.fail(err, "查询用户列表")
		return
	}
	response.Success(c.Ctx, page(users, total, filter.PaginationQuery))
}

// 2. GetUser 用户详情
// @Summary      用户详情
// @Tags         User
// @Produce      json
// @Param        id path string true "用户ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (c *UserController) GetUser() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(c.Ctx.Param("id"))
	if err != nil {
		c.fail(err, "查询用户")
		return
	}
	response.Success(c.Ctx, user)
}
