package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/app/middleware"
	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	GetCaptcha()
	Login()
	GetProfile()
}

// AuthController 处理登录认证相关的请求
type AuthController struct {
	BaseController
}

// NewAuthController 创建认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{BaseController{Ctx: ctx, Container: container}}
}

// LoginFailure 登录失败时返回的新验证码
type LoginFailure struct {
	Captcha *services.Captcha `json:"captcha,omitempty"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "getCaptcha":
			controller.GetCaptcha()
		case "login":
			controller.Login()
		case "getProfile":
			controller.GetProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetCaptcha 获取登录验证码
// @Summary      获取验证码
// @Description  生成 6 位数字验证码，有效期由 CAPTCHA_TTL 决定
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  services.Captcha
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/captcha [get]
func (c *AuthController) GetCaptcha() {
	captchaService := c.Container.GetService("captcha").(services.InterfaceCaptchaService)
	captcha, err := captchaService.Generate()
	if err != nil {
		c.fail(err, "生成验证码")
		return
	}
	response.Success(c.Ctx, captcha)
}

// 2. Login 用户登录
// @Summary      用户登录
// @Description  校验验证码、用户名和密码，成功返回 JWT。验证码或密码错误时返回新的验证码
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body services.LoginRequest true "登录信息"
// @Success      200  {object}  services.LoginResult
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req services.LoginRequest
	if !c.bindJSON(&req) {
		// 用户名或密码缺失时同样作废本次验证码
		c.discardCaptcha(req.CaptchaID)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	result, err := userService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrCaptchaInvalid) || errors.Is(err, services.ErrInvalidCredentials) {
			logger.Warning("登录失败: username=%s ip=%s err=%v", req.Username, c.Ctx.ClientIP(), err)
			errCode, _ := errorCode(err)
			response.FailWithMessage(c.Ctx, errCode, err.Error(), LoginFailure{Captcha: c.refreshCaptcha()})
			return
		}
		c.fail(err, "登录")
		return
	}

	logger.Info("用户登录成功: username=%s role=%s", result.User.Username, result.User.Role)
	response.Success(c.Ctx, result)
}

func (c *AuthController) discardCaptcha(captchaID string) {
	if captchaID == "" {
		return
	}
	captchaService := c.Container.GetService("captcha").(services.InterfaceCaptchaService)
	captchaService.Verify(captchaID, "")
}

func (c *AuthController) refreshCaptcha() *services.Captcha {
	captchaService := c.Container.GetService("captcha").(services.InterfaceCaptchaService)
	captcha, err := captchaService.Generate()
	if err != nil {
		logger.Error("生成验证码失败: %v", err)
		return nil
	}
	return captcha
}

// 3. GetProfile 获取当前登录用户信息
// @Summary      当前用户信息
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (c *AuthController) GetProfile() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(middleware.CurrentUserID(c.Ctx))
	if err != nil {
		c.fail(err, "获取用户信息")
		return
	}
	response.Success(c.Ctx, user)
}
