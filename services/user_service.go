package services

import (
	"errors"

	"gorm.io/gorm"

	"straw-monitor-service/config"
	"straw-monitor-service/models"
	"straw-monitor-service/utils"
)

// LoginRequest 登录参数
type LoginRequest struct {
	Username  string `json:"username" binding:"required" example:"admin"`
	Password  string `json:"password" binding:"required" example:"admin123"`
	CaptchaID string `json:"captcha_id" example:"5f1b0d2e-8f7c-4c61-9d43-0c7e7b1d2a11"`
	Captcha   string `json:"captcha" example:"482913"` // 格式由 Verify 校验，错误时同样消耗验证码
}

// LoginResult 登录结果
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      *models.User `json:"user"`
}

// UserFilter 用户列表过滤条件
type UserFilter struct {
	Search string `form:"search"`
	Role   string `form:"role"`
	Status string `form:"status"`
	models.PaginationQuery
}

// InterfaceUserService 定义用户与认证服务接口
type InterfaceUserService interface {
	Login(req LoginRequest) (*LoginResult, error)
	GetUserByID(id string) (*models.User, error)
	GetUsers(filter UserFilter) ([]models.User, int64, error)
	GetAssignees() ([]models.User, error)
	ResolveAssignee(nameOrUsername string) (*models.User, error)
	GetRecipients(ids []string) ([]models.User, error)
}

// UserService 提供用户和登录相关的服务
type UserService struct {
	DB      *gorm.DB
	Config  *config.Config
	JWT     InterfaceJWTService
	Captcha InterfaceCaptchaService
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService, captcha InterfaceCaptchaService) InterfaceUserService {
	return &UserService{
		DB:      db,
		Config:  cfg,
		JWT:     jwtService,
		Captcha: captcha,
	}
}

// 1 Login 校验验证码和密码后签发令牌
func (s *UserService) Login(req LoginRequest) (*LoginResult, error) {
	if !s.Captcha.Verify(req.CaptchaID, req.Captcha) {
		return nil, ErrCaptchaInvalid
	}

	var user models.User
	if err := s.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if user.Status != models.UserActive {
		return nil, ErrUserDisabled
	}

	token, expiresAt, err := s.JWT.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return &LoginResult{Token: token, ExpiresAt: expiresAt.Unix(), User: &user}, nil
}

// 2 GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// 3 GetUsers 获取用户列表
func (s *UserService) GetUsers(filter UserFilter) ([]models.User, int64, error) {
	query := s.DB.Model(&models.User{}).Scopes(
		whereSearch(filter.Search, "username", "name", "department"),
		whereEq("role", filter.Role),
		whereEq("status", filter.Status),
	)

	var users []models.User
	total, err := findPage(query, filter.PaginationQuery, "id ASC", &users)
	return users, total, err
}

// 4 GetAssignees 可指派处理告警的用户（非只读用户）
func (s *UserService) GetAssignees() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("role <> ?", models.RoleViewer).Order("id ASC").Find(&users).Error
	return users, err
}

// 5 ResolveAssignee 按姓名或用户名查找可指派的用户
func (s *UserService) ResolveAssignee(nameOrUsername string) (*models.User, error) {
	if nameOrUsername == "" {
		return nil, ErrAssigneeInvalid
	}
	var user models.User
	err := s.DB.Where("(name = ? OR username = ?) AND role <> ? AND status = ?",
		nameOrUsername, nameOrUsername, models.RoleViewer, models.UserActive).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeInvalid
		}
		return nil, err
	}
	return &user, nil
}

// 6 GetRecipients 通知接收人，未指定时为全部在岗的非只读用户
func (s *UserService) GetRecipients(ids []string) ([]models.User, error) {
	var users []models.User
	query := s.DB.Where("status = ?", models.UserActive)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	} else {
		query = query.Where("role <> ?", models.RoleViewer)
	}
	if err := query.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoRecipients
	}
	return users, nil
}
