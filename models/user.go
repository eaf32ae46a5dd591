package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
	RoleViewer   UserRole = "viewer"
)

// UserStatus 用户状态
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User 平台用户
type User struct {
	ID           string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Name         string     `gorm:"type:varchar(50)" json:"name"`
	Role         UserRole   `gorm:"type:varchar(20);index" json:"role"`
	Department   string     `gorm:"type:varchar(100)" json:"department"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone"`
	Email        string     `gorm:"type:varchar(100)" json:"email"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	Status       UserStatus `gorm:"type:varchar(20)" json:"status"`
	Permissions  []string   `gorm:"serializer:json" json:"permissions"`
	PasswordHash string     `gorm:"type:varchar(100)" json:"-"`
	Timestamps
}

func (User) TableName() string {
	return "users"
}

// CanWrite 管理员和操作员可执行写操作
func (u User) CanWrite() bool {
	return u.Role == RoleAdmin || u.Role == RoleOperator
}

// WeChatID 微信告警使用的微信号，按用户名生成
func (u User) WeChatID() string {
	return "wx_" + u.Username
}

// BeforeCreate 填充默认状态与权限
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = UserActive
	}
	if u.Role == "" {
		u.Role = RoleViewer
	}
	if len(u.Permissions) == 0 {
		u.Permissions = DefaultPermissions(u.Role)
	}
	return nil
}

// DefaultPermissions 角色默认权限
func DefaultPermissions(role UserRole) []string {
	switch role {
	case RoleAdmin:
		return []string{"all"}
	case RoleOperator:
		return []string{"monitor", "alert", "inspection"}
	default:
		return []string{"view"}
	}
}
