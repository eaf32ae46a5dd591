package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword 不为空密码生成哈希
var ErrEmptyPassword = errors.New("密码不能为空")

// PasswordCost bcrypt 计算代价
var PasswordCost = bcrypt.DefaultCost

// HashPassword 生成账户密码哈希，种子账户和默认管理员共用
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash 校验登录密码，未设置密码的账户一律失败
func CheckPasswordHash(password, hash string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
