package services

import "errors"

// 业务错误，控制器通过 errors.Is 映射为错误码
var (
	ErrUserNotFound          = errors.New("用户不存在")
	ErrInvalidCredentials    = errors.New("用户名或密码错误")
	ErrCaptchaInvalid        = errors.New("验证码错误或已过期")
	ErrUserDisabled          = errors.New("用户已停用")
	ErrDeviceNotFound        = errors.New("设备不存在")
	ErrDeviceOperation       = errors.New("不支持的设备操作")
	ErrDeviceOffline         = errors.New("设备当前离线")
	ErrDeviceCommandFailed   = errors.New("设备指令下发失败")
	ErrStreamNotFound        = errors.New("视频流不存在")
	ErrRecognitionNotFound   = errors.New("识别记录不存在")
	ErrDetectionNotFound     = errors.New("检测记录不存在")
	ErrAlertNotFound         = errors.New("告警不存在")
	ErrAlertOperation        = errors.New("不支持的告警操作")
	ErrAssigneeInvalid       = errors.New("处理人无效")
	ErrInspectionNotFound    = errors.New("巡检记录不存在")
	ErrAreaNotFound          = errors.New("区域不存在")
	ErrNotifyChannelDisabled = errors.New("通知渠道未启用")
	ErrNotifyChannel         = errors.New("不支持的通知渠道")
	ErrNoRecipients          = errors.New("没有可用的接收人")
	ErrNotifyFailed          = errors.New("通知发送失败")
	ErrExportFormat          = errors.New("不支持的导出格式")
	ErrSettingsInvalid       = errors.New("系统设置无效")
	ErrFeedNotFound          = errors.New("实时数据源不存在")
	ErrSnapshotUnavailable   = errors.New("暂无实时数据")
)
