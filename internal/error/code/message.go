package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高，请稍后再试",
	ErrForbidden:       "权限不足",
	ErrNotFound:        "资源不存在",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户名或密码错误",
	ErrCaptchaInvalid:        "验证码错误",
	ErrUserDisabled:          "用户已停用",

	// 设备相关错误码
	ErrDeviceNotFound:         "设备不存在",
	ErrDeviceAlreadyExist:     "设备已存在",
	ErrDeviceOffline:          "设备当前离线",
	ErrDeviceOperationInvalid: "不支持的设备操作",
	ErrDeviceCommandFailed:    "设备指令下发失败",
	ErrStreamNotFound:         "视频流不存在",

	// 告警相关错误码
	ErrAlertNotFound:         "告警不存在",
	ErrAlertOperationInvalid: "不支持的告警操作",
	ErrAssigneeInvalid:       "处理人无效",

	// 检测相关错误码
	ErrDetectionNotFound:   "检测记录不存在",
	ErrRecognitionNotFound: "识别记录不存在",
	ErrFeedNotFound:        "实时数据源不存在",
	ErrSnapshotUnavailable: "暂无实时数据",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",

	// 巡检相关错误码
	ErrInspectionNotFound: "巡检记录不存在",
	ErrAreaNotFound:       "区域不存在",

	// 通知与导出相关错误码
	ErrNotifyChannelDisabled: "通知渠道未启用",
	ErrNotifyFailed:          "通知发送失败",
	ErrNoRecipients:          "没有可用的接收人",
	ErrExportFailed:          "导出失败",
	ErrExportFormat:          "不支持的导出格式",

	// 系统设置相关错误码
	ErrSettingsInvalid: "系统设置无效",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,
	ErrNotFound:        StatusNotFound,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrCaptchaInvalid:        StatusBadRequest,
	ErrUserDisabled:          StatusForbidden,

	// 设备相关错误码
	ErrDeviceNotFound:         StatusNotFound,
	ErrDeviceAlreadyExist:     StatusBadRequest,
	ErrDeviceOffline:          StatusBadRequest,
	ErrDeviceOperationInvalid: StatusBadRequest,
	ErrDeviceCommandFailed:    StatusBadGateway,
	ErrStreamNotFound:         StatusNotFound,

	// 告警相关错误码
	ErrAlertNotFound:         StatusNotFound,
	ErrAlertOperationInvalid: StatusBadRequest,
	ErrAssigneeInvalid:       StatusBadRequest,

	// 检测相关错误码
	ErrDetectionNotFound:   StatusNotFound,
	ErrRecognitionNotFound: StatusNotFound,
	ErrFeedNotFound:        StatusNotFound,
	ErrSnapshotUnavailable: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// 巡检相关错误码
	ErrInspectionNotFound: StatusNotFound,
	ErrAreaNotFound:       StatusNotFound,

	// 通知与导出相关错误码
	ErrNotifyChannelDisabled: StatusBadRequest,
	ErrNotifyFailed:          StatusBadGateway,
	ErrNoRecipients:          StatusBadRequest,
	ErrExportFailed:          StatusInternalServerError,
	ErrExportFormat:          StatusBadRequest,

	// 系统设置相关错误码
	ErrSettingsInvalid: StatusBadRequest,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
