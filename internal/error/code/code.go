package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 状态冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusBadGateway - 502: 上游服务错误.
	StatusBadGateway = 502
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrForbidden - 403: 权限不足.
	ErrForbidden
	// ErrNotFound - 404: 资源不存在.
	ErrNotFound
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户名或密码错误.
	ErrUserPasswordIncorrect
	// ErrCaptchaInvalid - 400: 验证码错误.
	ErrCaptchaInvalid
	// ErrUserDisabled - 403: 用户已停用.
	ErrUserDisabled
)

// 设备相关错误码 (102xxx).
const (
	// ErrDeviceNotFound - 404: 设备不存在.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceAlreadyExist - 400: 设备已存在.
	ErrDeviceAlreadyExist
	// ErrDeviceOffline - 400: 设备离线.
	ErrDeviceOffline
	// ErrDeviceOperationInvalid - 400: 不支持的设备操作.
	ErrDeviceOperationInvalid
	// ErrDeviceCommandFailed - 502: 设备指令下发失败.
	ErrDeviceCommandFailed
	// ErrStreamNotFound - 404: 视频流不存在.
	ErrStreamNotFound
)

// 告警相关错误码 (103xxx).
const (
	// ErrAlertNotFound - 404: 告警不存在.
	ErrAlertNotFound int = iota + 103000
	// ErrAlertOperationInvalid - 400: 不支持的告警操作.
	ErrAlertOperationInvalid
	// ErrAssigneeInvalid - 400: 处理人无效.
	ErrAssigneeInvalid
)

// 检测相关错误码 (104xxx).
const (
	// ErrDetectionNotFound - 404: 检测记录不存在.
	ErrDetectionNotFound int = iota + 104000
	// ErrRecognitionNotFound - 404: 识别记录不存在.
	ErrRecognitionNotFound
	// ErrFeedNotFound - 404: 实时数据源不存在.
	ErrFeedNotFound
	// ErrSnapshotUnavailable - 404: 暂无实时数据.
	ErrSnapshotUnavailable
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

// 巡检相关错误码 (106xxx).
const (
	// ErrInspectionNotFound - 404: 巡检记录不存在.
	ErrInspectionNotFound int = iota + 106000
	// ErrAreaNotFound - 404: 区域不存在.
	ErrAreaNotFound
)

// 通知与导出相关错误码 (107xxx).
const (
	// ErrNotifyChannelDisabled - 400: 通知渠道未启用.
	ErrNotifyChannelDisabled int = iota + 107000
	// ErrNotifyFailed - 502: 通知发送失败.
	ErrNotifyFailed
	// ErrNoRecipients - 400: 没有可用的接收人.
	ErrNoRecipients
	// ErrExportFailed - 500: 导出失败.
	ErrExportFailed
	// ErrExportFormat - 400: 不支持的导出格式.
	ErrExportFormat
)

// 系统设置相关错误码 (108xxx).
const (
	// ErrSettingsInvalid - 400: 系统设置无效.
	ErrSettingsInvalid int = iota + 108000
)
