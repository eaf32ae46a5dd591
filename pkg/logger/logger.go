package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	base  = zap.NewNop()
	sugar = base.Sugar()
)

// NewLogger 创建新的Logger实例
// level: "debug", "info", "warn", "error" (默认: "info")
// format: "json" 或 "console" (默认: "console")
// logDir: 非空时同时写入 logDir/<日期>.log
func NewLogger(level, format, serviceName, logDir string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zapLevel),
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
		logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(logFile), zapLevel))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	if serviceName != "" {
		l = l.With(zap.String("service_name", serviceName))
	}
	return l, nil
}

// Setup 初始化全局日志
func Setup(level, format, logDir string) error {
	l, err := NewLogger(level, format, "straw-monitor-service", logDir)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger 替换全局日志实例，测试中可传入 zap.NewNop()
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	sugar = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// L 返回结构化日志实例
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync 刷新缓冲
func Sync() {
	_ = L().Sync()
}

// Info 记录信息级别的日志
func Info(format string, v ...interface{}) {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	s.Infof(format, v...)
}

// Warning 记录警告级别的日志
func Warning(format string, v ...interface{}) {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	s.Warnf(format, v...)
}

// Error 记录错误级别的日志
func Error(format string, v ...interface{}) {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	s.Errorf(format, v...)
}

// Debug 记录调试级别的日志
func Debug(format string, v ...interface{}) {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	s.Debugf(format, v...)
}
