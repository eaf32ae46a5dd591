package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerRoutesHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	Info("设备上线: %s", "cam001")
	Warning("信号弱: %d", 35)
	Error("写入失败: %v", assert.AnError)
	Debug("tick")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "设备上线: cam001", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "tick", entries[3].Message)
}

func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger("warn", "json", "test", dir)
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	l.Warn("hello")
	_ = l.Sync()
}
