package idgen

import (
	"strconv"
	"sync"
	"time"
)

// SnowflakeIDGenerator 简化的雪花ID生成器
// ID格式: 毫秒时间戳偏移 + 机器ID(2位) + 序列号(3位)
type SnowflakeIDGenerator struct {
	mu        sync.Mutex
	epoch     int64 // 起始时间戳（毫秒）
	machineID int64 // 机器ID (0-99)
	sequence  int64 // 序列号 (0-999)
	lastTime  int64 // 上次生成ID的毫秒时间戳
	now       func() time.Time
}

const (
	maxMachineID = 99  // 最大机器ID
	maxSequence  = 999 // 最大序列号
)

// NewSnowflakeIDGenerator 创建ID生成器
// machineID: 机器ID，范围 0-99
func NewSnowflakeIDGenerator(machineID int64) *SnowflakeIDGenerator {
	if machineID < 0 || machineID > maxMachineID {
		machineID = 0
	}

	// 使用 2024-01-01 00:00:00 作为起始时间
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	return &SnowflakeIDGenerator{
		epoch:     epoch,
		machineID: machineID,
		now:       time.Now,
	}
}

// NextID 生成下一个ID，单实例内严格递增
func (g *SnowflakeIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UnixMilli()
	if now < g.lastTime {
		// 时钟回拨时沿用上次的时间戳
		now = g.lastTime
	}

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
		if g.sequence == 0 {
			// 序列号用尽，借用下一毫秒
			now = g.lastTime + 1
		}
	} else {
		g.sequence = 0
	}

	g.lastTime = now

	return (now-g.epoch)*100000 + g.machineID*1000 + g.sequence
}

// NewID 生成带前缀的记录ID，例如 device_1234501234
func (g *SnowflakeIDGenerator) NewID(prefix string) string {
	return prefix + "_" + strconv.FormatInt(g.NextID(), 10)
}

// 全局默认ID生成器（机器ID为1）
var defaultGenerator = NewSnowflakeIDGenerator(1)

// GenerateID 生成ID（使用默认生成器）
func GenerateID() int64 {
	return defaultGenerator.NextID()
}

// NewID 使用默认生成器生成带前缀的记录ID
func NewID(prefix string) string {
	return defaultGenerator.NewID(prefix)
}
