package idgen

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDIsIncreasing(t *testing.T) {
	g := NewSnowflakeIDGenerator(3)
	prev := g.NextID()
	for i := 0; i < 5000; i++ {
		id := g.NextID()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestNextIDClockRollback(t *testing.T) {
	g := NewSnowflakeIDGenerator(1)
	current := time.Date(2024, 10, 15, 8, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return current }

	first := g.NextID()
	current = current.Add(-time.Second)
	second := g.NextID()
	assert.Greater(t, second, first)
}

func TestNextIDSequenceOverflow(t *testing.T) {
	g := NewSnowflakeIDGenerator(1)
	fixed := time.Date(2024, 10, 15, 8, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	seen := make(map[int64]struct{})
	for i := 0; i < maxSequence*3; i++ {
		id := g.NextID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
}

func TestInvalidMachineIDFallsBackToZero(t *testing.T) {
	assert.Equal(t, int64(0), NewSnowflakeIDGenerator(-1).machineID)
	assert.Equal(t, int64(0), NewSnowflakeIDGenerator(100).machineID)
	assert.Equal(t, int64(42), NewSnowflakeIDGenerator(42).machineID)
}

func TestNewIDConcurrent(t *testing.T) {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{})
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := NewID("alert")
				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1600)
	for id := range ids {
		assert.True(t, strings.HasPrefix(id, "alert_"))
	}
}
