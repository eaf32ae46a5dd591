package services

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"straw-monitor-service/models"
)

// InterfaceRealtimeHub 定义实时事件分发接口
type InterfaceRealtimeHub interface {
	Subscribe(buffer int, types ...string) *Subscription
	Unsubscribe(sub *Subscription)
	Publish(evt models.RealtimeEvent)
	SubscriberCount() int
	Latest(eventType string) (models.RealtimeEvent, bool)
	Published() int64
}

// Subscription 单个订阅者，C 关闭表示订阅结束
type Subscription struct {
	ID      string
	C       <-chan models.RealtimeEvent
	ch      chan models.RealtimeEvent
	types   map[string]struct{}
	dropped *atomic.Int64
}

// Dropped 因缓冲区已满被丢弃的事件数
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

func (s *Subscription) wants(eventType string) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[eventType]
	return ok
}

// RealtimeHub 进程内的发布订阅中心，慢订阅者会丢弃事件而不阻塞发布方
type RealtimeHub struct {
	mu        sync.RWMutex
	subs      map[string]*Subscription
	latest    map[string]models.RealtimeEvent
	published *atomic.Int64
}

// NewRealtimeHub 创建实时事件中心
func NewRealtimeHub() InterfaceRealtimeHub {
	return &RealtimeHub{
		subs:      make(map[string]*Subscription),
		latest:    make(map[string]models.RealtimeEvent),
		published: atomic.NewInt64(0),
	}
}

// Subscribe 订阅指定类型的事件，不指定类型时订阅全部
func (h *RealtimeHub) Subscribe(buffer int, types ...string) *Subscription {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan models.RealtimeEvent, buffer)
	sub := &Subscription{
		ID:      uuid.New().String(),
		C:       ch,
		ch:      ch,
		types:   make(map[string]struct{}, len(types)),
		dropped: atomic.NewInt64(0),
	}
	for _, t := range types {
		if t != "" {
			sub.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()
	return sub
}

// Unsubscribe 取消订阅并关闭通道，可重复调用
func (h *RealtimeHub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub.ID]; !ok {
		return
	}
	delete(h.subs, sub.ID)
	close(sub.ch)
}

// Publish 向所有订阅者投递事件副本
func (h *RealtimeHub) Publish(evt models.RealtimeEvent) {
	h.mu.Lock()
	h.latest[evt.Type] = evt
	h.mu.Unlock()
	h.published.Inc()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		if !sub.wants(evt.Type) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			sub.dropped.Inc()
		}
	}
}

// SubscriberCount 当前订阅者数量
func (h *RealtimeHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Latest 指定类型最近一次发布的事件
func (h *RealtimeHub) Latest(eventType string) (models.RealtimeEvent, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	evt, ok := h.latest[eventType]
	return evt, ok
}

// Published 累计发布的事件数
func (h *RealtimeHub) Published() int64 {
	return h.published.Load()
}
