package controllers

import (
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/error/code"
	"straw-monitor-service/internal/error/response"
	"straw-monitor-service/models"
	"straw-monitor-service/pkg/logger"
	"straw-monitor-service/services"
	"straw-monitor-service/services/container"
)

const (
	sseBuffer    = 64
	sseHeartbeat = 15 * time.Second
)

var realtimeEventTypes = map[string]struct{}{
	models.EventClock:      {},
	models.EventSmoke:      {},
	models.EventFlame:      {},
	models.EventSmokeAlert: {},
	models.EventFlameAlert: {},
	models.EventDetection:  {},
	models.EventAlert:      {},
}

// RealtimeController 实时数据推送与数据源管理
type RealtimeController struct {
	BaseController
}

// NewRealtimeController 创建实时数据控制器
func NewRealtimeController(ctx *gin.Context, container *container.ServiceContainer) *RealtimeController {
	return &RealtimeController{BaseController{Ctx: ctx, Container: container}}
}

// HandleRealtimeFunc 返回一个处理实时数据请求的Gin处理函数
func HandleRealtimeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRealtimeController(ctx, container)

		switch method {
		case "stream":
			controller.Stream()
		case "getFeeds":
			controller.GetFeeds()
		case "startFeed":
			controller.StartFeed()
		case "stopFeed":
			controller.StopFeed()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *RealtimeController) simulator() services.InterfaceSimulatorService {
	return c.Container.GetService("simulator").(services.InterfaceSimulatorService)
}

// parseFeeds 解析逗号分隔的事件类型，空表示全部
func parseFeeds(raw string) ([]string, bool) {
	var types []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := realtimeEventTypes[t]; !ok {
			return nil, false
		}
		types = append(types, t)
	}
	return types, true
}

// 1. Stream 实时事件推送 (Server-Sent Events)
// @Summary      实时事件推送
// @Description  SSE 推送 clock/smoke/flame/smoke_alert/flame_alert/detection/alert 事件，连接后先推送最新的烟雾和火焰快照
// @Tags         Realtime
// @Produce      text/event-stream
// @Param        feeds query string false "事件类型，逗号分隔，如 smoke,flame"
// @Param        token query string false "EventSource 无法设置请求头时使用的令牌"
// @Success      200  {object}  models.RealtimeEvent
// @Failure      400  {object}  ErrorResponse
// @Router       /realtime/stream [get]
// @Security     BearerAuth
func (c *RealtimeController) Stream() {
	types, ok := parseFeeds(c.Ctx.Query("feeds"))
	if !ok {
		response.ParamError(c.Ctx, "feeds 包含不支持的事件类型")
		return
	}

	hub := c.Container.GetService("hub").(services.InterfaceRealtimeHub)
	sub := hub.Subscribe(sseBuffer, types...)
	defer hub.Unsubscribe(sub)
	logger.Debug("实时推送连接建立: sub=%s feeds=%v ip=%s", sub.ID, types, c.Ctx.ClientIP())

	header := c.Ctx.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")

	wanted := func(t string) bool {
		if len(types) == 0 {
			return true
		}
		for _, want := range types {
			if want == t {
				return true
			}
		}
		return false
	}
	for _, t := range []string{models.EventSmoke, models.EventFlame} {
		if evt, ok := hub.Latest(t); ok && wanted(t) {
			c.Ctx.SSEvent(evt.Type, evt)
		}
	}
	c.Ctx.Writer.Flush()

	heartbeat := time.NewTicker(sseHeartbeat)
	defer heartbeat.Stop()

	done := c.Ctx.Request.Context().Done()
	c.Ctx.Stream(func(w io.Writer) bool {
		select {
		case <-done:
			return false
		case evt, ok := <-sub.C:
			if !ok {
				return false
			}
			c.Ctx.SSEvent(evt.Type, evt)
			return true
		case <-heartbeat.C:
			c.Ctx.SSEvent("ping", models.Now())
			return true
		}
	})
	logger.Debug("实时推送连接关闭: sub=%s dropped=%d", sub.ID, sub.Dropped())
}

// 2. GetFeeds 数据源运行状态
// @Summary      数据源状态
// @Tags         Realtime
// @Produce      json
// @Success      200  {array}   services.FeedState
// @Router       /realtime/feeds [get]
// @Security     BearerAuth
func (c *RealtimeController) GetFeeds() {
	response.Success(c.Ctx, c.simulator().FeedStates())
}

// 3. StartFeed 启动数据源
// @Summary      启动数据源
// @Tags         Realtime
// @Produce      json
// @Param        name path string true "数据源" Enums(clock, smoke, flame)
// @Success      200  {array}   services.FeedState
// @Failure      404  {object}  ErrorResponse
// @Router       /realtime/feeds/{name}/start [post]
// @Security     BearerAuth
func (c *RealtimeController) StartFeed() {
	name := c.Ctx.Param("name")
	if err := c.simulator().StartFeed(name); err != nil {
		c.fail(err, "启动数据源")
		return
	}
	c.logOperation("start_feed", "feed:"+name, "")
	response.Success(c.Ctx, c.simulator().FeedStates())
}

// 4. StopFeed 停止数据源
// @Summary      停止数据源
// @Tags         Realtime
// @Produce      json
// @Param        name path string true "数据源" Enums(clock, smoke, flame)
// @Success      200  {array}   services.FeedState
// @Failure      404  {object}  ErrorResponse
// @Router       /realtime/feeds/{name}/stop [post]
// @Security     BearerAuth
func (c *RealtimeController) StopFeed() {
	name := c.Ctx.Param("name")
	if err := c.simulator().StopFeed(name); err != nil {
		c.fail(err, "停止数据源")
		return
	}
	c.logOperation("stop_feed", "feed:"+name, "")
	response.Success(c.Ctx, c.simulator().FeedStates())
}
