// Package router 提供 HTTP 路由配置
package router

import (
	"log/slog"
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/internal/engine"
	"github.com/cyril-colin/pagemaster-sub001/internal/handler"
	"github.com/cyril-colin/pagemaster-sub001/internal/middleware"
	"github.com/cyril-colin/pagemaster-sub001/internal/room"
)

const healthCheckResponse = `{"status":"ok"}`

// Setup 配置所有路由
func Setup(pipeline *engine.Pipeline, rooms *room.Registry, store engine.Store, rateLimiter *middleware.RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	// 健康检查
	mux.HandleFunc("GET /isalive", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(healthCheckResponse)); err != nil {
			slog.Error("健康检查响应写入失败", "error", err)
		}
	})

	sessions := &handler.SessionHandler{Engine: pipeline}
	ws := &handler.WSHandler{Rooms: rooms, Store: store}

	// 游戏定义接口（定义创建后不可变）
	mux.Handle("POST /api/definitions", middleware.Logger(http.HandlerFunc(handler.CreateDefinition)))
	mux.Handle("GET /api/definitions", middleware.Logger(http.HandlerFunc(handler.GetAllDefinitions)))
	mux.Handle("GET /api/definitions/{definitionId}", middleware.Logger(http.HandlerFunc(handler.GetDefinition)))

	// 会话接口
	mux.Handle("POST /api/sessions", middleware.Logger(http.HandlerFunc(sessions.CreateSession)))
	mux.Handle("GET /api/sessions", middleware.Logger(http.HandlerFunc(sessions.GetAllSessions)))
	mux.Handle("GET /api/sessions/{sessionId}", middleware.Logger(middleware.ValidateSessionID(http.HandlerFunc(sessions.GetSession))))
	mux.Handle("DELETE /api/sessions/{sessionId}", middleware.Logger(middleware.ValidateSessionID(middleware.ParticipantIdentity(http.HandlerFunc(sessions.DeleteSession)))))

	// 变更事件提交
	mux.Handle("POST /api/sessions/{sessionId}/events", middleware.Logger(middleware.RateLimit(rateLimiter)(middleware.ValidateSessionID(middleware.ParticipantIdentity(http.HandlerFunc(sessions.SubmitEvent))))))

	// 统计信息
	mux.Handle("GET /api/stats", middleware.Logger(http.HandlerFunc(handler.GetStats)))

	// WebSocket 实时推送
	mux.Handle("/ws", middleware.Logger(http.HandlerFunc(ws.Serve)))

	return mux
}
