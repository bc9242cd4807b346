package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/internal/database"
	"github.com/cyril-colin/pagemaster-sub001/internal/engine"
	"github.com/cyril-colin/pagemaster-sub001/internal/game"
	"github.com/cyril-colin/pagemaster-sub001/internal/middleware"
	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"
)

// SessionHandler 会话接口处理器
type SessionHandler struct {
	Engine *engine.Pipeline
}

// CreateSessionRequest 创建会话请求
type CreateSessionRequest struct {
	DefinitionID string             `json:"definitionId"`
	Participants []game.Participant `json:"participants"`
}

// CreateSession 处理 POST /api/sessions
// 从游戏定义创建新会话，定义目录整体拷贝进会话文档
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxBodySize)
	defer func() { _ = r.Body.Close() }()

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "无效的请求格式", err)
		return
	}
	if req.DefinitionID == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "缺少游戏定义ID", nil)
		return
	}

	def, err := database.GetDefinitionByID(r.Context(), req.DefinitionID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	s, err := h.Engine.CreateSession(r.Context(), *def, req.Participants)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, s)
}

// GetSession 处理 GET /api/sessions/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r)

	s, err := h.Engine.GetSession(r.Context(), sessionID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	utils.SuccessResponse(w, s)
}

// DeleteSession 处理 DELETE /api/sessions/{sessionId}
// 仅限会话的主持人，硬删除
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r)
	callerID := middleware.GetParticipantID(r)

	if err := h.Engine.DeleteSession(r.Context(), callerID, sessionID); err != nil {
		writeEngineError(w, err)
		return
	}

	utils.SuccessResponse(w, map[string]string{"sessionId": sessionID})
}

// SubmitEvent 处理 POST /api/sessions/{sessionId}/events
// 路径上的会话ID是权威值，覆盖事件体内的字段
func (h *SessionHandler) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r)
	callerID := middleware.GetParticipantID(r)

	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxBodySize)
	defer func() { _ = r.Body.Close() }()

	var ev game.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "无效的事件格式", err)
		return
	}
	ev.SessionID = sessionID

	computed, err := h.Engine.Submit(r.Context(), callerID, &ev)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	utils.SuccessResponse(w, computed)
}

// GetAllSessions 处理 GET /api/sessions
// 会话摘要列表（管理用途）
func (h *SessionHandler) GetAllSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := database.GetAllSessions(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	utils.SuccessResponse(w, sessions)
}
