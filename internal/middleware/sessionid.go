package middleware

import (
	"context"
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"
)

const (
	// SessionIDKey 会话ID上下文键
	SessionIDKey ContextKey = "sessionID"
)

// ValidateSessionID 验证会话ID中间件
// 用于 /api/sessions/{sessionId} 系列接口
func ValidateSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 获取会话ID（从URL路径中）
		sessionID := r.PathValue("sessionId")
		if sessionID == "" {
			utils.ErrorResponse(w, http.StatusBadRequest, "缺少会话ID", nil)
			return
		}

		// 验证会话ID格式
		if !utils.ValidateSessionID(sessionID) {
			utils.ErrorResponse(w, http.StatusBadRequest, "无效的会话ID格式", nil)
			return
		}

		// 将信息存入上下文
		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID 从上下文获取会话ID
func GetSessionID(r *http.Request) string {
	if v := r.Context().Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}
