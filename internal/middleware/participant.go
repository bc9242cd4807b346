package middleware

import (
	"context"
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"
)

// ContextKey 上下文键类型
type ContextKey string

const (
	// ParticipantIDKey 参与者ID上下文键
	ParticipantIDKey ContextKey = "participantID"

	// ParticipantIDHeader 携带调用者身份的请求头
	// 身份由外部认证协作方解析后带入，本服务按原样信任
	ParticipantIDHeader = "X-Participant-Id"
)

// ParticipantIdentity 参与者身份中间件
// 从请求头提取调用者的参与者ID并存入上下文；
// 是否真是该会话的参与者由授权守卫在处理事件时校验
func ParticipantIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		participantID := r.Header.Get(ParticipantIDHeader)
		if participantID == "" {
			utils.ErrorResponse(w, http.StatusUnauthorized, "缺少参与者身份", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ParticipantIDKey, participantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetParticipantID 从上下文获取参与者ID
func GetParticipantID(r *http.Request) string {
	if v := r.Context().Value(ParticipantIDKey); v != nil {
		return v.(string)
	}
	return ""
}
