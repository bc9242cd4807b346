package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterLocksAfterMaxAttempts(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		rl.Record("10.0.0.1")
	}
	assert.False(t, rl.IsLocked("10.0.0.1"))

	// 超过上限后锁定
	rl.Record("10.0.0.1")
	assert.True(t, rl.IsLocked("10.0.0.1"))

	// 其他IP不受影响
	assert.False(t, rl.IsLocked("10.0.0.2"))
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/s-1/events", nil)
		req.RemoteAddr = "10.0.0.3:12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	// 第三次超限记录，第四次被拒绝
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
