package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"
)

// RateLimiter 限流器
// 按客户端IP统计事件提交次数，窗口内超限后锁定一段时间
type RateLimiter struct {
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
	attempts    map[string]*attemptInfo
	maxAttempts int
	lockTime    time.Duration
}

type attemptInfo struct {
	count    int
	firstAt  time.Time
	lockedAt time.Time
}

// NewRateLimiter 创建新的限流器
func NewRateLimiter(maxAttempts int, lockTime time.Duration) *RateLimiter {
	ctx, cancel := context.WithCancel(context.Background())

	rl := &RateLimiter{
		ctx:         ctx,
		cancel:      cancel,
		attempts:    make(map[string]*attemptInfo),
		maxAttempts: maxAttempts,
		lockTime:    lockTime,
	}

	// 启动清理协程
	go rl.cleanup()

	return rl
}

// cleanup 定期清理过期记录
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for ip, info := range rl.attempts {
				// 清理计数窗口已过期的记录
				if info.lockedAt.IsZero() && now.Sub(info.firstAt) > time.Minute {
					delete(rl.attempts, ip)
				}
				// 清理锁定时间已过的记录
				if !info.lockedAt.IsZero() && now.Sub(info.lockedAt) > rl.lockTime {
					delete(rl.attempts, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Close 停止限流器并清理资源
func (rl *RateLimiter) Close() {
	if rl.cancel != nil {
		rl.cancel()
	}
}

// IsLocked 检查IP是否被锁定
func (rl *RateLimiter) IsLocked(ip string) bool {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	info, ok := rl.attempts[ip]
	if !ok || info.lockedAt.IsZero() {
		return false
	}
	return time.Since(info.lockedAt) <= rl.lockTime
}

// Record 记录一次提交，超限时锁定该IP
func (rl *RateLimiter) Record(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	info, ok := rl.attempts[ip]
	if !ok || now.Sub(info.firstAt) > time.Minute {
		rl.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return
	}

	info.count++
	if info.count > rl.maxAttempts && info.lockedAt.IsZero() {
		info.lockedAt = now
	}
}

// RateLimit 限流中间件
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.GetClientIP(r)

			if rl.IsLocked(ip) {
				utils.ErrorResponse(w, http.StatusTooManyRequests, "请求过于频繁，请稍后再试", nil)
				return
			}

			rl.Record(ip)
			next.ServeHTTP(w, r)
		})
	}
}
