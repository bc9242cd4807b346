package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CleanupStaleSessions 清理长期未更新的会话
// 规则：
// 1. 删除超过 ttlDays 天未更新的会话
// 2. 删除创建后从未提交过任何事件（版本仍为0）且创建超过7天的会话
func CleanupStaleSessions(ctx context.Context, ttlDays int) (int64, error) {
	// 清理长期未更新的会话
	result1, err := DB.Exec(ctx, fmt.Sprintf(`
		DELETE FROM sessions
		WHERE updated_at < NOW() - INTERVAL '%d days'
	`, ttlDays))
	if err != nil {
		return 0, err
	}
	count1 := result1.RowsAffected()

	// 清理从未使用过的会话
	result2, err := DB.Exec(ctx, `
		DELETE FROM sessions
		WHERE version = 0
		AND created_at < NOW() - INTERVAL '7 days'
	`)
	if err != nil {
		return count1, err
	}
	count2 := result2.RowsAffected()

	total := count1 + count2
	if total > 0 {
		slog.Info("清理过期会话", "count", total)
	}

	return total, nil
}

// RunCleanup 执行所有清理操作
func RunCleanup(ctx context.Context, ttlDays int) error {
	startTime := time.Now()
	slog.Info("开始执行数据清理任务")

	sessionsCount, err := CleanupStaleSessions(ctx, ttlDays)
	if err != nil {
		slog.Error("清理过期会话失败", "error", err)
		return err
	}

	duration := time.Since(startTime)
	slog.Info("数据清理任务完成",
		"sessions", sessionsCount,
		"duration", duration,
	)

	return nil
}
