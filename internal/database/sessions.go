package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cyril-colin/pagemaster-sub001/internal/game"

	"github.com/jackc/pgx/v5"
)

// GetSession 按ID读取会话文档
// 不存在时返回 game.ErrNotFound
func GetSession(ctx context.Context, sessionID string) (*game.Session, error) {
	var version int64
	var document []byte

	err := DB.QueryRow(ctx, `
		SELECT version, document
		FROM sessions
		WHERE session_id = $1
	`, sessionID).Scan(&version, &document)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: 会话 %s", game.ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}

	var s game.Session
	if err := json.Unmarshal(document, &s); err != nil {
		return nil, fmt.Errorf("解析会话文档失败: %w", err)
	}

	// 行上的版本号是权威值，覆盖文档内字段
	s.ID = sessionID
	s.Version = version
	return &s, nil
}

// InsertSession 写入新会话文档
func InsertSession(ctx context.Context, s *game.Session) error {
	document, err := json.Marshal(s)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = DB.Exec(ctx, `
		INSERT INTO sessions (session_id, version, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.Version, document, now, now)
	if err != nil {
		return fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	return nil
}

// ConditionalUpdateSession 条件更新会话文档
// 只有存储中的版本仍等于 expectedVersion 时写入才会生效，
// 生效时版本加一；返回匹配的行数，由这条原子更新（而非进程内锁）
// 保证同一会话的并发提交不会都成功
func ConditionalUpdateSession(ctx context.Context, sessionID string, expectedVersion int64, s *game.Session) (int64, error) {
	document, err := json.Marshal(s)
	if err != nil {
		return 0, err
	}

	tag, err := DB.Exec(ctx, `
		UPDATE sessions
		SET document = $1, version = version + 1, updated_at = $2
		WHERE session_id = $3 AND version = $4
	`, document, time.Now(), sessionID, expectedVersion)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteSession 永久删除会话文档，返回删除的行数
func DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	tag, err := DB.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}

// GetAllSessions 获取所有会话摘要（管理接口）
func GetAllSessions(ctx context.Context) ([]SessionSummary, error) {
	rows, err := DB.Query(ctx, `
		SELECT
			session_id, version,
			COALESCE(document->'definition'->>'name', '') AS definition_name,
			COALESCE(jsonb_array_length(document->'participants'), 0) AS participant_count,
			created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var summaries []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(
			&s.SessionID, &s.Version, &s.DefinitionName,
			&s.ParticipantCount, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// SessionStore 把包级存储函数适配成提交管线的 Store 契约
type SessionStore struct{}

// Get 实现 engine.Store
func (SessionStore) Get(ctx context.Context, sessionID string) (*game.Session, error) {
	return GetSession(ctx, sessionID)
}

// Insert 实现 engine.Store
func (SessionStore) Insert(ctx context.Context, s *game.Session) error {
	return InsertSession(ctx, s)
}

// ConditionalUpdate 实现 engine.Store
func (SessionStore) ConditionalUpdate(ctx context.Context, sessionID string, expectedVersion int64, s *game.Session) (int64, error) {
	return ConditionalUpdateSession(ctx, sessionID, expectedVersion, s)
}

// Delete 实现 engine.Store
func (SessionStore) Delete(ctx context.Context, sessionID string) (int64, error) {
	return DeleteSession(ctx, sessionID)
}
