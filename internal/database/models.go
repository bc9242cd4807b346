// Package database 提供数据库操作功能
package database

import (
	"encoding/json"
	"time"
)

// DefinitionRow 游戏定义行，创建后不可变
type DefinitionRow struct {
	DefinitionID string          `json:"definitionId"`
	Name         string          `json:"name"`
	Document     json.RawMessage `json:"document"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SessionSummary 会话摘要（管理接口用）
type SessionSummary struct {
	SessionID        string    `json:"sessionId"`
	Version          int64     `json:"version"`
	DefinitionName   string    `json:"definitionName"`
	ParticipantCount int       `json:"participantCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
