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

// CreateDefinition 写入新的游戏定义
// 定义创建后不可变，没有任何更新路径
func CreateDefinition(ctx context.Context, def *game.GameDefinition) error {
	document, err := json.Marshal(def)
	if err != nil {
		return err
	}

	_, err = DB.Exec(ctx, `
		INSERT INTO definitions (definition_id, name, document, created_at)
		VALUES ($1, $2, $3, $4)
	`, def.ID, def.Name, document, time.Now())
	if err != nil {
		return fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	return nil
}

// GetDefinitionByID 按ID读取游戏定义
// 不存在时返回 game.ErrNotFound
func GetDefinitionByID(ctx context.Context, definitionID string) (*game.GameDefinition, error) {
	var document []byte

	err := DB.QueryRow(ctx, `
		SELECT document FROM definitions WHERE definition_id = $1
	`, definitionID).Scan(&document)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: 游戏定义 %s", game.ErrNotFound, definitionID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}

	var def game.GameDefinition
	if err := json.Unmarshal(document, &def); err != nil {
		return nil, fmt.Errorf("解析游戏定义失败: %w", err)
	}
	def.ID = definitionID
	return &def, nil
}

// GetAllDefinitions 获取所有游戏定义行
func GetAllDefinitions(ctx context.Context) ([]DefinitionRow, error) {
	rows, err := DB.Query(ctx, `
		SELECT definition_id, name, document, created_at
		FROM definitions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var defs []DefinitionRow
	for rows.Next() {
		var d DefinitionRow
		var document []byte
		if err := rows.Scan(&d.DefinitionID, &d.Name, &document, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Document = document
		defs = append(defs, d)
	}

	return defs, rows.Err()
}
