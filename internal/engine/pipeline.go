// Package engine 提供事件提交管线
// 状态机：加载 → 授权 → 变更 → 条件写入 → 广播
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cyril-colin/pagemaster-sub001/internal/game"

	"github.com/google/uuid"
)

// Store 版本化会话文档存储契约
// 条件更新以（ID，期望版本）为键，返回匹配的文档数
type Store interface {
	Get(ctx context.Context, sessionID string) (*game.Session, error)
	Insert(ctx context.Context, s *game.Session) error
	ConditionalUpdate(ctx context.Context, sessionID string, expectedVersion int64, s *game.Session) (int64, error)
	Delete(ctx context.Context, sessionID string) (int64, error)
}

// Broadcaster 计算事件的房间广播契约
// 携带提交后的会话文档；发布是尽力而为的单向通知，
// 不确认、不保证送达、不回放
type Broadcaster interface {
	Publish(s *game.Session, ev *game.ComputedEvent)
}

// Pipeline 事件提交管线
// 同一会话内并发提交的唯一串行化点是存储层的条件更新，
// 进程内不持有任何会话锁
type Pipeline struct {
	store    Store
	dispatch *game.Dispatcher
	rooms    Broadcaster
	timeout  time.Duration
}

// New 创建提交管线
func New(store Store, dispatch *game.Dispatcher, rooms Broadcaster, timeout time.Duration) *Pipeline {
	return &Pipeline{
		store:    store,
		dispatch: dispatch,
		rooms:    rooms,
		timeout:  timeout,
	}
}

// Submit 提交一个变更事件
// 所有失败对本次请求都是终态；版本冲突不重试，由调用方重新加载后重提
func (p *Pipeline) Submit(ctx context.Context, callerID string, ev *game.Event) (*game.ComputedEvent, error) {
	// 未知类型在触碰任何状态之前拒绝
	if !p.dispatch.Known(ev.Type) {
		return nil, fmt.Errorf("%w: 未知的事件类型 %s", game.ErrBadRequest, ev.Type)
	}
	if ev.SessionID == "" {
		return nil, fmt.Errorf("%w: 缺少会话ID", game.ErrBadRequest)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// 加载当前文档
	loaded, err := p.store.Get(ctx, ev.SessionID)
	if err != nil {
		return nil, err
	}
	readVersion := loaded.Version

	// 授权在处理器变更状态之前完成，没有副作用
	if err := game.Authorize(loaded, callerID, ev); err != nil {
		return nil, err
	}
	caller := loaded.Participant(callerID)

	// 在工作副本上变更，原始文档保持不动
	working := loaded.Clone()
	change, err := p.dispatch.Dispatch(working, ev, working.Participant(callerID))
	if err != nil {
		return nil, err
	}

	// 条件写入：只有存储中的版本仍等于读取时的版本才会成功
	matched, err := p.store.ConditionalUpdate(ctx, ev.SessionID, readVersion, working)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		// 版本已被其他提交者推进，显式回报冲突而不是静默吞掉
		return nil, fmt.Errorf("%w: 会话 %s 读取版本 %d", game.ErrVersionConflict, ev.SessionID, readVersion)
	}
	working.Version = readVersion + 1

	// 构造计算事件并广播给房间内所有成员（包含提交者本人）
	computed := &game.ComputedEvent{
		Type:        ev.Type,
		SessionID:   ev.SessionID,
		Version:     working.Version,
		TriggeredBy: game.NewParticipantRef(caller),
		Change:      change,
		Timestamp:   time.Now().UTC(),
	}
	if target := working.Participant(ev.TargetID); target != nil {
		ref := game.NewParticipantRef(target)
		computed.Target = &ref
	} else if target := working.ParticipantByCharacter(ev.TargetID); target != nil {
		ref := game.NewParticipantRef(target)
		computed.Target = &ref
	}

	// 广播提交后的文档与计算事件；广播失败只记日志，已提交的写入不回滚
	p.rooms.Publish(working, computed)

	return computed, nil
}

// CreateSession 从游戏定义创建新会话
// 定义目录整体拷贝进会话文档，版本从0起步
func (p *Pipeline) CreateSession(ctx context.Context, def game.GameDefinition, participants []game.Participant) (*game.Session, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: 会话至少需要一名参与者", game.ErrBadRequest)
	}
	seen := make(map[string]bool, len(participants))
	for i := range participants {
		if participants[i].ID == "" {
			participants[i].ID = uuid.New().String()
		}
		// 参与者ID在会话内必须唯一
		if seen[participants[i].ID] {
			return nil, fmt.Errorf("%w: 参与者ID %s 重复", game.ErrBadRequest, participants[i].ID)
		}
		seen[participants[i].ID] = true
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	s := &game.Session{
		ID:           uuid.New().String(),
		Version:      0,
		Definition:   def,
		Participants: participants,
	}
	if err := p.store.Insert(ctx, s); err != nil {
		return nil, err
	}

	slog.Info("会话已创建", "sessionId", s.ID, "definition", def.ID, "participants", len(participants))
	return s, nil
}

// GetSession 读取会话文档
func (p *Pipeline) GetSession(ctx context.Context, sessionID string) (*game.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.store.Get(ctx, sessionID)
}

// DeleteSession 永久删除会话，仅限主持人
// 硬删除，没有软删除也没有墓碑
func (p *Pipeline) DeleteSession(ctx context.Context, callerID, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	s, err := p.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	caller := s.Participant(callerID)
	if caller == nil || !caller.IsGameMaster() {
		return fmt.Errorf("%w: 只有主持人能删除会话", game.ErrForbidden)
	}

	deleted, err := p.store.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: 会话 %s", game.ErrNotFound, sessionID)
	}

	slog.Info("会话已删除", "sessionId", sessionID, "by", callerID)
	return nil
}
