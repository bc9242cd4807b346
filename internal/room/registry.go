// Package room 提供会话房间的订阅注册表与广播
// 注册表与传输层解耦：订阅者只需实现 Subscriber 接口
// 成员关系只存在于进程内存中，进程重启后全部丢失，客户端需要重新加入
package room

import (
	"log/slog"
	"sync"

	"github.com/cyril-colin/pagemaster-sub001/internal/game"
)

// Subscriber 房间订阅者句柄
type Subscriber interface {
	// Send 向订阅者推送一条消息，失败由实现方自行处理
	Send(v any) error
	// ParticipantID 订阅者声明的参与者身份
	ParticipantID() string
}

// 房间消息类型
const (
	TypeJoined         = "joined"
	TypeLeft           = "left"
	TypeSessionUpdated = "session-updated"
)

// JoinedNotice 加入通知（低重要度事件，与状态变更事件分开）
type JoinedNotice struct {
	Type          string `json:"type"`
	SessionID     string `json:"sessionId"`
	ParticipantID string `json:"participantId"`
}

// LeftNotice 离开通知
type LeftNotice struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

// UpdateNotice 状态变更通知
// 携带提交后的完整会话文档与计算事件，
// 客户端收到后无需再发请求拉取最新状态
type UpdateNotice struct {
	Type    string              `json:"type"`
	Session *game.Session       `json:"session"`
	By      game.ParticipantRef `json:"by"`
	Event   *game.ComputedEvent `json:"event"`
}

// Registry 会话房间注册表
// 每个会话恰好对应一个逻辑房间
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[Subscriber]bool
}

// NewRegistry 创建注册表
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[Subscriber]bool),
	}
}

// Join 将订阅者加入会话房间
// 幂等：重复加入不产生任何额外效果，也不改动会话状态
func (r *Registry) Join(sessionID string, sub Subscriber) {
	r.mu.Lock()
	if r.rooms[sessionID] == nil {
		r.rooms[sessionID] = make(map[Subscriber]bool)
	}
	already := r.rooms[sessionID][sub]
	r.rooms[sessionID][sub] = true
	r.mu.Unlock()

	if already {
		return
	}

	slog.Info("加入会话房间", "sessionId", sessionID, "participantId", sub.ParticipantID())
	r.broadcast(sessionID, JoinedNotice{
		Type:          TypeJoined,
		SessionID:     sessionID,
		ParticipantID: sub.ParticipantID(),
	})
}

// Leave 将订阅者移出会话房间，幂等
func (r *Registry) Leave(sessionID string, sub Subscriber) {
	r.mu.Lock()
	subs, ok := r.rooms[sessionID]
	if !ok || !subs[sub] {
		r.mu.Unlock()
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.rooms, sessionID)
	}
	r.mu.Unlock()

	slog.Info("离开会话房间", "sessionId", sessionID, "participantId", sub.ParticipantID())
	r.broadcast(sessionID, LeftNotice{Type: TypeLeft, SessionID: sessionID})
}

// LeaveAll 将订阅者移出所有房间（连接断开时调用）
func (r *Registry) LeaveAll(sub Subscriber) {
	r.mu.Lock()
	var sessionIDs []string
	for sessionID, subs := range r.rooms {
		if subs[sub] {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(r.rooms, sessionID)
			}
			sessionIDs = append(sessionIDs, sessionID)
		}
	}
	r.mu.Unlock()

	for _, sessionID := range sessionIDs {
		r.broadcast(sessionID, LeftNotice{Type: TypeLeft, SessionID: sessionID})
	}
}

// Publish 向房间内所有成员广播提交后的会话文档与计算事件
// 包含提交者本人，不做任何特殊处理；尽力而为，不保证送达
func (r *Registry) Publish(s *game.Session, ev *game.ComputedEvent) {
	r.broadcast(s.ID, UpdateNotice{
		Type:    TypeSessionUpdated,
		Session: s,
		By:      ev.TriggeredBy,
		Event:   ev,
	})
}

// Members 返回房间当前成员数
func (r *Registry) Members(sessionID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[sessionID])
}

// broadcast 在持有读锁时收集成员，释放锁后再做IO
func (r *Registry) broadcast(sessionID string, v any) {
	r.mu.RLock()
	targets := make([]Subscriber, 0, len(r.rooms[sessionID]))
	for sub := range r.rooms[sessionID] {
		targets = append(targets, sub)
	}
	r.mu.RUnlock()

	for _, sub := range targets {
		if err := sub.Send(v); err != nil {
			// 广播失败只记日志，不回滚已提交的写入
			slog.Error("房间广播失败", "sessionId", sessionID, "participantId", sub.ParticipantID(), "error", err)
		}
	}
}
