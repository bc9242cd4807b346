package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cyril-colin/pagemaster-sub001/internal/engine"
	"github.com/cyril-colin/pagemaster-sub001/internal/room"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// MessageType 消息类型定义
type MessageType string

const (
	TypeJoinSession  MessageType = "join-session"
	TypeLeaveSession MessageType = "leave-session"
	TypeError        MessageType = "error"
)

// ClientMessage 客户端消息（用于解析类型）
type ClientMessage struct {
	Type          MessageType `json:"type"`
	SessionID     string      `json:"sessionId,omitempty"`
	ParticipantID string      `json:"participantId,omitempty"`
}

// WSErrorResponse 错误响应
type WSErrorResponse struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// peerConn 封装 WebSocket 连接和写锁，保证并发写入安全
// 实现 room.Subscriber 接口
type peerConn struct {
	conn          *websocket.Conn
	writeMu       sync.Mutex
	mu            sync.RWMutex
	participantID string
}

// Send 实现 room.Subscriber
func (p *peerConn) Send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.conn.WriteMessage(websocket.TextMessage, data)
}

// ParticipantID 实现 room.Subscriber
func (p *peerConn) ParticipantID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.participantID
}

func (p *peerConn) setParticipantID(id string) {
	p.mu.Lock()
	p.participantID = id
	p.mu.Unlock()
}

// sendError 发送错误消息
func (p *peerConn) sendError(message string) {
	if err := p.Send(WSErrorResponse{Type: TypeError, Message: message}); err != nil {
		slog.Error("WebSocket写入失败", "error", err)
	}
}

// WSHandler 实时推送接口处理器
type WSHandler struct {
	Rooms *room.Registry
	Store engine.Store
}

// Serve 处理 WebSocket 连接
// 客户端通过 join-session / leave-session 消息订阅会话房间；
// 加入和离开是幂等操作，不改动会话状态本身
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	// 升级为 WebSocket 连接
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket升级失败", "error", err)
		return
	}
	defer func(conn *websocket.Conn) { _ = conn.Close() }(conn)

	// 设置消息大小限制（64KB）
	conn.SetReadLimit(64 * 1024)

	// 设置读取超时
	if err := conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
		slog.Error("设置读取超时失败", "error", err)
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			slog.Error("设置读取超时失败", "error", err)
		}
		return nil
	})

	slog.Info("WebSocket连接已建立", "ip", r.RemoteAddr)

	// 创建封装的连接
	peer := &peerConn{conn: conn}

	// 连接断开时退出所有已加入的房间
	defer h.Rooms.LeaveAll(peer)

	// 启动心跳 goroutine
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				peer.writeMu.Lock()
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(10*time.Second)); err != nil {
					peer.writeMu.Unlock()
					return
				}
				peer.writeMu.Unlock()
			case <-done:
				return
			}
		}
	}()

	// 消息处理循环
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket读取错误", "error", err)
			}
			break
		}

		// 解析消息
		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			peer.sendError("无效的消息格式")
			continue
		}

		// 处理不同类型的消息
		switch msg.Type {
		case TypeJoinSession:
			h.handleJoin(peer, msg)
		case TypeLeaveSession:
			h.handleLeave(peer, msg)
		default:
			slog.Warn("未知消息类型", "type", msg.Type)
			peer.sendError("未知的消息类型")
		}
	}

	slog.Info("WebSocket连接已关闭", "participantId", peer.ParticipantID())
}

// handleJoin 处理加入会话房间
// 要求呈报的参与者确实属于该会话
func (h *WSHandler) handleJoin(peer *peerConn, msg ClientMessage) {
	if msg.SessionID == "" || msg.ParticipantID == "" {
		peer.sendError("缺少会话ID或参与者ID")
		return
	}

	// 使用带超时的 context 避免潜在阻塞
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := h.Store.Get(ctx, msg.SessionID)
	if err != nil {
		slog.Error("获取会话失败", "sessionId", msg.SessionID, "error", err)
		peer.sendError("会话不存在")
		return
	}
	if s.Participant(msg.ParticipantID) == nil {
		peer.sendError("你不是该会话的参与者")
		return
	}

	peer.setParticipantID(msg.ParticipantID)
	h.Rooms.Join(msg.SessionID, peer)
}

// handleLeave 处理离开会话房间
func (h *WSHandler) handleLeave(peer *peerConn, msg ClientMessage) {
	if msg.SessionID == "" {
		peer.sendError("缺少会话ID")
		return
	}
	h.Rooms.Leave(msg.SessionID, peer)
}
