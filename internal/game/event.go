package game

import "time"

// EventType 事件类型标签
type EventType string

// 事件类型目录
// 分发表按此标签选择唯一的处理器，未知标签直接拒绝
const (
	EventRenameCharacter   EventType = "rename-character"
	EventUpdateDescription EventType = "update-description"
	EventUpdateAvatar      EventType = "update-avatar"

	EventAddBar       EventType = "add-bar"
	EventUpdateBar    EventType = "update-bar"
	EventDeleteBar    EventType = "delete-bar"
	EventIncrementBar EventType = "increment-bar"
	EventDecrementBar EventType = "decrement-bar"

	EventAddStatus    EventType = "add-status"
	EventUpdateStatus EventType = "update-status"
	EventDeleteStatus EventType = "delete-status"

	EventAddInventory    EventType = "add-inventory"
	EventUpdateInventory EventType = "update-inventory"
	EventDeleteInventory EventType = "delete-inventory"

	EventAddItem    EventType = "add-item"
	EventUpdateItem EventType = "update-item"
	EventDeleteItem EventType = "delete-item"

	EventAddStrength    EventType = "add-strength"
	EventRemoveStrength EventType = "remove-strength"
	EventAddWeakness    EventType = "add-weakness"
	EventRemoveWeakness EventType = "remove-weakness"
)

// Event 变更事件
// 按类型标签判别的联合体，各处理器只读取自己关心的字段
// TargetID 指向目标参与者，也可以传角色ID（由处理器解析）
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId,omitempty"`
	TargetID  string    `json:"targetId,omitempty"`

	// 资料类字段
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Picture     string `json:"picture,omitempty"`

	// 属性条目定位
	BarID       string `json:"barId,omitempty"`
	StatusID    string `json:"statusId,omitempty"`
	InventoryID string `json:"inventoryId,omitempty"`
	ItemID      string `json:"itemId,omitempty"`
	TraitID     string `json:"traitId,omitempty"`

	// 属性变更载荷
	// Min/Max 用指针区分"没传"与"传了0"：更新时只应用非空字段
	Amount  int          `json:"amount,omitempty"`
	Min     *int         `json:"min,omitempty"`
	Max     *int         `json:"max,omitempty"`
	Current int          `json:"current,omitempty"`
	Color   string       `json:"color,omitempty"`
	Active  *bool        `json:"active,omitempty"`
	Secret  *bool        `json:"secret,omitempty"`
	Item    *ItemPayload `json:"item,omitempty"`
}

// ItemPayload 物品字段载荷
// 不携带ID：物品ID一律由服务端生成，绝不信任客户端输入
// Weight 用指针区分"没传"与"传了0"，更新时只应用非空字段
type ItemPayload struct {
	Picture     string   `json:"picture,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

// Change 处理器产生的变更摘要
// 携带新旧值与可读描述，用于构造广播给客户端的通知
type Change struct {
	Field       string `json:"field"`
	OldValue    any    `json:"oldValue,omitempty"`
	NewValue    any    `json:"newValue,omitempty"`
	Description string `json:"description"`
}

// ParticipantRef 参与者摘要，随计算事件广播
type ParticipantRef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Role          Role   `json:"role"`
	CharacterID   string `json:"characterId,omitempty"`
	CharacterName string `json:"characterName,omitempty"`
}

// NewParticipantRef 构造参与者摘要
func NewParticipantRef(p *Participant) ParticipantRef {
	ref := ParticipantRef{ID: p.ID, Name: p.Name, Role: p.Role}
	if p.Character != nil {
		ref.CharacterID = p.Character.ID
		ref.CharacterName = p.Character.Name
	}
	return ref
}

// ComputedEvent 计算事件
// 提交成功后广播给房间内所有客户端的值，绝不广播原始输入事件
// 包含已解析的触发者与目标身份，以及服务端盖的时间戳
type ComputedEvent struct {
	Type        EventType       `json:"type"`
	SessionID   string          `json:"sessionId"`
	Version     int64           `json:"version"`
	TriggeredBy ParticipantRef  `json:"triggeredBy"`
	Target      *ParticipantRef `json:"target,omitempty"`
	Change      *Change         `json:"change,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
