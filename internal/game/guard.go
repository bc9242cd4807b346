package game

import "fmt"

// authLevel 事件的授权级别
type authLevel int

const (
	// authSelfOrGameMaster 目标本人或主持人可执行（个人资料类）
	authSelfOrGameMaster authLevel = iota
	// authGameMasterOnly 仅主持人可执行（受保护状态类）
	authGameMasterOnly
)

// eventAuthLevels 按事件类型划定的授权策略
// 数值条点数、状态、物品栏内容与特长弱点都属于受保护状态，
// 只有主持人能改动；姓名、描述、头像属于个人资料，本人也可改
var eventAuthLevels = map[EventType]authLevel{
	EventRenameCharacter:   authSelfOrGameMaster,
	EventUpdateDescription: authSelfOrGameMaster,
	EventUpdateAvatar:      authSelfOrGameMaster,

	EventAddBar:       authGameMasterOnly,
	EventUpdateBar:    authGameMasterOnly,
	EventDeleteBar:    authGameMasterOnly,
	EventIncrementBar: authGameMasterOnly,
	EventDecrementBar: authGameMasterOnly,

	EventAddStatus:    authGameMasterOnly,
	EventUpdateStatus: authGameMasterOnly,
	EventDeleteStatus: authGameMasterOnly,

	EventAddInventory:    authGameMasterOnly,
	EventUpdateInventory: authGameMasterOnly,
	EventDeleteInventory: authGameMasterOnly,

	EventAddItem:    authGameMasterOnly,
	EventUpdateItem: authGameMasterOnly,
	EventDeleteItem: authGameMasterOnly,

	EventAddStrength:    authGameMasterOnly,
	EventRemoveStrength: authGameMasterOnly,
	EventAddWeakness:    authGameMasterOnly,
	EventRemoveWeakness: authGameMasterOnly,
}

// Authorize 在处理器运行前校验调用者权限
// 校验没有任何副作用；失败返回 ErrForbidden
func Authorize(s *Session, callerID string, ev *Event) error {
	// 非会话参与者一律拒绝
	caller := s.Participant(callerID)
	if caller == nil {
		return fmt.Errorf("%w: 调用者 %s 不是会话参与者", ErrForbidden, callerID)
	}

	level, ok := eventAuthLevels[ev.Type]
	if !ok {
		return fmt.Errorf("%w: 未知的事件类型 %s", ErrBadRequest, ev.Type)
	}

	switch level {
	case authGameMasterOnly:
		if !caller.IsGameMaster() {
			return fmt.Errorf("%w: 事件 %s 仅限主持人执行", ErrForbidden, ev.Type)
		}
	case authSelfOrGameMaster:
		if caller.IsGameMaster() {
			return nil
		}
		target := resolveTarget(s, ev.TargetID)
		if target == nil || target.ID != caller.ID {
			return fmt.Errorf("%w: 只能修改自己的角色资料", ErrForbidden)
		}
	}

	return nil
}

// resolveTarget 解析目标标识，参与者ID与角色ID都可接受
func resolveTarget(s *Session, targetID string) *Participant {
	if p := s.Participant(targetID); p != nil {
		return p
	}
	return s.ParticipantByCharacter(targetID)
}
