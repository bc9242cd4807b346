package game

import "fmt"

// HandlerFunc 变更处理器
// 就地修改已拷贝的工作副本 s，返回变更摘要
// 处理器是纯CPU同步变换，不做任何IO
type HandlerFunc func(s *Session, ev *Event, caller *Participant) (*Change, error)

// Dispatcher 事件分发表
// 启动时构建一次的不可变映射，运行期只读，不支持动态注册
type Dispatcher struct {
	handlers map[EventType]HandlerFunc
}

// NewDispatcher 构建分发表
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: map[EventType]HandlerFunc{
			EventRenameCharacter:   handleRenameCharacter,
			EventUpdateDescription: handleUpdateDescription,
			EventUpdateAvatar:      handleUpdateAvatar,

			EventAddBar:       handleAddBar,
			EventUpdateBar:    handleUpdateBar,
			EventDeleteBar:    handleDeleteBar,
			EventIncrementBar: handleIncrementBar,
			EventDecrementBar: handleDecrementBar,

			EventAddStatus:    handleAddStatus,
			EventUpdateStatus: handleUpdateStatus,
			EventDeleteStatus: handleDeleteStatus,

			EventAddInventory:    handleAddInventory,
			EventUpdateInventory: handleUpdateInventory,
			EventDeleteInventory: handleDeleteInventory,

			EventAddItem:    handleAddItem,
			EventUpdateItem: handleUpdateItem,
			EventDeleteItem: handleDeleteItem,

			EventAddStrength:    handleAddTrait,
			EventRemoveStrength: handleRemoveTrait,
			EventAddWeakness:    handleAddTrait,
			EventRemoveWeakness: handleRemoveTrait,
		},
	}
}

// Handler 按事件类型查找处理器，未知类型返回 ErrBadRequest
func (d *Dispatcher) Handler(t EventType) (HandlerFunc, error) {
	h, ok := d.handlers[t]
	if !ok {
		return nil, fmt.Errorf("%w: 未知的事件类型 %s", ErrBadRequest, t)
	}
	return h, nil
}

// Known 判断事件类型是否已注册
// 提交管线在加载任何状态前先用它拒绝未知类型
func (d *Dispatcher) Known(t EventType) bool {
	_, ok := d.handlers[t]
	return ok
}

// Dispatch 分发事件到对应处理器
// caller 必须已通过授权校验
func (d *Dispatcher) Dispatch(s *Session, ev *Event, caller *Participant) (*Change, error) {
	h, err := d.Handler(ev.Type)
	if err != nil {
		return nil, err
	}
	return h(s, ev, caller)
}
