package game

import "fmt"

// handleAddStatus 为目标角色新增状态标记
// ID 由服务端生成，描述字段登记到会话的定义目录
func handleAddStatus(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.Name == "" {
		return nil, fmt.Errorf("%w: 缺少状态名称", ErrBadRequest)
	}
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	id := NewStatusID()
	active := false
	if ev.Active != nil {
		active = *ev.Active
	}

	s.Definition.Statuses = append(s.Definition.Statuses, StatusDefinition{ID: id, Name: ev.Name})
	ch.Attributes.Statuses = append(ch.Attributes.Statuses, Status{ID: id, Active: active})

	return &Change{
		Field:       "statuses",
		NewValue:    Status{ID: id, Active: active},
		Description: fmt.Sprintf("为角色 %s 新增状态 %s", ch.Name, ev.Name),
	}, nil
}

// handleUpdateStatus 切换状态标记的激活位，或重命名其定义
func handleUpdateStatus(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}
	st := ch.Status(ev.StatusID)
	if st == nil {
		return nil, fmt.Errorf("%w: 状态 %s", ErrNotFound, ev.StatusID)
	}

	old := *st
	if ev.Active != nil {
		st.Active = *ev.Active
	}

	name := ev.StatusID
	if def := s.Definition.StatusDefinition(ev.StatusID); def != nil {
		if ev.Name != "" {
			def.Name = ev.Name
		}
		name = def.Name
	}

	return &Change{
		Field:       "statuses",
		OldValue:    old,
		NewValue:    *st,
		Description: fmt.Sprintf("更新了角色 %s 的状态 %s", ch.Name, name),
	}, nil
}

// handleDeleteStatus 删除状态实例及其定义
func handleDeleteStatus(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range ch.Attributes.Statuses {
		if ch.Attributes.Statuses[i].ID == ev.StatusID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: 状态 %s", ErrNotFound, ev.StatusID)
	}

	removed := ch.Attributes.Statuses[idx]
	ch.Attributes.Statuses = append(ch.Attributes.Statuses[:idx], ch.Attributes.Statuses[idx+1:]...)

	name := ev.StatusID
	for i := range s.Definition.Statuses {
		if s.Definition.Statuses[i].ID == ev.StatusID {
			name = s.Definition.Statuses[i].Name
			s.Definition.Statuses = append(s.Definition.Statuses[:i], s.Definition.Statuses[i+1:]...)
			break
		}
	}

	return &Change{
		Field:       "statuses",
		OldValue:    removed,
		Description: fmt.Sprintf("删除了角色 %s 的状态 %s", ch.Name, name),
	}, nil
}
