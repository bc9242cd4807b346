package game

import "fmt"

// handleAddBar 为目标角色新增数值条
// 同时在会话的定义目录中登记描述字段，实例只携带ID与当前值
// ID 由服务端生成，保证在会话内唯一
func handleAddBar(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.Name == "" {
		return nil, fmt.Errorf("%w: 缺少数值条名称", ErrBadRequest)
	}
	min, max := 0, 0
	if ev.Min != nil {
		min = *ev.Min
	}
	if ev.Max != nil {
		max = *ev.Max
	}
	if max < min {
		return nil, fmt.Errorf("%w: 数值条上限 %d 小于下限 %d", ErrBadRequest, max, min)
	}
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	// 初始值与扣减一样向 0 收口
	current := ev.Current
	if current < 0 {
		current = 0
	}

	id := NewBarID()
	s.Definition.Bars = append(s.Definition.Bars, BarDefinition{
		ID:    id,
		Name:  ev.Name,
		Color: ev.Color,
		Min:   min,
		Max:   max,
	})
	ch.Attributes.Bars = append(ch.Attributes.Bars, Bar{ID: id, Current: current})

	return &Change{
		Field:       "bars",
		NewValue:    Bar{ID: id, Current: current},
		Description: fmt.Sprintf("为角色 %s 新增数值条 %s", ch.Name, ev.Name),
	}, nil
}

// handleUpdateBar 修改数值条的定义字段（名称、颜色、上下限）
func handleUpdateBar(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}
	if ch.Bar(ev.BarID) == nil {
		return nil, fmt.Errorf("%w: 数值条 %s", ErrNotFound, ev.BarID)
	}
	def := s.Definition.BarDefinition(ev.BarID)
	if def == nil {
		return nil, fmt.Errorf("%w: 数值条定义 %s", ErrNotFound, ev.BarID)
	}

	// 只应用事件携带的字段，未传的字段保持原值
	old := *def
	if ev.Name != "" {
		def.Name = ev.Name
	}
	if ev.Color != "" {
		def.Color = ev.Color
	}
	if ev.Min != nil {
		def.Min = *ev.Min
	}
	if ev.Max != nil {
		def.Max = *ev.Max
	}
	if def.Max < def.Min {
		*def = old
		return nil, fmt.Errorf("%w: 数值条上限 %d 小于下限 %d", ErrBadRequest, def.Max, def.Min)
	}

	return &Change{
		Field:       "bars",
		OldValue:    old,
		NewValue:    *def,
		Description: fmt.Sprintf("更新了角色 %s 的数值条 %s", ch.Name, def.Name),
	}, nil
}

// handleDeleteBar 删除数值条实例及其定义
func handleDeleteBar(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range ch.Attributes.Bars {
		if ch.Attributes.Bars[i].ID == ev.BarID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: 数值条 %s", ErrNotFound, ev.BarID)
	}

	removed := ch.Attributes.Bars[idx]
	ch.Attributes.Bars = append(ch.Attributes.Bars[:idx], ch.Attributes.Bars[idx+1:]...)

	name := ev.BarID
	for i := range s.Definition.Bars {
		if s.Definition.Bars[i].ID == ev.BarID {
			name = s.Definition.Bars[i].Name
			s.Definition.Bars = append(s.Definition.Bars[:i], s.Definition.Bars[i+1:]...)
			break
		}
	}

	return &Change{
		Field:       "bars",
		OldValue:    removed,
		Description: fmt.Sprintf("删除了角色 %s 的数值条 %s", ch.Name, name),
	}, nil
}

// handleIncrementBar 增加数值条当前值
// 不向定义的上限收口：这是沿用原始行为的产品决策
func handleIncrementBar(s *Session, ev *Event, _ *Participant) (*Change, error) {
	return adjustBar(s, ev, ev.Amount)
}

// handleDecrementBar 减少数值条当前值，下限收口到0
func handleDecrementBar(s *Session, ev *Event, _ *Participant) (*Change, error) {
	return adjustBar(s, ev, -ev.Amount)
}

func adjustBar(s *Session, ev *Event, delta int) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}
	bar := ch.Bar(ev.BarID)
	if bar == nil {
		return nil, fmt.Errorf("%w: 数值条 %s", ErrNotFound, ev.BarID)
	}

	old := bar.Current
	bar.Current += delta
	if bar.Current < 0 {
		bar.Current = 0
	}

	name := ev.BarID
	if def := s.Definition.BarDefinition(ev.BarID); def != nil {
		name = def.Name
	}

	return &Change{
		Field:       "bars",
		OldValue:    old,
		NewValue:    bar.Current,
		Description: fmt.Sprintf("角色 %s 的 %s 从 %d 变为 %d", ch.Name, name, old, bar.Current),
	}, nil
}
