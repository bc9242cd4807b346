package game

import "fmt"

// targetCharacter 解析事件目标并返回其角色
// 目标不存在或目标没有角色（主持人）时返回 ErrNotFound
func targetCharacter(s *Session, ev *Event) (*Participant, *Character, error) {
	target := resolveTarget(s, ev.TargetID)
	if target == nil {
		return nil, nil, fmt.Errorf("%w: 目标参与者 %s", ErrNotFound, ev.TargetID)
	}
	if target.Character == nil {
		return nil, nil, fmt.Errorf("%w: 参与者 %s 没有角色", ErrNotFound, target.ID)
	}
	return target, target.Character, nil
}

// handleRenameCharacter 修改角色显示名
func handleRenameCharacter(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.Name == "" {
		return nil, fmt.Errorf("%w: 缺少新名称", ErrBadRequest)
	}
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	old := ch.Name
	ch.Name = ev.Name
	return &Change{
		Field:       "name",
		OldValue:    old,
		NewValue:    ch.Name,
		Description: fmt.Sprintf("角色 %s 改名为 %s", old, ch.Name),
	}, nil
}

// handleUpdateDescription 修改角色描述
func handleUpdateDescription(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	old := ch.Description
	ch.Description = ev.Description
	return &Change{
		Field:       "description",
		OldValue:    old,
		NewValue:    ch.Description,
		Description: fmt.Sprintf("更新了角色 %s 的描述", ch.Name),
	}, nil
}

// handleUpdateAvatar 修改角色头像
func handleUpdateAvatar(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	old := ch.Picture
	ch.Picture = ev.Picture
	return &Change{
		Field:       "picture",
		OldValue:    old,
		NewValue:    ch.Picture,
		Description: fmt.Sprintf("更新了角色 %s 的头像", ch.Name),
	}, nil
}
