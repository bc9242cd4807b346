package game

import (
	"fmt"
	"slices"
)

// traitKindOf 从事件类型推断特长/弱点分类
func traitKindOf(t EventType) TraitKind {
	if t == EventAddWeakness || t == EventRemoveWeakness {
		return TraitWeakness
	}
	return TraitStrength
}

// traitList 返回角色属性中对应分类的引用列表
func traitList(ch *Character, kind TraitKind) *[]string {
	if kind == TraitWeakness {
		return &ch.Attributes.Weaknesses
	}
	return &ch.Attributes.Strengths
}

// handleAddTrait 为角色添加特长/弱点引用
// 只存定义ID；被引用的定义必须已存在于会话的定义目录中
func handleAddTrait(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.TraitID == "" {
		return nil, fmt.Errorf("%w: 缺少特长/弱点ID", ErrBadRequest)
	}
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	kind := traitKindOf(ev.Type)
	def := s.Definition.TraitDefinition(kind, ev.TraitID)
	if def == nil {
		return nil, fmt.Errorf("%w: 定义 %s 不在会话目录中", ErrNotFound, ev.TraitID)
	}

	list := traitList(ch, kind)
	if slices.Contains(*list, ev.TraitID) {
		return nil, fmt.Errorf("%w: 角色已拥有 %s", ErrBadRequest, def.Name)
	}
	*list = append(*list, ev.TraitID)

	return &Change{
		Field:       string(kind),
		NewValue:    ev.TraitID,
		Description: fmt.Sprintf("为角色 %s 添加了 %s", ch.Name, def.Name),
	}, nil
}

// handleRemoveTrait 移除角色的特长/弱点引用
func handleRemoveTrait(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	kind := traitKindOf(ev.Type)
	list := traitList(ch, kind)
	idx := slices.Index(*list, ev.TraitID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: 角色未拥有 %s", ErrNotFound, ev.TraitID)
	}
	*list = slices.Delete(*list, idx, idx+1)

	name := ev.TraitID
	if def := s.Definition.TraitDefinition(kind, ev.TraitID); def != nil {
		name = def.Name
	}

	return &Change{
		Field:       string(kind),
		OldValue:    ev.TraitID,
		Description: fmt.Sprintf("移除了角色 %s 的 %s", ch.Name, name),
	}, nil
}
