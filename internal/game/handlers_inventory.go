package game

import "fmt"

// handleAddInventory 为目标角色新增物品栏
// ID 由服务端生成，名称与保密位登记到会话的定义目录
func handleAddInventory(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.Name == "" {
		return nil, fmt.Errorf("%w: 缺少物品栏名称", ErrBadRequest)
	}
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	id := NewInventoryID()
	secret := false
	if ev.Secret != nil {
		secret = *ev.Secret
	}

	s.Definition.Inventories = append(s.Definition.Inventories, InventoryDefinition{
		ID:     id,
		Name:   ev.Name,
		Secret: secret,
	})
	ch.Attributes.Inventories = append(ch.Attributes.Inventories, Inventory{ID: id, Current: []Item{}})

	return &Change{
		Field:       "inventories",
		NewValue:    Inventory{ID: id, Current: []Item{}},
		Description: fmt.Sprintf("为角色 %s 新增物品栏 %s", ch.Name, ev.Name),
	}, nil
}

// handleUpdateInventory 修改物品栏定义（名称、保密位）
func handleUpdateInventory(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}
	if ch.Inventory(ev.InventoryID) == nil {
		return nil, fmt.Errorf("%w: 物品栏 %s", ErrNotFound, ev.InventoryID)
	}
	def := s.Definition.InventoryDefinition(ev.InventoryID)
	if def == nil {
		return nil, fmt.Errorf("%w: 物品栏定义 %s", ErrNotFound, ev.InventoryID)
	}

	old := *def
	if ev.Name != "" {
		def.Name = ev.Name
	}
	if ev.Secret != nil {
		def.Secret = *ev.Secret
	}

	return &Change{
		Field:       "inventories",
		OldValue:    old,
		NewValue:    *def,
		Description: fmt.Sprintf("更新了角色 %s 的物品栏 %s", ch.Name, def.Name),
	}, nil
}

// handleDeleteInventory 删除物品栏实例及其定义，栏内物品一并移除
func handleDeleteInventory(s *Session, ev *Event, _ *Participant) (*Change, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range ch.Attributes.Inventories {
		if ch.Attributes.Inventories[i].ID == ev.InventoryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: 物品栏 %s", ErrNotFound, ev.InventoryID)
	}

	removed := ch.Attributes.Inventories[idx]
	ch.Attributes.Inventories = append(ch.Attributes.Inventories[:idx], ch.Attributes.Inventories[idx+1:]...)

	name := ev.InventoryID
	for i := range s.Definition.Inventories {
		if s.Definition.Inventories[i].ID == ev.InventoryID {
			name = s.Definition.Inventories[i].Name
			s.Definition.Inventories = append(s.Definition.Inventories[:i], s.Definition.Inventories[i+1:]...)
			break
		}
	}

	return &Change{
		Field:       "inventories",
		OldValue:    removed,
		Description: fmt.Sprintf("删除了角色 %s 的物品栏 %s", ch.Name, name),
	}, nil
}

// targetInventory 解析事件指向的物品栏
func targetInventory(s *Session, ev *Event) (*Character, *Inventory, error) {
	_, ch, err := targetCharacter(s, ev)
	if err != nil {
		return nil, nil, err
	}
	inv := ch.Inventory(ev.InventoryID)
	if inv == nil {
		return nil, nil, fmt.Errorf("%w: 物品栏 %s", ErrNotFound, ev.InventoryID)
	}
	return ch, inv, nil
}

// handleAddItem 向物品栏加入物品
// 物品是完整拷贝而非引用；ID 由服务端生成，在所属物品栏内唯一
func handleAddItem(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.Item == nil || ev.Item.Name == "" {
		return nil, fmt.Errorf("%w: 缺少物品信息", ErrBadRequest)
	}
	ch, inv, err := targetInventory(s, ev)
	if err != nil {
		return nil, err
	}

	item := Item{
		ID:          NewItemID(),
		Picture:     ev.Item.Picture,
		Name:        ev.Item.Name,
		Description: ev.Item.Description,
	}
	if ev.Item.Weight != nil {
		item.Weight = *ev.Item.Weight
	}
	inv.Current = append(inv.Current, item)

	return &Change{
		Field:       "items",
		NewValue:    item,
		Description: fmt.Sprintf("向角色 %s 的物品栏加入了 %s", ch.Name, item.Name),
	}, nil
}

// handleUpdateItem 修改物品栏中的物品
func handleUpdateItem(s *Session, ev *Event, _ *Participant) (*Change, error) {
	if ev.Item == nil {
		return nil, fmt.Errorf("%w: 缺少物品信息", ErrBadRequest)
	}
	ch, inv, err := targetInventory(s, ev)
	if err != nil {
		return nil, err
	}
	item := inv.Item(ev.ItemID)
	if item == nil {
		return nil, fmt.Errorf("%w: 物品 %s", ErrNotFound, ev.ItemID)
	}

	// 只应用载荷携带的字段，未传的字段保持原值
	old := *item
	if ev.Item.Name != "" {
		item.Name = ev.Item.Name
	}
	if ev.Item.Picture != "" {
		item.Picture = ev.Item.Picture
	}
	if ev.Item.Description != "" {
		item.Description = ev.Item.Description
	}
	if ev.Item.Weight != nil {
		item.Weight = *ev.Item.Weight
	}

	return &Change{
		Field:       "items",
		OldValue:    old,
		NewValue:    *item,
		Description: fmt.Sprintf("更新了角色 %s 的物品 %s", ch.Name, item.Name),
	}, nil
}

// handleDeleteItem 从物品栏移除物品
func handleDeleteItem(s *Session, ev *Event, _ *Participant) (*Change, error) {
	ch, inv, err := targetInventory(s, ev)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range inv.Current {
		if inv.Current[i].ID == ev.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: 物品 %s", ErrNotFound, ev.ItemID)
	}

	removed := inv.Current[idx]
	inv.Current = append(inv.Current[:idx], inv.Current[idx+1:]...)

	return &Change{
		Field:       "items",
		OldValue:    removed,
		Description: fmt.Sprintf("移除了角色 %s 的物品 %s", ch.Name, removed.Name),
	}, nil
}
