package game

// Clone 深拷贝会话文档
// 提交管线在分发处理器前先拷贝工作副本，条件写入被拒绝时
// 原始文档保持可用，调用方可以用它重新加载后重试
func (s *Session) Clone() *Session {
	cp := *s
	cp.Definition = s.Definition.clone()
	cp.Participants = make([]Participant, len(s.Participants))
	for i := range s.Participants {
		cp.Participants[i] = s.Participants[i].clone()
	}
	return &cp
}

func (d GameDefinition) clone() GameDefinition {
	cp := d
	cp.Bars = append([]BarDefinition(nil), d.Bars...)
	cp.Statuses = append([]StatusDefinition(nil), d.Statuses...)
	cp.Inventories = append([]InventoryDefinition(nil), d.Inventories...)
	cp.Strengths = append([]TraitDefinition(nil), d.Strengths...)
	cp.Weaknesses = append([]TraitDefinition(nil), d.Weaknesses...)
	cp.Skills = append([]SkillDefinition(nil), d.Skills...)
	cp.Items = append([]ItemDefinition(nil), d.Items...)
	return cp
}

func (p Participant) clone() Participant {
	cp := p
	if p.Character != nil {
		ch := p.Character.clone()
		cp.Character = &ch
	}
	return cp
}

func (c Character) clone() Character {
	cp := c
	cp.Skills = append([]string(nil), c.Skills...)
	cp.Attributes.Bars = append([]Bar(nil), c.Attributes.Bars...)
	cp.Attributes.Statuses = append([]Status(nil), c.Attributes.Statuses...)
	cp.Attributes.Strengths = append([]string(nil), c.Attributes.Strengths...)
	cp.Attributes.Weaknesses = append([]string(nil), c.Attributes.Weaknesses...)
	cp.Attributes.Inventories = make([]Inventory, len(c.Attributes.Inventories))
	for i, inv := range c.Attributes.Inventories {
		cp.Attributes.Inventories[i] = Inventory{
			ID:      inv.ID,
			Current: append([]Item(nil), inv.Current...),
		}
	}
	return cp
}
