package game

// newTestSession 构造测试会话
// 主持人 gm-1，玩家 p-1（角色 ch-1，带血量条 hp 当前值10）与 p-2（角色 ch-2）
func newTestSession() *Session {
	return &Session{
		ID:      "s-1",
		Version: 3,
		Definition: GameDefinition{
			ID:         "def-1",
			Name:       "龙与地下城",
			MinPlayers: 1,
			MaxPlayers: 6,
			Bars: []BarDefinition{
				{ID: "hp", Name: "血量", Color: "#ff0000", Min: 0, Max: 20},
			},
			Statuses: []StatusDefinition{
				{ID: "poisoned", Name: "中毒"},
			},
			Inventories: []InventoryDefinition{
				{ID: "backpack", Name: "背包"},
			},
			Strengths: []TraitDefinition{
				{ID: "str-brave", Name: "勇敢"},
			},
			Weaknesses: []TraitDefinition{
				{ID: "weak-dark", Name: "怕黑"},
			},
		},
		Participants: []Participant{
			{
				ID:   "gm-1",
				Name: "主持人",
				Role: RoleGameMaster,
			},
			{
				ID:        "p-1",
				Name:      "玩家一",
				Role:      RolePlayer,
				TurnOrder: 1,
				Character: &Character{
					ID:   "ch-1",
					Name: "阿尔温",
					Attributes: Attributes{
						Bars:     []Bar{{ID: "hp", Current: 10}},
						Statuses: []Status{{ID: "poisoned", Active: false}},
						Inventories: []Inventory{
							{ID: "backpack", Current: []Item{
								{ID: "item-1", Name: "短剑", Weight: 2.5},
							}},
						},
					},
				},
			},
			{
				ID:        "p-2",
				Name:      "玩家二",
				Role:      RolePlayer,
				TurnOrder: 2,
				Character: &Character{
					ID:   "ch-2",
					Name: "布琳",
				},
			},
		},
	}
}
