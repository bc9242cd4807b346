// Package game 提供桌面游戏会话的领域模型与状态变更逻辑
package game

// Role 参与者角色
type Role string

const (
	// RoleGameMaster 游戏主持人，拥有会话内全部操作权限
	RoleGameMaster Role = "game-master"
	// RolePlayer 普通玩家，只能操作自己的角色资料
	RolePlayer Role = "player"
)

// GameDefinition 游戏模板定义
// 创建后不可变；会话创建时整体拷贝到会话文档中（拷贝后可独立演化）
type GameDefinition struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Version     string                `json:"version"`
	MinPlayers  int                   `json:"minPlayers"`
	MaxPlayers  int                   `json:"maxPlayers"`
	Bars        []BarDefinition       `json:"bars"`
	Statuses    []StatusDefinition    `json:"statuses"`
	Inventories []InventoryDefinition `json:"inventories"`
	Strengths   []TraitDefinition     `json:"strengths"`
	Weaknesses  []TraitDefinition     `json:"weaknesses"`
	Skills      []SkillDefinition     `json:"skills"`
	Items       []ItemDefinition      `json:"items"`
}

// BarDefinition 数值条定义（血量、魔力等）
type BarDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// StatusDefinition 状态标记定义（中毒、隐身等）
type StatusDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InventoryDefinition 物品栏定义
type InventoryDefinition struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Secret bool   `json:"secret,omitempty"`
}

// TraitDefinition 特长/弱点定义
type TraitDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SkillDefinition 技能定义
type SkillDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ItemDefinition 物品模板定义
type ItemDefinition struct {
	ID          string  `json:"id"`
	Picture     string  `json:"picture,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
}

// Session 游戏会话文档
// 每次成功提交变更事件后 Version 严格加一，由存储层的条件更新保证
type Session struct {
	ID           string         `json:"id"`
	Version      int64          `json:"version"`
	Definition   GameDefinition `json:"definition"`
	Participants []Participant  `json:"participants"`
}

// Participant 会话参与者
// Role 为判别标签：GameMaster 不持有角色，Player 恰好持有一个角色
type Participant struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	TurnOrder int        `json:"turnOrder,omitempty"`
	Character *Character `json:"character,omitempty"`
}

// IsGameMaster 判断参与者是否为主持人
func (p *Participant) IsGameMaster() bool {
	return p.Role == RoleGameMaster
}

// Character 玩家角色
type Character struct {
	ID          string     `json:"id"`
	Picture     string     `json:"picture,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Attributes  Attributes `json:"attributes"`
	Skills      []string   `json:"skills,omitempty"`
}

// Attributes 角色属性集合
// 每个条目只携带定义ID与可变状态，不可变的描述字段（名称、颜色、上下限）
// 存放在会话文档的 Definition 目录中
type Attributes struct {
	Bars        []Bar       `json:"bars"`
	Statuses    []Status    `json:"statuses"`
	Inventories []Inventory `json:"inventories"`
	Strengths   []string    `json:"strengths"`
	Weaknesses  []string    `json:"weaknesses"`
}

// Bar 数值条实例
type Bar struct {
	ID      string `json:"id"`
	Current int    `json:"current"`
}

// Status 状态标记实例
type Status struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// Inventory 物品栏实例，Current 中的物品是完整拷贝而非引用
type Inventory struct {
	ID      string `json:"id"`
	Current []Item `json:"current"`
}

// Item 物品实例，ID 仅在所属物品栏内唯一
type Item struct {
	ID          string  `json:"id"`
	Picture     string  `json:"picture,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Weight      float64 `json:"weight"`
}

// Participant 按ID查找参与者，不存在时返回 nil
func (s *Session) Participant(id string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// ParticipantByCharacter 按角色ID查找参与者，不存在时返回 nil
func (s *Session) ParticipantByCharacter(characterID string) *Participant {
	for i := range s.Participants {
		p := &s.Participants[i]
		if p.Character != nil && p.Character.ID == characterID {
			return p
		}
	}
	return nil
}

// GameMaster 返回会话的主持人，不存在时返回 nil
func (s *Session) GameMaster() *Participant {
	for i := range s.Participants {
		if s.Participants[i].Role == RoleGameMaster {
			return &s.Participants[i]
		}
	}
	return nil
}

// BarDefinition 在会话的定义目录中查找数值条定义
func (d *GameDefinition) BarDefinition(id string) *BarDefinition {
	for i := range d.Bars {
		if d.Bars[i].ID == id {
			return &d.Bars[i]
		}
	}
	return nil
}

// StatusDefinition 在会话的定义目录中查找状态定义
func (d *GameDefinition) StatusDefinition(id string) *StatusDefinition {
	for i := range d.Statuses {
		if d.Statuses[i].ID == id {
			return &d.Statuses[i]
		}
	}
	return nil
}

// InventoryDefinition 在会话的定义目录中查找物品栏定义
func (d *GameDefinition) InventoryDefinition(id string) *InventoryDefinition {
	for i := range d.Inventories {
		if d.Inventories[i].ID == id {
			return &d.Inventories[i]
		}
	}
	return nil
}

// TraitDefinition 在特长或弱点目录中查找定义
func (d *GameDefinition) TraitDefinition(kind TraitKind, id string) *TraitDefinition {
	defs := d.Strengths
	if kind == TraitWeakness {
		defs = d.Weaknesses
	}
	for i := range defs {
		if defs[i].ID == id {
			return &defs[i]
		}
	}
	return nil
}

// Bar 按ID查找角色的数值条实例
func (c *Character) Bar(id string) *Bar {
	for i := range c.Attributes.Bars {
		if c.Attributes.Bars[i].ID == id {
			return &c.Attributes.Bars[i]
		}
	}
	return nil
}

// Status 按ID查找角色的状态实例
func (c *Character) Status(id string) *Status {
	for i := range c.Attributes.Statuses {
		if c.Attributes.Statuses[i].ID == id {
			return &c.Attributes.Statuses[i]
		}
	}
	return nil
}

// Inventory 按ID查找角色的物品栏实例
func (c *Character) Inventory(id string) *Inventory {
	for i := range c.Attributes.Inventories {
		if c.Attributes.Inventories[i].ID == id {
			return &c.Attributes.Inventories[i]
		}
	}
	return nil
}

// Item 按ID查找物品栏中的物品
func (inv *Inventory) Item(id string) *Item {
	for i := range inv.Current {
		if inv.Current[i].ID == id {
			return &inv.Current[i]
		}
	}
	return nil
}

// TraitKind 特长/弱点分类
type TraitKind string

const (
	// TraitStrength 特长
	TraitStrength TraitKind = "strength"
	// TraitWeakness 弱点
	TraitWeakness TraitKind = "weakness"
)
