package game

import (
	"strings"

	"github.com/google/uuid"
)

// 服务端生成的属性条目ID前缀
// ID 一律由服务端分配，绝不信任客户端输入中出现的ID
const (
	barIDPrefix       = "bar_"
	statusIDPrefix    = "status_"
	inventoryIDPrefix = "inventory_"
	itemIDPrefix      = "item_"
)

// newID 生成带前缀的随机ID
func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// NewBarID 生成数值条ID
func NewBarID() string { return newID(barIDPrefix) }

// NewStatusID 生成状态ID
func NewStatusID() string { return newID(statusIDPrefix) }

// NewInventoryID 生成物品栏ID
func NewInventoryID() string { return newID(inventoryIDPrefix) }

// NewItemID 生成物品ID
func NewItemID() string { return newID(itemIDPrefix) }
