package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemGeneratesUniqueID(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	weight := 1.0
	change, err := handleAddItem(s, &Event{
		Type:        EventAddItem,
		TargetID:    "p-1",
		InventoryID: "backpack",
		Item:        &ItemPayload{Name: "火把", Weight: &weight},
	}, gm)
	require.NoError(t, err)

	item, ok := change.NewValue.(Item)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(item.ID, "item_"))

	// 新ID不得与物品栏内已有物品重复
	inv := s.Participant("p-1").Character.Inventory("backpack")
	require.Len(t, inv.Current, 2)
	assert.NotEqual(t, inv.Current[0].ID, inv.Current[1].ID)
}

func TestAddItemMissingInventory(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleAddItem(s, &Event{
		Type:        EventAddItem,
		TargetID:    "p-1",
		InventoryID: "saddlebag",
		Item:        &ItemPayload{Name: "火把"},
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItem(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	weight := 2.0
	_, err := handleUpdateItem(s, &Event{
		Type:        EventUpdateItem,
		TargetID:    "p-1",
		InventoryID: "backpack",
		ItemID:      "item-1",
		Item:        &ItemPayload{Name: "精制短剑", Weight: &weight},
	}, gm)
	require.NoError(t, err)

	item := s.Participant("p-1").Character.Inventory("backpack").Item("item-1")
	require.NotNil(t, item)
	assert.Equal(t, "精制短剑", item.Name)
	assert.Equal(t, 2.0, item.Weight)
}

func TestUpdateItemRenameOnlyKeepsOtherFields(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 只传名称的部分更新不得抹掉其他字段
	_, err := handleUpdateItem(s, &Event{
		Type:        EventUpdateItem,
		TargetID:    "p-1",
		InventoryID: "backpack",
		ItemID:      "item-1",
		Item:        &ItemPayload{Name: "精制短剑"},
	}, gm)
	require.NoError(t, err)

	item := s.Participant("p-1").Character.Inventory("backpack").Item("item-1")
	require.NotNil(t, item)
	assert.Equal(t, "精制短剑", item.Name)
	assert.Equal(t, 2.5, item.Weight)
}

func TestDeleteItemNotFound(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDeleteItem(s, &Event{
		Type:        EventDeleteItem,
		TargetID:    "p-1",
		InventoryID: "backpack",
		ItemID:      "item-404",
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	change, err := handleDeleteItem(s, &Event{
		Type:        EventDeleteItem,
		TargetID:    "p-1",
		InventoryID: "backpack",
		ItemID:      "item-1",
	}, gm)
	require.NoError(t, err)

	removed, ok := change.OldValue.(Item)
	require.True(t, ok)
	assert.Equal(t, "短剑", removed.Name)
	assert.Empty(t, s.Participant("p-1").Character.Inventory("backpack").Current)
}

func TestAddInventoryGeneratesServerSideID(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	secret := true
	change, err := handleAddInventory(s, &Event{
		Type:     EventAddInventory,
		TargetID: "p-2",
		Name:     "暗袋",
		Secret:   &secret,
	}, gm)
	require.NoError(t, err)

	inv, ok := change.NewValue.(Inventory)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(inv.ID, "inventory_"))

	def := s.Definition.InventoryDefinition(inv.ID)
	require.NotNil(t, def)
	assert.True(t, def.Secret)
	assert.NotNil(t, s.Participant("p-2").Character.Inventory(inv.ID))
}

func TestDeleteInventoryRemovesItems(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDeleteInventory(s, &Event{
		Type:        EventDeleteInventory,
		TargetID:    "p-1",
		InventoryID: "backpack",
	}, gm)
	require.NoError(t, err)

	assert.Nil(t, s.Participant("p-1").Character.Inventory("backpack"))
	assert.Nil(t, s.Definition.InventoryDefinition("backpack"))
}
