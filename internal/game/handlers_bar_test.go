package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementBarClampsAtZero(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	change, err := handleDecrementBar(s, &Event{
		Type:     EventDecrementBar,
		TargetID: "p-1",
		BarID:    "hp",
		Amount:   15,
	}, gm)
	require.NoError(t, err)

	// 10 - 15 收口到 0
	assert.Equal(t, 0, s.Participant("p-1").Character.Bar("hp").Current)
	assert.Equal(t, 10, change.OldValue)
	assert.Equal(t, 0, change.NewValue)
}

func TestIncrementBarIsNotClampedToMax(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 定义上限是 20，但增加不向上限收口
	_, err := handleIncrementBar(s, &Event{
		Type:     EventIncrementBar,
		TargetID: "p-1",
		BarID:    "hp",
		Amount:   100,
	}, gm)
	require.NoError(t, err)

	assert.Equal(t, 110, s.Participant("p-1").Character.Bar("hp").Current)
}

func TestAdjustBarUnknownBar(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDecrementBar(s, &Event{
		Type:     EventDecrementBar,
		TargetID: "p-1",
		BarID:    "mp",
		Amount:   1,
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddBarGeneratesServerSideID(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	min, max := 0, 30
	change, err := handleAddBar(s, &Event{
		Type:     EventAddBar,
		TargetID: "p-1",
		Name:     "魔力",
		Color:    "#0000ff",
		Min:      &min,
		Max:      &max,
		Current:  30,
	}, gm)
	require.NoError(t, err)

	bar, ok := change.NewValue.(Bar)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(bar.ID, "bar_"), "数值条ID应由服务端生成")
	assert.NotEqual(t, "hp", bar.ID)

	// 实例与定义同时登记
	assert.NotNil(t, s.Participant("p-1").Character.Bar(bar.ID))
	def := s.Definition.BarDefinition(bar.ID)
	require.NotNil(t, def)
	assert.Equal(t, "魔力", def.Name)
	assert.Equal(t, 30, def.Max)
}

func TestAddBarRequiresName(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleAddBar(s, &Event{Type: EventAddBar, TargetID: "p-1"}, gm)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestAddBarClampsNegativeCurrent(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 初始值与扣减一样向 0 收口
	change, err := handleAddBar(s, &Event{
		Type:     EventAddBar,
		TargetID: "p-1",
		Name:     "疲劳",
		Current:  -5,
	}, gm)
	require.NoError(t, err)

	bar, ok := change.NewValue.(Bar)
	require.True(t, ok)
	assert.Equal(t, 0, bar.Current)
}

func TestAddBarRejectsMaxBelowMin(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	min, max := 10, 5
	_, err := handleAddBar(s, &Event{
		Type:     EventAddBar,
		TargetID: "p-1",
		Name:     "魔力",
		Min:      &min,
		Max:      &max,
	}, gm)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestUpdateBarEditsDefinition(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	min, max := 0, 25
	_, err := handleUpdateBar(s, &Event{
		Type:     EventUpdateBar,
		TargetID: "p-1",
		BarID:    "hp",
		Name:     "生命值",
		Min:      &min,
		Max:      &max,
	}, gm)
	require.NoError(t, err)

	def := s.Definition.BarDefinition("hp")
	require.NotNil(t, def)
	assert.Equal(t, "生命值", def.Name)
	assert.Equal(t, 25, def.Max)
}

func TestUpdateBarRenameOnlyKeepsBounds(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 只传名称的部分更新不得抹掉上下限
	_, err := handleUpdateBar(s, &Event{
		Type:     EventUpdateBar,
		TargetID: "p-1",
		BarID:    "hp",
		Name:     "生命",
	}, gm)
	require.NoError(t, err)

	def := s.Definition.BarDefinition("hp")
	require.NotNil(t, def)
	assert.Equal(t, "生命", def.Name)
	assert.Equal(t, 0, def.Min)
	assert.Equal(t, 20, def.Max)
	assert.Equal(t, "#ff0000", def.Color)
}

func TestUpdateBarRejectsMaxBelowMin(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	max := -1
	_, err := handleUpdateBar(s, &Event{
		Type:     EventUpdateBar,
		TargetID: "p-1",
		BarID:    "hp",
		Max:      &max,
	}, gm)
	require.ErrorIs(t, err, ErrBadRequest)

	// 被拒绝的更新不得留下半套改动
	def := s.Definition.BarDefinition("hp")
	require.NotNil(t, def)
	assert.Equal(t, 20, def.Max)
}

func TestDeleteBarRemovesInstanceAndDefinition(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDeleteBar(s, &Event{
		Type:     EventDeleteBar,
		TargetID: "p-1",
		BarID:    "hp",
	}, gm)
	require.NoError(t, err)

	assert.Nil(t, s.Participant("p-1").Character.Bar("hp"))
	assert.Nil(t, s.Definition.BarDefinition("hp"))
}

func TestDeleteBarNotFound(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDeleteBar(s, &Event{
		Type:     EventDeleteBar,
		TargetID: "p-1",
		BarID:    "mp",
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBarEventTargetWithoutCharacter(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 主持人没有角色，不能作为数值条事件的目标
	_, err := handleDecrementBar(s, &Event{
		Type:     EventDecrementBar,
		TargetID: "gm-1",
		BarID:    "hp",
		Amount:   1,
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}
