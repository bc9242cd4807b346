package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherRejectsUnknownType(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Handler("teleport")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.False(t, d.Known("teleport"))
}

func TestDispatcherCoversAllAuthPolicies(t *testing.T) {
	d := NewDispatcher()

	// 每个注册的事件类型都必须有授权策略，反之亦然
	for eventType := range eventAuthLevels {
		assert.True(t, d.Known(eventType), "事件 %s 缺少处理器", eventType)
	}
	for eventType := range d.handlers {
		_, ok := eventAuthLevels[eventType]
		assert.True(t, ok, "事件 %s 缺少授权策略", eventType)
	}
}

func TestDispatchRunsHandler(t *testing.T) {
	d := NewDispatcher()
	s := newTestSession()

	change, err := d.Dispatch(s, &Event{
		Type:     EventDecrementBar,
		TargetID: "p-1",
		BarID:    "hp",
		Amount:   3,
	}, s.Participant("gm-1"))
	require.NoError(t, err)

	assert.Equal(t, 7, s.Participant("p-1").Character.Bar("hp").Current)
	assert.Equal(t, 10, change.OldValue)
	assert.Equal(t, 7, change.NewValue)
}
