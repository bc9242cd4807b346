package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorizeNonParticipantRejected(t *testing.T) {
	s := newTestSession()

	err := Authorize(s, "outsider", &Event{Type: EventRenameCharacter, TargetID: "p-1"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeProtectedStateRequiresGameMaster(t *testing.T) {
	s := newTestSession()

	// 玩家向他人添加状态：拒绝
	err := Authorize(s, "p-2", &Event{Type: EventAddStatus, TargetID: "p-1", Name: "眩晕"})
	require.ErrorIs(t, err, ErrForbidden)

	// 受保护状态按事件类型划权，玩家对自己同样不放行
	err = Authorize(s, "p-1", &Event{Type: EventDecrementBar, TargetID: "p-1", BarID: "hp"})
	require.ErrorIs(t, err, ErrForbidden)

	// 主持人放行
	err = Authorize(s, "gm-1", &Event{Type: EventAddStatus, TargetID: "p-1", Name: "眩晕"})
	require.NoError(t, err)
}

func TestAuthorizeProfileSelfOrGameMaster(t *testing.T) {
	s := newTestSession()

	// 本人修改自己的资料：放行
	err := Authorize(s, "p-1", &Event{Type: EventRenameCharacter, TargetID: "p-1", Name: "新名"})
	require.NoError(t, err)

	// 用角色ID定位目标同样放行
	err = Authorize(s, "p-1", &Event{Type: EventUpdateAvatar, TargetID: "ch-1"})
	require.NoError(t, err)

	// 修改他人的资料：拒绝
	err = Authorize(s, "p-2", &Event{Type: EventRenameCharacter, TargetID: "p-1", Name: "新名"})
	require.ErrorIs(t, err, ErrForbidden)

	// 主持人修改任何人的资料：放行
	err = Authorize(s, "gm-1", &Event{Type: EventUpdateDescription, TargetID: "p-2"})
	require.NoError(t, err)
}

func TestAuthorizeUnknownEventType(t *testing.T) {
	s := newTestSession()

	err := Authorize(s, "gm-1", &Event{Type: "teleport", TargetID: "p-1"})
	require.ErrorIs(t, err, ErrBadRequest)
}
