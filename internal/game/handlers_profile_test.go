package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameCharacter(t *testing.T) {
	s := newTestSession()
	p := s.Participant("p-1")

	change, err := handleRenameCharacter(s, &Event{
		Type:     EventRenameCharacter,
		TargetID: "p-1",
		Name:     "新阿尔温",
	}, p)
	require.NoError(t, err)

	assert.Equal(t, "新阿尔温", p.Character.Name)
	assert.Equal(t, "阿尔温", change.OldValue)
	assert.Equal(t, "新阿尔温", change.NewValue)
}

func TestRenameCharacterByCharacterID(t *testing.T) {
	s := newTestSession()
	p := s.Participant("p-1")

	// 目标也可以用角色ID定位
	_, err := handleRenameCharacter(s, &Event{
		Type:     EventRenameCharacter,
		TargetID: "ch-1",
		Name:     "新阿尔温",
	}, p)
	require.NoError(t, err)
	assert.Equal(t, "新阿尔温", p.Character.Name)
}

func TestRenameCharacterRequiresName(t *testing.T) {
	s := newTestSession()

	_, err := handleRenameCharacter(s, &Event{Type: EventRenameCharacter, TargetID: "p-1"}, s.Participant("p-1"))
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestUpdateDescription(t *testing.T) {
	s := newTestSession()

	_, err := handleUpdateDescription(s, &Event{
		Type:        EventUpdateDescription,
		TargetID:    "p-1",
		Description: "来自北境的游侠",
	}, s.Participant("p-1"))
	require.NoError(t, err)

	assert.Equal(t, "来自北境的游侠", s.Participant("p-1").Character.Description)
}

func TestUpdateAvatar(t *testing.T) {
	s := newTestSession()

	_, err := handleUpdateAvatar(s, &Event{
		Type:     EventUpdateAvatar,
		TargetID: "p-1",
		Picture:  "avatars/ranger.png",
	}, s.Participant("p-1"))
	require.NoError(t, err)

	assert.Equal(t, "avatars/ranger.png", s.Participant("p-1").Character.Picture)
}

func TestProfileEventUnknownTarget(t *testing.T) {
	s := newTestSession()

	_, err := handleUpdateDescription(s, &Event{
		Type:     EventUpdateDescription,
		TargetID: "p-404",
	}, s.Participant("gm-1"))
	require.ErrorIs(t, err, ErrNotFound)
}
