package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStatus(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	active := true
	change, err := handleAddStatus(s, &Event{
		Type:     EventAddStatus,
		TargetID: "p-1",
		Name:     "隐身",
		Active:   &active,
	}, gm)
	require.NoError(t, err)

	st, ok := change.NewValue.(Status)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(st.ID, "status_"))
	assert.True(t, st.Active)

	require.NotNil(t, s.Definition.StatusDefinition(st.ID))
	require.NotNil(t, s.Participant("p-1").Character.Status(st.ID))
}

func TestUpdateStatusTogglesActive(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	active := true
	_, err := handleUpdateStatus(s, &Event{
		Type:     EventUpdateStatus,
		TargetID: "p-1",
		StatusID: "poisoned",
		Active:   &active,
	}, gm)
	require.NoError(t, err)

	assert.True(t, s.Participant("p-1").Character.Status("poisoned").Active)
}

func TestDeleteStatusNotFound(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDeleteStatus(s, &Event{
		Type:     EventDeleteStatus,
		TargetID: "p-1",
		StatusID: "stunned",
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStatus(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleDeleteStatus(s, &Event{
		Type:     EventDeleteStatus,
		TargetID: "p-1",
		StatusID: "poisoned",
	}, gm)
	require.NoError(t, err)

	assert.Nil(t, s.Participant("p-1").Character.Status("poisoned"))
	assert.Nil(t, s.Definition.StatusDefinition("poisoned"))
}
