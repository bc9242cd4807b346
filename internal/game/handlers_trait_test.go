package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStrengthReferencesCatalog(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleAddTrait(s, &Event{
		Type:     EventAddStrength,
		TargetID: "p-1",
		TraitID:  "str-brave",
	}, gm)
	require.NoError(t, err)

	assert.Contains(t, s.Participant("p-1").Character.Attributes.Strengths, "str-brave")
}

func TestAddStrengthUnknownDefinition(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 被引用的定义必须存在于会话目录中
	_, err := handleAddTrait(s, &Event{
		Type:     EventAddStrength,
		TargetID: "p-1",
		TraitID:  "str-404",
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddStrengthTwiceRejected(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	ev := &Event{Type: EventAddStrength, TargetID: "p-1", TraitID: "str-brave"}
	_, err := handleAddTrait(s, ev, gm)
	require.NoError(t, err)

	_, err = handleAddTrait(s, ev, gm)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestAddWeaknessUsesWeaknessCatalog(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	// 弱点的定义查找不会落到特长目录
	_, err := handleAddTrait(s, &Event{
		Type:     EventAddWeakness,
		TargetID: "p-1",
		TraitID:  "str-brave",
	}, gm)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = handleAddTrait(s, &Event{
		Type:     EventAddWeakness,
		TargetID: "p-1",
		TraitID:  "weak-dark",
	}, gm)
	require.NoError(t, err)
	assert.Contains(t, s.Participant("p-1").Character.Attributes.Weaknesses, "weak-dark")
}

func TestRemoveTrait(t *testing.T) {
	s := newTestSession()
	gm := s.Participant("gm-1")

	_, err := handleAddTrait(s, &Event{Type: EventAddStrength, TargetID: "p-1", TraitID: "str-brave"}, gm)
	require.NoError(t, err)

	_, err = handleRemoveTrait(s, &Event{Type: EventRemoveStrength, TargetID: "p-1", TraitID: "str-brave"}, gm)
	require.NoError(t, err)
	assert.Empty(t, s.Participant("p-1").Character.Attributes.Strengths)

	// 再删一次是 NotFound
	_, err = handleRemoveTrait(s, &Event{Type: EventRemoveStrength, TargetID: "p-1", TraitID: "str-brave"}, gm)
	require.ErrorIs(t, err, ErrNotFound)
}
